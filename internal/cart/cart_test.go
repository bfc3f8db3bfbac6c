package cart

import (
	"testing"

	"github.com/Nagesh2809/cafe-management/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chai = domain.CatalogItem{
	ID:          1,
	Name:        "Classic Irani Chai",
	Category:    domain.CategoryChai,
	Price:       30,
	IsAvailable: true,
}

var biscuits = domain.CatalogItem{
	ID:          2,
	Name:        "Osmania Biscuits",
	Category:    domain.CategoryBakery,
	Price:       150,
	IsAvailable: true,
}

func TestAddMergesIdenticalSelectionsRegardlessOfOrder(t *testing.T) {
	c := New()

	c.Add(chai, 1, []domain.SelectedAddOn{
		{Name: "Extra Milk", Price: 10, Quantity: 1},
		{Name: "Extra Cardamom", Price: 5, Quantity: 2},
	})
	c.Add(chai, 2, []domain.SelectedAddOn{
		{Name: "Extra Cardamom", Price: 5, Quantity: 2},
		{Name: "Extra Milk", Price: 10, Quantity: 1},
	})

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 3, c.Lines()[0].Quantity)
}

func TestAddDistinguishesDifferingSelections(t *testing.T) {
	c := New()

	c.Add(chai, 1, []domain.SelectedAddOn{{Name: "Extra Cardamom", Price: 5, Quantity: 1}})
	c.Add(chai, 1, []domain.SelectedAddOn{{Name: "Extra Cardamom", Price: 5, Quantity: 2}})
	c.Add(chai, 1, nil)

	assert.Equal(t, 3, c.Len())
}

func TestAddWithoutAddOnsMerges(t *testing.T) {
	c := New()

	c.Add(chai, 1, nil)
	c.Add(chai, 1, []domain.SelectedAddOn{})

	require.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Lines()[0].Quantity)
}

func TestAddDropsZeroQuantitySelections(t *testing.T) {
	c := New()

	// quantity 0 means absent, so this is the same configuration as a
	// bare add
	c.Add(chai, 1, []domain.SelectedAddOn{{Name: "Extra Milk", Price: 10, Quantity: 0}})
	c.Add(chai, 1, nil)

	assert.Equal(t, 1, c.Len())
}

func TestMergePreservesLineIdentity(t *testing.T) {
	c := New()

	first := c.Add(chai, 1, nil)
	second := c.Add(chai, 4, nil)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, first.Quantity)
}

func TestInsertionOrderIsStable(t *testing.T) {
	c := New()

	c.Add(biscuits, 1, nil)
	c.Add(chai, 1, nil)
	c.Add(biscuits, 1, nil)

	lines := c.Lines()
	require.Equal(t, 2, len(lines))
	assert.Equal(t, biscuits.ID, lines[0].Item.ID)
	assert.Equal(t, chai.ID, lines[1].Item.ID)
}

func TestSetQuantityZeroOrNegativeRemoves(t *testing.T) {
	c := New()

	a := c.Add(chai, 2, nil)
	b := c.Add(biscuits, 1, nil)

	c.SetQuantity(a.ID, 0)
	assert.Equal(t, 1, c.Len())

	c.SetQuantity(b.ID, -3)
	assert.Equal(t, 0, c.Len())
}

func TestSetQuantityOverwrites(t *testing.T) {
	c := New()

	line := c.Add(chai, 2, nil)
	c.SetQuantity(line.ID, 7)

	got, ok := c.Find(line.ID)
	require.True(t, ok)
	assert.Equal(t, 7, got.Quantity)
}

func TestRemoveMissingLineIsNoOp(t *testing.T) {
	c := New()

	c.Add(chai, 1, nil)
	c.Remove("no-such-line")
	c.SetQuantity("no-such-line", 5)

	assert.Equal(t, 1, c.Len())
}

func TestTotal(t *testing.T) {
	c := New()
	assert.Equal(t, domain.Price(0), c.Total())

	// one chai at 30 with a toggle add-on at 10, quantity 2 => 80
	c.Add(chai, 2, []domain.SelectedAddOn{{Name: "Extra Milk", Price: 10, Quantity: 1}})
	assert.Equal(t, domain.Price(80), c.Total())

	// plus biscuits with a counted add-on: (150 + 2*30) * 1 = 210
	c.Add(biscuits, 1, []domain.SelectedAddOn{{Name: "Gift Box Packaging", Price: 30, Quantity: 2}})
	assert.Equal(t, domain.Price(290), c.Total())
}

func TestClear(t *testing.T) {
	c := New()

	c.Add(chai, 2, nil)
	c.Add(biscuits, 1, nil)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, domain.Price(0), c.Total())
}

func TestSeparatorCharactersInNamesDoNotCollide(t *testing.T) {
	c := New()

	// under a naive "name:qty" string join both selections would render
	// as "x:1|y:1"
	c.Add(chai, 1, []domain.SelectedAddOn{{Name: "x:1|y", Price: 5, Quantity: 1}})
	c.Add(chai, 1, []domain.SelectedAddOn{
		{Name: "x", Price: 5, Quantity: 1},
		{Name: "y", Price: 5, Quantity: 1},
	})

	assert.Equal(t, 2, c.Len())
}
