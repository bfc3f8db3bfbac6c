package cart

import (
	"sort"

	"github.com/Nagesh2809/cafe-management/internal/domain"
	"github.com/google/uuid"
)

// Line is one distinct purchasable configuration: a catalog item snapshot,
// a quantity and the chosen add-ons. Lines are owned by their Cart; the ID
// is an opaque handle for removal and quantity updates.
type Line struct {
	ID       string                 `json:"id"`
	Item     domain.CatalogItem     `json:"item"`
	Quantity int                    `json:"quantity"`
	AddOns   []domain.SelectedAddOn `json:"add_ons,omitempty"`
}

// UnitPrice is the base price plus the cost of all selected add-ons.
func (l *Line) UnitPrice() domain.Price {
	price := l.Item.Price
	for _, a := range l.AddOns {
		price += a.Price * domain.Price(a.Quantity)
	}
	return price
}

func (l *Line) Subtotal() domain.Price {
	return l.UnitPrice() * domain.Price(l.Quantity)
}

// Cart is an insertion-ordered collection of lines, unique by the value of
// (item ID, sorted add-on selection). Two additions of the same item with
// the same multiset of add-on choices collapse into one line regardless of
// selection order; any differing customization produces a distinct line.
//
// Cart does no locking of its own: callers serialize access per session.
type Cart struct {
	lines []*Line
}

func New() *Cart {
	return &Cart{}
}

// Add merges the given configuration into an existing line or appends a
// new one at the tail. Quantities below 1 are clamped to 1. The selection
// is normalized before matching: zero-quantity entries are dropped and the
// remainder is sorted by name. Returns the line the addition landed on.
func (c *Cart) Add(item domain.CatalogItem, quantity int, addOns []domain.SelectedAddOn) *Line {
	if quantity < 1 {
		quantity = 1
	}

	selection := normalize(addOns)

	for _, line := range c.lines {
		if line.Item.ID == item.ID && sameSelection(line.AddOns, selection) {
			line.Quantity += quantity
			return line
		}
	}

	line := &Line{
		ID:       uuid.NewString(),
		Item:     item,
		Quantity: quantity,
		AddOns:   selection,
	}
	c.lines = append(c.lines, line)

	return line
}

// Remove deletes the line with the given ID. Removing an absent line is a
// no-op, not an error.
func (c *Cart) Remove(lineID string) {
	for i, line := range c.lines {
		if line.ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites a line's quantity. A quantity of zero or below
// removes the line.
func (c *Cart) SetQuantity(lineID string, quantity int) {
	if quantity <= 0 {
		c.Remove(lineID)
		return
	}

	for _, line := range c.lines {
		if line.ID == lineID {
			line.Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Total recomputes the cart total on every call: the sum over all lines of
// (base price + add-on costs) x line quantity.
func (c *Cart) Total() domain.Price {
	var total domain.Price
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Lines returns the cart lines in insertion order. The slice is a copy but
// the lines are shared; callers must not mutate them.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Find(lineID string) (*Line, bool) {
	for _, line := range c.lines {
		if line.ID == lineID {
			return line, true
		}
	}
	return nil, false
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func normalize(addOns []domain.SelectedAddOn) []domain.SelectedAddOn {
	out := make([]domain.SelectedAddOn, 0, len(addOns))
	for _, a := range addOns {
		if a.Quantity < 1 {
			continue
		}
		out = append(out, a)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	if len(out) == 0 {
		return nil
	}
	return out
}

// sameSelection compares two normalized selections by value. Comparing the
// structured (name, quantity) pairs instead of a joined signature string
// keeps add-on names containing separator characters from colliding.
func sameSelection(a, b []domain.SelectedAddOn) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Quantity != b[i].Quantity {
			return false
		}
	}
	return true
}
