package domain

import (
	"encoding/json"
	"math"
)

// Price is a monetary amount in whole currency units. The upstream API
// serializes prices as JSON floats (e.g. 30.0), so decoding is tolerant of
// a fractional representation.
type Price int

func (p *Price) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}

	*p = Price(math.Round(f))
	return nil
}

type Category string

const (
	CategoryChai        Category = "Chai"
	CategoryBakery      Category = "Bakery"
	CategorySnacks      Category = "Snacks"
	CategoryBeverages   Category = "Beverages"
	CategoryMerchandise Category = "Merchandise"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryChai, CategoryBakery, CategorySnacks, CategoryBeverages, CategoryMerchandise:
		return true
	}
	return false
}

type AddOnKind string

const (
	// AddOnToggle is present-or-absent, quantity fixed at 1.
	AddOnToggle AddOnKind = "toggle"
	// AddOnQuantity is a counter bounded by MaxQuantity when declared.
	AddOnQuantity AddOnKind = "quantity"
)

func (k AddOnKind) Valid() bool {
	return k == AddOnToggle || k == AddOnQuantity
}

type AddOn struct {
	Name        string    `json:"name"`
	Price       Price     `json:"price"`
	Kind        AddOnKind `json:"type"`
	MaxQuantity int       `json:"maxQuantity,omitempty"`
}

type CatalogItem struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Category        Category `json:"category"`
	Price           Price    `json:"price"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	Ingredients     []string `json:"ingredients,omitempty"`
	Image           string   `json:"image"`
	IsPopular       bool     `json:"is_popular"`
	IsAvailable     bool     `json:"is_available"`
	Rating          float64  `json:"rating,omitempty"`
	AddOns          []AddOn  `json:"add_ons,omitempty"`
}

// FindAddOn returns the add-on definition with the given name, if the item
// declares one. Names are unique within an item.
func (ci *CatalogItem) FindAddOn(name string) (AddOn, bool) {
	for _, a := range ci.AddOns {
		if a.Name == name {
			return a, true
		}
	}
	return AddOn{}, false
}

// SelectedAddOn is a chosen add-on inside a cart line or order item. The
// unit price is snapshotted from the definition at selection time.
type SelectedAddOn struct {
	Name     string `json:"name"`
	Price    Price  `json:"price"`
	Quantity int    `json:"quantity"`
}
