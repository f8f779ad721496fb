package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Item is a registry line after it has been merged with catalog data.
//
// Invariants:
//   - 0 <= GiftedQty <= Quantity and GiftedQty == Quantity - AvailableQty
//   - Gifted is true iff AvailableQty == 0
//   - UnitPrice is the effective price multiplied by Quantity (a line total)
//   - Reserved implies !Gifted
type Item struct {
	SKU    string `json:"sku"`
	LineID int64  `json:"line_id"`

	Quantity     int `json:"quantity"`
	AvailableQty int `json:"available_qty"`
	GiftedQty    int `json:"gifted_qty"`

	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineTotal    decimal.Decimal `json:"line_total"`
	RawUnitPrice decimal.Decimal `json:"raw_unit_price"`

	Gifted          bool `json:"gifted"`
	Reserved        bool `json:"reserved"`
	Participates    bool `json:"participates"`
	HasCatalogMatch bool `json:"has_catalog_match"`
	InStock         bool `json:"in_stock"`
	Mandatory       bool `json:"mandatory"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`

	Importance int `json:"importance"`

	// Catalog fields, zero for unmatched lines.
	CatalogID       int64      `json:"catalog_id,omitempty"`
	Categories      []Category `json:"categories,omitempty"`
	VisibleOnline   bool       `json:"visible_online"`
	AvailableOnline bool       `json:"available_online"`

	// HideAddToCart is set on page items by the buy policy of the viewer.
	HideAddToCart bool `json:"hide_add_to_cart"`
}

// IsMustHave reports whether the owner ranked the item 1 to 3.
func (i Item) IsMustHave() bool {
	return IsMustHaveRank(i.Importance)
}

// IsTaken reports whether the item is gifted or reserved by a recent order.
func (i Item) IsTaken() bool {
	return i.Gifted || i.Reserved
}

// InCategory reports whether one of the item's top-level categories matches
// ref by id or slug. Unmatched items belong to no category.
func (i Item) InCategory(ref string) bool {
	if !i.HasCatalogMatch {
		return false
	}
	for _, c := range i.Categories {
		if c.Slug == ref || strconv.FormatInt(c.ID, 10) == ref {
			return true
		}
	}
	return false
}

// Items is an ordered item collection.
type Items []Item

// Gifted returns the gifted items in registry order.
func (items Items) Gifted() Items {
	return items.Where(func(i Item) bool { return i.Gifted })
}

// Available returns the items not yet gifted in registry order.
func (items Items) Available() Items {
	return items.Where(func(i Item) bool { return !i.Gifted })
}

// Where returns the items matching keep, preserving order.
func (items Items) Where(keep func(Item) bool) Items {
	out := make(Items, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Amount sums the line totals.
func (items Items) Amount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.LineTotal)
	}
	return total
}
