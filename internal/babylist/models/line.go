package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RawLine is one product entry of a registry as tracked by the list service.
type RawLine struct {
	SKU          string          `json:"sku"`
	LineID       int64           `json:"line_id"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	AvailableQty int             `json:"available_qty"`
	Mandatory    bool            `json:"mandatory"`
	Participates bool            `json:"participates"`
	Importance   int             `json:"importance"`

	// Display fields the list service carries for products it knows
	// independently of the catalog.
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Normalized clamps quantities so that 0 <= AvailableQty <= Quantity.
// Negative available quantities are treated as fully gifted.
func (l RawLine) Normalized() RawLine {
	if l.Quantity < 0 {
		l.Quantity = 0
	}
	if l.AvailableQty < 0 {
		l.AvailableQty = 0
	}
	if l.AvailableQty > l.Quantity {
		l.AvailableQty = l.Quantity
	}
	return l
}

// IsMustHave reports whether the owner ranked the line 1 to 3.
func (l RawLine) IsMustHave() bool {
	return IsMustHaveRank(l.Importance)
}

// IsMustHaveRank reports whether an importance rank is a "must have" rank.
func IsMustHaveRank(rank int) bool {
	return rank >= 1 && rank <= 3
}

// LineRef identifies a registry line by SKU and line id.
type LineRef struct {
	SKU    string
	LineID int64
}

// Category is a top-level catalog category.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CatalogEntry is the live catalog view of a SKU. Never mutated here.
type CatalogEntry struct {
	SKU             string              `json:"sku"`
	CatalogID       int64               `json:"catalog_id"`
	ParentID        int64               `json:"parent_id,omitempty"`
	Name            string              `json:"name"`
	Price           decimal.Decimal     `json:"price"`
	RegularPrice    decimal.Decimal     `json:"regular_price"`
	VipPrice        decimal.NullDecimal `json:"vip_price"`
	VariantVipPrice decimal.NullDecimal `json:"variant_vip_price"`
	IsVariable      bool                `json:"is_variable"`
	InStock         bool                `json:"in_stock"`
	VisibleOnline   bool                `json:"visible_online"`
	AvailableOnline bool                `json:"available_online"`
	Categories      []Category          `json:"categories,omitempty"`
}

// VipPriceFor returns the VIP price exposed by the entry. Variable products
// expose the price of the specific variant, not the parent.
func (e CatalogEntry) VipPriceFor() (decimal.Decimal, bool) {
	vip := e.VipPrice
	if e.IsVariable {
		vip = e.VariantVipPrice
	}
	if !vip.Valid {
		return decimal.Zero, false
	}
	return vip.Decimal, true
}

const privateLabelPrefix = "privato: "

// DisplayName is the catalog name lower-cased with the private label prefix removed.
func (e CatalogEntry) DisplayName() string {
	return strings.ReplaceAll(strings.ToLower(e.Name), privateLabelPrefix, "")
}

// RecommendationEntry carries display-only metadata for SKUs the catalog does not sell.
type RecommendationEntry struct {
	SKU       string `json:"sku"`
	FullTitle string `json:"full_title"`
	Brand     string `json:"brand"`
	Category  string `json:"category"`
}

// LineSource is where a line's display and pricing data comes from.
// It is either Matched or Unmatched.
type LineSource interface {
	isLineSource()
}

// Matched is a line whose SKU is sold by the catalog.
type Matched struct {
	Entry CatalogEntry
}

// Unmatched is a line the catalog does not know. Recommendation is nil when
// the recommendation service has nothing for the SKU either.
type Unmatched struct {
	Recommendation *RecommendationEntry
}

func (Matched) isLineSource()   {}
func (Unmatched) isLineSource() {}

// SourceFor resolves the LineSource for sku from bulk lookup results.
func SourceFor(sku string, catalog map[string]CatalogEntry, recommendations map[string]RecommendationEntry) LineSource {
	if entry, ok := catalog[sku]; ok {
		return Matched{Entry: entry}
	}
	if rec, ok := recommendations[sku]; ok {
		return Unmatched{Recommendation: &rec}
	}
	return Unmatched{}
}
