package models

import "github.com/shopspring/decimal"

// PriceBand is one fixed unit-price range with the number of items falling in it.
// Max is nil for the open-ended top band.
type PriceBand struct {
	Min   decimal.Decimal  `json:"min"`
	Max   *decimal.Decimal `json:"max"`
	Name  string           `json:"name"`
	Slug  string           `json:"slug"`
	Count int              `json:"count"`
}

// Contains reports whether price falls in [Min, Max).
func (b PriceBand) Contains(price decimal.Decimal) bool {
	if price.LessThan(b.Min) {
		return false
	}
	return b.Max == nil || price.LessThan(*b.Max)
}

var bandBounds = []int64{0, 50, 100, 150}

// PriceBands returns the four fixed bands with zero counts:
// [0,50) [50,100) [100,150) [150,∞).
func PriceBands() []PriceBand {
	bands := make([]PriceBand, 0, len(bandBounds))
	for i, lo := range bandBounds {
		band := PriceBand{Min: decimal.NewFromInt(lo)}
		if i+1 < len(bandBounds) {
			hi := decimal.NewFromInt(bandBounds[i+1])
			band.Max = &hi
			band.Name = band.Min.String() + "-" + hi.String()
			band.Slug = band.Name
		} else {
			band.Name = band.Min.String() + " +"
			band.Slug = band.Min.String()
		}
		bands = append(bands, band)
	}
	return bands
}

// BandBySlug returns the fixed band with the given slug.
func BandBySlug(slug string) (PriceBand, bool) {
	for _, band := range PriceBands() {
		if band.Slug == slug {
			return band, true
		}
	}
	return PriceBand{}, false
}
