// Package enrich merges registry lines with catalog, recommendation and
// reservation data into items.
package enrich

import (
	"strings"

	"babylist/internal/babylist/models"
	"babylist/internal/babylist/pricing"
	"babylist/internal/babylist/ports"
)

// Reservations is the set of lines with a recent order against the registry.
type Reservations map[models.LineRef]struct{}

// NewReservations builds the set from lookup results.
func NewReservations(refs []models.LineRef) Reservations {
	set := make(Reservations, len(refs))
	for _, ref := range refs {
		set[ref] = struct{}{}
	}
	return set
}

// Exists reports whether the line has a recent order.
func (r Reservations) Exists(sku string, lineID int64) bool {
	_, ok := r[models.LineRef{SKU: sku, LineID: lineID}]
	return ok
}

// Item derives one item from a normalized line. It is a pure function of its
// inputs.
func Item(
	line models.RawLine,
	source models.LineSource,
	reservations Reservations,
	categories ports.CategoryMapping,
	pc pricing.Context,
) models.Item {
	item := models.Item{
		SKU:          line.SKU,
		LineID:       line.LineID,
		Quantity:     line.Quantity,
		AvailableQty: line.AvailableQty,
		GiftedQty:    line.Quantity - line.AvailableQty,
		RawUnitPrice: line.UnitPrice,
		Gifted:       line.AvailableQty == 0,
		Participates: line.Participates,
		Mandatory:    line.Mandatory,
		Importance:   line.Importance,
	}
	item.Reserved = !item.Gifted && reservations.Exists(line.SKU, line.LineID)

	switch src := source.(type) {
	case models.Matched:
		item.HasCatalogMatch = true
		item.InStock = line.AvailableQty != 0
		item.Name = src.Entry.DisplayName()
		item.CatalogID = src.Entry.CatalogID
		item.Categories = src.Entry.Categories
		item.VisibleOnline = src.Entry.VisibleOnline
		item.AvailableOnline = src.Entry.AvailableOnline
	case models.Unmatched:
		item.Name = line.Name
		item.Description = line.Description
		if rec := src.Recommendation; rec != nil {
			item.Description = rec.FullTitle
			item.Brand = rec.Brand
			item.Category = mapCategory(categories, rec.Category)
		}
	}

	item.LineTotal = pricing.LineTotal(line, source, pc)
	item.UnitPrice = item.LineTotal
	return item
}

func mapCategory(categories ports.CategoryMapping, code string) string {
	if categories == nil {
		return strings.ToUpper(code)
	}
	return categories.Resolve(code)
}
