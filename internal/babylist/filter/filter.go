// Package filter narrows an item collection by the filters a viewer selected.
package filter

import (
	"babylist/internal/babylist/models"
)

// Apply runs the status filters and then the price band restriction.
func Apply(items models.Items, sel models.FilterSelection) models.Items {
	return ByPriceBand(ByStatus(items, sel), sel.PriceBand)
}

// ByStatus applies must-have, category, gifted and available filters in that
// order. Gifted and available are independent predicates; both apply when both
// are selected.
func ByStatus(items models.Items, sel models.FilterSelection) models.Items {
	out := items
	if sel.MustHave {
		out = out.Where(models.Item.IsMustHave)
	}
	if sel.Category != "" {
		out = out.Where(func(i models.Item) bool { return i.InCategory(sel.Category) })
	}
	if sel.Gifted {
		out = out.Where(models.Item.IsTaken)
	}
	if sel.Available {
		out = out.Where(func(i models.Item) bool { return !i.IsTaken() })
	}
	return out
}

// ByPriceBand keeps the items whose unit price falls in the band with slug.
// Items priced at zero are never dropped. An empty or unknown slug leaves the
// collection unchanged.
func ByPriceBand(items models.Items, slug string) models.Items {
	if slug == "" {
		return items
	}
	band, ok := models.BandBySlug(slug)
	if !ok {
		return items
	}
	return items.Where(func(i models.Item) bool {
		return i.UnitPrice.IsZero() || band.Contains(i.UnitPrice)
	})
}

// Bands counts items per fixed price band.
func Bands(items models.Items) []models.PriceBand {
	bands := models.PriceBands()
	for _, item := range items {
		for i := range bands {
			if bands[i].Contains(item.UnitPrice) {
				bands[i].Count++
				break
			}
		}
	}
	return bands
}

// Categories counts matched items per top-level category, once per item,
// in order of first appearance.
func Categories(items models.Items) []models.CategoryCount {
	index := map[int64]int{}
	var out []models.CategoryCount
	for _, item := range items {
		if !item.HasCatalogMatch {
			continue
		}
		seen := map[int64]struct{}{}
		for _, c := range item.Categories {
			if _, dup := seen[c.ID]; dup {
				continue
			}
			seen[c.ID] = struct{}{}

			if pos, ok := index[c.ID]; ok {
				out[pos].Count++
				continue
			}
			index[c.ID] = len(out)
			out = append(out, models.CategoryCount{Category: c, Count: 1})
		}
	}
	if out == nil {
		return []models.CategoryCount{}
	}
	return out
}
