// Package paginate sorts and pages item collections.
package paginate

import (
	"slices"
	"strconv"
	"strings"

	"babylist/internal/babylist/models"
)

// Sort returns a copy of items ordered by order. Ties keep registry order.
func Sort(items models.Items, order models.SortOrder) models.Items {
	out := slices.Clone(items)
	switch order {
	case models.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b models.Item) int {
			return a.UnitPrice.Cmp(b.UnitPrice)
		})
	case models.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b models.Item) int {
			return b.UnitPrice.Cmp(a.UnitPrice)
		})
	}
	return out
}

// ResolvePage picks the requested page number. paged is the query parameter;
// accountPath is the owner's account path ("0042000123/page/3"), whose token
// after "page" wins when it is a positive number. Anything else resolves to 1.
func ResolvePage(paged, accountPath string) int {
	page := positive(paged)
	if accountPath == "" {
		return orFirst(page)
	}
	segments := strings.Split(accountPath, "/")
	for i, segment := range segments {
		if segment != "page" || i+1 >= len(segments) {
			continue
		}
		if override := positive(segments[i+1]); override > 0 {
			return override
		}
		break
	}
	return orFirst(page)
}

func positive(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func orFirst(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Paginate sorts items and returns the requested page of models.PageSize items.
// A page past the end is empty.
func Paginate(items models.Items, order models.SortOrder, page int) models.Page {
	if page < 1 {
		page = 1
	}
	sorted := Sort(items, order)
	total := len(sorted)
	totalPages := (total + models.PageSize - 1) / models.PageSize

	pageItems := models.Items{}
	if page <= totalPages {
		start := (page - 1) * models.PageSize
		end := min(start+models.PageSize, total)
		pageItems = sorted[start:end]
	}

	return models.Page{
		Items:       pageItems,
		HasNext:     totalPages > page,
		HasPrev:     page > 1,
		Total:       total,
		PerPage:     models.PageSize,
		CurrentPage: page,
		TotalPages:  totalPages,
	}
}
