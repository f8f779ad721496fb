package models

import (
	"net/url"
	"strings"
)

// Query keys honored by the list views. Any other key is dropped when a
// FilterSelection is built.
const (
	FilterMustHave  = "must_have"
	FilterAvailable = "disponibili"
	FilterGifted    = "regalati"
	FilterCategory  = "categoria"
	FilterPrice     = "price"
	FilterOrderBy   = "order_by"
)

var filterKeys = []string{
	FilterMustHave,
	FilterAvailable,
	FilterGifted,
	FilterCategory,
	FilterPrice,
	FilterOrderBy,
}

// SortOrder is the ordering applied to a page of items.
type SortOrder string

const (
	SortDefault   SortOrder = "id"
	SortPriceAsc  SortOrder = "price_lowest"
	SortPriceDesc SortOrder = "price_highest"
)

// ParseSortOrder maps an order_by value to a SortOrder. Unknown values keep
// registry order.
func ParseSortOrder(value string) SortOrder {
	switch SortOrder(strings.TrimSpace(value)) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortDefault
	}
}

// OrderOption is one entry of the order_by selector.
type OrderOption struct {
	Value SortOrder `json:"value"`
	Label string    `json:"label"`
}

// OrderOptions lists the supported orderings.
func OrderOptions() []OrderOption {
	return []OrderOption{
		{Value: SortDefault, Label: "Ordinamento predefinito"},
		{Value: SortPriceAsc, Label: "Prezzo: dal più economico"},
		{Value: SortPriceDesc, Label: "Prezzo: dal più caro"},
	}
}

// FilterSelection is the set of filters a request asked for. It is built once
// at the HTTP boundary and passed by value.
//
// A flag filter is active when its key is present, whatever its value.
type FilterSelection struct {
	MustHave  bool
	Available bool
	Gifted    bool
	Category  string
	PriceBand string
	SortOrder SortOrder

	// raw holds the honored keys as received, for echoing back to clients.
	raw map[string]string
}

// ParseFilterSelection builds a FilterSelection from query values, keeping
// only the recognized filter keys.
func ParseFilterSelection(query url.Values) FilterSelection {
	sel := FilterSelection{SortOrder: SortDefault, raw: map[string]string{}}
	for _, key := range filterKeys {
		values, ok := query[key]
		if !ok {
			continue
		}
		value := ""
		if len(values) > 0 {
			value = strings.TrimSpace(values[0])
		}
		sel.raw[key] = value

		switch key {
		case FilterMustHave:
			sel.MustHave = true
		case FilterAvailable:
			sel.Available = true
		case FilterGifted:
			sel.Gifted = true
		case FilterCategory:
			sel.Category = value
		case FilterPrice:
			sel.PriceBand = value
		case FilterOrderBy:
			sel.SortOrder = ParseSortOrder(value)
		}
	}
	return sel
}

// Params returns a copy of the honored keys and their raw values.
func (f FilterSelection) Params() map[string]string {
	out := make(map[string]string, len(f.raw))
	for k, v := range f.raw {
		out[k] = v
	}
	return out
}

// OrderBy echoes the raw order_by value, empty when absent.
func (f FilterSelection) OrderBy() string {
	return f.raw[FilterOrderBy]
}

// HasStatusFilter reports whether any filter narrowing the status set is active.
func (f FilterSelection) HasStatusFilter() bool {
	return f.MustHave || f.Available || f.Gifted || f.Category != ""
}
