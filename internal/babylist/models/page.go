package models

// PageSize is the number of items per page on every list view.
const PageSize = 20

// Page is one sorted page of a filtered item collection.
type Page struct {
	Items       Items `json:"data"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
	Total       int   `json:"total"`
	PerPage     int   `json:"perPage"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}
