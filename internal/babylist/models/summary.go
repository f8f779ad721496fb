package models

import "github.com/shopspring/decimal"

// Summary is the read model of one list view.
type Summary struct {
	Details           Details           `json:"details"`
	Stats             []Stat            `json:"stats"`
	Reward            Reward            `json:"reward"`
	GuestDetails      []StatDetail      `json:"guest_details"`
	Products          Page              `json:"products"`
	ProductCount      int               `json:"product_count"`
	Categories        []CategoryCount   `json:"categories"`
	Filters           map[string]string `json:"filters"`
	OrderBy           string            `json:"order_by"`
	PriceRanges       []PriceBand       `json:"price_ranges"`
	GiftedProducts    ItemGroup         `json:"gifted_products"`
	AvailableProducts ItemGroup         `json:"available_products"`
	Discount          decimal.Decimal   `json:"discount"`
	CanBuyFromList    bool              `json:"can_buy_from_list"`
}

// Details describes the list and its owner.
type Details struct {
	ID            string  `json:"id"`
	Store         *string `json:"store"`
	ListName      string  `json:"list_name"`
	Name          string  `json:"name"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	CardNumber    string  `json:"card_number,omitempty"`
	DonationTotal string  `json:"donation_total_amount"`
	CreatedDate   string  `json:"created_date"`
	CloseDate     string  `json:"close_date"`
	IsClosed      bool    `json:"is_closed"`
	DaysLeft      *int    `json:"days_left"`
	IsEmpty       bool    `json:"is_empty"`
	HasMustHave   bool    `json:"has_must_have"`
	IsListUser    bool    `json:"is_list_user"`
}

// Stat is a progress block with its percentage and the figures behind it.
type Stat struct {
	Percentage int64        `json:"percentage"`
	Details    []StatDetail `json:"details"`
}

// StatDetail is one labelled figure.
type StatDetail struct {
	Label    string `json:"label"`
	Sublabel string `json:"sublabel,omitempty"`
	Value    string `json:"value"`
}

// ItemGroup is a subset of the list with its size and value.
type ItemGroup struct {
	Products Items           `json:"products"`
	Count    int             `json:"count"`
	Amount   decimal.Decimal `json:"amount"`
}

// NewItemGroup summarises items.
func NewItemGroup(items Items) ItemGroup {
	return ItemGroup{Products: items, Count: len(items), Amount: items.Amount()}
}

// CategoryCount is a top-level category with the number of list items in it.
type CategoryCount struct {
	Category
	Count int `json:"count"`
}

// Availability answers a purchase-quantity check on one line.
type Availability struct {
	LineID        int64         `json:"line_id"`
	Quantity      int           `json:"quantity"`
	Available     bool          `json:"is_product_available"`
	MinimumAmount MinimumAmount `json:"has_minimum_amount"`
}

// Options is the static selector data of the list views.
type Options struct {
	OrderOptions []OrderOption `json:"order_options"`
	PriceRanges  []PriceBand   `json:"price_ranges"`
	Filters      []string      `json:"filters"`
}

// FilterKeys returns the honored query keys.
func FilterKeys() []string {
	out := make([]string, len(filterKeys))
	copy(out, filterKeys)
	return out
}
