package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	dErrors "babylist/pkg/domain-errors"
	pstrings "babylist/pkg/platform/strings"
)

// Registry is the aggregate root for one babylist as returned by the list
// service. It is read-only after construction; mutations happen upstream.
//
// Invariants:
//   - ID is non-empty
//   - Lines are normalized (0 <= AvailableQty <= Quantity)
//   - EndDate is the close date for closed lists, the expiration date otherwise
type Registry struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	SecondParentName string
	OpenDate         *time.Time
	EndDate          *time.Time
	IsClosed         bool
	DonationTotal    decimal.Decimal
	CardNumber       string
	StoreLocateID    string
	IsVip            bool
	Lines            []RawLine
}

// RawRegistry is a list as decoded from the list service, before validation.
type RawRegistry struct {
	ListCode       string
	MotherName     string
	MotherSurname  string
	FatherName     string
	FatherSurname  string
	Email          string
	OpenDate       string
	CloseDate      string
	ExpirationDate string
	IsClosed       bool
	DonationTotal  decimal.Decimal
	FidelityCode   string
	StoreLocateID  string
	Lines          []RawLine
}

// upstreamDateLayouts are the date formats the list service has been seen to emit.
var upstreamDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NewRegistry validates a raw list and builds the aggregate.
func NewRegistry(raw RawRegistry) (*Registry, error) {
	id := strings.TrimSpace(raw.ListCode)
	if id == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "list code cannot be empty")
	}

	end := raw.ExpirationDate
	if raw.IsClosed && raw.CloseDate != "" {
		end = raw.CloseDate
	}

	lines := make([]RawLine, 0, len(raw.Lines))
	for _, line := range raw.Lines {
		lines = append(lines, line.Normalized())
	}

	return &Registry{
		ID:               id,
		FirstName:        strings.TrimSpace(raw.MotherName),
		LastName:         strings.TrimSpace(raw.MotherSurname),
		Email:            raw.Email,
		SecondParentName: strings.TrimSpace(raw.FatherName + " " + raw.FatherSurname),
		OpenDate:         parseUpstreamDate(raw.OpenDate),
		EndDate:          parseUpstreamDate(end),
		IsClosed:         raw.IsClosed,
		DonationTotal:    raw.DonationTotal,
		CardNumber:       raw.FidelityCode,
		StoreLocateID:    raw.StoreLocateID,
		Lines:            lines,
	}, nil
}

func parseUpstreamDate(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	for _, layout := range upstreamDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// ListName is the owner's first and last name.
func (r *Registry) ListName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// FullName joins the owner and the second parent, "Anna Rossi e Marco Bianchi".
func (r *Registry) FullName() string {
	name := r.ListName()
	if name == "" {
		return ""
	}
	if r.SecondParentName == "" {
		return name
	}
	return fmt.Sprintf("%s e %s", name, r.SecondParentName)
}

// IsEmpty reports whether the list has no lines.
func (r *Registry) IsEmpty() bool {
	return len(r.Lines) == 0
}

// HasMustHave reports whether any line is ranked "must have".
func (r *Registry) HasMustHave() bool {
	for _, line := range r.Lines {
		if line.IsMustHave() {
			return true
		}
	}
	return false
}

// SKUs returns the distinct non-empty SKUs in line order.
func (r *Registry) SKUs() []string {
	skus := make([]string, 0, len(r.Lines))
	for _, line := range r.Lines {
		skus = append(skus, line.SKU)
	}
	return pstrings.DedupeAndTrim(skus)
}

// LineByID returns the line with the given id.
func (r *Registry) LineByID(lineID int64) (RawLine, bool) {
	for _, line := range r.Lines {
		if line.LineID == lineID {
			return line, true
		}
	}
	return RawLine{}, false
}

// LineBySKU returns the first line with the given SKU.
func (r *Registry) LineBySKU(sku string) (RawLine, bool) {
	for _, line := range r.Lines {
		if line.SKU == sku {
			return line, true
		}
	}
	return RawLine{}, false
}

// DaysLeft returns whole days until EndDate, or nil when there is no end
// date, it has passed, or less than a day remains.
func (r *Registry) DaysLeft(now time.Time) *int {
	if r.EndDate == nil || r.EndDate.Before(now) {
		return nil
	}
	days := int(r.EndDate.Sub(now).Hours() / 24)
	if days == 0 {
		return nil
	}
	return &days
}

// IsProductAvailable reports whether quantity units of the line can still be bought.
func (r *Registry) IsProductAvailable(lineID int64, quantity int) bool {
	line, ok := r.LineByID(lineID)
	if !ok {
		return false
	}
	return line.AvailableQty >= quantity
}

// MinimumAmount is the outcome of checking whether a purchase would take
// exactly the remaining quantity of a line.
type MinimumAmount string

const (
	// MinimumAmountUnknown means the line is missing or cannot cover the quantity.
	MinimumAmountUnknown MinimumAmount = "unknown"
	MinimumAmountNotMet  MinimumAmount = "not_met"
	MinimumAmountMet     MinimumAmount = "met"
)

// HasMinimumAmount reports whether buying quantity would exhaust the line.
func (r *Registry) HasMinimumAmount(lineID int64, quantity int) MinimumAmount {
	if !r.IsProductAvailable(lineID, quantity) {
		return MinimumAmountUnknown
	}
	line, _ := r.LineByID(lineID)
	if line.AvailableQty == quantity {
		return MinimumAmountMet
	}
	return MinimumAmountNotMet
}
