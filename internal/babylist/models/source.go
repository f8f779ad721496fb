package models

import "time"

// ClosedListErrorCode is the list service error code that reports a closed
// list while still carrying its data.
const ClosedListErrorCode = 5

// ListQuery is the payload sent to the list service to fetch a list.
type ListQuery struct {
	ListCode string `json:"listCode"`
	StoreID  string `json:"storeId"`
}

// NewListQuery builds the query for a list id. The store id is the first
// four characters of the list code.
func NewListQuery(listID string) ListQuery {
	store := listID
	if len(store) > 4 {
		store = store[:4]
	}
	return ListQuery{ListCode: listID, StoreID: store}
}

// ListResponse is the decoded list service reply.
type ListResponse struct {
	Success   bool
	ErrorCode int
	Message   string
	Lists     []RawRegistry
}

// Store is a physical shop a list was opened in.
type Store struct {
	ID            int64  `json:"id"`
	LocateID      string `json:"locate_id"`
	Name          string `json:"name"`
	AllowPurchase bool   `json:"allow_purchase"`
}

// View names the surface a summary is rendered for.
type View string

const (
	ViewGuest   View = "guest"
	ViewAccount View = "account"
)

// ViewedEvent records that a list was looked at.
type ViewedEvent struct {
	EventID    string
	ListID     string
	View       View
	ViewerID   string
	UserAgent  string
	RequestID  string
	OccurredAt time.Time
}
