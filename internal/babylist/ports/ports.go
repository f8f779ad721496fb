// Package ports defines the collaborators the babylist core consumes.
// Adapters and stores implement them; services depend only on these interfaces.
package ports

import (
	"context"
	"time"

	"babylist/internal/babylist/models"
)

// ListSource fetches lists from the list-management service.
// A non-nil error means no usable response was received.
type ListSource interface {
	Query(ctx context.Context, query models.ListQuery) (*models.ListResponse, error)
}

// CatalogLookup resolves SKUs to live catalog entries in one bulk call.
// SKUs the catalog does not sell are absent from the result. Transport errors
// fail the whole call.
type CatalogLookup interface {
	BulkFetch(ctx context.Context, skus []string) (map[string]models.CatalogEntry, error)
}

// RecommendationLookup returns display metadata for SKUs the catalog does not sell.
type RecommendationLookup interface {
	Fetch(ctx context.Context, skus []string) (map[string]models.RecommendationEntry, error)
}

// ReservationLookup lists the lines of a registry ordered since a point in time.
type ReservationLookup interface {
	ReservedLines(ctx context.Context, registryID string, since time.Time) ([]models.LineRef, error)
}

// VipStatus answers loyalty-program membership.
type VipStatus interface {
	// IsVip reports whether a loyalty card belongs to a VIP customer.
	IsVip(ctx context.Context, cardNumber string) (bool, error)

	// IsVipViewer reports whether a storefront customer is VIP.
	IsVipViewer(ctx context.Context, viewerID string) (bool, error)
}

// CategoryMapping translates recommendation category codes to labels.
type CategoryMapping interface {
	Resolve(code string) string
}

// StoreDirectory finds the shop a list was opened in.
// Returns nil, nil when no shop has the locate id.
type StoreDirectory interface {
	FindByLocateID(ctx context.Context, locateID string) (*models.Store, error)
}

// Blacklist hides lists from every view.
type Blacklist interface {
	IsBlacklisted(listID string) bool
}

// CouponPolicy reports whether a viewer holds a coupon that forces regular prices.
type CouponPolicy interface {
	HasOverridingCoupon(ctx context.Context, viewerID string) (bool, error)
}

// EventPublisher emits list view events.
type EventPublisher interface {
	PublishViewed(ctx context.Context, event models.ViewedEvent) error
}
