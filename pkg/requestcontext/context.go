// Package requestcontext provides HTTP-independent context accessors for request-scoped values.
//
// Middleware sets these values; services read them. Keeping the package free of
// net/http lets services import it without pulling in transport code.
//
// Usage in services (read values):
//
//	viewer := requestcontext.Viewer(ctx)
//	requestID := requestcontext.RequestID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithViewer(ctx, requestcontext.ViewerInfo{ID: "42"})
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	viewerKey      struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyViewer      = viewerKey{}
	ContextKeyClientIP    = clientIPKey{}
	ContextKeyUserAgent   = userAgentKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// ViewerInfo identifies the storefront customer looking at a list.
// The zero value is an anonymous guest.
type ViewerInfo struct {
	// ID is the storefront customer id.
	ID string
	// ListCode is the babylist the customer owns, if any.
	ListCode string
	// CardNumber is the loyalty card of the customer, if any.
	CardNumber string
}

// IsAnonymous reports whether no customer is signed in.
func (v ViewerInfo) IsAnonymous() bool {
	return v.ID == ""
}

// -----------------------------------------------------------------------------
// Viewer
// -----------------------------------------------------------------------------

// Viewer retrieves the viewer from the context.
// Returns the anonymous viewer if not set.
func Viewer(ctx context.Context) ViewerInfo {
	if v, ok := ctx.Value(ContextKeyViewer).(ViewerInfo); ok {
		return v
	}
	return ViewerInfo{}
}

// WithViewer injects a viewer into the context.
func WithViewer(ctx context.Context, viewer ViewerInfo) context.Context {
	return context.WithValue(ctx, ContextKeyViewer, viewer)
}

// -----------------------------------------------------------------------------
// Client metadata (IP, User-Agent)
// -----------------------------------------------------------------------------

// ClientIP retrieves the client IP address from the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

// UserAgent retrieves the User-Agent from the context.
func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// WithClientMetadata injects client IP and User-Agent into a context.
// Useful for service unit tests that don't run the full HTTP middleware chain.
func WithClientMetadata(ctx context.Context, clientIP, userAgent string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClientIP, clientIP)
	ctx = context.WithValue(ctx, ContextKeyUserAgent, userAgent)
	return ctx
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// -----------------------------------------------------------------------------
// Request time
// -----------------------------------------------------------------------------

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() if not set (for non-HTTP contexts like workers, CLI, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
// Useful for:
//   - Service unit tests that don't run the full HTTP middleware chain
//   - Reservation window checks that must agree with the rest of the request
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
