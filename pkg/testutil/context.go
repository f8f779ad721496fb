package testutil

import (
	"net/http"

	"babylist/pkg/requestcontext"
)

// WithViewer attaches a storefront viewer to the request, as the optional
// viewer middleware does for a valid token.
func WithViewer(req *http.Request, viewer requestcontext.ViewerInfo) *http.Request {
	return req.WithContext(requestcontext.WithViewer(req.Context(), viewer))
}

// WithRequestID attaches a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
