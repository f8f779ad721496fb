// Package auth identifies the storefront customer behind a request.
package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"babylist/pkg/platform/httputil"
	"babylist/pkg/requestcontext"
)

// TokenValidator turns a bearer token into a viewer.
type TokenValidator interface {
	Validate(token string) (requestcontext.ViewerInfo, error)
}

// OptionalViewer attaches the viewer of a bearer token to the context.
// Requests without a token continue as anonymous guests; a token that fails
// validation is rejected with 401.
func OptionalViewer(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			viewer, err := validator.Validate(strings.TrimSpace(token))
			if err != nil {
				logger.WarnContext(ctx, "rejected viewer token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithViewer(ctx, viewer)))
		})
	}
}
