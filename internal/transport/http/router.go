// Package httptransport assembles the HTTP surface of the service.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"babylist/internal/platform/metrics"
	"babylist/pkg/platform/httputil"
	"babylist/pkg/platform/middleware/auth"
	"babylist/pkg/platform/middleware/metadata"
	"babylist/pkg/platform/middleware/ratelimit"
	"babylist/pkg/platform/middleware/request"
	"babylist/pkg/platform/middleware/requesttime"
)

// RouteRegistrar mounts a feature's routes.
type RouteRegistrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Deps struct {
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	// Viewer validates storefront tokens. Nil serves every request as a guest.
	Viewer auth.TokenValidator
	// RateLimit throttles feature routes per client IP when set.
	RateLimit *ratelimit.Limiter
	Health    map[string]HealthCheck
	Features  []RouteRegistrar
}

// NewRouter wires middleware, operational endpoints and feature routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(request.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(request.Logger(deps.Logger))
	r.Use(countRequests(deps.Metrics))

	r.Get("/health", handleHealth(deps.Health, deps.Logger))
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		if deps.RateLimit != nil {
			r.Use(ratelimit.PerClientIP(deps.RateLimit, deps.Logger))
		}
		if deps.Viewer != nil {
			r.Use(auth.OptionalViewer(deps.Viewer, deps.Logger))
		}
		for _, feature := range deps.Features {
			feature.Register(r)
		}
	})
	return r
}

func countRequests(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			m.ObserveRequest(route, ww.Status())
		})
	}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func handleHealth(checks map[string]HealthCheck, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{Status: "ok"}
		status := http.StatusOK
		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
		}
		for name, check := range checks {
			if err := check(r.Context()); err != nil {
				logger.WarnContext(r.Context(), "health check failed", "check", name, "error", err)
				resp.Checks[name] = "down"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = "up"
		}
		httputil.WriteJSON(w, status, resp)
	}
}
