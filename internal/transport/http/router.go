// Package httptransport assembles the public HTTP surface: middleware chain,
// registration routes, health and metrics endpoints.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	registrationHandler "regate/internal/registration/handler"
	"regate/internal/transport/http/shared"
	"regate/pkg/platform/middleware/accesslog"
	"regate/pkg/platform/middleware/metadata"
	"regate/pkg/platform/middleware/requesttime"
)

// HealthCheck reports the readiness of one dependency.
type HealthCheck func(ctx context.Context) error

// Config carries everything the router wires together.
type Config struct {
	Logger       *slog.Logger
	Registration *registrationHandler.Handler

	// SignupRatePerMinute throttles POST /signup per client IP. Zero
	// disables throttling.
	SignupRatePerMinute int

	// HealthChecks run on /healthz, keyed by dependency name.
	HealthChecks map[string]HealthCheck
}

// NewRouter builds the full middleware chain and mounts all endpoints.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requesttime.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(accesslog.Middleware(cfg.Logger))
	r.Use(chimiddleware.Timeout(30 * time.Second))

	r.Group(func(r chi.Router) {
		if cfg.SignupRatePerMinute > 0 {
			r.Use(httprate.LimitByIP(cfg.SignupRatePerMinute, time.Minute))
		}
		cfg.Registration.Register(r)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", healthHandler(cfg.HealthChecks))

	return r
}

// healthHandler pings every registered dependency and reports per-dependency
// state. Any failure turns the overall response into a 503.
func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		deps := make(map[string]string, len(checks))
		for name, check := range checks {
			if err := check(ctx); err != nil {
				deps[name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			deps[name] = "ok"
		}

		body := map[string]any{"status": "ok"}
		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		if len(deps) > 0 {
			body["dependencies"] = deps
		}
		shared.WriteJSON(ctx, w, status, body)
	}
}
