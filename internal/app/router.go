package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
	"github.com/heartmarshall/intercom-backend/internal/transport/middleware"
	"github.com/heartmarshall/intercom-backend/internal/transport/rest"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health   *rest.HealthHandler
	Intercom *rest.IntercomHandler
	Stream   *rest.StreamHandler
	Webhook  *rest.WebhookHandler
}

// RouterDeps are the collaborators of the middleware chain.
type RouterDeps struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Tokens  middleware.TokenValidator
	Limiter middleware.RateLimiter
}

// NewRouter mounts every endpoint behind the shared middleware stack.
// Rings are public, so they also pass the per-IP limit. Webhook deliveries
// do not: the chat platform posts from a handful of addresses, and a signed
// delivery must always be acknowledged. Their gate is the signature check.
func NewRouter(h Handlers, d RouterDeps) http.Handler {
	ipLimit := middleware.RateLimit(d.Limiter, d.Metrics, d.Config.Intercom.IPLimit, d.Config.Intercom.IPWindow)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("GET /metrics", d.Metrics.Handler())

	mux.Handle("POST /v1/units/{unitId}/ring", ipLimit(http.HandlerFunc(h.Intercom.Ring)))
	mux.HandleFunc("GET /v1/units/{unitId}/access-events", h.Intercom.History)
	mux.HandleFunc("GET /v1/access-events/{id}", h.Intercom.Status)
	mux.HandleFunc("POST /v1/access-events/{id}/open", h.Intercom.Open)
	mux.HandleFunc("POST /v1/access-events/{id}/reject", h.Intercom.Reject)
	mux.HandleFunc("POST /v1/access-events/{id}/respond", h.Intercom.Respond)
	mux.HandleFunc("GET /v1/stream", h.Stream.Stream)

	mux.HandleFunc("GET /webhooks/whatsapp", h.Webhook.Verify)
	mux.HandleFunc("POST /webhooks/whatsapp", h.Webhook.Deliver)

	stack := middleware.Stack(middleware.StackConfig{
		TrustProxy: d.Config.Server.TrustProxy,
		CORS:       d.Config.CORS,
		Logger:     d.Logger,
		Metrics:    d.Metrics,
		Tokens:     d.Tokens,
	})

	return stack(mux)
}
