package middleware

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies mws outermost first: Chain(a, b)(h) is a(b(h)).
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// StackConfig holds what the shared request stack needs.
type StackConfig struct {
	TrustProxy bool
	CORS       config.CORSConfig
	Logger     *slog.Logger
	Metrics    *metrics.Metrics
	Tokens     TokenValidator
}

// Stack is the middleware every route passes through, in order:
//
//   - RequestID and ClientIP first, so every log line and limiter key has them;
//   - Logger outside Recovery, so a recovered panic is logged as a 500;
//   - CORS before Auth, so preflights never need a token;
//   - Auth last, leaving anonymous requests to the handlers.
//
// Per-route limits are added by the router on top of this.
func Stack(cfg StackConfig) Middleware {
	return Chain(
		RequestID,
		ClientIP(cfg.TrustProxy),
		Logger(cfg.Logger),
		Recovery(cfg.Logger, cfg.Metrics),
		CORS(cfg.CORS),
		Auth(cfg.Tokens),
	)
}
