package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/heartmarshall/intercom-backend/internal/metrics"
	"github.com/heartmarshall/intercom-backend/pkg/ctxutil"
)

// Recovery turns a handler panic into a logged, counted 500. When the
// handler had already started its response (an event stream, typically)
// the connection is left to close without a second status line.
func Recovery(logger *slog.Logger, m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := wrapWriter(w)

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				m.Panics.Inc()
				logger.ErrorContext(r.Context(), "panic recovered",
					slog.Any("error", rec),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
					slog.Bool("response_started", sw.started),
				)

				if sw.started {
					return
				}
				writeError(sw, http.StatusInternalServerError, "internal server error")
			}()

			next.ServeHTTP(sw, r)
		})
	}
}
