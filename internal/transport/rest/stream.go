package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/service/stream"
	"github.com/heartmarshall/intercom-backend/pkg/ctxutil"
)

type streamHub interface {
	Serve(ctx context.Context, userID uuid.UUID, sink stream.Sink) error
}

// StreamHandler serves the resident event stream as text/event-stream.
type StreamHandler struct {
	hub streamHub
	log *slog.Logger
}

// NewStreamHandler creates a StreamHandler.
func NewStreamHandler(hub streamHub, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{hub: hub, log: logger.With("handler", "stream")}
}

// Stream handles GET /v1/stream. It blocks until the client goes away, the
// server shuts down or the subscription fails.
func (h *StreamHandler) Stream(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	sink := newSSESink(w)
	err := h.hub.Serve(r.Context(), userID, sink)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return
	case !sink.started:
		handleError(h.log, w, r, err)
	case errors.Is(err, stream.ErrSubscriptionClosed):
		h.log.InfoContext(r.Context(), "stream ended", slog.String("reason", err.Error()))
	default:
		h.log.WarnContext(r.Context(), "stream failed", slog.String("error", err.Error()))
	}
}

// sseSink writes server-sent event frames. Headers go out with the first
// frame so that admission errors can still be answered as plain JSON.
type sseSink struct {
	w       http.ResponseWriter
	rc      *http.ResponseController
	started bool
}

func newSSESink(w http.ResponseWriter) *sseSink {
	return &sseSink{w: w, rc: http.NewResponseController(w)}
}

func (s *sseSink) start() {
	if s.started {
		return
	}
	h := s.w.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	s.w.WriteHeader(http.StatusOK)
	s.started = true
}

// Event writes one data frame.
func (s *sseSink) Event(data []byte) error {
	s.start()
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", data); err != nil {
		return err
	}
	return s.rc.Flush()
}

// Comment writes a comment frame, which EventSource clients ignore.
func (s *sseSink) Comment(text string) error {
	s.start()
	if _, err := fmt.Fprintf(s.w, ": %s\n\n", text); err != nil {
		return err
	}
	return s.rc.Flush()
}
