package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/internal/service/webhook"
)

// maxWebhookBody caps one inbound delivery. Cloud API batches stay far below it.
const maxWebhookBody = 1 << 20

type webhookService interface {
	Verify(mode, token, challenge string) (string, error)
	HandleDelivery(ctx context.Context, body []byte, signature string) ([]string, error)
}

// WebhookHandler serves the chat channel callbacks.
type WebhookHandler struct {
	svc webhookService
	log *slog.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(svc webhookService, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, log: logger.With("handler", "webhook")}
}

// Verify handles the GET subscription handshake. Both the "hub."-prefixed
// parameters the Cloud API sends and bare names are accepted.
func (h *WebhookHandler) Verify(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	param := func(name string) string {
		if v := q.Get("hub." + name); v != "" {
			return v
		}
		return q.Get(name)
	}

	challenge, err := h.svc.Verify(param("mode"), param("verify_token"), param("challenge"))
	if err != nil {
		writeError(w, http.StatusForbidden, "forbidden")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, challenge) //nolint:errcheck
}

// Deliver handles POST deliveries. Only a bad signature is refused; every
// other payload is acknowledged.
func (h *WebhookHandler) Deliver(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcomes, err := h.svc.HandleDelivery(r.Context(), body, r.Header.Get(webhook.SignatureHeader))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			writeError(w, http.StatusUnauthorized, "invalid signature")
			return
		}
		h.log.ErrorContext(r.Context(), "webhook delivery failed", slog.String("error", err.Error()))
	}
	if len(outcomes) > 0 {
		h.log.InfoContext(r.Context(), "webhook delivery handled", slog.Any("outcomes", outcomes))
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
