// Package push delivers ring notifications to the resident mobile app
// through a OneSignal-compatible REST API.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// Provider sends push notifications addressed by external user id.
type Provider struct {
	baseURL    string
	appID      string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a push provider from config.
func NewProvider(cfg config.PushConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    cfg.BaseURL,
		appID:      cfg.AppID,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "push"),
	}
}

type notificationRequest struct {
	AppID          string            `json:"app_id"`
	ExternalIDs    []string          `json:"include_external_user_ids"`
	Headings       map[string]string `json:"headings"`
	Contents       map[string]string `json:"contents"`
	Data           map[string]string `json:"data"`
	BigPicture     string            `json:"big_picture,omitempty"`
	IOSAttachments map[string]string `json:"ios_attachments,omitempty"`
}

type notificationResponse struct {
	ID     string `json:"id"`
	Errors any    `json:"errors,omitempty"`
}

// Send delivers n to a single user.
func (p *Provider) Send(ctx context.Context, userID uuid.UUID, n domain.RingNotice) error {
	reqBody := notificationRequest{
		AppID:       p.appID,
		ExternalIDs: []string{userID.String()},
		Headings:    map[string]string{"en": n.Title},
		Contents:    map[string]string{"en": n.Body},
		Data: map[string]string{
			"logId":  n.EventID.String(),
			"unitId": n.UnitID.String(),
		},
	}
	if n.PhotoURL != nil {
		reqBody.BigPicture = *n.PhotoURL
		reqBody.IOSAttachments = map[string]string{"photo": *n.PhotoURL}
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("push: encode request: %w", err)
	}

	resp, err := p.doWithRetry(ctx, payload, userID)
	if err != nil {
		return fmt.Errorf("push: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("push: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push: unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var out notificationResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("push: decode json: %w", err)
	}
	if out.ID == "" {
		return fmt.Errorf("push: not delivered: %v", out.Errors)
	}

	p.log.DebugContext(ctx, "push sent",
		slog.String("user_id", userID.String()),
		slog.String("notification_id", out.ID),
	)

	return nil
}

func (p *Provider) newRequest(ctx context.Context, payload []byte) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/notifications", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+p.apiKey)
	return req, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, payload []byte, userID uuid.UUID) (*http.Response, error) {
	req, err := p.newRequest(ctx, payload)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "push retry", slog.String("user_id", userID.String()), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(300 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	req, err = p.newRequest(ctx, payload)
	if err != nil {
		return nil, err
	}
	return p.httpClient.Do(req)
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n])
}
