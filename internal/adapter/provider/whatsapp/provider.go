// Package whatsapp sends ring templates and plain replies through the
// WhatsApp Cloud API.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// ErrInvalidPhone is returned when a recipient number has no digits.
var ErrInvalidPhone = errors.New("whatsapp: invalid phone number")

// Provider is a Cloud API client bound to one sender phone number.
type Provider struct {
	baseURL       string
	phoneNumberID string
	accessToken   string
	templateName  string
	templateLang  string
	httpClient    *http.Client
	log           *slog.Logger
}

// NewProvider creates a provider from config.
func NewProvider(cfg config.WhatsAppConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:       cfg.BaseURL,
		phoneNumberID: cfg.PhoneNumberID,
		accessToken:   cfg.AccessToken,
		templateName:  cfg.TemplateName,
		templateLang:  cfg.TemplateLang,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		log:           logger.With("adapter", "whatsapp"),
	}
}

type message struct {
	MessagingProduct string    `json:"messaging_product"`
	To               string    `json:"to"`
	Type             string    `json:"type"`
	Template         *template `json:"template,omitempty"`
	Text             *text     `json:"text,omitempty"`
}

type text struct {
	Body string `json:"body"`
}

type template struct {
	Name       string      `json:"name"`
	Language   language    `json:"language"`
	Components []component `json:"components"`
}

type language struct {
	Code string `json:"code"`
}

type component struct {
	Type       string      `json:"type"`
	SubType    string      `json:"sub_type,omitempty"`
	Index      string      `json:"index,omitempty"`
	Parameters []parameter `json:"parameters"`
}

type parameter struct {
	Type    string `json:"type"`
	Text    string `json:"text,omitempty"`
	Payload string `json:"payload,omitempty"`
	Image   *link  `json:"image,omitempty"`
}

type link struct {
	Link string `json:"link"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error,omitempty"`
}

// SendRingTemplate sends the ring template to phone. The template carries a
// quick-reply button whose payload opens the door for this ring.
func (p *Provider) SendRingTemplate(ctx context.Context, phone string, n domain.RingNotice) error {
	to := domain.PhoneDigits(phone)
	if to == "" {
		return ErrInvalidPhone
	}

	visitorText := "-"
	if n.Message != nil && *n.Message != "" {
		visitorText = *n.Message
	}

	components := make([]component, 0, 3)
	if n.PhotoURL != nil {
		components = append(components, component{
			Type:       "header",
			Parameters: []parameter{{Type: "image", Image: &link{Link: *n.PhotoURL}}},
		})
	}
	components = append(components,
		component{
			Type: "body",
			Parameters: []parameter{
				{Type: "text", Text: n.UnitLabel},
				{Type: "text", Text: visitorText},
			},
		},
		component{
			Type:       "button",
			SubType:    "quick_reply",
			Index:      "0",
			Parameters: []parameter{{Type: "payload", Payload: domain.OpenReplyPayload(n.EventID)}},
		},
	)

	return p.send(ctx, message{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "template",
		Template: &template{
			Name:       p.templateName,
			Language:   language{Code: p.templateLang},
			Components: components,
		},
	})
}

// SendText sends a free-form reply. The Cloud API only accepts it inside the
// customer service window opened by an inbound message.
func (p *Provider) SendText(ctx context.Context, phone, body string) error {
	to := domain.PhoneDigits(phone)
	if to == "" {
		return ErrInvalidPhone
	}

	return p.send(ctx, message{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             &text{Body: body},
	})
}

func (p *Provider) send(ctx context.Context, msg message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("whatsapp: encode request: %w", err)
	}

	reqURL := p.baseURL + "/" + p.phoneNumberID + "/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("whatsapp: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("whatsapp: read body: %w", err)
	}

	var out sendResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return fmt.Errorf("whatsapp: unexpected status %d", resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK || out.Error != nil {
		if out.Error != nil {
			return fmt.Errorf("whatsapp: status %d: %s (code %d)", resp.StatusCode, out.Error.Message, out.Error.Code)
		}
		return fmt.Errorf("whatsapp: unexpected status %d", resp.StatusCode)
	}

	if len(out.Messages) > 0 {
		p.log.DebugContext(ctx, "whatsapp message accepted",
			slog.String("type", msg.Type),
			slog.String("message_id", out.Messages[0].ID),
		)
	}

	return nil
}
