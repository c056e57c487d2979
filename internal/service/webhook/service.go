// Package webhook handles inbound WhatsApp Cloud API deliveries: the
// subscription handshake and quick-reply taps that open the door.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
)

// SignatureHeader carries the HMAC of the raw body.
const SignatureHeader = "X-Hub-Signature-256"

const (
	subscribeMode   = "subscribe"
	signaturePrefix = "sha256="
	openedReply     = "Door opened."
)

type eventRepo interface {
	GetContext(ctx context.Context, id uuid.UUID) (*domain.AccessEventContext, error)
	Transition(ctx context.Context, t domain.Transition) (bool, error)
}

type membershipRepo interface {
	FindActiveMemberByPhone(ctx context.Context, unitID uuid.UUID, digits string, now time.Time) (uuid.UUID, error)
}

type doorDispatcher interface {
	SendDoorCommand(ctx context.Context, cmd domain.DoorCommand) bool
}

type eventBus interface {
	Publish(ctx context.Context, ev domain.Event)
}

type replier interface {
	SendText(ctx context.Context, phone, body string) error
}

// Service processes webhook deliveries.
type Service struct {
	events      eventRepo
	members     membershipRepo
	door        doorDispatcher
	bus         eventBus
	replier     replier
	verifyToken string
	appSecret   []byte
	metrics     *metrics.Metrics
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a webhook service.
func NewService(
	log *slog.Logger,
	cfg config.WhatsAppConfig,
	m *metrics.Metrics,
	events eventRepo,
	members membershipRepo,
	door doorDispatcher,
	bus eventBus,
) *Service {
	return &Service{
		events:      events,
		members:     members,
		door:        door,
		bus:         bus,
		verifyToken: cfg.VerifyToken,
		appSecret:   []byte(cfg.AppSecret),
		metrics:     m,
		log:         log.With("service", "webhook"),
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// WithReplier returns a copy of the service that confirms opens to the
// sender.
func (s *Service) WithReplier(r replier) *Service {
	cp := *s
	cp.replier = r
	return &cp
}

// Verify answers the subscription handshake. It returns the challenge to
// echo, or domain.ErrForbidden when the token does not match.
func (s *Service) Verify(mode, token, challenge string) (string, error) {
	if mode != subscribeMode || s.verifyToken == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(s.verifyToken)) != 1 {
		return "", domain.ErrForbidden
	}
	return challenge, nil
}

// ValidSignature reports whether header holds the HMAC-SHA256 of body
// under the app secret.
func (s *Service) ValidSignature(body []byte, header string) bool {
	hexSig, ok := strings.CutPrefix(strings.TrimSpace(header), signaturePrefix)
	if !ok {
		return false
	}
	got, err := hex.DecodeString(hexSig)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, s.appSecret)
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}
