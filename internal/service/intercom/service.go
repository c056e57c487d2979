// Package intercom implements the visitor ring pipeline and the resident
// decisions on a ring: open, reject and respond.
package intercom

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100

	missedReason = "missed"
)

type unitRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UnitDetails, error)
}

type eventRepo interface {
	Create(ctx context.Context, ev *domain.AccessEvent) (*domain.AccessEvent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AccessEvent, error)
	GetContext(ctx context.Context, id uuid.UUID) (*domain.AccessEventContext, error)
	Transition(ctx context.Context, t domain.Transition) (bool, error)
	SetResponse(ctx context.Context, id uuid.UUID, message string) (bool, error)
	ListByUnit(ctx context.Context, unitID uuid.UUID, limit int) ([]domain.AccessEvent, error)
	MarkMissedBefore(ctx context.Context, cutoff time.Time) ([]domain.AccessEvent, error)
}

type membershipRepo interface {
	ListRecipients(ctx context.Context, unitID uuid.UUID, now time.Time) ([]domain.Recipient, error)
	IsActiveMember(ctx context.Context, userID, unitID uuid.UUID, now time.Time) (bool, error)
}

type rateLimiter interface {
	CheckLimit(ctx context.Context, key string, max int, window time.Duration) domain.LimitResult
}

type eventBus interface {
	Publish(ctx context.Context, ev domain.Event)
}

type notifier interface {
	NotifyRing(ctx context.Context, recipients []domain.Recipient, n domain.RingNotice) domain.FanoutReport
}

type doorDispatcher interface {
	SendDoorCommand(ctx context.Context, cmd domain.DoorCommand) bool
}

type photoStore interface {
	UploadPhoto(ctx context.Context, unitID uuid.UUID, data []byte) (string, error)
}

// Service provides the intercom operations.
type Service struct {
	units    unitRepo
	events   eventRepo
	members  membershipRepo
	limiter  rateLimiter
	bus      eventBus
	notifier notifier
	door     doorDispatcher
	photos   photoStore
	cfg      config.IntercomConfig
	metrics  *metrics.Metrics
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new intercom service.
func NewService(
	log *slog.Logger,
	cfg config.IntercomConfig,
	m *metrics.Metrics,
	units unitRepo,
	events eventRepo,
	members membershipRepo,
	limiter rateLimiter,
	bus eventBus,
	notifier notifier,
	door doorDispatcher,
) *Service {
	return &Service{
		units:    units,
		events:   events,
		members:  members,
		limiter:  limiter,
		bus:      bus,
		notifier: notifier,
		door:     door,
		cfg:      cfg,
		metrics:  m,
		log:      log.With("service", "intercom"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithPhotoStore returns a copy of the service that uploads visitor photos.
// Without one, rings carrying a photo proceed without it.
func (s *Service) WithPhotoStore(p photoStore) *Service {
	cp := *s
	cp.photos = p
	return &cp
}

// requireMember returns domain.ErrForbidden unless userID is an active
// member of unitID.
func (s *Service) requireMember(ctx context.Context, userID, unitID uuid.UUID) error {
	ok, err := s.members.IsActiveMember(ctx, userID, unitID, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrForbidden
	}
	return nil
}
