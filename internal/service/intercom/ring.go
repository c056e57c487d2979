package intercom

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// Ring result messages shown to the visitor.
const (
	MessageRingSent     = "ring sent"
	MessageNoRecipients = "no residents are available for this unit"
)

// RingResult is what the visitor gets back from a ring.
type RingResult struct {
	EventID    uuid.UUID
	Recipients int
	// Delivered counts notifications accepted by a provider, across channels.
	Delivered int
	Message   string
}

// Ring records a visitor ring, notifies the unit's residents and announces
// the ring on the unit channel. A denied ring creates nothing and returns
// domain.ErrRateLimited.
func (s *Service) Ring(ctx context.Context, input RingInput) (*RingResult, error) {
	if err := input.Validate(s.cfg.MaxMessageLength); err != nil {
		return nil, err
	}

	unit, err := s.units.GetByID(ctx, input.UnitID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("unit not found: %w", err)
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}

	// Recipients are loaded before the limiter and the insert so a failed
	// lookup neither spends a ring slot nor leaves a record behind.
	recipients, err := s.members.ListRecipients(ctx, input.UnitID, s.now())
	if err != nil {
		s.metrics.Rings.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("list recipients: %w", err)
	}

	limit := s.limiter.CheckLimit(ctx, input.UnitID.String(), s.cfg.RingLimit, s.cfg.RingWindow)
	if !limit.Allowed {
		s.metrics.Rings.WithLabelValues("rate_limited").Inc()
		s.metrics.RateLimited.WithLabelValues("ring").Inc()
		s.log.InfoContext(ctx, "ring rate limited",
			slog.String("unit_id", input.UnitID.String()),
			slog.Int64("count", limit.Count),
		)
		return nil, domain.ErrRateLimited
	}

	photoURL := s.uploadPhoto(ctx, input.UnitID, input.Photo)

	ev, err := s.events.Create(ctx, &domain.AccessEvent{
		ID:             uuid.New(),
		UnitID:         input.UnitID,
		PhotoURL:       photoURL,
		VisitorMessage: trimOrNil(input.Message),
		Status:         domain.AccessStatusRinging,
		CreatedAt:      s.now(),
	})
	if err != nil {
		s.metrics.Rings.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("create access event: %w", err)
	}

	log := s.log.With(
		slog.String("event_id", ev.ID.String()),
		slog.String("unit_id", ev.UnitID.String()),
	)

	if len(recipients) == 0 {
		s.metrics.Rings.WithLabelValues("no_recipients").Inc()
		log.InfoContext(ctx, "ring without recipients")
		return &RingResult{EventID: ev.ID, Message: MessageNoRecipients}, nil
	}

	report := s.notifier.NotifyRing(ctx, recipients, domain.NewRingNotice(*ev, *unit))

	s.bus.Publish(ctx, domain.NewEvent(ev.UnitID, domain.RingingPayload{
		LogID:    ev.ID,
		PhotoURL: ev.PhotoURL,
		Message:  ev.VisitorMessage,
	}, s.now()))

	delivered := report.PushSent + report.ChatSent
	attrs := []any{
		slog.Int("recipients", len(recipients)),
		slog.Int("push_sent", report.PushSent),
		slog.Int("push_failed", report.PushFailed),
		slog.Int("chat_sent", report.ChatSent),
		slog.Int("chat_failed", report.ChatFailed),
	}
	if delivered == 0 {
		// Still a success: the record is written and open streams see RINGING.
		s.metrics.Rings.WithLabelValues("undelivered").Inc()
		log.WarnContext(ctx, "ring reached no device", attrs...)
	} else {
		s.metrics.Rings.WithLabelValues("ok").Inc()
		log.InfoContext(ctx, "ring delivered", attrs...)
	}

	return &RingResult{
		EventID:    ev.ID,
		Recipients: len(recipients),
		Delivered:  delivered,
		Message:    MessageRingSent,
	}, nil
}

// uploadPhoto stores the visitor photo when one was sent and a store is
// configured. Failures drop the photo and keep the ring going.
func (s *Service) uploadPhoto(ctx context.Context, unitID uuid.UUID, photo []byte) *string {
	if len(photo) == 0 || s.photos == nil {
		return nil
	}

	url, err := s.photos.UploadPhoto(ctx, unitID, photo)
	if err != nil {
		s.log.WarnContext(ctx, "photo upload failed, ringing without photo",
			slog.String("unit_id", unitID.String()),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &url
}
