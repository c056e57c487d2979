package intercom

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/pkg/ctxutil"
)

// OpenResult reports the outcome of an open.
type OpenResult struct {
	Event         domain.AccessEvent
	CommandSent   bool
	AlreadyOpened bool
}

// openableFrom lists the statuses an open may start from. A missed ring can
// still be opened while the visitor waits.
var openableFrom = []domain.AccessStatus{domain.AccessStatusRinging, domain.AccessStatusMissed}

// Open grants access for a ring: the event becomes opened by the caller and
// the door is commanded. The command is best-effort; the status change
// stands even when the controller did not receive it.
func (s *Service) Open(ctx context.Context, input OpenInput) (*OpenResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	target := input.Target
	if target == "" {
		target = domain.DoorTargetDefault
	}

	ec, err := s.events.GetContext(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get access event: %w", err)
	}

	if err := s.requireMember(ctx, userID, ec.Event.UnitID); err != nil {
		return nil, fmt.Errorf("open access event: %w", err)
	}

	if ec.Event.Status == domain.AccessStatusOpened {
		return &OpenResult{Event: ec.Event, AlreadyOpened: true}, nil
	}
	if ec.Event.Status == domain.AccessStatusRejected {
		return nil, fmt.Errorf("access event %s already rejected: %w", ec.Event.ID, domain.ErrConflict)
	}

	cmd, err := domain.ResolveDoor(ec.Unit, ec.Building, target, ec.Event.ID, s.now())
	if err != nil {
		return nil, err
	}

	won, err := s.events.Transition(ctx, domain.Transition{
		ID:       ec.Event.ID,
		To:       domain.AccessStatusOpened,
		From:     openableFrom,
		OpenedBy: &userID,
	})
	if err != nil {
		return nil, fmt.Errorf("open access event: %w", err)
	}
	if !won {
		return s.lostOpenRace(ctx, ec.Event)
	}

	log := s.log.With(
		slog.String("event_id", ec.Event.ID.String()),
		slog.String("user_id", userID.String()),
	)

	sent := s.door.SendDoorCommand(ctx, cmd)
	if !sent {
		log.WarnContext(ctx, "door command not confirmed, access still granted",
			slog.String("target", target.String()),
		)
	}

	s.bus.Publish(ctx, domain.NewEvent(ec.Event.UnitID, domain.DoorOpenedPayload{
		LogID:       ec.Event.ID,
		OpenedBy:    &userID,
		Target:      target,
		CommandSent: sent,
	}, s.now()))

	log.InfoContext(ctx, "access event opened",
		slog.String("target", target.String()),
		slog.Bool("command_sent", sent),
	)

	opened := ec.Event
	opened.Status = domain.AccessStatusOpened
	opened.OpenedBy = &userID

	return &OpenResult{Event: opened, CommandSent: sent}, nil
}

// lostOpenRace resolves an open whose conditional update matched nothing:
// another writer got there first.
func (s *Service) lostOpenRace(ctx context.Context, ev domain.AccessEvent) (*OpenResult, error) {
	current, err := s.events.GetByID(ctx, ev.ID)
	if err != nil {
		return nil, fmt.Errorf("reload access event: %w", err)
	}
	if current.Status == domain.AccessStatusOpened {
		return &OpenResult{Event: *current, AlreadyOpened: true}, nil
	}
	return nil, fmt.Errorf("access event %s is %s: %w", ev.ID, current.Status, domain.ErrConflict)
}

// Reject declines a ring that is still ringing.
func (s *Service) Reject(ctx context.Context, eventID uuid.UUID) (*domain.AccessEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get access event: %w", err)
	}

	if err := s.requireMember(ctx, userID, ev.UnitID); err != nil {
		return nil, fmt.Errorf("reject access event: %w", err)
	}

	won, err := s.events.Transition(ctx, domain.Transition{
		ID:   ev.ID,
		To:   domain.AccessStatusRejected,
		From: []domain.AccessStatus{domain.AccessStatusRinging},
	})
	if err != nil {
		return nil, fmt.Errorf("reject access event: %w", err)
	}
	if !won {
		return nil, fmt.Errorf("access event %s is no longer ringing: %w", ev.ID, domain.ErrConflict)
	}

	s.bus.Publish(ctx, domain.NewEvent(ev.UnitID, domain.RejectedPayload{LogID: ev.ID}, s.now()))

	s.log.InfoContext(ctx, "access event rejected",
		slog.String("event_id", ev.ID.String()),
		slog.String("user_id", userID.String()),
	)

	ev.Status = domain.AccessStatusRejected
	return ev, nil
}

// Respond stores a reply for the visitor. The event keeps ringing so the
// visitor can still be let in or turned away.
func (s *Service) Respond(ctx context.Context, input RespondInput) (*domain.AccessEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.MaxMessageLength); err != nil {
		return nil, err
	}
	message := strings.TrimSpace(input.Message)

	ev, err := s.events.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get access event: %w", err)
	}

	if err := s.requireMember(ctx, userID, ev.UnitID); err != nil {
		return nil, fmt.Errorf("respond to access event: %w", err)
	}

	applied, err := s.events.SetResponse(ctx, ev.ID, message)
	if err != nil {
		return nil, fmt.Errorf("respond to access event: %w", err)
	}
	if !applied {
		return nil, fmt.Errorf("access event %s is no longer ringing: %w", ev.ID, domain.ErrConflict)
	}

	s.bus.Publish(ctx, domain.NewEvent(ev.UnitID, domain.ResponseSentPayload{
		LogID:   ev.ID,
		Message: message,
	}, s.now()))

	s.log.InfoContext(ctx, "response sent",
		slog.String("event_id", ev.ID.String()),
		slog.String("user_id", userID.String()),
	)

	ev.ResponseMessage = &message
	return ev, nil
}
