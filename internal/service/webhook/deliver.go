package webhook

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// Outcomes of one reply, also used as metric labels.
const (
	OutcomeOpened         = "opened"
	OutcomeAlreadyOpened  = "already_opened"
	OutcomeNotOpenable    = "not_openable"
	OutcomeNotFound       = "not_found"
	OutcomeUnknownSender  = "unknown_sender"
	OutcomeNoController   = "no_controller"
	OutcomeDispatchFailed = "dispatch_failed"
	OutcomeIgnored        = "ignored"
	OutcomeError          = "error"
	OutcomeBadSignature   = "bad_signature"
)

// openableFrom lists the statuses a chat open may start from.
var openableFrom = []domain.AccessStatus{domain.AccessStatusRinging, domain.AccessStatusMissed}

// HandleDelivery verifies and processes one POSTed delivery. It returns
// domain.ErrUnauthorized for a bad signature and nil otherwise: unknown or
// irrelevant payloads are acknowledged so the sender does not retry them.
func (s *Service) HandleDelivery(ctx context.Context, body []byte, signature string) ([]string, error) {
	if !s.ValidSignature(body, signature) {
		s.metrics.WebhookDeliveries.WithLabelValues(OutcomeBadSignature).Inc()
		s.log.WarnContext(ctx, "webhook signature mismatch")
		return nil, domain.ErrUnauthorized
	}

	replies := parseReplies(body)
	if len(replies) == 0 {
		s.metrics.WebhookDeliveries.WithLabelValues(OutcomeIgnored).Inc()
		return nil, nil
	}

	outcomes := make([]string, 0, len(replies))
	for _, r := range replies {
		outcome := s.handleReply(ctx, r)
		s.metrics.WebhookDeliveries.WithLabelValues(outcome).Inc()
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (s *Service) handleReply(ctx context.Context, r reply) string {
	eventID, ok := domain.ParseOpenReply(r.Payload)
	if !ok {
		return OutcomeIgnored
	}

	log := s.log.With(
		slog.String("event_id", eventID.String()),
		slog.String("message_id", r.MessageID),
	)

	ec, err := s.events.GetContext(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.InfoContext(ctx, "open reply for unknown event")
			return OutcomeNotFound
		}
		log.ErrorContext(ctx, "load event for open reply", slog.String("error", err.Error()))
		return OutcomeError
	}

	switch ec.Event.Status {
	case domain.AccessStatusOpened:
		log.InfoContext(ctx, "event already opened, ignoring duplicate reply")
		return OutcomeAlreadyOpened
	case domain.AccessStatusRejected:
		log.InfoContext(ctx, "event already rejected, ignoring open reply")
		return OutcomeNotOpenable
	}

	userID, err := s.members.FindActiveMemberByPhone(ctx, ec.Event.UnitID, domain.PhoneDigits(r.From), s.now())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.WarnContext(ctx, "open reply from a number that is not an active member")
			return OutcomeUnknownSender
		}
		log.ErrorContext(ctx, "resolve reply sender", slog.String("error", err.Error()))
		return OutcomeError
	}
	log = log.With(slog.String("user_id", userID.String()))

	cmd, err := domain.ResolveDoor(ec.Unit, ec.Building, domain.DoorTargetDefault, ec.Event.ID, s.now())
	if err != nil {
		log.WarnContext(ctx, "no door controller for event", slog.String("error", err.Error()))
		return OutcomeNoController
	}

	if !s.door.SendDoorCommand(ctx, cmd) {
		log.WarnContext(ctx, "door command not confirmed, event left unchanged")
		return OutcomeDispatchFailed
	}

	won, err := s.events.Transition(ctx, domain.Transition{
		ID:       ec.Event.ID,
		To:       domain.AccessStatusOpened,
		From:     openableFrom,
		OpenedBy: &userID,
	})
	if err != nil {
		log.ErrorContext(ctx, "mark event opened", slog.String("error", err.Error()))
		return OutcomeError
	}
	if !won {
		log.InfoContext(ctx, "event resolved concurrently")
		return OutcomeAlreadyOpened
	}

	s.bus.Publish(ctx, domain.NewEvent(ec.Event.UnitID, domain.DoorOpenedPayload{
		LogID:       ec.Event.ID,
		OpenedBy:    &userID,
		Target:      domain.DoorTargetDefault,
		CommandSent: true,
	}, s.now()))

	s.confirm(ctx, r.From, ec.Event.ID)

	log.InfoContext(ctx, "event opened from chat reply")
	return OutcomeOpened
}

func (s *Service) confirm(ctx context.Context, phone string, eventID uuid.UUID) {
	if s.replier == nil {
		return
	}
	if err := s.replier.SendText(ctx, phone, openedReply); err != nil {
		s.log.WarnContext(ctx, "open confirmation not sent",
			slog.String("event_id", eventID.String()),
			slog.String("error", err.Error()),
		)
	}
}
