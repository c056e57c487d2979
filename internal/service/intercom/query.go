package intercom

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/pkg/ctxutil"
)

// Status returns an event for the visitor page polling it. The event id is
// the capability, so no session is required.
func (s *Service) Status(ctx context.Context, eventID uuid.UUID) (*domain.AccessEvent, error) {
	if eventID == uuid.Nil {
		return nil, domain.NewValidationError("event_id", "required")
	}

	ev, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get access event: %w", err)
	}
	return ev, nil
}

// History returns the newest rings of a unit the caller is a member of.
func (s *Service) History(ctx context.Context, input HistoryInput) ([]domain.AccessEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultHistoryLimit
	}

	if err := s.requireMember(ctx, userID, input.UnitID); err != nil {
		return nil, fmt.Errorf("list unit history: %w", err)
	}

	events, err := s.events.ListByUnit(ctx, input.UnitID, limit)
	if err != nil {
		return nil, fmt.Errorf("list unit history: %w", err)
	}
	return events, nil
}
