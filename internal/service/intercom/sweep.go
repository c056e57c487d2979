package intercom

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// SweepMissed marks rings left unanswered for longer than the configured
// window as missed and announces the end of each call. It returns how many
// events it changed.
func (s *Service) SweepMissed(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.cfg.MissedAfter)

	missed, err := s.events.MarkMissedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("mark missed: %w", err)
	}

	for _, ev := range missed {
		s.bus.Publish(ctx, domain.NewEvent(ev.UnitID, domain.CallEndedPayload{
			LogID:  ev.ID,
			Reason: missedReason,
		}, s.now()))
	}

	s.log.InfoContext(ctx, "missed rings swept",
		slog.Time("cutoff", cutoff),
		slog.Int("count", len(missed)),
	)

	return len(missed), nil
}
