// Package stream relays unit events to connected residents. Each viewer
// gets its own pub/sub subscription limited to the units it belongs to.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
)

// ErrSubscriptionClosed is returned when the store drops the subscription
// while the viewer is still connected.
var ErrSubscriptionClosed = errors.New("subscription closed")

type membershipRepo interface {
	ListActiveUnitIDs(ctx context.Context, userID uuid.UUID, now time.Time) ([]uuid.UUID, error)
}

type rateLimiter interface {
	CheckLimit(ctx context.Context, key string, max int, window time.Duration) domain.LimitResult
}

type subscriber interface {
	Subscribe(ctx context.Context, channels ...string) (domain.Subscription, error)
}

// Sink receives the frames of one viewer connection.
type Sink interface {
	// Event delivers one JSON event.
	Event(data []byte) error
	// Comment delivers a frame the client ignores, used as heartbeat.
	Comment(text string) error
}

// Hub serves viewer streams.
type Hub struct {
	members    membershipRepo
	limiter    rateLimiter
	subscriber subscriber
	cfg        config.IntercomConfig
	metrics    *metrics.Metrics
	log        *slog.Logger
	now        func() time.Time
}

// NewHub creates a stream hub.
func NewHub(
	log *slog.Logger,
	cfg config.IntercomConfig,
	m *metrics.Metrics,
	members membershipRepo,
	limiter rateLimiter,
	sub subscriber,
) *Hub {
	return &Hub{
		members:    members,
		limiter:    limiter,
		subscriber: sub,
		cfg:        cfg,
		metrics:    m,
		log:        log.With("service", "stream"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Serve streams events of the viewer's units into sink until ctx is done
// or the sink fails. Admission errors (domain.ErrRateLimited) are returned
// before anything is written to sink.
func (h *Hub) Serve(ctx context.Context, userID uuid.UUID, sink Sink) error {
	limit := h.limiter.CheckLimit(ctx, "stream:"+userID.String(), h.cfg.StreamLimit, h.cfg.StreamWindow)
	if !limit.Allowed {
		h.metrics.RateLimited.WithLabelValues("stream").Inc()
		return domain.ErrRateLimited
	}

	unitIDs, err := h.members.ListActiveUnitIDs(ctx, userID, h.now())
	if err != nil {
		return fmt.Errorf("list viewer units: %w", err)
	}

	allowed := make(map[string]struct{}, len(unitIDs))
	channels := make([]string, 0, len(unitIDs))
	for _, id := range unitIDs {
		ch := domain.UnitChannel(id)
		allowed[ch] = struct{}{}
		channels = append(channels, ch)
	}

	var messages <-chan domain.BusMessage
	if len(channels) > 0 {
		sub, err := h.subscriber.Subscribe(ctx, channels...)
		if err != nil {
			return fmt.Errorf("subscribe viewer: %w", err)
		}
		defer func() {
			if err := sub.Close(); err != nil {
				h.log.WarnContext(ctx, "close subscription", slog.String("error", err.Error()))
			}
		}()
		messages = sub.Messages()
	}

	h.metrics.StreamConnections.Inc()
	defer h.metrics.StreamConnections.Dec()

	log := h.log.With(slog.String("user_id", userID.String()))
	log.InfoContext(ctx, "stream opened", slog.Int("channels", len(channels)))

	connected, err := json.Marshal(domain.NewEvent(uuid.Nil, domain.ConnectedPayload{Channels: len(channels)}, h.now()))
	if err != nil {
		return fmt.Errorf("encode connected event: %w", err)
	}
	if err := sink.Event(connected); err != nil {
		return err
	}

	heartbeat := time.NewTicker(h.cfg.Heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			log.InfoContext(ctx, "stream closed")
			return nil

		case <-heartbeat.C:
			if err := sink.Comment("ping"); err != nil {
				return err
			}

		case msg, ok := <-messages:
			if !ok {
				return ErrSubscriptionClosed
			}
			if _, ok := allowed[msg.Channel]; !ok {
				log.WarnContext(ctx, "dropped message from foreign channel", slog.String("channel", msg.Channel))
				continue
			}
			if err := sink.Event([]byte(msg.Payload)); err != nil {
				return err
			}
		}
	}
}
