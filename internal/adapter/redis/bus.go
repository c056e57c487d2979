package redis

import (
	"context"
	"encoding/json"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
)

// Bus publishes realtime events on the unit channels. It is best-effort:
// the database stays the source of truth and publish failures are only
// logged.
type Bus struct {
	rdb     goredis.UniversalClient
	log     *slog.Logger
	metrics *metrics.Metrics
}

// NewBus creates an event bus publisher.
func NewBus(rdb goredis.UniversalClient, log *slog.Logger, m *metrics.Metrics) *Bus {
	return &Bus{rdb: rdb, log: log.With("adapter", "event_bus"), metrics: m}
}

// Publish serializes ev and publishes it on the channel of its unit.
func (b *Bus) Publish(ctx context.Context, ev domain.Event) {
	channel := domain.UnitChannel(ev.UnitID)

	data, err := json.Marshal(ev)
	if err == nil {
		err = b.rdb.Publish(ctx, channel, data).Err()
	}

	b.metrics.BusPublishes.WithLabelValues(ev.Type.String(), metrics.Result(err)).Inc()

	if err != nil {
		b.log.ErrorContext(ctx, "publish event failed",
			slog.String("channel", channel),
			slog.String("type", ev.Type.String()),
			slog.String("error", err.Error()),
		)
	}
}
