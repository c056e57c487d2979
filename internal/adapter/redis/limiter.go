package redis

import (
	"context"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// KeyPrefix namespaces every counter the limiter owns.
const KeyPrefix = "rate_limit:"

// incrWithExpiry increments the counter and sets its expiry only when the
// increment created the key. Running both steps in one script keeps two
// concurrent first requests from leaving a counter without a TTL.
var incrWithExpiry = goredis.NewScript(`
local c = redis.call('INCR', KEYS[1])
if c == 1 then
  redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return c
`)

// Limiter is a fixed-window counter over a shared Redis.
type Limiter struct {
	rdb goredis.Scripter
	log *slog.Logger
}

// NewLimiter creates a limiter on top of rdb.
func NewLimiter(rdb goredis.Scripter, log *slog.Logger) *Limiter {
	return &Limiter{rdb: rdb, log: log.With("adapter", "rate_limiter")}
}

// CheckLimit counts one hit against key and reports whether it fits within
// max hits per window. Windows shorter than a second are rounded up to one.
// Store failures admit the request.
func (l *Limiter) CheckLimit(ctx context.Context, key string, max int, window time.Duration) domain.LimitResult {
	seconds := int64(window / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	count, err := incrWithExpiry.Run(ctx, l.rdb, []string{KeyPrefix + key}, seconds).Int64()
	if err != nil {
		l.log.WarnContext(ctx, "rate limit check failed, allowing request",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return domain.LimitResult{Allowed: true}
	}

	return domain.LimitResult{Allowed: count <= int64(max), Count: count}
}
