// Command sweep-missed marks rings nobody answered within the configured
// window as missed and tells connected residents the call ended. It is
// intended to be invoked by an external cron job, not as an in-process
// goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/intercom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/intercom-backend/internal/adapter/postgres/accessevent"
	"github.com/heartmarshall/intercom-backend/internal/adapter/postgres/membership"
	"github.com/heartmarshall/intercom-backend/internal/adapter/postgres/unit"
	"github.com/heartmarshall/intercom-backend/internal/adapter/redis"
	"github.com/heartmarshall/intercom-backend/internal/app"
	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
	"github.com/heartmarshall/intercom-backend/internal/service/intercom"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		logger.Error("connect to redis", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer rdb.Close()

	m := metrics.New()
	members := membership.New(pool)

	// The sweep only marks and announces; ring fan-out and door commands are
	// never reached, so those collaborators stay nil.
	svc := intercom.NewService(logger, cfg.Intercom, m,
		unit.New(pool), accessevent.New(pool), members,
		redis.NewLimiter(rdb, logger), redis.NewBus(rdb, logger, m),
		nil, nil,
	)

	swept, err := svc.SweepMissed(ctx)
	if err != nil {
		logger.Error("missed sweep failed",
			slog.String("error", err.Error()),
			slog.Duration("missed_after", cfg.Intercom.MissedAfter),
		)
		os.Exit(1)
	}

	logger.Info("missed sweep completed",
		slog.Int("swept", swept),
		slog.Duration("missed_after", cfg.Intercom.MissedAfter),
	)
}
