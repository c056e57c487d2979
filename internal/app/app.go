package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/heartmarshall/intercom-backend/internal/adapter/mqtt"
	"github.com/heartmarshall/intercom-backend/internal/adapter/postgres"
	"github.com/heartmarshall/intercom-backend/internal/adapter/postgres/accessevent"
	"github.com/heartmarshall/intercom-backend/internal/adapter/postgres/membership"
	"github.com/heartmarshall/intercom-backend/internal/adapter/postgres/unit"
	"github.com/heartmarshall/intercom-backend/internal/adapter/provider/objectstore"
	"github.com/heartmarshall/intercom-backend/internal/adapter/provider/push"
	"github.com/heartmarshall/intercom-backend/internal/adapter/provider/whatsapp"
	"github.com/heartmarshall/intercom-backend/internal/adapter/redis"
	"github.com/heartmarshall/intercom-backend/internal/auth"
	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
	"github.com/heartmarshall/intercom-backend/internal/service/intercom"
	"github.com/heartmarshall/intercom-backend/internal/service/notify"
	"github.com/heartmarshall/intercom-backend/internal/service/stream"
	"github.com/heartmarshall/intercom-backend/internal/service/webhook"
	"github.com/heartmarshall/intercom-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// stores, wires the pipeline and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		buildAttrs(),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	rdb, err := redis.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer rdb.Close()

	m := metrics.New()
	exportBuildInfo(m)

	units := unit.New(pool)
	events := accessevent.New(pool)
	members := membership.New(pool)

	limiter := redis.NewLimiter(rdb, logger)
	bus := redis.NewBus(rdb, logger, m)
	door := mqtt.NewDispatcher(cfg.MQTT, logger, m)
	chat := whatsapp.NewProvider(cfg.WhatsApp, logger)

	fanout := notify.NewService(logger, m, push.NewProvider(cfg.Push, logger), cfg.Intercom.FanoutConcurrency)
	if cfg.WhatsApp.Enabled() {
		fanout = fanout.WithChat(chat)
	}

	intercomSvc := intercom.NewService(logger, cfg.Intercom, m, units, events, members, limiter, bus, fanout, door)
	if photos := objectstore.NewProvider(cfg.Storage, logger); photos.Enabled() {
		intercomSvc = intercomSvc.WithPhotoStore(photos)
	}

	hub := stream.NewHub(logger, cfg.Intercom, m, members, limiter, redis.NewSubscriber(rdb))

	webhookSvc := webhook.NewService(logger, cfg.WhatsApp, m, events, members, door, bus)
	if cfg.WhatsApp.Enabled() {
		webhookSvc = webhookSvc.WithReplier(chat)
	}

	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	handler := NewRouter(Handlers{
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Check{Name: "database", Pinger: pool},
			rest.Check{Name: "redis", Pinger: rest.PingFunc(func(ctx context.Context) error {
				return rdb.Ping(ctx).Err()
			})},
		),
		Intercom: rest.NewIntercomHandler(intercomSvc, cfg.Storage.MaxPhotoBytes, logger),
		Stream:   rest.NewStreamHandler(hub, logger),
		Webhook:  rest.NewWebhookHandler(webhookSvc, logger),
	}, RouterDeps{
		Config:  cfg,
		Logger:  logger,
		Metrics: m,
		Tokens:  tokens,
		Limiter: limiter,
	})

	return serve(ctx, cfg.Server, handler, logger)
}

// serve runs the HTTP server until ctx is done, then drains it. Request
// contexts derive from ctx so open event streams end on shutdown instead of
// holding it up.
func serve(ctx context.Context, cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
