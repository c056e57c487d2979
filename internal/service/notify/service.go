// Package notify fans a ring out to every recipient over push and, when
// configured, the chat channel. Deliveries are independent: one failure
// neither cancels nor fails the others.
package notify

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
)

const (
	channelPush = "push"
	channelChat = "whatsapp"
)

type pushSender interface {
	Send(ctx context.Context, userID uuid.UUID, n domain.RingNotice) error
}

type chatSender interface {
	SendRingTemplate(ctx context.Context, phone string, n domain.RingNotice) error
}

// Service provides the ring notification fan-out.
type Service struct {
	push        pushSender
	chat        chatSender
	concurrency int
	metrics     *metrics.Metrics
	log         *slog.Logger
}

// NewService creates a fan-out service that sends at most concurrency
// deliveries at once.
func NewService(
	log *slog.Logger,
	m *metrics.Metrics,
	push pushSender,
	concurrency int,
) *Service {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		push:        push,
		concurrency: concurrency,
		metrics:     m,
		log:         log.With("service", "notify"),
	}
}

// WithChat returns a copy of the service that also sends chat templates to
// recipients with a phone number.
func (s *Service) WithChat(chat chatSender) *Service {
	cp := *s
	cp.chat = chat
	return &cp
}

// NotifyRing delivers n to every recipient and waits for all deliveries.
// Failures are logged and counted, never returned.
func (s *Service) NotifyRing(ctx context.Context, recipients []domain.Recipient, n domain.RingNotice) domain.FanoutReport {
	var (
		g                    errgroup.Group
		pushSent, pushFailed atomic.Int64
		chatSent, chatFailed atomic.Int64
	)
	g.SetLimit(s.concurrency)

	for _, rc := range recipients {
		g.Go(func() error {
			err := s.push.Send(ctx, rc.UserID, n)
			s.record(ctx, channelPush, rc.UserID, n.EventID, err, &pushSent, &pushFailed)
			return nil
		})

		if s.chat == nil || rc.Phone == nil || *rc.Phone == "" {
			continue
		}
		g.Go(func() error {
			err := s.chat.SendRingTemplate(ctx, *rc.Phone, n)
			s.record(ctx, channelChat, rc.UserID, n.EventID, err, &chatSent, &chatFailed)
			return nil
		})
	}

	_ = g.Wait()

	report := domain.FanoutReport{
		Recipients: len(recipients),
		PushSent:   int(pushSent.Load()),
		PushFailed: int(pushFailed.Load()),
		ChatSent:   int(chatSent.Load()),
		ChatFailed: int(chatFailed.Load()),
	}

	s.log.InfoContext(ctx, "ring fan-out finished",
		slog.String("event_id", n.EventID.String()),
		slog.Int("recipients", report.Recipients),
		slog.Int("push_sent", report.PushSent),
		slog.Int("push_failed", report.PushFailed),
		slog.Int("chat_sent", report.ChatSent),
		slog.Int("chat_failed", report.ChatFailed),
	)

	return report
}

func (s *Service) record(ctx context.Context, channel string, userID, eventID uuid.UUID, err error, sent, failed *atomic.Int64) {
	s.metrics.Notifications.WithLabelValues(channel, metrics.Result(err)).Inc()

	if err == nil {
		sent.Add(1)
		return
	}

	failed.Add(1)
	s.log.WarnContext(ctx, "notification failed",
		slog.String("channel", channel),
		slog.String("user_id", userID.String()),
		slog.String("event_id", eventID.String()),
		slog.String("error", err.Error()),
	)
}
