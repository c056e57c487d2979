package redis

import (
	"context"
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/intercom-backend/internal/domain"
)

// Subscriber opens dedicated pub/sub connections. A connection in subscribe
// mode cannot serve other commands, so each Subscription holds its own.
type Subscriber struct {
	rdb goredis.UniversalClient
}

// NewSubscriber creates a subscriber on top of rdb.
func NewSubscriber(rdb goredis.UniversalClient) *Subscriber {
	return &Subscriber{rdb: rdb}
}

// Subscription is one open pub/sub connection. Close must be called on
// every exit path; the connection is not released otherwise.
type Subscription struct {
	ps       *goredis.PubSub
	messages chan domain.BusMessage
	done     chan struct{}
	once     sync.Once
}

// Subscribe opens a connection subscribed to channels and waits for the
// server to confirm the subscription.
func (s *Subscriber) Subscribe(ctx context.Context, channels ...string) (domain.Subscription, error) {
	ps := s.rdb.Subscribe(ctx, channels...)

	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %d channels: %w", len(channels), err)
	}

	sub := &Subscription{
		ps:       ps,
		messages: make(chan domain.BusMessage),
		done:     make(chan struct{}),
	}
	go sub.forward(ps.Channel())

	return sub, nil
}

func (s *Subscription) forward(in <-chan *goredis.Message) {
	defer close(s.messages)

	for msg := range in {
		select {
		case s.messages <- domain.BusMessage{Channel: msg.Channel, Payload: msg.Payload}:
		case <-s.done:
			return
		}
	}
}

// Messages returns the received messages. The channel is closed once the
// subscription is closed.
func (s *Subscription) Messages() <-chan domain.BusMessage {
	return s.messages
}

// Close unsubscribes and releases the connection. It is safe to call more
// than once.
func (s *Subscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})
	return err
}
