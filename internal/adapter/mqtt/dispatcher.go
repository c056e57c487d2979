// Package mqtt sends door commands to lock controllers through an MQTT
// broker. Every command uses its own short-lived connection.
package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"

	"github.com/heartmarshall/intercom-backend/internal/config"
	"github.com/heartmarshall/intercom-backend/internal/domain"
	"github.com/heartmarshall/intercom-backend/internal/metrics"
)

const (
	commandType            = "DOOR_CONTROL"
	qosAtLeastOnce    byte = 1
	disconnectQuiesce uint = 250
)

var errTokenTimeout = errors.New("broker did not acknowledge in time")

// brokerClient is the subset of the paho client the dispatcher uses.
type brokerClient interface {
	Connect() pahomqtt.Token
	Publish(topic string, qos byte, retained bool, payload interface{}) pahomqtt.Token
	Disconnect(quiesce uint)
}

// Dispatcher publishes door commands.
type Dispatcher struct {
	cfg       config.MQTTConfig
	log       *slog.Logger
	metrics   *metrics.Metrics
	newClient func(opts *pahomqtt.ClientOptions) brokerClient
}

// NewDispatcher creates a dispatcher for the configured broker.
func NewDispatcher(cfg config.MQTTConfig, log *slog.Logger, m *metrics.Metrics) *Dispatcher {
	return &Dispatcher{
		cfg:     cfg,
		log:     log.With("adapter", "mqtt"),
		metrics: m,
		newClient: func(opts *pahomqtt.ClientOptions) brokerClient {
			return pahomqtt.NewClient(opts)
		},
	}
}

type commandPayload struct {
	Type      string    `json:"type"`
	Unit      string    `json:"unit"`
	Action    string    `json:"action"`
	LogID     uuid.UUID `json:"logId"`
	Timestamp time.Time `json:"timestamp"`
}

// Topic returns the command topic for a controller key.
func (d *Dispatcher) Topic(key string) string {
	return d.cfg.Namespace + "/" + key + "/command"
}

// SendDoorCommand connects, publishes cmd with at-least-once delivery and
// disconnects. It returns false when the broker did not acknowledge the
// publish within the hard timeout, and never blocks longer than that.
func (d *Dispatcher) SendDoorCommand(ctx context.Context, cmd domain.DoorCommand) bool {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.HardTimeout)
	defer cancel()

	topic := d.Topic(cmd.TopicKey)
	log := d.log.With(
		slog.String("topic", topic),
		slog.String("log_id", cmd.LogID.String()),
	)

	payload, err := json.Marshal(commandPayload{
		Type:      commandType,
		Unit:      cmd.Unit,
		Action:    cmd.Action,
		LogID:     cmd.LogID,
		Timestamp: cmd.IssuedAt.UTC(),
	})
	if err != nil {
		log.ErrorContext(ctx, "encode door command", slog.String("error", err.Error()))
		d.metrics.DoorCommands.WithLabelValues(metrics.ResultError).Inc()
		return false
	}

	client := d.newClient(d.clientOptions())

	done := make(chan error, 1)
	go func() {
		done <- d.publish(ctx, client, topic, payload)
	}()

	select {
	case err = <-done:
	case <-ctx.Done():
		client.Disconnect(0)
		err = fmt.Errorf("hard timeout: %w", ctx.Err())
	}

	d.metrics.DoorCommands.WithLabelValues(metrics.Result(err)).Inc()

	if err != nil {
		log.WarnContext(ctx, "door command not sent", slog.String("error", err.Error()))
		return false
	}

	log.InfoContext(ctx, "door command sent")
	return true
}

func (d *Dispatcher) publish(ctx context.Context, client brokerClient, topic string, payload []byte) error {
	if err := waitToken(ctx, client.Connect(), d.cfg.ConnectTimeout); err != nil {
		client.Disconnect(0)
		return fmt.Errorf("connect: %w", err)
	}
	defer client.Disconnect(disconnectQuiesce)

	if err := waitToken(ctx, client.Publish(topic, qosAtLeastOnce, false, payload), d.cfg.HardTimeout); err != nil {
		return fmt.Errorf("publish: %w", err)
	}
	return nil
}

func (d *Dispatcher) clientOptions() *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions().
		AddBroker(d.cfg.BrokerURL).
		SetClientID(d.cfg.ClientIDPrefix + "-" + uuid.NewString()[:8]).
		SetConnectTimeout(d.cfg.ConnectTimeout).
		SetAutoReconnect(false).
		SetConnectRetry(false).
		SetCleanSession(true)

	if d.cfg.Username != "" {
		opts.SetUsername(d.cfg.Username)
		opts.SetPassword(d.cfg.Password)
	}

	return opts
}

func waitToken(ctx context.Context, tok pahomqtt.Token, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-tok.Done():
		return tok.Error()
	case <-timer.C:
		return errTokenTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}
