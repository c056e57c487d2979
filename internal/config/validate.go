package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.WhatsApp.VerifyToken == "" || c.WhatsApp.AppSecret == "" {
		return fmt.Errorf("whatsapp.verify_token and whatsapp.app_secret are required to accept inbound webhooks")
	}

	if strings.Contains(c.MQTT.Namespace, "/") || strings.TrimSpace(c.MQTT.Namespace) == "" {
		return fmt.Errorf("mqtt.namespace must be a single non-empty topic level (got %q)", c.MQTT.Namespace)
	}

	if err := c.MQTT.validate(); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}

	if err := c.Intercom.validate(); err != nil {
		return fmt.Errorf("intercom: %w", err)
	}

	return nil
}

func (m *MQTTConfig) validate() error {
	if m.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be > 0 (got %v)", m.ConnectTimeout)
	}
	if m.HardTimeout <= m.ConnectTimeout {
		return fmt.Errorf("hard_timeout (%v) must exceed connect_timeout (%v)", m.HardTimeout, m.ConnectTimeout)
	}
	return nil
}

func (i *IntercomConfig) validate() error {
	if i.RingLimit <= 0 {
		return fmt.Errorf("ring_limit must be > 0 (got %d)", i.RingLimit)
	}
	if i.RingWindow < time.Second {
		return fmt.Errorf("ring_window must be at least 1s (got %v)", i.RingWindow)
	}
	if i.StreamLimit <= 0 {
		return fmt.Errorf("stream_limit must be > 0 (got %d)", i.StreamLimit)
	}
	if i.StreamWindow < time.Second {
		return fmt.Errorf("stream_window must be at least 1s (got %v)", i.StreamWindow)
	}
	if i.IPLimit <= 0 {
		return fmt.Errorf("ip_limit must be > 0 (got %d)", i.IPLimit)
	}
	if i.IPWindow < time.Second {
		return fmt.Errorf("ip_window must be at least 1s (got %v)", i.IPWindow)
	}
	if i.Heartbeat <= 0 {
		return fmt.Errorf("heartbeat must be > 0 (got %v)", i.Heartbeat)
	}
	if i.MissedAfter <= 0 {
		return fmt.Errorf("missed_after must be > 0 (got %v)", i.MissedAfter)
	}
	if i.FanoutConcurrency <= 0 {
		return fmt.Errorf("fanout_concurrency must be > 0 (got %d)", i.FanoutConcurrency)
	}
	return nil
}
