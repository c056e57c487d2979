package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UnitChannel returns the pub/sub channel carrying events for a unit.
func UnitChannel(unitID uuid.UUID) string {
	return "unit-" + unitID.String()
}

// EventPayload is implemented only by the payload types in this file,
// which keeps the stream taxonomy closed.
type EventPayload interface {
	eventType() EventType
}

// RingingPayload announces a new ring.
type RingingPayload struct {
	LogID    uuid.UUID `json:"logId"`
	PhotoURL *string   `json:"photoUrl,omitempty"`
	Message  *string   `json:"message,omitempty"`
}

// RejectedPayload announces a resident rejection.
type RejectedPayload struct {
	LogID uuid.UUID `json:"logId"`
}

// ResponseSentPayload carries a resident's reply to the visitor.
type ResponseSentPayload struct {
	LogID   uuid.UUID `json:"logId"`
	Message string    `json:"message"`
}

// DoorOpenedPayload announces an open decision and whether the
// controller accepted the command.
type DoorOpenedPayload struct {
	LogID       uuid.UUID  `json:"logId"`
	OpenedBy    *uuid.UUID `json:"openedBy,omitempty"`
	Target      DoorTarget `json:"target"`
	CommandSent bool       `json:"commandSent"`
}

// CallEndedPayload announces that a ring ended without a decision.
type CallEndedPayload struct {
	LogID  uuid.UUID `json:"logId"`
	Reason string    `json:"reason"`
}

// ConnectedPayload is sent once when a stream opens.
type ConnectedPayload struct {
	Channels int `json:"channels"`
}

func (RingingPayload) eventType() EventType      { return EventTypeRinging }
func (RejectedPayload) eventType() EventType     { return EventTypeRejected }
func (ResponseSentPayload) eventType() EventType { return EventTypeResponseSent }
func (DoorOpenedPayload) eventType() EventType   { return EventTypeDoorOpened }
func (CallEndedPayload) eventType() EventType    { return EventTypeCallEnded }
func (ConnectedPayload) eventType() EventType    { return EventTypeConnected }

// Event is a single message on a unit channel or a viewer stream.
// Type always matches Payload; build events with NewEvent.
type Event struct {
	Type      EventType
	Timestamp time.Time
	UnitID    uuid.UUID
	Payload   EventPayload
}

// NewEvent tags payload and stamps it with now.
func NewEvent(unitID uuid.UUID, payload EventPayload, now time.Time) Event {
	return Event{
		Type:      payload.eventType(),
		Timestamp: now.UTC(),
		UnitID:    unitID,
		Payload:   payload,
	}
}

type wireEvent struct {
	Type      EventType       `json:"type"`
	Timestamp int64           `json:"timestamp"`
	UnitID    *uuid.UUID      `json:"unitId,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// MarshalJSON encodes the event as {type, timestamp, unitId, payload}.
// Timestamp is Unix milliseconds.
func (e Event) MarshalJSON() ([]byte, error) {
	w := wireEvent{
		Type:      e.Type,
		Timestamp: e.Timestamp.UnixMilli(),
	}
	if e.UnitID != uuid.Nil {
		id := e.UnitID
		w.UnitID = &id
	}
	if e.Payload != nil {
		if e.Payload.eventType() != e.Type {
			return nil, fmt.Errorf("event: payload %T does not match type %s", e.Payload, e.Type)
		}
		raw, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("event: marshal payload: %w", err)
		}
		w.Payload = raw
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes an event and its payload according to its type.
// Unknown types are rejected.
func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	var payload EventPayload
	switch w.Type {
	case EventTypeRinging:
		payload = &RingingPayload{}
	case EventTypeRejected:
		payload = &RejectedPayload{}
	case EventTypeResponseSent:
		payload = &ResponseSentPayload{}
	case EventTypeDoorOpened:
		payload = &DoorOpenedPayload{}
	case EventTypeCallEnded:
		payload = &CallEndedPayload{}
	case EventTypeConnected:
		payload = &ConnectedPayload{}
	default:
		return fmt.Errorf("event: unknown type %q", w.Type)
	}

	if len(w.Payload) > 0 {
		if err := json.Unmarshal(w.Payload, payload); err != nil {
			return fmt.Errorf("event: decode %s payload: %w", w.Type, err)
		}
	}

	*e = Event{
		Type:      w.Type,
		Timestamp: time.UnixMilli(w.Timestamp).UTC(),
		Payload:   derefPayload(payload),
	}
	if w.UnitID != nil {
		e.UnitID = *w.UnitID
	}
	return nil
}

func derefPayload(p EventPayload) EventPayload {
	switch v := p.(type) {
	case *RingingPayload:
		return *v
	case *RejectedPayload:
		return *v
	case *ResponseSentPayload:
		return *v
	case *DoorOpenedPayload:
		return *v
	case *CallEndedPayload:
		return *v
	case *ConnectedPayload:
		return *v
	}
	return p
}

// BusMessage is a raw payload received on a pub/sub channel.
type BusMessage struct {
	Channel string
	Payload string
}

// Subscription is an open pub/sub subscription. Close must be called on
// every exit path.
type Subscription interface {
	Messages() <-chan BusMessage
	Close() error
}
