package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccessEvent is one visitor ring and its resolution.
type AccessEvent struct {
	ID              uuid.UUID
	UnitID          uuid.UUID
	PhotoURL        *string
	VisitorMessage  *string
	Status          AccessStatus
	ResponseMessage *string
	OpenedBy        *uuid.UUID
	CreatedAt       time.Time
}

// IsRinging returns true while the event still awaits a resident decision.
func (e *AccessEvent) IsRinging() bool {
	return e.Status == AccessStatusRinging
}

// AccessEventContext is an AccessEvent joined with the unit and building it
// belongs to. It carries everything needed to command the door.
type AccessEventContext struct {
	Event    AccessEvent
	Unit     Unit
	Building Building
}

// Transition is a conditional status change: it applies only while the
// event's status is one of From.
type Transition struct {
	ID       uuid.UUID
	To       AccessStatus
	From     []AccessStatus
	OpenedBy *uuid.UUID
}
