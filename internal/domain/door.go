package domain

import (
	"time"

	"github.com/google/uuid"
)

// DoorActionOpen is the only action the lock controllers understand today.
const DoorActionOpen = "OPEN"

// DoorCommand is a single best-effort instruction for a lock controller.
// TopicKey is the middle segment of "<namespace>/<key>/command".
type DoorCommand struct {
	TopicKey string
	Unit     string
	Action   string
	LogID    uuid.UUID
	IssuedAt time.Time
}

// ResolveDoor picks which controller an Open on target addresses.
//
// A building topic drives the shared gate, a unit topic drives the unit's own
// lock. The default target prefers the unit lock, then the gate, then the
// building slug. An explicit target whose topic is not configured is a
// validation error.
func ResolveDoor(unit Unit, building Building, target DoorTarget, logID uuid.UUID, now time.Time) (DoorCommand, error) {
	cmd := DoorCommand{
		Unit:     unit.Label,
		Action:   DoorActionOpen,
		LogID:    logID,
		IssuedAt: now,
	}

	switch target {
	case DoorTargetBuilding:
		if building.HardwareTopic == nil || *building.HardwareTopic == "" {
			return DoorCommand{}, NewValidationError("target", "building has no gate controller")
		}
		cmd.TopicKey = *building.HardwareTopic
	case DoorTargetUnit:
		if unit.HardwareTopic == nil || *unit.HardwareTopic == "" {
			return DoorCommand{}, NewValidationError("target", "unit has no lock controller")
		}
		cmd.TopicKey = *unit.HardwareTopic
	case DoorTargetDefault, "":
		switch {
		case unit.HardwareTopic != nil && *unit.HardwareTopic != "":
			cmd.TopicKey = *unit.HardwareTopic
		case building.HardwareTopic != nil && *building.HardwareTopic != "":
			cmd.TopicKey = *building.HardwareTopic
		default:
			cmd.TopicKey = building.Slug
		}
	default:
		return DoorCommand{}, NewValidationError("target", "unknown target")
	}

	return cmd, nil
}
