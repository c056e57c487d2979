package domain

import (
	"time"

	"github.com/google/uuid"
)

// Building is a physical entrance shared by many units.
type Building struct {
	ID            uuid.UUID
	Name          string
	Slug          string
	HardwareTopic *string
}

// Unit is an apartment, office or any door a visitor can ring.
type Unit struct {
	ID            uuid.UUID
	BuildingID    uuid.UUID
	Label         string
	HardwareTopic *string
}

// Membership authorizes a user to be notified about and act on a unit.
type Membership struct {
	UserID    uuid.UUID
	UnitID    uuid.UUID
	Role      MembershipRole
	Active    bool
	ExpiresAt *time.Time
}

// IsActiveAt reports whether the membership grants access at t.
func (m *Membership) IsActiveAt(t time.Time) bool {
	if !m.Active {
		return false
	}
	return m.ExpiresAt == nil || m.ExpiresAt.After(t)
}

// Recipient is an active member reachable by the notification fan-out.
type Recipient struct {
	UserID uuid.UUID
	Phone  *string
}

// UnitDetails is a unit joined with the building it belongs to.
type UnitDetails struct {
	Unit     Unit
	Building Building
}
