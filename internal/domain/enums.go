package domain

// AccessStatus is the lifecycle state of an AccessEvent.
type AccessStatus string

const (
	AccessStatusRinging  AccessStatus = "ringing"
	AccessStatusOpened   AccessStatus = "opened"
	AccessStatusRejected AccessStatus = "rejected"
	AccessStatusMissed   AccessStatus = "missed"
)

func (s AccessStatus) String() string { return string(s) }

func (s AccessStatus) IsValid() bool {
	switch s {
	case AccessStatusRinging, AccessStatusOpened, AccessStatusRejected, AccessStatusMissed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is expected.
func (s AccessStatus) IsTerminal() bool {
	return s != AccessStatusRinging
}

// MembershipRole is the relation of a user to a unit.
type MembershipRole string

const (
	MembershipRoleOwner    MembershipRole = "owner"
	MembershipRoleResident MembershipRole = "resident"
	MembershipRoleGuest    MembershipRole = "guest"
)

func (r MembershipRole) String() string { return string(r) }

func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleOwner, MembershipRoleResident, MembershipRoleGuest:
		return true
	}
	return false
}

// DoorTarget selects which lock an Open command addresses.
type DoorTarget string

const (
	DoorTargetDefault  DoorTarget = "default"
	DoorTargetBuilding DoorTarget = "building"
	DoorTargetUnit     DoorTarget = "unit"
)

func (t DoorTarget) String() string { return string(t) }

func (t DoorTarget) IsValid() bool {
	switch t {
	case DoorTargetDefault, DoorTargetBuilding, DoorTargetUnit:
		return true
	}
	return false
}

// EventType tags a stream event.
type EventType string

const (
	EventTypeConnected    EventType = "CONNECTED"
	EventTypeRinging      EventType = "RINGING"
	EventTypeRejected     EventType = "REJECTED"
	EventTypeResponseSent EventType = "RESPONSE_SENT"
	EventTypeDoorOpened   EventType = "DOOR_OPENED"
	EventTypeCallEnded    EventType = "CALL_ENDED"
)

func (t EventType) String() string { return string(t) }

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeConnected, EventTypeRinging, EventTypeRejected,
		EventTypeResponseSent, EventTypeDoorOpened, EventTypeCallEnded:
		return true
	}
	return false
}
