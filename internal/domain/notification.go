package domain

import (
	"strings"

	"github.com/google/uuid"
)

// RingNotice is the content shared by every notification of one ring.
type RingNotice struct {
	EventID      uuid.UUID
	UnitID       uuid.UUID
	UnitLabel    string
	BuildingName string
	PhotoURL     *string
	Message      *string
	Title        string
	Body         string
}

// NewRingNotice builds the notice for a ring. The title mentions the photo
// when one was captured.
func NewRingNotice(ev AccessEvent, unit UnitDetails) RingNotice {
	title := "Someone is at the door"
	if ev.PhotoURL != nil {
		title = "Someone is at the door (photo attached)"
	}

	body := "Unit " + unit.Unit.Label + ", " + unit.Building.Name
	if ev.VisitorMessage != nil && *ev.VisitorMessage != "" {
		body = *ev.VisitorMessage
	}

	return RingNotice{
		EventID:      ev.ID,
		UnitID:       ev.UnitID,
		UnitLabel:    unit.Unit.Label,
		BuildingName: unit.Building.Name,
		PhotoURL:     ev.PhotoURL,
		Message:      ev.VisitorMessage,
		Title:        title,
		Body:         body,
	}
}

// OpenReplyPrefix prefixes the quick-reply payload that opens the door.
const OpenReplyPrefix = "OPEN:"

// OpenReplyPayload returns the quick-reply payload that opens eventID.
func OpenReplyPayload(eventID uuid.UUID) string {
	return OpenReplyPrefix + eventID.String()
}

// ParseOpenReply extracts the event id from an OPEN quick-reply payload.
func ParseOpenReply(payload string) (uuid.UUID, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(payload), OpenReplyPrefix)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(rest)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// PhoneDigits strips everything but digits from a phone number.
func PhoneDigits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FanoutReport counts the deliveries of one ring notification fan-out.
type FanoutReport struct {
	Recipients int
	PushSent   int
	PushFailed int
	ChatSent   int
	ChatFailed int
}
