package model

import (
	"strings"
)

type EventType string

const (
	EventCreated        EventType = "CREATED"
	EventUpdated        EventType = "UPDATED"
	EventCancelled      EventType = "CANCELLED"
	EventCheckIn        EventType = "CHECK_IN"
	EventCheckOut       EventType = "CHECK_OUT"
	EventKeyIssued      EventType = "KEY_ISSUED"
	EventKeyDelivered   EventType = "KEY_DELIVERED"
	EventScheduledCheck EventType = "SCHEDULED_CHECK"
	// EventNone means no recognised literal; intent falls back to the status.
	EventNone EventType = ""
)

const eventPrefix = "RESERVATION_"

var knownEvents = map[EventType]struct{}{
	EventCreated:        {},
	EventUpdated:        {},
	EventCancelled:      {},
	EventCheckIn:        {},
	EventCheckOut:       {},
	EventKeyIssued:      {},
	EventKeyDelivered:   {},
	EventScheduledCheck: {},
}

// ParseEventType accepts literals with or without the RESERVATION_ prefix.
func ParseEventType(raw string) EventType {
	event := EventType(strings.TrimPrefix(strings.TrimSpace(raw), eventPrefix))
	if _, ok := knownEvents[event]; ok {
		return event
	}

	return EventNone
}

func (e EventType) IsKeyEvent() bool {
	return e == EventKeyIssued || e == EventKeyDelivered
}

// Label is the metrics label for the event.
func (e EventType) Label() string {
	if e == EventNone {
		return "inferred"
	}

	return strings.ToLower(string(e))
}

// Event is one inbound delivery after envelope parsing.
type Event struct {
	Type      EventType
	RawType   string
	KeyStatus string
	Previous  *Previous
	// Identifier is the confirmation number located by the resolver.
	Identifier string
}
