package events

import "time"

// EventType identifies the kind of record change.
type EventType string

const (
	EventRecordCreated EventType = "record.created"
	EventRecordUpdated EventType = "record.updated"
	EventRecordDeleted EventType = "record.deleted"
)

// Event describes a change to a registry record.
type Event struct {
	Type       EventType      `json:"type"`
	Entity     string         `json:"entity"`
	EntityID   int64          `json:"entity_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// NewRecordEvent builds an event stamped with the current time.
func NewRecordEvent(eventType EventType, entity string, entityID int64) Event {
	return Event{
		Type:       eventType,
		Entity:     entity,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
	}
}
