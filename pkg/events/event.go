package events

import "time"

// Event types emitted by the chat and storage layers.
const (
	TypeSessionSaved    = "CHAT_SESSION_SAVED"
	TypeSessionDeleted  = "CHAT_SESSION_DELETED"
	TypeFallbackReply   = "CHAT_FALLBACK_REPLY"
	TypeStorageDegraded = "STORAGE_DEGRADED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_SESSION_SAVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
