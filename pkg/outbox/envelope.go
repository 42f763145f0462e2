package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SessionRef identifies the shopper session that produced the event.
type SessionRef struct {
	SessionID uuid.UUID `json:"sessionId"`
}

// PayloadEnvelope is the stable payload structure stored in outbox_events.
type PayloadEnvelope struct {
	Version    int             `json:"version"`
	EventID    string          `json:"eventId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Session    *SessionRef     `json:"session,omitempty"`
	Data       json.RawMessage `json:"data"`
}
