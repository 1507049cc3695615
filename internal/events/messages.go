package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Actions carried by transaction change messages.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Message announces a change to a single transaction. Consumers that
// need the full record fetch it by ID; the message stays small on
// purpose.
type Message struct {
	Action     string    `json:"action"`
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewMessage(action, id string) *Message {
	return &Message{
		Action:     action,
		ID:         id,
		OccurredAt: time.Now().UTC(),
	}
}

func (m *Message) ToJSON() ([]byte, error) {
	body, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal event message: %w", err)
	}
	return body, nil
}

func MessageFromJSON(body []byte) (*Message, error) {
	var m Message
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, fmt.Errorf("unmarshal event message: %w", err)
	}
	return &m, nil
}
