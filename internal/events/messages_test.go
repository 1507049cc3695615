package events

import (
	"testing"
	"time"
)

func TestMessageRoundTrip(t *testing.T) {
	msg := NewMessage(ActionCreated, "txn-123")
	if msg.OccurredAt.IsZero() {
		t.Fatal("expected occurred_at to be set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("to json: %v", err)
	}

	back, err := MessageFromJSON(body)
	if err != nil {
		t.Fatalf("from json: %v", err)
	}
	if back.Action != ActionCreated || back.ID != "txn-123" {
		t.Fatalf("unexpected message: %+v", back)
	}
	if !back.OccurredAt.Equal(msg.OccurredAt.Truncate(time.Nanosecond)) {
		t.Fatalf("timestamp mismatch: %v vs %v", back.OccurredAt, msg.OccurredAt)
	}
}

func TestMessageFromJSONInvalid(t *testing.T) {
	if _, err := MessageFromJSON([]byte("{not json")); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}
