package events

import (
	"context"
	"time"
)

const ContactReceived = "contact.received"

type Event struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp int64       `json:"timestamp"`
}

// New builds an event stamped with the current unix time.
func New(eventType string, payload interface{}) Event {
	return Event{Type: eventType, Payload: payload, Timestamp: time.Now().Unix()}
}

type Publisher interface {
	Publish(ctx context.Context, channel string, event Event) error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, Event) error { return nil }
