// Package pubsub provides a generic publish/subscribe event system used to
// fan editor events (echo messages, on-disk file changes) out to the front
// end.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// MessageEvent carries an echo-area message.
	MessageEvent EventType = "message"
	// FileChangedEvent signals that a watched file changed on disk.
	FileChangedEvent EventType = "file-changed"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
