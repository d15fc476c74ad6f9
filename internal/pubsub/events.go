// Package pubsub provides a generic publish/subscribe event system used to
// fan out registry activity and log lines to interested listeners.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the kind of change an event reports.
type EventType string

const (
	CreatedEvent EventType = "created" // a student or instructor was created
	LinkedEvent  EventType = "linked"  // enrollment, assignment or department membership
	LoggedEvent  EventType = "logged"  // a log line was written
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
