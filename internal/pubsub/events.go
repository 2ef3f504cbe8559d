// Package pubsub provides a small generic publish/subscribe broker used to
// fan events out of background goroutines into the Bubble Tea update loop.
package pubsub

import "time"

// EventType tags what happened to the payload.
type EventType string

const (
	// AppendedEvent marks a payload appended to a stream (e.g. a log line).
	AppendedEvent EventType = "appended"
	// ChangedEvent marks a payload that replaces previous state (e.g. reloaded config).
	ChangedEvent EventType = "changed"
	// FailedEvent marks a payload describing a background failure.
	FailedEvent EventType = "failed"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}
