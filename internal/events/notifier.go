package events

import (
	"context"
	"time"
)

// Event describes one persisted mutation of the dataset: which collection
// changed, what happened and to which record.
type Event struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     int       `json:"id"`
	At     time.Time `json:"at"`
}

// Notifier receives an event after each successfully persisted mutation.
// Publishing is fire-and-forget: a failed publish is logged by the caller
// and never fails the operation.
type Notifier interface {
	Publish(ctx context.Context, e Event) error
}

// Nop discards every event. It is the default notifier.
type Nop struct{}

// Publish implements Notifier.
func (Nop) Publish(context.Context, Event) error { return nil }
