package ports

import "context"

// Event is a message published on the bus. OrderNo identifies the entity the
// event belongs to; Payload carries topic-specific data.
type Event struct {
	Topic   string
	OrderNo string
	Payload map[string]any
}

// EventFilter decides whether a subscriber receives an event.
type EventFilter func(Event) bool

// EventBus is the transport between workflow parties. Delivery semantics
// (durability, ordering across topics, at-most-once) belong to the adapter.
type EventBus interface {
	// Listen subscribes callback to a topic; events failing the filter are
	// skipped. The subscription ends when ctx is done.
	Listen(ctx context.Context, topic string, filter EventFilter, callback func(Event)) error

	// Notify publishes an event to a topic.
	Notify(ctx context.Context, event Event) error
}
