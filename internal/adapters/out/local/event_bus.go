package local

import (
	"context"
	"sync"

	"orderflow/internal/core/ports"
)

type subscription struct {
	ctx      context.Context
	topic    string
	filter   ports.EventFilter
	callback func(ports.Event)
}

// InProcessEventBus delivers events to subscribers within the same process.
// Delivery is synchronous and at-most-once; subscriptions end when their
// context is done.
type InProcessEventBus struct {
	mu   sync.Mutex
	subs []subscription
}

// NewInProcessEventBus creates an empty in-process bus.
func NewInProcessEventBus() *InProcessEventBus {
	return &InProcessEventBus{}
}

// Listen subscribes callback to a topic. Events failing the filter are
// skipped. A nil filter accepts everything.
func (b *InProcessEventBus) Listen(
	ctx context.Context,
	topic string,
	filter ports.EventFilter,
	callback func(ports.Event),
) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = append(b.subs, subscription{
		ctx:      ctx,
		topic:    topic,
		filter:   filter,
		callback: callback,
	})
	return nil
}

// Notify publishes an event to its topic. Subscribers whose context has ended
// are dropped.
func (b *InProcessEventBus) Notify(_ context.Context, event ports.Event) error {
	b.mu.Lock()
	matched := make([]subscription, 0)
	alive := b.subs[:0]
	for _, sub := range b.subs {
		if sub.ctx.Err() != nil {
			continue
		}
		alive = append(alive, sub)
		if sub.topic != event.Topic {
			continue
		}
		if sub.filter != nil && !sub.filter(event) {
			continue
		}
		matched = append(matched, sub)
	}
	b.subs = alive
	b.mu.Unlock()

	for _, sub := range matched {
		sub.callback(event)
	}
	return nil
}
