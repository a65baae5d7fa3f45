package events

import (
	"sync"
)

type Subscriber chan Event

// Bus is an append-only broadcast channel. Publishing never blocks the
// emitting operation: slow subscribers lose events.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[Subscriber]struct{}
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[Subscriber]struct{}),
	}
}

// Subscribe returns a new channel subscribed to broadcasts.
func (b *Bus) Subscribe(buffer int) Subscriber {
	ch := make(Subscriber, buffer)
	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes the channel from subscribers.
func (b *Bus) Unsubscribe(ch Subscriber) {
	b.mu.Lock()
	if _, ok := b.subscribers[ch]; ok {
		delete(b.subscribers, ch)
		close(ch)
	}
	b.mu.Unlock()
}

// Publish sends an event to all subscribers.
func (b *Bus) Publish(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for ch := range b.subscribers {
		select {
		case ch <- ev:
		default:
			// drop event if channel is full to avoid blocking
		}
	}
}
