package sse

import (
	"sync"
)

const subscriberBuffer = 16

// Event is one server-sent event. Data is JSON encoded by the writer.
type Event struct {
	Name string
	Data interface{}
}

// Hub fans events out to every connected stream
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a stream and returns its channel and an idempotent cleanup function.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	h.subscribers[ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, ch)
			close(ch)
		})
	}

	return ch, cleanup
}

// Publish delivers event to every subscriber. Slow subscribers miss events rather than block.
func (h *Hub) Publish(event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for ch := range h.subscribers {
		select {
		case ch <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// Subscribers returns the number of connected streams
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
