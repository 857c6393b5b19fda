// Package eventbus provides a generic named-event publish/subscribe bus.
// It decouples components that need to react to application events without
// holding references to each other. Handler panics are recovered and logged
// per handler so one failing subscriber never blocks others.
package eventbus

import (
	"sync"

	"github.com/leadline-labs/leadline-cli/internal/logger"
)

// Handler receives the payload published for an event.
type Handler func(payload any)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	event string
	id    uint64
}

type entry struct {
	id   uint64
	fn   Handler
	once bool
}

// Bus is a thread-safe publish/subscribe event bus.
type Bus struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[string][]entry
}

// New creates an empty event bus.
func New() *Bus {
	return &Bus{
		handlers: make(map[string][]entry),
	}
}

// Subscribe registers a handler for the named event.
func (b *Bus) Subscribe(event string, h Handler) Subscription {
	return b.add(event, h, false)
}

// SubscribeOnce registers a handler that is removed after its first delivery.
func (b *Bus) SubscribeOnce(event string, h Handler) Subscription {
	return b.add(event, h, true)
}

func (b *Bus) add(event string, h Handler, once bool) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.handlers[event] = append(b.handlers[event], entry{id: b.nextID, fn: h, once: once})
	return Subscription{event: event, id: b.nextID}
}

// Unsubscribe removes a previously registered handler.
// Unsubscribing twice is a no-op.
func (b *Bus) Unsubscribe(sub Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.handlers[sub.event]
	for i, e := range entries {
		if e.id == sub.id {
			b.handlers[sub.event] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Publish delivers the payload to every handler subscribed to the event,
// in subscription order. Once-handlers are removed before delivery so a
// publish from inside a handler cannot re-trigger them.
func (b *Bus) Publish(event string, payload any) {
	b.mu.Lock()
	entries := b.handlers[event]
	toRun := make([]entry, len(entries))
	copy(toRun, entries)

	remaining := entries[:0]
	for _, e := range entries {
		if !e.once {
			remaining = append(remaining, e)
		}
	}
	b.handlers[event] = remaining
	b.mu.Unlock()

	for _, e := range toRun {
		invoke(event, e.fn, payload)
	}
}

// SubscriberCount returns the number of handlers registered for the event.
func (b *Bus) SubscriberCount(event string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers[event])
}

func invoke(event string, h Handler, payload any) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("eventbus: handler for %q panicked: %v", event, r)
		}
	}()
	h(payload)
}
