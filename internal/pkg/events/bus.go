// Package events provides a small in-process publish/subscribe bus. It
// carries cross-component signals (currently only the login greeting) inside
// a single process; it is not a wire protocol.
package events

import (
	"sync"

	"github.com/viebus/viebus/internal/pkg/logger"
)

// Handler consumes a published event payload.
type Handler func(payload interface{})

// Bus dispatches events by topic to subscribed handlers. Delivery is
// synchronous and in subscription order, so a publisher observes all handler
// side effects before continuing.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// Publish delivers the payload to every handler subscribed to the topic.
// A panicking handler is recovered and logged so one bad subscriber cannot
// take down the publisher.
func (b *Bus) Publish(topic string, payload interface{}) {
	b.mu.RLock()
	hs := make([]Handler, len(b.handlers[topic]))
	copy(hs, b.handlers[topic])
	b.mu.RUnlock()

	for _, h := range hs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("event handler panicked",
						logger.String("topic", topic),
						logger.Any("panic", r))
				}
			}()
			h(payload)
		}()
	}
}
