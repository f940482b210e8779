// Package events provides the in-process observer used to notify screens
// and loggers about library state changes.
package events

import (
	"context"
	"sort"
	"sync"

	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

// AllEvents subscribes a handler to every event type.
const AllEvents = "*"

// Publisher records each event as a structured log entry and then
// dispatches it synchronously to subscribers of that type and of AllEvents.
type Publisher struct {
	logger ports.Logger
	subs   map[string][]subscriber
	nextID int
	mu     sync.RWMutex
}

type subscriber struct {
	id      int
	handler ports.EventHandler
}

// NewPublisher creates a publisher. A nil logger disables event logging.
func NewPublisher(logger ports.Logger) *Publisher {
	return &Publisher{
		logger: logger,
		subs:   make(map[string][]subscriber),
	}
}

// Publish logs event and invokes its subscribers in registration order.
// Handler errors are logged and never stop delivery.
func (p *Publisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	if p == nil || event == nil {
		return nil
	}

	p.mu.RLock()
	handlers := append([]subscriber(nil), p.subs[event.EventType()]...)
	handlers = append(handlers, p.subs[AllEvents]...)
	p.mu.RUnlock()

	if p.logger != nil {
		p.logger.Debug(ctx, "domain event", eventFields(event)...)
	}

	for _, sub := range handlers {
		if err := sub.handler(ctx, event); err != nil && p.logger != nil {
			p.logger.Warn(ctx, "event handler failed", "event_type", event.EventType(), "error", err)
		}
	}
	return nil
}

// Subscribe registers handler for eventType, or for every event when
// eventType is AllEvents.
func (p *Publisher) Subscribe(eventType string, handler ports.EventHandler) (ports.Subscription, error) {
	if p == nil || handler == nil {
		return cancelFunc(nil), nil
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[eventType] = append(p.subs[eventType], subscriber{id: id, handler: handler})
	p.mu.Unlock()

	return cancelFunc(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		current := p.subs[eventType]
		for i, sub := range current {
			if sub.id == id {
				p.subs[eventType] = append(current[:i:i], current[i+1:]...)
				return
			}
		}
	}), nil
}

func eventFields(event ports.DomainEvent) []interface{} {
	fields := []interface{}{"event_type", event.EventType()}
	switch payload := event.Payload().(type) {
	case map[string]interface{}:
		keys := make([]string, 0, len(payload))
		for key := range payload {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			fields = append(fields, key, payload[key])
		}
	case nil:
	default:
		fields = append(fields, "payload", payload)
	}
	return fields
}

type cancelFunc func()

func (f cancelFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}

var _ ports.EventPublisher = (*Publisher)(nil)
