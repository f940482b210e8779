package library

import (
	"context"

	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

// Event is the concrete DomainEvent published by the service.
type Event struct {
	Type string
	Data map[string]interface{}
}

func (e Event) EventType() string {
	return e.Type
}

func (e Event) Payload() interface{} {
	return e.Data
}

func (s *Service) publish(ctx context.Context, events []Event) {
	if s.events == nil {
		return
	}
	for _, event := range events {
		if err := s.events.Publish(ctx, event); err != nil {
			s.logger.Warn(ctx, "failed to publish domain event", "event_type", event.Type, "error", err)
		}
	}
}

func selectionChanged(count int, complete bool) Event {
	return Event{Type: ports.EventSelectionChanged, Data: map[string]interface{}{
		"count":    count,
		"complete": complete,
	}}
}
