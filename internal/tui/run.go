package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

// Run starts the full-screen program and blocks until the user quits.
// Persistence failures published on events are surfaced as a banner.
func Run(ctx context.Context, svc LibraryService, events ports.EventPublisher, opts Options) error {
	opts.Context = ctx
	p := tea.NewProgram(NewModel(svc, opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if events != nil {
		sub, err := events.Subscribe(ports.EventPersistenceFailed, func(_ context.Context, event ports.DomainEvent) error {
			operation := ""
			if payload, ok := event.Payload().(map[string]interface{}); ok {
				operation, _ = payload["operation"].(string)
			}
			// Publishing can happen inside Update; never block the event loop.
			go p.Send(PersistenceFailedMsg{Operation: operation})
			return nil
		})
		if err != nil {
			return fmt.Errorf("subscribe to persistence events: %w", err)
		}
		defer sub.Unsubscribe()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interface: %w", err)
	}
	return nil
}
