package ports

import "context"

const (
	// EventSelectionChanged is emitted after toggle, select-all, or deselect-all.
	EventSelectionChanged = "selection.changed"
	// EventItemCreated is emitted when a composed item is appended to the library.
	EventItemCreated = "item.created"
	// EventItemDeleted is emitted when an item is removed from the library.
	EventItemDeleted = "item.deleted"
	// EventLibraryLoaded is emitted once the persisted library has been read.
	EventLibraryLoaded = "library.loaded"
	// EventPersistenceFailed is emitted when saving or loading the library fails
	// after retries. The in-memory library stays authoritative.
	EventPersistenceFailed = "persistence.failed"
)

// DomainEvent represents a state change that consumers such as screens or
// loggers may react to.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to subscribers. Dispatch is synchronous:
// Publish returns after every handler has run.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are returned
// so publishers can log them and keep delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}
