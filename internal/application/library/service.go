// Package library coordinates the current product selection, the
// composition of new items, and the persisted library behind a single
// injected service.
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
	domainlibrary "github.com/alexisbeaulieu97/inkwell/internal/domain/library"
	"github.com/alexisbeaulieu97/inkwell/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

// DefaultSaveRetries is the number of extra save attempts after a failure.
const DefaultSaveRetries = 1

// ErrStoreDetached is the cause reported for saves refused after a failed
// Load. The stored copy stays untouched until a Load succeeds.
var ErrStoreDetached = errors.New("library was not loaded; stored copy left untouched")

// Options configures a Service. Only Store is required.
type Options struct {
	Catalog   *catalog.Catalog
	Store     ports.LibraryStore
	Publisher ports.EventPublisher
	Logger    ports.Logger
	Composer  *domainlibrary.Composer
	// SaveRetries overrides DefaultSaveRetries when positive. Use a negative
	// value to disable retries.
	SaveRetries int
}

// Service owns the selection and the library. All methods are safe for
// concurrent use; events are published after the internal lock is released
// so handlers may call back into the service.
type Service struct {
	mu        sync.Mutex
	catalog   *catalog.Catalog
	store     ports.LibraryStore
	events    ports.EventPublisher
	logger    ports.Logger
	composer  *domainlibrary.Composer
	retries   int
	selection *domainlibrary.Selection
	library   *domainlibrary.Library
	// skipped holds stored items that no longer validate; they are written
	// back after the visible items on every save.
	skipped []domainlibrary.Item
	// detached is the load error while the store must not be written.
	detached error
}

// NewService constructs a Service with an empty library. Call Load to read
// the persisted items.
func NewService(opts Options) *Service {
	c := opts.Catalog
	if c == nil {
		c = catalog.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	composer := opts.Composer
	if composer == nil {
		composer = domainlibrary.NewComposer(c)
	}
	retries := DefaultSaveRetries
	switch {
	case opts.SaveRetries > 0:
		retries = opts.SaveRetries
	case opts.SaveRetries < 0:
		retries = 0
	}

	lib, _ := domainlibrary.NewLibrary(nil)
	return &Service{
		catalog:   c,
		store:     opts.Store,
		events:    opts.Publisher,
		logger:    logger.With("component", "library_service"),
		composer:  composer,
		retries:   retries,
		selection: domainlibrary.NewSelection(c),
		library:   lib,
	}
}

// Catalog returns the catalog the service selects from.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Load replaces the in-memory library with the persisted one. Items that no
// longer validate against the catalog are hidden but kept in storage. A
// store failure leaves the library empty and returns a PersistenceFailure
// error; the service stays usable, but later changes are not saved until a
// Load succeeds.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	events, err := s.loadLocked(ctx)
	s.mu.Unlock()

	s.publish(ctx, events)
	return err
}

func (s *Service) loadLocked(ctx context.Context) ([]Event, error) {
	empty, _ := domainlibrary.NewLibrary(nil)
	s.library = empty
	s.skipped = nil
	s.detached = nil

	if s.store == nil {
		return nil, nil
	}

	items, err := s.store.Load(ctx)
	if err != nil {
		s.detached = err
		return s.persistenceFailed(ctx, "load", err)
	}

	valid := make([]domainlibrary.Item, 0, len(items))
	var skipped []domainlibrary.Item
	for _, item := range items {
		if verr := item.Validate(s.catalog); verr != nil {
			s.logger.Warn(ctx, "hiding invalid library item", "item_id", item.ID, "error", verr)
			skipped = append(skipped, item.Clone())
			continue
		}
		valid = append(valid, item)
	}

	lib, err := domainlibrary.NewLibrary(valid)
	if err != nil {
		s.detached = err
		return s.persistenceFailed(ctx, "load", err)
	}
	s.library = lib
	s.skipped = skipped

	s.logger.Info(ctx, "library loaded", "items", lib.Len(), "hidden", len(skipped))
	return []Event{{Type: ports.EventLibraryLoaded, Data: map[string]interface{}{"items": lib.Len()}}}, nil
}

// Toggle flips the selection state of product id.
func (s *Service) Toggle(ctx context.Context, id string) error {
	s.mu.Lock()
	err := s.selection.Toggle(id)
	count, complete := s.selection.Len(), s.selection.IsComplete()
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.publish(ctx, []Event{selectionChanged(count, complete)})
	return nil
}

// SelectAll selects every catalog product.
func (s *Service) SelectAll(ctx context.Context) {
	s.mu.Lock()
	s.selection.SelectAll()
	count := s.selection.Len()
	s.mu.Unlock()

	s.publish(ctx, []Event{selectionChanged(count, true)})
}

// DeselectAll clears the selection.
func (s *Service) DeselectAll(ctx context.Context) {
	s.mu.Lock()
	s.selection.DeselectAll()
	s.mu.Unlock()

	s.publish(ctx, []Event{selectionChanged(0, false)})
}

// ToggleAll deselects everything when the selection is complete and
// selects everything otherwise. It reports whether the selection is now
// complete.
func (s *Service) ToggleAll(ctx context.Context) bool {
	s.mu.Lock()
	if s.selection.IsComplete() {
		s.selection.DeselectAll()
	} else {
		s.selection.SelectAll()
	}
	count, complete := s.selection.Len(), s.selection.IsComplete()
	s.mu.Unlock()

	s.publish(ctx, []Event{selectionChanged(count, complete)})
	return complete
}

// Selection returns the selected product ids in insertion order.
func (s *Service) Selection() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}

// IsSelected reports whether product id is selected.
func (s *Service) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Contains(id)
}

// SelectionCount returns the number of selected products.
func (s *Service) SelectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Len()
}

// SelectionComplete reports whether every catalog product is selected.
func (s *Service) SelectionComplete() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IsComplete()
}

// Create composes the current selection into a new library item, appends
// and persists it, and clears the selection. When only persistence fails,
// the item is returned together with a PersistenceFailure error.
func (s *Service) Create(ctx context.Context, name, coverID, paperID string) (domainlibrary.Item, error) {
	s.mu.Lock()
	item, events, err := s.createLocked(ctx, s.selection.IDs(), name, coverID, paperID, true)
	s.mu.Unlock()

	s.publish(ctx, events)
	return item, err
}

// CreateFrom composes ids directly without touching the selection.
func (s *Service) CreateFrom(ctx context.Context, ids []string, name, coverID, paperID string) (domainlibrary.Item, error) {
	s.mu.Lock()
	item, events, err := s.createLocked(ctx, ids, name, coverID, paperID, false)
	s.mu.Unlock()

	s.publish(ctx, events)
	return item, err
}

func (s *Service) createLocked(ctx context.Context, ids []string, name, coverID, paperID string, fromSelection bool) (domainlibrary.Item, []Event, error) {
	cover, _ := catalog.LookupCover(strings.TrimSpace(coverID))
	paper, _ := catalog.LookupPaper(strings.TrimSpace(paperID))

	item, err := s.composer.Compose(ids, name, cover, paper)
	if err != nil {
		s.logger.Debug(ctx, "compose rejected", "code", string(domainlibrary.CodeOf(err)), "error", err)
		return domainlibrary.Item{}, nil, s.describeStyleError(err, coverID, paperID, cover, paper)
	}

	if last, ok := s.library.Last(); ok && item.CreatedAt.Before(last.CreatedAt) {
		item.CreatedAt = last.CreatedAt
	}

	if err := s.library.Append(item); err != nil {
		return domainlibrary.Item{}, nil, err
	}

	var events []Event
	if fromSelection {
		s.selection.DeselectAll()
		events = append(events, selectionChanged(0, false))
	}
	events = append(events, Event{Type: ports.EventItemCreated, Data: map[string]interface{}{
		"item_id":  item.ID,
		"name":     item.Name,
		"products": len(item.ProductIDs),
		"is_mega":  item.IsMega,
		"cover":    item.Cover.ID,
		"paper":    item.Paper.ID,
	}})
	s.logger.Info(ctx, "library item created", "item_id", item.ID, "products", len(item.ProductIDs), "is_mega", item.IsMega)

	failed, err := s.persistLocked(ctx, "append")
	return item.Clone(), append(events, failed...), err
}

func (s *Service) describeStyleError(err error, coverID, paperID string, cover catalog.CoverStyle, paper catalog.PaperType) error {
	if domainlibrary.CodeOf(err) != domainlibrary.ErrCodeValidation {
		return err
	}
	if cover.ID == "" {
		return &domainlibrary.DomainError{
			Code:    domainlibrary.ErrCodeValidation,
			Message: "unknown cover style",
			Context: map[string]interface{}{"cover": coverID},
		}
	}
	if paper.ID == "" {
		return &domainlibrary.DomainError{
			Code:    domainlibrary.ErrCodeValidation,
			Message: "unknown paper type",
			Context: map[string]interface{}{"paper": paperID},
		}
	}
	return err
}

// Delete removes the item with id and persists the change. A missing id
// returns NotFound and leaves the library unchanged.
func (s *Service) Delete(ctx context.Context, id string) (domainlibrary.Item, error) {
	s.mu.Lock()
	removed, err := s.library.Delete(id)
	if err != nil {
		s.mu.Unlock()
		return domainlibrary.Item{}, err
	}
	s.logger.Info(ctx, "library item deleted", "item_id", id)

	events := []Event{{Type: ports.EventItemDeleted, Data: map[string]interface{}{
		"item_id": removed.ID,
		"name":    removed.Name,
	}}}
	failed, perr := s.persistLocked(ctx, "delete")
	s.mu.Unlock()

	s.publish(ctx, append(events, failed...))
	return removed, perr
}

// Get returns the item with id.
func (s *Service) Get(id string) (domainlibrary.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.library.Get(id)
}

// List returns every item in insertion order.
func (s *Service) List() []domainlibrary.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.library.List()
}

// Count returns the number of items in the library.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.library.Len()
}

// Close releases the underlying store.
func (s *Service) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

func (s *Service) persistLocked(ctx context.Context, operation string) ([]Event, error) {
	if s.store == nil {
		return nil, nil
	}
	if s.detached != nil {
		return s.persistenceFailed(ctx, operation, fmt.Errorf("%w: %v", ErrStoreDetached, s.detached))
	}

	items := append(s.library.List(), s.skipped...)
	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		if err = s.store.Save(ctx, items); err == nil {
			return nil, nil
		}
		s.logger.Debug(ctx, "library save failed", "operation", operation, "attempt", attempt+1, "error", err)
	}
	return s.persistenceFailed(ctx, operation, err)
}

func (s *Service) persistenceFailed(ctx context.Context, operation string, cause error) ([]Event, error) {
	s.logger.Warn(ctx, "library persistence failed; keeping in-memory state", "operation", operation, "error", cause)
	return []Event{{Type: ports.EventPersistenceFailed, Data: map[string]interface{}{
		"operation": operation,
		"error":     cause.Error(),
	}}}, domainlibrary.NewPersistenceError(operation, cause)
}
