package library

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
	domainlibrary "github.com/alexisbeaulieu97/inkwell/internal/domain/library"
	"github.com/alexisbeaulieu97/inkwell/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/inkwell/internal/infrastructure/storage"
	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

type memoryStore struct {
	mu        sync.Mutex
	items     []domainlibrary.Item
	saves     int
	failSaves int
	loadErr   error
}

func (m *memoryStore) Load(context.Context) ([]domainlibrary.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]domainlibrary.Item(nil), m.items...), nil
}

func (m *memoryStore) Save(_ context.Context, items []domainlibrary.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.failSaves > 0 {
		m.failSaves--
		return errors.New("disk full")
	}
	m.items = append([]domainlibrary.Item(nil), items...)
	return nil
}

func (m *memoryStore) Close() error { return nil }

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (r *recordingPublisher) Publish(_ context.Context, event ports.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := event.(Event); ok {
		r.events = append(r.events, e)
	}
	return nil
}

func (r *recordingPublisher) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return nil, nil
}

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func stepComposer(step time.Duration) *domainlibrary.Composer {
	n := 0
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &domainlibrary.Composer{
		Catalog: catalog.Default(),
		NewID: func() string {
			n++
			return fmt.Sprintf("item-%d", n)
		},
		Now: func() time.Time {
			return base.Add(time.Duration(n) * step)
		},
	}
}

func newTestService(t *testing.T, store *memoryStore, publisher ports.EventPublisher) *Service {
	t.Helper()
	svc := NewService(Options{
		Store:     store,
		Publisher: publisher,
		Composer:  stepComposer(time.Minute),
	})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func TestService_EndToEndScenario(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	svc := newTestService(t, store, nil)

	require.Equal(t, 15, svc.Catalog().Len())
	require.Zero(t, svc.Count())
	require.Empty(t, svc.Selection())

	require.NoError(t, svc.Toggle(ctx, "p1"))
	require.NoError(t, svc.Toggle(ctx, "p5"))
	assert.ElementsMatch(t, []string{"p1", "p5"}, svc.Selection())

	first, err := svc.Create(ctx, "My Journal", "elegant", "lined")
	require.NoError(t, err)
	require.Equal(t, 1, svc.Count())
	assert.Equal(t, "My Journal", first.Name)
	assert.ElementsMatch(t, []string{"p1", "p5"}, first.ProductIDs)
	assert.False(t, first.IsMega)
	assert.Empty(t, svc.Selection(), "selection is cleared after create")

	svc.SelectAll(ctx)
	second, err := svc.Create(ctx, "Everything", "ocean", "grid")
	require.NoError(t, err)
	require.Equal(t, 2, svc.Count())
	assert.True(t, second.IsMega)
	assert.Len(t, second.ProductIDs, 15)
	assert.Equal(t, "ocean", second.Cover.ID)
	assert.Equal(t, "grid", second.Paper.ID)

	_, err = svc.Delete(ctx, first.ID)
	require.NoError(t, err)

	items := svc.List()
	require.Len(t, items, 1)
	assert.Equal(t, "Everything", items[0].Name)

	require.Len(t, store.items, 1)
	assert.Equal(t, second.ID, store.items[0].ID)
}

func TestService_CreateWithBlankNameLeavesLibraryUnchanged(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{}
	svc := newTestService(t, store, nil)

	require.NoError(t, svc.Toggle(ctx, "p2"))
	_, err := svc.Create(ctx, "ok", "elegant", "lined")
	require.NoError(t, err)
	before := svc.List()
	saves := store.saves

	require.NoError(t, svc.Toggle(ctx, "p3"))
	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(ctx, name, "elegant", "lined")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainlibrary.ErrEmptyName))
	}

	assert.Equal(t, before, svc.List())
	assert.Equal(t, saves, store.saves)
	assert.Equal(t, []string{"p3"}, svc.Selection(), "selection survives a failed create")
}

func TestService_CreateWithEmptySelection(t *testing.T) {
	svc := newTestService(t, &memoryStore{}, nil)

	_, err := svc.Create(context.Background(), "Journal", "elegant", "lined")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainlibrary.ErrEmptySelection))
	assert.Zero(t, svc.Count())
}

func TestService_CreateRejectsUnknownStyles(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &memoryStore{}, nil)

	_, err := svc.CreateFrom(ctx, []string{"p1"}, "Journal", "plaid", "lined")
	require.Error(t, err)
	assert.Equal(t, domainlibrary.ErrCodeValidation, domainlibrary.CodeOf(err))
	assert.Contains(t, err.Error(), "unknown cover style")

	_, err = svc.CreateFrom(ctx, []string{"p1"}, "Journal", "elegant", "wavy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown paper type")
	assert.Zero(t, svc.Count())
}

func TestService_CreateFromKeepsSelection(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &memoryStore{}, nil)
	require.NoError(t, svc.Toggle(ctx, "p9"))

	item, err := svc.CreateFrom(ctx, []string{"p1", "p2"}, "Direct", "rose", "dotted")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, item.ProductIDs)
	assert.Equal(t, []string{"p9"}, svc.Selection())
}

func TestService_CreatedAtIsNonDecreasing(t *testing.T) {
	ctx := context.Background()
	svc := NewService(Options{
		Store:    &memoryStore{},
		Composer: stepComposer(-time.Minute),
	})

	var prev time.Time
	for i := 0; i < 5; i++ {
		item, err := svc.CreateFrom(ctx, []string{"p1"}, fmt.Sprintf("n%d", i), "elegant", "lined")
		require.NoError(t, err)
		assert.False(t, item.CreatedAt.Before(prev), "item %d went back in time", i)
		prev = item.CreatedAt
	}
}

func TestService_DeleteKeepsOrderAndRejectsMissing(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &memoryStore{}, nil)

	var ids []string
	for i := 0; i < 4; i++ {
		item, err := svc.CreateFrom(ctx, []string{"p1"}, fmt.Sprintf("n%d", i), "elegant", "lined")
		require.NoError(t, err)
		ids = append(ids, item.ID)
	}

	_, err := svc.Delete(ctx, ids[2])
	require.NoError(t, err)

	before := svc.List()
	_, err = svc.Delete(ctx, "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainlibrary.ErrNotFound))
	assert.Equal(t, before, svc.List())

	var remaining []string
	for _, item := range svc.List() {
		remaining = append(remaining, item.ID)
	}
	assert.Equal(t, []string{ids[0], ids[1], ids[3]}, remaining)
}

func TestService_ToggleAll(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &memoryStore{}, nil)
	require.NoError(t, svc.Toggle(ctx, "p4"))

	assert.True(t, svc.ToggleAll(ctx))
	assert.True(t, svc.SelectionComplete())
	assert.Equal(t, 15, svc.SelectionCount())

	assert.False(t, svc.ToggleAll(ctx))
	assert.Zero(t, svc.SelectionCount())
	assert.False(t, svc.IsSelected("p4"))
}

func TestService_ToggleUnknownProduct(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := newTestService(t, &memoryStore{}, publisher)

	err := svc.Toggle(context.Background(), "p99")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainlibrary.ErrInvalidID))
	assert.NotContains(t, publisher.types(), ports.EventSelectionChanged)
}

func TestService_SaveIsRetriedOnce(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{failSaves: 1}
	publisher := &recordingPublisher{}
	svc := newTestService(t, store, publisher)

	_, err := svc.CreateFrom(ctx, []string{"p1"}, "Retry", "elegant", "lined")
	require.NoError(t, err)
	assert.Equal(t, 2, store.saves)
	assert.Len(t, store.items, 1)
	assert.NotContains(t, publisher.types(), ports.EventPersistenceFailed)
}

func TestService_PersistenceFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	store := &memoryStore{failSaves: 2}
	publisher := &recordingPublisher{}
	svc := newTestService(t, store, publisher)

	require.NoError(t, svc.Toggle(ctx, "p1"))
	item, err := svc.Create(ctx, "Unsaved", "elegant", "lined")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainlibrary.ErrPersistenceFailure))

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, 1, svc.Count(), "no rollback on persistence failure")
	assert.Empty(t, svc.Selection())
	assert.Equal(t, 2, store.saves)
	assert.Empty(t, store.items)
	assert.Contains(t, publisher.types(), ports.EventItemCreated)
	assert.Contains(t, publisher.types(), ports.EventPersistenceFailed)
}

func TestService_LoadFailureStartsEmpty(t *testing.T) {
	publisher := &recordingPublisher{}
	svc := NewService(Options{
		Store:     &memoryStore{loadErr: errors.New("corrupt")},
		Publisher: publisher,
	})

	err := svc.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, domainlibrary.ErrCodePersistenceFailure, domainlibrary.CodeOf(err))
	assert.Zero(t, svc.Count())
	assert.Equal(t, []string{ports.EventPersistenceFailed}, publisher.types())
}

func TestService_LoadSkipsItemsOutsideCatalog(t *testing.T) {
	store := &memoryStore{items: []domainlibrary.Item{
		{ID: "good", Name: "Good", ProductIDs: []string{"p1"}, Cover: catalog.DefaultCover(), Paper: catalog.DefaultPaper(), CreatedAt: time.Now()},
		{ID: "stale", Name: "Stale", ProductIDs: []string{"p42"}, Cover: catalog.DefaultCover(), Paper: catalog.DefaultPaper(), CreatedAt: time.Now()},
	}}
	svc := newTestService(t, store, nil)

	items := svc.List()
	require.Len(t, items, 1)
	assert.Equal(t, "good", items[0].ID)

	_, err := svc.CreateFrom(context.Background(), []string{"p2"}, "Fresh", "elegant", "lined")
	require.NoError(t, err)

	var stored []string
	for _, item := range store.items {
		stored = append(stored, item.ID)
	}
	assert.Equal(t, []string{"good", "item-1", "stale"}, stored)
	assert.Len(t, svc.List(), 2)
}

func TestService_FailedLoadNeverOverwritesStore(t *testing.T) {
	ctx := context.Background()
	original := []domainlibrary.Item{
		{ID: "keep-me", Name: "Keep", ProductIDs: []string{"p1"}, Cover: catalog.DefaultCover(), Paper: catalog.DefaultPaper(), CreatedAt: time.Now()},
	}
	store := &memoryStore{items: original, loadErr: errors.New("unsupported library version")}
	publisher := &recordingPublisher{}
	svc := NewService(Options{Store: store, Publisher: publisher, Composer: stepComposer(time.Minute)})

	require.Error(t, svc.Load(ctx))

	require.NoError(t, svc.Toggle(ctx, "p1"))
	item, err := svc.Create(ctx, "New", "elegant", "lined")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainlibrary.ErrPersistenceFailure))
	assert.True(t, errors.Is(err, ErrStoreDetached))
	assert.Equal(t, "New", item.Name)
	assert.Equal(t, 1, svc.Count())

	_, err = svc.Delete(ctx, item.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreDetached))

	assert.Zero(t, store.saves)
	assert.Equal(t, original, store.items)
	assert.Contains(t, publisher.types(), ports.EventPersistenceFailed)

	store.loadErr = nil
	require.NoError(t, svc.Load(ctx))
	require.Equal(t, 1, svc.Count())

	_, err = svc.CreateFrom(ctx, []string{"p2"}, "After reload", "elegant", "lined")
	require.NoError(t, err)
	assert.Equal(t, 1, store.saves)
	assert.Len(t, store.items, 2)
}

func TestService_FailedLoadLeavesLibraryFileIntact(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "library.json")
	content := []byte(`{"version":"2.0","items":[{"id":"keep-me"}]}`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	store, err := storage.NewJSONStore(path, nil)
	require.NoError(t, err)
	svc := NewService(Options{Store: store})

	require.Error(t, svc.Load(ctx))
	require.NoError(t, svc.Toggle(ctx, "p1"))
	_, err = svc.Create(ctx, "New", "elegant", "lined")
	require.Error(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestService_EventsReachSubscribers(t *testing.T) {
	ctx := context.Background()
	publisher := events.NewPublisher(nil)
	svc := newTestService(t, &memoryStore{}, publisher)

	var (
		mu   sync.Mutex
		seen []string
	)
	sub, err := publisher.Subscribe(events.AllEvents, func(ctx context.Context, event ports.DomainEvent) error {
		mu.Lock()
		seen = append(seen, event.EventType())
		mu.Unlock()
		// Handlers may read service state while being notified.
		_ = svc.Count()
		return nil
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, svc.Toggle(ctx, "p1"))
	item, err := svc.Create(ctx, "Journal", "elegant", "lined")
	require.NoError(t, err)
	_, err = svc.Delete(ctx, item.ID)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		ports.EventSelectionChanged,
		ports.EventSelectionChanged,
		ports.EventItemCreated,
		ports.EventItemDeleted,
	}, seen)
}
