package library

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
)

func elegant(t *testing.T) catalog.CoverStyle {
	t.Helper()
	c, ok := catalog.LookupCover("elegant")
	require.True(t, ok)
	return c
}

func lined(t *testing.T) catalog.PaperType {
	t.Helper()
	p, ok := catalog.LookupPaper("lined")
	require.True(t, ok)
	return p
}

func fixedComposer() *Composer {
	n := 0
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Composer{
		Catalog: catalog.Default(),
		NewID: func() string {
			n++
			return fmt.Sprintf("item-%d", n)
		},
		Now: func() time.Time {
			return base.Add(time.Duration(n) * time.Minute)
		},
	}
}

func TestSelection_ToggleTwiceIsIdentity(t *testing.T) {
	c := catalog.Default()
	for _, id := range c.IDs() {
		s := NewSelection(c)
		require.NoError(t, s.Toggle("p3"))
		before := s.IDs()

		require.NoError(t, s.Toggle(id))
		require.NoError(t, s.Toggle(id))

		assert.ElementsMatch(t, before, s.IDs(), "double toggle of %s", id)
	}
}

func TestSelection_ToggleUnknownID(t *testing.T) {
	s := NewSelection(catalog.Default())

	err := s.Toggle("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidID))
	assert.True(t, s.IsEmpty())
}

func TestSelection_SelectAllThenDeselectAll(t *testing.T) {
	c := catalog.Default()
	s := NewSelection(c)
	require.NoError(t, s.Toggle("p7"))

	s.SelectAll()
	assert.Equal(t, c.IDs(), s.IDs())
	assert.True(t, s.IsComplete())

	s.DeselectAll()
	assert.True(t, s.IsEmpty())
	assert.False(t, s.IsComplete())
	assert.False(t, s.Contains("p7"))
}

func TestSelection_KeepsInsertionOrder(t *testing.T) {
	s := NewSelection(catalog.Default())
	require.NoError(t, s.Toggle("p5"))
	require.NoError(t, s.Toggle("p1"))
	require.NoError(t, s.Toggle("p9"))
	require.NoError(t, s.Toggle("p1"))

	assert.Equal(t, []string{"p5", "p9"}, s.IDs())
	assert.Equal(t, 2, s.Len())
}

func TestCompose_Validation(t *testing.T) {
	comp := fixedComposer()

	tests := []struct {
		name    string
		ids     []string
		title   string
		wantErr error
	}{
		{name: "blank name", ids: []string{"p1"}, title: "   ", wantErr: ErrEmptyName},
		{name: "empty name wins over empty selection", ids: nil, title: "", wantErr: ErrEmptyName},
		{name: "empty selection", ids: nil, title: "Journal", wantErr: ErrEmptySelection},
		{name: "unknown id", ids: []string{"p1", "x"}, title: "Journal", wantErr: ErrInvalidID},
		{name: "duplicate id", ids: []string{"p1", "p1"}, title: "Journal", wantErr: ErrDuplicate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := comp.Compose(tt.ids, tt.title, elegant(t), lined(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestCompose_MegaFlag(t *testing.T) {
	comp := fixedComposer()
	c := catalog.Default()

	partial, err := comp.Compose([]string{"p1", "p5"}, "My Journal", elegant(t), lined(t))
	require.NoError(t, err)
	assert.False(t, partial.IsMega)

	full, err := comp.Compose(c.IDs(), "Everything", elegant(t), lined(t))
	require.NoError(t, err)
	assert.True(t, full.IsMega)
	assert.Len(t, full.ProductIDs, c.Len())
}

func TestCompose_SnapshotsInputs(t *testing.T) {
	comp := fixedComposer()
	ids := []string{"p1", "p2"}
	cover := elegant(t)

	item, err := comp.Compose(ids, "  Trip Notes  ", cover, lined(t))
	require.NoError(t, err)

	ids[0] = "p9"
	cover.Name = "Changed"

	assert.Equal(t, []string{"p1", "p2"}, item.ProductIDs)
	assert.Equal(t, "Elegant", item.Cover.Name)
	assert.Equal(t, "Trip Notes", item.Name)
	require.NoError(t, item.Validate(catalog.Default()))
}

func TestNewComposer_IssuesUniqueIDs(t *testing.T) {
	comp := NewComposer(catalog.Default())

	a, err := comp.Compose([]string{"p1"}, "A", elegant(t), lined(t))
	require.NoError(t, err)
	b, err := comp.Compose([]string{"p1"}, "B", elegant(t), lined(t))
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, b.CreatedAt.Before(a.CreatedAt))
}

func TestItem_ValidateMegaMismatch(t *testing.T) {
	item := Item{ID: "x", Name: "X", ProductIDs: []string{"p1"}, IsMega: true}

	err := item.Validate(catalog.Default())
	require.Error(t, err)
	assert.Equal(t, ErrCodeValidation, CodeOf(err))
}

func TestLibrary_AppendDeleteOrder(t *testing.T) {
	comp := fixedComposer()
	lib, err := NewLibrary(nil)
	require.NoError(t, err)

	var ids []string
	for i := 0; i < 4; i++ {
		item, err := comp.Compose([]string{"p1"}, fmt.Sprintf("item %d", i), elegant(t), lined(t))
		require.NoError(t, err)
		require.NoError(t, lib.Append(item))
		ids = append(ids, item.ID)
	}

	removed, err := lib.Delete(ids[1])
	require.NoError(t, err)
	assert.Equal(t, ids[1], removed.ID)

	var remaining []string
	for _, item := range lib.List() {
		remaining = append(remaining, item.ID)
	}
	assert.Equal(t, []string{ids[0], ids[2], ids[3]}, remaining)
}

func TestLibrary_DeleteMissingLeavesLibraryUnchanged(t *testing.T) {
	comp := fixedComposer()
	item, err := comp.Compose([]string{"p1"}, "A", elegant(t), lined(t))
	require.NoError(t, err)

	lib, err := NewLibrary([]Item{item})
	require.NoError(t, err)
	before := lib.List()

	_, err = lib.Delete("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, before, lib.List())
}

func TestLibrary_RejectsDuplicates(t *testing.T) {
	item := Item{ID: "dup", Name: "A", ProductIDs: []string{"p1"}}

	_, err := NewLibrary([]Item{item, item})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))
}

func TestLibrary_ListReturnsCopies(t *testing.T) {
	lib, err := NewLibrary([]Item{{ID: "a", Name: "A", ProductIDs: []string{"p1"}}})
	require.NoError(t, err)

	items := lib.List()
	items[0].ProductIDs[0] = "p2"

	got, ok := lib.Get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"p1"}, got.ProductIDs)
}

func TestDomainError_IsMatchesByCode(t *testing.T) {
	err := ErrEmptyName.WithContext(map[string]interface{}{"id": "x"})
	wrapped := fmt.Errorf("create: %w", err)

	assert.True(t, errors.Is(wrapped, ErrEmptyName))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, ErrCodeEmptyName, CodeOf(wrapped))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
}

func TestDomainError_ErrorString(t *testing.T) {
	cause := errors.New("disk full")
	err := NewPersistenceError("save", cause)

	assert.Equal(t, "PERSISTENCE_FAILURE: persisting library failed: disk full", err.Error())
	assert.True(t, errors.Is(err, cause))

	var nilErr *DomainError
	assert.Equal(t, "<nil>", nilErr.Error())
}
