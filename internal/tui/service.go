package tui

import (
	"context"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/catalog"
	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
)

// LibraryService exposes the selection and library operations the screens
// require.
type LibraryService interface {
	Catalog() *catalog.Catalog
	Toggle(ctx context.Context, id string) error
	ToggleAll(ctx context.Context) bool
	IsSelected(id string) bool
	SelectionCount() int
	SelectionComplete() bool
	Create(ctx context.Context, name, coverID, paperID string) (library.Item, error)
	Delete(ctx context.Context, id string) (library.Item, error)
	List() []library.Item
	Count() int
}
