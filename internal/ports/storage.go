package ports

import (
	"context"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
)

// LibraryStore persists the ordered library. Load on a store that has never
// been written returns an empty slice and no error.
type LibraryStore interface {
	Load(ctx context.Context) ([]library.Item, error)
	Save(ctx context.Context, items []library.Item) error
	Close() error
}
