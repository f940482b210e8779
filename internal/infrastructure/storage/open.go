package storage

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

// Supported backend kinds.
const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)

// Open returns the store of the given kind at path.
func Open(ctx context.Context, kind, path string, logger ports.Logger) (ports.LibraryStore, error) {
	switch kind {
	case KindJSON, "":
		store, err := NewJSONStore(path, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case KindSQLite:
		store, err := OpenSQLiteStore(ctx, path, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q", kind)
	}
}
