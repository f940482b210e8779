package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
	"github.com/alexisbeaulieu97/inkwell/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

// JSONStore keeps the library in a single JSON document that is replaced
// atomically on every save.
type JSONStore struct {
	path   string
	mu     sync.Mutex
	logger ports.Logger
}

// NewJSONStore creates the parent directory of path if needed.
func NewJSONStore(path string, logger ports.Logger) (*JSONStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create library directory: %w", err)
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &JSONStore{
		path:   path,
		logger: logger.With("component", "json_store"),
	}, nil
}

// Path returns the document location.
func (s *JSONStore) Path() string {
	return s.path
}

// Load reads the document. A missing file is an empty library.
func (s *JSONStore) Load(ctx context.Context) ([]library.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug(ctx, "library file not found, starting empty", "path", s.path)
			return []library.Item{}, nil
		}
		return nil, fmt.Errorf("read library: %w", err)
	}

	var file libraryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse library: %w", err)
	}
	if file.Version != "" && file.Version != formatVersion {
		return nil, fmt.Errorf("unsupported library version %q", file.Version)
	}

	items, err := toItems(file.Items)
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "library loaded", "path", s.path, "items", len(items))
	return items, nil
}

// Save writes items to a temporary file and renames it over the document.
func (s *JSONStore) Save(ctx context.Context, items []library.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file := libraryFile{
		Version: formatVersion,
		Items:   make([]itemRecord, len(items)),
	}
	for i, item := range items {
		file.Items[i] = toRecord(item)
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal library: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}

	s.logger.Debug(ctx, "library saved", "path", s.path, "items", len(items))
	return nil
}

// Close is a no-op; the store holds no open handles.
func (s *JSONStore) Close() error {
	return nil
}

var _ ports.LibraryStore = (*JSONStore)(nil)
