package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure-Go SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/alexisbeaulieu97/inkwell/internal/domain/library"
	"github.com/alexisbeaulieu97/inkwell/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/inkwell/internal/ports"
)

const schemaVersion = 1

// SQLiteStore keeps the library in a single-file SQLite database. Every
// save rewrites the item table inside one transaction.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger ports.Logger
}

// OpenSQLiteStore opens or creates the database at path and ensures the
// schema exists.
func OpenSQLiteStore(ctx context.Context, path string, logger ports.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	logger = logger.With("component", "sqlite_store", "path", path)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create library directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		_ = db.Close()
		logger.Error(ctx, "ensure schema failed", "error", err)
		return nil, err
	}

	logger.Debug(ctx, "sqlite library ready")
	return &SQLiteStore{db: db, path: path, logger: logger}, nil
}

func ensureSchema(ctx context.Context, db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS library_items (
			id          TEXT PRIMARY KEY,
			position    INTEGER NOT NULL,
			name        TEXT NOT NULL,
			product_ids TEXT NOT NULL,
			cover       TEXT NOT NULL,
			paper       TEXT NOT NULL,
			is_mega     INTEGER NOT NULL DEFAULT 0,
			created_at  TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_library_items_position ON library_items(position);`,
	}
	for _, q := range ddl {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	var current string
	err := db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES ('schema_version', ?)`, fmt.Sprint(schemaVersion)); err != nil {
			return fmt.Errorf("insert schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case current != fmt.Sprint(schemaVersion):
		return fmt.Errorf("unsupported library schema version %s", current)
	}
	return nil
}

// Path returns the database file location.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Load returns every item ordered by position.
func (s *SQLiteStore) Load(ctx context.Context) ([]library.Item, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, product_ids, cover, paper, is_mega, created_at
		FROM library_items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query library: %w", err)
	}
	defer rows.Close()

	var records []itemRecord
	for rows.Next() {
		var (
			r                            itemRecord
			productIDs, cover, paper, ts string
			mega                         int
		)
		if err := rows.Scan(&r.ID, &r.Name, &productIDs, &cover, &paper, &mega, &ts); err != nil {
			return nil, fmt.Errorf("scan library item: %w", err)
		}
		if err := json.Unmarshal([]byte(productIDs), &r.ProductIDs); err != nil {
			return nil, fmt.Errorf("decode product ids of %q: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(cover), &r.Cover); err != nil {
			return nil, fmt.Errorf("decode cover of %q: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(paper), &r.Paper); err != nil {
			return nil, fmt.Errorf("decode paper of %q: %w", r.ID, err)
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, fmt.Errorf("decode created_at of %q: %w", r.ID, err)
		}
		r.IsMega = mega != 0
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate library: %w", err)
	}

	items, err := toItems(records)
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "library loaded", "items", len(items))
	return items, nil
}

// Save replaces the stored library with items.
func (s *SQLiteStore) Save(ctx context.Context, items []library.Item) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM library_items`); err != nil {
		return fmt.Errorf("clear library: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO library_items
		(id, position, name, product_ids, cover, paper, is_mega, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for pos, item := range items {
		r := toRecord(item)
		productIDs, err := json.Marshal(r.ProductIDs)
		if err != nil {
			return fmt.Errorf("encode product ids of %q: %w", r.ID, err)
		}
		cover, err := json.Marshal(r.Cover)
		if err != nil {
			return fmt.Errorf("encode cover of %q: %w", r.ID, err)
		}
		paper, err := json.Marshal(r.Paper)
		if err != nil {
			return fmt.Errorf("encode paper of %q: %w", r.ID, err)
		}
		mega := 0
		if r.IsMega {
			mega = 1
		}
		if _, err := stmt.ExecContext(ctx, r.ID, pos, r.Name, string(productIDs), string(cover), string(paper), mega,
			r.CreatedAt.Format(time.RFC3339Nano)); err != nil {
			return fmt.Errorf("insert item %q: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit library: %w", err)
	}
	s.logger.Debug(ctx, "library saved", "items", len(items))
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.LibraryStore = (*SQLiteStore)(nil)
