package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	carbon "github.com/ashton-krac/ibm-carbon-terminal-chatbot"
)

// Compile-time interface verification.
var _ carbon.IndexStore = (*IndexStore)(nil)

// indexFileName is the database file inside an index directory.
const indexFileName = "index.db"

// IndexStore persists a vector index as a directory holding a SQLite
// database. New indexes are built in a temporary sibling directory and
// moved into place on Commit, so an existing index stays readable until
// its replacement is complete.
type IndexStore struct {
	dir string
}

// NewIndexStore returns a store that keeps the index in dir.
func NewIndexStore(dir string) *IndexStore {
	return &IndexStore{dir: dir}
}

func (s *IndexStore) tempDir() string {
	return s.dir + ".tmp"
}

// Create opens a fresh staging index with the given embedding
// dimensionality. Any staging directory left over from a previous
// failed build is discarded first. The returned index is not visible
// to Open until Commit is called.
func (s *IndexStore) Create(ctx context.Context, dimensions int) (carbon.ChunkIndex, error) {
	tmp := s.tempDir()
	if err := os.RemoveAll(tmp); err != nil {
		return nil, fmt.Errorf("failed to clear staging directory: %w", err)
	}
	if err := os.MkdirAll(tmp, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging directory: %w", err)
	}

	db := NewDB(filepath.Join(tmp, indexFileName))
	if err := db.Open(); err != nil {
		return nil, fmt.Errorf("failed to open staging index: %w", err)
	}

	if err := createSchema(ctx, db, dimensions); err != nil {
		db.Close()
		return nil, err
	}

	return &Index{db: db, dimensions: dimensions}, nil
}

// Commit atomically replaces the current index with the staged one.
// The staged index must be closed before Commit is called.
func (s *IndexStore) Commit() error {
	if err := os.RemoveAll(s.dir); err != nil {
		return fmt.Errorf("failed to remove previous index: %w", err)
	}
	if err := os.Rename(s.tempDir(), s.dir); err != nil {
		return fmt.Errorf("failed to commit index: %w", err)
	}
	return nil
}

// Abort discards the staged index, leaving any committed index intact.
func (s *IndexStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// Open opens the committed index read-only. Writes go through Create;
// a committed index is only ever searched.
func (s *IndexStore) Open(ctx context.Context) (carbon.ChunkIndex, error) {
	path := filepath.Join(s.dir, indexFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, carbon.Errorf(carbon.ENOTFOUND, "Vector index not found at %q.", s.dir)
		}
		return nil, fmt.Errorf("failed to stat index: %w", err)
	}

	db := NewDB(path)
	if err := db.Open(); err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	if _, err := db.db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set read-only mode: %w", err)
	}

	dimensions, err := readDimensions(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Index{db: db, dimensions: dimensions}, nil
}
