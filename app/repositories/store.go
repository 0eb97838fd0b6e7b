package repositories

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Store owns the Badger database underneath the repositories.
type Store struct {
	db       *badger.DB
	dbPath   string
	isTestDB bool
}

// OpenStore opens the Badger database at path. An empty path creates a unique
// temporary directory so tests are isolated from each other.
func OpenStore(path string) (*Store, error) {
	isTest := false
	if path == "" {
		tempPath, err := os.MkdirTemp("", "blogbox_test_db_")
		if err != nil {
			return nil, fmt.Errorf("Error creating temp dir: %v", err)
		}
		path = tempPath
		isTest = true
	}
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	// For testing, ensure the database is clean by dropping all keys.
	if isTest {
		if err := db.DropAll(); err != nil {
			return nil, fmt.Errorf("failed to drop all keys: %v", err)
		}
	}
	return &Store{
		db:       db,
		dbPath:   path,
		isTestDB: isTest,
	}, nil
}

// DB exposes the underlying Badger handle for repository construction.
func (s *Store) DB() *badger.DB {
	return s.db
}

func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return err
	}

	// Clean up test database
	if s.isTestDB {
		if err := os.RemoveAll(s.dbPath); err != nil {
			return fmt.Errorf("failed to cleanup test database: %v", err)
		}
	}
	return nil
}

// Clear drops every key in the store.
func (s *Store) Clear() error {
	return s.db.DropAll()
}

// Backup streams a full backup of the store to w.
func (s *Store) Backup(w io.Writer) error {
	_, err := s.db.Backup(w, 0)
	return err
}

// Restore loads a backup stream produced by Backup into the store.
func (s *Store) Restore(r io.Reader) error {
	return s.db.Load(r, 4)
}
