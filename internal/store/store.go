// Package store owns the one embedded database connection and serializes
// every read and write against it.
//
// All access goes through With or Tx. Both hold the same exclusive lock for
// the whole callback and release it on every exit path. There is no read
// lock: readers queue behind writers and behind each other.
package store

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/brewlog/brewlog/internal/apperr"
	"github.com/brewlog/brewlog/internal/db"
)

type Store struct {
	mu     sync.Mutex
	db     *sqlx.DB
	path   string
	closed bool
}

// Open connects to the database at path and creates both tables if absent.
// An empty path selects a non-durable in-memory database.
func Open(path string) (*Store, error) {
	conn, err := db.Init(path)
	if err != nil {
		return nil, apperr.Database(err)
	}

	err = db.RunMigrations(conn.DB)
	if err != nil {
		conn.Close()
		return nil, apperr.Database(err)
	}

	return &Store{db: conn, path: path}, nil
}

// Durable reports whether the store is file backed.
func (s *Store) Durable() bool {
	return s.path != ""
}

func (s *Store) Path() string {
	return s.path
}

// With runs fn while holding the store lock. Errors without a kind are
// reported as DatabaseError.
func (s *Store) With(fn func(q sqlx.Ext) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return apperr.Database(errClosed)
	}

	return apperr.Database(fn(s.db))
}

// Tx runs fn inside one transaction while holding the store lock.
// The transaction is rolled back if fn fails.
func (s *Store) Tx(fn func(q sqlx.Ext) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return apperr.Database(errClosed)
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return apperr.Database(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer tx.Rollback()

	err = fn(tx)
	if err != nil {
		return apperr.Database(err)
	}

	err = tx.Commit()
	if err != nil {
		return apperr.Database(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}

// Close releases the connection. An in-memory store loses its data.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	slog.Debug("closing store", "durable", s.path != "")
	return db.Close(s.db)
}
