package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const (
	Driver = "sqlite"

	// memoryDSN lives only as long as its single connection.
	memoryDSN = ":memory:"

	filePragmas = "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
)

// DSN returns the connection string for path. An empty path selects a
// non-durable in-memory database.
func DSN(path string) string {
	if path == "" {
		return memoryDSN
	}
	return path + filePragmas
}

// Init opens the embedded database at path ("" for in-memory).
func Init(path string) (*sqlx.DB, error) {
	if path != "" {
		dir := filepath.Dir(path)
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sqlx.Connect(Driver, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	// One connection, never recycled: an in-memory database is dropped
	// together with its connection, and all access is serialized anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	slog.Info("database connected", "driver", Driver, "durable", path != "")

	return db, nil
}

func Close(db *sqlx.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
