package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/quotabank/internal/db"
	"github.com/alexanderramin/quotabank/internal/repository"
)

// NewTestDB creates an in-memory store with the kv_store schema applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, db.MemoryPath)
}

// NewFileTestDB creates a store file in a temp directory. Unlike :memory:,
// every pooled connection sees the same data, so it stands in for two
// processes sharing one store.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openTestDB(t, filepath.Join(t.TempDir(), "quotabank.db"))
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestUoW wraps database in the production unit of work.
func NewTestUoW(database *sql.DB) repository.UnitOfWork {
	return repository.NewSQLiteUnitOfWork(database)
}
