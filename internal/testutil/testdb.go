package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/strata/internal/db"
	"github.com/alexanderramin/strata/internal/store"
)

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a store UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) store.UnitOfWork {
	return store.NewSQLiteUnitOfWork(db.NewSQLiteUnitOfWork(database))
}

// NewMemoryUoW creates a store UnitOfWork with no database behind it.
func NewMemoryUoW() store.UnitOfWork {
	return store.NewMemoryUnitOfWork(store.NewMemoryBackend())
}

// Backends lists both store implementations so tests can run against each.
func Backends(t *testing.T) map[string]store.UnitOfWork {
	t.Helper()
	return map[string]store.UnitOfWork{
		"memory": NewMemoryUoW(),
		"sqlite": NewTestUoW(NewTestDB(t)),
	}
}
