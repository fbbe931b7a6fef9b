package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Re-running every statement must succeed.
	require.NoError(t, Migrate(db))

	// Third time for good measure.
	require.NoError(t, Migrate(db))
}

func TestMigrate_SeedsEveryCollection(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"goals", "objectives", "action_plans", "values", "visions", "missions", "users"}
	for _, name := range expected {
		var payload string
		var revision int
		err := db.QueryRow(`SELECT payload, revision FROM collections WHERE name = ?`, name).Scan(&payload, &revision)
		require.NoError(t, err, "collection %s should be seeded", name)
		assert.Equal(t, "[]", payload)
		assert.Equal(t, 0, revision)
	}
}

func TestMigrate_RejectsUnknownCollection(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO collections (name, updated_at) VALUES ('projects', '2025-01-01T00:00:00Z')`)
	require.Error(t, err, "CHECK constraint should reject unknown collection names")
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_WALModeRequested(t *testing.T) {
	// In-memory SQLite uses "memory" journal mode; WAL only applies to file DBs.
	db := openTestDB(t)

	var mode string
	err := db.QueryRow(`PRAGMA journal_mode`).Scan(&mode)
	require.NoError(t, err)
	assert.Equal(t, "memory", mode)
}

func TestOpenDB_FileCreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/strata.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
