package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Each entity collection is stored whole, as one JSON array per row. The
// store never updates part of a collection.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS collections (
		name       TEXT PRIMARY KEY
		           CHECK(name IN ('goals','objectives','action_plans','values','visions','missions','users')),
		payload    TEXT NOT NULL DEFAULT '[]',
		updated_at TEXT NOT NULL
	)`,

	// Seed one empty row per collection
	`INSERT OR IGNORE INTO collections (name, updated_at) VALUES
		('goals', '1970-01-01T00:00:00Z'),
		('objectives', '1970-01-01T00:00:00Z'),
		('action_plans', '1970-01-01T00:00:00Z'),
		('values', '1970-01-01T00:00:00Z'),
		('visions', '1970-01-01T00:00:00Z'),
		('missions', '1970-01-01T00:00:00Z'),
		('users', '1970-01-01T00:00:00Z')`,

	// Monotonic write counter per collection
	`ALTER TABLE collections ADD COLUMN revision INTEGER NOT NULL DEFAULT 0`,
}
