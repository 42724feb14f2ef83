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

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS classes (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		slug        TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		schedule    TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS assignments (
		id          TEXT PRIMARY KEY,
		class_slug  TEXT NOT NULL REFERENCES classes(slug) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		start_date  TEXT NOT NULL DEFAULT '',
		end_date    TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		progress    INTEGER NOT NULL DEFAULT 0
		            CHECK(progress BETWEEN 0 AND 100),
		priority    TEXT NOT NULL DEFAULT 'medium'
		            CHECK(priority IN ('low','medium','high')),
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_class ON assignments(class_slug)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_end_date ON assignments(end_date)`,

	`CREATE TABLE IF NOT EXISTS attachments (
		assignment_id TEXT NOT NULL REFERENCES assignments(id) ON DELETE CASCADE,
		position      INTEGER NOT NULL,
		name          TEXT NOT NULL,
		type          TEXT NOT NULL DEFAULT '',
		size          INTEGER NOT NULL DEFAULT 0,
		data          BLOB,
		PRIMARY KEY (assignment_id, position)
	)`,
}
