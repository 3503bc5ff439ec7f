package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS subjects (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		difficulty    TEXT NOT NULL
		              CHECK(difficulty IN ('easy','medium','hard')),
		last_reviewed TEXT,
		created_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS subject_reviews (
		id          TEXT PRIMARY KEY,
		subject_id  TEXT NOT NULL REFERENCES subjects(id) ON DELETE CASCADE,
		reviewed_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_subject_reviews_subject ON subject_reviews(subject_id, reviewed_at)`,
}
