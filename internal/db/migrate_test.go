package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"subjects", "subject_reviews"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_DifficultyConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO subjects (id, name, difficulty, created_at) VALUES ('a', 'x', 'brutal', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_ForeignKeysEnforced(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO subject_reviews (id, subject_id, reviewed_at) VALUES ('r', 'missing', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestOpenDB_IsolatedPerCall(t *testing.T) {
	a := openTestDB(t)
	b := openTestDB(t)

	_, err := a.Exec(`INSERT INTO subjects (id, name, difficulty, created_at) VALUES ('a', 'x', 'easy', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var n int
	require.NoError(t, b.QueryRow(`SELECT COUNT(*) FROM subjects`).Scan(&n))
	assert.Equal(t, 0, n)

	require.NoError(t, a.QueryRow(`SELECT COUNT(*) FROM subjects`).Scan(&n))
	assert.Equal(t, 1, n)
}
