package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestOpen_RunsMigrations(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "journal.db")

	db, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='entries'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "entries", name)

	// Opening again is a no-op: migrations are idempotent.
	db2, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, db2.Close())
}

func TestSchema_EnforcesUniqueEntryDate(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`INSERT INTO entries (id, entry_date, gratitude_text, rating, created_at, updated_at)
	                  VALUES ('a', '2024-06-01', 'x', 5, 1, 1)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO entries (id, entry_date, gratitude_text, rating, created_at, updated_at)
	                  VALUES ('b', '2024-06-01', 'y', 4, 2, 2)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
}
