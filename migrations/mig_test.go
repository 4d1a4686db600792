package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestUpIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Up(ctx, db))
	require.NoError(t, Up(ctx, db))

	v, err := Version(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 1, v)

	var name string
	err = db.QueryRowContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'documents'").Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "documents", name)
}

func TestDocumentsRejectInvalidJSON(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "json.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Up(ctx, db))

	_, err = db.ExecContext(ctx, "INSERT INTO documents (collection, doc_id, data) VALUES ('movies', 'a', '{not json')")
	assert.Error(t, err)
}
