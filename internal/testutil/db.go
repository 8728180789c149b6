package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/store"
	"github.com/raven-themes/raven/internal/store/migrations"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err, "failed to open in-memory database")
	// every pooled connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	err = migrations.Run(db)
	require.NoError(t, err, "failed to run migrations")

	return db
}

// NewTestStore returns a store over an in-memory database with its session
// file in a fresh temp directory.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.NewWithDB(NewTestDB(t), filepath.Join(t.TempDir(), "ravenserver.json"))
}

// SeedMetadata stores the given records.
func SeedMetadata(t *testing.T, s domain.MetadataStore, records map[string]domain.ThemeMetadata) {
	t.Helper()

	for name, meta := range records {
		err := s.SaveThemeMetadata(name, meta)
		require.NoError(t, err, "failed to seed metadata for %s", name)
	}
}
