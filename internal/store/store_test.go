package store

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"

	"github.com/raven-themes/raven/internal/store/migrations"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// every pooled connection would get its own empty :memory: database
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = db.Close()
	})

	require.NoError(t, migrations.Run(db))

	return NewWithDB(db, filepath.Join(t.TempDir(), "ravenserver.json"))
}

func TestNew_OnDisk(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "raven.db")
	sessionPath := filepath.Join(dir, "ravenserver.json")

	s, err := New(dbPath, sessionPath)
	require.NoError(t, err)
	require.Equal(t, sessionPath, s.SessionPath())
	require.NotNil(t, s.DB())

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	version, err := migrations.CurrentVersion(s.DB())
	require.NoError(t, err)
	require.Positive(t, version)

	require.NoError(t, s.Close())
}

func TestNew_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "raven.db")
	sessionPath := filepath.Join(dir, "ravenserver.json")

	s, err := New(dbPath, sessionPath)
	require.NoError(t, err)
	meta, err := s.LoadThemeMetadata("nord")
	require.NoError(t, err)
	meta.Description = "cold"
	require.NoError(t, s.SaveThemeMetadata("nord", meta))
	require.NoError(t, s.Close())

	s, err = New(dbPath, sessionPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	meta, err = s.LoadThemeMetadata("nord")
	require.NoError(t, err)
	require.Equal(t, "cold", meta.Description)
}

func TestNew_BadPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	_, err := New(filepath.Join(blocker, "raven.db"), filepath.Join(dir, "ravenserver.json"))
	require.Error(t, err)
}

func TestClose_NilDB(t *testing.T) {
	s := &Store{}
	require.NoError(t, s.Close())
}
