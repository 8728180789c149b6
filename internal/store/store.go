package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/log"
	"github.com/raven-themes/raven/internal/store/migrations"
)

// Store is the local state of the client: the session file of the logged-in
// user and the SQLite table of per-theme metadata. It implements
// domain.ThemeStore.
type Store struct {
	db      *sql.DB
	path    string
	session string
}

// New opens the metadata database at dbPath, runs migrations, and keeps the
// session in sessionPath.
func New(dbPath, sessionPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = configureSQLite(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("configure database: %w", err)
	}

	setDBPermissions(dbPath)

	if err = migrations.Run(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Debug("store: database ready at %s", dbPath)
	return &Store{db: db, path: dbPath, session: sessionPath}, nil
}

// NewWithDB creates a Store from an already migrated connection.
func NewWithDB(db *sql.DB, sessionPath string) *Store {
	return &Store{db: db, session: sessionPath}
}

// DB returns the underlying database connection.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SessionPath returns the session file location.
func (s *Store) SessionPath() string {
	return s.session
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func configureSQLite(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// setDBPermissions restricts the database and its WAL/SHM files to the owner.
func setDBPermissions(path string) {
	if path == ":memory:" {
		return
	}
	_ = os.Chmod(path, 0600)
	_ = os.Chmod(path+"-wal", 0600)
	_ = os.Chmod(path+"-shm", 0600)
}

var _ domain.ThemeStore = (*Store)(nil)
