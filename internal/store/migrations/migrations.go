// Package migrations owns the schema of the local theme metadata cache.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// requiredTables must exist once every migration has been applied.
var requiredTables = []string{"theme_metadata"}

// ErrSchema is returned when the database lacks a table the cache reads.
var ErrSchema = errors.New("migrations: metadata schema incomplete")

// Migration is one embedded schema change, named NN_name.sql.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

func (m Migration) String() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Name)
}

const createSchemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	description TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

// Load returns the embedded migrations ordered by version.
func Load() ([]Migration, error) {
	files, err := fs.Glob(sqlFiles, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	all := make([]Migration, 0, len(files))
	for _, file := range files {
		m, err := parse(file)
		if err != nil {
			return nil, err
		}
		all = append(all, m)
	}

	slices.SortFunc(all, func(a, b Migration) int { return a.Version - b.Version })
	for i := 1; i < len(all); i++ {
		if all[i].Version == all[i-1].Version {
			return nil, fmt.Errorf("duplicate version %d: %s and %s", all[i].Version, all[i-1], all[i])
		}
	}
	return all, nil
}

func parse(file string) (Migration, error) {
	base := strings.TrimSuffix(path.Base(file), ".sql")
	num, name, ok := strings.Cut(base, "_")
	if !ok || name == "" {
		return Migration{}, fmt.Errorf("%s: expected NN_name.sql", file)
	}
	version, err := strconv.Atoi(num)
	if err != nil {
		return Migration{}, fmt.Errorf("%s: bad version: %w", file, err)
	}

	content, err := sqlFiles.ReadFile(file)
	if err != nil {
		return Migration{}, fmt.Errorf("read %s: %w", file, err)
	}
	return Migration{Version: version, Name: name, SQL: string(content)}, nil
}

// Run applies every migration not yet recorded, each in its own
// transaction, and then checks that the metadata tables are present.
func Run(db *sql.DB) error {
	pending, err := Pending(db)
	if err != nil {
		return err
	}

	for _, m := range pending {
		if err := apply(db, m); err != nil {
			return fmt.Errorf("migration %s: %w", m, err)
		}
	}
	return Verify(db)
}

// Verify reports ErrSchema when a table the metadata cache relies on is
// missing, for example after a recorded migration was undone by hand.
func Verify(db *sql.DB) error {
	for _, table := range requiredTables {
		var n int
		err := db.QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&n)
		if err != nil {
			return fmt.Errorf("inspect schema: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: table %s is missing", ErrSchema, table)
		}
	}
	return nil
}

func apply(db *sql.DB, m Migration) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (version, description) VALUES (?, ?)",
		m.Version, m.Name,
	); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	return tx.Commit()
}

func applied(db *sql.DB) (map[int]bool, error) {
	if _, err := db.Exec(createSchemaTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	rows, err := db.Query("SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	done := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		done[v] = true
	}
	return done, rows.Err()
}

// CurrentVersion returns the highest applied migration version, or 0.
func CurrentVersion(db *sql.DB) (int, error) {
	done, err := applied(db)
	if err != nil {
		return 0, err
	}

	current := 0
	for v := range done {
		current = max(current, v)
	}
	return current, nil
}

// Pending returns the migrations not yet recorded as applied.
func Pending(db *sql.DB) ([]Migration, error) {
	all, err := Load()
	if err != nil {
		return nil, err
	}
	done, err := applied(db)
	if err != nil {
		return nil, err
	}

	return slices.DeleteFunc(all, func(m Migration) bool { return done[m.Version] }), nil
}
