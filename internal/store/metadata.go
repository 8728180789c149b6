package store

import (
	"database/sql"
	"errors"

	"github.com/raven-themes/raven/internal/domain"
)

// LoadThemeMetadata returns the stored metadata of name, or the defaults
// when nothing was recorded. Loading never creates a row.
func (s *Store) LoadThemeMetadata(name string) (domain.ThemeMetadata, error) {
	var meta domain.ThemeMetadata
	err := s.db.QueryRow(
		`SELECT screenshot, description FROM theme_metadata WHERE name = ?`,
		name,
	).Scan(&meta.Screenshot, &meta.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DefaultThemeMetadata(), nil
	}
	if err != nil {
		return domain.ThemeMetadata{}, err
	}
	return meta, nil
}

// SaveThemeMetadata inserts or replaces the metadata of name.
func (s *Store) SaveThemeMetadata(name string, meta domain.ThemeMetadata) error {
	_, err := s.db.Exec(
		`INSERT INTO theme_metadata (name, screenshot, description, updated_at)
		 VALUES (?, ?, ?, datetime('now'))
		 ON CONFLICT(name) DO UPDATE SET
			screenshot = excluded.screenshot,
			description = excluded.description,
			updated_at = excluded.updated_at`,
		name, meta.Screenshot, meta.Description,
	)
	return err
}

// ListThemeMetadata returns every stored record keyed by theme name.
func (s *Store) ListThemeMetadata() (map[string]domain.ThemeMetadata, error) {
	rows, err := s.db.Query(
		`SELECT name, screenshot, description FROM theme_metadata ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	result := make(map[string]domain.ThemeMetadata)
	for rows.Next() {
		var (
			name string
			meta domain.ThemeMetadata
		)
		if err := rows.Scan(&name, &meta.Screenshot, &meta.Description); err != nil {
			return nil, err
		}
		result[name] = meta
	}
	return result, rows.Err()
}

// DeleteThemeMetadata removes the record of name. Missing records are not an error.
func (s *Store) DeleteThemeMetadata(name string) error {
	_, err := s.db.Exec(`DELETE FROM theme_metadata WHERE name = ?`, name)
	return err
}
