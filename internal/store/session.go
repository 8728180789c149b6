package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/raven-themes/raven/internal/domain"
	"github.com/raven-themes/raven/internal/log"
)

var (
	// ErrNotLoggedIn is returned when no session file exists.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrCorruptState is returned when the session file cannot be decoded.
	ErrCorruptState = errors.New("session file is corrupt")
)

// promote moves a fully written temp file over the canonical path.
var promote = os.Rename

// LoadSession reads the session of the logged-in user.
func (s *Store) LoadSession() (domain.UserInfo, error) {
	data, err := os.ReadFile(s.session)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.UserInfo{}, ErrNotLoggedIn
		}
		return domain.UserInfo{}, fmt.Errorf("read session: %w", err)
	}

	var info domain.UserInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return domain.UserInfo{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if !info.Valid() {
		return domain.UserInfo{}, fmt.Errorf("%w: missing name or token", ErrCorruptState)
	}

	return info, nil
}

// SaveSession replaces the session file. The new content is written to a
// temp sibling, synced, and renamed over the old file, so readers see
// either the previous session or the new one.
func (s *Store) SaveSession(info domain.UserInfo) error {
	if !info.Valid() {
		return errors.New("save session: name and token are required")
	}

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	dir := filepath.Dir(s.session)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "~"+filepath.Base(s.session)+".*")
	if err != nil {
		return fmt.Errorf("create temp session: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := tmp.Chmod(0600); err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp session: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := promote(tmpPath, s.session); err != nil {
		return fmt.Errorf("promote session: %w", err)
	}

	success = true
	log.Debug("store: saved session for %s", info.Name)
	return nil
}

// ClearSession deletes the session file.
func (s *Store) ClearSession() error {
	if err := os.Remove(s.session); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
