// Package session provides the durable key-value storage behind the auth
// store: at most one {token, user} pair, cleared atomically on logout, token
// expiry, or a corrupted snapshot. Two backends exist: a JSON file for the
// usual single-operator install and Redis for shared kiosk deployments.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// snapshot is the on-disk shape of a persisted session.
type snapshot struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// FileStore persists the session as one JSON blob owned by the current OS
// user (0600). Writes go through a temp file plus rename so a crash can never
// leave a half-written session behind.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore rooted at path. The parent directory is
// created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted pair. A missing file is an anonymous session, not
// an error. The user snapshot is returned raw; parsing (and the corrupted
// snapshot teardown) is the auth store's call.
func (s *FileStore) Load(_ context.Context) (string, []byte, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil, nil
	}
	if err != nil {
		return "", nil, fmt.Errorf("session load: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		// The blob itself is unreadable. Surface the token as absent and
		// the user as the raw bytes so hydration takes the corruption path.
		return "", raw, nil
	}
	return snap.Token, snap.User, nil
}

// Save replaces the persisted pair.
func (s *FileStore) Save(_ context.Context, token string, rawUser []byte) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session save: %w", err)
	}

	blob, err := json.Marshal(snapshot{Token: token, User: rawUser})
	if err != nil {
		return fmt.Errorf("session save: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o600); err != nil {
		return fmt.Errorf("session save: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("session save: %w", err)
	}
	return nil
}

// Clear removes the persisted pair. Clearing an already-absent session is a
// no-op.
func (s *FileStore) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session clear: %w", err)
	}
	return nil
}
