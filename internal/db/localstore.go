package db

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
)

// Mirror keys. The snapshot key holds the entire serialized store; the
// backup key holds the timestamp of the last successful export.
const (
	snapshotKey   = "garden_architect_db"
	lastBackupKey = "last_studio_backup"
)

// LocalStore is a single-file key-value mirror for the embedded store: one
// JSON document mapping string keys to string values, with the database
// snapshot stored base64-encoded under snapshotKey. Single writer,
// last write wins.
type LocalStore struct {
	path string
}

// NewLocalStore returns a mirror backed by the given file path. The file is
// created lazily on first write.
func NewLocalStore(path string) *LocalStore {
	return &LocalStore{path: path}
}

func (l *LocalStore) load() (map[string]string, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read local store: %w", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse local store: %w", err)
	}
	return entries, nil
}

func (l *LocalStore) save(entries map[string]string) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal local store: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write local store: %w", err)
	}
	return nil
}

// Get returns the value for key, or "" if absent.
func (l *LocalStore) Get(key string) (string, error) {
	entries, err := l.load()
	if err != nil {
		return "", err
	}
	return entries[key], nil
}

// Set stores key=value, replacing any previous value.
func (l *LocalStore) Set(key, value string) error {
	entries, err := l.load()
	if err != nil {
		return err
	}
	entries[key] = value
	return l.save(entries)
}

// Snapshot returns the mirrored database snapshot, or nil if none exists.
func (l *LocalStore) Snapshot() ([]byte, error) {
	encoded, err := l.Get(snapshotKey)
	if err != nil {
		return nil, err
	}
	if encoded == "" {
		return nil, nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return raw, nil
}

// SetSnapshot overwrites the mirrored snapshot with raw.
func (l *LocalStore) SetSnapshot(raw []byte) error {
	return l.Set(snapshotKey, base64.StdEncoding.EncodeToString(raw))
}

// SnapshotSize returns the byte length of the mirrored snapshot, 0 if none.
func (l *LocalStore) SnapshotSize() int {
	raw, err := l.Snapshot()
	if err != nil {
		return 0
	}
	return len(raw)
}

// Clear removes the mirror file entirely.
func (l *LocalStore) Clear() error {
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear local store: %w", err)
	}
	return nil
}
