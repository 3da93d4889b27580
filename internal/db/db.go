// Package db owns the embedded record store: a SQLite database restored
// from, and mirrored back into, a single key-value snapshot entry. Every
// mutation is followed by a full snapshot replace; there is no incremental
// persistence. The cost is O(store size) per write, which the expected lead
// volume keeps trivially small.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/studio/internal/logger"
)

const (
	workFile    = "studio.db"
	mirrorFile  = "localstore.json"
	backupName  = "garden_architect_backup_%s.sqlite"
	scratchName = "studio.db.export"
)

// Store is the embedded record store. The mirror is authoritative: Open
// restores the working database from the mirrored snapshot, and Persist
// replaces the snapshot after each mutation. A Store is either fully open
// or an Open error; there is no half-initialized state.
type Store struct {
	db       *sql.DB
	local    *LocalStore
	dataDir  string
	workPath string
}

// Open establishes the store under dataDir. If the mirror holds a snapshot
// the working database is restored from it; otherwise a fresh store is
// created from the authoritative schema and mirrored immediately.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{
		local:    NewLocalStore(filepath.Join(dataDir, mirrorFile)),
		dataDir:  dataDir,
		workPath: filepath.Join(dataDir, workFile),
	}

	snap, err := s.local.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load mirrored snapshot: %w", err)
	}

	if snap != nil {
		if err := os.WriteFile(s.workPath, snap, 0644); err != nil {
			return nil, fmt.Errorf("failed to restore snapshot: %w", err)
		}
	} else {
		// No mirror: any stale working file is an artifact of a purge.
		if err := os.Remove(s.workPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to reset working database: %w", err)
		}
	}

	s.db, err = sql.Open("sqlite3", s.workPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := s.db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		s.db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if snap == nil {
		if _, err := s.db.Exec(GetSchemaSQL()); err != nil {
			s.db.Close()
			return nil, fmt.Errorf("failed to initialize schema: %w", err)
		}
		if err := s.Persist(); err != nil {
			s.db.Close()
			return nil, err
		}
	}

	return s, nil
}

// DB exposes the underlying connection for repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Persist re-serializes the entire store and overwrites the mirrored
// snapshot. Called by every mutating repository operation.
func (s *Store) Persist() error {
	scratch := filepath.Join(s.dataDir, scratchName)
	if err := os.Remove(scratch); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear scratch file: %w", err)
	}

	if _, err := s.db.Exec("VACUUM INTO ?", scratch); err != nil {
		logger.WithField("path", scratch).WithError(err).Error("store serialization failed")
		return fmt.Errorf("failed to serialize store: %w", err)
	}
	defer os.Remove(scratch)

	raw, err := os.ReadFile(scratch)
	if err != nil {
		return fmt.Errorf("failed to read serialized store: %w", err)
	}

	if err := s.local.SetSnapshot(raw); err != nil {
		logger.WithError(err).Error("snapshot mirror write failed")
		return err
	}
	return nil
}

// Size returns the byte length of the currently mirrored snapshot, 0 if
// none exists.
func (s *Store) Size() int {
	return s.local.SnapshotSize()
}

// ExportSnapshot persists the current state and writes the snapshot to a
// dated backup file under dir, returning the file path.
func (s *Store) ExportSnapshot(dir string) (string, error) {
	if err := s.Persist(); err != nil {
		return "", err
	}

	raw, err := s.local.Snapshot()
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf(backupName, time.Now().UTC().Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}
	return path, nil
}

// LastBackup returns the recorded timestamp of the last export, "" if none.
func (s *Store) LastBackup() string {
	v, err := s.local.Get(lastBackupKey)
	if err != nil {
		return ""
	}
	return v
}

// SetLastBackup records t as the last successful export time.
func (s *Store) SetLastBackup(t time.Time) error {
	return s.local.Set(lastBackupKey, t.UTC().Format(time.RFC3339))
}

// Purge clears all persisted state: the mirror and the working database.
// The store is closed afterwards; the next Open yields a fresh empty store.
func (s *Store) Purge() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	if err := s.local.Clear(); err != nil {
		return err
	}
	if err := os.Remove(s.workPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove working database: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}
