package db

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func newTestLocalStore(t *testing.T) *LocalStore {
	t.Helper()
	return NewLocalStore(filepath.Join(t.TempDir(), "localstore.json"))
}

func TestLocalStoreGetSet(t *testing.T) {
	ls := newTestLocalStore(t)

	v, err := ls.Get("missing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != "" {
		t.Errorf("missing key = %q, want empty", v)
	}

	if err := ls.Set("key", "first"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := ls.Set("key", "second"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, err = ls.Get("key")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != "second" {
		t.Errorf("value = %q, want last write", v)
	}
}

func TestLocalStoreSnapshotRoundTrip(t *testing.T) {
	ls := newTestLocalStore(t)

	snap, err := ls.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if snap != nil {
		t.Error("fresh store should have no snapshot")
	}
	if ls.SnapshotSize() != 0 {
		t.Error("fresh store snapshot size should be 0")
	}

	raw := []byte{0x53, 0x51, 0x4c, 0x69, 0x74, 0x65, 0x00, 0xff}
	if err := ls.SetSnapshot(raw); err != nil {
		t.Fatalf("SetSnapshot failed: %v", err)
	}

	got, err := ls.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("snapshot round trip = %v, want %v", got, raw)
	}
	if ls.SnapshotSize() != len(raw) {
		t.Errorf("snapshot size = %d, want %d", ls.SnapshotSize(), len(raw))
	}
}

func TestLocalStoreClear(t *testing.T) {
	ls := newTestLocalStore(t)

	// Clearing a never-written store is a no-op.
	if err := ls.Clear(); err != nil {
		t.Fatalf("Clear on empty store failed: %v", err)
	}

	if err := ls.Set("key", "value"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := ls.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := os.Stat(ls.path); !os.IsNotExist(err) {
		t.Error("Clear should remove the mirror file")
	}

	v, err := ls.Get("key")
	if err != nil {
		t.Fatalf("Get after clear failed: %v", err)
	}
	if v != "" {
		t.Errorf("cleared store returned %q", v)
	}
}
