package sqlite

import (
	"testing"

	"github.com/example/studio/internal/db"
)

// setupTestStore opens a store in a temp directory so repository tests
// exercise the real snapshot-mirroring write path.
func setupTestStore(t *testing.T) *db.Store {
	t.Helper()
	store, err := db.Open(t.TempDir())
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}
