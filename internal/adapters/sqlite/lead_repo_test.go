package sqlite

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/example/studio/internal/db"
	"github.com/example/studio/internal/ports/secondary"
)

func TestLeadRepositoryRoundTrip(t *testing.T) {
	store := setupTestStore(t)
	repo := NewLeadRepository(store)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.LeadRecord{
		Type:         secondary.LeadTypeBooking,
		ContactName:  "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "416-555-0198",
		Address:      "1 Queen St",
		PostalCode:   "M5V 2L1",
		PropertyType: "Residential",
		Services:     []string{"weekly-cutting", "hedge-trimming"},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == 0 {
		t.Error("expected a store-assigned id")
	}

	leads, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(leads))
	}

	got := leads[0]
	if got.ID != id || got.Type != secondary.LeadTypeBooking || got.ContactName != "Jane Doe" {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if !reflect.DeepEqual(got.Services, []string{"weekly-cutting", "hedge-trimming"}) {
		t.Errorf("services = %v", got.Services)
	}
	if _, err := time.Parse(time.RFC3339, got.CreatedAt); err != nil {
		t.Errorf("created_at %q is not RFC3339: %v", got.CreatedAt, err)
	}
	if store.Size() == 0 {
		t.Error("mirrored snapshot should be non-empty after create")
	}
}

func TestLeadRepositoryCreateMirrorsStore(t *testing.T) {
	dir := t.TempDir()
	store, err := db.Open(dir)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	ctx := context.Background()

	// No explicit Persist: Create must mirror the store on its own for
	// the row to survive a reopen.
	if _, err := NewLeadRepository(store).Create(ctx, &secondary.LeadRecord{
		Type:        secondary.LeadTypeBooking,
		ContactName: "Jane Doe",
		Email:       "jane@example.com",
		Services:    []string{"weekly-cutting", "hedge-trimming"},
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := db.Open(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	leads, err := NewLeadRepository(reopened).ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected the lead to survive reopen, got %d rows", len(leads))
	}
	if !reflect.DeepEqual(leads[0].Services, []string{"weekly-cutting", "hedge-trimming"}) {
		t.Errorf("services = %v", leads[0].Services)
	}
	if _, err := time.Parse(time.RFC3339, leads[0].CreatedAt); err != nil {
		t.Errorf("created_at %q is not RFC3339: %v", leads[0].CreatedAt, err)
	}
}

func TestLeadRepositoryNilServices(t *testing.T) {
	repo := NewLeadRepository(setupTestStore(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, &secondary.LeadRecord{
		Type:        secondary.LeadTypeContact,
		ContactName: "Bob",
		Email:       "bob@example.com",
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	leads, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(leads[0].Services) != 0 {
		t.Errorf("nil services should round trip as empty, got %v", leads[0].Services)
	}
	if leads[0].Phone != "" || leads[0].PostalCode != "" {
		t.Errorf("optional fields should scan as empty strings: %+v", leads[0])
	}
}

func TestLeadRepositoryListNewestFirst(t *testing.T) {
	repo := NewLeadRepository(setupTestStore(t))
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		if _, err := repo.Create(ctx, &secondary.LeadRecord{
			Type:        secondary.LeadTypeQuotation,
			ContactName: name,
			Email:       "x@example.com",
			Services:    []string{"snow-plowing"},
		}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	leads, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(leads) != 3 {
		t.Fatalf("expected 3 leads, got %d", len(leads))
	}
	// Inserts land within the same second; the id tiebreak keeps the
	// ordering deterministic.
	if leads[0].ContactName != "Third" || leads[2].ContactName != "First" {
		t.Errorf("expected newest first, got %q .. %q", leads[0].ContactName, leads[2].ContactName)
	}
}

func TestLeadRepositoryResubmissionDuplicates(t *testing.T) {
	repo := NewLeadRepository(setupTestStore(t))
	ctx := context.Background()

	record := &secondary.LeadRecord{
		Type:        secondary.LeadTypeBooking,
		ContactName: "Jane Doe",
		Email:       "jane@example.com",
		Services:    []string{"weekly-cutting"},
	}
	id1, err := repo.Create(ctx, record)
	if err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	id2, err := repo.Create(ctx, record)
	if err != nil {
		t.Fatalf("second Create failed: %v", err)
	}
	if id1 == id2 {
		t.Error("identical submissions must create distinct rows")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}
