package app

import (
	"context"
	"strings"
	"testing"

	"github.com/example/studio/internal/ports/primary"
	"github.com/example/studio/internal/ports/secondary"
)

func TestCaptureLead(t *testing.T) {
	leadRepo := newMockLeadRepository()
	notifRepo := newMockNotificationRepository()
	svc := NewLeadService(leadRepo, newTestDispatchService(notifRepo, nil))

	res, err := svc.CaptureLead(context.Background(), primary.CaptureLeadRequest{
		Type:         secondary.LeadTypeBooking,
		ContactName:  "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "416-555-0198",
		Address:      "1 Queen St",
		PostalCode:   "M5V 2L1",
		PropertyType: "Residential",
		Services:     []string{"weekly-cutting"},
	})
	if err != nil {
		t.Fatalf("CaptureLead failed: %v", err)
	}
	if res.LeadID != 1 {
		t.Errorf("lead id = %d, want 1", res.LeadID)
	}
	if len(leadRepo.leads) != 1 {
		t.Fatalf("expected 1 stored lead, got %d", len(leadRepo.leads))
	}
	if leadRepo.leads[0].Type != secondary.LeadTypeBooking {
		t.Errorf("stored type = %q", leadRepo.leads[0].Type)
	}
}

func TestCaptureLeadRejectsInvalidType(t *testing.T) {
	leadRepo := newMockLeadRepository()
	svc := NewLeadService(leadRepo, newTestDispatchService(newMockNotificationRepository(), nil))

	if _, err := svc.CaptureLead(context.Background(), primary.CaptureLeadRequest{
		Type:     "contact",
		Services: []string{"weekly-cutting"},
	}); err == nil {
		t.Error("expected error for contact type via CaptureLead")
	}

	if _, err := svc.CaptureLead(context.Background(), primary.CaptureLeadRequest{
		Type: secondary.LeadTypeBooking,
	}); err == nil {
		t.Error("expected error for empty service selection")
	}
	if len(leadRepo.leads) != 0 {
		t.Errorf("rejected requests must not persist, got %d leads", len(leadRepo.leads))
	}
}

func TestSubmitContactDefaultsSubject(t *testing.T) {
	leadRepo := newMockLeadRepository()
	notifRepo := newMockNotificationRepository()
	svc := NewLeadService(leadRepo, newTestDispatchService(notifRepo, nil))

	res, err := svc.SubmitContact(context.Background(), primary.ContactRequest{
		Name:  "Bob",
		Email: "bob@example.com",
	})
	if err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}

	if len(leadRepo.leads) != 1 {
		t.Fatalf("expected 1 stored lead, got %d", len(leadRepo.leads))
	}
	lead := leadRepo.leads[0]
	if lead.Type != secondary.LeadTypeContact {
		t.Errorf("stored type = %q", lead.Type)
	}
	if len(lead.Services) != 1 || lead.Services[0] != DefaultContactSubject {
		t.Errorf("services = %v, want [%q]", lead.Services, DefaultContactSubject)
	}
	if !strings.Contains(res.Report, "- "+DefaultContactSubject) {
		t.Errorf("report missing default subject:\n%s", res.Report)
	}
	if len(notifRepo.notifications) != 1 {
		t.Errorf("expected a dispatch audit row, got %d", len(notifRepo.notifications))
	}
}

func TestSubmitContactCustomSubject(t *testing.T) {
	leadRepo := newMockLeadRepository()
	svc := NewLeadService(leadRepo, newTestDispatchService(newMockNotificationRepository(), nil))

	res, err := svc.SubmitContact(context.Background(), primary.ContactRequest{
		Name:    "Bob",
		Email:   "bob@example.com",
		Subject: "Hedge consultation",
	})
	if err != nil {
		t.Fatalf("SubmitContact failed: %v", err)
	}
	if !strings.Contains(res.Report, "- Hedge consultation") {
		t.Errorf("report missing custom subject:\n%s", res.Report)
	}
}

func TestListLeadsNewestFirst(t *testing.T) {
	leadRepo := newMockLeadRepository()
	svc := NewLeadService(leadRepo, newTestDispatchService(newMockNotificationRepository(), nil))

	for _, name := range []string{"First", "Second"} {
		if _, err := svc.CaptureLead(context.Background(), primary.CaptureLeadRequest{
			Type:        secondary.LeadTypeBooking,
			ContactName: name,
			Services:    []string{"weekly-cutting"},
		}); err != nil {
			t.Fatalf("CaptureLead failed: %v", err)
		}
	}

	leads, err := svc.ListLeads(context.Background())
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("expected 2 leads, got %d", len(leads))
	}
	if leads[0].ContactName != "Second" || leads[1].ContactName != "First" {
		t.Errorf("expected newest first, got %q then %q", leads[0].ContactName, leads[1].ContactName)
	}
}
