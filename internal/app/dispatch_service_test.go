package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/example/studio/internal/ports/primary"
	"github.com/example/studio/internal/ports/secondary"
)

func newTestDispatchService(notifRepo *mockNotificationRepository, alerts AlertSink) *DispatchServiceImpl {
	svc := NewDispatchService(notifRepo, alerts, "studio@thegardenarchitect.ca")
	svc.Delay = 0
	svc.now = func() time.Time {
		return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	}
	return svc
}

func TestDispatchBookingReport(t *testing.T) {
	notifRepo := newMockNotificationRepository()
	svc := newTestDispatchService(notifRepo, nil)

	res, err := svc.Dispatch(context.Background(), primary.DispatchRequest{
		Kind:         secondary.LeadTypeBooking,
		ContactName:  "Jane Doe",
		Email:        "jane@example.com",
		Phone:        "416-555-0198",
		Address:      "1 Queen St",
		PostalCode:   "M5V 2L1",
		PropertyType: "Residential",
		Services:     []string{"weekly-cutting", "hedge-trimming"},
	})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if res.Recipient != "studio@thegardenarchitect.ca" {
		t.Errorf("recipient = %q", res.Recipient)
	}
	if res.Subject != "GA Studio Alert: New BOOKING from Jane Doe" {
		t.Errorf("subject = %q", res.Subject)
	}

	for _, want := range []string{
		"STUDIO DISPATCH REPORT - 2026-03-14",
		"CLASSIFICATION: BOOKING",
		"CLIENT:         Jane Doe",
		"EMAIL:          jane@example.com",
		"LOCALE:         1 Queen St / M5V 2L1",
		"PROPERTY:       Residential",
		"- weekly-cutting",
		"- hedge-trimming",
		"TIMESTAMP:      2026-03-14T09:30:00Z",
		"FINGERPRINT:    ",
	} {
		if !strings.Contains(res.Body, want) {
			t.Errorf("report body missing %q:\n%s", want, res.Body)
		}
	}
}

func TestDispatchRecordsSentNotification(t *testing.T) {
	notifRepo := newMockNotificationRepository()
	svc := newTestDispatchService(notifRepo, nil)

	if _, err := svc.Dispatch(context.Background(), primary.DispatchRequest{
		Kind:        secondary.LeadTypeContact,
		ContactName: "Bob",
		Email:       "bob@example.com",
	}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(notifRepo.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifRepo.notifications))
	}
	n := notifRepo.notifications[0]
	if n.Status != secondary.StatusSent {
		t.Errorf("status = %q, want %q", n.Status, secondary.StatusSent)
	}
	if n.Recipient != "studio@thegardenarchitect.ca" {
		t.Errorf("recipient = %q", n.Recipient)
	}
}

func TestDispatchContactDefaultsSubjectLine(t *testing.T) {
	notifRepo := newMockNotificationRepository()
	svc := newTestDispatchService(notifRepo, nil)

	res, err := svc.Dispatch(context.Background(), primary.DispatchRequest{
		Kind:        secondary.LeadTypeContact,
		ContactName: "Bob",
		Email:       "bob@example.com",
	})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if !strings.Contains(res.Body, "- General Inquiry") {
		t.Errorf("contact report without subject should carry General Inquiry:\n%s", res.Body)
	}
	if !strings.Contains(res.Body, "LOCALE:         N/A / N/A") {
		t.Errorf("contact report should default missing locale to N/A:\n%s", res.Body)
	}
	if !strings.Contains(res.Body, "PROPERTY:       Standard") {
		t.Errorf("contact report should default property to Standard:\n%s", res.Body)
	}
}

func TestDispatchAuditWriteFailure(t *testing.T) {
	notifRepo := newMockNotificationRepository()
	notifRepo.createErr = errors.New("disk full")
	svc := newTestDispatchService(notifRepo, nil)

	_, err := svc.Dispatch(context.Background(), primary.DispatchRequest{
		Kind:        secondary.LeadTypeBooking,
		ContactName: "Jane",
		Services:    []string{"weekly-cutting"},
	})
	if err == nil {
		t.Fatal("expected error when audit write fails")
	}
	if !strings.Contains(err.Error(), "failed to record dispatch") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestDispatchRaisesAlert(t *testing.T) {
	notifRepo := newMockNotificationRepository()
	alerts := &mockAlertSink{}
	svc := newTestDispatchService(notifRepo, alerts)

	if _, err := svc.Dispatch(context.Background(), primary.DispatchRequest{
		Kind:        secondary.LeadTypeQuotation,
		ContactName: "Jane Doe",
		Services:    []string{"snow-plowing"},
	}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(alerts.titles) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(alerts.titles))
	}
	if alerts.titles[0] != "The Garden Architect - Studio Alert" {
		t.Errorf("alert title = %q", alerts.titles[0])
	}
	if !strings.Contains(alerts.bodies[0], "quotation") {
		t.Errorf("alert body = %q", alerts.bodies[0])
	}
}
