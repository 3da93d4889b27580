package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/example/studio/internal/logger"
	"github.com/example/studio/internal/ports/primary"
	"github.com/example/studio/internal/ports/secondary"
)

// AlertSink raises a best-effort local alert for a dispatched inquiry.
// Implementations must never block dispatch; a nil sink disables alerts.
type AlertSink interface {
	Alert(title, body string)
}

// DispatchServiceImpl implements the DispatchService interface. Delivery is
// simulated: the report is rendered, written to the audit trail as sent,
// and a fixed latency models the SMTP round trip. The only failure path is
// the audit write itself.
type DispatchServiceImpl struct {
	notifRepo secondary.NotificationRepository
	alerts    AlertSink
	recipient string

	// Delay is the simulated delivery latency, applied unconditionally.
	// Tests zero it.
	Delay time.Duration

	now func() time.Time
}

// NewDispatchService creates a new DispatchService with injected dependencies.
func NewDispatchService(notifRepo secondary.NotificationRepository, alerts AlertSink, recipient string) *DispatchServiceImpl {
	return &DispatchServiceImpl{
		notifRepo: notifRepo,
		alerts:    alerts,
		recipient: recipient,
		Delay:     time.Second,
		now:       time.Now,
	}
}

// Dispatch renders and records the studio alert for an inbound inquiry.
func (s *DispatchServiceImpl) Dispatch(ctx context.Context, req primary.DispatchRequest) (*primary.DispatchResult, error) {
	dispatchID := uuid.NewString()
	logger.WithFields(logrus.Fields{
		"dispatch_id": dispatchID,
		"kind":        req.Kind,
	}).Info("initiating studio dispatch")

	subject := fmt.Sprintf("GA Studio Alert: New %s from %s", strings.ToUpper(req.Kind), req.ContactName)
	body := renderReport(req, s.now().UTC())

	if _, err := s.notifRepo.Create(ctx, &secondary.NotificationRecord{
		Recipient: s.recipient,
		Subject:   subject,
		Body:      body,
		Status:    secondary.StatusSent,
	}); err != nil {
		logger.WithField("dispatch_id", dispatchID).WithError(err).Error("dispatch audit write failed")
		return nil, fmt.Errorf("failed to record dispatch: %w", err)
	}

	if s.alerts != nil {
		s.alerts.Alert(
			"The Garden Architect - Studio Alert",
			fmt.Sprintf("New %s received from %s. Check the audit trail for the report.", req.Kind, req.ContactName),
		)
	}

	// Simulated SMTP handshake.
	time.Sleep(s.Delay)

	logger.WithField("dispatch_id", dispatchID).Info("studio dispatch complete")
	return &primary.DispatchResult{
		Recipient: s.recipient,
		Subject:   subject,
		Body:      body,
	}, nil
}

// renderReport builds the fixed-format plaintext dispatch report. For
// booking/quotation the requirements section lists the selected service ids;
// for contact it carries the inquiry subject.
func renderReport(req primary.DispatchRequest, now time.Time) string {
	address := req.Address
	if address == "" {
		address = "N/A"
	}
	postal := req.PostalCode
	if postal == "" {
		postal = "N/A"
	}
	property := req.PropertyType
	if property == "" {
		property = "Standard"
	}

	var requirements []string
	if len(req.Services) > 0 {
		for _, id := range req.Services {
			requirements = append(requirements, "- "+id)
		}
	} else {
		subject := req.Subject
		if subject == "" {
			subject = "General Inquiry"
		}
		requirements = append(requirements, "- "+subject)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "STUDIO DISPATCH REPORT - %s\n", now.Format("2006-01-02"))
	b.WriteString("--------------------------------------------------\n")
	fmt.Fprintf(&b, "CLASSIFICATION: %s\n", strings.ToUpper(req.Kind))
	fmt.Fprintf(&b, "CLIENT:         %s\n", req.ContactName)
	fmt.Fprintf(&b, "EMAIL:          %s\n", req.Email)
	fmt.Fprintf(&b, "PHONE:          %s\n", req.Phone)
	fmt.Fprintf(&b, "LOCALE:         %s / %s\n", address, postal)
	fmt.Fprintf(&b, "PROPERTY:       %s\n", property)
	b.WriteString("\nREQUIREMENTS:\n")
	b.WriteString(strings.Join(requirements, "\n"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "TIMESTAMP:      %s\n", now.Format(time.RFC3339))
	fmt.Fprintf(&b, "FINGERPRINT:    %s\n", randUpper(6))
	b.WriteString("--------------------------------------------------")
	return b.String()
}

// Ensure DispatchServiceImpl implements the interface
var _ primary.DispatchService = (*DispatchServiceImpl)(nil)
