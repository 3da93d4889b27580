// Package primary defines the driving-side ports: the service interfaces
// the CLI and admin surfaces call into.
package primary

import "context"

// LeadService defines the primary port for capturing and reading inquiries.
type LeadService interface {
	// CaptureLead persists a booking or quotation lead.
	CaptureLead(ctx context.Context, req CaptureLeadRequest) (*CaptureLeadResponse, error)

	// SubmitContact persists a contact lead and dispatches its studio alert.
	SubmitContact(ctx context.Context, req ContactRequest) (*ContactResponse, error)

	// ListLeads returns every captured lead, most recent first.
	ListLeads(ctx context.Context) ([]*Lead, error)
}

// CaptureLeadRequest contains the particulars of a booking or quotation.
type CaptureLeadRequest struct {
	Type         string // booking or quotation
	ContactName  string
	Email        string
	Phone        string
	Address      string
	PostalCode   string
	PropertyType string
	Services     []string
}

// CaptureLeadResponse carries the store-assigned lead id.
type CaptureLeadResponse struct {
	LeadID int64
}

// ContactRequest is a contact-form submission. Subject defaults to
// "Studio Commission" when empty.
type ContactRequest struct {
	Name    string
	Email   string
	Phone   string
	Subject string
}

// ContactResponse carries the lead id and the rendered dispatch report.
type ContactResponse struct {
	LeadID int64
	Report string
}

// Lead is the read-side view of a captured inquiry.
type Lead struct {
	ID           int64
	Type         string
	ContactName  string
	Email        string
	Phone        string
	Address      string
	PostalCode   string
	PropertyType string
	Services     []string
	CreatedAt    string
}
