// Package secondary defines the driven-side ports: repository interfaces
// and the records they persist.
package secondary

import "context"

// Lead classifications.
const (
	LeadTypeBooking   = "booking"
	LeadTypeQuotation = "quotation"
	LeadTypeContact   = "contact"
)

// Notification delivery statuses.
const (
	StatusSent   = "sent"
	StatusFailed = "failed"
)

// LeadRecord represents a captured inquiry as stored in persistence.
// For contact leads the Services slice holds the inquiry subject instead of
// service identifiers.
type LeadRecord struct {
	ID           int64
	Type         string // booking, quotation, contact
	ContactName  string
	Email        string
	Phone        string
	Address      string
	PostalCode   string
	PropertyType string // Residential, Commercial
	Services     []string
	CreatedAt    string // RFC3339
}

// LeadRepository defines the secondary port for lead persistence.
type LeadRepository interface {
	// Create persists a new lead and returns its store-assigned id.
	// The creation timestamp is store-assigned.
	Create(ctx context.Context, lead *LeadRecord) (int64, error)

	// ListAll returns every lead, most recent first.
	ListAll(ctx context.Context) ([]*LeadRecord, error)

	// Count returns the number of leads.
	Count(ctx context.Context) (int, error)
}

// NotificationRecord is the audit entry for a dispatched alert.
type NotificationRecord struct {
	ID        int64
	Recipient string
	Subject   string
	Body      string
	Status    string // sent, failed
	Timestamp string // RFC3339
}

// NotificationRepository defines the secondary port for dispatch audit rows.
type NotificationRepository interface {
	// Create persists a new notification record and returns its id.
	Create(ctx context.Context, n *NotificationRecord) (int64, error)

	// ListAll returns every notification, most recent first.
	ListAll(ctx context.Context) ([]*NotificationRecord, error)

	// Count returns the number of notifications.
	Count(ctx context.Context) (int, error)
}

// SystemLogRecord is an operational audit entry for store-level events.
type SystemLogRecord struct {
	ID        int64
	Event     string
	Details   string
	Timestamp string // RFC3339
}

// SystemLogRepository defines the secondary port for the system audit trail.
type SystemLogRepository interface {
	// Create persists a new system log entry and returns its id.
	Create(ctx context.Context, event, details string) (int64, error)

	// ListAll returns every entry, most recent first.
	ListAll(ctx context.Context) ([]*SystemLogRecord, error)

	// Count returns the number of entries.
	Count(ctx context.Context) (int, error)
}
