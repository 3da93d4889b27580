package primary

import "context"

// MaintenanceService defines the primary port for the admin dashboard:
// read-only aggregation plus the maintenance actions.
type MaintenanceService interface {
	// Stats returns row counts, store size, and the last backup timestamp.
	Stats(ctx context.Context) (*StoreStats, error)

	// Export writes a dated backup file under dir, logs the export, and
	// records the last-backup timestamp.
	Export(ctx context.Context, dir string) (*ExportResult, error)

	// Purge logs the purge intent and then clears all persisted state.
	// The caller is responsible for interactive confirmation. The store is
	// unusable afterwards until reopened.
	Purge(ctx context.Context) error

	// IntegrityCheck appends an audit entry and reports success. It performs
	// no structural validation; it exists as an audit hook.
	IntegrityCheck(ctx context.Context) error

	// ListNotifications returns the dispatch audit trail, most recent first.
	ListNotifications(ctx context.Context) ([]*Notification, error)

	// ListSystemLogs returns the system audit trail, most recent first.
	ListSystemLogs(ctx context.Context) ([]*SystemLogEntry, error)
}

// StoreStats is the dashboard summary panel.
type StoreStats struct {
	Leads         int
	Notifications int
	SystemLogs    int
	StoreBytes    int
	LastBackup    string // RFC3339, "" if never exported
}

// ExportResult describes a completed backup export.
type ExportResult struct {
	Path       string
	Bytes      int
	ExportedAt string // RFC3339
}

// Notification is the read-side view of a dispatch audit row.
type Notification struct {
	ID        int64
	Recipient string
	Subject   string
	Body      string
	Status    string
	Timestamp string
}

// SystemLogEntry is the read-side view of a system audit row.
type SystemLogEntry struct {
	ID        int64
	Event     string
	Details   string
	Timestamp string
}
