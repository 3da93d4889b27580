package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/studio/internal/db"
	"github.com/example/studio/internal/ports/secondary"
)

// SystemLogRepository implements secondary.SystemLogRepository with SQLite.
type SystemLogRepository struct {
	store *db.Store
}

// NewSystemLogRepository creates a new SQLite system log repository.
func NewSystemLogRepository(store *db.Store) *SystemLogRepository {
	return &SystemLogRepository{store: store}
}

// Create persists a new system log entry.
func (r *SystemLogRepository) Create(ctx context.Context, event, details string) (int64, error) {
	res, err := r.store.DB().ExecContext(ctx,
		"INSERT INTO system_logs (event, details) VALUES (?, ?)",
		event, details,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create system log: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read system log id: %w", err)
	}

	if err := r.store.Persist(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListAll retrieves every system log entry, most recent first.
func (r *SystemLogRepository) ListAll(ctx context.Context) ([]*secondary.SystemLogRecord, error) {
	rows, err := r.store.DB().QueryContext(ctx,
		"SELECT id, event, details, timestamp FROM system_logs ORDER BY timestamp DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list system logs: %w", err)
	}
	defer rows.Close()

	var records []*secondary.SystemLogRecord
	for rows.Next() {
		var (
			details sql.NullString
			ts      time.Time
		)
		record := &secondary.SystemLogRecord{}
		if err := rows.Scan(&record.ID, &record.Event, &details, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan system log: %w", err)
		}
		record.Details = details.String
		record.Timestamp = ts.UTC().Format(time.RFC3339)
		records = append(records, record)
	}
	return records, rows.Err()
}

// Count returns the number of system log entries.
func (r *SystemLogRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.store.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM system_logs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count system logs: %w", err)
	}
	return count, nil
}

// Ensure SystemLogRepository implements the interface
var _ secondary.SystemLogRepository = (*SystemLogRepository)(nil)
