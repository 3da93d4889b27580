package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/example/studio/internal/db"
	"github.com/example/studio/internal/ports/secondary"
)

// NotificationRepository implements secondary.NotificationRepository with SQLite.
type NotificationRepository struct {
	store *db.Store
}

// NewNotificationRepository creates a new SQLite notification repository.
func NewNotificationRepository(store *db.Store) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// Create persists a new notification audit row.
func (r *NotificationRepository) Create(ctx context.Context, n *secondary.NotificationRecord) (int64, error) {
	res, err := r.store.DB().ExecContext(ctx,
		"INSERT INTO notifications (recipient, subject, message_body, status) VALUES (?, ?, ?, ?)",
		n.Recipient, n.Subject, n.Body, n.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create notification: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read notification id: %w", err)
	}

	if err := r.store.Persist(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListAll retrieves every notification, most recent first.
func (r *NotificationRepository) ListAll(ctx context.Context) ([]*secondary.NotificationRecord, error) {
	rows, err := r.store.DB().QueryContext(ctx,
		"SELECT id, recipient, subject, message_body, status, timestamp FROM notifications ORDER BY timestamp DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var records []*secondary.NotificationRecord
	for rows.Next() {
		var ts time.Time
		record := &secondary.NotificationRecord{}
		if err := rows.Scan(&record.ID, &record.Recipient, &record.Subject, &record.Body, &record.Status, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		record.Timestamp = ts.UTC().Format(time.RFC3339)
		records = append(records, record)
	}
	return records, rows.Err()
}

// Count returns the number of notifications.
func (r *NotificationRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.store.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM notifications").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count notifications: %w", err)
	}
	return count, nil
}

// Ensure NotificationRepository implements the interface
var _ secondary.NotificationRepository = (*NotificationRepository)(nil)
