// Package sqlite contains the SQLite implementations of the repository
// interfaces. Every mutation triggers a full snapshot persist on the store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/studio/internal/db"
	"github.com/example/studio/internal/ports/secondary"
)

// LeadRepository implements secondary.LeadRepository with SQLite.
type LeadRepository struct {
	store *db.Store
}

// NewLeadRepository creates a new SQLite lead repository.
func NewLeadRepository(store *db.Store) *LeadRepository {
	return &LeadRepository{store: store}
}

// Create persists a new lead. The id and creation timestamp are
// store-assigned; the service list is JSON-encoded for storage.
func (r *LeadRepository) Create(ctx context.Context, lead *secondary.LeadRecord) (int64, error) {
	services := lead.Services
	if services == nil {
		services = []string{}
	}
	encoded, err := json.Marshal(services)
	if err != nil {
		return 0, fmt.Errorf("failed to encode service list: %w", err)
	}

	res, err := r.store.DB().ExecContext(ctx,
		"INSERT INTO leads (type, contact_name, email, phone, address, postal_code, property_type, selected_services) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		lead.Type, lead.ContactName, lead.Email, lead.Phone, lead.Address, lead.PostalCode, lead.PropertyType, string(encoded),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create lead: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read lead id: %w", err)
	}

	if err := r.store.Persist(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListAll retrieves every lead, most recent first.
func (r *LeadRepository) ListAll(ctx context.Context) ([]*secondary.LeadRecord, error) {
	rows, err := r.store.DB().QueryContext(ctx,
		"SELECT id, type, contact_name, email, phone, address, postal_code, property_type, selected_services, created_at FROM leads ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*secondary.LeadRecord
	for rows.Next() {
		record, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, record)
	}
	return leads, rows.Err()
}

// Count returns the number of leads.
func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.store.DB().QueryRowContext(ctx, "SELECT COUNT(*) FROM leads").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}

func scanLead(rows *sql.Rows) (*secondary.LeadRecord, error) {
	var (
		phone        sql.NullString
		address      sql.NullString
		postalCode   sql.NullString
		propertyType sql.NullString
		encoded      string
		createdAt    time.Time
	)

	record := &secondary.LeadRecord{}
	err := rows.Scan(&record.ID, &record.Type, &record.ContactName, &record.Email, &phone, &address, &postalCode, &propertyType, &encoded, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan lead: %w", err)
	}

	record.Phone = phone.String
	record.Address = address.String
	record.PostalCode = postalCode.String
	record.PropertyType = propertyType.String
	record.CreatedAt = createdAt.UTC().Format(time.RFC3339)

	if err := json.Unmarshal([]byte(encoded), &record.Services); err != nil {
		return nil, fmt.Errorf("failed to decode service list: %w", err)
	}
	return record, nil
}

// Ensure LeadRepository implements the interface
var _ secondary.LeadRepository = (*LeadRepository)(nil)
