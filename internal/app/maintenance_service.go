package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/studio/internal/db"
	"github.com/example/studio/internal/logger"
	"github.com/example/studio/internal/ports/primary"
	"github.com/example/studio/internal/ports/secondary"
)

// System log event names for maintenance actions.
const (
	EventBackupExported = "Backup Exported"
	EventPurged         = "Persistence Purged"
	EventIntegrityCheck = "Integrity Check"
)

// MaintenanceServiceImpl implements the MaintenanceService interface.
type MaintenanceServiceImpl struct {
	store     *db.Store
	leadRepo  secondary.LeadRepository
	notifRepo secondary.NotificationRepository
	sysRepo   secondary.SystemLogRepository

	now func() time.Time
}

// NewMaintenanceService creates a new MaintenanceService with injected
// dependencies.
func NewMaintenanceService(store *db.Store, leadRepo secondary.LeadRepository, notifRepo secondary.NotificationRepository, sysRepo secondary.SystemLogRepository) *MaintenanceServiceImpl {
	return &MaintenanceServiceImpl{
		store:     store,
		leadRepo:  leadRepo,
		notifRepo: notifRepo,
		sysRepo:   sysRepo,
		now:       time.Now,
	}
}

// Stats returns the dashboard summary: row counts, store size, last backup.
func (s *MaintenanceServiceImpl) Stats(ctx context.Context) (*primary.StoreStats, error) {
	leads, err := s.leadRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.sysRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &primary.StoreStats{
		Leads:         leads,
		Notifications: notifications,
		SystemLogs:    logs,
		StoreBytes:    s.store.Size(),
		LastBackup:    s.store.LastBackup(),
	}, nil
}

// Export writes a dated backup file under dir, appends the export audit
// entry, and records the last-backup timestamp.
func (s *MaintenanceServiceImpl) Export(ctx context.Context, dir string) (*primary.ExportResult, error) {
	path, err := s.store.ExportSnapshot(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to export database: %w", err)
	}

	if _, err := s.sysRepo.Create(ctx, EventBackupExported, "Manual database export triggered from the admin console"); err != nil {
		return nil, err
	}

	exportedAt := s.now().UTC()
	if err := s.store.SetLastBackup(exportedAt); err != nil {
		return nil, err
	}

	return &primary.ExportResult{
		Path:       path,
		Bytes:      s.store.Size(),
		ExportedAt: exportedAt.Format(time.RFC3339),
	}, nil
}

// Purge records the purge intent and then clears all persisted state. The
// intent entry is itself wiped by the clear; it exists so an exported
// snapshot taken beforehand carries the trace.
func (s *MaintenanceServiceImpl) Purge(ctx context.Context) error {
	if _, err := s.sysRepo.Create(ctx, EventPurged, "Cleared the snapshot mirror and working database"); err != nil {
		return err
	}

	logger.L().Warn("purging all persisted state")
	return s.store.Purge()
}

// IntegrityCheck appends the audit entry and reports success. No structural
// validation is performed.
func (s *MaintenanceServiceImpl) IntegrityCheck(ctx context.Context) error {
	_, err := s.sysRepo.Create(ctx, EventIntegrityCheck, "Manual system health validation executed")
	return err
}

// ListNotifications returns the dispatch audit trail, most recent first.
func (s *MaintenanceServiceImpl) ListNotifications(ctx context.Context) ([]*primary.Notification, error) {
	records, err := s.notifRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*primary.Notification, len(records))
	for i, r := range records {
		out[i] = &primary.Notification{
			ID:        r.ID,
			Recipient: r.Recipient,
			Subject:   r.Subject,
			Body:      r.Body,
			Status:    r.Status,
			Timestamp: r.Timestamp,
		}
	}
	return out, nil
}

// ListSystemLogs returns the system audit trail, most recent first.
func (s *MaintenanceServiceImpl) ListSystemLogs(ctx context.Context) ([]*primary.SystemLogEntry, error) {
	records, err := s.sysRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]*primary.SystemLogEntry, len(records))
	for i, r := range records {
		out[i] = &primary.SystemLogEntry{
			ID:        r.ID,
			Event:     r.Event,
			Details:   r.Details,
			Timestamp: r.Timestamp,
		}
	}
	return out, nil
}

// Ensure MaintenanceServiceImpl implements the interface
var _ primary.MaintenanceService = (*MaintenanceServiceImpl)(nil)
