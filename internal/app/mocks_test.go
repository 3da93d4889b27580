package app

import (
	"context"

	"github.com/example/studio/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockLeadRepository implements secondary.LeadRepository for testing.
type mockLeadRepository struct {
	leads     []*secondary.LeadRecord
	nextID    int64
	createErr error
	listErr   error
	countErr  error
}

func newMockLeadRepository() *mockLeadRepository {
	return &mockLeadRepository{}
}

func (m *mockLeadRepository) Create(ctx context.Context, lead *secondary.LeadRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	stored := *lead
	stored.ID = m.nextID
	m.leads = append(m.leads, &stored)
	return stored.ID, nil
}

func (m *mockLeadRepository) ListAll(ctx context.Context) ([]*secondary.LeadRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	// Newest first, matching the real repository.
	out := make([]*secondary.LeadRecord, 0, len(m.leads))
	for i := len(m.leads) - 1; i >= 0; i-- {
		out = append(out, m.leads[i])
	}
	return out, nil
}

func (m *mockLeadRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.leads), nil
}

// mockNotificationRepository implements secondary.NotificationRepository
// for testing.
type mockNotificationRepository struct {
	notifications []*secondary.NotificationRecord
	nextID        int64
	createErr     error
	listErr       error
	countErr      error
}

func newMockNotificationRepository() *mockNotificationRepository {
	return &mockNotificationRepository{}
}

func (m *mockNotificationRepository) Create(ctx context.Context, n *secondary.NotificationRecord) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	stored := *n
	stored.ID = m.nextID
	m.notifications = append(m.notifications, &stored)
	return stored.ID, nil
}

func (m *mockNotificationRepository) ListAll(ctx context.Context) ([]*secondary.NotificationRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*secondary.NotificationRecord, 0, len(m.notifications))
	for i := len(m.notifications) - 1; i >= 0; i-- {
		out = append(out, m.notifications[i])
	}
	return out, nil
}

func (m *mockNotificationRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.notifications), nil
}

// mockSystemLogRepository implements secondary.SystemLogRepository for
// testing.
type mockSystemLogRepository struct {
	entries   []*secondary.SystemLogRecord
	nextID    int64
	createErr error
	listErr   error
	countErr  error
}

func newMockSystemLogRepository() *mockSystemLogRepository {
	return &mockSystemLogRepository{}
}

func (m *mockSystemLogRepository) Create(ctx context.Context, event, details string) (int64, error) {
	if m.createErr != nil {
		return 0, m.createErr
	}
	m.nextID++
	m.entries = append(m.entries, &secondary.SystemLogRecord{
		ID:      m.nextID,
		Event:   event,
		Details: details,
	})
	return m.nextID, nil
}

func (m *mockSystemLogRepository) ListAll(ctx context.Context) ([]*secondary.SystemLogRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*secondary.SystemLogRecord, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

func (m *mockSystemLogRepository) Count(ctx context.Context) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return len(m.entries), nil
}

// mockAlertSink records raised alerts.
type mockAlertSink struct {
	titles []string
	bodies []string
}

func (m *mockAlertSink) Alert(title, body string) {
	m.titles = append(m.titles, title)
	m.bodies = append(m.bodies, body)
}

// Interface guards for the mocks.
var (
	_ secondary.LeadRepository         = (*mockLeadRepository)(nil)
	_ secondary.NotificationRepository = (*mockNotificationRepository)(nil)
	_ secondary.SystemLogRepository    = (*mockSystemLogRepository)(nil)
)
