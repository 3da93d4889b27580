// Package httpadmin serves the read-only admin dashboard API on localhost.
// It exposes the same aggregation the CLI dashboard renders: leads, the
// dispatch audit trail, system logs, and store stats. There are no mutating
// endpoints and no authentication; it binds to loopback by default.
package httpadmin

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/studio/internal/logger"
	"github.com/example/studio/internal/ports/primary"
	"github.com/example/studio/internal/version"
)

// Server aggregates the read-side services behind HTTP handlers.
type Server struct {
	leads primary.LeadService
	maint primary.MaintenanceService
}

// New creates a dashboard server over the given services.
func New(leads primary.LeadService, maint primary.MaintenanceService) *Server {
	return &Server{leads: leads, maint: maint}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/stats", s.handleStats).Methods(http.MethodGet)
	r.HandleFunc("/api/leads", s.handleLeads).Methods(http.MethodGet)
	r.HandleFunc("/api/notifications", s.handleNotifications).Methods(http.MethodGet)
	r.HandleFunc("/api/system-logs", s.handleSystemLogs).Methods(http.MethodGet)
	return r
}

type leadView struct {
	ID           int64    `json:"id"`
	Type         string   `json:"type"`
	ContactName  string   `json:"contactName"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone,omitempty"`
	Address      string   `json:"address,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	PropertyType string   `json:"propertyType,omitempty"`
	Services     []string `json:"selectedServices"`
	CreatedAt    string   `json:"createdAt"`
}

type notificationView struct {
	ID        int64  `json:"id"`
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"messageBody"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type systemLogView struct {
	ID        int64  `json:"id"`
	Event     string `json:"event"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

type statsView struct {
	Leads         int    `json:"leads"`
	Notifications int    `json:"notifications"`
	SystemLogs    int    `json:"systemLogs"`
	StoreBytes    int    `json:"storeBytes"`
	LastBackup    string `json:"lastBackup,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok", "version": version.String()})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.maint.Stats(r.Context())
	if err != nil {
		logger.L().WithError(err).Error("failed to aggregate stats")
		http.Error(w, "failed to fetch stats", http.StatusInternalServerError)
		return
	}
	writeJSON(w, statsView{
		Leads:         stats.Leads,
		Notifications: stats.Notifications,
		SystemLogs:    stats.SystemLogs,
		StoreBytes:    stats.StoreBytes,
		LastBackup:    stats.LastBackup,
	})
}

func (s *Server) handleLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := s.leads.ListLeads(r.Context())
	if err != nil {
		logger.L().WithError(err).Error("failed to list leads")
		http.Error(w, "failed to fetch leads", http.StatusInternalServerError)
		return
	}

	views := make([]leadView, len(leads))
	for i, l := range leads {
		views[i] = leadView{
			ID:           l.ID,
			Type:         l.Type,
			ContactName:  l.ContactName,
			Email:        l.Email,
			Phone:        l.Phone,
			Address:      l.Address,
			PostalCode:   l.PostalCode,
			PropertyType: l.PropertyType,
			Services:     l.Services,
			CreatedAt:    l.CreatedAt,
		}
	}
	writeJSON(w, views)
}

func (s *Server) handleNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := s.maint.ListNotifications(r.Context())
	if err != nil {
		logger.L().WithError(err).Error("failed to list notifications")
		http.Error(w, "failed to fetch notifications", http.StatusInternalServerError)
		return
	}

	views := make([]notificationView, len(notifications))
	for i, n := range notifications {
		views[i] = notificationView{
			ID:        n.ID,
			Recipient: n.Recipient,
			Subject:   n.Subject,
			Body:      n.Body,
			Status:    n.Status,
			Timestamp: n.Timestamp,
		}
	}
	writeJSON(w, views)
}

func (s *Server) handleSystemLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := s.maint.ListSystemLogs(r.Context())
	if err != nil {
		logger.L().WithError(err).Error("failed to list system logs")
		http.Error(w, "failed to fetch system logs", http.StatusInternalServerError)
		return
	}

	views := make([]systemLogView, len(logs))
	for i, l := range logs {
		views[i] = systemLogView{
			ID:        l.ID,
			Event:     l.Event,
			Details:   l.Details,
			Timestamp: l.Timestamp,
		}
	}
	writeJSON(w, views)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L().WithError(err).Error("failed to encode response")
	}
}
