// Package wire is the composition root. It opens the store once and builds
// the service graph with explicit dependency injection; an initialization
// failure surfaces as an error from Get, never as a hang.
package wire

import (
	"sync"

	"github.com/example/studio/internal/adapters/sqlite"
	"github.com/example/studio/internal/alert"
	"github.com/example/studio/internal/app"
	"github.com/example/studio/internal/config"
	"github.com/example/studio/internal/db"
	"github.com/example/studio/internal/ports/primary"
)

// Container holds the wired application graph.
type Container struct {
	Config      *config.Config
	Store       *db.Store
	Leads       primary.LeadService
	Dispatch    primary.DispatchService
	Maintenance primary.MaintenanceService
}

var (
	container *Container
	initErr   error
	once      sync.Once
)

// Get returns the singleton container, wiring it on first call.
func Get() (*Container, error) {
	once.Do(initContainer)
	return container, initErr
}

// Close releases the store. Safe to call when Get failed.
func Close() error {
	if container == nil || container.Store == nil {
		return nil
	}
	return container.Store.Close()
}

func initContainer() {
	dataDir, err := config.DefaultDataDir()
	if err != nil {
		initErr = err
		return
	}

	cfg, err := config.Load(dataDir)
	if err != nil {
		initErr = err
		return
	}

	store, err := db.Open(cfg.DataDir)
	if err != nil {
		initErr = err
		return
	}

	leadRepo := sqlite.NewLeadRepository(store)
	notifRepo := sqlite.NewNotificationRepository(store)
	sysRepo := sqlite.NewSystemLogRepository(store)

	var alerts app.AlertSink
	if cfg.DesktopAlerts {
		alerts = alert.NewTerminalSink()
	}

	dispatch := app.NewDispatchService(notifRepo, alerts, cfg.StudioEmail)

	container = &Container{
		Config:      cfg,
		Store:       store,
		Leads:       app.NewLeadService(leadRepo, dispatch),
		Dispatch:    dispatch,
		Maintenance: app.NewMaintenanceService(store, leadRepo, notifRepo, sysRepo),
	}
}
