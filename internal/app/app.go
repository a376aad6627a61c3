package app

import (
	"log/slog"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Sink receives committed audit events; commands with long sweeps may
	// type-assert it to drive progress display.
	Sink usecase.EventSink

	// Use cases
	InitRegistry    *usecase.InitRegistry
	RegisterModule  *usecase.RegisterModule
	RegisterBatch   *usecase.RegisterBatch
	ResolveModule   *usecase.ResolveModule
	ListModules     *usecase.ListModules
	ScheduleUpgrade *usecase.ScheduleUpgrade
	ExecuteUpgrade  *usecase.ExecuteUpgrade
	CancelUpgrade   *usecase.CancelUpgrade
	PendingUpgrades *usecase.PendingUpgrades
	ShowHistory     *usecase.ShowHistory
	MigrateStorage  *usecase.MigrateStorage
	PauseRegistry   *usecase.PauseRegistry
	UnpauseRegistry *usecase.UnpauseRegistry
	SetMinDelay     *usecase.SetMinDelay
	ManageAdmins    *usecase.ManageAdmins
	ShowStatus      *usecase.ShowStatus
	RefreshCaches   *usecase.RefreshCaches
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	sink usecase.EventSink,
	initRegistry *usecase.InitRegistry,
	registerModule *usecase.RegisterModule,
	registerBatch *usecase.RegisterBatch,
	resolveModule *usecase.ResolveModule,
	listModules *usecase.ListModules,
	scheduleUpgrade *usecase.ScheduleUpgrade,
	executeUpgrade *usecase.ExecuteUpgrade,
	cancelUpgrade *usecase.CancelUpgrade,
	pendingUpgrades *usecase.PendingUpgrades,
	showHistory *usecase.ShowHistory,
	migrateStorage *usecase.MigrateStorage,
	pauseRegistry *usecase.PauseRegistry,
	unpauseRegistry *usecase.UnpauseRegistry,
	setMinDelay *usecase.SetMinDelay,
	manageAdmins *usecase.ManageAdmins,
	showStatus *usecase.ShowStatus,
	refreshCaches *usecase.RefreshCaches,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		Sink:            sink,
		InitRegistry:    initRegistry,
		RegisterModule:  registerModule,
		RegisterBatch:   registerBatch,
		ResolveModule:   resolveModule,
		ListModules:     listModules,
		ScheduleUpgrade: scheduleUpgrade,
		ExecuteUpgrade:  executeUpgrade,
		CancelUpgrade:   cancelUpgrade,
		PendingUpgrades: pendingUpgrades,
		ShowHistory:     showHistory,
		MigrateStorage:  migrateStorage,
		PauseRegistry:   pauseRegistry,
		UnpauseRegistry: unpauseRegistry,
		SetMinDelay:     setMinDelay,
		ManageAdmins:    manageAdmins,
		ShowStatus:      showStatus,
		RefreshCaches:   refreshCaches,
	}, nil
}
