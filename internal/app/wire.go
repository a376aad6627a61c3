//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/modreg-org/modreg-cli/internal/adapters"
	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/logging"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.EventSink) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.NewLogger,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewInitRegistry,
		usecase.NewRegisterModule,
		usecase.NewRegisterBatch,
		usecase.NewResolveModule,
		usecase.NewListModules,
		usecase.NewScheduleUpgrade,
		usecase.NewExecuteUpgrade,
		usecase.NewCancelUpgrade,
		usecase.NewPendingUpgrades,
		usecase.NewShowHistory,
		usecase.NewMigrateStorage,
		usecase.NewPauseRegistry,
		usecase.NewUnpauseRegistry,
		usecase.NewSetMinDelay,
		usecase.NewManageAdmins,
		usecase.NewShowStatus,
		usecase.NewRefreshCaches,

		// App
		NewApp,
	)
	return nil, nil
}
