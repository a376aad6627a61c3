package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modreg-org/modreg-cli/internal/adapters/progress"
	"github.com/modreg-org/modreg-cli/internal/app"
	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command for the modreg CLI
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modreg",
		Short: "Module registry and governed-upgrade control plane",
		Long: `Modreg maintains the authoritative mapping from stable module keys to
component addresses, mutated through an access-controlled, optionally
timelocked governance protocol with a bounded audit trail.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				// init works from scratch in the current directory
				if cmd.Name() != "init" {
					return err
				}
				projectRoot = "."
			}

			v := config.SetupViper(projectRoot)
			config.BindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v, chooseSink(v))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Machine-readable output")
	rootCmd.PersistentFlags().String("as", "", "Caller identity (hex address) mutations are attributed to")
	rootCmd.PersistentFlags().String("registry-dir", "", "Override the registry data directory")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "registry",
		Title: "Registry Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "upgrade",
		Title: "Upgrade Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "governance",
		Title: "Governance Commands",
	})

	for _, cmd := range []*cobra.Command{
		NewRegisterCmd(), NewRegisterBatchCmd(), NewResolveCmd(), NewListCmd(), NewHistoryCmd(),
	} {
		cmd.GroupID = "registry"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		NewScheduleCmd(), NewExecuteCmd(), NewCancelCmd(), NewPendingCmd(),
	} {
		cmd.GroupID = "upgrade"
		rootCmd.AddCommand(cmd)
	}

	for _, cmd := range []*cobra.Command{
		NewPauseCmd(), NewUnpauseCmd(), NewStatusCmd(), NewMigrateCmd(),
		NewSetMinDelayCmd(), NewSetPendingAdminCmd(), NewAcceptAdminCmd(),
		NewSetRoleCmd(), NewRefreshCmd(),
	} {
		cmd.GroupID = "governance"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(NewInitCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// chooseSink picks the audit-event sink for this invocation.
func chooseSink(v *viper.Viper) usecase.EventSink {
	switch {
	case v.GetBool("json") || v.GetBool("non_interactive"):
		return usecase.NopSink{}
	case v.GetBool("debug"):
		return progress.NewLogSink(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	default:
		return progress.NewSpinnerSink()
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance, ok := cmd.Context().Value(appKey).(*app.App)
	if !ok {
		return nil, fmt.Errorf("app not initialized")
	}
	return appInstance, nil
}
