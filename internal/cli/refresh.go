package cli

import (
	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/adapters/progress"
	"github.com/modreg-org/modreg-cli/internal/cli/render"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// NewRefreshCmd creates the refresh command
func NewRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh [target...]",
		Short: "Ask dependent components to refresh their module-address caches",
		Long: `Refresh sweeps the declared cache targets and asks each one to re-read
its module addresses from the registry. A failing target is recorded and
reported but never stops the sweep.`,
		Example: `  # Refresh every declared target
  modreg refresh

  # Refresh a subset
  modreg refresh billing-api settlement-worker`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if sp, ok := app.Sink.(*progress.SpinnerSink); ok {
				sp.Start("Refreshing caches...")
				defer sp.Stop()
			}

			report, err := app.RefreshCaches.Run(cmd.Context(), usecase.RefreshCachesParams{
				Targets: args,
			})
			if err != nil {
				return err
			}

			if sp, ok := app.Sink.(*progress.SpinnerSink); ok {
				sp.Stop()
			}

			renderer := render.NewRefreshRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(report)
		},
	}
}
