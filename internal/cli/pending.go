package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/cli/render"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// NewPendingCmd creates the pending command
func NewPendingCmd() *cobra.Command {
	var ready bool

	cmd := &cobra.Command{
		Use:   "pending [key]",
		Short: "Show outstanding upgrade proposals",
		Example: `  # All outstanding proposals
  modreg pending

  # One key's proposal
  modreg pending ledger

  # Exit 0 iff the proposal is executable
  modreg pending ledger --ready`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				result, err := app.PendingUpgrades.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if ready {
					if !result.Ready {
						return fmt.Errorf("proposal for %q is not ready", args[0])
					}
					fmt.Fprintln(cmd.OutOrStdout(), "ready")
					return nil
				}
				if !result.Exists {
					fmt.Fprintf(cmd.OutOrStdout(), "No pending upgrade for %q\n", args[0])
					return nil
				}
				renderer := render.NewPendingRenderer(cmd.OutOrStdout(), app.Config.JSON)
				return renderer.Render([]usecase.PendingUpgradeView{{
					Key:     result.Key,
					Pending: result.Pending,
					Ready:   result.Ready,
				}})
			}

			views, err := app.PendingUpgrades.List(cmd.Context())
			if err != nil {
				return err
			}
			renderer := render.NewPendingRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(views)
		},
	}

	cmd.Flags().BoolVar(&ready, "ready", false, "Check readiness of a single key's proposal")

	return cmd
}
