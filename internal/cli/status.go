package cli

import (
	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/cli/render"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show registry governance and storage state",
		Example: `  modreg status
  modreg status --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowStatus.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewStatusRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}
}
