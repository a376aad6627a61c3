package cli

import (
	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/cli/render"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all module bindings",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListModules.Run(cmd.Context())
			if err != nil {
				return err
			}

			renderer := render.NewModulesRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}
}
