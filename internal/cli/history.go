package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/cli/render"
)

// NewHistoryCmd creates the history command
func NewHistoryCmd() *cobra.Command {
	var (
		index     int
		countOnly bool
	)

	cmd := &cobra.Command{
		Use:   "history <key>",
		Short: "Show the surviving rebinding history for a key",
		Long: `History prints the bounded audit trail for one key, oldest surviving
entry first. The log holds the last 100 rebindings; older entries are
evicted.`,
		Example: `  modreg history ledger
  modreg history ledger --index 3
  modreg history ledger --count`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if countOnly {
				count, err := app.ShowHistory.Count(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), count)
				return nil
			}

			if cmd.Flags().Changed("index") {
				entry, err := app.ShowHistory.Entry(cmd.Context(), args[0], index)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s by %s at %s\n",
					entry.OldAddress.Hex(), entry.NewAddress.Hex(),
					entry.Executor.Hex(), entry.Timestamp.UTC().Format("2006-01-02 15:04:05 MST"))
				return nil
			}

			result, err := app.ShowHistory.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			renderer := render.NewHistoryRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Show a single entry by index (oldest surviving = 0)")
	cmd.Flags().BoolVar(&countOnly, "count", false, "Print only the surviving entry count")

	return cmd
}
