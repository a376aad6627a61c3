package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// NewResolveCmd creates the resolve command
func NewResolveCmd() *cobra.Command {
	var orFail bool

	cmd := &cobra.Command{
		Use:   "resolve <key>",
		Short: "Look up the address bound to a module key",
		Long: `Resolve prints the address currently bound to a key. With --or-fail an
unknown key is an error instead of empty output; collaborators wiring
modules together should always use that form.`,
		Example: `  modreg resolve ledger
  modreg resolve ledger --or-fail`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ResolveModule.Run(cmd.Context(), usecase.ResolveModuleParams{
				Key:    args[0],
				OrFail: orFail,
			})
			if err != nil {
				return err
			}

			if !result.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "%q is not registered\n", result.Key)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.Address.Hex())
			return nil
		},
	}

	cmd.Flags().BoolVar(&orFail, "or-fail", false, "Fail on unknown keys instead of printing nothing")

	return cmd
}
