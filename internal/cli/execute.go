package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// NewExecuteCmd creates the execute command
func NewExecuteCmd() *cobra.Command {
	var signature string

	cmd := &cobra.Command{
		Use:   "execute <key>",
		Short: "Apply a ready upgrade proposal",
		Long: `Execute rebinds a key to its proposed address once the timelock delay
has elapsed, records the rebinding in the key's history, and clears the
proposal.`,
		Example: `  modreg execute ledger --as 0xADmin...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !app.Config.NonInteractive {
				if !confirmPrompt(fmt.Sprintf("Rebind %q now", args[0])) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			sig, err := parseSignature(signature)
			if err != nil {
				return err
			}

			result, err := app.ExecuteUpgrade.Run(cmd.Context(), usecase.ExecuteUpgradeParams{
				Key:       args[0],
				Signature: sig,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Executed upgrade of %q: %s -> %s\n",
				result.Key, result.OldAddress.Hex(), result.NewAddress.Hex())
			return nil
		},
	}

	cmd.Flags().StringVar(&signature, "signature", "", "Admin authorization signature (hex)")

	return cmd
}
