package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// NewCancelCmd creates the cancel command
func NewCancelCmd() *cobra.Command {
	var signature string

	cmd := &cobra.Command{
		Use:   "cancel <key>",
		Short: "Drop a pending upgrade proposal",
		Long: `Cancel unwinds an outstanding proposal without waiting out the delay.
The emergency admin may use it even while the registry is paused; it can
only remove a proposed binding, never install one.`,
		Example: `  modreg cancel ledger --as 0xEmergency...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			sig, err := parseSignature(signature)
			if err != nil {
				return err
			}

			result, err := app.CancelUpgrade.Run(cmd.Context(), usecase.CancelUpgradeParams{
				Key:       args[0],
				Signature: sig,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Cancelled proposal %q -> %s\n",
				result.Key, result.Dropped.NewAddress.Hex())
			return nil
		},
	}

	cmd.Flags().StringVar(&signature, "signature", "", "Admin authorization signature (hex)")

	return cmd
}
