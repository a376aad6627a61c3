package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// NewScheduleCmd creates the schedule command
func NewScheduleCmd() *cobra.Command {
	var signature string

	cmd := &cobra.Command{
		Use:   "schedule <key> <address>",
		Short: "Propose a timelocked rebinding of a key",
		Long: `Schedule creates a pending upgrade proposal that only becomes executable
after the registry's minimum delay. At most one proposal can be
outstanding per key.`,
		Example: `  modreg schedule ledger 0xB2000000000000000000000000000000000000B2 --as 0xADmin...`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			addr, err := parseAddress(args[1])
			if err != nil {
				return err
			}
			sig, err := parseSignature(signature)
			if err != nil {
				return err
			}

			result, err := app.ScheduleUpgrade.Run(cmd.Context(), usecase.ScheduleUpgradeParams{
				Key:        args[0],
				NewAddress: addr,
				Signature:  sig,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %q -> %s, executable after %s\n",
				result.Key, result.Pending.NewAddress.Hex(),
				result.Pending.ExecuteAfter.UTC().Format("2006-01-02 15:04:05 MST"))
			return nil
		},
	}

	cmd.Flags().StringVar(&signature, "signature", "", "Admin authorization signature (hex)")

	return cmd
}
