package cli

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var (
		allowReplace bool
		signature    string
	)

	cmd := &cobra.Command{
		Use:   "register <key> <address>",
		Short: "Bind a module key to an address immediately",
		Long: `Register binds a module key to an address through the immediate
mutation path. Replacing an existing binding requires --replace.`,
		Example: `  # Register the ledger module
  modreg register ledger 0xA1000000000000000000000000000000000000A1 --as 0xADmin...

  # Rebind an existing key
  modreg register ledger 0xB2000000000000000000000000000000000000B2 --replace --as 0xADmin...`,
		Args: cobra.ExactArgs(2),
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

			result, err := app.RegisterModule.Run(cmd.Context(), usecase.RegisterModuleParams{
				Key:          args[0],
				Address:      addr,
				AllowReplace: allowReplace,
				Signature:    sig,
			})
			if err != nil {
				return err
			}

			if result.Replaced {
				fmt.Fprintf(cmd.OutOrStdout(), "Rebound %q: %s -> %s\n",
					result.Key, result.OldAddress.Hex(), result.NewAddress.Hex())
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Registered %q -> %s\n",
					result.Key, result.NewAddress.Hex())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&allowReplace, "replace", false, "Allow replacing an existing binding")
	cmd.Flags().StringVar(&signature, "signature", "", "Admin authorization signature (hex)")

	return cmd
}

// NewRegisterBatchCmd creates the register-batch command
func NewRegisterBatchCmd() *cobra.Command {
	var signature string

	cmd := &cobra.Command{
		Use:   "register-batch <key=address> [<key=address> ...]",
		Short: "Register several bindings in one atomic unit",
		Long: `Register-batch binds up to 50 keys atomically. Entries whose key is
already bound to the given address are skipped; any other conflict fails
the whole batch.`,
		Example: `  modreg register-batch ledger=0xA1... router=0xC3... --as 0xADmin...`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(args))
			addrs := make([]common.Address, 0, len(args))
			for _, arg := range args {
				key, addrHex, ok := strings.Cut(arg, "=")
				if !ok {
					return fmt.Errorf("invalid entry %q (want key=address)", arg)
				}
				addr, err := parseAddress(addrHex)
				if err != nil {
					return err
				}
				keys = append(keys, key)
				addrs = append(addrs, addr)
			}

			sig, err := parseSignature(signature)
			if err != nil {
				return err
			}

			result, err := app.RegisterBatch.Run(cmd.Context(), usecase.RegisterBatchParams{
				Keys:      keys,
				Addresses: addrs,
				Signature: sig,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Changed %d of %d entries\n", result.Changed, len(keys))
			if len(result.Skipped) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Skipped (already bound): %s\n", strings.Join(result.Skipped, ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&signature, "signature", "", "Admin authorization signature (hex)")

	return cmd
}
