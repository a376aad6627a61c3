package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// NewMigrateCmd creates the migrate command
func NewMigrateCmd() *cobra.Command {
	var (
		fromVersion uint64
		toVersion   uint64
		migrator    string
		signature   string
	)

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Evolve the registry storage layout",
		Long: `Migrate runs a named migrator against the registry record and bumps the
storage version. The migration is applied as a unit: if the migrator or
the post-migration layout check fails, nothing is persisted.`,
		Example: `  modreg migrate --from 1 --to 2 --migrator backfill-nonce-table --as 0xOwner...`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !app.Config.NonInteractive {
				if !confirmPrompt(fmt.Sprintf("Migrate storage v%d -> v%d with %q", fromVersion, toVersion, migrator)) {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			sig, err := parseSignature(signature)
			if err != nil {
				return err
			}

			result, err := app.MigrateStorage.Run(cmd.Context(), usecase.MigrateStorageParams{
				FromVersion: fromVersion,
				ToVersion:   toVersion,
				Migrator:    migrator,
				Signature:   sig,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Migrated storage v%d -> v%d (%s)\n",
				result.FromVersion, result.ToVersion, result.Migrator)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&fromVersion, "from", 0, "Storage version the migration expects")
	cmd.Flags().Uint64Var(&toVersion, "to", 0, "Storage version to migrate to")
	cmd.Flags().StringVar(&migrator, "migrator", "", "Name of the registered migrator to run")
	cmd.Flags().StringVar(&signature, "signature", "", "Admin authorization signature (hex)")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("migrator")

	return cmd
}
