package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/config"
	"github.com/modreg-org/modreg-cli/internal/usecase"
)

const modregFileTemplate = `# modreg project configuration
orchestrator = "%s"

[registry]
dir = ".modreg"

[targets]
manifest = ".modreg/targets.yaml"
`

// NewInitCmd creates the init command
func NewInitCmd() *cobra.Command {
	var (
		admin          string
		upgradeAdmin   string
		emergencyAdmin string
		orchestrator   string
		minDelay       time.Duration
		modules        []string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the registry in the current directory",
		Long: `Init writes modreg.toml if it does not exist and creates the registry
record with its governance identities, timelock delay, and optional seed
bindings. It can only run once per project.`,
		Example: `  modreg init --admin 0xOwner... --min-delay 24h

  # Seed initial bindings and delegate roles
  modreg init --admin 0xOwner... \
    --upgrade-admin 0xUpgrader... \
    --emergency-admin 0xGuardian... \
    --module ledger=0xA1... --module router=0xC3...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			adminAddr, err := parseAddress(admin)
			if err != nil {
				return fmt.Errorf("--admin: %w", err)
			}

			var upgradeAddr, emergencyAddr common.Address
			if upgradeAdmin != "" {
				if upgradeAddr, err = parseAddress(upgradeAdmin); err != nil {
					return fmt.Errorf("--upgrade-admin: %w", err)
				}
			}
			if emergencyAdmin != "" {
				if emergencyAddr, err = parseAddress(emergencyAdmin); err != nil {
					return fmt.Errorf("--emergency-admin: %w", err)
				}
			}

			initial := make(map[string]common.Address, len(modules))
			for _, entry := range modules {
				key, addrHex, ok := strings.Cut(entry, "=")
				if !ok {
					return fmt.Errorf("invalid --module entry %q (want key=address)", entry)
				}
				addr, err := parseAddress(addrHex)
				if err != nil {
					return err
				}
				initial[key] = addr
			}

			filePath := filepath.Join(app.Config.ProjectRoot, config.ModregFileName)
			if _, err := os.Stat(filePath); os.IsNotExist(err) {
				content := fmt.Sprintf(modregFileTemplate, orchestrator)
				if err := os.WriteFile(filePath, []byte(content), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", config.ModregFileName, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.ModregFileName)
			}

			result, err := app.InitRegistry.Run(cmd.Context(), usecase.InitRegistryParams{
				Admin:          adminAddr,
				UpgradeAdmin:   upgradeAddr,
				EmergencyAdmin: emergencyAddr,
				MinDelay:       minDelay,
				InitialModules: initial,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registry created (storage v%d, %d modules seeded)\n",
				result.StorageVersion, result.Seeded)
			return nil
		},
	}

	cmd.Flags().StringVar(&admin, "admin", "", "Registry owner identity (hex address)")
	cmd.Flags().StringVar(&upgradeAdmin, "upgrade-admin", "", "Delegated upgrade identity (optional)")
	cmd.Flags().StringVar(&emergencyAdmin, "emergency-admin", "", "Delegated emergency identity (optional)")
	cmd.Flags().StringVar(&orchestrator, "orchestrator", "", "Cache maintenance orchestrator identity (optional)")
	cmd.Flags().DurationVar(&minDelay, "min-delay", 24*time.Hour, "Initial timelock delay")
	cmd.Flags().StringArrayVar(&modules, "module", nil, "Seed binding key=address (repeatable)")
	cmd.MarkFlagRequired("admin")

	return cmd
}
