package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/modreg-org/modreg-cli/internal/usecase"
)

// NewSetMinDelayCmd creates the set-min-delay command
func NewSetMinDelayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-min-delay <duration>",
		Short: "Adjust the upgrade timelock delay",
		Example: `  modreg set-min-delay 48h --as 0xOwner...
  modreg set-min-delay 30m --as 0xOwner...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			delay, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", args[0], err)
			}

			if err := app.SetMinDelay.Run(cmd.Context(), delay); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Timelock delay set to %s\n", delay)
			return nil
		},
	}
}

// NewSetPendingAdminCmd creates the set-pending-admin command
func NewSetPendingAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-pending-admin <address>",
		Short: "Nominate a new registry owner",
		Long: `Nominates a new owner. The handover completes only when the nominee runs
accept-admin; until then the nomination can be replaced or cleared.`,
		Example: `  modreg set-pending-admin 0xNewOwner... --as 0xOwner...`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			addr, err := parseAddress(args[0])
			if err != nil {
				return err
			}

			if err := app.ManageAdmins.SetPendingAdmin(cmd.Context(), addr); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Nominated %s as pending admin\n", addr.Hex())
			return nil
		},
	}
}

// NewAcceptAdminCmd creates the accept-admin command
func NewAcceptAdminCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "accept-admin",
		Short:   "Complete an ownership handover",
		Example: `  modreg accept-admin --as 0xNewOwner...`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.ManageAdmins.AcceptAdmin(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Admin handover complete")
			return nil
		},
	}
}

// NewSetRoleCmd creates the set-role command
func NewSetRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-role <upgrade-admin|emergency-admin> <address>",
		Short: "Rotate a delegated governance identity",
		Long: `Assigns the upgrade-admin or emergency-admin role to an identity. Passing
the zero address revokes the delegation.`,
		Example: `  modreg set-role upgrade-admin 0xUpgrader... --as 0xOwner...
  modreg set-role emergency-admin 0x0000000000000000000000000000000000000000 --as 0xOwner...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var role usecase.AdminRole
			switch args[0] {
			case string(usecase.RoleUpgradeAdmin):
				role = usecase.RoleUpgradeAdmin
			case string(usecase.RoleEmergencyAdmin):
				role = usecase.RoleEmergencyAdmin
			default:
				return fmt.Errorf("unknown role %q (want upgrade-admin or emergency-admin)", args[0])
			}

			addr, err := parseAddress(args[1])
			if err != nil {
				return err
			}

			if err := app.ManageAdmins.SetRole(cmd.Context(), role, addr); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Role %s assigned to %s\n", role, addr.Hex())
			return nil
		},
	}
}
