package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewPauseCmd creates the pause command
func NewPauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Freeze all registry mutations",
		Long: `Pause puts the registry into a frozen state where every mutation is
rejected. Cancelling a pending upgrade and unpausing remain available as
escape paths.`,
		Example: `  modreg pause --as 0xEmergency...`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.PauseRegistry.Run(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Registry paused")
			return nil
		},
	}
}

// NewUnpauseCmd creates the unpause command
func NewUnpauseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unpause",
		Short:   "Resume registry mutations",
		Example: `  modreg unpause --as 0xOwner...`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if err := app.UnpauseRegistry.Run(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Registry unpaused")
			return nil
		},
	}
}
