package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dotsync/internal/fault"
)

// linkCmd runs a single reconcile pass without the menu.
var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Link dotfiles into the home directory and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := prepare()
		if err != nil {
			return err
		}
		res, err := s.Reconcile()
		if err != nil {
			return fault.Wrap("reconcile", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d linked, %d skipped, %d backed up\n",
			res.Applied, res.Skipped, len(res.Backups))
		return nil
	},
}
