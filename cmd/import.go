package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"dotsync/internal/archive"
	"dotsync/internal/fault"
	"dotsync/internal/logger"
)

// importCmd seeds the dotfiles directory from a bundle and links the result.
var importCmd = &cobra.Command{
	Use:   "import <bundle>",
	Short: "Unpack a dotfiles bundle into the dotfiles directory and link it",
	Long: "Unpack a dotfiles bundle into the dotfiles directory and link it.\n" +
		"Supported formats: " + strings.Join(archive.Supported, ", "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := prepare()
		if err != nil {
			return err
		}

		n, err := archive.Extract(args[0], cfg.DotfilesDir)
		if err != nil {
			return fault.Wrap("import "+args[0], err)
		}
		logger.Info("[INFO] Imported %d files from %s into %s\n", n, args[0], cfg.DotfilesDir)

		if _, err := s.Reconcile(); err != nil {
			return fault.Wrap("reconcile", err)
		}
		return nil
	},
}
