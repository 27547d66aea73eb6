package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"dotsync/internal/config"
	"dotsync/internal/fault"
	"dotsync/internal/logger"
	"dotsync/internal/menu"
	"dotsync/internal/repo"
	"dotsync/internal/session"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath holds the path to the YAML configuration file.
// It defaults to $XDG_CONFIG_HOME/dotsync/config.yaml.
var configPath string

// cfg is loaded once in PersistentPreRunE and shared by every subcommand.
var cfg config.Config

// rootCmd is the base command for the CLI tool `dotsync`.
// Without a subcommand it starts the interactive menu.
var rootCmd = &cobra.Command{
	Use:           "dotsync",
	Short:         "Interactive dotfiles manager",
	SilenceUsage:  true,
	SilenceErrors: true,

	// PersistentPreRunE runs before any subcommand: it sets up logging and loads the config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(debug, config.AppName)

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return fault.Wrap("load config", err)
		}
		cfg = loaded

		// Re-open the system log under the configured tag
		if cfg.LogTag != config.AppName {
			logger.Init(debug, cfg.LogTag)
		}
		return nil
	},

	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := prepare()
		if err != nil {
			return err
		}
		m := menu.New(cmd.InOrStdin(), cmd.OutOrStdout(), s.Tool, s, cfg.DotfilesDir, cfg.Repo.CommitMessage)
		return m.Run()
	},
}

// prepare builds the session for the loaded config and runs the start-up checks.
func prepare() (*session.Session, error) {
	tool := repo.New(cfg.Repo.Tool, cfg.Repo.MarkerDir, nil)
	if err := tool.Available(); err != nil {
		logger.Warn("[WARN] %v. Repository actions will fail.\n", err)
	}

	s := session.New(cfg, tool)
	if err := s.Prepare(); err != nil {
		return nil, fault.Wrap("prepare", err)
	}
	return s, nil
}

// init registers global flags and subcommands on the root command.
func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Path to configuration file")

	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(importCmd)
}

// Execute starts the command execution.
// Any error that reaches this point is fatal: it is logged and the process exits with status 1.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logger.Error("[ERROR] %s\n", fault.Message(err))
		logger.Close()
		os.Exit(1)
	}
	logger.Close()
}
