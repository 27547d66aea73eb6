package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"dotsync/internal/logger"
)

// AppName is used for XDG sub-directories and as the default log tag.
const AppName = "dotsync"

// DefaultPath returns $XDG_CONFIG_HOME/dotsync/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Defaults returns the configuration used when no file overrides a value.
// Paths are relative to homeDir.
func Defaults(homeDir string) Config {
	return Config{
		DotfilesDir: filepath.Join(homeDir, ".dotfiles"),
		BackupDir:   filepath.Join(homeDir, ".dotfiles_backup"),
		HomeDir:     homeDir,
		StateFile:   filepath.Join(xdg.StateHome, AppName, "state.json"),
		LogTag:      AppName,
		Repo: Repo{
			Tool:          "yadm",
			MarkerDir:     filepath.Join(homeDir, ".local", "share", "yadm", "repo.git"),
			CommitMessage: "Update dotfiles",
		},
	}
}

// LoadConfig reads the YAML configuration at configFile and fills every unset
// field from Defaults. A missing file is not an error: the defaults are returned.
// A leading "~" in any path is expanded against the home directory.
func LoadConfig(configFile string) (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("failed to determine home directory: %w", err)
	}

	var fromFile Config
	raw, err := os.ReadFile(configFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		logger.Debug("[DEBUG] No config file at %s, using defaults\n", configFile)
	case err != nil:
		return Config{}, fmt.Errorf("failed to read %s: %w", configFile, err)
	default:
		if err := yaml.Unmarshal(raw, &fromFile); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal %s: %w", configFile, err)
		}
		logger.Debug("[DEBUG] Loaded config from %s\n", configFile)
	}

	// home_dir is resolved first so the remaining defaults hang off it
	if fromFile.HomeDir != "" {
		home = expandHome(fromFile.HomeDir, home)
	}
	cfg := merge(Defaults(home), fromFile)

	cfg.DotfilesDir = expandHome(cfg.DotfilesDir, home)
	cfg.BackupDir = expandHome(cfg.BackupDir, home)
	cfg.StateFile = expandHome(cfg.StateFile, home)
	cfg.Repo.MarkerDir = expandHome(cfg.Repo.MarkerDir, home)
	return cfg, nil
}

// merge overlays the non-empty fields of override onto base.
func merge(base, override Config) Config {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&base.DotfilesDir, override.DotfilesDir)
	pick(&base.BackupDir, override.BackupDir)
	pick(&base.StateFile, override.StateFile)
	pick(&base.LogTag, override.LogTag)
	pick(&base.Repo.Tool, override.Repo.Tool)
	pick(&base.Repo.Remote, override.Repo.Remote)
	pick(&base.Repo.MarkerDir, override.Repo.MarkerDir)
	pick(&base.Repo.CommitMessage, override.Repo.CommitMessage)
	return base
}

// expandHome replaces a leading "~" or "~/" with home.
func expandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	default:
		return path
	}
}
