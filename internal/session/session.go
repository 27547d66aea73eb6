// Package session ties configuration, the repository tool, the reconciler and
// the state file together for one run of dotsync.
package session

import (
	"fmt"
	"os"
	"time"

	"dotsync/internal/config"
	"dotsync/internal/linker"
	"dotsync/internal/logger"
	"dotsync/internal/repo"
	"dotsync/internal/state"
)

// Session holds everything a run needs. Platform defaults to the running OS.
type Session struct {
	Config   config.Config
	Tool     *repo.Tool
	Platform linker.Platform
	Now      func() time.Time
}

// New returns a Session for cfg that drives tool.
func New(cfg config.Config, tool *repo.Tool) *Session {
	return &Session{
		Config:   cfg,
		Tool:     tool,
		Platform: linker.CurrentPlatform(),
		Now:      time.Now,
	}
}

// Prepare makes sure the dotfiles and backup directories exist and that the
// local repository has been cloned.
func (s *Session) Prepare() error {
	if err := ensureDir(s.Config.DotfilesDir, "dotfiles"); err != nil {
		return err
	}
	if err := ensureDir(s.Config.BackupDir, "backup"); err != nil {
		return err
	}
	return s.Tool.EnsureRepo(s.Config.Repo.Remote)
}

// Reconcile runs one linker pass and records its outcome in the state file, including
// the work of a pass that failed partway. A state file that cannot be written is only a warning.
func (s *Session) Reconcile() (linker.Result, error) {
	res, err := linker.Reconcile(linker.Options{
		DotfilesDir: s.Config.DotfilesDir,
		BackupDir:   s.Config.BackupDir,
		HomeDir:     s.Config.HomeDir,
		Platform:    s.Platform,
	})
	if err != nil {
		// Keep a record of backups taken before the failure
		if len(res.Links)+len(res.Backups)+len(res.Removed) > 0 {
			st := state.LoadState(s.Config.StateFile)
			st.RecordPartial(res, s.Now())
			s.save(st)
		}
		return res, err
	}

	st := state.LoadState(s.Config.StateFile)
	st.Record(res, s.Now())
	s.save(st)

	logger.Info("[INFO] Links up to date: %d applied, %d skipped\n", res.Applied, res.Skipped)
	return res, nil
}

func (s *Session) save(st *state.State) {
	if err := state.SaveState(s.Config.StateFile, st); err != nil {
		logger.Warn("[WARN] Could not save state: %v\n", err)
	}
}

// ensureDir creates path if it is missing, warning that it had to.
func ensureDir(path, label string) error {
	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%s path %s is not a directory", label, path)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("inspect %s directory %s: %w", label, path, err)
	}

	logger.Warn("[WARN] %s directory %s is missing. Creating it.\n", label, path)
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create %s directory %s: %w", label, path, err)
	}
	return nil
}
