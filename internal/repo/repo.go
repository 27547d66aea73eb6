// Package repo drives the external dotfiles-management tool (yadm by default).
// Every operation is a subprocess; nothing it prints is parsed.
package repo

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"dotsync/internal/logger"
)

// ErrToolNotFound indicates the configured tool is not installed or not in PATH.
var ErrToolNotFound = errors.New("dotfiles tool not found in PATH")

// Tool runs repository operations through a Runner.
type Tool struct {
	Binary    string // e.g. "yadm"
	MarkerDir string // exists once the repository has been cloned
	Runner    Runner
}

// New returns a Tool for binary. A nil runner runs real subprocesses.
func New(binary, markerDir string, runner Runner) *Tool {
	if runner == nil {
		runner = NewExecRunner()
	}
	return &Tool{Binary: binary, MarkerDir: markerDir, Runner: runner}
}

// Available verifies that the tool binary can be found.
func (t *Tool) Available() error {
	if _, err := exec.LookPath(t.Binary); err != nil {
		return fmt.Errorf("%w: %s", ErrToolNotFound, t.Binary)
	}
	return nil
}

// Exists reports whether the local repository marker directory is present.
func (t *Tool) Exists() bool {
	info, err := os.Stat(t.MarkerDir)
	return err == nil && info.IsDir()
}

// EnsureRepo clones remote when the local repository is missing.
// Without a remote there is nothing to clone; that is a warning, not a failure.
func (t *Tool) EnsureRepo(remote string) error {
	if t.Exists() {
		logger.Debug("[DEBUG] Repository found at %s\n", t.MarkerDir)
		return nil
	}
	if remote == "" {
		logger.Warn("[WARN] No repository at %s and no remote configured. Skipping clone.\n", t.MarkerDir)
		return nil
	}
	logger.Info("[INFO] No repository at %s. Cloning %s...\n", t.MarkerDir, remote)
	return t.Clone(remote)
}

// Clone clones remote into the tool's repository.
func (t *Tool) Clone(remote string) error {
	return t.run("clone", remote)
}

// Add stages every non-hidden path matching pattern. A pattern that matches
// nothing is reported and skipped.
func (t *Tool) Add(pattern string) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %s: %w", pattern, err)
	}

	paths := matches[:0]
	for _, m := range matches {
		if !strings.HasPrefix(filepath.Base(m), ".") {
			paths = append(paths, m)
		}
	}
	if len(paths) == 0 {
		logger.Warn("[WARN] Nothing matches %s. Nothing to add.\n", pattern)
		return nil
	}
	sort.Strings(paths)
	return t.run(append([]string{"add"}, paths...)...)
}

// Commit records staged changes with message.
func (t *Tool) Commit(message string) error {
	return t.run("commit", "-m", message)
}

// Push sends local commits to the remote.
func (t *Tool) Push() error {
	return t.run("push")
}

// Pull fetches and merges remote changes.
func (t *Tool) Pull() error {
	return t.run("pull")
}

// Status prints the repository status.
func (t *Tool) Status() error {
	return t.run("status")
}

// ResetHard discards every uncommitted change.
func (t *Tool) ResetHard() error {
	return t.run("reset", "--hard")
}

func (t *Tool) run(args ...string) error {
	if err := t.Runner.Run(t.Binary, args...); err != nil {
		return fmt.Errorf("%s %s failed: %w", t.Binary, args[0], err)
	}
	return nil
}
