// Package linker keeps the home directory's symlinks in step with the dotfiles directory.
package linker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dotsync/internal/logger"
)

// Options describes one reconcile pass. All paths are taken as given; DotfilesDir is
// made absolute so link targets never depend on the working directory.
type Options struct {
	DotfilesDir string
	BackupDir   string
	HomeDir     string
	Platform    Platform
}

// ManagedFile is one entry of the dotfiles directory and the home path it is linked to.
type ManagedFile struct {
	Name       string
	SourcePath string
	TargetPath string
}

// Link is a symlink that points at a managed file after the pass.
type Link struct {
	Name   string
	Source string
	Target string
}

// Backup is a pre-existing target that was moved aside before linking.
type Backup struct {
	Name     string
	Original string
	Path     string
}

// Result summarizes a reconcile pass.
// Applied counts linked entries, Skipped counts platform-filtered ones.
type Result struct {
	Applied int
	Skipped int
	Links   []Link
	Backups []Backup
	// Removed lists stale platform-specific symlinks that were deleted.
	Removed []string
}

// Files lists the managed entries of dotfilesDir in lexical order.
// Hidden entries (such as the repository's own .git) are not managed.
func Files(dotfilesDir, homeDir string) ([]ManagedFile, error) {
	src, err := filepath.Abs(dotfilesDir)
	if err != nil {
		return nil, fmt.Errorf("resolve dotfiles directory %s: %w", dotfilesDir, err)
	}

	// os.ReadDir returns entries sorted by filename
	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("read dotfiles directory %s: %w", src, err)
	}

	files := make([]ManagedFile, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		files = append(files, ManagedFile{
			Name:       name,
			SourcePath: filepath.Join(src, name),
			TargetPath: filepath.Join(homeDir, name),
		})
	}
	return files, nil
}

// Reconcile links every managed file into the home directory.
//
// Platform-restricted files that do not belong on opts.Platform are skipped, and a
// symlink left at their target by an earlier run is removed. Anything else already
// sitting at a target is moved to the backup directory (replacing an older backup of
// the same name) before the link is created.
//
// The first filesystem error stops the pass. Entries handled before it keep their
// new state and the partial Result is returned alongside the error.
func Reconcile(opts Options) (Result, error) {
	var res Result

	files, err := Files(opts.DotfilesDir, opts.HomeDir)
	if err != nil {
		return res, err
	}
	logger.Debug("[DEBUG] Reconciling %d managed files for platform %s\n", len(files), opts.Platform)

	for _, f := range files {
		tag := TagOf(f.Name)
		if !tag.Allows(opts.Platform) {
			removed, err := removeStaleLink(f.TargetPath)
			if err != nil {
				return res, err
			}
			if removed {
				logger.Info("[INFO] Removed %s link %s (not for %s)\n", tag, f.TargetPath, opts.Platform)
				res.Removed = append(res.Removed, f.TargetPath)
			} else {
				logger.Debug("[DEBUG] Skipping %s (%s only)\n", f.Name, tag)
			}
			res.Skipped++
			continue
		}

		if err := linkFile(f, opts.BackupDir, &res); err != nil {
			return res, err
		}
		res.Applied++
	}

	logger.Debug("[DEBUG] Reconcile finished: %d applied, %d skipped, %d backups\n",
		res.Applied, res.Skipped, len(res.Backups))
	return res, nil
}

// removeStaleLink deletes target only if it is a symlink. Regular files and
// directories are left alone.
func removeStaleLink(target string) (bool, error) {
	info, err := os.Lstat(target)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("inspect %s: %w", target, err)
	}
	if info.Mode()&fs.ModeSymlink == 0 {
		return false, nil
	}
	if err := os.Remove(target); err != nil {
		return false, fmt.Errorf("remove stale link %s: %w", target, err)
	}
	return true, nil
}

func linkFile(f ManagedFile, backupDir string, res *Result) error {
	info, err := os.Lstat(f.TargetPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// nothing in the way
	case err != nil:
		return fmt.Errorf("inspect %s: %w", f.TargetPath, err)
	default:
		if info.Mode()&fs.ModeSymlink != 0 {
			if dest, err := os.Readlink(f.TargetPath); err == nil && dest == f.SourcePath {
				logger.Debug("[DEBUG] %s already links to %s\n", f.TargetPath, f.SourcePath)
				res.Links = append(res.Links, Link{Name: f.Name, Source: f.SourcePath, Target: f.TargetPath})
				return nil
			}
		}

		b, err := backupTarget(f, backupDir)
		if err != nil {
			return err
		}
		logger.Warn("[WARN] Backed up existing %s to %s\n", b.Original, b.Path)
		res.Backups = append(res.Backups, b)
	}

	// Replace whatever may still be at the target path.
	if err := os.Remove(f.TargetPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("clear %s: %w", f.TargetPath, err)
	}
	if err := os.Symlink(f.SourcePath, f.TargetPath); err != nil {
		return fmt.Errorf("symlink %s -> %s: %w", f.TargetPath, f.SourcePath, err)
	}

	logger.Info("[INFO] Linked %s -> %s\n", f.TargetPath, f.SourcePath)
	res.Links = append(res.Links, Link{Name: f.Name, Source: f.SourcePath, Target: f.TargetPath})
	return nil
}
