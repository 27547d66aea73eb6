package linker

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
)

// backupTarget moves the entry at f.TargetPath to backupDir/f.Name.
// An earlier backup with the same name is discarded first (last write wins).
func backupTarget(f ManagedFile, backupDir string) (Backup, error) {
	dst := filepath.Join(backupDir, f.Name)
	b := Backup{Name: f.Name, Original: f.TargetPath, Path: dst}

	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return b, fmt.Errorf("create backup directory %s: %w", backupDir, err)
	}
	if err := os.RemoveAll(dst); err != nil {
		return b, fmt.Errorf("discard previous backup %s: %w", dst, err)
	}
	if err := moveEntry(f.TargetPath, dst); err != nil {
		return b, fmt.Errorf("back up %s to %s: %w", f.TargetPath, dst, err)
	}
	return b, nil
}

// rename is os.Rename; tests replace it to simulate a cross-device move.
var rename = os.Rename

// moveEntry renames src to dst. When they sit on different filesystems, regular
// files and symlinks are recreated at dst and the original removed; directories
// cannot be moved that way and the rename error is returned.
func moveEntry(src, dst string) error {
	err := rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	info, lerr := os.Lstat(src)
	if lerr != nil {
		return lerr
	}
	switch {
	case info.Mode()&fs.ModeSymlink != 0:
		dest, err := os.Readlink(src)
		if err != nil {
			return err
		}
		if err := os.Symlink(dest, dst); err != nil {
			return err
		}
	case info.Mode().IsRegular():
		if err := copyFile(src, dst, 0); err != nil {
			return err
		}
	default:
		return err
	}
	return os.Remove(src)
}

// copyFile copies a file from src to dst, preserving permissions unless
// modeOverride is non-zero. Missing directories in the destination path are created.
func copyFile(src, dst string, modeOverride os.FileMode) (err error) {
	// Open the source file
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	// Ensure the destination directory exists
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	// Copy contents
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}

	// Set permissions: use override if provided, otherwise preserve source mode
	if modeOverride != 0 {
		return os.Chmod(dst, modeOverride)
	}
	stat, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, stat.Mode())
}
