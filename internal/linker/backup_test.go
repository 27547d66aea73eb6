package linker

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFilePreservesMode(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0600))

	dst := filepath.Join(dir, "nested", "dst")
	require.NoError(t, copyFile(src, dst, 0))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestCopyFileModeOverride(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0600))

	dst := filepath.Join(dir, "dst")
	require.NoError(t, copyFile(src, dst, 0644))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestMoveEntrySameFilesystem(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	require.NoError(t, moveEntry(src, dst))
	assert.NoFileExists(t, src)
	assert.FileExists(t, dst)
}

// crossDevice makes every rename fail as if src and dst were on different filesystems.
func crossDevice(t *testing.T) {
	t.Helper()
	prev := rename
	rename = func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	}
	t.Cleanup(func() { rename = prev })
}

func TestMoveEntryCrossDeviceFile(t *testing.T) {
	crossDevice(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "bashrc")
	dst := filepath.Join(dir, "backup", "bashrc")
	require.NoError(t, os.WriteFile(src, []byte("original"), 0600))

	require.NoError(t, moveEntry(src, dst))

	assert.NoFileExists(t, src)
	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "original", string(content))
	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestMoveEntryCrossDeviceSymlink(t *testing.T) {
	crossDevice(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "profile")
	dst := filepath.Join(dir, "profile.bak")
	require.NoError(t, os.Symlink("/somewhere/else", src))

	require.NoError(t, moveEntry(src, dst))

	_, err := os.Lstat(src)
	assert.True(t, os.IsNotExist(err))
	dest, err := os.Readlink(dst)
	require.NoError(t, err)
	assert.Equal(t, "/somewhere/else", dest)
}

func TestMoveEntryCrossDeviceDirectoryFails(t *testing.T) {
	crossDevice(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "vim")
	require.NoError(t, os.MkdirAll(src, 0755))

	err := moveEntry(src, filepath.Join(dir, "vim.bak"))
	require.Error(t, err)
	assert.ErrorIs(t, err, syscall.EXDEV)
	assert.DirExists(t, src)
}
