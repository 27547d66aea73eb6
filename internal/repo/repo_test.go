package repo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records every invocation and fails those whose joined args contain failOn.
type fakeRunner struct {
	calls  []string
	failOn string
}

func (f *fakeRunner) Run(name string, args ...string) error {
	call := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, call)
	if f.failOn != "" && strings.Contains(call, f.failOn) {
		return errors.New("exit status 1")
	}
	return nil
}

func TestOperationsInvokeTool(t *testing.T) {
	runner := &fakeRunner{}
	tool := New("yadm", t.TempDir(), runner)

	require.NoError(t, tool.Clone("git@example.com:me/dots.git"))
	require.NoError(t, tool.Commit("Update dotfiles"))
	require.NoError(t, tool.Push())
	require.NoError(t, tool.Pull())
	require.NoError(t, tool.Status())
	require.NoError(t, tool.ResetHard())

	assert.Equal(t, []string{
		"yadm clone git@example.com:me/dots.git",
		"yadm commit -m Update dotfiles",
		"yadm push",
		"yadm pull",
		"yadm status",
		"yadm reset --hard",
	}, runner.calls)
}

func TestFailureNamesOperation(t *testing.T) {
	runner := &fakeRunner{failOn: "pull"}
	tool := New("yadm", t.TempDir(), runner)

	err := tool.Pull()
	require.Error(t, err)
	assert.Equal(t, "yadm pull failed: exit status 1", err.Error())
}

func TestAddExpandsPatternAndSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zshrc", "bashrc", ".git"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	runner := &fakeRunner{}
	tool := New("yadm", t.TempDir(), runner)

	require.NoError(t, tool.Add(filepath.Join(dir, "*")))
	assert.Equal(t, []string{
		"yadm add " + filepath.Join(dir, "bashrc") + " " + filepath.Join(dir, "zshrc"),
	}, runner.calls)
}

func TestAddWithoutMatchesRunsNothing(t *testing.T) {
	runner := &fakeRunner{}
	tool := New("yadm", t.TempDir(), runner)

	require.NoError(t, tool.Add(filepath.Join(t.TempDir(), "*")))
	assert.Empty(t, runner.calls)
}

func TestEnsureRepo(t *testing.T) {
	t.Run("existing_marker", func(t *testing.T) {
		runner := &fakeRunner{}
		tool := New("yadm", t.TempDir(), runner)

		require.NoError(t, tool.EnsureRepo("git@example.com:me/dots.git"))
		assert.Empty(t, runner.calls)
	})

	t.Run("missing_marker_clones", func(t *testing.T) {
		runner := &fakeRunner{}
		tool := New("yadm", filepath.Join(t.TempDir(), "repo.git"), runner)

		require.NoError(t, tool.EnsureRepo("git@example.com:me/dots.git"))
		assert.Equal(t, []string{"yadm clone git@example.com:me/dots.git"}, runner.calls)
	})

	t.Run("missing_marker_without_remote", func(t *testing.T) {
		runner := &fakeRunner{}
		tool := New("yadm", filepath.Join(t.TempDir(), "repo.git"), runner)

		require.NoError(t, tool.EnsureRepo(""))
		assert.Empty(t, runner.calls)
	})

	t.Run("clone_failure", func(t *testing.T) {
		runner := &fakeRunner{failOn: "clone"}
		tool := New("yadm", filepath.Join(t.TempDir(), "repo.git"), runner)

		assert.Error(t, tool.EnsureRepo("git@example.com:me/dots.git"))
	})
}

func TestAvailable(t *testing.T) {
	tool := New("definitely-not-a-real-dotfiles-tool", t.TempDir(), &fakeRunner{})
	err := tool.Available()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestExecRunnerReportsExitStatus(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("requires /bin/sh")
	}
	var out strings.Builder
	r := &ExecRunner{Stdout: &out, Stderr: &out}

	require.NoError(t, r.Run("/bin/sh", "-c", "echo hello"))
	assert.Equal(t, "hello\n", out.String())

	err := r.Run("/bin/sh", "-c", "exit 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit status 3")
}
