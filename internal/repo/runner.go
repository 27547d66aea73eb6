package repo

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"dotsync/internal/logger"
)

// Runner executes an external command to completion. Success is a zero exit status.
type Runner interface {
	Run(name string, args ...string) error
}

// ExecRunner runs commands as subprocesses with their output passed straight through.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner wired to the process's stdout and stderr.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

func (r *ExecRunner) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	logger.Debug("[DEBUG] Running command: %s\n", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", strings.Join(cmd.Args, " "), err)
	}
	return nil
}
