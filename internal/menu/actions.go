package menu

import (
	"fmt"
	"path/filepath"
	"strings"

	"dotsync/internal/fault"
	"dotsync/internal/logger"
)

// dispatch runs the action for c. Every action except Status refreshes the links.
func (m *Menu) dispatch(c Choice) error {
	switch c {
	case ChoiceAdd:
		return m.add()
	case ChoiceCommitPush:
		return m.commitAndPush()
	case ChoicePull:
		return m.pull()
	case ChoiceStatus:
		return fault.Wrap("status", m.repo.Status())
	case ChoiceReset:
		return m.reset()
	default:
		return fault.Wrap("menu", fmt.Errorf("no action for choice %d", c))
	}
}

func (m *Menu) add() error {
	if err := m.reconcile(); err != nil {
		return err
	}
	pattern := filepath.Join(m.dotfilesDir, "*")
	logger.Info("[INFO] Adding %s\n", pattern)
	return fault.Wrap("add", m.repo.Add(pattern))
}

func (m *Menu) commitAndPush() error {
	message, ok, err := m.prompt(fmt.Sprintf("Commit message [%s]: ", m.commitMessage))
	if err != nil {
		return fault.Wrap("read input", err)
	}
	if !ok {
		logger.Info("[INFO] End of input at commit prompt. Nothing committed.\n")
		return errEndOfInput
	}
	if message == "" {
		message = m.commitMessage
	}

	logger.Info("[INFO] Committing: %s\n", message)
	if err := m.repo.Commit(message); err != nil {
		return fault.Wrap("commit", err)
	}
	logger.Info("[INFO] Pushing\n")
	if err := m.repo.Push(); err != nil {
		return fault.Wrap("push", err)
	}
	return m.reconcile()
}

func (m *Menu) pull() error {
	logger.Info("[INFO] Pulling\n")
	if err := m.repo.Pull(); err != nil {
		return fault.Wrap("pull", err)
	}
	return m.reconcile()
}

func (m *Menu) reset() error {
	logger.Warn("[WARN] Resetting repository. Uncommitted changes are discarded.\n")
	if err := m.repo.ResetHard(); err != nil {
		return fault.Wrap("reset", err)
	}
	return m.reconcile()
}

func (m *Menu) reconcile() error {
	_, err := m.linker.Reconcile()
	return fault.Wrap("reconcile", err)
}

// prompt writes msg and reads one trimmed line. ok is false at end of input.
func (m *Menu) prompt(msg string) (string, bool, error) {
	fmt.Fprint(m.out, msg)
	line, ok, err := m.readLine()
	return strings.TrimSpace(line), ok, err
}
