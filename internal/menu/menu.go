// Package menu implements the interactive numbered menu of dotsync.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dotsync/internal/fault"
	"dotsync/internal/linker"
	"dotsync/internal/logger"
)

// errEndOfInput stops the loop when input ends inside an action. Run returns nil for it.
var errEndOfInput = errors.New("end of input")

// Choice is a menu entry number.
type Choice int

const (
	ChoiceAdd Choice = iota + 1
	ChoiceCommitPush
	ChoicePull
	ChoiceStatus
	ChoiceReset
	ChoiceExit
)

var labels = map[Choice]string{
	ChoiceAdd:        "Add dotfiles",
	ChoiceCommitPush: "Commit and push",
	ChoicePull:       "Pull",
	ChoiceStatus:     "Status",
	ChoiceReset:      "Reset (hard)",
	ChoiceExit:       "Exit",
}

func (c Choice) String() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return fmt.Sprintf("Choice(%d)", int(c))
}

// Repository is the subset of the dotfiles tool the menu drives.
type Repository interface {
	Add(pattern string) error
	Commit(message string) error
	Push() error
	Pull() error
	Status() error
	ResetHard() error
}

// Linker runs one reconcile pass.
type Linker interface {
	Reconcile() (linker.Result, error)
}

// Menu reads choices from in and writes prompts to out.
type Menu struct {
	in            *bufio.Scanner
	out           io.Writer
	repo          Repository
	linker        Linker
	dotfilesDir   string
	commitMessage string
}

// New returns a Menu. commitMessage is used when the operator enters an empty message.
func New(in io.Reader, out io.Writer, repo Repository, l Linker, dotfilesDir, commitMessage string) *Menu {
	return &Menu{
		in:            bufio.NewScanner(in),
		out:           out,
		repo:          repo,
		linker:        l,
		dotfilesDir:   dotfilesDir,
		commitMessage: commitMessage,
	}
}

// ParseChoice converts operator input to a Choice. Surrounding whitespace is ignored.
func ParseChoice(input string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", input)
	}
	c := Choice(n)
	if c < ChoiceAdd || c > ChoiceExit {
		return 0, fmt.Errorf("out of range: %d", n)
	}
	return c, nil
}

// Run shows the menu until the operator exits or input ends.
// The returned error is always fatal; invalid input is only a warning.
func (m *Menu) Run() error {
	for {
		m.render()

		line, ok, err := m.readLine()
		if err != nil {
			return fault.Wrap("read input", err)
		}
		if !ok {
			logger.Info("[INFO] End of input. Exiting.\n")
			return nil
		}

		choice, err := ParseChoice(line)
		if err != nil {
			logger.Warn("[WARN] Invalid choice %q. Enter a number from %d to %d.\n",
				strings.TrimSpace(line), ChoiceAdd, ChoiceExit)
			continue
		}
		if choice == ChoiceExit {
			logger.Info("[INFO] Exiting.\n")
			return nil
		}

		logger.Debug("[DEBUG] Selected %d (%s)\n", choice, choice)
		if err := m.dispatch(choice); err != nil {
			if errors.Is(err, errEndOfInput) {
				return nil
			}
			return err
		}
	}
}

func (m *Menu) render() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "Dotfiles")
	for c := ChoiceAdd; c <= ChoiceExit; c++ {
		fmt.Fprintf(m.out, "  %d) %s\n", c, c)
	}
	fmt.Fprintf(m.out, "Choose an option [%d-%d]: ", ChoiceAdd, ChoiceExit)
}

func (m *Menu) readLine() (string, bool, error) {
	if m.in.Scan() {
		return m.in.Text(), true, nil
	}
	return "", false, m.in.Err()
}
