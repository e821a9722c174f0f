package controllers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrNotInteractive means there is no terminal to ask the user on.
var ErrNotInteractive = errors.New("standard input is not a terminal")

// Prompter asks the user a yes/no question.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// TerminalPrompter asks on stdin when it is a terminal.
type TerminalPrompter struct {
	in  *os.File
	out io.Writer
}

// NewTerminalPrompter creates a prompter reading stdin and writing stderr.
func NewTerminalPrompter() Prompter {
	return &TerminalPrompter{in: os.Stdin, out: os.Stderr}
}

// Confirm returns true only for "y" or "yes". It returns ErrNotInteractive
// without asking when stdin is not a terminal.
func (it *TerminalPrompter) Confirm(question string) (bool, error) {
	if !term.IsTerminal(int(it.in.Fd())) {
		return false, ErrNotInteractive
	}

	_, _ = fmt.Fprint(it.out, question+" [y/N]: ")
	answer, err := bufio.NewReader(it.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return isYes(answer), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
