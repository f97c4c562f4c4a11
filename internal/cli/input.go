package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// readLine reads a single line of input with surrounding whitespace
// removed. A final line without a newline is returned as-is; io.EOF is
// only returned when nothing was read.
func (a *App) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// prompt prints label and reads the answer.
func (a *App) prompt(label string) (string, error) {
	if _, err := fmt.Fprintf(a.out, "%s: ", label); err != nil {
		return "", err
	}
	return a.readLine()
}

// promptPassword reads a password without echo when stdin is a terminal,
// and as a plain line otherwise (pipes, tests).
func (a *App) promptPassword(label string) (string, error) {
	if !isTerminal(a.stdinFd) {
		return a.prompt(label)
	}

	if _, err := fmt.Fprintf(a.out, "%s: ", label); err != nil {
		return "", err
	}
	pw, err := readPassword(a.stdinFd)
	fmt.Fprintln(a.out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
