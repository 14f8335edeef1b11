package runner

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Command describes one external tool invocation.
type Command struct {
	// Path is the executable, either absolute or looked up on PATH.
	Path string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// String renders the command line for display.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Path))
	for _, arg := range c.Args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\"") {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}

// ErrBusy is returned by Run while another command is still running.
var ErrBusy = errors.New("another command is already running")

// ErrCanceled is returned by Run when Cancel stopped the command.
var ErrCanceled = errors.New("operation canceled")

// StartError is returned when the executable could not be started.
type StartError struct {
	Command Command
	Err     error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Command.Path, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// Suggestion returns guidance on making the executable available.
func (e *StartError) Suggestion() string {
	if errors.Is(e.Err, exec.ErrNotFound) {
		return fmt.Sprintf("%q was not found on PATH.\nInstall it or set its location in .nupack.yaml (tools section).", e.Command.Path)
	}
	if e.Command.Dir != "" {
		return fmt.Sprintf("Check that %q is executable and that %q exists.", e.Command.Path, e.Command.Dir)
	}
	return fmt.Sprintf("Check that %q is executable.", e.Command.Path)
}
