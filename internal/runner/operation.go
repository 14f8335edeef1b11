package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Operation runs external commands on behalf of one caller and lets
// another goroutine cancel them.
type Operation struct {
	sink Sink

	// sinkMu serializes delivery from the stdout and stderr readers.
	sinkMu sync.Mutex

	mu       sync.Mutex
	cmd      *exec.Cmd
	busy     bool
	canceled bool

	execCommand func(ctx context.Context, name string, arg ...string) *exec.Cmd
}

// NewOperation creates an Operation that logs to sink.
// A nil sink discards output.
func NewOperation(sink Sink) *Operation {
	if sink == nil {
		sink = Discard
	}
	return &Operation{
		sink:        sink,
		execCommand: exec.CommandContext,
	}
}

// Running reports whether a command is currently in flight.
func (o *Operation) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.cmd != nil
}

// Run starts c, relays its output line by line and waits for it to exit.
//
// A non-zero exit status is returned as the exit code with a nil error.
// Errors are reserved for commands that could not be started, were
// canceled, or whose output could not be read.
func (o *Operation) Run(ctx context.Context, c Command) (int, error) {
	o.mu.Lock()
	if o.busy {
		o.mu.Unlock()
		return -1, ErrBusy
	}
	o.busy = true
	o.canceled = false
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.busy = false
		o.mu.Unlock()
	}()

	o.log("Running: " + c.String())

	cmd := o.execCommand(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	setProcGroup(cmd)
	cmd.Cancel = func() error {
		return killProcessTree(cmd)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return -1, &StartError{Command: c, Err: err}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return -1, &StartError{Command: c, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return -1, &StartError{Command: c, Err: err}
	}

	o.mu.Lock()
	o.cmd = cmd
	o.mu.Unlock()

	var g errgroup.Group
	g.Go(func() error { return o.drain(stdout) })
	g.Go(func() error { return o.drain(stderr) })

	// Both pipes must be fully read before Wait closes them.
	drainErr := g.Wait()
	waitErr := cmd.Wait()

	// The process is reaped; a late Cancel must not signal its group.
	o.mu.Lock()
	o.cmd = nil
	canceled := o.canceled
	o.mu.Unlock()

	switch {
	case canceled:
		return exitCode(cmd), ErrCanceled
	case ctx.Err() != nil:
		return exitCode(cmd), fmt.Errorf("%s interrupted: %w", c.Path, ctx.Err())
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return -1, fmt.Errorf("failed waiting for %s: %w", c.Path, waitErr)
		}
	}
	if drainErr != nil {
		return exitCode(cmd), fmt.Errorf("failed reading output of %s: %w", c.Path, drainErr)
	}

	return exitCode(cmd), nil
}

// Cancel kills the running command and all of its children.
// It does nothing when no command is running. Failures are logged.
func (o *Operation) Cancel() {
	o.mu.Lock()
	cmd := o.cmd
	if cmd == nil {
		o.mu.Unlock()
		return
	}
	o.canceled = true
	o.mu.Unlock()

	o.log("Cancelling operation...")
	if err := killProcessTree(cmd); err != nil {
		o.log("Error while cancelling: " + err.Error())
	}
}

func (o *Operation) drain(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			o.log(strings.TrimRight(line, "\r\n"))
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (o *Operation) log(line string) {
	o.sinkMu.Lock()
	defer o.sinkMu.Unlock()
	o.sink.Log(line)
}

func exitCode(cmd *exec.Cmd) int {
	if cmd.ProcessState == nil {
		return -1
	}
	return cmd.ProcessState.ExitCode()
}
