package clix

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/nuget"
	"github.com/indaco/nupack/internal/printer"
	"github.com/indaco/nupack/internal/runner"
	"github.com/indaco/nupack/internal/tui"
)

// Session wires one command invocation to the external toolchain.
type Session struct {
	FS         core.FileSystem
	Operation  *runner.Operation
	Transcript *nuget.Transcript
	Service    *nuget.Service

	out   io.Writer
	quiet bool
}

// NewSession creates a Session. Tool output is printed to out with a time
// prefix unless quiet is set; it is always recorded for failure hints.
func NewSession(cfg *config.Config, out io.Writer, quiet bool) *Session {
	if out == nil {
		out = os.Stdout
	}

	fs := core.NewOSFileSystem()
	transcript := nuget.NewTranscript(0)

	var sink runner.Sink = transcript
	if !quiet {
		sink = runner.MultiSink(printer.NewLogSink(out), transcript)
	}

	op := runner.NewOperation(sink)
	return &Session{
		FS:         fs,
		Operation:  op,
		Transcript: transcript,
		Service:    nuget.NewService(fs, op, Toolchain(cfg), transcript),
		out:        out,
		quiet:      quiet,
	}
}

// Toolchain returns the configured tool locations.
func Toolchain(cfg *config.Config) nuget.Toolchain {
	if cfg == nil || cfg.Tools == nil {
		return nuget.Toolchain{}
	}
	return nuget.Toolchain{NuGetPath: cfg.Tools.NuGet, DotnetPath: cfg.Tools.Dotnet}
}

// Run executes action. Canceling ctx cancels the running tool. In quiet
// mode a spinner titled title is shown, and the recorded tool output is
// printed if the tool fails.
func (s *Session) Run(ctx context.Context, title string, action func(context.Context) error) error {
	stop := context.AfterFunc(ctx, s.Operation.Cancel)
	defer stop()

	if !s.quiet {
		return action(ctx)
	}

	err := tui.RunWithSpinner(ctx, title, action)

	var toolErr *nuget.ToolError
	if errors.As(err, &toolErr) && toolErr.Output != "" {
		fmt.Fprintln(s.out, printer.Faint(strings.TrimRight(toolErr.Output, "\n")))
	}
	return err
}
