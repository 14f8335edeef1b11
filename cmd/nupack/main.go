package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/indaco/nupack/internal/cli"
	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintFailure(os.Stderr, err)
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the command tree. SIGINT and
// SIGTERM cancel the running command and any tool it started.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.New(cfg).Run(ctx, args)
}
