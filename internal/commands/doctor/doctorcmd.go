// Package doctor implements the "doctor" command.
package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Aliases:   []string{"check"},
		Usage:     "Validate the configuration, toolchain and sync files",
		UsageText: "nupack doctor",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cfg)
		},
	}
}

func runDoctorCmd(ctx context.Context, cfg *config.Config) error {
	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	results, err := config.NewValidator(core.NewOSFileSystem(), cfg, rootDir).Validate(ctx)
	if err != nil {
		return err
	}

	for _, r := range results {
		line := fmt.Sprintf("%s: %s", r.Category, r.Message)
		switch {
		case !r.Passed:
			printer.PrintError("✗ " + line)
		case r.Warning:
			printer.PrintWarning("! " + line)
		default:
			printer.PrintSuccess("✓ " + line)
		}
	}

	errs := config.ErrorCount(results)
	warnings := config.WarningCount(results)
	fmt.Println()
	if errs > 0 {
		return fmt.Errorf("found %d error(s) and %d warning(s)", errs, warnings)
	}
	printer.PrintSuccess(fmt.Sprintf("All checks passed (%d warning(s))", warnings))
	return nil
}
