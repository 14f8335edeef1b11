// Package generate implements the "generate" command.
package generate

import (
	"context"
	"fmt"

	"github.com/indaco/nupack/internal/cliflags"
	"github.com/indaco/nupack/internal/clix"
	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/operations"
	"github.com/indaco/nupack/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "generate" command.
func Run(cfg *config.Config) *cli.Command {
	cmdFlags := append(cliflags.MetadataFlags(), cliflags.ManifestFlags()...)
	cmdFlags = append(cmdFlags, cliflags.InteractiveFlag())

	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Write the package manifest and README.md",
		UsageText: "nupack generate [--id id] [--version v] [--format nuspec|csproj] [--output dir] <files...>",
		Flags:     cmdFlags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runGenerateCmd(ctx, cmd, cfg)
		},
	}
}

func runGenerateCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	fs := core.NewOSFileSystem()

	m, format, err := clix.ResolveMetadata(ctx, cmd, cfg, fs)
	if err != nil {
		return err
	}

	op := operations.NewGenerateOperation(fs, format, cfg.ProjectOptions(), SyncOperation(fs, cfg))
	res, err := op.Execute(ctx, m, cliflags.OutputDir(cmd, cfg))
	if res != nil {
		PrintResult(res)
	}
	return err
}

// SyncOperation returns the version sync for cfg, or nil when nothing is
// configured.
func SyncOperation(fs core.FileSystem, cfg *config.Config) *operations.SyncOperation {
	targets := cfg.SyncTargets()
	if len(targets) == 0 {
		return nil
	}
	return operations.NewSyncOperation(fs, targets)
}

// PrintResult reports the files a generate run wrote.
func PrintResult(res *operations.GenerateResult) {
	if res.ManifestPath != "" {
		printer.PrintSuccess(fmt.Sprintf("Generated %s for %s %s", res.ManifestPath, res.Metadata.ID, res.Metadata.Version))
	}
	if res.ReadmePath != "" {
		printer.PrintFaint(fmt.Sprintf("  description: %s", res.ReadmePath))
	}
	for _, f := range res.Metadata.ContentFiles {
		printer.PrintFaint(fmt.Sprintf("  content: %s", f))
	}
	for _, c := range res.Synced {
		msg := fmt.Sprintf("Synced version %s to %s", res.Metadata.Version, c.Path)
		if c.Previous != "" && c.Previous != res.Metadata.Version {
			msg += fmt.Sprintf(" (was %s)", c.Previous)
		}
		printer.PrintSuccess(msg)
	}
	for _, w := range res.Warnings {
		printer.PrintWarning("Warning: " + w)
	}
}
