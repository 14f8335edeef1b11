// Package build implements the "build" command.
package build

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/nupack/internal/cliflags"
	"github.com/indaco/nupack/internal/clix"
	"github.com/indaco/nupack/internal/commands/generate"
	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/operations"
	"github.com/indaco/nupack/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "build" command.
func Run(cfg *config.Config) *cli.Command {
	cmdFlags := append(cliflags.MetadataFlags(), cliflags.ManifestFlags()...)
	cmdFlags = append(cmdFlags, cliflags.InteractiveFlag(), cliflags.QuietFlag())

	return &cli.Command{
		Name:  "build",
		Usage: "Pack the manifest into a .nupkg, generating it first if needed",
		UsageText: `nupack build [--format nuspec|csproj] [--output dir] [--quiet] [files...]

Legacy manifests are packed with "nuget pack", project manifests with
"dotnet pack". When the manifest does not exist yet it is generated from
the given files and flags first.`,
		Flags: cmdFlags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runBuildCmd(ctx, cmd, cfg)
		},
	}
}

func runBuildCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	session := clix.NewSession(cfg, os.Stdout, cmd.Bool("quiet"))

	m, format, err := clix.ResolveMetadata(ctx, cmd, cfg, session.FS)
	if err != nil {
		return err
	}

	gen := operations.NewGenerateOperation(session.FS, format, cfg.ProjectOptions(), generate.SyncOperation(session.FS, cfg))
	op := operations.NewBuildOperation(session.FS, format, session.Service, gen)

	var res *operations.BuildResult
	err = session.Run(ctx, "Packing...", func(ctx context.Context) error {
		var runErr error
		res, runErr = op.Execute(ctx, m, cliflags.OutputDir(cmd, cfg))
		return runErr
	})

	if res != nil && res.Generate != nil {
		generate.PrintResult(res.Generate)
	}
	if err != nil {
		return err
	}

	if res.Archive != "" {
		printer.PrintSuccess(fmt.Sprintf("Built %s", res.Archive))
	} else {
		printer.PrintSuccess(fmt.Sprintf("Packed %s", res.ManifestPath))
	}
	return nil
}
