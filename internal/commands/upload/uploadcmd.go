// Package upload implements the "upload" command.
package upload

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/indaco/nupack/internal/cliflags"
	"github.com/indaco/nupack/internal/clix"
	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/operations"
	"github.com/indaco/nupack/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "upload" command.
func Run(cfg *config.Config) *cli.Command {
	cmdFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "archive",
			Usage: "Package to push (default: the archive of --id and --version in the output directory)",
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "Feed name or URL to push to",
		},
		&cli.StringFlag{
			Name:  "api-key",
			Usage: "Feed API key (prefer $" + config.EnvAPIKey + ")",
		},
	}
	cmdFlags = append(cmdFlags, cliflags.FeedFlags()...)
	cmdFlags = append(cmdFlags, cliflags.MetadataFlags()...)
	cmdFlags = append(cmdFlags, cliflags.ManifestFlags()...)
	cmdFlags = append(cmdFlags, cliflags.QuietFlag())

	return &cli.Command{
		Name:    "upload",
		Aliases: []string{"push"},
		Usage:   "Push a built package to a feed",
		UsageText: `nupack upload [--archive file.nupkg] [--source name|url] [--api-key key] [files...]

With --feed-url and --username (or a configured source) a nuget.config
holding the credentials is written next to the archive and used instead
of the API key.`,
		Flags: cmdFlags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runUploadCmd(ctx, cmd, cfg)
		},
	}
}

func runUploadCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	format, err := cliflags.Format(cmd, cfg)
	if err != nil {
		return err
	}

	session := clix.NewSession(cfg, os.Stdout, cmd.Bool("quiet"))

	req, err := buildRequest(ctx, cmd, cfg, session)
	if err != nil {
		return err
	}

	op := operations.NewUploadOperation(session.FS, format, session.Service)

	var archive string
	err = session.Run(ctx, "Uploading...", func(ctx context.Context) error {
		var runErr error
		archive, runErr = op.Execute(ctx, req)
		return runErr
	})
	if err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Uploaded %s", archive))
	return nil
}

func buildRequest(ctx context.Context, cmd *cli.Command, cfg *config.Config, session *clix.Session) (operations.UploadRequest, error) {
	req := operations.UploadRequest{
		Archive: strings.TrimSpace(cmd.String("archive")),
		Dir:     cliflags.OutputDir(cmd, cfg),
		Source:  cmd.String("source"),
		APIKey:  cmd.String("api-key"),
		Feed:    cliflags.Feed(cmd, cfg),
	}

	if req.APIKey == "" {
		req.APIKey = cfg.APIKey()
	}
	if req.Source == "" && req.Feed == nil && cfg.Source != nil {
		req.Source = cfg.Source.URL
	}

	if req.Archive == "" {
		m, err := operations.ApplyDefaults(ctx, session.FS, cliflags.Metadata(cmd, cfg))
		if err != nil {
			return req, err
		}
		req.ID = m.ID
		req.Version = m.Version
	}

	return req, nil
}
