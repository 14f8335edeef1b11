// Package feedconfig implements the "feed-config" command.
package feedconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/indaco/nupack/internal/cliflags"
	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "feed-config" command.
func Run(cfg *config.Config) *cli.Command {
	cmdFlags := append(cliflags.FeedFlags(), &cli.StringFlag{
		Name:  "out",
		Usage: "Directory to write nuget.config to instead of printing it",
	})

	return &cli.Command{
		Name:      "feed-config",
		Usage:     "Render the nuget.config holding the feed credentials",
		UsageText: "nupack feed-config [--feed-url url] [--username name] [--password secret] [--out dir]",
		Flags:     cmdFlags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runFeedConfigCmd(ctx, cmd, cfg)
		},
	}
}

func runFeedConfigCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	feed := cliflags.Feed(cmd, cfg)
	if feed == nil {
		return errors.New("feed URL and username are required (use --feed-url and --username, or the source section of " + config.ConfigFileName + ")")
	}

	out := strings.TrimSpace(cmd.String("out"))
	if out == "" {
		doc, err := manifest.RenderFeedConfig(*feed)
		if err != nil {
			return err
		}
		fmt.Print(doc)
		return nil
	}

	path, err := manifest.NewWriter(core.NewOSFileSystem(), manifest.ProjectOptions{}).WriteFeedConfig(ctx, *feed, out)
	if err != nil {
		return err
	}
	printer.PrintSuccess(fmt.Sprintf("Wrote %s", path))
	return nil
}
