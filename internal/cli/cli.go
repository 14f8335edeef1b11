package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/indaco/nupack/internal/commands/build"
	"github.com/indaco/nupack/internal/commands/doctor"
	"github.com/indaco/nupack/internal/commands/feedconfig"
	"github.com/indaco/nupack/internal/commands/generate"
	"github.com/indaco/nupack/internal/commands/initialize"
	"github.com/indaco/nupack/internal/commands/inspect"
	"github.com/indaco/nupack/internal/commands/upload"
	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/printer"
	"github.com/indaco/nupack/internal/tui"
	"github.com/indaco/nupack/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the nupack cli.
func New(cfg *config.Config) *urfavecli.Command {
	var (
		noColor bool
		theme   string
	)

	return &urfavecli.Command{
		Name:                  "nupack",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Build and publish NuGet packages from plain files",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColor,
			},
			&urfavecli.StringFlag{
				Name:        "theme",
				Usage:       "Form theme: " + joinThemes(),
				Value:       cfg.Theme,
				Destination: &theme,
				Validator: func(s string) error {
					if s != "" && !tui.IsValidTheme(s) {
						return fmt.Errorf("unknown theme %q (available: %s)", s, joinThemes())
					}
					return nil
				},
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColor)
			tui.SetTheme(theme)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			initialize.Run(),
			generate.Run(cfg),
			build.Run(cfg),
			upload.Run(cfg),
			inspect.Run(),
			feedconfig.Run(cfg),
			doctor.Run(cfg),
		},
	}
}

func joinThemes() string {
	return strings.Join(tui.ThemeNames(), ", ")
}
