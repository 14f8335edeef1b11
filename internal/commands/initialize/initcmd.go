// Package initialize implements the "init" command.
package initialize

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/printer"
	"github.com/indaco/nupack/internal/tui"
	"github.com/urfave/cli/v3"
)

// newPrompter and isInteractive are replaced in tests.
var (
	newPrompter   = tui.NewPrompter
	isInteractive = tui.IsInteractive
)

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a " + config.ConfigFileName + " configuration file",
		UsageText: "nupack init [--template nuspec|dotnet|gitlab] [--yes] [--force]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "template",
				Aliases: []string{"t"},
				Usage:   "Starting template: " + strings.Join(TemplateNames(), ", "),
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Accept defaults without prompting",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing configuration file",
			},
		},
		Action: runInitCmd,
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command) error {
	path, _, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	prompt := !cmd.Bool("yes") && isInteractive()

	tmpl, err := chooseTemplate(cmd.String("template"), prompt)
	if err != nil {
		return err
	}

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}
	files, err := chooseSyncFiles(DetectSyncFiles(ctx, core.NewOSFileSystem(), rootDir), prompt)
	if err != nil {
		return err
	}

	saver := config.NewConfigSaver(commentedMarshaler{}, nil, nil)
	if err := saver.SaveTo(NewConfig(*tmpl, files), path); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s (%s template)", path, tmpl.Name))
	for _, f := range files {
		printer.PrintFaint(fmt.Sprintf("  sync: %s (currently %s)", f.File, f.Version))
	}
	return nil
}

func chooseTemplate(name string, prompt bool) (*Template, error) {
	if name != "" {
		return GetTemplate(name)
	}
	if !prompt {
		return GetTemplate(AllTemplates()[0].Name)
	}

	options := make([]huh.Option[string], 0, len(AllTemplates()))
	for _, t := range AllTemplates() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s - %s", t.Name, t.Description), t.Name))
	}
	choice, err := newPrompter().Select("Template", "Pick the packaging setup to start from", options)
	if err != nil {
		return nil, err
	}
	return GetTemplate(choice)
}

func chooseSyncFiles(found []SyncCandidate, prompt bool) ([]SyncCandidate, error) {
	if len(found) == 0 || !prompt {
		return found, nil
	}

	names := make([]string, len(found))
	for i, f := range found {
		names[i] = fmt.Sprintf("%s (%s)", f.File, f.Version)
	}
	ok, err := newPrompter().Confirm(
		"Keep these files in sync with the package version?",
		strings.Join(names, ", "),
	)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return found, nil
}
