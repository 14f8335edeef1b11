package clix

import (
	"context"

	"github.com/indaco/nupack/internal/cliflags"
	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/operations"
	"github.com/indaco/nupack/internal/printer"
	"github.com/indaco/nupack/internal/tui"
	"github.com/urfave/cli/v3"
)

// NewPrompterFn creates the prompter used by EditMetadata callers.
// Tests replace it.
var NewPrompterFn = tui.NewPrompter

// EditMetadata fills defaults into m and lets the user review them in a
// form. It returns the edited metadata and the chosen format.
func EditMetadata(ctx context.Context, fs core.FileSystem, p tui.Prompter, m manifest.Metadata, format manifest.Format) (manifest.Metadata, manifest.Format, error) {
	m, err := operations.ApplyDefaults(ctx, fs, m)
	if err != nil {
		return m, format, err
	}

	formats := make([]string, len(manifest.Formats))
	for i, f := range manifest.Formats {
		formats[i] = f.String()
	}

	form := &tui.PackageForm{
		ID:          m.ID,
		Version:     m.Version,
		Authors:     m.Authors,
		Description: m.Description,
		Format:      format.String(),
	}
	if err := p.EditPackage(form, formats); err != nil {
		return m, format, err
	}

	chosen, err := manifest.ParseFormat(form.Format)
	if err != nil {
		return m, format, err
	}

	m.ID = form.ID
	m.Version = form.Version
	m.Authors = form.Authors
	m.Description = form.Description
	return m, chosen, nil
}

// ResolveMetadata builds the metadata and format for a package command from
// its flags and arguments. With --interactive on a terminal the values are
// reviewed in a form first.
func ResolveMetadata(ctx context.Context, cmd *cli.Command, cfg *config.Config, fs core.FileSystem) (manifest.Metadata, manifest.Format, error) {
	m := cliflags.Metadata(cmd, cfg)
	format, err := cliflags.Format(cmd, cfg)
	if err != nil {
		return m, format, err
	}

	if !cmd.Bool("interactive") {
		return m, format, nil
	}
	if !tui.IsInteractive() {
		printer.PrintWarning("Not a terminal; ignoring --interactive")
		return m, format, nil
	}
	return EditMetadata(ctx, fs, NewPrompterFn(), m, format)
}
