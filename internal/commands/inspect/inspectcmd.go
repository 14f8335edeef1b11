// Package inspect implements the "inspect" command.
package inspect

import (
	"context"
	"errors"
	"fmt"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/operations"
	"github.com/indaco/nupack/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "inspect" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show the package ID and version inferred for each file",
		UsageText: "nupack inspect <files...>",
		Action:    runInspectCmd,
	}
}

func runInspectCmd(ctx context.Context, cmd *cli.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("at least one file is required")
	}

	reports, err := operations.Inspect(ctx, core.NewOSFileSystem(), paths)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{r.Path, r.ID, r.Version, string(r.Source)})
	}
	fmt.Println(printer.Table([]string{"File", "ID", "Version", "Source"}, rows))
	return nil
}
