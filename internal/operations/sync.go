package operations

import (
	"context"
	"fmt"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/parser"
)

// SyncChange records one file the version was written to.
type SyncChange struct {
	Path string
	// Previous is the version the file held before, empty if unknown.
	Previous string
}

// SyncOperation writes the package version into project files.
type SyncOperation struct {
	rw      *parser.ReadWriter
	targets []parser.FileConfig
}

// NewSyncOperation creates a sync operation for targets.
func NewSyncOperation(fs core.FileSystem, targets []parser.FileConfig) *SyncOperation {
	return &SyncOperation{rw: parser.NewReadWriter(fs), targets: targets}
}

// Execute writes version to every target and returns what changed.
// It stops at the first failure.
func (op *SyncOperation) Execute(ctx context.Context, version string) ([]SyncChange, error) {
	changes := make([]SyncChange, 0, len(op.targets))
	for _, t := range op.targets {
		if err := ctx.Err(); err != nil {
			return changes, err
		}

		change := SyncChange{Path: t.Path}
		if op.rw.Exists(ctx, t.Path) {
			if prev, err := op.rw.ReadVersion(ctx, t); err == nil {
				change.Previous = prev
			}
		}

		if err := op.rw.Write(ctx, t, version); err != nil {
			return changes, fmt.Errorf("failed to sync version to %s: %w", t.Path, err)
		}
		changes = append(changes, change)
	}
	return changes, nil
}

// Name returns the name of this operation.
func (op *SyncOperation) Name() string {
	return "sync"
}
