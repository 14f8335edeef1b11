package operations

import (
	"context"
	"fmt"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/semver"
)

// GenerateResult reports what a generate run wrote.
type GenerateResult struct {
	Metadata     manifest.Metadata
	ManifestPath string
	ReadmePath   string
	Synced       []SyncChange
	// Warnings are non-fatal findings, such as a version the packer may reject.
	Warnings []string
}

// GenerateOperation writes the manifest and its description file.
type GenerateOperation struct {
	fs     core.FileSystem
	format manifest.Format
	writer *manifest.Writer
	sync   *SyncOperation
}

// NewGenerateOperation creates a generate operation. sync may be nil.
func NewGenerateOperation(fs core.FileSystem, format manifest.Format, opts manifest.ProjectOptions, sync *SyncOperation) *GenerateOperation {
	return &GenerateOperation{
		fs:     fs,
		format: format,
		writer: manifest.NewWriter(fs, opts),
		sync:   sync,
	}
}

// Execute fills defaults into m, writes the manifest into dir and syncs
// the version into the configured project files.
func (op *GenerateOperation) Execute(ctx context.Context, m manifest.Metadata, dir string) (*GenerateResult, error) {
	m, err := ApplyDefaults(ctx, op.fs, m)
	if err != nil {
		return nil, err
	}

	path := ManifestPath(dir, op.format)
	readme, err := op.writer.Write(ctx, op.format, m, path)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{Metadata: m, ManifestPath: path, ReadmePath: readme}

	if !semver.IsValid(m.Version) {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("version %q is not a valid package version; the packer may reject it", m.Version))
	}
	if len(m.ContentFiles) == 0 {
		result.Warnings = append(result.Warnings, "no content files given; the package will be empty")
	}

	if op.sync != nil {
		synced, err := op.sync.Execute(ctx, m.Version)
		result.Synced = synced
		if err != nil {
			return result, err
		}
	}

	return result, nil
}

// Name returns the name of this operation.
func (op *GenerateOperation) Name() string {
	return fmt.Sprintf("generate %s", op.format)
}
