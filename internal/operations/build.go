package operations

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/nuget"
)

// BuildResult reports the outcome of a build.
type BuildResult struct {
	ManifestPath string
	// Generate is set when the manifest had to be written first.
	Generate *GenerateResult
	// Archive is the package the build produced, when it could be found.
	Archive string
}

// BuildOperation packs a manifest, generating it first when missing.
type BuildOperation struct {
	fs       core.FileSystem
	format   manifest.Format
	service  *nuget.Service
	generate *GenerateOperation
	locator  *nuget.Locator
}

// NewBuildOperation creates a build operation.
func NewBuildOperation(fs core.FileSystem, format manifest.Format, service *nuget.Service, generate *GenerateOperation) *BuildOperation {
	return &BuildOperation{
		fs:       fs,
		format:   format,
		service:  service,
		generate: generate,
		locator:  nuget.NewLocator(fs),
	}
}

// Execute packs the manifest in dir into an archive in dir.
// The tool runs in dir, so dir is made absolute first.
func (op *BuildOperation) Execute(ctx context.Context, m manifest.Metadata, dir string) (*BuildResult, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", dir, err)
	}
	dir = abs
	result := &BuildResult{ManifestPath: ManifestPath(dir, op.format)}

	_, err = op.fs.Stat(ctx, result.ManifestPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		gen, err := op.generate.Execute(ctx, m, dir)
		if err != nil {
			return nil, fmt.Errorf("failed to generate manifest: %w", err)
		}
		result.Generate = gen
		m = gen.Metadata
	case err != nil:
		return nil, fmt.Errorf("manifest %q: %w", result.ManifestPath, err)
	}

	if err := op.service.Build(ctx, op.format, result.ManifestPath, nuget.BuildOptions{OutputDir: dir}); err != nil {
		return result, err
	}

	if strings.TrimSpace(m.ID) != "" {
		if archive, err := op.locator.Find(ctx, dir, m.ID, m.Version); err == nil {
			result.Archive = archive
		}
	}

	return result, nil
}

// Name returns the name of this operation.
func (op *BuildOperation) Name() string {
	return fmt.Sprintf("build %s", op.format)
}
