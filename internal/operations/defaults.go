package operations

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/inference"
	"github.com/indaco/nupack/internal/manifest"
)

// ApplyDefaults fills a blank ID and version from the first content file and
// makes every content path absolute. Explicit values are never replaced.
func ApplyDefaults(ctx context.Context, fs core.FileSystem, m manifest.Metadata) (manifest.Metadata, error) {
	files := make([]string, 0, len(m.ContentFiles))
	for _, f := range m.ContentFiles {
		if strings.TrimSpace(f) == "" {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			return m, fmt.Errorf("failed to resolve %q: %w", f, err)
		}
		info, err := fs.Stat(ctx, abs)
		if err != nil {
			return m, fmt.Errorf("content file %q: %w", f, err)
		}
		if info.IsDir() {
			return m, fmt.Errorf("content file %q is a directory", f)
		}
		files = append(files, abs)
	}
	m.ContentFiles = files

	if len(files) == 0 {
		return m, nil
	}

	first := files[0]
	if strings.TrimSpace(m.ID) == "" {
		m.ID = inference.DefaultID(first)
	}
	if strings.TrimSpace(m.Version) == "" {
		m.Version = inference.NewInferrer(fs).InferFile(ctx, first).Version
	}

	return m, nil
}

// ManifestPath returns the manifest location for format inside dir.
func ManifestPath(dir string, format manifest.Format) string {
	return filepath.Join(dir, format.DefaultFileName())
}

// FileReport is the inferred metadata of one content file.
type FileReport struct {
	Path    string
	ID      string
	Version string
	Source  inference.Source
}

// Inspect infers the ID and version of every path.
func Inspect(ctx context.Context, fs core.FileSystem, paths []string) ([]FileReport, error) {
	inf := inference.NewInferrer(fs)
	reports := make([]FileReport, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, err := fs.Stat(ctx, p); err != nil {
			return nil, fmt.Errorf("content file %q: %w", p, err)
		}
		res := inf.InferFile(ctx, p)
		reports = append(reports, FileReport{
			Path:    p,
			ID:      inference.DefaultID(p),
			Version: res.Version,
			Source:  res.Source,
		})
	}
	return reports, nil
}
