package manifest

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/indaco/nupack/internal/core"
)

// Writer persists manifests and their description file.
type Writer struct {
	fs   core.FileSystem
	opts ProjectOptions
}

// NewWriter creates a Writer. A nil fs uses the OS filesystem.
func NewWriter(fs core.FileSystem, opts ProjectOptions) *Writer {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &Writer{fs: fs, opts: opts}
}

// Write validates m, writes README.md next to manifestPath and then the
// manifest itself. It returns the path of the description file.
func (w *Writer) Write(ctx context.Context, format Format, m Metadata, manifestPath string) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	if !format.IsValid() {
		return "", fmt.Errorf("invalid format: %s", format)
	}

	dir := filepath.Dir(manifestPath)
	if err := w.fs.MkdirAll(ctx, dir, core.PermDir); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	readmePath := filepath.Join(dir, ReadmeFileName)
	if err := w.fs.WriteFile(ctx, readmePath, []byte(Description(m)), core.PermFile); err != nil {
		return "", fmt.Errorf("failed to write description %q: %w", readmePath, err)
	}

	doc := Render(format, m, w.opts)
	if err := w.fs.WriteFile(ctx, manifestPath, []byte(doc), core.PermFile); err != nil {
		return "", fmt.Errorf("failed to write manifest %q: %w", manifestPath, err)
	}

	return readmePath, nil
}

// WriteFeedConfig renders c into dir and returns the file path.
// The file holds a clear-text password and is written owner-only.
func (w *Writer) WriteFeedConfig(ctx context.Context, c FeedConfig, dir string) (string, error) {
	doc, err := RenderFeedConfig(c)
	if err != nil {
		return "", err
	}

	if err := w.fs.MkdirAll(ctx, dir, core.PermDir); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, FeedConfigFileName)
	if err := w.fs.WriteFile(ctx, path, []byte(doc), core.PermOwnerRW); err != nil {
		return "", fmt.Errorf("failed to write feed config %q: %w", path, err)
	}
	return path, nil
}
