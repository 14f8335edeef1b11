package inference

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/indaco/nupack/internal/core"
)

// VersionLayout is the date-coded version format used by the heuristic and
// timestamp tiers.
const VersionLayout = "2006.01.02"

// Source identifies which tier produced a version.
type Source string

const (
	// SourceVersionResource means the value came from an embedded PE version resource.
	SourceVersionResource Source = "version-resource"

	// SourceBootImage means the value came from a date found in a boot-image header.
	SourceBootImage Source = "boot-image"

	// SourceTimestamp means the fallback timestamp was used.
	SourceTimestamp Source = "timestamp"
)

// Result is the outcome of an inference run.
type Result struct {
	Version string
	Source  Source
}

var (
	binaryExtensions    = []string{".dll", ".exe"}
	bootImageExtensions = []string{".pdi"}
)

// Inferrer runs the tiered version inference against a filesystem.
type Inferrer struct {
	fs core.FileSystem
}

// NewInferrer creates an Inferrer. A nil fs uses the OS filesystem.
func NewInferrer(fs core.FileSystem) *Inferrer {
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &Inferrer{fs: fs}
}

// Infer returns a version for the file called name whose bytes live at path.
// The result is never empty.
func (i *Inferrer) Infer(ctx context.Context, name, path string, fallback time.Time) string {
	return i.Detect(ctx, name, path, fallback).Version
}

// Detect is Infer that also reports which tier answered.
func (i *Inferrer) Detect(ctx context.Context, name, path string, fallback time.Time) Result {
	ext := strings.ToLower(filepath.Ext(name))

	if slices.Contains(binaryExtensions, ext) {
		if v, ok := i.versionResource(ctx, path); ok {
			return Result{Version: v, Source: SourceVersionResource}
		}
	}

	if slices.Contains(bootImageExtensions, ext) {
		if v, ok := i.bootImageDate(ctx, path); ok {
			return Result{Version: v, Source: SourceBootImage}
		}
	}

	return Result{Version: fallback.Format(VersionLayout), Source: SourceTimestamp}
}

// InferFile infers a version for path, using the file's modification time
// as the fallback. When the file cannot be stat'ed, now is used instead.
func (i *Inferrer) InferFile(ctx context.Context, path string) Result {
	fallback := time.Now()
	if info, err := i.fs.Stat(ctx, path); err == nil {
		fallback = info.ModTime()
	}
	return i.Detect(ctx, filepath.Base(path), path, fallback)
}

// DefaultID derives a package identifier from a file name: the base name
// without its extension.
func DefaultID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
