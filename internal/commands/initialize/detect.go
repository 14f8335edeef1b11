package initialize

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/parser"
	"github.com/indaco/nupack/internal/semver"
)

// SyncCandidate is a project file that already carries a version.
type SyncCandidate struct {
	// File is the path relative to the scanned directory.
	File string

	// Version is the version currently in the file.
	Version string

	// Kind describes the file (e.g., "Node.js (package.json)").
	Kind string
}

var syncDetectors = []struct {
	file string
	kind string
}{
	{"Directory.Build.props", "MSBuild (Directory.Build.props)"},
	{"package.json", "Node.js (package.json)"},
	{"vcpkg.json", "vcpkg (vcpkg.json)"},
	{"Cargo.toml", "Rust (Cargo.toml)"},
	{"pyproject.toml", "Python (pyproject.toml)"},
	{"Chart.yaml", "Helm (Chart.yaml)"},
	{"VERSION", "Plain text (VERSION)"},
	{"version.txt", "Plain text (version.txt)"},
}

// DetectSyncFiles lists the well-known version files in dir whose current
// value parses as a package version.
func DetectSyncFiles(ctx context.Context, fs core.FileSystem, dir string) []SyncCandidate {
	reader := parser.NewReader(fs)

	var found []SyncCandidate
	for _, d := range syncDetectors {
		path := filepath.Join(dir, d.file)
		version, err := reader.ReadVersion(ctx, parser.FileConfig{
			Path:   path,
			Format: parser.FormatForFile(d.file),
			Field:  parser.FieldForFile(d.file),
		})
		if err != nil {
			continue
		}
		version = strings.TrimPrefix(strings.TrimSpace(version), "v")
		if !semver.IsValid(version) {
			continue
		}
		found = append(found, SyncCandidate{File: d.file, Version: version, Kind: d.kind})
	}
	return found
}
