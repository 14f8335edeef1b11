package nuget

import (
	"context"
	"path/filepath"
	"slices"
	"strings"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/semver"
)

// ArchiveExt is the package archive extension.
const ArchiveExt = ".nupkg"

// skippedDirs are never searched for archives.
var skippedDirs = []string{".git", "node_modules", "obj"}

// Locator finds the archive produced by a build.
type Locator struct {
	fs       core.FileSystem
	maxDepth int
}

// NewLocator creates a Locator that searches at most core.MaxDiscoveryDepth
// directories deep.
func NewLocator(fs core.FileSystem) *Locator {
	return &Locator{fs: fs, maxDepth: core.MaxDiscoveryDepth}
}

// ArchiveName is the file name the packers give an archive.
func ArchiveName(id, version string) string {
	return id + "." + semver.Normalize(version) + ArchiveExt
}

// Find returns the archive for id and version under dir.
//
// It tries the exact archive name in dir, then any archive of id in dir,
// then searches subdirectories. When several archives match, the one
// with the requested version wins, otherwise the highest version.
func (l *Locator) Find(ctx context.Context, dir, id, version string) (string, error) {
	notFound := &ArchiveNotFoundError{Dir: dir, ID: id, Version: version}

	for _, name := range exactNames(id, version) {
		path := filepath.Join(dir, name)
		if info, err := l.fs.Stat(ctx, path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if found := l.scan(ctx, dir, id, 0, false); len(found) > 0 {
		return pickArchive(found, id, version), nil
	}
	if found := l.scan(ctx, dir, id, 0, true); len(found) > 0 {
		return pickArchive(found, id, version), nil
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", notFound
}

func exactNames(id, version string) []string {
	names := []string{ArchiveName(id, version)}
	if raw := id + "." + strings.TrimSpace(version) + ArchiveExt; raw != names[0] {
		names = append(names, raw)
	}
	return names
}

// scan lists archives of id in dir, descending into subdirectories when
// recursive is set.
func (l *Locator) scan(ctx context.Context, dir, id string, depth int, recursive bool) []string {
	if ctx.Err() != nil || depth > l.maxDepth {
		return nil
	}

	entries, err := l.fs.ReadDir(ctx, dir)
	if err != nil {
		return nil
	}

	var found []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			if recursive && !slices.Contains(skippedDirs, name) {
				found = append(found, l.scan(ctx, filepath.Join(dir, name), id, depth+1, true)...)
			}
			continue
		}
		if !recursive || depth > 0 {
			if isArchiveOf(name, id) {
				found = append(found, filepath.Join(dir, name))
			}
		}
	}
	return found
}

// isArchiveOf reports whether name is "<id>.<version>.nupkg" with a
// non-empty version.
func isArchiveOf(name, id string) bool {
	if len(name) <= len(id)+1+len(ArchiveExt) {
		return false
	}
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, strings.ToLower(id)+".") && strings.HasSuffix(lower, ArchiveExt)
}

// archiveVersion extracts the version part of an archive file name.
func archiveVersion(path, id string) string {
	name := filepath.Base(path)
	return name[len(id)+1 : len(name)-len(ArchiveExt)]
}

// pickArchive prefers the requested version, then the highest version.
// Names whose version does not parse rank lowest; ties keep path order.
func pickArchive(paths []string, id, version string) string {
	slices.Sort(paths)

	want := semver.Normalize(version)
	for _, p := range paths {
		if strings.EqualFold(semver.Normalize(archiveVersion(p, id)), want) {
			return p
		}
	}

	best := paths[0]
	bestVer, bestErr := semver.ParseVersion(archiveVersion(best, id))
	for _, p := range paths[1:] {
		v, err := semver.ParseVersion(archiveVersion(p, id))
		if err != nil {
			continue
		}
		if bestErr != nil || v.Compare(bestVer) > 0 {
			best, bestVer, bestErr = p, v, nil
		}
	}
	return best
}
