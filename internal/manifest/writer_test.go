package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/nupack/internal/core"
)

func TestWriter_Write(t *testing.T) {
	fs := core.NewMockFileSystem()
	w := NewWriter(fs, ProjectOptions{})

	readme, err := w.Write(context.Background(), FormatNuspec, sampleMetadata(), "/out/Package.nuspec")
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if readme != "/out/README.md" {
		t.Errorf("readme path = %q", readme)
	}

	desc, ok := fs.GetFile("/out/README.md")
	if !ok || !strings.HasPrefix(string(desc), "# Acme.Firmware") {
		t.Errorf("README.md = %q", desc)
	}

	doc, ok := fs.GetFile("/out/Package.nuspec")
	if !ok || string(doc) != RenderNuspec(sampleMetadata()) {
		t.Errorf("manifest content mismatch:\n%s", doc)
	}
}

func TestWriter_Write_ValidatesBeforeIO(t *testing.T) {
	fs := core.NewMockFileSystem()
	w := NewWriter(fs, ProjectOptions{})

	_, err := w.Write(context.Background(), FormatProject, Metadata{ID: "x"}, "/out/Package.csproj")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Write() error = %v, want *ValidationError", err)
	}
	if _, ok := fs.GetFile("/out/README.md"); ok {
		t.Error("nothing should be written when validation fails")
	}
}

func TestWriter_Write_PropagatesWriteError(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.WriteErr = errors.New("disk full")

	_, err := NewWriter(fs, ProjectOptions{}).Write(context.Background(), FormatNuspec, sampleMetadata(), "/out/Package.nuspec")
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Write() error = %v", err)
	}
}

func TestWriter_WriteFeedConfig(t *testing.T) {
	fs := core.NewMockFileSystem()
	w := NewWriter(fs, ProjectOptions{})

	path, err := w.WriteFeedConfig(context.Background(), FeedConfig{Key: "k", URL: "https://x", Username: "u", Password: "p"}, "/pkgs")
	if err != nil {
		t.Fatalf("WriteFeedConfig() error = %v", err)
	}
	if path != "/pkgs/nuget.config" {
		t.Errorf("path = %q", path)
	}
	if _, ok := fs.GetFile(path); !ok {
		t.Error("feed config was not written")
	}
}

func TestWriter_WriteFeedConfig_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "creds", "nested")
	w := NewWriter(core.NewOSFileSystem(), ProjectOptions{})

	path, err := w.WriteFeedConfig(context.Background(), FeedConfig{Key: "k", URL: "https://x", Username: "u", Password: "p"}, dir)
	if err != nil {
		t.Fatalf("WriteFeedConfig() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("feed config not written: %v", err)
	}
}
