package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/parser"
)

/* ------------------------------------------------------------------------- */
/* LOAD CONFIG                                                               */
/* ------------------------------------------------------------------------- */

func TestLoadConfig(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		clearEnv(t)
		runInTempDir(t, t.TempDir(), func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.Format != "nuspec" || cfg.Output != DefaultOutput || cfg.File != "" {
				t.Errorf("unexpected defaults: %+v", cfg)
			}
		})
	})

	t.Run("valid yaml file", func(t *testing.T) {
		clearEnv(t)
		dir := writeTempConfig(t, "format: csproj\noutput: build\nauthors: Acme\n")
		runInTempDir(t, dir, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.Format != "csproj" || cfg.Output != "build" || cfg.Authors != "Acme" {
				t.Errorf("unexpected config: %+v", cfg)
			}
			if cfg.File != ConfigFileName {
				t.Errorf("File = %q", cfg.File)
			}
		})
	})

	t.Run("unknown keys rejected", func(t *testing.T) {
		clearEnv(t)
		dir := writeTempConfig(t, "fromat: csproj\n")
		runInTempDir(t, dir, func() {
			_, err := LoadConfigFn()
			checkError(t, err, true)
		})
	})

	t.Run("invalid yaml", func(t *testing.T) {
		clearEnv(t)
		dir := writeTempConfig(t, "format: [unclosed\n")
		runInTempDir(t, dir, func() {
			_, err := LoadConfigFn()
			checkError(t, err, true)
		})
	})

	t.Run("explicit path from env", func(t *testing.T) {
		clearEnv(t)
		dir := writeTempConfig(t, "authors: From Env\n")
		path := filepath.Join(dir, ConfigFileName)
		t.Setenv(EnvConfigPath, path)

		cfg, err := LoadConfigFn()
		checkError(t, err, false)
		if cfg.Authors != "From Env" || cfg.File != path {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := LoadConfigFn()
		checkError(t, err, true)
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvConfigPath, "../../etc/nupack.yaml")

		_, err := LoadConfigFn()
		checkError(t, err, true)
		if !strings.Contains(err.Error(), "path traversal") {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("secrets from env override file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "env-key")
		t.Setenv(EnvFeedPassword, "env-pass")
		dir := writeTempConfig(t, "source:\n  name: internal\n  api-key: file-key\n  password: file-pass\n")
		runInTempDir(t, dir, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.APIKey() != "env-key" || cfg.Source.Password != "env-pass" {
				t.Errorf("env secrets not applied: %+v", cfg.Source)
			}
			if cfg.Source.passwordInFile {
				t.Error("password from env must not be reported as stored in the file")
			}
		})
	})

	t.Run("secrets from env without file", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIKey, "env-key")
		runInTempDir(t, t.TempDir(), func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.APIKey() != "env-key" {
				t.Errorf("APIKey() = %q", cfg.APIKey())
			}
		})
	})
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
format: nuspec
tools:
  nuget: /opt/nuget/nuget.exe
project:
  target-framework: netstandard2.0
  readme: true
source:
  url: https://gitlab.example.com/api/v4/projects/1/packages/nuget/index.json
  username: deploy
  password: secret
  allow-insecure: false
sync:
  - path: package.json
  - path: src/App/App.csproj
    field: PackageVersion
  - path: VERSION.txt
  - path: version.go
    format: regex
    pattern: 'Version = "([^"]+)"'
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Tools.NuGet != "/opt/nuget/nuget.exe" {
		t.Errorf("Tools = %+v", cfg.Tools)
	}
	opts := cfg.ProjectOptions()
	if opts.TargetFramework != "netstandard2.0" || !opts.Readme {
		t.Errorf("ProjectOptions() = %+v", opts)
	}
	if !cfg.Source.passwordInFile {
		t.Error("password read from the file should be flagged")
	}

	feed := cfg.FeedConfig()
	if feed == nil || feed.Key != DefaultSourceName || feed.Username != "deploy" || feed.Password != "secret" {
		t.Errorf("FeedConfig() = %+v", feed)
	}

	want := []parser.FileConfig{
		{Path: "package.json", Format: parser.FormatJSON, Field: "version"},
		{Path: "src/App/App.csproj", Format: parser.FormatMSBuild, Field: "PackageVersion"},
		{Path: "VERSION.txt", Format: parser.FormatRaw},
		{Path: "version.go", Format: parser.FormatRegex, Pattern: `Version = "([^"]+)"`},
	}
	got := cfg.SyncTargets()
	if len(got) != len(want) {
		t.Fatalf("SyncTargets() = %+v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SyncTargets()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Format != "nuspec" || cfg.Output != DefaultOutput {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestConfig_Accessors(t *testing.T) {
	cfg := Default()

	format, err := cfg.ManifestFormat()
	if err != nil || format != manifest.FormatNuspec {
		t.Errorf("ManifestFormat() = %v, %v", format, err)
	}
	if cfg.SourceName() != DefaultSourceName {
		t.Errorf("SourceName() = %q", cfg.SourceName())
	}
	if cfg.FeedConfig() != nil {
		t.Error("FeedConfig() should be nil without a source")
	}
	if cfg.APIKey() != "" {
		t.Error("APIKey() should be empty without a source")
	}

	cfg.Format = "project"
	if format, _ := cfg.ManifestFormat(); format != manifest.FormatProject {
		t.Errorf("ManifestFormat() = %v", format)
	}
	cfg.Format = "zip"
	if _, err := cfg.ManifestFormat(); err == nil {
		t.Error("expected error for unknown format")
	}

	cfg.Source = &SourceConfig{Name: "nightly", URL: "https://feed", Username: "u", AllowInsecure: true}
	feed := cfg.FeedConfig()
	if feed == nil || feed.Key != "nightly" || !feed.AllowInsecure {
		t.Errorf("FeedConfig() = %+v", feed)
	}
}
