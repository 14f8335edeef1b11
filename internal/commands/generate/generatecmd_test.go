package generate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/testutils"
	"github.com/urfave/cli/v3"
)

func TestGenerateCmd_Nuspec(t *testing.T) {
	tmp := t.TempDir()
	testutils.WriteFile(t, filepath.Join(tmp, "boot.pdi"), "header Nov 18 2020 trailer")
	testutils.WriteFile(t, filepath.Join(tmp, "VERSION"), "0.0.0\n")

	cfg := config.Default()
	cfg.Authors = "Acme"
	cfg.Sync = []config.SyncFileConfig{{Path: "VERSION"}}
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"nupack", "generate", "--id", "Acme.Boot", "boot.pdi"}, tmp)
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "Package.nuspec"))
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	for _, want := range []string{"<id>Acme.Boot</id>", "<version>2020.11.18</version>", "<authors>Acme</authors>", "<readme>README.md</readme>"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("manifest missing %q", want)
		}
	}

	readme, err := os.ReadFile(filepath.Join(tmp, "README.md"))
	if err != nil {
		t.Fatalf("README.md not written: %v", err)
	}
	if !strings.Contains(string(readme), "- boot.pdi") {
		t.Errorf("README.md = %q", readme)
	}

	version, _ := os.ReadFile(filepath.Join(tmp, "VERSION"))
	if string(version) != "2020.11.18\n" {
		t.Errorf("VERSION = %q, want synced version", version)
	}

	if !strings.Contains(output, "Generated") || !strings.Contains(output, "Synced version 2020.11.18") {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestGenerateCmd_ProjectToOutputDir(t *testing.T) {
	tmp := t.TempDir()
	testutils.WriteFile(t, filepath.Join(tmp, "tool.bin"), "payload")

	app := testutils.BuildCLIForTests([]*cli.Command{Run(config.Default())})

	_, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"nupack", "generate", "-f", "csproj", "-o", "dist", "--version", "1.0.0", "tool.bin"}, tmp)
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tmp, "dist", "Package.csproj"))
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	if !strings.Contains(string(data), "<PackageId>tool</PackageId>") {
		t.Errorf("manifest = %s", data)
	}
}

func TestGenerateCmd_MissingMetadata(t *testing.T) {
	tmp := t.TempDir()
	app := testutils.BuildCLIForTests([]*cli.Command{Run(config.Default())})

	var err error
	_, _ = testutils.CaptureStdout(func() {
		err = testutils.RunCLIInDir(t, app, []string{"nupack", "generate"}, tmp)
	})
	if err == nil || !strings.Contains(err.Error(), "missing required fields: id, version") {
		t.Fatalf("err = %v, want validation error", err)
	}
	if _, statErr := os.Stat(filepath.Join(tmp, "Package.nuspec")); statErr == nil {
		t.Error("no manifest may be written for invalid metadata")
	}
}

func TestGenerateCmd_WarnsOnOddVersion(t *testing.T) {
	tmp := t.TempDir()
	app := testutils.BuildCLIForTests([]*cli.Command{Run(config.Default())})

	output, _ := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"nupack", "generate", "--id", "x", "--version", "latest"}, tmp)
	})
	if !strings.Contains(output, `version "latest" is not a valid package version`) {
		t.Errorf("output = %q", output)
	}
}
