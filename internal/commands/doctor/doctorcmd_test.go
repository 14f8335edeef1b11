package doctor

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/testutils"
	"github.com/urfave/cli/v3"
)

func TestDoctorCmd_Passes(t *testing.T) {
	tmp := t.TempDir()
	tool := filepath.Join(tmp, "nuget.exe")
	testutils.WriteFile(t, tool, "MZ")
	testutils.WriteFile(t, filepath.Join(tmp, "package.json"), `{"version": "1.0.0"}`)

	cfg := config.Default()
	cfg.Tools = &config.ToolsConfig{NuGet: tool}
	cfg.Sync = []config.SyncFileConfig{{Path: "package.json"}}
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	output, err := testutils.CaptureStdout(func() {
		testutils.RunCLITest(t, app, []string{"nupack", "doctor"}, tmp)
	})
	if err != nil {
		t.Fatalf("failed to capture stdout: %v", err)
	}

	for _, want := range []string{"Toolchain: Using nuget at", "Sync: package.json: Current version 1.0.0", "All checks passed"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestDoctorCmd_Errors(t *testing.T) {
	tmp := t.TempDir()
	tool := filepath.Join(tmp, "nuget.exe")
	testutils.WriteFile(t, tool, "MZ")

	cfg := config.Default()
	cfg.Tools = &config.ToolsConfig{NuGet: tool}
	cfg.Source = &config.SourceConfig{URL: "ftp://feed.example"}
	cfg.Sync = []config.SyncFileConfig{{Path: "missing.json"}}
	app := testutils.BuildCLIForTests([]*cli.Command{Run(cfg)})

	var runErr error
	output, _ := testutils.CaptureStdout(func() {
		runErr = testutils.RunCLIInDir(t, app, []string{"nupack", "doctor"}, tmp)
	})
	if runErr == nil || !strings.Contains(runErr.Error(), "found 2 error(s)") {
		t.Errorf("err = %v, want two errors", runErr)
	}
	if !strings.Contains(output, "Invalid source url") {
		t.Errorf("output = %q", output)
	}
}
