package nuget

import (
	"context"
	"strings"
	"testing"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
)

func TestToolchain_Executable(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/tools/nuget.exe", []byte("MZ"))
	ctx := context.Background()

	tests := []struct {
		name   string
		tools  Toolchain
		format manifest.Format
		want   string
	}{
		{"configured nuget exists", Toolchain{NuGetPath: "/tools/nuget.exe"}, manifest.FormatNuspec, "/tools/nuget.exe"},
		{"configured nuget missing", Toolchain{NuGetPath: "/missing/nuget.exe"}, manifest.FormatNuspec, DefaultNuGet},
		{"configured nuget is a directory", Toolchain{NuGetPath: "/tools"}, manifest.FormatNuspec, DefaultNuGet},
		{"nuget unset", Toolchain{}, manifest.FormatNuspec, DefaultNuGet},
		{"dotnet default", Toolchain{NuGetPath: "/tools/nuget.exe"}, manifest.FormatProject, DefaultDotnet},
		{"dotnet override", Toolchain{DotnetPath: "/usr/share/dotnet/dotnet"}, manifest.FormatProject, "/usr/share/dotnet/dotnet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tools.Executable(ctx, fs, tt.format); got != tt.want {
				t.Errorf("Executable() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPackCommand(t *testing.T) {
	tests := []struct {
		name   string
		tool   string
		format manifest.Format
		opts   BuildOptions
		want   string
	}{
		{"nuget", "nuget", manifest.FormatNuspec, BuildOptions{}, "nuget pack /work/pkg/Package.nuspec"},
		{"nuget output", "nuget", manifest.FormatNuspec, BuildOptions{OutputDir: "/out"}, "nuget pack /work/pkg/Package.nuspec -OutputDirectory /out"},
		{"dotnet", "dotnet", manifest.FormatProject, BuildOptions{}, "dotnet pack /work/pkg/Package.nuspec"},
		{"dotnet output", "dotnet", manifest.FormatProject, BuildOptions{OutputDir: "/out"}, "dotnet pack /work/pkg/Package.nuspec --output /out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := PackCommand(tt.tool, tt.format, "/work/pkg/Package.nuspec", tt.opts)
			if got := cmd.String(); got != tt.want {
				t.Errorf("PackCommand() = %q, want %q", got, tt.want)
			}
			if cmd.Dir != "/work/pkg" {
				t.Errorf("Dir = %q, want manifest directory", cmd.Dir)
			}
		})
	}
}

func TestPushCommand(t *testing.T) {
	tests := []struct {
		name   string
		format manifest.Format
		req    PushRequest
		want   []string
	}{
		{
			name:   "nuget api key",
			format: manifest.FormatNuspec,
			req:    PushRequest{Archive: "/p/a.1.0.0.nupkg", Source: "gitlab", APIKey: "k"},
			want:   []string{"push", "/p/a.1.0.0.nupkg", "-ApiKey", "k", "-Source", "gitlab"},
		},
		{
			name:   "nuget credential file wins",
			format: manifest.FormatNuspec,
			req:    PushRequest{Archive: "/p/a.1.0.0.nupkg", Source: "gitlab", APIKey: "k", ConfigFile: "/p/nuget.config"},
			want:   []string{"push", "/p/a.1.0.0.nupkg", "-Source", "gitlab", "-ConfigFile", "/p/nuget.config"},
		},
		{
			name:   "dotnet api key",
			format: manifest.FormatProject,
			req:    PushRequest{Archive: "/p/a.1.0.0.nupkg", Source: "https://feed/v3/index.json", APIKey: "k"},
			want:   []string{"nuget", "push", "/p/a.1.0.0.nupkg", "--api-key", "k", "--source", "https://feed/v3/index.json"},
		},
		{
			name:   "dotnet credential file wins",
			format: manifest.FormatProject,
			req:    PushRequest{Archive: "/p/a.1.0.0.nupkg", Source: "feed", APIKey: "k", ConfigFile: "/p/nuget.config"},
			want:   []string{"nuget", "push", "/p/a.1.0.0.nupkg", "--source", "feed", "--configfile", "/p/nuget.config"},
		},
		{
			name:   "archive only",
			format: manifest.FormatNuspec,
			req:    PushRequest{Archive: "/p/a.1.0.0.nupkg"},
			want:   []string{"push", "/p/a.1.0.0.nupkg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := PushCommand("tool", tt.format, tt.req)
			if got, want := strings.Join(cmd.Args, " "), strings.Join(tt.want, " "); got != want {
				t.Errorf("args = %q, want %q", got, want)
			}
			if cmd.Dir != "/p" {
				t.Errorf("Dir = %q, want archive directory", cmd.Dir)
			}
		})
	}
}
