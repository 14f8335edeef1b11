package nuget

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/runner"
)

const (
	// DefaultNuGet is looked up on PATH when no usable path is configured.
	DefaultNuGet = "nuget"

	// DefaultDotnet is the dotnet CLI looked up on PATH.
	DefaultDotnet = "dotnet"
)

// Toolchain locates the external executables.
type Toolchain struct {
	// NuGetPath is the configured nuget executable. It is used only if it exists.
	NuGetPath string

	// DotnetPath overrides the dotnet CLI.
	DotnetPath string
}

// Executable returns the tool that handles format.
func (t Toolchain) Executable(ctx context.Context, fs core.FileSystem, format manifest.Format) string {
	if format == manifest.FormatProject {
		if strings.TrimSpace(t.DotnetPath) != "" {
			return t.DotnetPath
		}
		return DefaultDotnet
	}

	if strings.TrimSpace(t.NuGetPath) != "" {
		if info, err := fs.Stat(ctx, t.NuGetPath); err == nil && !info.IsDir() {
			return t.NuGetPath
		}
	}
	return DefaultNuGet
}

// BuildOptions tunes the pack invocation.
type BuildOptions struct {
	// OutputDir places the archive explicitly. Empty leaves the tool default.
	OutputDir string
}

// PackCommand builds the pack invocation for the manifest at manifestPath.
// The tool runs in the manifest directory.
func PackCommand(tool string, format manifest.Format, manifestPath string, opts BuildOptions) runner.Command {
	args := []string{"pack", manifestPath}
	if opts.OutputDir != "" {
		if format == manifest.FormatProject {
			args = append(args, "--output", opts.OutputDir)
		} else {
			args = append(args, "-OutputDirectory", opts.OutputDir)
		}
	}
	return runner.Command{
		Path: tool,
		Args: args,
		Dir:  filepath.Dir(manifestPath),
	}
}

// PushRequest describes one upload.
type PushRequest struct {
	Archive string
	// Source is a feed name or URL.
	Source string
	APIKey string
	// ConfigFile is a credential file. When set the API key is not passed.
	ConfigFile string
}

// PushCommand builds the push invocation for format's toolchain.
func PushCommand(tool string, format manifest.Format, req PushRequest) runner.Command {
	apiKey := req.APIKey
	if req.ConfigFile != "" {
		apiKey = ""
	}

	var args []string
	if format == manifest.FormatProject {
		args = []string{"nuget", "push", req.Archive}
		args = appendFlag(args, "--api-key", apiKey)
		args = appendFlag(args, "--source", req.Source)
		args = appendFlag(args, "--configfile", req.ConfigFile)
	} else {
		args = []string{"push", req.Archive}
		args = appendFlag(args, "-ApiKey", apiKey)
		args = appendFlag(args, "-Source", req.Source)
		args = appendFlag(args, "-ConfigFile", req.ConfigFile)
	}

	return runner.Command{
		Path: tool,
		Args: args,
		Dir:  filepath.Dir(req.Archive),
	}
}

func appendFlag(args []string, flag, value string) []string {
	if strings.TrimSpace(value) == "" {
		return args
	}
	return append(args, flag, value)
}
