package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/parser"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "YAML Syntax", "Toolchain").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates configuration files and the environment they describe.
type Validator struct {
	fs          core.FileSystem
	cfg         *Config
	rootDir     string
	lookPath    func(file string) (string, error)
	validations []ValidationResult
}

// NewValidator creates a new configuration validator.
// Relative paths in cfg are resolved against rootDir.
func NewValidator(fs core.FileSystem, cfg *Config, rootDir string) *Validator {
	return &Validator{
		fs:          fs,
		cfg:         cfg,
		rootDir:     rootDir,
		lookPath:    exec.LookPath,
		validations: make([]ValidationResult, 0),
	}
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate(ctx context.Context) ([]ValidationResult, error) {
	v.validations = make([]ValidationResult, 0)

	if v.cfg == nil {
		v.cfg = Default()
	}

	v.validateFile(ctx)
	v.validateFormat()
	v.validateOutput(ctx)
	v.validateToolchain(ctx)
	v.validateProject()
	v.validateSource()
	v.validateSync(ctx)

	return v.validations, nil
}

func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

func (v *Validator) resolve(path string) string {
	if filepath.IsAbs(path) || v.rootDir == "" {
		return path
	}
	return filepath.Join(v.rootDir, path)
}

func (v *Validator) validateFile(ctx context.Context) {
	if v.cfg.File == "" {
		v.addValidation("YAML Syntax", true, fmt.Sprintf("No %s file found, using defaults", ConfigFileName), false)
		return
	}
	if _, err := v.fs.Stat(ctx, v.cfg.File); err != nil {
		v.addValidation("YAML Syntax", false, fmt.Sprintf("Failed to access config file: %v", err), false)
		return
	}
	// The config was decoded strictly when it was loaded.
	v.addValidation("YAML Syntax", true, "Configuration file is valid YAML", false)
}

func (v *Validator) validateFormat() {
	format, err := v.cfg.ManifestFormat()
	if err != nil {
		v.addValidation("Manifest Format", false, err.Error(), false)
		return
	}
	v.addValidation("Manifest Format", true, fmt.Sprintf("Manifests are written as %s", format), false)
}

func (v *Validator) validateOutput(ctx context.Context) {
	dir := v.resolve(v.cfg.Output)
	info, err := v.fs.Stat(ctx, dir)
	switch {
	case err != nil && os.IsNotExist(err):
		v.addValidation("Output Directory", true, fmt.Sprintf("%s does not exist yet and will be created", v.cfg.Output), true)
	case err != nil:
		v.addValidation("Output Directory", false, fmt.Sprintf("Cannot access %s: %v", v.cfg.Output, err), false)
	case !info.IsDir():
		v.addValidation("Output Directory", false, fmt.Sprintf("%s is not a directory", v.cfg.Output), false)
	default:
		v.addValidation("Output Directory", true, fmt.Sprintf("Manifests go to %s", v.cfg.Output), false)
	}
}

func (v *Validator) validateToolchain(ctx context.Context) {
	format, err := v.cfg.ManifestFormat()
	if err != nil {
		return
	}

	tools := v.cfg.Tools
	if tools == nil {
		tools = &ToolsConfig{}
	}

	if format == manifest.FormatNuspec && tools.NuGet != "" {
		if _, err := v.fs.Stat(ctx, tools.NuGet); err != nil {
			v.addValidation("Toolchain", true,
				fmt.Sprintf("Configured nuget %q not found, falling back to PATH", tools.NuGet), true)
		} else {
			v.addValidation("Toolchain", true, fmt.Sprintf("Using nuget at %s", tools.NuGet), false)
			return
		}
	}

	tool := "nuget"
	if format == manifest.FormatProject {
		tool = "dotnet"
		if tools.Dotnet != "" {
			tool = tools.Dotnet
		}
	}

	path, err := v.lookPath(tool)
	if err != nil {
		v.addValidation("Toolchain", false,
			fmt.Sprintf("%s not found: install it or set tools in %s", tool, ConfigFileName), false)
		return
	}
	v.addValidation("Toolchain", true, fmt.Sprintf("Using %s", path), false)
}

var frameworkRe = regexp.MustCompile(`^(net\d+\.\d+(-[a-z]+[\d.]*)?|netstandard\d\.\d|netcoreapp\d\.\d|net\d{2,3})$`)

func (v *Validator) validateProject() {
	if v.cfg.Project == nil || v.cfg.Project.TargetFramework == "" {
		return
	}
	tfm := v.cfg.Project.TargetFramework
	if !frameworkRe.MatchString(tfm) {
		v.addValidation("Project", true, fmt.Sprintf("Unrecognized target framework %q", tfm), true)
		return
	}
	v.addValidation("Project", true, fmt.Sprintf("Target framework %s", tfm), false)
}

func (v *Validator) validateSource() {
	s := v.cfg.Source
	if s == nil || (s.URL == "" && s.Username == "" && s.APIKey == "") {
		v.addValidation("Source", true,
			fmt.Sprintf("No source configured, pushes go to the %q feed", v.cfg.SourceName()), true)
		return
	}

	if s.URL != "" {
		u, err := url.Parse(s.URL)
		if err != nil || u.Host == "" || (u.Scheme != "https" && u.Scheme != "http") {
			v.addValidation("Source", false, fmt.Sprintf("Invalid source url %q", s.URL), false)
			return
		}
		if u.Scheme == "http" && !s.AllowInsecure {
			v.addValidation("Source", false, "Plain http sources need allow-insecure: true", false)
			return
		}
	}

	if s.Username != "" && s.URL == "" {
		v.addValidation("Source", false, "Credentials need the source url", false)
		return
	}
	if s.Username != "" && s.Password == "" {
		v.addValidation("Source", true, fmt.Sprintf("No password set; export %s", EnvFeedPassword), true)
		return
	}
	if s.passwordInFile {
		v.addValidation("Source", true,
			fmt.Sprintf("Password stored in %s; prefer %s", ConfigFileName, EnvFeedPassword), true)
		return
	}

	v.addValidation("Source", true, fmt.Sprintf("Pushing to %s", v.cfg.SourceName()), false)
}

func (v *Validator) validateSync(ctx context.Context) {
	reader := parser.NewReader(v.fs)
	for _, target := range v.cfg.SyncTargets() {
		category := "Sync: " + target.Path
		if !target.Format.IsValid() {
			v.addValidation(category, false,
				fmt.Sprintf("Unknown format %q (supported: %s)", target.Format, supportedSyncFormats()), false)
			continue
		}

		target.Path = v.resolve(target.Path)
		version, err := reader.ReadVersion(ctx, target)
		if err != nil {
			v.addValidation(category, false, err.Error(), false)
			continue
		}
		if strings.TrimSpace(version) == "" {
			v.addValidation(category, true, "Version field is empty", true)
			continue
		}
		v.addValidation(category, true, fmt.Sprintf("Current version %s", version), false)
	}
}

func supportedSyncFormats() string {
	names := make([]string, len(parser.Formats))
	for i, f := range parser.Formats {
		names[i] = f.String()
	}
	return strings.Join(names, ", ")
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	return ErrorCount(results) > 0
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
