package parser

import (
	"slices"
	"strings"
)

// Format represents the supported file formats for version sync.
type Format string

const (
	// FormatJSON is for JSON files (package.json, appsettings.json, etc.).
	FormatJSON Format = "json"

	// FormatYAML is for YAML files (Chart.yaml, etc.).
	FormatYAML Format = "yaml"

	// FormatTOML is for TOML files (Cargo.toml, pyproject.toml, etc.).
	FormatTOML Format = "toml"

	// FormatMSBuild is for MSBuild files (*.csproj, Directory.Build.props).
	// Field names the property element, "Version" by default.
	FormatMSBuild Format = "msbuild"

	// FormatRaw is for plain text files where the entire content is the version.
	FormatRaw Format = "raw"

	// FormatRegex is for files requiring regex extraction.
	FormatRegex Format = "regex"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatTOML, FormatMSBuild, FormatRaw, FormatRegex}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	return slices.Contains(Formats, f)
}

// ParseFormat converts a string to a Format, returning FormatRaw as fallback.
func ParseFormat(s string) Format {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f.IsValid() {
		return f
	}
	return FormatRaw
}

// FileConfig describes where a version lives in a specific file.
type FileConfig struct {
	// Path is the file path (absolute or relative).
	Path string

	// Format specifies the file format.
	Format Format

	// Field is the dot-notation path to the version field (JSON/YAML/TOML),
	// or the property element name (MSBuild).
	// Example: "version", "package.version", "PackageVersion"
	Field string

	// Pattern is the regex pattern for regex format.
	// Must contain a capturing group for the version.
	Pattern string
}

// Result represents the result of reading a version from a file.
type Result struct {
	// Version is the extracted version string.
	Version string

	// Path is the file path that was read.
	Path string

	// Format is the format that was used.
	Format Format

	// Field is the field path that was used (for structured formats).
	Field string
}
