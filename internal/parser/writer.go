package parser

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	yamlparser "github.com/goccy/go-yaml/parser"
	"github.com/indaco/nupack/internal/core"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/sjson"
)

// Writer provides version writing capabilities for multiple file formats.
type Writer struct {
	fs core.FileSystem
}

// NewWriter creates a new Writer with the given filesystem.
func NewWriter(fs core.FileSystem) *Writer {
	return &Writer{fs: fs}
}

// Write writes a version to a file based on the provided configuration.
func (w *Writer) Write(ctx context.Context, cfg FileConfig, version string) error {
	if cfg.Path == "" {
		return fmt.Errorf("file path is required")
	}

	if !cfg.Format.IsValid() {
		return fmt.Errorf("invalid format: %s", cfg.Format)
	}

	if cfg.Format == FormatRaw {
		return w.save(ctx, cfg.Path, []byte(strings.TrimRight(version, "\n")+"\n"))
	}

	data, err := w.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	var updated []byte
	switch cfg.Format {
	case FormatJSON:
		updated, err = writeJSON(data, cfg.Path, cfg.Field, version)
	case FormatYAML:
		updated, err = writeYAML(data, cfg.Path, cfg.Field, version)
	case FormatTOML:
		updated, err = writeTOML(data, cfg.Path, cfg.Field, version)
	case FormatMSBuild:
		updated, err = writeMSBuild(data, cfg.Path, cfg.Field, version)
	case FormatRegex:
		updated, err = writeRegex(data, cfg.Path, cfg.Pattern, version)
	}
	if err != nil {
		return err
	}

	return w.save(ctx, cfg.Path, updated)
}

func (w *Writer) save(ctx context.Context, path string, data []byte) error {
	if err := w.fs.WriteFile(ctx, path, data, core.PermFile); err != nil {
		return fmt.Errorf("failed to write file %q: %w", path, err)
	}
	return nil
}

// writeJSON uses sjson to update only the field, preserving formatting.
func writeJSON(data []byte, path, field, version string) ([]byte, error) {
	if field == "" {
		return nil, fmt.Errorf("field is required for JSON format")
	}

	updated, err := sjson.SetBytes(data, field, version)
	if err != nil {
		return nil, fmt.Errorf("failed to set version in %q: %w", path, err)
	}

	if len(updated) > 0 && updated[len(updated)-1] != '\n' {
		updated = append(updated, '\n')
	}
	return updated, nil
}

// writeYAML replaces an existing field in place, keeping comments and key
// order. Missing fields are created by re-encoding the document.
func writeYAML(data []byte, path, field, version string) ([]byte, error) {
	if field == "" {
		return nil, fmt.Errorf("field is required for YAML format")
	}

	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}
	if obj == nil {
		obj = make(map[string]any)
	}

	if _, err := getNestedValue(obj, field); err == nil {
		file, err := yamlparser.ParseBytes(data, yamlparser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML in %q: %w", path, err)
		}
		yamlPath, err := yaml.PathString("$." + field)
		if err != nil {
			return nil, fmt.Errorf("invalid field %q: %w", field, err)
		}
		node, err := yaml.ValueToNode(version)
		if err != nil {
			return nil, fmt.Errorf("failed to encode version: %w", err)
		}
		if err := yamlPath.ReplaceWithNode(file, node); err != nil {
			return nil, fmt.Errorf("failed to set version in %q: %w", path, err)
		}
		out := file.String()
		if !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return []byte(out), nil
	}

	if err := setNestedValue(obj, field, version); err != nil {
		return nil, fmt.Errorf("in file %q: %w", path, err)
	}
	updated, err := yaml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal YAML for %q: %w", path, err)
	}
	return updated, nil
}

func writeTOML(data []byte, path, field, version string) ([]byte, error) {
	if field == "" {
		return nil, fmt.Errorf("field is required for TOML format")
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}
	if obj == nil {
		obj = make(map[string]any)
	}

	if err := setNestedValue(obj, field, version); err != nil {
		return nil, fmt.Errorf("in file %q: %w", path, err)
	}

	updated, err := toml.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TOML for %q: %w", path, err)
	}
	return updated, nil
}

// writeMSBuild replaces the value of the first matching property element.
func writeMSBuild(data []byte, path, field, version string) ([]byte, error) {
	re, err := msbuildProperty(field)
	if err != nil {
		return nil, err
	}

	loc := re.FindSubmatchIndex(data)
	if loc == nil {
		return nil, fmt.Errorf("no <%s> property found in %q", propertyName(field), path)
	}
	return replaceSpan(data, loc[2], loc[3], version), nil
}

// writeRegex replaces the first capturing group of every match.
func writeRegex(data []byte, path, pattern, version string) ([]byte, error) {
	re, err := compileVersionPattern(pattern)
	if err != nil {
		return nil, err
	}

	matches := re.FindAllSubmatchIndex(data, -1)
	if len(matches) == 0 {
		return nil, fmt.Errorf("pattern %q does not match contents of %q", pattern, path)
	}

	// Replace from the end so earlier offsets stay valid.
	updated := data
	for i := len(matches) - 1; i >= 0; i-- {
		start, end := matches[i][2], matches[i][3]
		if start < 0 {
			continue
		}
		updated = replaceSpan(updated, start, end, version)
	}
	return updated, nil
}

func replaceSpan(data []byte, start, end int, value string) []byte {
	out := make([]byte, 0, len(data)-(end-start)+len(value))
	out = append(out, data[:start]...)
	out = append(out, value...)
	out = append(out, data[end:]...)
	return out
}

// setNestedValue sets a value in a nested map using dot notation.
// Example: "tool.poetry.version" sets obj["tool"]["poetry"]["version"] = value
func setNestedValue(obj map[string]any, field string, value any) error {
	if field == "" {
		return fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := obj

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]

		next, exists := current[part]
		if !exists {
			newMap := make(map[string]any)
			current[part] = newMap
			current = newMap
			continue
		}

		nextMap, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("field %q is not an object at path %q", strings.Join(parts[:i+1], "."), part)
		}

		current = nextMap
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// Exists checks if a file exists at the given path.
func (w *Writer) Exists(ctx context.Context, path string) bool {
	_, err := w.fs.Stat(ctx, path)
	return err == nil
}

// ReadWriter combines Reader and Writer functionality.
type ReadWriter struct {
	*Reader
	*Writer
}

// NewReadWriter creates a new ReadWriter with the given filesystem.
func NewReadWriter(fs core.FileSystem) *ReadWriter {
	return &ReadWriter{
		Reader: NewReader(fs),
		Writer: NewWriter(fs),
	}
}

// FieldForFile returns the usual version field for well-known files.
func FieldForFile(filename string) string {
	fields := map[string]string{
		"package.json":          "version",
		"vcpkg.json":            "version-string",
		"Cargo.toml":            "package.version",
		"pyproject.toml":        "project.version",
		"Chart.yaml":            "version",
		"Directory.Build.props": DefaultMSBuildProperty,
	}

	base := filename
	if i := strings.LastIndexAny(filename, `/\`); i >= 0 {
		base = filename[i+1:]
	}
	if field, ok := fields[base]; ok {
		return field
	}

	switch FormatForFile(filename) {
	case FormatMSBuild:
		return DefaultMSBuildProperty
	case FormatRaw:
		return ""
	default:
		return "version"
	}
}

// FormatForFile detects the format based on file extension or name.
func FormatForFile(filename string) Format {
	lower := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lower, ".toml"):
		return FormatTOML
	case strings.HasSuffix(lower, ".csproj"), strings.HasSuffix(lower, ".fsproj"),
		strings.HasSuffix(lower, ".vbproj"), strings.HasSuffix(lower, ".props"),
		strings.HasSuffix(lower, ".targets"):
		return FormatMSBuild
	default:
		return FormatRaw
	}
}
