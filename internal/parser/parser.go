package parser

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/nupack/internal/core"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/gjson"
)

// DefaultMSBuildProperty is the property read and written in MSBuild files.
const DefaultMSBuildProperty = "Version"

// Reader provides version reading capabilities for multiple file formats.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Read reads a version from a file based on the provided configuration.
func (r *Reader) Read(ctx context.Context, cfg FileConfig) (*Result, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	if !cfg.Format.IsValid() {
		return nil, fmt.Errorf("invalid format: %s", cfg.Format)
	}

	data, err := r.fs.ReadFile(ctx, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", cfg.Path, err)
	}

	var version string
	switch cfg.Format {
	case FormatJSON:
		version, err = readJSON(data, cfg.Path, cfg.Field)
	case FormatYAML:
		version, err = readYAML(data, cfg.Path, cfg.Field)
	case FormatTOML:
		version, err = readTOML(data, cfg.Path, cfg.Field)
	case FormatMSBuild:
		version, err = readMSBuild(data, cfg.Path, cfg.Field)
	case FormatRaw:
		version = strings.TrimSpace(string(data))
	case FormatRegex:
		version, err = readRegex(data, cfg.Path, cfg.Pattern)
	}

	if err != nil {
		return nil, err
	}

	return &Result{
		Version: version,
		Path:    cfg.Path,
		Format:  cfg.Format,
		Field:   cfg.Field,
	}, nil
}

// ReadVersion is a convenience method that reads and returns just the version string.
func (r *Reader) ReadVersion(ctx context.Context, cfg FileConfig) (string, error) {
	result, err := r.Read(ctx, cfg)
	if err != nil {
		return "", err
	}
	return result.Version, nil
}

// readJSON extracts a version using gjson path syntax, which matches the
// sjson paths used when writing.
func readJSON(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for JSON format")
	}
	if !gjson.ValidBytes(data) {
		return "", fmt.Errorf("failed to parse JSON in %q", path)
	}

	value := gjson.GetBytes(data, field)
	if !value.Exists() {
		return "", fmt.Errorf("in file %q: field %q not found", path, field)
	}
	if value.Type != gjson.String {
		return "", fmt.Errorf("field %q in %q is not a string", field, path)
	}

	return value.String(), nil
}

func readYAML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for YAML format")
	}

	var obj map[string]any
	if err := yaml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse YAML in %q: %w", path, err)
	}

	return stringField(obj, path, field)
}

func readTOML(data []byte, path, field string) (string, error) {
	if field == "" {
		return "", fmt.Errorf("field is required for TOML format")
	}

	var obj map[string]any
	if err := toml.Unmarshal(data, &obj); err != nil {
		return "", fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}

	return stringField(obj, path, field)
}

func stringField(obj map[string]any, path, field string) (string, error) {
	value, err := getNestedValue(obj, field)
	if err != nil {
		return "", fmt.Errorf("in file %q: %w", path, err)
	}

	version, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q is not a string", field, path)
	}

	return version, nil
}

var propertyNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.\-]*$`)

// msbuildProperty matches <Name>value</Name>, allowing attributes such as
// Condition on the opening tag.
func msbuildProperty(name string) (*regexp.Regexp, error) {
	if name == "" {
		name = DefaultMSBuildProperty
	}
	if !propertyNameRe.MatchString(name) {
		return nil, fmt.Errorf("invalid MSBuild property name %q", name)
	}
	return regexp.Compile(`<` + name + `(?:\s[^>]*)?>\s*([^<]*?)\s*</` + name + `>`)
}

func readMSBuild(data []byte, path, field string) (string, error) {
	re, err := msbuildProperty(field)
	if err != nil {
		return "", err
	}

	matches := re.FindSubmatch(data)
	if matches == nil {
		return "", fmt.Errorf("no <%s> property found in %q", propertyName(field), path)
	}
	return string(matches[1]), nil
}

func propertyName(field string) string {
	if field == "" {
		return DefaultMSBuildProperty
	}
	return field
}

// readRegex extracts a version using a regex pattern with a capturing group.
func readRegex(data []byte, path, pattern string) (string, error) {
	re, err := compileVersionPattern(pattern)
	if err != nil {
		return "", err
	}

	matches := re.FindSubmatch(data)
	if matches == nil {
		return "", fmt.Errorf("no version match found in %q for pattern %q", path, pattern)
	}

	return string(matches[1]), nil
}

func compileVersionPattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("pattern is required for regex format")
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("regex pattern %q must have a capturing group", pattern)
	}
	return re, nil
}

// getNestedValue retrieves a value from a nested map using dot notation.
// Example: "tool.poetry.version" accesses obj["tool"]["poetry"]["version"]
func getNestedValue(obj map[string]any, field string) (any, error) {
	if field == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object at path %q", strings.Join(parts[:i], "."), part)
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, fmt.Errorf("field %q not found", field)
		}

		current = value
	}

	return current, nil
}
