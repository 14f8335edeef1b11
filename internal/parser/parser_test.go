package parser

import (
	"context"
	"testing"

	"github.com/indaco/nupack/internal/core"
)

func TestFormat_IsValid(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, true},
		{FormatYAML, true},
		{FormatTOML, true},
		{FormatMSBuild, true},
		{FormatRaw, true},
		{FormatRegex, true},
		{Format("invalid"), false},
		{Format(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsValid(); got != tt.want {
				t.Errorf("Format(%q).IsValid() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"YAML", FormatYAML},
		{"toml", FormatTOML},
		{" msbuild ", FormatMSBuild},
		{"regex", FormatRegex},
		{"invalid", FormatRaw},
		{"", FormatRaw},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		content string
		field   string
		pattern string
		want    string
		wantErr bool
	}{
		{name: "json", format: FormatJSON, content: `{"version": "1.2.3"}`, field: "version", want: "1.2.3"},
		{name: "json nested", format: FormatJSON, content: `{"package": {"version": "2.0.0"}}`, field: "package.version", want: "2.0.0"},
		{name: "json missing field", format: FormatJSON, content: `{"name": "x"}`, field: "version", wantErr: true},
		{name: "json not a string", format: FormatJSON, content: `{"version": 1}`, field: "version", wantErr: true},
		{name: "json invalid", format: FormatJSON, content: `{"version": `, field: "version", wantErr: true},
		{name: "json no field", format: FormatJSON, content: `{"version": "1"}`, wantErr: true},
		{name: "yaml", format: FormatYAML, content: "name: chart\nversion: 2020.11.18\n", field: "version", want: "2020.11.18"},
		{name: "yaml nested", format: FormatYAML, content: "app:\n  version: \"3.0.0\"\n", field: "app.version", want: "3.0.0"},
		{name: "yaml missing", format: FormatYAML, content: "name: x\n", field: "version", wantErr: true},
		{name: "toml", format: FormatTOML, content: "[package]\nversion = \"0.4.0\"\n", field: "package.version", want: "0.4.0"},
		{name: "toml invalid", format: FormatTOML, content: "[package\n", field: "package.version", wantErr: true},
		{
			name:    "msbuild default property",
			format:  FormatMSBuild,
			content: "<Project>\n  <PropertyGroup>\n    <Version> 1.4.0 </Version>\n  </PropertyGroup>\n</Project>\n",
			want:    "1.4.0",
		},
		{
			name:    "msbuild conditional property",
			format:  FormatMSBuild,
			content: `<Project><PropertyGroup><PackageVersion Condition="'$(X)' == ''">2.1.0</PackageVersion></PropertyGroup></Project>`,
			field:   "PackageVersion",
			want:    "2.1.0",
		},
		{name: "msbuild missing", format: FormatMSBuild, content: "<Project />", wantErr: true},
		{name: "msbuild bad name", format: FormatMSBuild, content: "<Project />", field: "<x>", wantErr: true},
		{name: "raw", format: FormatRaw, content: "  1.0.0\n", want: "1.0.0"},
		{name: "regex", format: FormatRegex, content: `const Version = "1.2.3"`, pattern: `Version = "([^"]+)"`, want: "1.2.3"},
		{name: "regex no group", format: FormatRegex, content: "v1", pattern: `v\d`, wantErr: true},
		{name: "regex no match", format: FormatRegex, content: "nothing", pattern: `v(\d)`, wantErr: true},
		{name: "regex invalid", format: FormatRegex, content: "x", pattern: `(`, wantErr: true},
		{name: "regex empty", format: FormatRegex, content: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			fs.SetFile("/file", []byte(tt.content))

			result, err := NewReader(fs).Read(context.Background(), FileConfig{
				Path:    "/file",
				Format:  tt.format,
				Field:   tt.field,
				Pattern: tt.pattern,
			})

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got version %q", result.Version)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Version != tt.want {
				t.Errorf("got version %q, want %q", result.Version, tt.want)
			}
			if result.Path != "/file" || result.Format != tt.format {
				t.Errorf("unexpected result metadata: %+v", result)
			}
		})
	}
}

func TestReader_Errors(t *testing.T) {
	fs := core.NewMockFileSystem()
	reader := NewReader(fs)
	ctx := context.Background()

	if _, err := reader.Read(ctx, FileConfig{Format: FormatRaw}); err == nil {
		t.Error("expected error for empty path")
	}
	if _, err := reader.Read(ctx, FileConfig{Path: "/x", Format: "ini"}); err == nil {
		t.Error("expected error for invalid format")
	}
	if _, err := reader.Read(ctx, FileConfig{Path: "/missing", Format: FormatRaw}); err == nil {
		t.Error("expected error for missing file")
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	fs.SetFile("/version", []byte("1.0.0"))
	if _, err := reader.ReadVersion(canceled, FileConfig{Path: "/version", Format: FormatRaw}); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestReader_ReadVersion(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/VERSION", []byte("2024.03.07\n"))

	got, err := NewReader(fs).ReadVersion(context.Background(), FileConfig{Path: "/VERSION", Format: FormatRaw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024.03.07" {
		t.Errorf("got %q", got)
	}
}

func TestFormatForFile(t *testing.T) {
	tests := map[string]Format{
		"package.json":          FormatJSON,
		"deploy/Chart.yaml":     FormatYAML,
		"config.yml":            FormatYAML,
		"Cargo.toml":            FormatTOML,
		"src/App/App.csproj":    FormatMSBuild,
		"Directory.Build.props": FormatMSBuild,
		`C:\src\Lib\Lib.fsproj`: FormatMSBuild,
		"build/Version.targets": FormatMSBuild,
		"VERSION":               FormatRaw,
		"docs/version.txt":      FormatRaw,
	}
	for name, want := range tests {
		if got := FormatForFile(name); got != want {
			t.Errorf("FormatForFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestFieldForFile(t *testing.T) {
	tests := map[string]string{
		"package.json":              "version",
		"web/package.json":          "version",
		"vcpkg.json":                "version-string",
		"Cargo.toml":                "package.version",
		"pyproject.toml":            "project.version",
		`src\Directory.Build.props`: "Version",
		"App.csproj":                "Version",
		"appsettings.json":          "version",
		"VERSION":                   "",
	}
	for name, want := range tests {
		if got := FieldForFile(name); got != want {
			t.Errorf("FieldForFile(%q) = %q, want %q", name, got, want)
		}
	}
}
