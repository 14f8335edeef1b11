package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/nupack/internal/core"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/indaco/nupack/internal/parser"
)

const (
	// ConfigFileName is the project configuration file.
	ConfigFileName = ".nupack.yaml"

	// EnvConfigPath overrides the configuration file location.
	EnvConfigPath = "NUPACK_CONFIG"

	// EnvAPIKey supplies the feed API key.
	EnvAPIKey = "NUPACK_API_KEY"

	// EnvFeedPassword supplies the feed password.
	EnvFeedPassword = "NUPACK_FEED_PASSWORD"

	// DefaultOutput is the manifest directory used when none is configured.
	DefaultOutput = "."

	// DefaultSourceName is the feed name pushes go to when none is configured.
	DefaultSourceName = "gitlab"
)

// ToolsConfig locates the external toolchain.
type ToolsConfig struct {
	NuGet  string `yaml:"nuget,omitempty"`
	Dotnet string `yaml:"dotnet,omitempty"`
}

// ProjectConfig tunes project manifests.
type ProjectConfig struct {
	TargetFramework string `yaml:"target-framework,omitempty"`
	Readme          bool   `yaml:"readme,omitempty"`
}

// SourceConfig describes the feed packages are pushed to.
type SourceConfig struct {
	Name          string `yaml:"name,omitempty"`
	URL           string `yaml:"url,omitempty"`
	Username      string `yaml:"username,omitempty"`
	Password      string `yaml:"password,omitempty"`
	APIKey        string `yaml:"api-key,omitempty"`
	AllowInsecure bool   `yaml:"allow-insecure,omitempty"`

	// passwordInFile records that the password came from the file rather
	// than the environment.
	passwordInFile bool
}

// SyncFileConfig is a project file that receives the package version.
type SyncFileConfig struct {
	Path    string `yaml:"path"`
	Format  string `yaml:"format,omitempty"`
	Field   string `yaml:"field,omitempty"`
	Pattern string `yaml:"pattern,omitempty"`
}

// Config is the main configuration structure for nupack.
type Config struct {
	Format  string           `yaml:"format,omitempty"`
	Output  string           `yaml:"output,omitempty"`
	Authors string           `yaml:"authors,omitempty"`
	Theme   string           `yaml:"theme,omitempty"`
	Tools   *ToolsConfig     `yaml:"tools,omitempty"`
	Project *ProjectConfig   `yaml:"project,omitempty"`
	Source  *SourceConfig    `yaml:"source,omitempty"`
	Sync    []SyncFileConfig `yaml:"sync,omitempty"`

	// File is the path the configuration was read from. Empty for defaults.
	File string `yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Format: manifest.FormatNuspec.String(),
		Output: DefaultOutput,
	}
}

// ManifestFormat returns the configured manifest format.
func (c *Config) ManifestFormat() (manifest.Format, error) {
	if strings.TrimSpace(c.Format) == "" {
		return manifest.FormatNuspec, nil
	}
	return manifest.ParseFormat(c.Format)
}

// ProjectOptions returns the project manifest options.
func (c *Config) ProjectOptions() manifest.ProjectOptions {
	if c.Project == nil {
		return manifest.ProjectOptions{}
	}
	return manifest.ProjectOptions{
		TargetFramework: c.Project.TargetFramework,
		Readme:          c.Project.Readme,
	}
}

// SourceName returns the configured feed name or DefaultSourceName.
func (c *Config) SourceName() string {
	if c.Source != nil && strings.TrimSpace(c.Source.Name) != "" {
		return c.Source.Name
	}
	return DefaultSourceName
}

// FeedConfig returns credentials for the configured source, or nil when
// the source has no URL and username.
func (c *Config) FeedConfig() *manifest.FeedConfig {
	s := c.Source
	if s == nil || strings.TrimSpace(s.URL) == "" || strings.TrimSpace(s.Username) == "" {
		return nil
	}
	return &manifest.FeedConfig{
		Key:           c.SourceName(),
		URL:           s.URL,
		Username:      s.Username,
		Password:      s.Password,
		AllowInsecure: s.AllowInsecure,
	}
}

// APIKey returns the configured API key.
func (c *Config) APIKey() string {
	if c.Source == nil {
		return ""
	}
	return c.Source.APIKey
}

// SyncTargets resolves the sync list, filling in format and field from
// the file name where they are omitted.
func (c *Config) SyncTargets() []parser.FileConfig {
	targets := make([]parser.FileConfig, 0, len(c.Sync))
	for _, s := range c.Sync {
		format := parser.FormatForFile(s.Path)
		if s.Format != "" {
			format = parser.Format(strings.ToLower(s.Format))
		}
		field := s.Field
		if field == "" && s.Pattern == "" {
			field = parser.FieldForFile(s.Path)
		}
		targets = append(targets, parser.FileConfig{
			Path:    s.Path,
			Format:  format,
			Field:   field,
			Pattern: s.Pattern,
		})
	}
	return targets
}

// FileOpener abstracts file opening operations for testability.
type FileOpener interface {
	OpenFile(name string, flag int, perm os.FileMode) (*os.File, error)
}

// FileWriter abstracts file writing operations for testability.
type FileWriter interface {
	WriteFile(file *os.File, data []byte) (int, error)
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler  core.Marshaler
	fileOpener FileOpener
	fileWriter FileWriter
}

type osFileOpener struct{}

func (o *osFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	return os.OpenFile(name, flag, perm)
}

type osFileWriter struct{}

func (w *osFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	return file.Write(data)
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, opener FileOpener, writer FileWriter) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if opener == nil {
		opener = &osFileOpener{}
	}
	if writer == nil {
		writer = &osFileWriter{}
	}
	return &ConfigSaver{
		marshaler:  marshaler,
		fileOpener: opener,
		fileWriter: writer,
	}
}

// Save saves the configuration to the default config file.
func (s *ConfigSaver) Save(cfg *Config) error {
	return s.SaveTo(cfg, ConfigFileName)
}

// SaveTo saves the configuration to the specified file path.
func (s *ConfigSaver) SaveTo(cfg *Config, configFile string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	file, err := s.fileOpener.OpenFile(configFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open config file %q: %w", configFile, err)
	}
	defer file.Close()

	if _, err := s.fileWriter.WriteFile(file, data); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

var defaultConfigSaver = NewConfigSaver(nil, nil, nil)

// LoadConfigFn and SaveConfigFn are package hooks so commands can be
// tested without touching the working directory.
var (
	LoadConfigFn = loadConfig
	SaveConfigFn = func(cfg *Config) error {
		return defaultConfigSaver.Save(cfg)
	}
)

// ConfigPath returns the configuration file location and whether it was
// set explicitly through the environment.
func ConfigPath() (string, bool, error) {
	envPath := os.Getenv(EnvConfigPath)
	if envPath == "" {
		return ConfigFileName, false, nil
	}

	cleanPath := filepath.Clean(envPath)
	// Reject relative paths with traversal (use absolute paths instead)
	if !filepath.IsAbs(cleanPath) && strings.Contains(cleanPath, "..") {
		return "", false, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvConfigPath)
	}
	return cleanPath, true, nil
}

func loadConfig() (*Config, error) {
	path, explicit, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			cfg := Default()
			applyEnv(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	cfg.File = path
	applyEnv(cfg)

	return cfg, nil
}

// Parse decodes a configuration document strictly and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	if cfg.Format == "" {
		cfg.Format = manifest.FormatNuspec.String()
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Source != nil && cfg.Source.Password != "" {
		cfg.Source.passwordInFile = true
	}

	return &cfg, nil
}

// applyEnv layers secrets from the environment over the file values.
func applyEnv(cfg *Config) {
	apiKey := os.Getenv(EnvAPIKey)
	password := os.Getenv(EnvFeedPassword)
	if apiKey == "" && password == "" {
		return
	}

	if cfg.Source == nil {
		cfg.Source = &SourceConfig{}
	}
	if apiKey != "" {
		cfg.Source.APIKey = apiKey
	}
	if password != "" {
		cfg.Source.Password = password
		cfg.Source.passwordInFile = false
	}
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW
