package initialize

import (
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/nupack/internal/config"
)

// NewConfig builds the configuration for tmpl with sync entries for files.
func NewConfig(tmpl Template, files []SyncCandidate) *config.Config {
	cfg := config.Default()
	cfg.Format = tmpl.Format.String()

	if tmpl.Feed {
		cfg.Source = &config.SourceConfig{
			Name:     config.DefaultSourceName,
			URL:      "https://gitlab.example.com/api/v4/projects/<id>/packages/nuget/index.json",
			Username: "<deploy-token-user>",
		}
	}

	for _, f := range files {
		cfg.Sync = append(cfg.Sync, config.SyncFileConfig{Path: f.File})
	}
	return cfg
}

// commentedMarshaler renders a configuration with an explanatory header.
type commentedMarshaler struct{}

func (commentedMarshaler) Marshal(v any) ([]byte, error) {
	body, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.WriteString("# nupack configuration file\n")
	sb.WriteString("#\n")
	sb.WriteString("# format: nuspec (nuget pack) or csproj (dotnet pack)\n")
	sb.WriteString("# output: directory for the manifest, README.md and the .nupkg\n")
	if cfg, ok := v.(*config.Config); ok && cfg.Source != nil {
		sb.WriteString("# source: keep the password out of this file, export " + config.EnvFeedPassword + "\n")
	}
	if cfg, ok := v.(*config.Config); ok && len(cfg.Sync) > 0 {
		sb.WriteString("# sync: files that receive the package version on generate\n")
	}
	sb.WriteString("\n")
	sb.Write(body)
	return []byte(sb.String()), nil
}

// GenerateConfigWithComments renders the configuration for tmpl and files.
func GenerateConfigWithComments(tmpl Template, files []SyncCandidate) ([]byte, error) {
	return commentedMarshaler{}.Marshal(NewConfig(tmpl, files))
}
