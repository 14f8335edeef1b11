// Package cliflags defines the flags shared by the package commands.
package cliflags

import (
	"strings"

	"github.com/indaco/nupack/internal/config"
	"github.com/indaco/nupack/internal/manifest"
	"github.com/urfave/cli/v3"
)

// MetadataFlags returns the package metadata flags.
func MetadataFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "id",
			Usage: "Package ID (default: first file name without extension)",
		},
		&cli.StringFlag{
			Name:  "version",
			Usage: "Package version (default: inferred from the first file)",
		},
		&cli.StringFlag{
			Name:  "authors",
			Usage: "Package authors (default: config authors, else \"Unknown\")",
		},
		&cli.StringFlag{
			Name:  "description",
			Usage: "Package description (default: generated from the file list)",
		},
	}
}

// ManifestFlags returns the flags that locate and select the manifest.
func ManifestFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Manifest format: nuspec or csproj",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Directory the manifest and package are written to",
		},
	}
}

// InteractiveFlag enables the metadata form.
func InteractiveFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "interactive",
		Aliases: []string{"i"},
		Usage:   "Edit the package metadata in a form before writing",
	}
}

// QuietFlag hides tool output behind a spinner.
func QuietFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Hide tool output unless the tool fails",
	}
}

// Metadata builds package metadata from the flags, the configuration and
// the command arguments, which name the content files.
func Metadata(cmd *cli.Command, cfg *config.Config) manifest.Metadata {
	authors := cmd.String("authors")
	if strings.TrimSpace(authors) == "" {
		authors = cfg.Authors
	}
	return manifest.Metadata{
		ID:           strings.TrimSpace(cmd.String("id")),
		Version:      strings.TrimSpace(cmd.String("version")),
		Authors:      authors,
		Description:  cmd.String("description"),
		ContentFiles: cmd.Args().Slice(),
	}
}

// Format returns the manifest format from the flag, else the configuration.
func Format(cmd *cli.Command, cfg *config.Config) (manifest.Format, error) {
	if f := cmd.String("format"); f != "" {
		return manifest.ParseFormat(f)
	}
	return cfg.ManifestFormat()
}

// OutputDir returns the output directory from the flag, else the configuration.
func OutputDir(cmd *cli.Command, cfg *config.Config) string {
	if dir := strings.TrimSpace(cmd.String("output")); dir != "" {
		return dir
	}
	if strings.TrimSpace(cfg.Output) != "" {
		return cfg.Output
	}
	return config.DefaultOutput
}

// FeedFlags returns the flags describing a feed that needs credentials.
func FeedFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "feed-url",
			Usage: "Feed service index URL",
		},
		&cli.StringFlag{
			Name:  "username",
			Usage: "Feed user name",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "Feed password or token (prefer $" + config.EnvFeedPassword + ")",
		},
		&cli.BoolFlag{
			Name:  "allow-insecure",
			Usage: "Allow connecting to a plain-HTTP feed",
		},
	}
}

// Feed returns the feed credentials from the flags layered over the
// configured source, or nil when no URL and user name are known.
func Feed(cmd *cli.Command, cfg *config.Config) *manifest.FeedConfig {
	feed := cfg.FeedConfig()
	if feed == nil {
		feed = &manifest.FeedConfig{Key: cfg.SourceName()}
		if cfg.Source != nil {
			feed.URL = cfg.Source.URL
			feed.Username = cfg.Source.Username
			feed.Password = cfg.Source.Password
			feed.AllowInsecure = cfg.Source.AllowInsecure
		}
	}

	if v := cmd.String("feed-url"); v != "" {
		feed.URL = v
	}
	if v := cmd.String("username"); v != "" {
		feed.Username = v
	}
	if v := cmd.String("password"); v != "" {
		feed.Password = v
	}
	if cmd.Bool("allow-insecure") {
		feed.AllowInsecure = true
	}

	if strings.TrimSpace(feed.URL) == "" || strings.TrimSpace(feed.Username) == "" {
		return nil
	}
	return feed
}
