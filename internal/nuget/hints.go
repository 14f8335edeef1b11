package nuget

import (
	"regexp"
)

// Hint is user-facing context for a recognized tool failure.
type Hint struct {
	Category    string
	Message     string
	Suggestions []string
}

type hintPattern struct {
	pattern *regexp.Regexp
	hint    Hint
}

// hintPatterns maps nuget and dotnet output to hints.
// Order matters: more specific patterns come first.
var hintPatterns = []hintPattern{
	{
		pattern: regexp.MustCompile(`(?i)\b409\b|\bConflict\b|already exists`),
		hint: Hint{
			Category: "duplicate_version",
			Message:  "This package version already exists on the feed",
			Suggestions: []string{
				"Bump the version with --version and build again",
				"Feeds do not allow overwriting a published version",
			},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b401\b|Unauthorized|API key .*invalid|credentials`),
		hint: Hint{
			Category: "auth_required",
			Message:  "The feed rejected the credentials",
			Suggestions: []string{
				"Check the API key (--api-key or NUPACK_API_KEY)",
				"For username/password feeds pass --feed-url, --username and --password",
			},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)\b403\b|Forbidden`),
		hint: Hint{
			Category: "permission_denied",
			Message:  "The account may not publish to this feed",
			Suggestions: []string{
				"Verify the token has package write permission",
				"Check that the package id is owned by this account",
			},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)SSL connection could not be established|certificate`),
		hint: Hint{
			Category: "ssl_error",
			Message:  "TLS negotiation with the feed failed",
			Suggestions: []string{
				"Check the feed certificate is trusted on this machine",
				"For plain HTTP feeds pass --allow-insecure",
			},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)Unable to load the service index|No such host|Name or service not known|actively refused`),
		hint: Hint{
			Category: "feed_unreachable",
			Message:  "The feed could not be reached",
			Suggestions: []string{
				"Check the source name or URL",
				"Verify network access to the feed",
			},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)is not a valid version string|NU5007`),
		hint: Hint{
			Category: "invalid_version",
			Message:  "The package version is not valid",
			Suggestions: []string{
				"Use a numeric version such as 1.2.3 or 2024.03.07",
			},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NU5019|Could not find (a part of the path|file)`),
		hint: Hint{
			Category: "missing_content",
			Message:  "A content file referenced by the manifest is missing",
			Suggestions: []string{
				"Regenerate the manifest after moving content files",
			},
		},
	},
	{
		pattern: regexp.MustCompile(`(?i)NETSDK1045|does not support targeting`),
		hint: Hint{
			Category: "target_framework",
			Message:  "The installed .NET SDK cannot build the target framework",
			Suggestions: []string{
				"Install a newer .NET SDK",
				"Or lower project.target-framework in .nupack.yaml",
			},
		},
	},
}

// MatchHint returns the hint for the first pattern found in output, or nil.
func MatchHint(output string) *Hint {
	for _, p := range hintPatterns {
		if p.pattern.MatchString(output) {
			h := p.hint
			return &h
		}
	}
	return nil
}
