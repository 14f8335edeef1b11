package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvVars are set by build agents that commonly run nupack.
var ciEnvVars = []string{
	"CI",
	"TF_BUILD", // Azure Pipelines
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"TEAMCITY_VERSION",
	"JENKINS_HOME",
	"APPVEYOR",
	"BUILDKITE",
	"CODEBUILD_BUILD_ID",
	"BITBUCKET_BUILD_NUMBER",
}

var isTerminal = func() bool {
	//nolint:gosec // G115: file descriptors fit in int
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether forms and spinners can be shown: stdin
// and stdout are terminals and no build agent is detected.
func IsInteractive() bool {
	return isTerminal() && !onBuildAgent()
}

func onBuildAgent() bool {
	for _, env := range ciEnvVars {
		if os.Getenv(env) != "" {
			return true
		}
	}
	return false
}
