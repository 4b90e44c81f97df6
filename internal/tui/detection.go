package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are set by common CI providers.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd fits in int
}

// IsInteractive reports whether prompts can be shown: stdout must be a
// terminal and no CI environment variable may be set.
func IsInteractive() bool {
	if !isTerminal() {
		return false
	}
	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}
	return true
}
