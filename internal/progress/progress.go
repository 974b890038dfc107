// Package progress wraps readers with a byte progress bar for long file
// reads, staying silent in CI and when progress is disabled.
package progress

import (
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// IsCI reports whether the process appears to run under a CI system,
// where animated progress output only pollutes logs.
func IsCI() bool {
	ciEnvVars := []string{
		"CI",
		"CONTINUOUS_INTEGRATION",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"JENKINS_URL",
		"TRAVIS",
		"BITBUCKET_BUILD_NUMBER",
		"AZURE_PIPELINES",
	}

	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}
	return false
}

// NewReader returns r wrapped with a byte progress bar of the given size
// and description, or r unchanged when disabled or running in CI.
func NewReader(r io.Reader, size int64, description string, disabled bool) io.Reader {
	if disabled || IsCI() {
		return r
	}

	bar := progressbar.DefaultBytes(size, description)
	reader := progressbar.NewReader(r, bar)
	return &reader
}
