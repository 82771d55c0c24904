package buildinfo

import "github.com/blockflowhq/blockflow/pkg/telemetry"

var (
	// GitCommit is set by govvv at build time.
	GitCommit = "n/a"
	// GitBranch  is set by govvv at build time.
	GitBranch = "n/a"
	// GitState  is set by govvv at build time.
	GitState = "n/a"
	// GitSummary is set by govvv at build time.
	GitSummary = "n/a"
	// BuildDate  is set by govvv at build time.
	BuildDate = "n/a"
	// Version  is set by govvv at build time.
	Version = "n/a"
)

type summary struct{}

// GetSummary returns a summary of git information.
func GetSummary() telemetry.GitSummary {
	return summary{}
}

func (summary) GetGitCommit() string     { return GitCommit }
func (summary) GetGitBranch() string     { return GitBranch }
func (summary) GetGitState() string      { return GitState }
func (summary) GetGitSummary() string    { return GitSummary }
func (summary) GetBuildDate() string     { return BuildDate }
func (summary) GetBinaryVersion() string { return Version }
