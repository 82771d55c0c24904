package controllers

import (
	"net/http"

	"github.com/blockflowhq/blockflow/buildinfo"
	"github.com/blockflowhq/blockflow/pkg/telemetry"
)

// InfraController serves operational endpoints unrelated to actor state.
type InfraController struct{}

// NewInfraController creates an InfraController.
func NewInfraController() *InfraController {
	return &InfraController{}
}

// Version returns the running binary's git build information.
func (c *InfraController) Version(rw http.ResponseWriter, r *http.Request) {
	summary := buildinfo.GetSummary()
	writeJSON(rw, http.StatusOK, telemetry.GitSummaryMetric{
		Version:       telemetry.GitSummaryMetricV1,
		GitCommit:     summary.GetGitCommit(),
		GitBranch:     summary.GetGitBranch(),
		GitState:      summary.GetGitState(),
		GitSummary:    summary.GetGitSummary(),
		BuildDate:     summary.GetBuildDate(),
		BinaryVersion: summary.GetBinaryVersion(),
	})
}

// Health reports liveness.
func (c *InfraController) Health(rw http.ResponseWriter, r *http.Request) {
	rw.WriteHeader(http.StatusOK)
}
