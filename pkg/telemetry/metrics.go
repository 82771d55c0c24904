package telemetry

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// MetricType defines the metric type.
type MetricType int

const (
	// ActorEvictedType is the type for the ActorEvictedMetric.
	ActorEvictedType MetricType = iota
	// WeaveRejectedType is the type for the WeaveRejectedMetric.
	WeaveRejectedType
	// BlockAbortedType is the type for the BlockAbortedMetric.
	BlockAbortedType
	// GitSummaryType is the type for the GitSummaryMetric.
	GitSummaryType
)

// Metric defines a metric.
type Metric struct {
	RowID     int64       `json:"-"`
	Version   int         `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Type      MetricType  `json:"type"`
	Payload   interface{} `json:"payload"`
}

// Serialize serializes the metric.
func (m Metric) Serialize() ([]byte, error) {
	b, err := json.Marshal(m.Payload)
	if err != nil {
		return []byte(nil), errors.Errorf("marshal: %s", err)
	}

	return b, nil
}

// ActorEvictedMetricVersion is a type for versioning ActorEvicted metrics.
type ActorEvictedMetricVersion int64

// ActorEvictedMetricV1 is the V1 version of the ActorEvicted metric.
const ActorEvictedMetricV1 ActorEvictedMetricVersion = iota

// ActorEvictedMetric records that the controller evicted an actor because
// one of its blocks returned "no execution" mid-tick.
type ActorEvictedMetric struct {
	Version ActorEvictedMetricVersion `json:"version"`

	ActorID   uint32   `json:"actor_id"`
	Contracts []string `json:"contracts"`
	AtTime    uint64   `json:"at_time"`
}

// WeaveRejectedMetricVersion is a type for versioning WeaveRejected metrics.
type WeaveRejectedMetricVersion int64

// WeaveRejectedMetricV1 is the V1 version of the WeaveRejected metric.
const WeaveRejectedMetricV1 WeaveRejectedMetricVersion = iota

// WeaveRejectedMetric records a weave-time rejection of a batch of block packages.
type WeaveRejectedMetric struct {
	Version WeaveRejectedMetricVersion `json:"version"`

	Reason    string `json:"reason"`
	NodeCount int    `json:"node_count"`
}

// BlockAbortedMetricVersion is a type for versioning BlockAborted metrics.
type BlockAbortedMetricVersion int64

// BlockAbortedMetricV1 is the V1 version of the BlockAborted metric.
const BlockAbortedMetricV1 BlockAbortedMetricVersion = iota

// BlockAbortedMetric records that a block inside a plan returned "no
// execution" during a tick, aborting the remainder of the plan.
type BlockAbortedMetric struct {
	Version BlockAbortedMetricVersion `json:"version"`

	ActorID uint32 `json:"actor_id"`
	BlockID uint32 `json:"block_id"`
}

// GitSummaryMetricVersion is a type for versioning GitSummary metrics.
type GitSummaryMetricVersion int64

// GitSummaryMetricV1 is the V1 version of GitSummary metric.
const GitSummaryMetricV1 GitSummaryMetricVersion = iota

// GitSummaryMetric contains Git information of the binary.
type GitSummaryMetric struct {
	Version GitSummaryMetricVersion `json:"version"`

	GitCommit     string `json:"git_commit"`
	GitBranch     string `json:"git_branch"`
	GitState      string `json:"git_state"`
	GitSummary    string `json:"git_summary"`
	BuildDate     string `json:"build_date"`
	BinaryVersion string `json:"binary_version"`
}
