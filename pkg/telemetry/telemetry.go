package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	logger "github.com/rs/zerolog/log"
)

var (
	metricStore MetricStore
	log         zerolog.Logger

	mu   = &sync.Mutex{}
	once sync.Once
)

func init() {
	log = logger.With().
		Str("component", "telemetry").
		Logger()
}

// MetricStore specifies the methods for persisting a metric.
type MetricStore interface {
	StoreMetric(context.Context, Metric) error
	Close() error
}

// SetMetricStore sets the store implementation.
// Only the first call will have an effect. If Collect is called without setting a MetricStore, it will be a noop.
func SetMetricStore(s MetricStore) {
	once.Do(func() {
		metricStore = s
	})
}

// ActorEvicted is implemented by values describing an actor the controller
// just tore down.
type ActorEvicted interface {
	ActorID() uint32
	Contracts() []string
	AtTime() uint64
}

// WeaveRejected is implemented by values describing a rejected weave attempt.
type WeaveRejected interface {
	Reason() string
	NodeCount() int
}

// BlockAborted is implemented by values describing a block that returned
// "no execution" mid-tick.
type BlockAborted interface {
	ActorID() uint32
	BlockID() uint32
}

// GitSummary is implemented by values describing the binary's build info.
type GitSummary interface {
	GetGitCommit() string
	GetGitBranch() string
	GetGitState() string
	GetGitSummary() string
	GetBuildDate() string
	GetBinaryVersion() string
}

// Collect collects the metric by persisting locally for later publication.
// If Collect is called before setting the metric store, it will simply log the metric without persisting it.
func Collect(ctx context.Context, metric interface{}) error {
	mu.Lock()
	defer mu.Unlock()
	if metricStore == nil {
		log.Warn().Interface("metric", metric).Msg("no metric store was set")
		return nil
	}

	switch v := metric.(type) {
	case ActorEvicted:
		if err := metricStore.StoreMetric(ctx, Metric{
			Version:   1,
			Timestamp: time.Now().UTC(),
			Type:      ActorEvictedType,
			Payload: ActorEvictedMetric{
				Version:   ActorEvictedMetricV1,
				ActorID:   v.ActorID(),
				Contracts: v.Contracts(),
				AtTime:    v.AtTime(),
			},
		}); err != nil {
			return errors.Errorf("store actor evicted metric: %s", err)
		}
		return nil
	case WeaveRejected:
		if err := metricStore.StoreMetric(ctx, Metric{
			Version:   1,
			Timestamp: time.Now().UTC(),
			Type:      WeaveRejectedType,
			Payload: WeaveRejectedMetric{
				Version:   WeaveRejectedMetricV1,
				Reason:    v.Reason(),
				NodeCount: v.NodeCount(),
			},
		}); err != nil {
			return errors.Errorf("store weave rejected metric: %s", err)
		}
		return nil
	case BlockAborted:
		if err := metricStore.StoreMetric(ctx, Metric{
			Version:   1,
			Timestamp: time.Now().UTC(),
			Type:      BlockAbortedType,
			Payload: BlockAbortedMetric{
				Version: BlockAbortedMetricV1,
				ActorID: v.ActorID(),
				BlockID: v.BlockID(),
			},
		}); err != nil {
			return errors.Errorf("store block aborted metric: %s", err)
		}
		return nil
	case GitSummary:
		if err := metricStore.StoreMetric(ctx, Metric{
			Version:   1,
			Timestamp: time.Now().UTC(),
			Type:      GitSummaryType,
			Payload: GitSummaryMetric{
				Version:       GitSummaryMetricV1,
				GitCommit:     v.GetGitCommit(),
				GitBranch:     v.GetGitBranch(),
				GitState:      v.GetGitState(),
				GitSummary:    v.GetGitSummary(),
				BuildDate:     v.GetBuildDate(),
				BinaryVersion: v.GetBinaryVersion(),
			},
		}); err != nil {
			return errors.Errorf("store git summary metric: %s", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown metric type %T", v)
	}
}
