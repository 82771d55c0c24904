package telemetry

import (
	"context"
	"sync"
)

// InMemoryMetricStore is a MetricStore that keeps every collected metric in
// memory. Useful for tests and as the default store of cmd/enginectl run.
type InMemoryMetricStore struct {
	mu      sync.Mutex
	metrics []Metric
}

// NewInMemoryMetricStore creates a new InMemoryMetricStore.
func NewInMemoryMetricStore() *InMemoryMetricStore {
	return &InMemoryMetricStore{}
}

// StoreMetric appends the metric to the in-memory log.
func (s *InMemoryMetricStore) StoreMetric(_ context.Context, m Metric) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = append(s.metrics, m)
	return nil
}

// Close is a no-op for the in-memory store.
func (s *InMemoryMetricStore) Close() error {
	return nil
}

// All returns a copy of every metric collected so far.
func (s *InMemoryMetricStore) All() []Metric {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Metric, len(s.metrics))
	copy(out, s.metrics)
	return out
}
