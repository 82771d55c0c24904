package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric/global"
	"go.opentelemetry.io/otel/metric/instrument"
)

var (
	ticksCounter          instrument.Int64Counter
	evictionsCounter      instrument.Int64Counter
	weaveErrorsCounter    instrument.Int64Counter
	intentsEmittedCounter instrument.Int64Counter
)

// startCollectingEngineMetrics registers the synchronous counters the
// controller and control plane increment as the engine runs, as opposed
// to the observable runtime/memory gauges in instrumenting.go.
func startCollectingEngineMetrics() error {
	meter := global.MeterProvider().Meter("engine")

	var err error
	if ticksCounter, err = meter.Int64Counter(
		"engine.ticks",
		instrument.WithDescription("Number of actor ticks dispatched by the controller"),
	); err != nil {
		return fmt.Errorf("creating engine ticks counter: %s", err)
	}

	if evictionsCounter, err = meter.Int64Counter(
		"engine.evictions",
		instrument.WithDescription("Number of actors evicted from the controller after a failed tick"),
	); err != nil {
		return fmt.Errorf("creating engine evictions counter: %s", err)
	}

	if weaveErrorsCounter, err = meter.Int64Counter(
		"engine.weave_errors",
		instrument.WithDescription("Number of block lists rejected by decoding or weaving"),
	); err != nil {
		return fmt.Errorf("creating engine weave errors counter: %s", err)
	}

	if intentsEmittedCounter, err = meter.Int64Counter(
		"engine.intents_emitted",
		instrument.WithDescription("Number of non-empty orders emitted by actors on tick"),
	); err != nil {
		return fmt.Errorf("creating engine intents emitted counter: %s", err)
	}

	return nil
}

// IncTicks records one actor tick dispatched by the controller.
func IncTicks(ctx context.Context) {
	if ticksCounter == nil {
		return
	}
	ticksCounter.Add(ctx, 1, BaseAttrs...)
}

// IncEvictions records one actor evicted after a failed tick.
func IncEvictions(ctx context.Context) {
	if evictionsCounter == nil {
		return
	}
	evictionsCounter.Add(ctx, 1, BaseAttrs...)
}

// IncWeaveErrors records one block list rejected during decode or weave.
func IncWeaveErrors(ctx context.Context) {
	if weaveErrorsCounter == nil {
		return
	}
	weaveErrorsCounter.Add(ctx, 1, BaseAttrs...)
}

// IncIntentsEmitted records n non-empty orders emitted in a single tick.
func IncIntentsEmitted(ctx context.Context, n int64) {
	if intentsEmittedCounter == nil || n <= 0 {
		return
	}
	intentsEmittedCounter.Add(ctx, n, BaseAttrs...)
}
