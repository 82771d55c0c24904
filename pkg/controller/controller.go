// Package controller dispatches market-data deltas to the actors
// subscribed to each contract, evicting any actor whose tick fails.
package controller

import (
	"context"

	logger "github.com/rs/zerolog/log"
	"go.uber.org/atomic"

	"github.com/blockflowhq/blockflow/pkg/actor"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/metrics"
	"github.com/blockflowhq/blockflow/pkg/telemetry"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

var log = logger.With().Str("component", "controller").Logger()

// Delta is a notification that contract has new market data available;
// the controller ticks every actor subscribed to that contract in
// response.
type Delta struct {
	Contract tradetypes.Contract
}

// ContextFactory builds the read-only execution context for a tick at the
// controller's current logical time. Backtests and live feeds supply
// different factories without the controller needing to know the
// difference.
type ContextFactory func(time uint64) execcontext.ExecutionContext

// Controller indexes actor handles by id and by contract and dispatches
// deltas to the actors subscribed to the delta's contract.
type Controller struct {
	time atomic.Uint64

	newContext ContextFactory

	byID       map[uint32]Handle
	byContract map[tradetypes.Contract][]Handle
}

// New creates an empty Controller with its clock at zero, using
// newContext to build each tick's execution context.
func New(newContext ContextFactory) *Controller {
	return &Controller{
		newContext: newContext,
		byID:       make(map[uint32]Handle),
		byContract: make(map[tradetypes.Contract][]Handle),
	}
}

// AddActor indexes handle by its actor id and registers it against every
// contract it depends on.
func (c *Controller) AddActor(handle Handle) {
	c.byID[handle.ActorID()] = handle
	for _, contract := range handle.Contracts() {
		c.byContract[contract] = append(c.byContract[contract], handle)
	}
}

// GetActorByID returns the handle registered under id, if any.
func (c *Controller) GetActorByID(id uint32) (Handle, bool) {
	h, ok := c.byID[id]
	return h, ok
}

// RemoveActorByID removes the actor registered under id from both indices.
func (c *Controller) RemoveActorByID(id uint32) {
	handle, ok := c.byID[id]
	if !ok {
		return
	}
	delete(c.byID, id)
	c.removeFromContractTables(handle)
}

func (c *Controller) removeFromContractTables(handle Handle) {
	for _, contract := range handle.Contracts() {
		handles := c.byContract[contract]
		kept := handles[:0]
		for _, h := range handles {
			if !h.Same(handle) {
				kept = append(kept, h)
			}
		}
		if len(kept) == 0 {
			delete(c.byContract, contract)
		} else {
			c.byContract[contract] = kept
		}
	}
}

// Time returns the controller's current logical clock value.
func (c *Controller) Time() uint64 {
	return c.time.Load()
}

// TickDelta ticks every actor subscribed to delta's contract against a
// fresh execution context at the controller's current time. Any actor
// whose tick fails is evicted from the controller entirely — including
// from every other contract it was registered under — but the remaining
// actors in this same delta batch still run. The clock advances by one
// regardless of outcome.
func (c *Controller) TickDelta(delta Delta) {
	ctx := c.newContext(c.time.Load())

	handles, ok := c.byContract[delta.Contract]
	if !ok {
		c.time.Inc()
		return
	}
	delete(c.byContract, delta.Contract)

	survivors := handles[:0]
	for _, handle := range handles {
		metrics.IncTicks(context.Background())
		if handle.Tick(ctx) {
			survivors = append(survivors, handle)
			metrics.IncIntentsEmitted(context.Background(), countIntents(handle.Orders()))
			continue
		}
		log.Info().
			Uint32("actor_id", handle.ActorID()).
			Str("contract", delta.Contract.String()).
			Msg("evicting actor after failed tick")
		metrics.IncEvictions(context.Background())
		evicted := actorEvictedEvent{
			actorID:   handle.ActorID(),
			contracts: handle.Contracts(),
			atTime:    c.time.Load(),
		}
		if err := telemetry.Collect(context.Background(), evicted); err != nil {
			log.Error().Err(err).Uint32("actor_id", handle.ActorID()).Msg("collecting actor evicted metric")
		}
		delete(c.byID, handle.ActorID())
		c.removeFromContractTables(handle)
	}

	if len(survivors) > 0 {
		c.byContract[delta.Contract] = survivors
	}

	c.time.Inc()
}

// countIntents reports how many of orders are non-empty, for the
// engine.intents_emitted counter.
func countIntents(orders []actor.Order) int64 {
	var n int64
	for _, o := range orders {
		if o.Kind != actor.NoOrderKind {
			n++
		}
	}
	return n
}

// actorEvictedEvent satisfies telemetry.ActorEvicted for a single eviction.
type actorEvictedEvent struct {
	actorID   uint32
	contracts []tradetypes.Contract
	atTime    uint64
}

func (e actorEvictedEvent) ActorID() uint32 { return e.actorID }

func (e actorEvictedEvent) Contracts() []string {
	out := make([]string, len(e.contracts))
	for i, c := range e.contracts {
		out[i] = c.String()
	}
	return out
}

func (e actorEvictedEvent) AtTime() uint64 { return e.atTime }
