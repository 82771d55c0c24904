// Package actor implements the per-strategy unit of execution: an
// execution plan paired with a reconciler, ticked once per relevant
// market-data delta.
package actor

import (
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/execplan"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

// Actor owns one execution plan and the reconciler that folds its tick's
// intents into per-slot orders.
type Actor struct {
	id         uint32
	plan       *execplan.Plan
	reconciler *Reconciler
}

// New builds an Actor over plan, pre-allocating its reconciler to the
// plan's total intent-slot count.
func New(id uint32, plan *execplan.Plan) *Actor {
	return &Actor{
		id:         id,
		plan:       plan,
		reconciler: NewReconciler(plan.SlotCount()),
	}
}

// ActorID returns the actor's id.
func (a *Actor) ActorID() uint32 {
	return a.id
}

// Contracts returns the contracts the actor's plan depends on, registered
// for delta dispatch at controller-attach time.
func (a *Actor) Contracts() []tradetypes.Contract {
	return a.plan.ContractDeps()
}

// Tick runs one execution of the actor's plan against ctx. It resets the
// reconciler, runs the plan with the reconciler as the intent consumer,
// and propagates the plan's own ok=false as the eviction signal: a false
// return means the owning actor must be evicted by its controller.
func (a *Actor) Tick(ctx execcontext.ExecutionContext) bool {
	a.reconciler.Reset()
	return a.plan.Execute(ctx, a.reconciler.Consume)
}

// Orders returns the actor's current per-slot order state, valid after a
// call to Tick.
func (a *Actor) Orders() []Order {
	return a.reconciler.Orders()
}
