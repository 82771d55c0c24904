// Package execplan composes a topologically woven sequence of blocks into a
// single composite block: an actor's unit of execution.
package execplan

import (
	"github.com/blockflowhq/blockflow/pkg/blocks"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

// Plan is a topologically ordered sequence of woven blocks, treated as one
// composite block: its contract deps are the concatenation of its members', and its
// Execute runs members in order, aborting the whole tick the moment any
// member reports it could not run.
type Plan struct {
	blocks []blocks.Block
}

// New builds a Plan over woven blocks already in topological order (the
// order weave.Weave returns).
func New(woven []blocks.Block) *Plan {
	return &Plan{blocks: woven}
}

// ContractDeps returns the concatenation of every member's contract
// dependencies, in member order. Duplicates are not deduplicated: callers
// that need a set should dedupe themselves.
func (p *Plan) ContractDeps() []tradetypes.Contract {
	var deps []tradetypes.Contract
	for _, b := range p.blocks {
		deps = append(deps, b.ContractDeps()...)
	}
	return deps
}

// SlotCount returns the total number of intent slots across every member
// block, in member order. An actor's reconciler pre-allocates its Orders
// vector to this length.
func (p *Plan) SlotCount() int {
	n := 0
	for _, b := range p.blocks {
		n += b.SlotCount()
	}
	return n
}

// IntentConsumer is invoked once per produced slot intent, in topological
// order, as Execute runs.
type IntentConsumer func(blocks.SlotIntent)

// Execute runs every member block in topological order, forwarding each
// produced slot intent to consume as it is emitted. The moment a member
// reports ok=false, Execute stops and returns false itself without running
// any later member: a single failing block aborts the whole tick.
func (p *Plan) Execute(ctx execcontext.ExecutionContext, consume IntentConsumer) bool {
	for _, b := range p.blocks {
		intents, ok := b.Execute(ctx)
		if !ok {
			return false
		}
		for _, intent := range intents {
			consume(intent)
		}
	}
	return true
}
