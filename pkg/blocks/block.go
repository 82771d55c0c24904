// Package blocks defines the block contract: the typed authoring interface
// concrete block kinds implement, and the type-erased form a woven plan
// holds so it can run a heterogeneous sequence of block kinds.
package blocks

import (
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

// Block is the type-erased capability set a woven embedding exposes to a
// plan: enough to compute contract dependencies and to run one tick without
// the plan knowing the block's concrete input/output/state types.
type Block interface {
	// BlockID returns the block's id, fixed by the weaver.
	BlockID() uint32

	// ContractDeps returns the contracts this block depends on.
	ContractDeps() []tradetypes.Contract

	// SlotCount returns this block's fixed number of intent slots.
	SlotCount() int

	// Execute runs one tick. The second return value is false if the block
	// could not execute ("None" in the source design); the plan must then
	// abort without writing output or committing state.
	Execute(ctx execcontext.ExecutionContext) ([]SlotIntent, bool)
}

// Spec is the typed contract a concrete block kind implements. A Spec does
// not know its own block id: that is a config-assigned property of the
// Package wrapping it, kept separate so the same Spec type can be
// instantiated multiple times in one plan under different ids.
//
// Execute is pure: given a context, a snapshot input, and the current
// state, it either produces a new output/state/intents triple or signals it
// cannot execute.
type Spec[In, Out, State any] interface {
	// InitState returns the zero state used when no saved state is supplied.
	InitState() State

	// ContractDeps returns the contracts this block depends on, derived from
	// its init parameters.
	ContractDeps() []tradetypes.Contract

	// SlotCount returns this block kind's fixed number of intent slots,
	// known before any tick runs.
	SlotCount() int

	// Execute computes one tick. ok is false when the block cannot execute;
	// callers must discard out, newState, and intents in that case.
	Execute(ctx execcontext.ExecutionContext, input In, state State) (out Out, newState State, intents []Intent, ok bool)
}
