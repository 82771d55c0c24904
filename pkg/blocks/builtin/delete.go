package builtin

import (
	"github.com/blockflowhq/blockflow/pkg/blocks"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

type deleteSpec struct{}

func (deleteSpec) InitState() struct{}                { return struct{}{} }
func (deleteSpec) ContractDeps() []tradetypes.Contract { return nil }
func (deleteSpec) SlotCount() int                     { return 0 }

// Execute signals it cannot execute when shouldDelete is set, which the
// owning plan/controller reads as an eviction request for this block's
// slot. The source schedules a terminate effect for the same signal; this
// engine instead folds it into the same ok=false channel every block uses
// to report "cannot run this tick".
func (deleteSpec) Execute(
	_ execcontext.ExecutionContext, shouldDelete bool, state struct{},
) (struct{}, struct{}, []blocks.Intent, bool) {
	if shouldDelete {
		return struct{}{}, state, nil, false
	}
	return struct{}{}, state, nil, true
}

// NewDeletePackage builds the wire package for a Delete block: one boolean
// input channel, no outputs, no intents.
func NewDeletePackage(blockID uint32, shouldDeleteChannel string) *blocks.Package[bool, struct{}, struct{}, struct{}] {
	return &blocks.Package[bool, struct{}, struct{}, struct{}]{
		BlockID:    blockID,
		InputKeys:  channels.InputKey[bool]{Channel: shouldDeleteChannel},
		OutputKeys: channels.EmptyOutputKeys{},
		New: func(struct{}) blocks.Spec[bool, struct{}, struct{}] {
			return deleteSpec{}
		},
	}
}
