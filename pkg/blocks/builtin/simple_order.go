package builtin

import (
	"github.com/blockflowhq/blockflow/pkg/blocks"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

// SimpleOrderInit is the init parameters for a SimpleOrder block.
type SimpleOrderInit struct {
	Contract tradetypes.Contract `json:"contract"`
	Side     tradetypes.Side     `json:"side"`
	Price    tradetypes.Price    `json:"price"`
	Quantity tradetypes.Quantity `json:"quantity"`
}

type simpleOrderSpec struct {
	contract tradetypes.Contract
}

func (simpleOrderSpec) InitState() struct{} { return struct{}{} }

func (s simpleOrderSpec) ContractDeps() []tradetypes.Contract {
	return []tradetypes.Contract{s.contract}
}

// SlotCount is zero: a SimpleOrder block declares its order entirely
// through init parameters and has no intent slot of its own. It exists as
// a configuration leaf other blocks' should-execute channels can gate
// against, not as an intent producer.
func (simpleOrderSpec) SlotCount() int { return 0 }

func (simpleOrderSpec) Execute(
	_ execcontext.ExecutionContext, _ bool, state struct{},
) (struct{}, struct{}, []blocks.Intent, bool) {
	return struct{}{}, state, nil, true
}

// NewSimpleOrderPackage builds the wire package for a SimpleOrder block:
// one boolean input channel, no outputs, no intent slots.
func NewSimpleOrderPackage(
	blockID uint32, shouldExecuteChannel string, init SimpleOrderInit,
) *blocks.Package[bool, struct{}, struct{}, SimpleOrderInit] {
	return &blocks.Package[bool, struct{}, struct{}, SimpleOrderInit]{
		BlockID:    blockID,
		InputKeys:  channels.InputKey[bool]{Channel: shouldExecuteChannel},
		OutputKeys: channels.EmptyOutputKeys{},
		InitParams: init,
		New: func(p SimpleOrderInit) blocks.Spec[bool, struct{}, struct{}] {
			return simpleOrderSpec{contract: p.Contract}
		},
	}
}
