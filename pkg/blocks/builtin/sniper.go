package builtin

import (
	"github.com/blockflowhq/blockflow/pkg/blocks"
	"github.com/blockflowhq/blockflow/pkg/channels"
	"github.com/blockflowhq/blockflow/pkg/execcontext"
	"github.com/blockflowhq/blockflow/pkg/tradetypes"
)

// SniperInit is the init parameters for a Sniper block.
type SniperInit struct {
	Contract  tradetypes.Contract `json:"contract"`
	Side      tradetypes.Side     `json:"side"`
	Quantity  tradetypes.Quantity `json:"quantity"`
	Threshold tradetypes.Price    `json:"threshold"`
}

type sniperSpec struct {
	contract  tradetypes.Contract
	side      tradetypes.Side
	quantity  tradetypes.Quantity
	threshold tradetypes.Price
}

func (sniperSpec) InitState() struct{} { return struct{}{} }

func (s sniperSpec) ContractDeps() []tradetypes.Contract {
	return []tradetypes.Contract{s.contract}
}

func (sniperSpec) SlotCount() int { return 1 }

// Execute snipes the opposing side's top price once it crosses threshold:
// a Buy sniper fires when the best ask is at or below threshold, a Sell
// sniper fires when the best bid is at or above threshold. It cannot
// execute if the contract has no known order book.
func (s sniperSpec) Execute(
	ctx execcontext.ExecutionContext, shouldExecute bool, state struct{},
) (struct{}, struct{}, []blocks.Intent, bool) {
	book, ok := ctx.OrderBook(s.contract)
	if !ok {
		return struct{}{}, state, nil, false
	}

	if !shouldExecute {
		return struct{}{}, state, []blocks.Intent{blocks.NoIntent}, true
	}

	var opposite tradetypes.Side
	if s.side == tradetypes.Buy {
		opposite = tradetypes.Sell
	} else {
		opposite = tradetypes.Buy
	}

	top, hasTop := book.TopOfSide(opposite)
	if !hasTop {
		return struct{}{}, state, []blocks.Intent{blocks.NoIntent}, true
	}

	fire := false
	if s.side == tradetypes.Buy {
		fire = top.LessOrEqual(s.threshold)
	} else {
		fire = top.GreaterOrEqual(s.threshold)
	}
	if !fire {
		return struct{}{}, state, []blocks.Intent{blocks.NoIntent}, true
	}

	intent := blocks.PlaceIntent(s.contract, s.side, top, s.quantity)
	return struct{}{}, state, []blocks.Intent{intent}, true
}

// NewSniperPackage builds the wire package for a Sniper block: one boolean
// input channel gating whether it fires this tick, no outputs, one intent
// slot.
func NewSniperPackage(
	blockID uint32, shouldExecuteChannel string, init SniperInit,
) *blocks.Package[bool, struct{}, struct{}, SniperInit] {
	return &blocks.Package[bool, struct{}, struct{}, SniperInit]{
		BlockID:    blockID,
		InputKeys:  channels.InputKey[bool]{Channel: shouldExecuteChannel},
		OutputKeys: channels.EmptyOutputKeys{},
		InitParams: init,
		New: func(p SniperInit) blocks.Spec[bool, struct{}, struct{}] {
			return sniperSpec{
				contract:  p.Contract,
				side:      p.Side,
				quantity:  p.Quantity,
				threshold: p.Threshold,
			}
		},
	}
}
