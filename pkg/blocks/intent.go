package blocks

import "github.com/blockflowhq/blockflow/pkg/tradetypes"

// IntentKind discriminates the variants of Intent.
type IntentKind int

const (
	// NoIntentKind is the zero value: the block proposes no action.
	NoIntentKind IntentKind = iota
	// PlaceKind is a proposal to place a new order.
	PlaceKind
)

// Intent is a block's proposed action for one slot on a tick: either nothing
// or a Place order proposal. Cancel/Modify are permitted extensions not
// modeled by the core.
type Intent struct {
	Kind     IntentKind
	Contract tradetypes.Contract
	Side     tradetypes.Side
	Price    tradetypes.Price
	Quantity tradetypes.Quantity
}

// NoIntent is the zero-value intent.
var NoIntent = Intent{Kind: NoIntentKind}

// PlaceIntent builds a Place intent.
func PlaceIntent(contract tradetypes.Contract, side tradetypes.Side, price tradetypes.Price, qty tradetypes.Quantity) Intent {
	return Intent{
		Kind:     PlaceKind,
		Contract: contract,
		Side:     side,
		Price:    price,
		Quantity: qty,
	}
}
