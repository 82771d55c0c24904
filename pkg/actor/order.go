package actor

import "github.com/blockflowhq/blockflow/pkg/tradetypes"

// OrderKind discriminates the variants of Order.
type OrderKind int

const (
	// NoOrderKind is the zero value: no resting order for this slot.
	NoOrderKind OrderKind = iota
	// NewOrderKind is a live resting order.
	NewOrderKind
	// CancelOrderKind marks a slot whose order was cancelled.
	CancelOrderKind
)

// Order is the per-slot reconciled outbound order state: a mock of the
// real order-management side effect, kept as a value the reconciler can
// compare and replace each tick.
type Order struct {
	Kind     OrderKind
	Contract tradetypes.Contract
	Side     tradetypes.Side
	Price    tradetypes.Price
	Quantity tradetypes.Quantity
}

// NoOrder is the zero-value order.
var NoOrder = Order{Kind: NoOrderKind}

// CancelOrder builds a Cancel order for contract.
func CancelOrder(contract tradetypes.Contract) Order {
	return Order{Kind: CancelOrderKind, Contract: contract}
}
