// Package execcontext defines the read-only context every block execute call
// receives: a monotone clock plus market-data accessors. Concrete backtests
// and live feeds implement ExecutionContext without the engine core knowing
// the difference.
package execcontext

import "github.com/blockflowhq/blockflow/pkg/tradetypes"

// OrderBook is the minimal market-data view a block can query.
type OrderBook interface {
	// TopOfSide returns the best resting price on side, or false if the book
	// has no resting orders on that side.
	TopOfSide(side tradetypes.Side) (tradetypes.Price, bool)
}

// ExecutionContext is passed by reference to every block's Execute call. It
// is read-only from a block's perspective.
type ExecutionContext interface {
	// Time returns the engine's current monotone clock value.
	Time() uint64

	// OrderBook returns the order book for contract, or false if none is
	// currently known.
	OrderBook(contract tradetypes.Contract) (OrderBook, bool)

	// Position returns the current position blockID holds in contract, or
	// false if no position is tracked. No built-in block reads this; it is
	// an extension point for position-aware strategies.
	Position(blockID uint32, contract tradetypes.Contract) (tradetypes.Quantity, bool)
}
