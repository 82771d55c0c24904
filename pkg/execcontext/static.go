package execcontext

import "github.com/blockflowhq/blockflow/pkg/tradetypes"

// StaticOrderBook is a fixed top-of-book snapshot, useful for tests and
// simple backtests that replay a static book.
type StaticOrderBook struct {
	Bid tradetypes.Price
	Ask tradetypes.Price

	HasBid bool
	HasAsk bool
}

// TopOfSide implements OrderBook.
func (b StaticOrderBook) TopOfSide(side tradetypes.Side) (tradetypes.Price, bool) {
	if side == tradetypes.Buy {
		return b.Bid, b.HasBid
	}
	return b.Ask, b.HasAsk
}

// StaticContext is an ExecutionContext backed by in-memory maps. It is the
// engine's reference context for tests and offline backtests; live feeds
// implement their own.
type StaticContext struct {
	time       uint64
	orderBooks map[tradetypes.Contract]OrderBook
	positions  map[positionKey]tradetypes.Quantity
}

type positionKey struct {
	blockID  uint32
	contract tradetypes.Contract
}

// NewStaticContext creates an empty StaticContext at time 0.
func NewStaticContext() *StaticContext {
	return &StaticContext{
		orderBooks: make(map[tradetypes.Contract]OrderBook),
		positions:  make(map[positionKey]tradetypes.Quantity),
	}
}

// SetTime sets the context's clock value.
func (c *StaticContext) SetTime(t uint64) {
	c.time = t
}

// SetOrderBook registers the order book for contract.
func (c *StaticContext) SetOrderBook(contract tradetypes.Contract, book OrderBook) {
	c.orderBooks[contract] = book
}

// SetPosition registers a position for (blockID, contract).
func (c *StaticContext) SetPosition(blockID uint32, contract tradetypes.Contract, qty tradetypes.Quantity) {
	c.positions[positionKey{blockID, contract}] = qty
}

// Time implements ExecutionContext.
func (c *StaticContext) Time() uint64 {
	return c.time
}

// OrderBook implements ExecutionContext.
func (c *StaticContext) OrderBook(contract tradetypes.Contract) (OrderBook, bool) {
	book, ok := c.orderBooks[contract]
	return book, ok
}

// Position implements ExecutionContext.
func (c *StaticContext) Position(blockID uint32, contract tradetypes.Contract) (tradetypes.Quantity, bool) {
	qty, ok := c.positions[positionKey{blockID, contract}]
	return qty, ok
}
