package tradetypes

// Contract is an opaque trading instrument identifier. It is the join key
// between market-data deltas and the actors that subscribe to them.
type Contract string

// NewContract creates a Contract from a name.
func NewContract(name string) Contract {
	return Contract(name)
}

// String returns the contract's underlying name.
func (c Contract) String() string {
	return string(c)
}
