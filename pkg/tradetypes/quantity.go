package tradetypes

// Quantity is a nonnegative amount expressed in minor units (kW).
type Quantity struct {
	kw uint32
}

// Kw is a Quantity expressed directly in minor units.
type Kw uint32

// Mw is a Quantity expressed in major units.
type Mw uint32

// QuantityFromKw builds a Quantity from a kW value.
func QuantityFromKw(k Kw) Quantity {
	return Quantity{kw: uint32(k)}
}

// QuantityFromMw builds a Quantity from a MW value.
func QuantityFromMw(m Mw) Quantity {
	return Quantity{kw: uint32(m) * 1000}
}

// InKw returns the quantity in minor units.
func (q Quantity) InKw() Kw {
	return Kw(q.kw)
}

// InMw returns the quantity in major units, truncated.
func (q Quantity) InMw() Mw {
	return Mw(q.kw / 1000)
}
