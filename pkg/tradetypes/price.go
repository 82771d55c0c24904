package tradetypes

// Price is a nonnegative price expressed in minor units (cents).
type Price struct {
	cents uint32
}

// Cents is a Price expressed directly in minor units.
type Cents uint32

// Euros is a Price expressed in major units.
type Euros uint32

// PriceFromCents builds a Price from a cents value.
func PriceFromCents(c Cents) Price {
	return Price{cents: uint32(c)}
}

// PriceFromEuros builds a Price from a euros value.
func PriceFromEuros(e Euros) Price {
	return Price{cents: uint32(e) * 100}
}

// InCents returns the price in minor units.
func (p Price) InCents() Cents {
	return Cents(p.cents)
}

// InEuros returns the price in major units, truncated.
func (p Price) InEuros() Euros {
	return Euros(p.cents / 100)
}

// LessOrEqual reports whether p is at or below other.
func (p Price) LessOrEqual(other Price) bool {
	return p.cents <= other.cents
}

// GreaterOrEqual reports whether p is at or above other.
func (p Price) GreaterOrEqual(other Price) bool {
	return p.cents >= other.cents
}
