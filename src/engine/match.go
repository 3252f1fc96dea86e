package engine

// OrderMatch is the value produced by a single execution event: the
// maker's id, the taker's id, the price at which they traded (always
// the maker's resting price), the executed quantity, and the
// timestamp taken at construction.
type OrderMatch struct {
	MakerID   OrderID
	TakerID   OrderID
	Price     Price
	Quantity  Quantity
	Timestamp int64
}

func newOrderMatch(clock Clock, makerID, takerID OrderID, price Price, qty Quantity) OrderMatch {
	return OrderMatch{
		MakerID:   makerID,
		TakerID:   takerID,
		Price:     price,
		Quantity:  qty,
		Timestamp: clock.NowNanos(),
	}
}
