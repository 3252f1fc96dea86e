package engine

import "github.com/google/btree"

// bidItem orders price levels descending so the btree's smallest
// element (by Less) is the highest price — the best bid.
type bidItem struct{ level *PriceLevel }

func (b *bidItem) Less(than btree.Item) bool {
	return b.level.Price() > than.(*bidItem).level.Price()
}

// askItem orders price levels ascending so the btree's smallest
// element is the lowest price — the best ask.
type askItem struct{ level *PriceLevel }

func (a *askItem) Less(than btree.Item) bool {
	return a.level.Price() < than.(*askItem).level.Price()
}

// OrderBook is a single-symbol, two-sided order book: two ordered
// price-level indices, a symbol-scoped order registry, and the
// matching routines that drain one side against incoming orders.
//
// OrderBook takes no internal locks and performs no suspension; every
// public method is a critical section the caller must serialize, per
// the engine's single-threaded cooperative concurrency model. Multiple
// OrderBook instances (one per symbol) are independent and may run on
// separate goroutines without coordination.
type OrderBook struct {
	symbol string
	bids   *btree.BTree // bidItem, descending price
	asks   *btree.BTree // askItem, ascending price
	orders map[OrderID]*Order

	totalBidQuantity Quantity
	totalAskQuantity Quantity

	clock Clock
	sink  LogSink
}

const btreeDegree = 32

// NewOrderBook constructs an empty book for symbol, using the system
// clock and a no-op log sink.
func NewOrderBook(symbol string) *OrderBook {
	return NewOrderBookWithClockAndSink(symbol, SystemClock, NoopSink{})
}

// NewOrderBookWithClockAndSink constructs an empty book with an
// injected clock and log sink, for deterministic tests and custom
// observability wiring.
func NewOrderBookWithClockAndSink(symbol string, clock Clock, sink LogSink) *OrderBook {
	if clock == nil {
		clock = SystemClock
	}
	if sink == nil {
		sink = NoopSink{}
	}
	return &OrderBook{
		symbol: symbol,
		bids:   btree.New(btreeDegree),
		asks:   btree.New(btreeDegree),
		orders: make(map[OrderID]*Order),
		clock:  clock,
		sink:   sink,
	}
}

func (ob *OrderBook) Symbol() string { return ob.symbol }

func (ob *OrderBook) TotalBidQuantity() Quantity { return ob.totalBidQuantity }
func (ob *OrderBook) TotalAskQuantity() Quantity { return ob.totalAskQuantity }

func (ob *OrderBook) OrderCount() int    { return len(ob.orders) }
func (ob *OrderBook) BidLevelCount() int { return ob.bids.Len() }
func (ob *OrderBook) AskLevelCount() int { return ob.asks.Len() }

func (ob *OrderBook) GetOrder(id OrderID) (*Order, bool) {
	o, ok := ob.orders[id]
	return o, ok
}

// --- level lookup helpers ---

func (ob *OrderBook) levelFor(side OrderSide, price Price) *PriceLevel {
	if side == SideBuy {
		item := ob.bids.Get(&bidItem{level: &PriceLevel{price: price}})
		if item == nil {
			return nil
		}
		return item.(*bidItem).level
	}
	item := ob.asks.Get(&askItem{level: &PriceLevel{price: price}})
	if item == nil {
		return nil
	}
	return item.(*askItem).level
}

func (ob *OrderBook) getOrCreateLevel(side OrderSide, price Price) *PriceLevel {
	if level := ob.levelFor(side, price); level != nil {
		return level
	}
	level := NewPriceLevel(price)
	if side == SideBuy {
		ob.bids.ReplaceOrInsert(&bidItem{level: level})
	} else {
		ob.asks.ReplaceOrInsert(&askItem{level: level})
	}
	return level
}

func (ob *OrderBook) removeLevel(side OrderSide, price Price) {
	if side == SideBuy {
		ob.bids.Delete(&bidItem{level: &PriceLevel{price: price}})
	} else {
		ob.asks.Delete(&askItem{level: &PriceLevel{price: price}})
	}
}

// bestOpposite returns the best price level on the side opposite to
// side: asks for an incoming buy, bids for an incoming sell.
func (ob *OrderBook) bestOpposite(side OrderSide) (*PriceLevel, bool) {
	if side == SideBuy {
		item := ob.asks.Min()
		if item == nil {
			return nil, false
		}
		return item.(*askItem).level, true
	}
	item := ob.bids.Min()
	if item == nil {
		return nil, false
	}
	return item.(*bidItem).level, true
}

func (ob *OrderBook) removeOppositeLevel(side OrderSide, price Price) {
	if side == SideBuy {
		ob.removeLevel(SideSell, price)
	} else {
		ob.removeLevel(SideBuy, price)
	}
}

func (ob *OrderBook) addSideQuantity(side OrderSide, delta Quantity) {
	if side == SideBuy {
		ob.totalBidQuantity += delta
	} else {
		ob.totalAskQuantity += delta
	}
}

// crosses reports whether a limit order's price still crosses the
// given opposing level's price.
func crosses(side OrderSide, limit Price, levelPrice Price) bool {
	if side == SideBuy {
		return limit >= levelPrice
	}
	return limit <= levelPrice
}

// --- public entry points ---

// AddOrder routes o by type: MARKET runs market matching, LIMIT runs
// limit matching and then rests any eligible residual. CANCEL/MODIFY
// are not valid submissions here. An order with a negative quantity is
// marked REJECTED. Returns the emitted matches in execution order.
func (ob *OrderBook) AddOrder(o *Order) []OrderMatch {
	if !o.IsValid() {
		return nil
	}
	if !o.Quantity.IsNonNegative() {
		o.SetStatus(ob.clock, StatusRejected)
		return nil
	}

	switch o.Type {
	case TypeLimit, TypeMarket:
		o.SetStatus(ob.clock, StatusAccepted)
	default:
		o.SetStatus(ob.clock, StatusRejected)
		return nil
	}

	limitGuard := o.Type == TypeLimit
	matches := ob.match(o, limitGuard)

	if o.Type == TypeLimit && o.RemainingQuantity() > ZeroQuantity &&
		o.TimeInForce != TIFIOC && o.Status != StatusCancelled {
		ob.insert(o)
	}

	return matches
}

// CancelOrder removes id from its resting side, adjusts the side
// aggregate, drops the level if now empty, marks the order CANCELLED,
// and drops it from the registry.
func (ob *OrderBook) CancelOrder(id OrderID) bool {
	o, ok := ob.orders[id]
	if !ok {
		return false
	}

	level := ob.levelFor(o.Side, o.Price)
	if level == nil {
		delete(ob.orders, id)
		return false
	}

	removedRemaining := o.RemainingQuantity()
	if !level.RemoveOrder(id) {
		return false
	}
	ob.addSideQuantity(o.Side, -removedRemaining)

	if level.IsEmpty() {
		ob.removeLevel(o.Side, o.Price)
	}

	o.Cancel(ob.clock)
	delete(ob.orders, id)
	return true
}

// ModifyOrder applies an in-place quantity decrease when possible
// (preserving FIFO priority), otherwise performs cancel-and-replace.
func (ob *OrderBook) ModifyOrder(id OrderID, price *Price, qty *Quantity) []OrderMatch {
	if price == nil && qty == nil {
		return nil
	}

	o, ok := ob.orders[id]
	if !ok {
		return nil
	}

	if price == nil && qty != nil && *qty <= o.Quantity {
		level := ob.levelFor(o.Side, o.Price)
		if level == nil {
			return nil
		}
		oldRemaining := o.RemainingQuantity()
		if !level.ModifyOrderQuantity(ob.clock, id, *qty) {
			return nil
		}
		ob.addSideQuantity(o.Side, o.RemainingQuantity()-oldRemaining)

		if o.RemainingQuantity() <= ZeroQuantity {
			level.RemoveOrder(id)
			if level.IsEmpty() {
				ob.removeLevel(o.Side, o.Price)
			}
			o.SetStatus(ob.clock, StatusFilled)
			delete(ob.orders, id)
			return nil
		}

		o.SetStatus(ob.clock, StatusReplaced)
		return nil
	}

	side, typ, tif := o.Side, o.Type, o.TimeInForce
	newPrice := o.Price
	if price != nil {
		newPrice = *price
	}
	newQty := o.Quantity
	if qty != nil {
		newQty = *qty
	}

	if !ob.CancelOrder(id) {
		return nil
	}

	replacement := NewOrder(ob.clock, id, ob.symbol, side, typ, newPrice, newQty, tif)
	return ob.AddOrder(replacement)
}

// Clear drops every level and registry entry and zeroes the
// aggregates. It does not mutate the status of released orders.
func (ob *OrderBook) Clear() {
	ob.bids = btree.New(btreeDegree)
	ob.asks = btree.New(btreeDegree)
	ob.orders = make(map[OrderID]*Order)
	ob.totalBidQuantity = ZeroQuantity
	ob.totalAskQuantity = ZeroQuantity
}

func (ob *OrderBook) insert(o *Order) {
	level := ob.getOrCreateLevel(o.Side, o.Price)
	level.AddOrder(o)
	ob.addSideQuantity(o.Side, o.RemainingQuantity())
	ob.orders[o.ID] = o
}

// --- matching ---

// match drains the opposing side against o. limitGuard is true for
// limit orders: the loop exits when the best opposing price no longer
// crosses o.Price. Market orders pass limitGuard=false and drain until
// the opposite side empties or o fills.
//
// FOK is handled by a pre-check of fillable depth rather than a
// speculative execute-then-reverse: if the full remaining quantity
// isn't immediately fillable, no mutation occurs, matches is nil, and
// o is CANCELLED.
func (ob *OrderBook) match(o *Order, limitGuard bool) []OrderMatch {
	if o.TimeInForce == TIFFOK {
		if ob.fillableDepth(o, limitGuard) < o.RemainingQuantity() {
			o.SetStatus(ob.clock, StatusCancelled)
			return nil
		}
	}

	var matches []OrderMatch

	for o.RemainingQuantity() > ZeroQuantity {
		level, ok := ob.bestOpposite(o.Side)
		if !ok {
			break
		}
		if limitGuard && !crosses(o.Side, o.Price, level.Price()) {
			break
		}

		execs := level.ExecuteQuantity(ob.clock, o.RemainingQuantity())
		if len(execs) == 0 {
			break
		}

		for _, ex := range execs {
			applied := o.Execute(ob.clock, ex.Delta)
			m := newOrderMatch(ob.clock, ex.Order.ID, o.ID, level.Price(), applied)
			matches = append(matches, m)
			ob.sink.LogMatch(ob, m)

			ob.addSideQuantity(oppositeSide(o.Side), -applied)
			if ex.Order.IsFilled() {
				delete(ob.orders, ex.Order.ID)
			}
		}

		if level.IsEmpty() {
			ob.removeOppositeLevel(o.Side, level.Price())
		}
	}

	return matches
}

// fillableDepth sums the quantity available on the opposing side,
// respecting the same crossing guard the matching loop would apply,
// without mutating anything.
func (ob *OrderBook) fillableDepth(o *Order, limitGuard bool) Quantity {
	var depth Quantity
	walk := func(item btree.Item) bool {
		var level *PriceLevel
		if o.Side == SideBuy {
			level = item.(*askItem).level
		} else {
			level = item.(*bidItem).level
		}
		if limitGuard && !crosses(o.Side, o.Price, level.Price()) {
			return false
		}
		depth += level.TotalQuantity()
		return true
	}
	if o.Side == SideBuy {
		ob.asks.Ascend(walk)
	} else {
		ob.bids.Ascend(walk)
	}
	return depth
}

func oppositeSide(side OrderSide) OrderSide {
	if side == SideBuy {
		return SideSell
	}
	return SideBuy
}

// --- observation interface ---

func (ob *OrderBook) BestBid() (Price, bool) {
	item := ob.bids.Min()
	if item == nil {
		return ZeroPrice, false
	}
	return item.(*bidItem).level.Price(), true
}

func (ob *OrderBook) BestAsk() (Price, bool) {
	item := ob.asks.Min()
	if item == nil {
		return ZeroPrice, false
	}
	return item.(*askItem).level.Price(), true
}

func (ob *OrderBook) Spread() (Price, bool) {
	bid, okBid := ob.BestBid()
	ask, okAsk := ob.BestAsk()
	if !okBid || !okAsk {
		return ZeroPrice, false
	}
	return ask - bid, true
}

// Midpoint truncates toward zero via raw integer division; callers
// should be aware of this rounding.
func (ob *OrderBook) Midpoint() (Price, bool) {
	bid, okBid := ob.BestBid()
	ask, okAsk := ob.BestAsk()
	if !okBid || !okAsk {
		return ZeroPrice, false
	}
	return Price((bid.Raw() + ask.Raw()) / 2), true
}

func (ob *OrderBook) GetBidPrices() []Price {
	prices := make([]Price, 0, ob.bids.Len())
	ob.bids.Ascend(func(item btree.Item) bool {
		prices = append(prices, item.(*bidItem).level.Price())
		return true
	})
	return prices
}

func (ob *OrderBook) GetAskPrices() []Price {
	prices := make([]Price, 0, ob.asks.Len())
	ob.asks.Ascend(func(item btree.Item) bool {
		prices = append(prices, item.(*askItem).level.Price())
		return true
	})
	return prices
}

func (ob *OrderBook) GetBids() map[Price]Quantity {
	snapshot := make(map[Price]Quantity, ob.bids.Len())
	ob.bids.Ascend(func(item btree.Item) bool {
		level := item.(*bidItem).level
		snapshot[level.Price()] = level.TotalQuantity()
		return true
	})
	return snapshot
}

func (ob *OrderBook) GetAsks() map[Price]Quantity {
	snapshot := make(map[Price]Quantity, ob.asks.Len())
	ob.asks.Ascend(func(item btree.Item) bool {
		level := item.(*askItem).level
		snapshot[level.Price()] = level.TotalQuantity()
		return true
	})
	return snapshot
}

func (ob *OrderBook) GetQuantityAtLevel(price Price, side OrderSide) Quantity {
	level := ob.levelFor(side, price)
	if level == nil {
		return ZeroQuantity
	}
	return level.TotalQuantity()
}

func (ob *OrderBook) GetOrdersAtLevel(price Price, side OrderSide) []*Order {
	level := ob.levelFor(side, price)
	if level == nil {
		return nil
	}
	return level.GetAllOrders()
}
