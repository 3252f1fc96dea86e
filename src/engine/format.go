package engine

import "fmt"

// String renders the debug/log text form:
// Order[id=…, symbol=…, side=…, type=…, qty=…, exec_qty=…, price=…, tif=…, status=…, time=…, last_update=…]
func (o *Order) String() string {
	return fmt.Sprintf(
		"Order[id=%d, symbol=%s, side=%s, type=%s, qty=%s, exec_qty=%s, price=%s, tif=%s, status=%s, time=%d, last_update=%d]",
		o.ID, o.Symbol, o.Side, o.Type, o.Quantity, o.ExecutedQuantity, o.Price, o.TimeInForce, o.Status, o.CreatedAt, o.LastUpdate,
	)
}

// String renders PriceLevel[price=…, orders=…, quantity=…].
func (pl *PriceLevel) String() string {
	return fmt.Sprintf("PriceLevel[price=%s, orders=%d, quantity=%s]", pl.price, pl.OrderCount(), pl.totalQuantity)
}

// String renders:
// OrderBook[symbol=…, bids=…, asks=…, orders=…, bid_qty=…, ask_qty=…, best_bid=…|none, best_ask=…|none, spread=…|none]
func (ob *OrderBook) String() string {
	bestBid := "none"
	if p, ok := ob.BestBid(); ok {
		bestBid = p.String()
	}
	bestAsk := "none"
	if p, ok := ob.BestAsk(); ok {
		bestAsk = p.String()
	}
	spread := "none"
	if s, ok := ob.Spread(); ok {
		spread = s.String()
	}
	return fmt.Sprintf(
		"OrderBook[symbol=%s, bids=%d, asks=%d, orders=%d, bid_qty=%s, ask_qty=%s, best_bid=%s, best_ask=%s, spread=%s]",
		ob.symbol, ob.bids.Len(), ob.asks.Len(), len(ob.orders), ob.totalBidQuantity, ob.totalAskQuantity, bestBid, bestAsk, spread,
	)
}

// String renders Match[maker=…, taker=…, price=…, qty=…, time=…].
func (m OrderMatch) String() string {
	return fmt.Sprintf("Match[maker=%d, taker=%d, price=%s, qty=%s, time=%d]", m.MakerID, m.TakerID, m.Price, m.Quantity, m.Timestamp)
}
