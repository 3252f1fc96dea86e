package engine

import (
	"strings"
	"testing"
)

func TestOrderStringContainsAllFields(t *testing.T) {
	clock := &fakeClock{}
	o := NewOrder(clock, 1001, "AAPL", SideBuy, TypeLimit, PriceFromFloat(100), QuantityFromFloat(10), TIFGTC)

	s := o.String()
	for _, want := range []string{"id=1001", "symbol=AAPL", "side=BUY", "type=LIMIT", "price=100.0000", "tif=GTC"} {
		if !strings.Contains(s, want) {
			t.Errorf("Order.String() = %q, missing %q", s, want)
		}
	}
}

func TestOrderBookStringRendersNoneForEmptySides(t *testing.T) {
	book, clock := newTestBook("AAPL")
	submitLimit(book, clock, 1, SideBuy, 10, 100, TIFGTC)

	s := book.String()
	if !strings.Contains(s, "best_ask=none") {
		t.Errorf("OrderBook.String() = %q, expected best_ask=none", s)
	}
	if !strings.Contains(s, "spread=none") {
		t.Errorf("OrderBook.String() = %q, expected spread=none", s)
	}
}

func TestMatchStringFormat(t *testing.T) {
	m := OrderMatch{MakerID: 1, TakerID: 2, Price: PriceFromFloat(100), Quantity: QuantityFromFloat(5), Timestamp: 42}
	s := m.String()
	if !strings.Contains(s, "maker=1") || !strings.Contains(s, "taker=2") || !strings.Contains(s, "price=100.0000") {
		t.Errorf("Match.String() = %q", s)
	}
}
