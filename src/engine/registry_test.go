package engine

import "testing"

func TestBookRegistryCreatesOncePerSymbol(t *testing.T) {
	reg := NewBookRegistry(SystemClock, NoopSink{})

	a := reg.GetOrCreateOrderBook("AAPL")
	b := reg.GetOrCreateOrderBook("AAPL")

	if a != b {
		t.Error("expected the same *OrderBook on repeated lookups for one symbol")
	}

	msft := reg.GetOrCreateOrderBook("MSFT")
	if msft == a {
		t.Error("expected independent books for distinct symbols")
	}
	if msft.Symbol() != "MSFT" {
		t.Errorf("symbol = %q, want MSFT", msft.Symbol())
	}
}

func TestBookRegistrySnapshotIsIndependentOfFutureWrites(t *testing.T) {
	reg := NewBookRegistry(SystemClock, NoopSink{})
	reg.GetOrCreateOrderBook("AAPL")

	snap := reg.Snapshot()
	reg.GetOrCreateOrderBook("MSFT")

	if _, ok := snap["MSFT"]; ok {
		t.Error("snapshot should not observe books created after it was taken")
	}
	if _, ok := snap["AAPL"]; !ok {
		t.Error("snapshot should contain books that existed at the time it was taken")
	}
}
