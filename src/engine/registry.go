package engine

import "sync"

// BookRegistry owns one OrderBook per symbol and hands out the right
// one on demand. The natural unit of parallelism is one book per
// symbol: the registry's own map access is serialized by its mutex,
// while each OrderBook it hands out remains internally lock-free and
// must still be serialized by whoever drives it. BookRegistry never
// matches across symbols — GetOrCreateOrderBook only ever returns one
// symbol's independent book.
type BookRegistry struct {
	books map[string]*OrderBook
	mu    sync.RWMutex

	clock Clock
	sink  LogSink
}

// NewBookRegistry constructs an empty registry. Every book it creates
// shares clock and sink; pass NoopSink{} and SystemClock for defaults.
func NewBookRegistry(clock Clock, sink LogSink) *BookRegistry {
	return &BookRegistry{
		books: make(map[string]*OrderBook),
		clock: clock,
		sink:  sink,
	}
}

// GetOrCreateOrderBook returns the book for symbol, creating it on
// first use.
func (r *BookRegistry) GetOrCreateOrderBook(symbol string) *OrderBook {
	r.mu.RLock()
	if book, ok := r.books[symbol]; ok {
		r.mu.RUnlock()
		return book
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if book, ok := r.books[symbol]; ok {
		return book
	}

	book := NewOrderBookWithClockAndSink(symbol, r.clock, r.sink)
	r.books[symbol] = book
	return book
}

// Snapshot returns a shallow copy of the registry's current symbol set,
// safe to iterate without holding the registry's lock.
func (r *BookRegistry) Snapshot() map[string]*OrderBook {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]*OrderBook, len(r.books))
	for symbol, book := range r.books {
		snapshot[symbol] = book
	}
	return snapshot
}
