package logger

import (
	"github.com/google/uuid"

	"clob-engine/src/engine"
)

// matchSink adapts the configured zerolog.Logger into an
// engine.LogSink: every emitted match becomes one structured log line,
// tagged with its own fresh event id (one uuid per match, not per
// AddOrder/ModifyOrder call — a single call that crosses several
// resting orders logs several uncorrelated ids). It never blocks and
// never propagates a failure back into the engine.
type matchSink struct{}

// NewMatchSink returns a LogSink backed by the package's configured
// zerolog.Logger. Call InitLogger before constructing the book that
// uses it.
func NewMatchSink() engine.LogSink {
	return matchSink{}
}

func (matchSink) LogMatch(book *engine.OrderBook, m engine.OrderMatch) {
	log := BookLogger(book.Symbol())
	log.Info().
		Str("event_id", uuid.New().String()).
		Uint64("maker_id", uint64(m.MakerID)).
		Uint64("taker_id", uint64(m.TakerID)).
		Str("price", m.Price.String()).
		Str("quantity", m.Quantity.String()).
		Int64("timestamp", m.Timestamp).
		Msg("order match executed")
}
