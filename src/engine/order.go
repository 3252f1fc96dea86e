package engine

import "time"

// OrderID identifies an order. Zero is reserved as InvalidOrderID.
type OrderID uint64

const InvalidOrderID OrderID = 0

type OrderSide string

const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

// OrderType distinguishes resting order kinds (LIMIT, MARKET) from
// request kinds (CANCEL, MODIFY). CANCEL/MODIFY never appear as
// resting orders; callers reach them through CancelOrder/ModifyOrder.
type OrderType string

const (
	TypeLimit  OrderType = "LIMIT"
	TypeMarket OrderType = "MARKET"
	TypeCancel OrderType = "CANCEL"
	TypeModify OrderType = "MODIFY"
)

type TimeInForce string

const (
	TIFGTC TimeInForce = "GTC"
	TIFIOC TimeInForce = "IOC"
	TIFFOK TimeInForce = "FOK"
)

type OrderStatus string

const (
	StatusNew             OrderStatus = "NEW"
	StatusAccepted        OrderStatus = "ACCEPTED"
	StatusPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
	StatusFilled          OrderStatus = "FILLED"
	StatusCancelled       OrderStatus = "CANCELLED"
	StatusReplaced        OrderStatus = "REPLACED"
	StatusRejected        OrderStatus = "REJECTED"
)

// Clock is the monotonic time source the engine consumes. Tests inject
// a fake for deterministic timestamps; production uses SystemClock.
type Clock interface {
	NowNanos() int64
}

type systemClock struct{}

var processStart = time.Now()

// NowNanos reports nanoseconds elapsed since process start, read from
// Go's monotonic clock reading.
func (systemClock) NowNanos() int64 { return int64(time.Since(processStart)) }

// SystemClock is the default Clock, backed by the monotonic clock.
var SystemClock Clock = systemClock{}

// Order is the engine's order record: immutable descriptor fields set
// at construction, plus execution/status state mutated by the book
// and price level as the order moves through its lifecycle.
type Order struct {
	ID               OrderID
	Symbol           string
	Side             OrderSide
	Type             OrderType
	Quantity         Quantity
	ExecutedQuantity Quantity
	Price            Price
	TimeInForce      TimeInForce
	Status           OrderStatus
	CreatedAt        int64
	LastUpdate       int64
}

// NewOrder constructs an order in status NEW with zero executed
// quantity. clock.NowNanos() stamps both CreatedAt and LastUpdate.
func NewOrder(clock Clock, id OrderID, symbol string, side OrderSide, typ OrderType, price Price, quantity Quantity, tif TimeInForce) *Order {
	now := clock.NowNanos()
	return &Order{
		ID:          id,
		Symbol:      symbol,
		Side:        side,
		Type:        typ,
		Quantity:    quantity,
		Price:       price,
		TimeInForce: tif,
		Status:      StatusNew,
		CreatedAt:   now,
		LastUpdate:  now,
	}
}

// IsValid reports whether the order is structurally acceptable for
// entry: a non-nil receiver with a non-zero id.
func (o *Order) IsValid() bool {
	return o != nil && o.ID != InvalidOrderID
}

// RemainingQuantity is the derived quantity still open for execution.
func (o *Order) RemainingQuantity() Quantity {
	return o.Quantity - o.ExecutedQuantity
}

// IsActive reports whether the order can still rest in or be matched
// against the book.
func (o *Order) IsActive() bool {
	switch o.Status {
	case StatusNew, StatusAccepted, StatusPartiallyFilled, StatusReplaced:
		return true
	default:
		return false
	}
}

func (o *Order) IsFilled() bool {
	return o.ExecutedQuantity >= o.Quantity
}

// Execute clamps delta to the remaining quantity, advances the
// executed total, and moves status to PARTIALLY_FILLED or FILLED. It
// returns the quantity actually applied, which may be less than delta
// or zero.
func (o *Order) Execute(clock Clock, delta Quantity) Quantity {
	remaining := o.RemainingQuantity()
	if delta > remaining {
		delta = remaining
	}
	if delta <= ZeroQuantity {
		return ZeroQuantity
	}
	o.ExecutedQuantity += delta
	if o.ExecutedQuantity >= o.Quantity {
		o.Status = StatusFilled
	} else {
		o.Status = StatusPartiallyFilled
	}
	o.LastUpdate = clock.NowNanos()
	return delta
}

// Cancel sets status CANCELLED iff the order is currently active; a
// no-op otherwise.
func (o *Order) Cancel(clock Clock) {
	if !o.IsActive() {
		return
	}
	o.Status = StatusCancelled
	o.LastUpdate = clock.NowNanos()
}

// SetStatus updates status and LastUpdate.
func (o *Order) SetStatus(clock Clock, status OrderStatus) {
	o.Status = status
	o.LastUpdate = clock.NowNanos()
}

// SetQuantity is a raw mutator used only by the price level, under the
// controlled conditions of modify_order_quantity.
func (o *Order) SetQuantity(clock Clock, q Quantity) {
	o.Quantity = q
	o.LastUpdate = clock.NowNanos()
}
