package engine

import "container/list"

// Execution pairs a maker order with the quantity delta applied to it
// during a single ExecuteQuantity call.
type Execution struct {
	Order *Order
	Delta Quantity
}

// PriceLevel is the FIFO queue of resting orders at a single price.
// It uses container/list for the arrival-ordered queue and a map of
// order id to list element for O(1) removal by id — the id index
// google/btree doesn't give us within one level.
type PriceLevel struct {
	price         Price
	orders        *list.List
	index         map[OrderID]*list.Element
	totalQuantity Quantity
}

func NewPriceLevel(price Price) *PriceLevel {
	return &PriceLevel{
		price:  price,
		orders: list.New(),
		index:  make(map[OrderID]*list.Element),
	}
}

func (pl *PriceLevel) Price() Price            { return pl.price }
func (pl *PriceLevel) TotalQuantity() Quantity { return pl.totalQuantity }
func (pl *PriceLevel) IsEmpty() bool           { return pl.orders.Len() == 0 }
func (pl *PriceLevel) OrderCount() int         { return pl.orders.Len() }

// AddOrder appends o to the FIFO tail. Preconditions (o.price ==
// level.price, o.RemainingQuantity() > 0) are the caller's
// responsibility; violations are silently dropped since the book
// never constructs such a call.
func (pl *PriceLevel) AddOrder(o *Order) {
	if o == nil || o.Price != pl.price || o.RemainingQuantity() <= ZeroQuantity {
		return
	}
	elem := pl.orders.PushBack(o)
	pl.index[o.ID] = elem
	pl.totalQuantity += o.RemainingQuantity()
}

// RemoveOrder removes the order by id in O(1), decrementing
// totalQuantity by its remaining quantity at removal time.
func (pl *PriceLevel) RemoveOrder(id OrderID) bool {
	elem, ok := pl.index[id]
	if !ok {
		return false
	}
	o := elem.Value.(*Order)
	pl.totalQuantity -= o.RemainingQuantity()
	pl.orders.Remove(elem)
	delete(pl.index, id)
	return true
}

// ModifyOrderQuantity only decreases the order's quantity; it rejects
// decreases below the already-executed amount and never reorders the
// FIFO.
func (pl *PriceLevel) ModifyOrderQuantity(clock Clock, id OrderID, qNew Quantity) bool {
	elem, ok := pl.index[id]
	if !ok {
		return false
	}
	o := elem.Value.(*Order)
	if qNew < o.ExecutedQuantity || qNew > o.Quantity {
		return false
	}
	oldRemaining := o.RemainingQuantity()
	o.SetQuantity(clock, qNew)
	newRemaining := o.RemainingQuantity()
	pl.totalQuantity += newRemaining - oldRemaining
	return true
}

// ExecuteQuantity drains orders from the FIFO head, applying up to qty
// total across as many resting orders as needed. Fully-filled orders
// pop from the FIFO and the id index. Zero-delta executions are never
// recorded.
func (pl *PriceLevel) ExecuteQuantity(clock Clock, qty Quantity) []Execution {
	var executions []Execution
	remaining := qty

	for remaining > ZeroQuantity {
		front := pl.orders.Front()
		if front == nil {
			break
		}
		o := front.Value.(*Order)

		delta := MinQty(remaining, o.RemainingQuantity())
		applied := o.Execute(clock, delta)
		if applied <= ZeroQuantity {
			break
		}

		executions = append(executions, Execution{Order: o, Delta: applied})
		pl.totalQuantity -= applied
		remaining -= applied

		if o.IsFilled() {
			pl.orders.Remove(front)
			delete(pl.index, o.ID)
		}
	}

	return executions
}

func (pl *PriceLevel) GetFirstOrder() (*Order, bool) {
	front := pl.orders.Front()
	if front == nil {
		return nil, false
	}
	return front.Value.(*Order), true
}

func (pl *PriceLevel) GetOrder(id OrderID) (*Order, bool) {
	elem, ok := pl.index[id]
	if !ok {
		return nil, false
	}
	return elem.Value.(*Order), true
}

// GetAllOrders returns resting orders in FIFO arrival order.
func (pl *PriceLevel) GetAllOrders() []*Order {
	orders := make([]*Order, 0, pl.orders.Len())
	for e := pl.orders.Front(); e != nil; e = e.Next() {
		orders = append(orders, e.Value.(*Order))
	}
	return orders
}
