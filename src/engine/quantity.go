package engine

import (
	"fmt"
	"math"
)

// QuantityScale is the fixed-point scale backing Quantity.
const QuantityScale = 10000

// Quantity is a signed, fixed-point decimal with four fractional
// digits. Quantities handled by the engine must be >= 0; negative raw
// values are reserved for sentinels and rejected at entry.
type Quantity int64

const (
	ZeroQuantity Quantity = 0
	InvalidQuantity Quantity = math.MinInt64
	MaxQuantity     Quantity = math.MaxInt64
	MinQuantity     Quantity = math.MinInt64 + 1
)

func QuantityFromFloat(v float64) Quantity {
	return Quantity(math.Trunc(v * QuantityScale))
}

func QuantityFromRaw(raw int64) Quantity {
	return Quantity(raw)
}

func (q Quantity) Raw() int64 { return int64(q) }

func (q Quantity) IsValid() bool { return q != InvalidQuantity }

// IsNonNegative reports whether q is usable as an order size: zero or
// positive. Negative raw values are reserved for sentinels and must be
// rejected at entry.
func (q Quantity) IsNonNegative() bool {
	return q >= ZeroQuantity
}

func (q Quantity) Add(o Quantity) Quantity { return q + o }
func (q Quantity) Sub(o Quantity) Quantity { return q - o }
func (q Quantity) MulInt(n int64) Quantity { return Quantity(int64(q) * n) }
func (q Quantity) DivInt(n int64) Quantity { return Quantity(int64(q) / n) }

func (q Quantity) Less(o Quantity) bool    { return q < o }
func (q Quantity) Greater(o Quantity) bool { return q > o }
func (q Quantity) Equal(o Quantity) bool   { return q == o }

// MinQty returns the smaller of two quantities; PriceLevel.ExecuteQuantity
// uses it to clamp execution deltas.
func MinQty(a, b Quantity) Quantity {
	if a < b {
		return a
	}
	return b
}

func (q Quantity) String() string {
	switch q {
	case InvalidQuantity:
		return "INVALID"
	case MaxQuantity:
		return "MAX"
	case MinQuantity:
		return "MIN"
	}
	raw := int64(q)
	sign := ""
	if raw < 0 {
		sign = "-"
		raw = -raw
	}
	whole := raw / QuantityScale
	frac := raw % QuantityScale
	return fmt.Sprintf("%s%d.%04d", sign, whole, frac)
}
