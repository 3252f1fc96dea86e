package engine

import (
	"fmt"
	"math"
)

// PriceScale is the fixed-point scale backing Price: a raw value v
// represents v / PriceScale.
const PriceScale = 10000

// Price is a signed, fixed-point decimal with four fractional digits.
// All arithmetic is exact integer arithmetic on the raw value; the
// engine never multiplies two Price values together.
type Price int64

const (
	ZeroPrice Price = 0
	// InvalidPrice marks the absence of a usable price. It must stay
	// distinguishable from MinPrice.
	InvalidPrice Price = math.MinInt64
	MaxPrice     Price = math.MaxInt64
	MinPrice     Price = math.MinInt64 + 1
)

// PriceFromFloat truncates toward zero after scaling.
func PriceFromFloat(v float64) Price {
	return Price(math.Trunc(v * PriceScale))
}

// PriceFromRaw wraps an already-scaled integer.
func PriceFromRaw(raw int64) Price {
	return Price(raw)
}

func (p Price) Raw() int64 { return int64(p) }

func (p Price) IsValid() bool { return p != InvalidPrice }

func (p Price) Add(o Price) Price { return p + o }
func (p Price) Sub(o Price) Price { return p - o }
func (p Price) MulInt(n int64) Price { return Price(int64(p) * n) }
func (p Price) DivInt(n int64) Price { return Price(int64(p) / n) }

func (p Price) Less(o Price) bool    { return p < o }
func (p Price) Greater(o Price) bool { return p > o }
func (p Price) Equal(o Price) bool   { return p == o }

// String renders sign, integer part, '.', and four zero-padded
// fractional digits; sentinels render as their name.
func (p Price) String() string {
	switch p {
	case InvalidPrice:
		return "INVALID"
	case MaxPrice:
		return "MAX"
	case MinPrice:
		return "MIN"
	}
	raw := int64(p)
	sign := ""
	if raw < 0 {
		sign = "-"
		raw = -raw
	}
	whole := raw / PriceScale
	frac := raw % PriceScale
	return fmt.Sprintf("%s%d.%04d", sign, whole, frac)
}
