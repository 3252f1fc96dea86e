package engine

import "testing"

func TestPriceFromFloatTruncates(t *testing.T) {
	cases := []struct {
		in   float64
		want Price
	}{
		{100.0, Price(1000000)},
		{100.5, Price(1005000)},
		{-5.5, Price(-55000)},
		{0, ZeroPrice},
	}
	for _, c := range cases {
		got := PriceFromFloat(c.in)
		if got != c.want {
			t.Errorf("PriceFromFloat(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestPriceArithmeticIsExactInteger(t *testing.T) {
	a := PriceFromRaw(1005000)
	b := PriceFromRaw(250000)

	if got := a.Add(b); got != PriceFromRaw(1255000) {
		t.Errorf("Add = %v, want 1255000", got)
	}
	if got := a.Sub(b); got != PriceFromRaw(755000) {
		t.Errorf("Sub = %v, want 755000", got)
	}
	if got := a.MulInt(2); got != PriceFromRaw(2010000) {
		t.Errorf("MulInt = %v, want 2010000", got)
	}
	if got := a.DivInt(2); got != PriceFromRaw(502500) {
		t.Errorf("DivInt = %v, want 502500", got)
	}
}

func TestPriceOrdering(t *testing.T) {
	low := PriceFromRaw(100)
	high := PriceFromRaw(200)

	if !low.Less(high) {
		t.Error("expected low < high")
	}
	if !high.Greater(low) {
		t.Error("expected high > low")
	}
	if !low.Equal(PriceFromRaw(100)) {
		t.Error("expected equal raw values to compare equal")
	}
}

func TestPriceStringFormatting(t *testing.T) {
	cases := []struct {
		in   Price
		want string
	}{
		{PriceFromRaw(1000000), "100.0000"},
		{PriceFromRaw(-55000), "-5.5000"},
		{ZeroPrice, "0.0000"},
		{InvalidPrice, "INVALID"},
		{MaxPrice, "MAX"},
		{MinPrice, "MIN"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("String(%v) = %q, want %q", int64(c.in), got, c.want)
		}
	}
}

func TestPriceSentinelsAreDistinguishable(t *testing.T) {
	if InvalidPrice == MinPrice {
		t.Fatal("INVALID and MIN must be distinguishable")
	}
	if PriceFromRaw(int64(InvalidPrice)).IsValid() {
		t.Error("InvalidPrice should not be valid")
	}
}
