package ratio

import "testing"
import "math"

func TestNewReduces(t *testing.T) {
	tests := []struct {
		num, den int64
		outNum   int64
		outDen   int64
	}{
		{1, 2, 1, 2}, {2, 4, 1, 2}, {-2, 4, -1, 2}, {2, -4, -1, 2},
		{-2, -4, 1, 2}, {0, 5, 0, 1}, {0, -5, 0, 1}, {6, 3, 2, 1},
		{45359237, 100000000, 45359237, 100000000}, {381, 1250, 381, 1250},
		{100, 10, 10, 1}, {-7, 7, -1, 1},
	}

	for i, test := range tests {
		out := Must(test.num, test.den)
		if out.Num() != test.outNum || out.Den() != test.outDen {
			str := "test #%d: %d/%d expected %d/%d, got %d/%d"
			t.Fatalf(str, i, test.num, test.den, test.outNum, test.outDen, out.Num(), out.Den())
		}
	}
}

func TestNewZeroDenominator(t *testing.T) {
	_, err := New(3, 0)
	if err != ErrZeroDenominator {
		t.Fatalf("expected ErrZeroDenominator, got %v", err)
	}
}

func TestZeroValue(t *testing.T) {
	var zero Ratio // uninitialized, den is 0 internally
	if !zero.IsZero() { t.Fatal("zero value must report IsZero") }
	if !zero.Equal(Zero) { t.Fatal("zero value must equal Zero") }
	if zero.Den() != 1 { t.Fatalf("zero value den expected 1, got %d", zero.Den()) }
	if !zero.Add(One).Equal(One) { t.Fatal("0 + 1 != 1") }
}

func TestAdd(t *testing.T) {
	tests := []struct{ a, b, out Ratio }{
		{Must(1, 2), Must(1, 3), Must(5, 6)},
		{Must(1, 2), Must(1, 2), One},
		{Must(1, 2), Must(-1, 2), Zero},
		{Must(27315, 100), Must(-160, 9), Must(45967, 180)},
		{Must(2, 3), FromInt(2), Must(8, 3)},
		{Zero, Zero, Zero},
	}

	for i, test := range tests {
		out := test.a.Add(test.b)
		if !out.Equal(test.out) {
			t.Fatalf("test #%d: %s + %s expected %s, got %s", i, test.a, test.b, test.out, out)
		}
	}
}

func TestSub(t *testing.T) {
	tests := []struct{ a, b, out Ratio }{
		{Must(45967, 180), Must(27315, 100), Must(-160, 9)},
		{One, One, Zero},
		{Must(1, 6), Must(1, 3), Must(-1, 6)},
	}

	for i, test := range tests {
		out := test.a.Sub(test.b)
		if !out.Equal(test.out) {
			t.Fatalf("test #%d: %s - %s expected %s, got %s", i, test.a, test.b, test.out, out)
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct{ a, b, out Ratio }{
		{Must(1, 2), Must(2, 3), Must(1, 3)},
		{Must(381, 1250), Must(1, 12), Must(127, 5000)}, // feet to inches chain
		{Must(-3, 4), Must(4, 3), FromInt(-1)},
		{Zero, Must(7, 3), Zero},
		{Must(5, 9), Must(9, 5), One},
	}

	for i, test := range tests {
		out := test.a.Mul(test.b)
		if !out.Equal(test.out) {
			t.Fatalf("test #%d: %s * %s expected %s, got %s", i, test.a, test.b, test.out, out)
		}
	}
}

// Conversion factors can individually be near the int64 limit. As long
// as the final reduced result fits, multiplication must not overflow on
// the intermediate products.
func TestMulCrossReduction(t *testing.T) {
	big := FromInt(9460730472580800) // meters per light year
	out := big.Mul(big.Inv())
	if !out.IsOne() { t.Fatalf("expected 1, got %s", out) }

	out = big.Mul(Must(1, 9460730472580800/2))
	if !out.Equal(FromInt(2)) { t.Fatalf("expected 2, got %s", out) }
}

func TestMulCheckedOverflow(t *testing.T) {
	big := FromInt(9460730472580800) // meters per light year
	if _, ok := big.MulChecked(big); ok {
		t.Fatal("square of 9.46e15 must not fit int64")
	}
	if _, ok := Must(1, 9460730472580800).MulChecked(Must(1, 9460730472580800)); ok {
		t.Fatal("overflowing denominator must report false")
	}

	// in-range products agree with Mul
	out, ok := Must(381, 1250).MulChecked(Must(1, 12))
	if !ok || !out.Equal(Must(127, 5000)) {
		t.Fatalf("expected 127/5000, got %s (ok = %t)", out, ok)
	}
}

func TestDivCheckedOverflow(t *testing.T) {
	// parsecs over angstroms: both ratios fit, the quotient does not
	parsec := FromInt(96939420247200000)
	angstrom := Must(1, 10000000000)
	if _, ok := parsec.DivChecked(angstrom); ok {
		t.Fatal("quotient spanning 26 orders of magnitude must report false")
	}

	out, ok := Must(3, 4).DivChecked(Must(3, 8))
	if !ok || !out.Equal(FromInt(2)) {
		t.Fatalf("expected 2, got %s (ok = %t)", out, ok)
	}
}

func TestMulOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatal("out-of-range product must panic") }
	}()
	big := FromInt(9460730472580800)
	_ = big.Mul(big)
}

func TestDiv(t *testing.T) {
	tests := []struct{ a, b, out Ratio }{
		{Must(1, 2), Must(1, 2), One},
		{Must(3, 4), Must(3, 8), FromInt(2)},
		{One, Must(-2, 3), Must(-3, 2)},
	}

	for i, test := range tests {
		out := test.a.Div(test.b)
		if !out.Equal(test.out) {
			t.Fatalf("test #%d: %s / %s expected %s, got %s", i, test.a, test.b, test.out, out)
		}
	}
}

func TestInvZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil { t.Fatal("inverse of zero must panic") }
	}()
	_ = Zero.Inv()
}

func TestPow(t *testing.T) {
	tests := []struct {
		in  Ratio
		exp int
		out Ratio
	}{
		{Must(1, 2), 2, Must(1, 4)},
		{Must(2, 3), 3, Must(8, 27)},
		{Must(2, 3), 0, One},
		{Zero, 0, One},
		{Must(1, 2), -2, FromInt(4)},
		{FromInt(10), 3, FromInt(1000)},
	}

	for i, test := range tests {
		out := test.in.Pow(test.exp)
		if !out.Equal(test.out) {
			t.Fatalf("test #%d: %s^%d expected %s, got %s", i, test.in, test.exp, test.out, out)
		}
	}
}

func TestCmpSign(t *testing.T) {
	tests := []struct {
		a, b Ratio
		out  int
	}{
		{Must(1, 2), Must(1, 3), 1},
		{Must(1, 3), Must(1, 2), -1},
		{Must(2, 4), Must(1, 2), 0},
		{Must(-1, 2), Zero, -1},
	}

	for i, test := range tests {
		if out := test.a.Cmp(test.b); out != test.out {
			t.Fatalf("test #%d: cmp(%s, %s) expected %d, got %d", i, test.a, test.b, test.out, out)
		}
	}

	if Must(-3, 5).Sign() != -1 { t.Fatal("bad sign") }
	if Zero.Sign() != 0 { t.Fatal("bad sign") }
	if Must(3, 5).Sign() != 1 { t.Fatal("bad sign") }
}

func TestFloat64(t *testing.T) {
	tests := []struct {
		in  Ratio
		out float64
	}{
		{One, 1}, {Zero, 0}, {Must(1, 2), 0.5}, {Must(-3, 4), -0.75},
		{Must(5, 9), 5.0 / 9.0}, {FromInt(299792458), 299792458},
	}

	for i, test := range tests {
		out := test.in.Float64()
		if out != test.out {
			t.Fatalf("test #%d: %s expected %f, got %f", i, test.in, test.out, out)
		}
	}
	if !math.IsInf(1/Zero.Float64(), 1) { t.Fatal("expected +inf") }
}

func TestString(t *testing.T) {
	tests := []struct {
		in  Ratio
		out string
	}{
		{Zero, "0"}, {One, "1"}, {Must(1, 2), "1/2"}, {Must(-5, 9), "-5/9"},
		{FromInt(42), "42"}, {Must(4, 2), "2"},
	}

	for i, test := range tests {
		if out := test.in.String(); out != test.out {
			t.Fatalf("test #%d: expected %q, got %q", i, test.out, out)
		}
	}
}
