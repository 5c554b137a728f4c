package ratio

import "errors"
import "math"
import "math/bits"
import "strconv"

// Returned by [New] when the given denominator is zero.
var ErrZeroDenominator = errors.New("ratio with zero denominator")

// An exact fraction of two int64 values. Ratios are immutable: every
// operation returns a new value, already reduced to lowest terms and
// with a strictly positive denominator. The zero value of Ratio is 0.
//
// A Ratio with value zero is always represented as 0/1, so reduced
// ratios can be compared with [Ratio.Equal] in constant time.
type Ratio struct {
	num int64
	den int64
}

// Common values, mostly useful as arguments to descriptor derivation.
var (
	Zero = Ratio{0, 1}
	One  = Ratio{1, 1}
)

// Creates the reduced fraction num/den. A zero denominator results
// in [ErrZeroDenominator].
func New(num, den int64) (Ratio, error) {
	if den == 0 { return Ratio{}, ErrZeroDenominator }
	return reduce(num, den), nil
}

// Like [New], but panics on a zero denominator. Intended for fractions
// that are literal constants in the program source.
func Must(num, den int64) Ratio {
	ratio, err := New(num, den)
	if err != nil { panic(err) }
	return ratio
}

// Creates the ratio value/1.
func FromInt(value int64) Ratio { return Ratio{value, 1} }

// The reduced numerator.
func (self Ratio) Num() int64 { return self.norm().num }

// The reduced denominator. Always strictly positive.
func (self Ratio) Den() int64 { return self.norm().den }

// --- arithmetic ---

// Panics if the cross products exceed the int64 range even after
// pulling out the common denominator factor.
func (self Ratio) Add(other Ratio) Ratio {
	self, other = self.norm(), other.norm()

	// common factor of the denominators keeps the cross products small
	g := gcd(self.den, other.den)
	lhsScale := other.den / g
	rhsScale := self.den / g
	num, ok := addInt64(mustMul(self.num, lhsScale), mustMul(other.num, rhsScale))
	if !ok { panic("ratio term overflow") }
	return reduce(num, mustMul(self.den, lhsScale))
}

func (self Ratio) Sub(other Ratio) Ratio { return self.Add(other.Neg()) }

// Panics if the reduced product exceeds the int64 range. Use
// [Ratio.MulChecked] where an out-of-range product is expected data
// rather than a bug.
func (self Ratio) Mul(other Ratio) Ratio {
	result, ok := self.MulChecked(other)
	if !ok { panic("ratio term overflow") }
	return result
}

// Like [Ratio.Mul], but reports false instead of panicking when the
// product does not fit. Cross-reduces before multiplying so
// intermediate terms stay as small as possible; false means even the
// fully reduced product is out of range, not merely an intermediate.
func (self Ratio) MulChecked(other Ratio) (Ratio, bool) {
	self, other = self.norm(), other.norm()
	g1 := gcd(abs(self.num), other.den)
	g2 := gcd(abs(other.num), self.den)
	num, ok := mulInt64(self.num/g1, other.num/g2)
	if !ok { return Zero, false }
	if num == 0 { return Zero, true }
	den, ok := mulInt64(self.den/g2, other.den/g1)
	if !ok { return Zero, false }
	return Ratio{num, den}, true // cross-reduction already left this in lowest terms
}

// Panics if other is zero. Descriptor algebra never produces a zero
// conversion factor, so a zero divisor is a caller bug, not data.
func (self Ratio) Div(other Ratio) Ratio { return self.Mul(other.Inv()) }

// Like [Ratio.Div], but reports false instead of panicking when the
// reduced quotient does not fit int64. Quotients of two in-range
// conversion ratios can still be out of range (parsecs over angstroms),
// so conversion code has to be able to see the failure and fall back.
func (self Ratio) DivChecked(other Ratio) (Ratio, bool) {
	return self.MulChecked(other.Inv())
}

// The multiplicative inverse. Panics on zero.
func (self Ratio) Inv() Ratio {
	self = self.norm()
	if self.num == 0 { panic("inverse of zero ratio") }
	if self.num < 0 { return Ratio{-self.den, -self.num} }
	return Ratio{self.den, self.num}
}

func (self Ratio) Neg() Ratio {
	self = self.norm()
	return Ratio{-self.num, self.den}
}

func (self Ratio) Abs() Ratio {
	self = self.norm()
	if self.num < 0 { self.num = -self.num }
	return self
}

// Raises the ratio to an integer power. Pow(0) is 1 even for a zero
// ratio. Negative exponents invert, so they panic on zero.
func (self Ratio) Pow(exp int) Ratio {
	if exp < 0 { return self.Inv().Pow(-exp) }
	result := One
	for i := 0; i < exp; i++ { result = result.Mul(self) }
	return result
}

// --- predicates and comparisons ---

func (self Ratio) IsZero() bool { return self.norm().num == 0 }
func (self Ratio) IsOne() bool {
	self = self.norm()
	return self.num == 1 && self.den == 1
}

// Reports whether both ratios represent the same value.
func (self Ratio) Equal(other Ratio) bool {
	self, other = self.norm(), other.norm()
	return self.num == other.num && self.den == other.den
}

// Returns -1, 0 or 1 depending on the sign of self - other.
func (self Ratio) Cmp(other Ratio) int {
	diff := self.Sub(other)
	switch {
	case diff.num < 0: return -1
	case diff.num > 0: return 1
	default: return 0
	}
}

func (self Ratio) Sign() int {
	self = self.norm()
	switch {
	case self.num < 0: return -1
	case self.num > 0: return 1
	default: return 0
	}
}

// --- conversions ---

// The closest float64 to the exact fraction. Performed as a single
// float division of the reduced terms, so ratios whose terms are both
// exactly representable convert without error.
func (self Ratio) Float64() float64 {
	self = self.norm()
	return float64(self.num) / float64(self.den)
}

// Formats as "num/den", or just "num" for whole values.
func (self Ratio) String() string {
	self = self.norm()
	if self.den == 1 { return strconv.FormatInt(self.num, 10) }
	return strconv.FormatInt(self.num, 10) + "/" + strconv.FormatInt(self.den, 10)
}

// --- internal helpers ---

// Maps the zero value Ratio{} to the canonical 0/1 so that it behaves
// like any other zero.
func (self Ratio) norm() Ratio {
	if self.den == 0 { return Zero }
	return self
}

func reduce(num, den int64) Ratio {
	if num == 0 { return Zero }
	if den < 0 { num, den = -num, -den }
	g := gcd(abs(num), den)
	return Ratio{num / g, den / g}
}

// Signed multiplication reporting whether the product stays within
// ±math.MaxInt64 (MinInt64 is rejected too, so [abs] stays total over
// every ratio term this package produces).
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 { return 0, true }
	hi, lo := bits.Mul64(uint64(abs(a)), uint64(abs(b)))
	if hi != 0 || lo > math.MaxInt64 { return 0, false }
	product := int64(lo)
	if (a < 0) != (b < 0) { product = -product }
	return product, true
}

func mustMul(a, b int64) int64 {
	product, ok := mulInt64(a, b)
	if !ok { panic("ratio term overflow") }
	return product
}

func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (a > 0 && b > 0 && sum < 0) || (a < 0 && b < 0 && sum >= 0) { return 0, false }
	return sum, true
}

func gcd(a, b int64) int64 {
	for b != 0 { a, b = b, a%b }
	if a == 0 { return 1 }
	return a
}

func abs(value int64) int64 {
	if value == math.MinInt64 { panic("ratio term overflow") }
	if value < 0 { return -value }
	return value
}
