package units

import "github.com/dustin/go-humanize"
import "golang.org/x/exp/constraints"

// A numeric value tagged with a unit descriptor and a value scale.
// The unit and scale are fixed when the quantity is built; arithmetic
// returns new quantities and performs the dimensional analysis for the
// result type, so incompatible operands are rejected before any numeric
// result exists (see [Quantity.Add] and friends).
//
// Internally the value is always kept as the linear magnitude in the
// quantity's own unit. For decibel quantities the figure passed in at
// construction is expanded once and compressed again on read-back,
// which keeps the conversion engine and cross-scale arithmetic in
// linear space where unit ratios apply.
//
// Quantities are immutable values and safe to share between goroutines.
type Quantity[T constraints.Float] struct {
	unit  Unit
	scale Scale[T]
	value T // linear magnitude, in self.unit
}

// Builds a linear-scale quantity of the given unit. This is the general
// constructor: every dimensioned quantity names its unit explicitly, so
// a magnitude can never silently assume one.
func New[T constraints.Float](value T, unit Unit) Quantity[T] {
	return Quantity[T]{unit: unit, scale: LinearScale[T]{}, value: value}
}

// Builds a quantity whose figure is interpreted through the given
// scale. NewScaled(3, Watts, DecibelScale[float64]{}) is three decibel
// watts, i.e. a linear magnitude of about 2 W.
func NewScaled[T constraints.Float](figure T, unit Unit, scale Scale[T]) Quantity[T] {
	return Quantity[T]{unit: unit, scale: scale, value: scale.Expand(figure)}
}

// Builds a dimensionless quantity from a raw number. The only
// constructor that does not require a unit tag.
func Scalar[T constraints.Float](value T) Quantity[T] {
	return New(value, ScalarUnit)
}

// Builds a dimensionless decibel quantity: Decibels(3.0) is a pure
// ratio of about 2.
func Decibels[T constraints.Float](figure T) Quantity[T] {
	return NewScaled(figure, ScalarUnit, DecibelScale[T]{})
}

// --- accessors ---

// The quantity's figure in its own unit and scale: the magnitude for
// linear quantities, the decibel figure for decibel ones.
func (self Quantity[T]) Value() T { return self.scale.Compress(self.value) }

// The quantity's unit descriptor.
func (self Quantity[T]) Unit() Unit { return self.unit }

// The quantity's dimension vector.
func (self Quantity[T]) Dimension() Dimension { return self.unit.dim }

// Re-expresses the quantity in another unit of the same dimension.
// Panics with [*DimensionError] on a dimension mismatch.
func (self Quantity[T]) In(unit Unit) Quantity[T] {
	value := self.convertTo("in", unit)
	return Quantity[T]{unit: unit, scale: self.scale, value: value}
}

// The quantity's figure re-expressed in the given unit. This is the
// explicit accessor for reading a dimensioned magnitude as a raw
// number; spelling the unit at the read site is what prevents
// unit-unaware numeric use. Panics with [*DimensionError] on mismatch.
func (self Quantity[T]) ValueIn(unit Unit) T { return self.In(unit).Value() }

// The raw numeric value of a dimensionless quantity, converted to the
// canonical scalar unit (so 50 [Percent] reads back as 0.5). Panics
// with [*DimensionError] for any other dimension; dimensioned
// magnitudes must be read through [Quantity.ValueIn].
func (self Quantity[T]) Float() T {
	if !self.unit.IsScalar() {
		panic(&DimensionError{Op: "float", Left: self.unit.dim, Right: Dimensionless})
	}
	return T(convert(float64(self.value), self.unit, ScalarUnit))
}

// --- comparisons ---
//
// Comparisons convert the right operand into the left operand's unit
// and then compare linear magnitudes. All of them panic with
// [*DimensionError] when the dimensions differ.

// Returns -1, 0 or 1 depending on the ordering of the two magnitudes.
func (self Quantity[T]) Cmp(other Quantity[T]) int {
	rhs := other.convertTo("cmp", self.unit)
	switch {
	case self.value < rhs: return -1
	case self.value > rhs: return 1
	default: return 0
	}
}

func (self Quantity[T]) Equal(other Quantity[T]) bool { return self.Cmp(other) == 0 }
func (self Quantity[T]) Less(other Quantity[T]) bool { return self.Cmp(other) < 0 }
func (self Quantity[T]) LessEq(other Quantity[T]) bool { return self.Cmp(other) <= 0 }
func (self Quantity[T]) Greater(other Quantity[T]) bool { return self.Cmp(other) > 0 }
func (self Quantity[T]) GreaterEq(other Quantity[T]) bool { return self.Cmp(other) >= 0 }

// --- formatting ---

// The figure followed by the symbolic dimension, e.g. "50 m s^-1".
// Decibel figures get a "dB" marker. Dimensionless linear quantities
// format as the bare number.
func (self Quantity[T]) String() string {
	str := humanize.Ftoa(float64(self.Value()))
	if isDecibel[T](self.scale) { str += " dB" }
	dim := self.unit.dim.String()
	if dim == "" { return str }
	return str + " " + dim
}

// --- internal helpers ---

// Converts the linear magnitude into the target unit, panicking with a
// [*DimensionError] naming op on dimension mismatch.
func (self Quantity[T]) convertTo(op string, unit Unit) T {
	if !self.unit.Compatible(unit) {
		panic(&DimensionError{Op: op, Left: self.unit.dim, Right: unit.dim})
	}
	return T(convert(float64(self.value), self.unit, unit))
}

func (self Quantity[T]) sameScale(other Quantity[T]) bool {
	return self.scale == other.scale
}
