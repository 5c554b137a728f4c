package units

import "math"

// Arithmetic over quantities. Every operator returns a new quantity and
// derives the result's unit through the descriptor algebra; operands
// that cannot legally combine are rejected with a panic before any
// numeric result is produced ([*DimensionError] for incompatible
// dimensions, [*ScaleError] for mixed value scales).

// The sum of two quantities. For linear quantities both operands must
// share a dimension; the right operand is converted into the left
// operand's unit and the result keeps that unit.
//
// For two decibel quantities addition composes the underlying linear
// magnitudes by multiplication (gain stacking), after converting the
// right operand into the left operand's unit. Numerically this is the
// usual RF convention of summing the dB figures. The result unit is the
// left unit squared, matching the product of magnitudes, except that a
// dimensionless decibel operand leaves the other operand's unit
// untouched.
func (self Quantity[T]) Add(other Quantity[T]) Quantity[T] {
	if !self.sameScale(other) { panic(&ScaleError{Op: "add"}) }
	if isDecibel[T](self.scale) {
		return self.composeDecibel("add", other, false)
	}
	value := self.value + other.convertTo("add", self.unit)
	return Quantity[T]{unit: self.unit, scale: self.scale, value: value}
}

// The difference of two quantities. The linear and decibel semantics
// mirror [Quantity.Add]: decibel subtraction divides the underlying
// linear magnitudes, and its result unit is the left unit times the
// inverse of the right.
func (self Quantity[T]) Sub(other Quantity[T]) Quantity[T] {
	if !self.sameScale(other) { panic(&ScaleError{Op: "sub"}) }
	if isDecibel[T](self.scale) {
		return self.composeDecibel("sub", other, true)
	}
	value := self.value - other.convertTo("sub", self.unit)
	return Quantity[T]{unit: self.unit, scale: self.scale, value: value}
}

// Adds a raw number to a dimensionless linear quantity. Panics with
// [*DimensionError] for any other dimension: dimensioned quantities can
// only combine with values that carry a unit.
func (self Quantity[T]) AddFloat(value T) Quantity[T] {
	self.requireScalarLinear("add")
	return Quantity[T]{unit: self.unit, scale: self.scale, value: self.value + value}
}

// Subtracts a raw number from a dimensionless linear quantity.
func (self Quantity[T]) SubFloat(value T) Quantity[T] {
	self.requireScalarLinear("sub")
	return Quantity[T]{unit: self.unit, scale: self.scale, value: self.value - value}
}

// The product of two linear quantities. Operands of the same dimension
// have the right operand converted into the left operand's unit first,
// and the result unit is that unit squared. Operands of different
// dimensions multiply magnitudes as-is (each already expressed in its
// own unit) and the result unit is the descriptor product.
func (self Quantity[T]) Mul(other Quantity[T]) Quantity[T] {
	self.requireLinear("mul")
	other.requireLinear("mul")
	if self.unit.Compatible(other.unit) {
		value := self.value * other.convertTo("mul", self.unit)
		return Quantity[T]{unit: self.unit.Squared(), scale: self.scale, value: value}
	}
	value := self.value * other.value
	return Quantity[T]{unit: self.unit.Mul(other.unit), scale: self.scale, value: value}
}

// The quotient of two linear quantities. Same-dimension division yields
// a dimensionless scalar (the right operand converted first);
// cross-dimension division yields the left unit times the inverse of
// the right, e.g. meters divided by seconds is meters per second.
func (self Quantity[T]) Div(other Quantity[T]) Quantity[T] {
	self.requireLinear("div")
	other.requireLinear("div")
	if self.unit.Compatible(other.unit) {
		value := self.value / other.convertTo("div", self.unit)
		return Quantity[T]{unit: ScalarUnit, scale: self.scale, value: value}
	}
	value := self.value / other.value
	return Quantity[T]{unit: self.unit.Mul(other.unit.Inverse()), scale: self.scale, value: value}
}

// Scales the magnitude by a raw dimensionless factor; the unit is
// unchanged.
func (self Quantity[T]) MulFloat(factor T) Quantity[T] {
	self.requireLinear("mul")
	return Quantity[T]{unit: self.unit, scale: self.scale, value: self.value * factor}
}

// Divides the magnitude by a raw dimensionless factor; the unit is
// unchanged. Division by zero propagates as a non-finite magnitude.
func (self Quantity[T]) DivFloat(divisor T) Quantity[T] {
	self.requireLinear("div")
	return Quantity[T]{unit: self.unit, scale: self.scale, value: self.value / divisor}
}

// Raises both the magnitude and the unit to the given integer power.
// Pow(0) is the dimensionless 1.
func (self Quantity[T]) Pow(n int) Quantity[T] {
	self.requireLinear("pow")
	value := T(math.Pow(float64(self.value), float64(n)))
	return Quantity[T]{unit: self.unit.Pow(n), scale: self.scale, value: value}
}

func (self Quantity[T]) Neg() Quantity[T] {
	self.requireLinear("neg")
	return Quantity[T]{unit: self.unit, scale: self.scale, value: -self.value}
}

func (self Quantity[T]) Abs() Quantity[T] {
	self.requireLinear("abs")
	if self.value < 0 { self.value = -self.value }
	return self
}

// --- internal helpers ---

// Gain composition for decibel quantities: multiplies (or divides, for
// subtraction) linear magnitudes. A dimensionless operand acts as pure
// gain or attenuation applied to the other operand's unit; two
// dimensioned operands must be dimension compatible and produce a
// squared (or ratio) unit.
func (self Quantity[T]) composeDecibel(op string, other Quantity[T], invert bool) Quantity[T] {
	unit := self.unit
	rhs := other.value
	switch {
	case other.unit.IsScalar() && !self.unit.IsScalar():
		// unit unchanged
	case self.unit.IsScalar() && !other.unit.IsScalar():
		if invert {
			unit = other.unit.Inverse()
		} else {
			unit = other.unit
		}
	default:
		rhs = other.convertTo(op, self.unit)
		if invert {
			unit = self.unit.Mul(other.unit.Inverse())
		} else {
			unit = self.unit.Squared()
		}
	}
	value := self.value * rhs
	if invert { value = self.value / rhs }
	return Quantity[T]{unit: unit, scale: self.scale, value: value}
}

func (self Quantity[T]) requireLinear(op string) {
	if isDecibel[T](self.scale) { panic(&ScaleError{Op: op}) }
}

func (self Quantity[T]) requireScalarLinear(op string) {
	self.requireLinear(op)
	if !self.unit.IsScalar() {
		panic(&DimensionError{Op: op, Left: self.unit.dim, Right: Dimensionless})
	}
}
