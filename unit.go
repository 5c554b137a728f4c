package units

import "github.com/JaapAap/units/ratio"

// A unit of measure descriptor: a dimension vector plus the exact
// parameters needed to convert a value in this unit to the canonical
// base unit of its dimension. Units are immutable tag values; they are
// not containers (see [Quantity] for that). Each unit is defined by:
//   - A dimension vector identifying its physical kind.
//   - An exact conversion ratio to the base unit of that dimension
//     (e.g. 381/1250 for feet to meters).
//   - An exponent of pi embedded in the conversion (e.g. -1 for a
//     parsec, which is 648000/pi astronomical units).
//   - A rational datum translation for affine units (e.g. 273.15 for
//     celsius to kelvin).
//
// New units are always derived from existing ones, either through
// [Derive] or through the descriptor algebra ([Unit.Mul], [Unit.Div],
// [Unit.Inverse], [Unit.Squared], [Unit.Cubed], [Unit.Pow], [Compound]).
type Unit struct {
	dim   Dimension
	conv  ratio.Ratio
	pi    ratio.Ratio
	trans ratio.Ratio
}

// The canonical base unit of a dimension: conversion ratio 1, no pi
// exponent, no translation. Meters, kilograms, seconds and friends are
// all base units of their respective dimensions.
func Base(dim Dimension) Unit {
	return Unit{dim: dim, conv: ratio.One, pi: ratio.Zero, trans: ratio.Zero}
}

// Defines a new unit as num/den of an existing one. This is the one-line
// mechanism the named unit catalog is built from, e.g.:
//
//	Feet  := Derive(Meters, 381, 1250) // a foot is exactly 0.3048 m
//	Miles := Derive(Feet, 5280, 1)
//
// Derivation chains compose exactly: the new unit's conversion ratio is
// the product of num/den with the base unit's own ratio. Panics with
// [ratio.ErrZeroDenominator] if den is zero; unit definitions are
// program constants, so a malformed ratio is a bug, not input.
func Derive(base Unit, num, den int64) Unit {
	return DeriveFull(base, ratio.Must(num, den), ratio.Zero, ratio.Zero)
}

// Generalization of [Derive] for units that also need a pi exponent or
// a datum translation. The composition rules match the derivation
// chain semantics:
//   - conversion ratios multiply through the base's,
//   - pi exponents add,
//   - the local translation is scaled by the base's conversion ratio
//     and added to the base's own translation.
//
// The translation scaling is what lets fahrenheit be defined directly
// from celsius (ratio 5/9, translation -160/9) rather than from kelvin.
func DeriveFull(base Unit, conv, piExp, translation ratio.Ratio) Unit {
	return Unit{
		dim:   base.dim,
		conv:  base.conv.Mul(conv),
		pi:    base.pi.Add(piExp),
		trans: base.conv.Mul(translation).Add(base.trans),
	}
}

// The unit's dimension vector.
func (self Unit) Dimension() Dimension { return self.dim }

// The exact conversion factor from this unit to the base unit of its
// dimension.
func (self Unit) Ratio() ratio.Ratio { return self.conv }

// The exponent of pi embedded in the conversion to the base unit.
func (self Unit) PiExponent() ratio.Ratio { return self.pi }

// The additive datum translation to the base unit, in base unit scale.
// Nonzero only for affine units like celsius or fahrenheit.
func (self Unit) Translation() ratio.Ratio { return self.trans }

// --- descriptor algebra ---
//
// Products, quotients, inverses and powers always drop the translation
// offset: inverses and products of affine quantities are rates or mixed
// frames, where a datum offset has no consistent meaning.

// The product unit: dimensions and pi exponents add, ratios multiply.
func (self Unit) Mul(other Unit) Unit {
	return Unit{
		dim:   self.dim.Mul(other.dim),
		conv:  self.conv.Mul(other.conv),
		pi:    self.pi.Add(other.pi),
		trans: ratio.Zero,
	}
}

// The quotient unit: dimensions and pi exponents subtract, ratios divide.
func (self Unit) Div(other Unit) Unit {
	return Unit{
		dim:   self.dim.Div(other.dim),
		conv:  self.conv.Div(other.conv),
		pi:    self.pi.Sub(other.pi),
		trans: ratio.Zero,
	}
}

// The reciprocal unit, e.g. hertz from seconds.
func (self Unit) Inverse() Unit {
	return Unit{
		dim:   self.dim.Invert(),
		conv:  self.conv.Inv(),
		pi:    self.pi.Neg(),
		trans: ratio.Zero,
	}
}

func (self Unit) Squared() Unit { return self.Mul(self) }
func (self Unit) Cubed() Unit   { return self.Mul(self.Mul(self)) }

// The unit raised to an integer power by repeated multiplication.
// Pow(0) yields the dimensionless scalar unit, negative powers invert.
func (self Unit) Pow(n int) Unit {
	if n < 0 { return self.Inverse().Pow(-n) }
	result := Base(Dimensionless)
	for i := 0; i < n; i++ { result = result.Mul(self) }
	return result
}

// Left fold of [Unit.Mul] over the given units. Meters per second
// squared, for example, is Compound(Meters, Seconds.Inverse(),
// Seconds.Inverse()).
func Compound(first Unit, rest ...Unit) Unit {
	result := first
	for _, unit := range rest { result = result.Mul(unit) }
	return result
}

// --- predicates ---

// Reports whether values can be converted between the two units, which
// requires exactly equal dimension vectors.
func (self Unit) Compatible(other Unit) bool { return self.dim.Equal(other.dim) }

// Reports whether the two descriptors are fully identical: same
// dimension, conversion ratio, pi exponent and translation.
func (self Unit) Equal(other Unit) bool {
	return self.dim.Equal(other.dim) &&
		self.conv.Equal(other.conv) &&
		self.pi.Equal(other.pi) &&
		self.trans.Equal(other.trans)
}

// Reports whether the unit is dimensionless.
func (self Unit) IsScalar() bool { return self.dim.IsScalar() }

// Formats the conversion parameters and dimension, mostly for debugging.
func (self Unit) String() string {
	str := "ratio " + self.conv.String()
	if !self.pi.IsZero() { str += ", pi^" + self.pi.String() }
	if !self.trans.IsZero() { str += ", offset " + self.trans.String() }
	dim := self.dim.String()
	if dim == "" { return str }
	return str + " [" + dim + "]"
}
