package units

import "strings"

import "github.com/JaapAap/units/ratio"

// Number of base dimensions tracked by a [Dimension].
const NumAxes = 8

// Identifies one of the eight base physical dimensions.
type Axis int

const (
	AxisLength Axis = iota
	AxisMass
	AxisTime
	AxisAngle // not an SI base dimension, but without it radians collapse into scalars
	AxisCurrent
	AxisTemperature
	AxisSubstance
	AxisLuminousIntensity
)

// Symbols of the base units of each axis, used by [Dimension.String].
var axisSymbols = [NumAxes]string{"m", "kg", "s", "rad", "A", "K", "mol", "cd"}

// A vector of eight rational exponents over the base physical dimensions,
// identifying the physical kind of a quantity independently of scale.
// Meters per second squared, for example, has a +1 length exponent and
// a -2 time exponent.
//
// Dimensions are immutable values. The zero value is the dimensionless
// (scalar) dimension. New dimensions are obtained by combining existing
// ones with [Dimension.Mul], [Dimension.Div], [Dimension.Invert] and
// [Dimension.PowInt]; the base set is predefined below ([Length], [Mass]
// and so on).
type Dimension struct {
	exps [NumAxes]ratio.Ratio
}

// The exponent of the given axis.
func (self Dimension) Exponent(axis Axis) ratio.Ratio { return self.exps[axis] }

// The dimension of a product of quantities: elementwise exponent addition.
func (self Dimension) Mul(other Dimension) Dimension {
	var result Dimension
	for i := 0; i < NumAxes; i++ {
		result.exps[i] = self.exps[i].Add(other.exps[i])
	}
	return result
}

// The dimension of a quotient of quantities: elementwise exponent subtraction.
func (self Dimension) Div(other Dimension) Dimension {
	var result Dimension
	for i := 0; i < NumAxes; i++ {
		result.exps[i] = self.exps[i].Sub(other.exps[i])
	}
	return result
}

// The dimension of a reciprocal: elementwise exponent negation.
func (self Dimension) Invert() Dimension {
	var result Dimension
	for i := 0; i < NumAxes; i++ {
		result.exps[i] = self.exps[i].Neg()
	}
	return result
}

// The dimension of an integer power: every exponent multiplied by n.
func (self Dimension) PowInt(n int) Dimension { return self.Pow(ratio.FromInt(int64(n))) }

// Generalization of [Dimension.PowInt] to rational powers, which is what
// a square root of a unit would need.
func (self Dimension) Pow(exp ratio.Ratio) Dimension {
	var result Dimension
	for i := 0; i < NumAxes; i++ {
		result.exps[i] = self.exps[i].Mul(exp)
	}
	return result
}

// Reports whether both vectors have exactly the same eight exponents.
// Equality of dimensions, not mere proportionality, is what defines
// "same physical kind" everywhere in this package.
func (self Dimension) Equal(other Dimension) bool {
	for i := 0; i < NumAxes; i++ {
		if !self.exps[i].Equal(other.exps[i]) { return false }
	}
	return true
}

// Reports whether all exponents are zero (a dimensionless quantity).
func (self Dimension) IsScalar() bool {
	for i := 0; i < NumAxes; i++ {
		if !self.exps[i].IsZero() { return false }
	}
	return true
}

// Symbolic form like "m s^-2" or "kg m^-3". The scalar dimension
// formats as the empty string.
func (self Dimension) String() string {
	var builder strings.Builder
	for i := 0; i < NumAxes; i++ {
		exp := self.exps[i]
		if exp.IsZero() { continue }
		if builder.Len() > 0 { builder.WriteByte(' ') }
		builder.WriteString(axisSymbols[i])
		if !exp.IsOne() {
			builder.WriteByte('^')
			builder.WriteString(exp.String())
		}
	}
	return builder.String()
}

func baseDimension(axis Axis) Dimension {
	var dim Dimension
	dim.exps[axis] = ratio.One
	return dim
}

// Base dimensions plus the derived kinds used by the named unit catalog.
// Users rarely need these directly: taking the [Quantity.Dimension] of a
// quantity or combining existing dimensions covers normal usage.
var (
	Dimensionless     = Dimension{}
	Length            = baseDimension(AxisLength)
	Mass              = baseDimension(AxisMass)
	Time              = baseDimension(AxisTime)
	Angle             = baseDimension(AxisAngle)
	Current           = baseDimension(AxisCurrent)
	Temperature       = baseDimension(AxisTemperature)
	Substance         = baseDimension(AxisSubstance)
	LuminousIntensity = baseDimension(AxisLuminousIntensity)

	SolidAngle            = Angle.PowInt(2)
	Frequency             = Time.Invert()
	Velocity              = Length.Div(Time)
	Acceleration          = Velocity.Div(Time)
	Force                 = Mass.Mul(Acceleration)
	Pressure              = Force.Div(Area)
	Charge                = Current.Mul(Time)
	Energy                = Force.Mul(Length)
	Power                 = Energy.Div(Time)
	Voltage               = Power.Div(Current)
	Capacitance           = Charge.Div(Voltage)
	Impedance             = Voltage.Div(Current)
	Conductance           = Impedance.Invert()
	MagneticFlux          = Voltage.Mul(Time)
	MagneticFieldStrength = MagneticFlux.Div(Area)
	Inductance            = MagneticFlux.Div(Current)
	LuminousFlux          = LuminousIntensity.Mul(SolidAngle)
	Illuminance           = LuminousFlux.Div(Area)
	Radioactivity         = Time.Invert()
	Torque                = Force.Mul(Length) // same vector as Energy
	Area                  = Length.PowInt(2)
	Volume                = Length.PowInt(3)
	Density               = Mass.Div(Volume)
)
