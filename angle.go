package units

import "github.com/JaapAap/units/ratio"

// Units of plane and solid angle. Degrees carry a pi exponent instead
// of a decimal approximation: a degree is exactly pi/180 radians, so
// converting radians to degrees multiplies by an exact rational and a
// single power of pi.
var (
	Radians      = Base(Angle)
	Milliradians = Milli(Radians)
	Degrees      = DeriveFull(Radians, ratio.Must(1, 180), ratio.One, ratio.Zero)
	ArcMinutes   = Derive(Degrees, 1, 60)
	ArcSeconds   = Derive(ArcMinutes, 1, 60)
	Turns        = DeriveFull(Radians, ratio.FromInt(2), ratio.One, ratio.Zero)
	Gradians     = Derive(Turns, 1, 400)
	AngularMils  = Derive(Radians, 1, 6400) // NATO mil, defined against the radian

	Steradians     = Base(SolidAngle)
	DegreesSquared = Degrees.Squared()
	Spats          = DeriveFull(Steradians, ratio.FromInt(4), ratio.One, ratio.Zero)
)
