package units

// Mechanical units: frequency, kinematics, force, pressure, energy,
// power and torque. Compound entries read the way the physics does:
// velocity is length times inverse time, pressure-by-area force, and
// so on. Where a category has an SI base of its own (newtons, pascals,
// joules, watts) it anchors on the base dimension directly.
var (
	Hertz     = Base(Frequency)
	Kilohertz = Kilo(Hertz)
	Megahertz = Mega(Hertz)
	Gigahertz = Giga(Hertz)

	MetersPerSecond   = Compound(Meters, Seconds.Inverse())
	FeetPerSecond     = Compound(Feet, Seconds.Inverse())
	MilesPerHour      = Compound(Miles, Hours.Inverse())
	KilometersPerHour = Compound(Kilometers, Hours.Inverse())
	Knots             = Compound(NauticalMiles, Hours.Inverse())

	MetersPerSecondSquared = Compound(Meters, Seconds.Squared().Inverse())
	FeetPerSecondSquared   = Compound(Feet, Seconds.Squared().Inverse())
	StandardGravity        = Derive(MetersPerSecondSquared, 980665, 100000)

	Newtons     = Base(Force)
	PoundsForce = Compound(Slugs, Feet, Seconds.Squared().Inverse())
	Dynes       = Derive(Newtons, 1, 100000)
	Kiloponds   = Compound(StandardGravity, Kilograms)
	Poundals    = Compound(Pounds, Feet, Seconds.Squared().Inverse())

	Pascals              = Base(Pressure)
	Bars                 = Derive(Kilo(Pascals), 100, 1)
	Atmospheres          = Derive(Pascals, 101325, 1)
	PoundsPerSquareInch  = Compound(PoundsForce, Inches.Squared().Inverse())
	Torrs                = Derive(Atmospheres, 1, 760)

	Joules                = Base(Energy)
	Kilojoules            = Kilo(Joules)
	Megajoules            = Mega(Joules)
	Calories              = Derive(Joules, 4184, 1000)
	Kilocalories          = Kilo(Calories)
	KilowattHours         = Derive(Megajoules, 36, 10)
	WattHours             = Derive(KilowattHours, 1, 1000)
	BritishThermalUnits   = Derive(Joules, 105505585262, 100000000)
	BritishThermalUnits59 = Derive(Joules, 1054804, 1000)
	Therms                = Derive(BritishThermalUnits59, 100000, 1)
	FootPounds            = Compound(Feet, PoundsForce)

	Watts      = Base(Power)
	Nanowatts  = Nano(Watts)
	Microwatts = Micro(Watts)
	Milliwatts = Milli(Watts)
	Kilowatts  = Kilo(Watts)
	Megawatts  = Mega(Watts)
	Gigawatts  = Giga(Watts)
	Horsepower = Derive(Watts, 7457, 10)

	NewtonMeters   = Base(Torque)
	InchPounds     = Compound(Inches, PoundsForce)
	FootPoundals   = Compound(Feet, Poundals)
	MeterKilograms = Compound(Meters, Kiloponds)
)
