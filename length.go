package units

import "github.com/JaapAap/units/ratio"

// Units of length. The foot is exact by definition (0.3048 m), and
// everything imperial chains off it.
var (
	Meters      = Base(Length)
	Nanometers  = Nano(Meters)
	Micrometers = Micro(Meters)
	Millimeters = Milli(Meters)
	Centimeters = Centi(Meters)
	Kilometers  = Kilo(Meters)

	Feet              = Derive(Meters, 381, 1250)
	Inches            = Derive(Feet, 1, 12)
	Mils              = Derive(Inches, 1, 1000)
	Miles             = Derive(Feet, 5280, 1)
	NauticalMiles     = Derive(Meters, 1852, 1)
	AstronomicalUnits = Derive(Meters, 149597870700, 1)
	Lightyears        = Derive(Meters, 9460730472580800, 1)
	Parsecs           = DeriveFull(AstronomicalUnits, ratio.FromInt(648000), ratio.FromInt(-1), ratio.Zero)
	Angstroms         = Derive(Nanometers, 1, 10)
	Cubits            = Derive(Inches, 18, 1)
	Fathoms           = Derive(Feet, 6, 1)
	Chains            = Derive(Feet, 66, 1)
	Furlongs          = Derive(Chains, 10, 1)
	Hands             = Derive(Inches, 4, 1)
	Leagues           = Derive(Miles, 3, 1)
	NauticalLeagues   = Derive(NauticalMiles, 3, 1)
	Yards             = Derive(Feet, 3, 1)
)
