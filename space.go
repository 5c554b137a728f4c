package units

// Units of area, volume and density. Most are squared or cubed lengths;
// the US liquid measures chain down from the gallon, which is exactly
// 231 cubic inches.
var (
	SquareMeters     = Meters.Squared()
	SquareFeet       = Feet.Squared()
	SquareInches     = Inches.Squared()
	SquareMiles      = Miles.Squared()
	SquareKilometers = Kilometers.Squared()
	Hectares         = Derive(SquareMeters, 10000, 1)
	Acres            = Derive(SquareFeet, 43560, 1)

	CubicMeters      = Base(Volume)
	CubicMillimeters = Millimeters.Cubed()
	CubicKilometers  = Kilometers.Cubed()
	Liters           = Deci(Meters).Cubed()
	Milliliters      = Milli(Liters)
	CubicInches      = Inches.Cubed()
	CubicFeet        = Feet.Cubed()
	CubicYards       = Yards.Cubed()
	CubicMiles       = Miles.Cubed()
	CubicFathoms     = Fathoms.Cubed()

	Gallons     = Derive(CubicInches, 231, 1)
	Quarts      = Derive(Gallons, 1, 4)
	Pints       = Derive(Quarts, 1, 2)
	Cups        = Derive(Pints, 1, 2)
	FluidOunces = Derive(Cups, 1, 8)
	Barrels     = Derive(Gallons, 42, 1)
	Bushels     = Derive(CubicInches, 215042, 100)
	Cords       = Derive(CubicFeet, 128, 1)
	Tablespoons = Derive(FluidOunces, 1, 2)
	Teaspoons   = Derive(FluidOunces, 1, 6)
	Pinches     = Derive(Teaspoons, 1, 8)
	Dashes      = Derive(Pinches, 1, 2)
	Drops       = Derive(FluidOunces, 1, 360)
	Fifths      = Derive(Gallons, 1, 5)
	Drams       = Derive(FluidOunces, 1, 8)
	Gills       = Derive(FluidOunces, 4, 1)
	Pecks       = Derive(Bushels, 1, 4)
	Sacks       = Derive(Bushels, 3, 1)
	Shots       = Derive(FluidOunces, 3, 2)
	Strikes     = Derive(Bushels, 2, 1)

	KilogramsPerCubicMeter = Base(Density)
	GramsPerMilliliter     = Compound(Grams, Milliliters.Inverse())
	KilogramsPerLiter      = Compound(Kilograms, Liters.Inverse())
	OuncesPerCubicFoot     = Compound(Ounces, CubicFeet.Inverse())
	OuncesPerCubicInch     = Compound(Ounces, CubicInches.Inverse())
	OuncesPerGallon        = Compound(Ounces, Gallons.Inverse())
	PoundsPerCubicFoot     = Compound(Pounds, CubicFeet.Inverse())
	PoundsPerCubicInch     = Compound(Pounds, CubicInches.Inverse())
	PoundsPerGallon        = Compound(Pounds, Gallons.Inverse())
	SlugsPerCubicFoot      = Compound(Slugs, CubicFeet.Inverse())
)
