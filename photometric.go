package units

// Photometric units. Lumens are candelas times steradians; the
// imperial illuminance units are lumens over squared imperial lengths.
var (
	Candelas      = Base(LuminousIntensity)
	Millicandelas = Milli(Candelas)

	Lumens      = Base(LuminousFlux)
	Millilumens = Milli(Lumens)
	Kilolumens  = Kilo(Lumens)

	Luxes                = Base(Illuminance)
	Milliluxes           = Milli(Luxes)
	Kiloluxes            = Kilo(Luxes)
	Footcandles          = Compound(Lumens, Feet.Squared().Inverse())
	LumensPerSquareInch  = Compound(Lumens, Inches.Squared().Inverse())
	Phots                = Compound(Lumens, Centimeters.Squared().Inverse())
)
