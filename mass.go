package units

// Units of mass. The kilogram, not the gram, is the SI base. The pound
// is exact by definition (0.45359237 kg).
var (
	Kilograms  = Base(Mass)
	Grams      = Derive(Kilograms, 1, 1000)
	Milligrams = Milli(Grams)
	Micrograms = Micro(Grams)
	MetricTons = Derive(Kilograms, 1000, 1)

	Pounds       = Derive(Kilograms, 45359237, 100000000)
	ImperialTons = Derive(Pounds, 2240, 1)
	USTons       = Derive(Pounds, 2000, 1)
	Stone        = Derive(Pounds, 14, 1)
	Ounces       = Derive(Pounds, 1, 16)
	Carats       = Derive(Milligrams, 200, 1)
	Slugs        = Derive(Kilograms, 145939029, 10000000)
)
