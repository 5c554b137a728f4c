package units

// Dimensionless units. [ScalarUnit] is the canonical unit raw numbers
// live in; the concentration units are plain ratios of it, so a
// quantity of 50 [Percent] reads back as 0.5 through [Quantity.Float].
var (
	ScalarUnit = Base(Dimensionless)

	Percent           = Derive(ScalarUnit, 1, 100)
	PartsPerMillion   = Derive(ScalarUnit, 1, 1000000)
	PartsPerBillion   = Derive(PartsPerMillion, 1, 1000)
	PartsPerTrillion  = Derive(PartsPerBillion, 1, 1000)
)
