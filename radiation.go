package units

// Units of radioactivity and radiation dose. Grays and sieverts share a
// dimension vector (energy per mass); the descriptor algebra cannot
// tell absorbed from equivalent dose apart, and does not try to.
var (
	Becquerels     = Seconds.Inverse()
	Kilobecquerels = Kilo(Becquerels)
	Megabecquerels = Mega(Becquerels)
	Gigabecquerels = Giga(Becquerels)
	Curies         = Derive(Gigabecquerels, 37, 1)

	Grays      = Compound(Joules, Kilograms.Inverse())
	Milligrays = Milli(Grays)
	Rads       = Derive(Grays, 1, 100)

	Sieverts      = Compound(Joules, Kilograms.Inverse())
	Millisieverts = Milli(Sieverts)
	Microsieverts = Micro(Sieverts)
)
