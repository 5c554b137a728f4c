package units

// Electrical and magnetic units. All the SI categories anchor on their
// own base dimension; the oddballs are the CGS leftovers (statvolts,
// abvolts, maxwells, gauss).
var (
	Amperes    = Base(Current)
	Milliamps  = Milli(Amperes)
	Microamps  = Micro(Amperes)
	Nanoamps   = Nano(Amperes)

	Coulombs    = Base(Charge)
	AmpereHours = Compound(Amperes, Hours)

	Volts      = Base(Voltage)
	Picovolts  = Pico(Volts)
	Nanovolts  = Nano(Volts)
	Microvolts = Micro(Volts)
	Millivolts = Milli(Volts)
	Kilovolts  = Kilo(Volts)
	Megavolts  = Mega(Volts)
	Statvolts  = Derive(Volts, 1000000, 299792458)
	Abvolts    = Derive(Volts, 1, 100000000)

	Farads      = Base(Capacitance)
	Picofarads  = Pico(Farads)
	Nanofarads  = Nano(Farads)
	Microfarads = Micro(Farads)
	Millifarads = Milli(Farads)

	Ohms      = Base(Impedance)
	Milliohms = Milli(Ohms)
	Kiloohms  = Kilo(Ohms)
	Megaohms  = Mega(Ohms)
	Gigaohms  = Giga(Ohms)

	Siemens      = Base(Conductance)
	Millisiemens = Milli(Siemens)
	Microsiemens = Micro(Siemens)

	Webers      = Base(MagneticFlux)
	Milliwebers = Milli(Webers)
	Microwebers = Micro(Webers)
	Maxwells    = Derive(Webers, 1, 100000000)

	Teslas      = Base(MagneticFieldStrength)
	Milliteslas = Milli(Teslas)
	Microteslas = Micro(Teslas)
	Nanoteslas  = Nano(Teslas)
	Gauss       = Compound(Maxwells, Centimeters.Squared().Inverse())

	Henrys      = Base(Inductance)
	Millihenrys = Milli(Henrys)
	Microhenrys = Micro(Henrys)
)
