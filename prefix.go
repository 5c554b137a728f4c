package units

// Metric prefixes, expressed as plain ratio derivations. Kilo(Meters)
// is a unit whose conversion ratio to meters is exactly 1000/1.
//
// The full SI range does not fit an int64 ratio pair in one step, so
// the prefixes beyond 1e18 are absent; every unit the catalog needs
// stays comfortably inside these.

const quintillion = 1_000_000_000_000_000_000 // 1e18, near the int64 limit

func Atto(unit Unit) Unit  { return Derive(unit, 1, quintillion) }
func Femto(unit Unit) Unit { return Derive(unit, 1, 1_000_000_000_000_000) }
func Pico(unit Unit) Unit  { return Derive(unit, 1, 1_000_000_000_000) }
func Nano(unit Unit) Unit  { return Derive(unit, 1, 1_000_000_000) }
func Micro(unit Unit) Unit { return Derive(unit, 1, 1_000_000) }
func Milli(unit Unit) Unit { return Derive(unit, 1, 1000) }
func Centi(unit Unit) Unit { return Derive(unit, 1, 100) }
func Deci(unit Unit) Unit  { return Derive(unit, 1, 10) }
func Deca(unit Unit) Unit  { return Derive(unit, 10, 1) }
func Hecto(unit Unit) Unit { return Derive(unit, 100, 1) }
func Kilo(unit Unit) Unit  { return Derive(unit, 1000, 1) }
func Mega(unit Unit) Unit  { return Derive(unit, 1_000_000, 1) }
func Giga(unit Unit) Unit  { return Derive(unit, 1_000_000_000, 1) }
func Tera(unit Unit) Unit  { return Derive(unit, 1_000_000_000_000, 1) }
func Peta(unit Unit) Unit  { return Derive(unit, 1_000_000_000_000_000, 1) }
func Exa(unit Unit) Unit   { return Derive(unit, quintillion, 1) }
