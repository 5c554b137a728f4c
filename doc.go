// units is a package for dimensional analysis and unit conversion:
// numeric values carry their physical dimension as part of
// their identity, so mixing incompatible quantities is rejected before
// any number is produced, while compatible quantities convert exactly.
//
// While the catalog can look slightly intimidating at the beginning,
// common usage depends only on a couple types and a few functions...
//
// First, you build quantities from named units:
//
//	distance := units.New(100.0, units.Meters)
//	elapsed  := units.New(2.0, units.Seconds)
//
// Then, the operators do the dimensional analysis for you:
//
//	speed := distance.Div(elapsed)
//	speed.ValueIn(units.MilesPerHour) // 111.846...
//
// And conversions between compatible units are exact rational
// arithmetic wherever possible:
//
//	units.MustConvert(2, units.Years, units.Weeks) // 104.28571...
//	units.MustConvert(100, units.Celsius, units.Fahrenheit) // exactly 212
//
// Adding meters to seconds panics with a [*DimensionError] at the call
// site; there is no code path that silently produces a number from
// incompatible operands. Units themselves form an algebra ([Unit.Mul],
// [Unit.Div], [Unit.Inverse], [Derive] and friends), which is also how
// the whole named catalog and the physical constants table are defined,
// one line each.
//
// Everything in this package is an immutable value: quantities, units
// and dimensions can be shared between goroutines without
// synchronization.
package units
