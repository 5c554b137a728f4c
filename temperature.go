package units

import "github.com/JaapAap/units/ratio"

// Units of temperature. Celsius and fahrenheit are affine: they carry a
// rational datum translation on top of the conversion ratio, and the
// derivation chain composes those offsets exactly. Fahrenheit is
// defined directly from celsius (ratio 5/9, offset -160/9), which works
// out to the familiar F = C*9/5 + 32.
//
// Affine offsets survive only identity-preserving derivation: products,
// quotients and inverses of temperature units drop the offset, since a
// "celsius per second" rate has no datum.
var (
	Kelvin     = Base(Temperature)
	Celsius    = DeriveFull(Kelvin, ratio.One, ratio.Zero, ratio.Must(27315, 100))
	Fahrenheit = DeriveFull(Celsius, ratio.Must(5, 9), ratio.Zero, ratio.Must(-160, 9))
	Reaumur    = Derive(Celsius, 10, 8)
	Rankine    = Derive(Kelvin, 5, 9)
)
