package units

import "math"

// Converts a linear magnitude expressed in unit from to the equivalent
// magnitude in unit to. The units must share the same dimension vector;
// otherwise the value is returned unchanged along with a
// [*DimensionError] describing the mismatch.
//
// Conversion between units whose ratios are exact rationals is performed
// as a single multiply-divide of the reduced rational factor, so no
// rounding error beyond the final float operation is introduced. When
// the reduced factor itself cannot fit an int64 pair (parsecs to
// angstroms spans 26 orders of magnitude) the factor is computed from
// the two float ratios instead, trading one rounding per term for a
// result of the right magnitude. Pi powers and datum translations only
// enter the computation for unit pairs that actually differ in those
// parameters.
func Convert(value float64, from, to Unit) (float64, error) {
	if !from.Compatible(to) {
		return value, &DimensionError{Op: "convert", Left: from.dim, Right: to.dim}
	}
	return convert(value, from, to), nil
}

// Like [Convert], but panics on incompatible dimensions. Appropriate
// when both units are fixed in the program source.
func MustConvert(value float64, from, to Unit) float64 {
	result, err := Convert(value, from, to)
	if err != nil { panic(err) }
	return result
}

// The unchecked conversion kernel. Dimension compatibility must have
// been established by the caller. Dispatches to the cheapest formula
// that is valid for the descriptor pair: identical descriptors are a
// plain copy, exact-ratio pairs never touch math.Pow, and the
// translation term is computed in rational space so that affine
// conversions like celsius to fahrenheit come out exact.
func convert(value float64, from, to Unit) float64 {
	if from.Equal(to) { return value }

	var converted float64
	factor, exact := from.conv.DivChecked(to.conv)
	if exact {
		converted = float64(factor.Num()) * value / float64(factor.Den())
	} else {
		converted = value * from.conv.Float64() / to.conv.Float64()
	}

	piDiffers := !from.pi.Equal(to.pi)
	transDiffers := !from.trans.Equal(to.trans)
	if piDiffers {
		converted *= math.Pow(math.Pi, from.pi.Sub(to.pi).Float64())
	}
	if transDiffers {
		converted += from.trans.Sub(to.trans).Div(to.conv).Float64()
	}
	return converted
}
