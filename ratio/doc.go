// Unit conversion factors have to be exact: feet are defined as exactly
// 381/1250 meters, and a conversion pipeline that stored that as a float
// would leak rounding error into every derived unit. The way to keep
// conversions exact is performing all the factor and exponent algebra
// with rational numbers, deferring to floating point only at the very
// last step. That's what brings us to this subpackage.
//
// The ratio subpackage defines a [Ratio] type representing an exact
// fraction of two int64 values, always reduced to lowest terms, and
// provides the arithmetic needed by dimension exponents and conversion
// factors.
//
// Code in the wild tends to reach for [math/big.Rat] instead, but Ratio
// is a tiny copyable value with no pointers and no allocation, which is
// what descriptor algebra wants: descriptors are built once at package
// init and then copied around freely.
package ratio
