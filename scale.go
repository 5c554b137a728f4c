package units

import "math"

import "golang.org/x/exp/constraints"

// A value scale maps between the figure a quantity presents to its user
// and the linear physical magnitude the conversion engine works with.
// Ordinary units use [LinearScale], where both are the same number;
// decibel-style units use [DecibelScale], where the figure is
// logarithmic.
//
// Both functions must be pure, and mutual inverses over the scale's
// valid domain. Zero is the linear magnitude of a default-constructed
// quantity. Implementations should be comparable empty structs, since
// scale identity is what decides whether two quantities may be added.
type Scale[T constraints.Float] interface {
	// Maps a linear magnitude to the user-facing figure.
	Compress(linear T) T
	// Maps a user-facing figure to the linear magnitude.
	Expand(figure T) T
	// The linear magnitude representing "no magnitude".
	Zero() T
}

// The identity scale: the stored figure is the physical magnitude.
type LinearScale[T constraints.Float] struct{}

func (LinearScale[T]) Compress(linear T) T { return linear }
func (LinearScale[T]) Expand(figure T) T   { return figure }
func (LinearScale[T]) Zero() T             { return 0 }

// The decibel scale: the user-facing figure x relates to the linear
// magnitude v through x = 10*log10(v). A default-constructed decibel
// quantity is 0 dB, i.e. linear magnitude 1.
//
// Compressing a zero or negative linear magnitude yields a non-finite
// figure, which propagates through subsequent arithmetic per ordinary
// floating point rules.
type DecibelScale[T constraints.Float] struct{}

func (DecibelScale[T]) Compress(linear T) T {
	return T(10 * math.Log10(float64(linear)))
}

func (DecibelScale[T]) Expand(figure T) T {
	return T(math.Pow(10, float64(figure)/10))
}

func (DecibelScale[T]) Zero() T { return 1 }

func isDecibel[T constraints.Float](scale Scale[T]) bool {
	_, ok := scale.(DecibelScale[T])
	return ok
}
