package units

import "testing"

import "github.com/JaapAap/units/ratio"

func TestDimensionZeroValueIsScalar(t *testing.T) {
	var dim Dimension
	if !dim.IsScalar() { t.Fatal("zero value must be scalar") }
	if !dim.Equal(Dimensionless) { t.Fatal("zero value must equal Dimensionless") }
	if dim.String() != "" { t.Fatalf("scalar string expected empty, got %q", dim.String()) }
}

func TestDimensionAlgebra(t *testing.T) {
	tests := []struct {
		out  Dimension
		want Dimension
	}{
		{Length.Mul(Length.Invert()), Dimensionless},
		{Length.Div(Time), Velocity},
		{Velocity.Div(Time), Acceleration},
		{Mass.Mul(Acceleration), Force},
		{Force.Div(Length.PowInt(2)), Pressure},
		{Energy.Div(Time), Power},
		{Length.PowInt(3), Volume},
		{Velocity.Invert(), Time.Div(Length)},
		{Energy, Torque}, // same vector, the algebra can't tell them apart
		{Impedance.Invert(), Conductance},
	}

	for i, test := range tests {
		if !test.out.Equal(test.want) {
			t.Fatalf("test #%d: got %q, want %q", i, test.out, test.want)
		}
	}
}

func TestDimensionEqualIsExact(t *testing.T) {
	if Length.Equal(Area) { t.Fatal("m and m^2 must differ") }
	if Time.Equal(Frequency) { t.Fatal("s and s^-1 must differ") }
	if Energy.Equal(Power) { t.Fatal("J and W kinds must differ") }

	// proportional exponent vectors are still different kinds
	if Area.Equal(Length) { t.Fatal("proportional vectors must not be equal") }
}

func TestDimensionMulAssociativity(t *testing.T) {
	triples := [][3]Dimension{
		{Length, Mass, Time},
		{Velocity, Force, Temperature},
		{Angle, Current, Dimensionless},
		{Energy, Energy.Invert(), LuminousIntensity},
	}

	for i, triple := range triples {
		a, b, c := triple[0], triple[1], triple[2]
		left := a.Mul(b).Mul(c)
		right := a.Mul(b.Mul(c))
		if !left.Equal(right) {
			t.Fatalf("test #%d: (a*b)*c = %q but a*(b*c) = %q", i, left, right)
		}
	}
}

func TestDimensionPow(t *testing.T) {
	if !Length.PowInt(2).Equal(Area) { t.Fatal("length^2 != area") }
	if !Length.PowInt(0).Equal(Dimensionless) { t.Fatal("length^0 != scalar") }
	if !Velocity.PowInt(-1).Equal(Velocity.Invert()) { t.Fatal("pow(-1) != invert") }

	half := Area.Pow(ratio.Must(1, 2))
	if !half.Equal(Length) { t.Fatal("area^(1/2) != length") }
}

func TestDimensionString(t *testing.T) {
	tests := []struct {
		in  Dimension
		out string
	}{
		{Length, "m"},
		{Velocity, "m s^-1"},
		{Acceleration, "m s^-2"},
		{Force, "m kg s^-2"},
		{Density, "m^-3 kg"},
		{Area.Pow(ratio.Must(1, 2)).Mul(Length), "m^2"},
		{SolidAngle, "rad^2"},
	}

	for i, test := range tests {
		if out := test.in.String(); out != test.out {
			t.Fatalf("test #%d: expected %q, got %q", i, test.out, out)
		}
	}
}
