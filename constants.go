package units

import "math"

import "github.com/JaapAap/units/ratio"

// Universal physical constants, as float64 quantities. The table is
// read-only; the derived entries are computed from the measured ones
// with the quantity operators, and Go's package variable initialization
// resolves the dependency order (permittivity needs permeability and
// the speed of light, the Stefan-Boltzmann constant needs almost
// everything).
//
// [Pi] is a quantity of 1 in a unit carrying a pi exponent, so any
// constant derived from it keeps pi in the unit rather than in the
// magnitude; the factor only becomes numeric when the constant is read
// out in an ordinary unit. CODATA values as of the 2014 adjustment.
var (
	// Ratio of a circle's circumference to its diameter.
	Pi = New[float64](1, DeriveFull(ScalarUnit, ratio.One, ratio.One, ratio.Zero))

	// Speed of light in vacuum (exact).
	SpeedOfLight = New[float64](299792458, MetersPerSecond)

	// Newtonian constant of gravitation.
	GravitationalConstant = New[float64](6.67408e-11,
		Compound(Meters.Cubed(), Kilograms.Inverse(), Seconds.Squared().Inverse()))

	// Planck constant.
	PlanckConstant = New[float64](6.626070040e-34, Compound(Joules, Seconds))

	// Vacuum permeability.
	VacuumPermeability = New[float64](4e-7*math.Pi, Compound(Newtons, Amperes.Squared().Inverse()))

	// Vacuum permittivity, 1/(mu0 c^2).
	VacuumPermittivity = Scalar[float64](1).Div(VacuumPermeability.Mul(SpeedOfLight.Pow(2)))

	// Characteristic impedance of vacuum, mu0 c.
	VacuumImpedance = VacuumPermeability.Mul(SpeedOfLight)

	// Coulomb's constant, 1/(4 pi epsilon0).
	CoulombConstant = Scalar[float64](1).Div(Pi.MulFloat(4).Mul(VacuumPermittivity))

	// Elementary charge.
	ElementaryCharge = New[float64](1.602176565e-19, Coulombs)

	// Electron rest mass.
	ElectronMass = New[float64](9.10938291e-31, Kilograms)

	// Proton rest mass.
	ProtonMass = New[float64](1.672621777e-27, Kilograms)

	// Bohr magneton, e h/(4 pi m_e).
	BohrMagneton = ElementaryCharge.Mul(PlanckConstant).Div(Pi.MulFloat(4).Mul(ElectronMass))

	// Avogadro's number.
	AvogadroNumber = New[float64](6.02214129e23, Moles.Inverse())

	// Molar gas constant.
	GasConstant = New[float64](8.3144621, Compound(Joules, Kelvin.Inverse(), Moles.Inverse()))

	// Boltzmann constant, R/N_A.
	BoltzmannConstant = GasConstant.Div(AvogadroNumber)

	// Faraday constant, N_A e.
	FaradayConstant = AvogadroNumber.Mul(ElementaryCharge)

	// Stefan-Boltzmann constant, 2 pi^5 R^4/(15 h^3 c^2 N_A^4).
	StefanBoltzmannConstant = Pi.Pow(5).Mul(GasConstant.Pow(4)).MulFloat(2).
				Div(PlanckConstant.Pow(3).Mul(SpeedOfLight.Pow(2)).Mul(AvogadroNumber.Pow(4)).MulFloat(15))
)
