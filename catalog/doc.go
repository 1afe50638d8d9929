// Package catalog is a registry of named test integrands with default
// bounds and, where one exists, the exact value of the integral.
//
// The entries come from classic computational-physics exercises: a quartic
// polynomial, the Gaussian e^{-t²}, an oscillating sin²(√(100x)), Bessel's
// J₁(1), the Fresnel integral C(1), the Debye heat-capacity integral, the
// Planck integral behind the Stefan–Boltzmann constant and the position
// spread of a harmonic-oscillator state.
//
// The physics helpers compute the derived quantities with Gaussian
// quadrature: DebyeHeatCapacity, StefanBoltzmann, Bessel, Fresnel with
// DiffractionIntensity for a straight edge, OscillatorPeriod for the
// x⁴ well and Uncertainty for ψ_n.
//
// Usage:
//
//	e, err := catalog.Lookup("sinsqrt")
//	res, err := romberg.Integrate(e.Func, e.A, e.B, 1e-6)
//	fmt.Println(math.Abs(res.Value - e.Exact))
package catalog
