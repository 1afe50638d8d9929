// SPDX-License-Identifier: MIT

package catalog

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/gauss"
)

// Physical constants (SI, 2019 exact or CODATA 2018).
const (
	Boltzmann    = 1.380649e-23    // J/K
	SpeedOfLight = 299792458.0     // m/s
	HBar         = 1.054571817e-34 // J·s
)

// DebyeHeatCapacity returns the heat capacity in J/K of a solid of the
// given volume (m³), number density (atoms/m³) and Debye temperature at
// the given temperature (K):
//
//	C_V = 9Vρk_B (T/θ_D)³ ∫₀^{θ_D/T} x⁴eˣ/(eˣ−1)² dx
//
// The integral uses an order-n Gauss–Legendre rule.
func DebyeHeatCapacity(temperature, volume, density, debyeTemp float64, n int) (float64, error) {
	if !(temperature > 0) || !(debyeTemp > 0) {
		return 0, fmt.Errorf("catalog: T=%g K, θ_D=%g K: %w", temperature, debyeTemp, ErrBadParameter)
	}
	integral, err := gauss.Integrate(Debye, 0, debyeTemp/temperature, n)
	if err != nil {
		return 0, fmt.Errorf("catalog: debye integral: %w", err)
	}
	r := temperature / debyeTemp

	return 9 * volume * density * Boltzmann * r * r * r * integral, nil
}

// StefanBoltzmann returns σ = k_B⁴/(4π²c²ħ³) · ∫₀^∞ x³/(eˣ−1) dx with the
// integral taken by an order-n Gauss–Legendre rule on the mapped interval.
func StefanBoltzmann(n int) (float64, error) {
	integral, err := gauss.Integrate(Stefan, 0, 1, n)
	if err != nil {
		return 0, fmt.Errorf("catalog: planck integral: %w", err)
	}
	k2 := Boltzmann * Boltzmann

	return k2 * k2 / (4 * math.Pi * math.Pi * SpeedOfLight * SpeedOfLight * HBar * HBar * HBar) * integral, nil
}

// Bessel returns J_m(x) by integrating BesselIntegrand(m, x) over [0, π]
// with an order-n Gauss–Legendre rule.
func Bessel(m int, x float64, n int) (float64, error) {
	v, err := gauss.Integrate(BesselIntegrand(m, x), 0, math.Pi, n)
	if err != nil {
		return 0, fmt.Errorf("catalog: bessel J%d(%g): %w", m, x, err)
	}

	return v, nil
}

// Fresnel returns the Fresnel integrals C(u) = ∫₀^u cos(πt²/2) dt and
// S(u) = ∫₀^u sin(πt²/2) dt with an order-n Gauss–Legendre rule.
func Fresnel(u float64, n int) (c, s float64, err error) {
	if c, err = gauss.Integrate(FresnelCos, 0, u, n); err != nil {
		return 0, 0, fmt.Errorf("catalog: fresnel C(%g): %w", u, err)
	}
	if s, err = gauss.Integrate(FresnelSin, 0, u, n); err != nil {
		return 0, 0, fmt.Errorf("catalog: fresnel S(%g): %w", u, err)
	}

	return c, s, nil
}

// DiffractionIntensity returns I/I₀ at distance x (m) from the edge of the
// geometric shadow, on a screen z metres behind a straight edge lit with
// the given wavelength (m):
//
//	u = x·√(2/(λz)),  I/I₀ = [(2C(u)+1)² + (2S(u)+1)²] / 8
//
// The shadow edge itself (x = 0) is at a quarter of the incident intensity.
func DiffractionIntensity(x, z, wavelength float64, n int) (float64, error) {
	if !(z > 0) || !(wavelength > 0) {
		return 0, fmt.Errorf("catalog: z=%g m, λ=%g m: %w", z, wavelength, ErrBadParameter)
	}
	c, s, err := Fresnel(x*math.Sqrt(2/(wavelength*z)), n)
	if err != nil {
		return 0, err
	}
	c = 2*c + 1
	s = 2*s + 1

	return (c*c + s*s) / 8, nil
}

// OscillatorPeriod returns the period of a unit-mass particle released from
// rest at the given amplitude in the anharmonic potential V(x) = x⁴:
//
//	T = √8 ∫₀^a dx / √(V(a) − V(x))
//
// The integrand is singular at x = a; Gauss–Legendre nodes never reach it.
func OscillatorPeriod(amplitude float64, n int) (float64, error) {
	if !(amplitude > 0) || math.IsInf(amplitude, 1) {
		return 0, fmt.Errorf("catalog: amplitude=%g: %w", amplitude, ErrBadParameter)
	}
	va := amplitude * amplitude * amplitude * amplitude
	integrand := func(x float64) float64 {
		x2 := x * x
		return 1 / math.Sqrt(va-x2*x2)
	}
	integral, err := gauss.Integrate(integrand, 0, amplitude, n)
	if err != nil {
		return 0, fmt.Errorf("catalog: oscillator period: %w", err)
	}

	return 2 * math.Sqrt2 * integral, nil
}

// Uncertainty returns the position uncertainty √⟨x²⟩ of the harmonic
// oscillator in state level, integrating UncertaintyIntegrand with an
// order-n Gauss–Legendre rule. The exact value is √(level + ½).
func Uncertainty(level, n int) (float64, error) {
	if level < 0 {
		return 0, fmt.Errorf("catalog: level=%d: %w", level, ErrBadParameter)
	}
	integral, err := gauss.Integrate(UncertaintyIntegrand(level), -1, 1, n)
	if err != nil {
		return 0, fmt.Errorf("catalog: uncertainty integral: %w", err)
	}

	return math.Sqrt(integral), nil
}
