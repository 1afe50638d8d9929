// SPDX-License-Identifier: MIT

package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/quadra/core"
)

var (
	// ErrUnknownIntegrand is returned by Lookup for a name not in the registry.
	ErrUnknownIntegrand = errors.New("catalog: unknown integrand")

	// ErrBadParameter indicates a physical parameter outside its domain,
	// such as a non-positive temperature or a negative quantum number.
	ErrBadParameter = errors.New("catalog: parameter out of range")
)

// Entry is a named integrand over its default interval [A, B].
type Entry struct {
	Name        string
	Description string
	Func        core.Func
	A, B        float64

	// Exact is the closed-form value of ∫_A^B Func; valid only if HasExact.
	Exact    float64
	HasExact bool
}

// Aluminium parameters used by the debye entry.
const (
	AluminiumDebyeTemp = 428.0    // K
	AluminiumDensity   = 6.002e28 // atoms/m³
	RoomTemperature    = 290.0    // K
)

// UncertaintyLevel is the quantum number of the uncertainty entry.
const UncertaintyLevel = 5

var registry = map[string]Entry{
	"poly": {
		Name:        "poly",
		Description: "x⁴ − 2x + 1",
		Func:        Poly,
		A:           0,
		B:           2,
		Exact:       4.4,
		HasExact:    true,
	},
	"fresnel": {
		Name:        "fresnel",
		Description: "cos(πt²/2), integrates to the Fresnel C(1)",
		Func:        FresnelCos,
		A:           0,
		B:           1,
		Exact:       0.7798934003768228,
		HasExact:    true,
	},
	"gaussian": {
		Name:        "gaussian",
		Description: "e^{−t²}, the unnormalised error function",
		Func:        Gaussian,
		A:           0,
		B:           3,
		Exact:       math.Sqrt(math.Pi) / 2 * math.Erf(3),
		HasExact:    true,
	},
	"sinsqrt": {
		Name:        "sinsqrt",
		Description: "sin²(√(100x)), strongly oscillating near 0",
		Func:        SinSqrt,
		A:           0,
		B:           1,
		Exact:       (50 - 5*math.Sin(20) - math.Cos(20)/4 + 0.25) / 100,
		HasExact:    true,
	},
	"bessel1": {
		Name:        "bessel1",
		Description: "(1/π)·cos(θ − sin θ), integrates to J₁(1)",
		Func:        BesselIntegrand(1, 1),
		A:           0,
		B:           math.Pi,
		Exact:       math.J1(1),
		HasExact:    true,
	},
	"debye": {
		Name:        "debye",
		Description: "x⁴eˣ/(eˣ−1)², Debye integral for aluminium at 290 K",
		Func:        Debye,
		A:           0,
		B:           AluminiumDebyeTemp / RoomTemperature,
	},
	"stefan": {
		Name:        "stefan",
		Description: "x³/(eˣ−1) on [0, ∞) mapped by x = t/(1−t)",
		Func:        Stefan,
		A:           0,
		B:           1,
		Exact:       math.Pow(math.Pi, 4) / 15,
		HasExact:    true,
	},
	"uncertainty": {
		Name:        "uncertainty",
		Description: "x²|ψ₅(x)|² on (−∞, ∞) mapped by x = z/(1−z²), gives ⟨x²⟩",
		Func:        UncertaintyIntegrand(UncertaintyLevel),
		A:           -1,
		B:           1,
		Exact:       UncertaintyLevel + 0.5,
		HasExact:    true,
	},
}

// Lookup returns the entry registered under name.
func Lookup(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownIntegrand, name)
	}

	return e, nil
}

// Names returns the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// All returns every entry, ordered by name.
func All() []Entry {
	names := Names()
	out := make([]Entry, len(names))
	for i, name := range names {
		out[i] = registry[name]
	}

	return out
}

// Poly is x⁴ − 2x + 1.
func Poly(x float64) float64 { return x*x*x*x - 2*x + 1 }

// Gaussian is e^{−t²}.
func Gaussian(t float64) float64 { return math.Exp(-t * t) }

// SinSqrt is sin²(√(100x)).
func SinSqrt(x float64) float64 {
	s := math.Sin(math.Sqrt(100 * x))
	return s * s
}

// BesselIntegrand returns θ ↦ cos(mθ − x·sin θ)/π, whose integral over
// [0, π] is the Bessel function J_m(x).
func BesselIntegrand(m int, x float64) core.Func {
	fm := float64(m)

	return func(theta float64) float64 {
		return math.Cos(fm*theta-x*math.Sin(theta)) / math.Pi
	}
}

// Debye is x⁴eˣ/(eˣ−1)²; the removable singularity at 0 evaluates to 0.
//
// It is computed as x²·q²·e⁻ˣ with q = x/(1−e⁻ˣ), which stays finite for
// arguments too small for eˣ−1 to resolve and too large for eˣ to fit.
func Debye(x float64) float64 {
	if x == 0 {
		return 0
	}
	q := x / -math.Expm1(-x)

	return x * x * q * q * math.Exp(-x)
}

// Stefan is the Planck integrand x³/(eˣ−1) after x = t/(1−t), including
// the Jacobian 1/(1−t)². Both endpoint limits are 0.
func Stefan(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	var (
		u = 1 - t
		x = t / u
	)

	return x * x * (x / math.Expm1(x)) / (u * u)
}

// FresnelCos is cos(πt²/2); its integral over [0, u] is C(u).
func FresnelCos(t float64) float64 { return math.Cos(math.Pi / 2 * t * t) }

// FresnelSin is sin(πt²/2); its integral over [0, u] is S(u).
func FresnelSin(t float64) float64 { return math.Sin(math.Pi / 2 * t * t) }

// HarmonicWave returns the normalised harmonic-oscillator wave function
//
//	ψ_n(x) = H_n(x)·e^{−x²/2} / √(2ⁿ n! √π)
//
// through the recurrence on ψ itself, which avoids the overflow of 2ⁿn!
// and H_n for large n or |x|.
func HarmonicWave(level int, x float64) float64 {
	p0 := math.Exp(-x*x/2) / math.Sqrt(math.Sqrt(math.Pi))
	if level == 0 {
		return p0
	}
	p1 := math.Sqrt2 * x * p0
	for k := 1; k < level; k++ {
		fk := float64(k)
		p0, p1 = p1, math.Sqrt(2/(fk+1))*x*p1-math.Sqrt(fk/(fk+1))*p0
	}

	return p1
}

// UncertaintyIntegrand returns z ↦ x²|ψ_level(x)|²·dx/dz with x = z/(1−z²),
// whose integral over [−1, 1] is ⟨x²⟩ = level + ½. The endpoints evaluate
// to their limit 0.
func UncertaintyIntegrand(level int) core.Func {
	return func(z float64) float64 {
		u := 1 - z*z
		if u <= 0 {
			return 0
		}
		x := z / u
		psi := HarmonicWave(level, x)
		if psi == 0 {
			return 0
		}
		r := 1 / u

		return x * x * psi * psi * (r*r + x*x)
	}
}
