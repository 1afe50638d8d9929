// Package trapezoid implements the composite trapezoidal rule, fixed and
// adaptive, and exposes its successive-doubling estimates through Refiner.
//
// ⚙️ Rule:
//
//	h = (b−a)/n
//	I ≈ h/2 · [f(a) + 2·Σ_{i=1}^{n−1} f(a+ih) + f(b)]
//
// ✨ Doubling without re-evaluation:
//
//	When n doubles, the new samples are exactly the odd indices of the
//	finer grid, so
//
//	  I_{k+1} = I_k/2 + h_{k+1}·Σ_{odd i} f(a + i·h_{k+1})
//
//	Every integrand sample is evaluated once across all levels.
//	The error of I_{k+1} is estimated as (I_{k+1} − I_k)/3.
//
// The Refiner type is the reusable form of that sequence; package romberg
// builds its extrapolation table on top of it.
//
// Usage:
//
//	v, err := trapezoid.Integrate(f, 0, 2, 100)
//	res, err := trapezoid.Adaptive(f, 0, 1, 1e-6)
//
//	r, err := trapezoid.NewRefiner(f, 0, 1, 1)
//	for r.Slices() < 1024 { r.Next() }
package trapezoid
