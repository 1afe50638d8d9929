// Package quadra integrates real functions of one variable over a finite
// interval.
//
// 🚀 What is in the box?
//
//	Five numerical engines, leaves first:
//		• legendre/  — Gauss–Legendre nodes and weights by Newton iteration
//		• gauss/     — fixed and order-doubling Gaussian quadrature
//		• simpson/   — composite Simpson's rule, fixed and adaptive
//		• trapezoid/ — composite trapezoidal rule, fixed and adaptive
//		• romberg/   — Richardson extrapolation on the trapezoid sequence
//
//	Shared types (Result, Status, options, sentinel errors) live in core/.
//	catalog/ holds named test integrands and two physics helpers built on
//	the engines; cmd/quadra is a command-line front end.
//
// ✨ Two surfaces:
//
//   - Engine packages return (value, error) or a core.Result that tells
//     Converged from CapReached.
//   - This package is the flat surface: bare float64 estimates, NaN on
//     invalid input.
//
// Quick example:
//
//	f := func(x float64) float64 { return x*x*x*x - 2*x + 1 }
//	quadra.IntegrateSimpsonsRule(0, 2, 10, f)         // 4.400426666666667
//	quadra.IntegrateRombergAdaptive(0, 2, 1e-10, f)   // 4.4
//
//	go get github.com/katalvlaran/quadra
package quadra
