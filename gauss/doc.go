// Package gauss integrates a function over [a, b] with Gauss–Legendre quadrature.
//
// 🚀 Why Gaussian quadrature?
//
//	An order-n rule integrates every polynomial of degree ≤ 2n−1 exactly,
//	with only n integrand samples and none at the endpoints. Integrands
//	that are smooth on [a, b] converge spectrally as n grows.
//
// ✨ Modes:
//   - Integrate: fixed order n.
//   - Adaptive:  n = 10, 20, 40, … up to 640; stops when two successive
//     estimates differ by less than epsilon.
//
// ⚙️ Usage:
//
//	v, err := gauss.Integrate(f, 0, 2, 3)
//	res, err := gauss.Adaptive(f, 0, 1, 1e-10)
//	if !res.Converged() { ... } // order cap reached
//
// Node sets come from package legendre and are recomputed per call.
package gauss
