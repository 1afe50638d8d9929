// Package legendre computes Gauss–Legendre quadrature nodes and weights.
//
// 🚀 What is a node set?
//
//	The n abscissas x_i are the roots of the degree-n Legendre polynomial
//	P_n on (-1, 1); the weights w_i make Σ w_i·p(x_i) = ∫_{-1}^{1} p(x)dx
//	exact for every polynomial p of degree ≤ 2n-1.
//
// ⚙️ Algorithm:
//
//  1. Seed root i with x_i = cos(π·a_i + 1/(8n²·tan(π·a_i))),
//     a_i = (4i-1)/(4n+2), i = 1..n.
//  2. Evaluate P_n and P_{n-1} by the three-term recurrence
//     (k+1)·P_{k+1} = (2k+1)·x·P_k − k·P_{k-1}, P_0 = 1, P_1 = x,
//     then P_n' = n·(x·P_n − P_{n-1})/(x² − 1).
//  3. Newton-update every root, x ← x − P_n/P_n', until the largest
//     update of a sweep is below Tolerance (1e-15).
//  4. w_i = 2 / ((1 − x_i²)·P_n'(x_i)²).
//
// Node sets are recomputed on every call; nothing is cached.
//
// Usage:
//
//	ns, err := legendre.Nodes(5)
//	onAB := ns.Scale(0, 2) // map onto [0, 2]
//
// Complexity: O(n²) per sweep; a handful of sweeps suffice for n ≤ 640.
package legendre
