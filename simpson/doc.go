// Package simpson implements the composite Simpson's rule, fixed and adaptive.
//
// ⚙️ Rule (n even, h = (b−a)/n):
//
//	I ≈ h/3 · [f(a) + 4·Σ_odd f(a+ih) + 2·Σ_even f(a+ih) + f(b)]
//
// The sum is kept as two parts so a doubling can reuse it:
//
//	S = (f(a) + f(b) + 2·Σ_even) / 3
//	T = 2·Σ_odd / 3
//	I = h·(S + 2T)
//
// After n → 2n every old sample is even-indexed on the finer grid, so
// S' = S + T and only the new odd-indexed samples are evaluated for T'.
// The error of the finer estimate is taken as (I' − I)/15.
//
// Adaptive starts at 2 slices and stops at 2^24. A base of 1024 slices
// is available through core.WithBaseSlices.
package simpson
