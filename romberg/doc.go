// Package romberg accelerates the doubling trapezoidal sequence with
// repeated Richardson extrapolation.
//
// 📐 Table:
//
//	R[k][0] = trapezoid estimate on base·2^k slices
//	R[k][m] = R[k][m−1] + (R[k][m−1] − R[k−1][m−1]) / (4^m − 1),  1 ≤ m ≤ k
//
// Only the previous row is kept. After level k the error of the row is
// estimated as (R[k][k−1] − R[k−1][k−1]) / (4^k − 1); the run stops when
// it drops below eps or the next doubling would exceed the slice cap.
// The value returned is R[k][k], accurate to O(h^(2k+2)) for smooth
// integrands.
//
// The trapezoid column is produced by trapezoid.Refiner, so every sample
// is evaluated once.
//
// Usage:
//
//	res, err := romberg.Integrate(f, 0, 1, 1e-6)
//	fmt.Println(res.Value, res.Level, res.Row)
package romberg
