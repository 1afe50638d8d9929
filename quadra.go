// SPDX-License-Identifier: MIT

package quadra

import (
	"math"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/gauss"
	"github.com/katalvlaran/quadra/romberg"
	"github.com/katalvlaran/quadra/simpson"
	"github.com/katalvlaran/quadra/trapezoid"
)

// IntegrateGaussianQuadrature integrates f over [a, b] with an order-n
// Gauss–Legendre rule.
func IntegrateGaussianQuadrature(a, b float64, n int, f func(float64) float64) float64 {
	return value(gauss.Integrate(f, a, b, n))
}

// IntegrateGaussianQuadratureAdaptive doubles the Gauss order from 10 up
// to 640 until successive estimates differ by less than epsilon.
func IntegrateGaussianQuadratureAdaptive(a, b, epsilon float64, f func(float64) float64) float64 {
	return estimate(gauss.Adaptive(f, a, b, epsilon))
}

// IntegrateSimpsonsRule applies composite Simpson's rule with n (even) slices.
func IntegrateSimpsonsRule(a, b float64, n int, f func(float64) float64) float64 {
	return value(simpson.Integrate(f, a, b, n))
}

// IntegrateSimpsonsRuleAdaptive doubles Simpson slices from 2 until the
// error estimate is below epsilon.
func IntegrateSimpsonsRuleAdaptive(a, b, epsilon float64, f func(float64) float64) float64 {
	return estimate(simpson.Adaptive(f, a, b, epsilon))
}

// IntegrateTrapezoidalRule applies the composite trapezoidal rule with n slices.
func IntegrateTrapezoidalRule(a, b float64, n int, f func(float64) float64) float64 {
	return value(trapezoid.Integrate(f, a, b, n))
}

// IntegrateTrapezoidalRuleAdaptive doubles trapezoid slices from 1 until
// the error estimate is below epsilon.
func IntegrateTrapezoidalRuleAdaptive(a, b, epsilon float64, f func(float64) float64) float64 {
	return estimate(trapezoid.Adaptive(f, a, b, epsilon))
}

// IntegrateRombergAdaptive runs Romberg integration to tolerance epsilon.
func IntegrateRombergAdaptive(a, b, epsilon float64, f func(float64) float64) float64 {
	res, err := romberg.Integrate(f, a, b, epsilon)

	return estimate(res.Result, err)
}

// value maps an engine error to NaN.
func value(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}

	return v
}

// estimate keeps the best-effort value of a capped run; only errors give NaN.
func estimate(res core.Result, err error) float64 {
	return value(res.Value, err)
}
