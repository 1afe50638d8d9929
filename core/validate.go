// SPDX-License-Identifier: MIT
// Package core - input validation shared by every engine.
//
// Only what the arithmetic cannot report by itself is checked here:
// a nil integrand, non-finite bounds and a meaningless tolerance.
// Reversed bounds (a > b) are accepted; they flip the sign of the result.

package core

import (
	"fmt"
	"math"
)

// ValidateInput checks the integrand and the interval.
func ValidateInput(f Func, a, b float64) error {
	if f == nil {
		return ErrNilFunc
	}
	if isNonFinite(a) || isNonFinite(b) {
		return fmt.Errorf("[%g, %g]: %w", a, b, ErrNonFiniteBound)
	}

	return nil
}

// ValidateTolerance rejects NaN, ±Inf and non-positive epsilon.
func ValidateTolerance(eps float64) error {
	if isNonFinite(eps) || eps <= 0 {
		return fmt.Errorf("epsilon %g: %w", eps, ErrBadTolerance)
	}

	return nil
}

// isNonFinite reports whether x is NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
