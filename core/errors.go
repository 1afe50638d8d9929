// SPDX-License-Identifier: MIT
// Package core: sentinel error set shared by all engines.
// Engines return these sentinels (optionally wrapped with fmt.Errorf("ctx: %w"))
// and tests check them via errors.Is.

package core

import "errors"

var (
	// ErrNilFunc is returned when the integrand is nil.
	ErrNilFunc = errors.New("core: integrand is nil")

	// ErrBadSlices indicates a resolution below the rule's minimum
	// (n < 1 for trapezoid/Gauss, n < 2 for Simpson).
	ErrBadSlices = errors.New("core: invalid number of slices")

	// ErrOddSlices indicates an odd slice count passed to Simpson's rule.
	ErrOddSlices = errors.New("core: Simpson's rule needs an even number of slices")

	// ErrBadTolerance indicates a non-positive or non-finite epsilon.
	ErrBadTolerance = errors.New("core: tolerance must be finite and > 0")

	// ErrNonFiniteBound indicates a NaN or ±Inf integration bound.
	// Infinite domains must be mapped onto finite ones by the caller.
	ErrNonFiniteBound = errors.New("core: integration bounds must be finite")

	// ErrNotConverged marks an adaptive result whose refinement cap was
	// reached before the error estimate dropped below epsilon.
	ErrNotConverged = errors.New("core: refinement cap reached before convergence")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("core: invalid option supplied")
)
