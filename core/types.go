// SPDX-License-Identifier: MIT

package core

import "fmt"

// Func is an integrand: a pure, deterministic function of one real variable.
// Engines may sample it in any order and never keep it after returning.
type Func func(x float64) float64

// Status tags how an adaptive routine stopped.
type Status int

const (
	// Converged means the last error estimate was below epsilon.
	Converged Status = iota

	// CapReached means the refinement cap stopped the loop first;
	// Result.Value is still the best estimate available.
	CapReached
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case CapReached:
		return "cap-reached"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of an adaptive integration.
//
// Fields:
//   - Value: latest estimate of the integral.
//   - Status: Converged or CapReached.
//   - Level: number of doublings performed after the base resolution.
//   - Slices: resolution of Value (slice count, or Gauss order).
//   - ErrorEstimate: signed error estimate of the last refinement
//     (0 when no refinement happened).
//   - Evaluations: total integrand calls made by the routine.
type Result struct {
	Value         float64
	Status        Status
	Level         int
	Slices        int
	ErrorEstimate float64
	Evaluations   int
}

// Converged reports whether the tolerance was met.
func (r Result) Converged() bool { return r.Status == Converged }

// Err returns nil for converged results and an error wrapping
// ErrNotConverged otherwise, so callers that want strictness can write
//
//	if err := res.Err(); err != nil { ... }
func (r Result) Err() error {
	if r.Status == Converged {
		return nil
	}

	return fmt.Errorf("%w: %d slices after %d doublings, error estimate %g",
		ErrNotConverged, r.Slices, r.Level, r.ErrorEstimate)
}

// Step describes one refinement of an adaptive loop.
// Level 0 is the base estimate and carries no error estimate (HasError=false).
type Step struct {
	Level         int
	Slices        int
	Estimate      float64
	ErrorEstimate float64
	HasError      bool
}
