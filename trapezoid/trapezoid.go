// SPDX-License-Identifier: MIT

package trapezoid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/core"
)

const (
	// DefaultBaseSlices is the resolution of the first adaptive estimate.
	// Callers reproducing a coarse-start-free run use core.WithBaseSlices(1024).
	DefaultBaseSlices = 1

	// DefaultMaxSlices caps adaptive doubling at 2^28 slices.
	DefaultMaxSlices = 1 << 28
)

// Integrate applies the composite trapezoidal rule with n slices.
//
// Errors:
//   - core.ErrNilFunc, core.ErrNonFiniteBound: invalid input.
//   - core.ErrBadSlices: n < 1.
func Integrate(f core.Func, a, b float64, n int) (float64, error) {
	if err := core.ValidateInput(f, a, b); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("trapezoid: %d slices: %w", n, core.ErrBadSlices)
	}

	return rule(f, a, b, n, (b-a)/float64(n)), nil
}

// Adaptive doubles the slice count from the base (1) until the error
// estimate (I_{k+1} − I_k)/3 is below eps in magnitude, or until the next
// doubling would exceed the cap (2^28).
//
// The returned Result always carries the latest estimate; Status tells
// whether eps was met.
func Adaptive(f core.Func, a, b, eps float64, opts ...core.Option) (core.Result, error) {
	// Stage 1: Validate input and options
	if err := core.ValidateInput(f, a, b); err != nil {
		return core.Result{}, err
	}
	if err := core.ValidateTolerance(eps); err != nil {
		return core.Result{}, err
	}
	defaults := core.DefaultOptions()
	defaults.BaseSlices = DefaultBaseSlices
	defaults.MaxSlices = DefaultMaxSlices
	o, err := core.Gather(defaults, opts...)
	if err != nil {
		return core.Result{}, err
	}
	r, err := NewRefiner(f, a, b, o.BaseSlices)
	if err != nil {
		return core.Result{}, err
	}

	// Stage 2: Base estimate
	res := core.Result{
		Value:       r.Estimate(),
		Status:      core.CapReached,
		Slices:      r.Slices(),
		Evaluations: r.Evaluations(),
	}
	o.OnStep(core.Step{Slices: r.Slices(), Estimate: r.Estimate()})

	// Stage 3: Refine
	var prev, cur float64
	for r.Slices()*2 <= o.MaxSlices {
		if err = o.Ctx.Err(); err != nil {
			return res, err
		}
		prev = r.Estimate()
		cur = r.Next()

		res.Value = cur
		res.Level = r.Level()
		res.Slices = r.Slices()
		res.ErrorEstimate = (cur - prev) / 3
		res.Evaluations = r.Evaluations()
		o.OnStep(core.Step{Level: res.Level, Slices: res.Slices, Estimate: cur, ErrorEstimate: res.ErrorEstimate, HasError: true})

		if math.Abs(res.ErrorEstimate) < eps {
			res.Status = core.Converged
			break
		}
	}

	return res, nil
}

// rule is the composite trapezoidal sum for n slices of width h.
func rule(f core.Func, a, b float64, n int, h float64) float64 {
	var (
		total = f(a)
		i     int
	)
	for i = 1; i < n; i++ {
		total += 2 * f(a+float64(i)*h)
	}
	total += f(b)

	return total * h / 2
}
