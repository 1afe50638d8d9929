// SPDX-License-Identifier: MIT

package simpson

import (
	"fmt"
	"math"

	"github.com/katalvlaran/quadra/core"
)

const (
	// DefaultBaseSlices is the resolution of the first adaptive estimate.
	DefaultBaseSlices = 2

	// DefaultMaxSlices caps adaptive doubling at 2^24 slices.
	DefaultMaxSlices = 1 << 24
)

// Integrate applies the composite Simpson's rule with n slices.
//
// Errors:
//   - core.ErrNilFunc, core.ErrNonFiniteBound: invalid input.
//   - core.ErrBadSlices: n < 2.
//   - core.ErrOddSlices: n is odd.
func Integrate(f core.Func, a, b float64, n int) (float64, error) {
	if err := core.ValidateInput(f, a, b); err != nil {
		return 0, err
	}
	if err := checkSlices(n); err != nil {
		return 0, err
	}

	h := (b - a) / float64(n)
	s, t := split(f, a, b, h, n)

	return h * (s + 2*t), nil
}

// Adaptive doubles the slice count from the base (2) until the error
// estimate (I' − I)/15 is below eps in magnitude, or until the next
// doubling would exceed the cap (2^24).
//
// Each integrand sample is evaluated once across all levels. A cancelled
// context stops between doublings and returns the latest estimate with
// ctx.Err().
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
	if err = checkSlices(o.BaseSlices); err != nil {
		return core.Result{}, err
	}

	// Stage 2: Base estimate
	var (
		counter = core.NewCounter(f)
		n       = o.BaseSlices
		h       = (b - a) / float64(n)
		s, t    = split(counter.Eval, a, b, h, n)
		prev    = h * (s + 2*t)
		cur     float64
		res     = core.Result{Value: prev, Status: core.CapReached, Slices: n}
	)
	res.Evaluations = counter.Calls()
	o.OnStep(core.Step{Slices: n, Estimate: prev})

	// Stage 3: Double, reusing S and T
	for n*2 <= o.MaxSlices {
		if err = o.Ctx.Err(); err != nil {
			return res, err
		}
		n *= 2
		h /= 2
		s += t
		t = core.SumStrided(counter.Eval, a, h, 1, n-1, 2) * 2 / 3
		cur = h * (s + 2*t)

		res.Level++
		res.Slices = n
		res.Value = cur
		res.ErrorEstimate = (cur - prev) / 15
		res.Evaluations = counter.Calls()
		o.OnStep(core.Step{Level: res.Level, Slices: n, Estimate: cur, ErrorEstimate: res.ErrorEstimate, HasError: true})

		if math.Abs(res.ErrorEstimate) < eps {
			res.Status = core.Converged
			break
		}
		prev = cur
	}

	return res, nil
}

// split returns the endpoint-and-even part S and the odd part T of the
// rule on n slices of width h.
func split(f core.Func, a, b, h float64, n int) (s, t float64) {
	s = (f(a) + f(b) + 2*core.SumStrided(f, a, h, 2, n-2, 2)) / 3
	t = core.SumStrided(f, a, h, 1, n-1, 2) * 2 / 3

	return s, t
}

func checkSlices(n int) error {
	if n < 2 {
		return fmt.Errorf("simpson: %d slices: %w", n, core.ErrBadSlices)
	}
	if n%2 != 0 {
		return fmt.Errorf("simpson: %d slices: %w", n, core.ErrOddSlices)
	}

	return nil
}
