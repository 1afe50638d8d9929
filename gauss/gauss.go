// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/legendre"
)

const (
	// DefaultBaseOrder is the order of the first adaptive estimate.
	DefaultBaseOrder = 10

	// DefaultMaxOrder caps adaptive doubling.
	DefaultMaxOrder = 640
)

// Integrate returns Σ f(x'_i)·w'_i for the order-n rule mapped onto [a, b].
//
// Errors:
//   - core.ErrNilFunc, core.ErrNonFiniteBound: invalid input.
//   - core.ErrBadSlices: n < 1.
//   - legendre.ErrNoConvergence: node solver failed.
func Integrate(f core.Func, a, b float64, n int) (float64, error) {
	if err := core.ValidateInput(f, a, b); err != nil {
		return 0, err
	}

	return integrate(f, a, b, n)
}

// Adaptive doubles the order from the base (10) until
// |I(n) − I(n/2)| < eps or the next order would exceed the cap (640).
// Order limits are overridden with core.WithBaseSlices / core.WithMaxSlices.
//
// The returned Result always carries the latest estimate; Status tells
// whether eps was met. A cancelled context stops between orders and
// returns the estimate reached so far with ctx.Err().
func Adaptive(f core.Func, a, b, eps float64, opts ...core.Option) (core.Result, error) {
	// Stage 1: Validate input and options
	if err := core.ValidateInput(f, a, b); err != nil {
		return core.Result{}, err
	}
	if err := core.ValidateTolerance(eps); err != nil {
		return core.Result{}, err
	}
	defaults := core.DefaultOptions()
	defaults.BaseSlices = DefaultBaseOrder
	defaults.MaxSlices = DefaultMaxOrder
	o, err := core.Gather(defaults, opts...)
	if err != nil {
		return core.Result{}, err
	}

	// Stage 2: Base estimate
	var (
		counter = core.NewCounter(f)
		order   = o.BaseSlices
		prev    float64
		cur     float64
		res     = core.Result{Status: core.CapReached, Slices: order}
	)
	if prev, err = integrate(counter.Eval, a, b, order); err != nil {
		return core.Result{}, err
	}
	res.Value = prev
	res.Evaluations = counter.Calls()
	o.OnStep(core.Step{Slices: order, Estimate: prev})

	// Stage 3: Double the order until the estimates agree
	for order*2 <= o.MaxSlices {
		if err = o.Ctx.Err(); err != nil {
			return res, err
		}
		order *= 2
		if cur, err = integrate(counter.Eval, a, b, order); err != nil {
			return res, err
		}
		res.Level++
		res.Slices = order
		res.Value = cur
		res.ErrorEstimate = cur - prev
		res.Evaluations = counter.Calls()
		o.OnStep(core.Step{Level: res.Level, Slices: order, Estimate: cur, ErrorEstimate: res.ErrorEstimate, HasError: true})

		if math.Abs(res.ErrorEstimate) < eps {
			res.Status = core.Converged
			break
		}
		prev = cur
	}

	return res, nil
}

// integrate is Integrate without input validation.
func integrate(f core.Func, a, b float64, n int) (float64, error) {
	ns, err := legendre.Nodes(n)
	if err != nil {
		return 0, err
	}
	ns = ns.Scale(a, b)

	var (
		total float64
		i     int
	)
	for i = range ns.X {
		total += f(ns.X[i]) * ns.W[i]
	}

	return total, nil
}
