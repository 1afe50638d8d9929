// SPDX-License-Identifier: MIT

package trapezoid

import (
	"fmt"

	"github.com/katalvlaran/quadra/core"
)

// Refiner holds the running state of a doubling trapezoidal sequence:
// level k uses base·2^k slices and every estimate reuses the previous one.
//
// A Refiner is not safe for concurrent use.
type Refiner struct {
	f        *core.Counter
	a        float64
	h        float64 // slice width at the current level
	n        int     // slices at the current level
	level    int
	estimate float64
}

// NewRefiner evaluates the level-0 estimate with base slices.
//
// Errors:
//   - core.ErrNilFunc, core.ErrNonFiniteBound: invalid input.
//   - core.ErrBadSlices: base < 1.
func NewRefiner(f core.Func, a, b float64, base int) (*Refiner, error) {
	if err := core.ValidateInput(f, a, b); err != nil {
		return nil, err
	}
	if base < 1 {
		return nil, fmt.Errorf("trapezoid: %d base slices: %w", base, core.ErrBadSlices)
	}

	r := &Refiner{
		f: core.NewCounter(f),
		a: a,
		h: (b - a) / float64(base),
		n: base,
	}
	r.estimate = rule(r.f.Eval, a, b, base, r.h)

	return r, nil
}

// Next doubles the slice count and returns the refined estimate
//
//	I_{k+1} = I_k/2 + h_{k+1}·Σ f(new odd-indexed points)
func (r *Refiner) Next() float64 {
	r.n *= 2
	r.h /= 2
	r.level++
	r.estimate = r.estimate/2 + r.h*core.SumStrided(r.f.Eval, r.a, r.h, 1, r.n-1, 2)

	return r.estimate
}

// Estimate returns the estimate at the current level.
func (r *Refiner) Estimate() float64 { return r.estimate }

// Slices returns the slice count at the current level.
func (r *Refiner) Slices() int { return r.n }

// Level returns the number of doublings performed.
func (r *Refiner) Level() int { return r.level }

// Width returns the slice width h at the current level.
func (r *Refiner) Width() float64 { return r.h }

// Evaluations returns the number of integrand calls so far.
func (r *Refiner) Evaluations() int { return r.f.Calls() }
