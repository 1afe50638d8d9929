// SPDX-License-Identifier: MIT

package romberg

import (
	"math"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/trapezoid"
)

const (
	// DefaultBaseSlices is the slice count of R[0][0].
	DefaultBaseSlices = 1

	// DefaultMaxSlices caps the trapezoid column at 2^28 slices.
	DefaultMaxSlices = 1 << 28
)

// Result is a core.Result plus the final table row R[Level][0..Level].
type Result struct {
	core.Result

	// Row is the last row of the Romberg table; Row[len(Row)-1] == Value.
	Row []float64
}

// Integrate runs Romberg integration of f over [a, b] to tolerance eps.
//
// Options: core.WithBaseSlices, core.WithMaxSlices, core.WithOnStep
// (called once per row, Estimate being the row's last entry) and
// core.WithContext (checked before every new row).
//
// Errors:
//   - core.ErrNilFunc, core.ErrNonFiniteBound: invalid input.
//   - core.ErrBadTolerance: eps not a positive finite number.
//   - core.ErrOptionViolation: bad options.
//   - ctx.Err(): cancelled; Result holds the last row.
func Integrate(f core.Func, a, b, eps float64, opts ...core.Option) (Result, error) {
	// Stage 1: Validate input and options
	if err := core.ValidateInput(f, a, b); err != nil {
		return Result{}, err
	}
	if err := core.ValidateTolerance(eps); err != nil {
		return Result{}, err
	}
	defaults := core.DefaultOptions()
	defaults.BaseSlices = DefaultBaseSlices
	defaults.MaxSlices = DefaultMaxSlices
	o, err := core.Gather(defaults, opts...)
	if err != nil {
		return Result{}, err
	}
	r, err := trapezoid.NewRefiner(f, a, b, o.BaseSlices)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: Row 0 is the raw base estimate
	prev := []float64{r.Estimate()}
	res := Result{
		Result: core.Result{
			Value:       r.Estimate(),
			Status:      core.CapReached,
			Slices:      r.Slices(),
			Evaluations: r.Evaluations(),
		},
		Row: prev,
	}
	o.OnStep(core.Step{Slices: r.Slices(), Estimate: r.Estimate()})

	// Stage 3: One new row per doubling
	var (
		next   []float64
		factor float64
		k, m   int
	)
	for r.Slices()*2 <= o.MaxSlices {
		if err = o.Ctx.Err(); err != nil {
			return res, err
		}
		r.Next()
		k = r.Level()

		next = make([]float64, k+1)
		next[0] = r.Estimate()
		factor = 1
		for m = 1; m <= k; m++ {
			factor *= 4
			next[m] = next[m-1] + (next[m-1]-prev[m-1])/(factor-1)
		}

		res.Value = next[k]
		res.Level = k
		res.Slices = r.Slices()
		res.ErrorEstimate = (next[k-1] - prev[k-1]) / (factor - 1)
		res.Evaluations = r.Evaluations()
		res.Row = next
		o.OnStep(core.Step{Level: k, Slices: res.Slices, Estimate: res.Value, ErrorEstimate: res.ErrorEstimate, HasError: true})

		if math.Abs(res.ErrorEstimate) < eps {
			res.Status = core.Converged
			break
		}
		prev = next
	}

	return res, nil
}
