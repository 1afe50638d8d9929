// SPDX-License-Identifier: MIT

package core

import (
	"context"
	"fmt"
)

// Option configures an adaptive engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// by Gather, so constructors themselves never panic.
type Option func(*Options)

// Options holds the effective configuration of an adaptive run.
type Options struct {
	// Ctx is checked between refinement levels. Integrand calls themselves
	// are never interrupted.
	Ctx context.Context

	// BaseSlices is the resolution of the first estimate
	// (slice count for composite rules, order for Gauss–Legendre).
	BaseSlices int

	// MaxSlices caps the resolution: the loop doubles only while the
	// doubled resolution stays <= MaxSlices.
	MaxSlices int

	// OnStep is called once per estimate, base level included.
	OnStep func(Step)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, a no-op hook
// and zero resolutions. Engines overwrite BaseSlices/MaxSlices with their
// own defaults before handing the struct to Gather.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		OnStep: func(Step) {},
	}
}

// WithContext sets a context checked between refinement levels.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithBaseSlices overrides the starting resolution.
//
//	n >= 1: start at n
//	n < 1:  invalid option → ErrOptionViolation
func WithBaseSlices(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: base slices must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.BaseSlices = n
	}
}

// WithMaxSlices overrides the refinement cap.
func WithMaxSlices(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: max slices must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSlices = n
	}
}

// WithOnStep registers a callback receiving every estimate of the loop.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Gather applies opts on top of defaults and validates the result.
// It returns ErrOptionViolation when an option was rejected or when
// BaseSlices exceeds MaxSlices.
func Gather(defaults Options, opts ...Option) (Options, error) {
	o := defaults
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.OnStep == nil {
		o.OnStep = func(Step) {}
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return Options{}, o.err
	}
	if o.BaseSlices > o.MaxSlices {
		return Options{}, fmt.Errorf("%w: base slices %d exceed max slices %d",
			ErrOptionViolation, o.BaseSlices, o.MaxSlices)
	}

	return o, nil
}
