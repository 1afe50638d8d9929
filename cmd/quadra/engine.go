package main

import (
	"fmt"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/gauss"
	"github.com/katalvlaran/quadra/internal/config"
	"github.com/katalvlaran/quadra/romberg"
	"github.com/katalvlaran/quadra/simpson"
	"github.com/katalvlaran/quadra/trapezoid"
)

// runFixed integrates with a fixed resolution n (order n for gauss).
func runFixed(method string, f core.Func, a, b float64, n int) (float64, error) {
	switch method {
	case config.MethodGauss:
		return gauss.Integrate(f, a, b, n)
	case config.MethodSimpson:
		return simpson.Integrate(f, a, b, n)
	case config.MethodTrapezoid:
		return trapezoid.Integrate(f, a, b, n)
	case config.MethodRomberg:
		return 0, fmt.Errorf("romberg has no fixed-resolution mode; use --epsilon")
	default:
		return 0, fmt.Errorf("unknown method %q", method)
	}
}

// runAdaptive integrates to tolerance eps.
func runAdaptive(method string, f core.Func, a, b, eps float64, opts ...core.Option) (core.Result, error) {
	switch method {
	case config.MethodGauss:
		return gauss.Adaptive(f, a, b, eps, opts...)
	case config.MethodSimpson:
		return simpson.Adaptive(f, a, b, eps, opts...)
	case config.MethodTrapezoid:
		return trapezoid.Adaptive(f, a, b, eps, opts...)
	case config.MethodRomberg:
		res, err := romberg.Integrate(f, a, b, eps, opts...)
		return res.Result, err
	default:
		return core.Result{}, fmt.Errorf("unknown method %q", method)
	}
}

// limitOptions turns the configured base and max into engine options;
// zero keeps the engine default.
func limitOptions(cfg *config.Config) []core.Option {
	var opts []core.Option
	if cfg.Base > 0 {
		opts = append(opts, core.WithBaseSlices(cfg.Base))
	}
	if cfg.Max > 0 {
		opts = append(opts, core.WithMaxSlices(cfg.Max))
	}

	return opts
}
