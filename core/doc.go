// Package core holds the vocabulary shared by every quadra engine:
// the integrand type, the tagged outcome of adaptive routines, the
// per-refinement Step trace, functional options and sentinel errors.
//
// 🚀 What lives here?
//
//	Func      — any pure unary real function, f: ℝ → ℝ
//	Result    — value + Status (Converged | CapReached) + level/slices/evals
//	Step      — one refinement of an adaptive loop, handed to OnStep hooks
//	Option    — WithBaseSlices, WithMaxSlices, WithOnStep, WithContext
//	Counter   — wraps a Func and counts integrand evaluations
//
// ✨ Conventions:
//   - Engines never log and never panic on user input; they return the
//     sentinels declared in errors.go, matched with errors.Is.
//   - Adaptive routines always return their best estimate. Whether the
//     tolerance was met is carried by Result.Status, never guessed.
//   - Integrands are not retained past the call that received them.
//
// Every engine package (gauss, simpson, trapezoid, romberg) resolves its
// options through Gather, starting from its own documented defaults:
//
//	opts, err := core.Gather(defaults, userOpts...)
package core
