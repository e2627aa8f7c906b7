// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// factorization and spectral kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by structural checks
	// (symmetry test before Cholesky and the symmetric eigen fast-path).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultMaxIter bounds the number of Jacobi sweeps in EigenSym. One sweep
	// rotates every off-diagonal pair once, n·(n-1)/2 rotations.
	DefaultMaxIter = 100

	// DefaultRankTolerance of zero selects the automatic SVD cutoff
	// max(r,c) * σ_max * MachineEpsilon.
	DefaultRankTolerance = 0.0
)

// MachineEpsilon is the float64 unit round-off used to scale automatic cutoffs.
const MachineEpsilon = 2.220446049250313e-16

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicMaxIterInvalid = "matrix: WithMaxIter: maxIter must be > 0"
	panicRankTolInvalid = "matrix: WithRankTolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
	maxIter        int     // > 0; DefaultMaxIter
	rankTol        float64 // >= 0; 0 means automatic
}

// WithEpsilon sets the numeric tolerance eps used by structural checks.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithNoValidateNaNInf relaxes finite-value validation in NewFromRows.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithMaxIter bounds the number of Jacobi sweeps performed by EigenSym.
// Panics when maxIter <= 0.
func WithMaxIter(maxIter int) Option {
	if maxIter <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIter = maxIter }
}

// WithRankTolerance fixes the singular-value cutoff used by Rank and PInv.
// A value of 0 restores the automatic cutoff.
func WithRankTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicRankTolInvalid)
	}

	return func(o *Options) { o.rankTol = tol }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins for repeated setters.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		maxIter:        DefaultMaxIter,
		rankTol:        DefaultRankTolerance,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
