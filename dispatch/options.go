// SPDX-License-Identifier: MIT

package dispatch

import (
	"go.uber.org/zap"

	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/matrix"
	"github.com/ETsETs777/Matrix-Desktop/rref"
)

// Defaults for the numeric policy.
const (
	// DefaultSymmetryTolerance decides the symmetric eigen fast path and the
	// symmetry precondition of Cholesky.
	DefaultSymmetryTolerance = matrix.DefaultEpsilon
	// DefaultPivotEpsilon is the RREF negligible-pivot threshold.
	DefaultPivotEpsilon = rref.DefaultEpsilon
	// DefaultMaxIter bounds Jacobi sweeps on the symmetric eigen path.
	DefaultMaxIter = matrix.DefaultMaxIter
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithSymmetryTolerance sets the absolute tolerance used for symmetry checks.
// Panics on a negative or non-finite value.
func WithSymmetryTolerance(eps float64) Option {
	_ = matrix.WithEpsilon(eps) // same validation, same panic
	return func(d *Dispatcher) { d.symTol = eps }
}

// WithPivotEpsilon sets the RREF pivot threshold. Panics on a negative or non-finite value.
func WithPivotEpsilon(eps float64) Option {
	_ = rref.WithEpsilon(eps)
	return func(d *Dispatcher) { d.pivotEps = eps }
}

// WithMaxIter bounds Jacobi sweeps. Panics when n <= 0.
func WithMaxIter(n int) Option {
	_ = matrix.WithMaxIter(n)
	return func(d *Dispatcher) { d.maxIter = n }
}

// WithRankTolerance fixes the singular-value cutoff for rank, pinv and cond
// (0 keeps the automatic max(r,c)·σ_max·ε rule).
func WithRankTolerance(tol float64) Option {
	_ = matrix.WithRankTolerance(tol)
	return func(d *Dispatcher) { d.rankTol = tol }
}

// WithFormatter sets the number formatter for every block.
func WithFormatter(f codec.Formatter) Option {
	return func(d *Dispatcher) { d.fmt = f }
}

// WithLogger attaches a zap logger; evaluations log at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}
