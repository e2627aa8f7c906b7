// SPDX-License-Identifier: MIT
// Package rref reduces a matrix to reduced row-echelon form and records every
// elementary row operation as a human-readable trace.
//
// Algorithm (Gauss-Jordan with partial pivoting), over pivot row r and column c:
//   - Pivot search: among rows r..n-1 pick the largest |R[i,c]|. A later
//     candidate replaces the current best only when |v| > best + eps, and the
//     chosen pivot must satisfy |p| > eps; otherwise the column has no usable
//     pivot and c advances while r stays.
//   - Swap rows r and p (recorded when p != r).
//   - Scale row r by 1/pivot (recorded when pivot != 1).
//   - Eliminate column c from every other row with |R[i,c]| > eps (one record each).
//   - r++ and continue with the next column until columns run out or r == rows.
//
// Tolerance policy: one absolute eps (DefaultEpsilon) with strict '>' in every
// comparison. Entries of a modified row that end within eps of zero are
// written as exact zeros so traces stay readable.
//
// The caller's matrix is never touched: all work happens on a private copy.
package rref

import (
	"fmt"
	"math"
	"strings"

	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/matrix"
)

// DefaultEpsilon is the absolute threshold below which a value counts as zero.
const DefaultEpsilon = 1e-12

// Kind is the type of an elementary row operation.
type Kind int

const (
	// Swap exchanges two rows.
	Swap Kind = iota + 1
	// Scale divides a row by its pivot.
	Scale
	// Eliminate subtracts a multiple of the pivot row.
	Eliminate
)

// String returns the operation name.
func (k Kind) String() string {
	switch k {
	case Swap:
		return "swap"
	case Scale:
		return "scale"
	case Eliminate:
		return "eliminate"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Step is one recorded row operation. Rows are 0-based.
//   - Swap:      rows Row and Source exchanged.
//   - Scale:     row Row divided by Factor (the pivot); Source is -1.
//   - Eliminate: row Row -= Factor × row Source.
//
// Snapshot is the full matrix state right after the operation.
type Step struct {
	Kind     Kind
	Row      int
	Source   int
	Factor   float64
	Snapshot *matrix.Dense
}

// Description renders the step with 1-based row names, e.g. "R2 = R2 - 0.5*R1".
func (s Step) Description(f codec.Formatter) string {
	switch s.Kind {
	case Swap:
		return fmt.Sprintf("R%d <-> R%d", s.Row+1, s.Source+1)
	case Scale:
		return fmt.Sprintf("R%d = R%d / %s", s.Row+1, s.Row+1, f.Number(s.Factor))
	case Eliminate:
		sign, k := "-", s.Factor
		if k < 0 {
			sign, k = "+", -k
		}
		return fmt.Sprintf("R%d = R%d %s %s*R%d", s.Row+1, s.Row+1, sign, f.Number(k), s.Source+1)
	default:
		return s.Kind.String()
	}
}

// Trace is the outcome of Reduce.
type Trace struct {
	Steps []Step
	Final *matrix.Dense

	pivots    []int
	formatter codec.Formatter
}

// Rank is the number of pivots found.
func (t *Trace) Rank() int { return len(t.pivots) }

// PivotColumns returns the 0-based pivot column of each pivot row.
func (t *Trace) PivotColumns() []int {
	out := make([]int, len(t.pivots))
	copy(out, t.pivots)

	return out
}

// String renders "description\nmatrix" per step, separated by blank lines.
// With no steps it is just the formatted final matrix.
func (t *Trace) String() string {
	if len(t.Steps) == 0 {
		return t.formatter.Matrix(t.Final)
	}
	blocks := make([]string, len(t.Steps))
	for i, s := range t.Steps {
		blocks[i] = s.Description(t.formatter) + "\n" + t.formatter.Matrix(s.Snapshot)
	}

	return strings.Join(blocks, "\n\n")
}

// Option configures Reduce.
type Option func(*options)

type options struct {
	eps       float64
	formatter codec.Formatter
}

// WithEpsilon overrides DefaultEpsilon. Panics unless eps is finite and ≥ 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic("rref: WithEpsilon: eps must be finite, non-negative")
	}

	return func(o *options) { o.eps = eps }
}

// WithFormatter sets the formatter used by Trace.String.
func WithFormatter(f codec.Formatter) Option {
	return func(o *options) { o.formatter = f }
}

// Reduce runs Gauss-Jordan elimination on a private copy of m.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//
// Complexity:
//   - Time O(r·c·min(r,c)) plus O(r·c) per recorded snapshot.
func Reduce(m *matrix.Dense, opts ...Option) (*Trace, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("rref: %w", err)
	}
	o := options{eps: DefaultEpsilon, formatter: codec.NewFormatter()}
	for _, set := range opts {
		set(&o)
	}

	s := &stepper{w: m.ToRows(), eps: o.eps}
	s.run()

	final, err := matrix.NewFromRows(s.w, matrix.WithNoValidateNaNInf())
	if err != nil {
		return nil, fmt.Errorf("rref: %w", err)
	}

	return &Trace{Steps: s.steps, Final: final, pivots: s.pivots, formatter: o.formatter}, nil
}

// stepper holds the working copy and the records collected so far.
type stepper struct {
	w      [][]float64
	eps    float64
	steps  []Step
	pivots []int
}

func (s *stepper) run() {
	rows, cols := len(s.w), len(s.w[0])
	r := 0
	for c := 0; c < cols && r < rows; c++ {
		p, best := r, math.Abs(s.w[r][c])
		for i := r + 1; i < rows; i++ {
			if v := math.Abs(s.w[i][c]); v > best+s.eps {
				p, best = i, v
			}
		}
		if !(best > s.eps) {
			continue // no usable pivot in this column
		}

		if p != r {
			s.w[r], s.w[p] = s.w[p], s.w[r]
			s.record(Step{Kind: Swap, Row: r, Source: p})
		}

		if pv := s.w[r][c]; pv != 1 {
			for j := range s.w[r] {
				s.w[r][j] /= pv
			}
			s.w[r][c] = 1
			s.snap(r)
			s.record(Step{Kind: Scale, Row: r, Source: -1, Factor: pv})
		}

		for i := 0; i < rows; i++ {
			if i == r {
				continue
			}
			f := s.w[i][c]
			if !(math.Abs(f) > s.eps) {
				continue
			}
			for j := range s.w[i] {
				s.w[i][j] -= f * s.w[r][j]
			}
			s.w[i][c] = 0
			s.snap(i)
			s.record(Step{Kind: Eliminate, Row: i, Source: r, Factor: f})
		}

		s.pivots = append(s.pivots, c)
		r++
	}
}

// snap writes exact zeros for entries of row i within eps of zero.
func (s *stepper) snap(i int) {
	for j, v := range s.w[i] {
		if math.Abs(v) <= s.eps {
			s.w[i][j] = 0
		}
	}
}

// record appends st with a snapshot of the current working state.
func (s *stepper) record(st Step) {
	st.Snapshot, _ = matrix.NewFromRows(s.w, matrix.WithNoValidateNaNInf()) // w is rectangular by construction
	s.steps = append(s.steps, st)
}
