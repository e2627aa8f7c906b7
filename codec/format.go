// SPDX-License-Identifier: MIT
// Package codec - matrix → text.
//
// Format contract:
//   - A vector renders as one bracketed, semicolon-separated row: [a; b; c].
//   - A matrix renders one bracketed row per line, rows joined by '\n'.
//   - Numbers use the general 'g' verb with DefaultPrecision significant
//     digits: no padding, exponent only when the magnitude demands it.
//   - Negative zero renders as 0; ±Inf as inf / -inf.

package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/ETsETs777/Matrix-Desktop/matrix"
)

// DefaultPrecision is the number of significant digits in rendered values.
const DefaultPrecision = 6

// ShortestPrecision selects the shortest representation that round-trips exactly.
const ShortestPrecision = -1

const (
	rowOpen  = "["
	rowClose = "]"
	valueSep = "; "
)

// Option configures a Formatter.
type Option func(*Formatter)

// WithPrecision sets the significant digits (ShortestPrecision for exact round-trip).
// Panics when p is 0 or below -1.
func WithPrecision(p int) Option {
	if p == 0 || p < ShortestPrecision {
		panic("codec: WithPrecision: precision must be > 0 or ShortestPrecision")
	}

	return func(f *Formatter) { f.precision = p }
}

// Formatter renders numbers, vectors and matrices in the codec's text convention.
// The zero value is not usable; build one with NewFormatter.
type Formatter struct {
	precision int
}

// NewFormatter returns a Formatter with DefaultPrecision unless overridden.
func NewFormatter(opts ...Option) Formatter {
	f := Formatter{precision: DefaultPrecision}
	for _, set := range opts {
		set(&f)
	}

	return f
}

// Number renders a single value.
func (f Formatter) Number(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(v, 'g', f.precision, 64)
	if s == "-0" {
		return "0"
	}

	return s
}

// Vector renders [a; b; c].
func (f Formatter) Vector(v []float64) string {
	var b strings.Builder
	f.writeRow(&b, v)

	return b.String()
}

// Matrix renders one bracketed row per line.
func (f Formatter) Matrix(m *matrix.Dense) string {
	var b strings.Builder
	for i, row := range m.ToRows() {
		if i > 0 {
			b.WriteByte('\n')
		}
		f.writeRow(&b, row)
	}

	return b.String()
}

// Scalar renders "label = v".
func (f Formatter) Scalar(label string, v float64) string {
	return label + " = " + f.Number(v)
}

// Complex renders a+bi / a-bi; a purely real value renders like Number.
func (f Formatter) Complex(z complex128) string {
	re, im := real(z), imag(z)
	if im == 0 {
		return f.Number(re)
	}
	sign := "+"
	if im < 0 {
		sign, im = "-", -im
	}

	return f.Number(re) + sign + f.Number(im) + "i"
}

// ComplexVector renders [z1; z2; ...].
func (f Formatter) ComplexVector(v []complex128) string {
	var b strings.Builder
	b.WriteString(rowOpen)
	for j, z := range v {
		if j > 0 {
			b.WriteString(valueSep)
		}
		b.WriteString(f.Complex(z))
	}
	b.WriteString(rowClose)

	return b.String()
}

// ComplexMatrix renders complex rows like Matrix.
func (f Formatter) ComplexMatrix(rows [][]complex128) string {
	lines := make([]string, len(rows))
	for i, row := range rows {
		lines[i] = f.ComplexVector(row)
	}

	return strings.Join(lines, "\n")
}

func (f Formatter) writeRow(b *strings.Builder, row []float64) {
	b.WriteString(rowOpen)
	for j, v := range row {
		if j > 0 {
			b.WriteString(valueSep)
		}
		b.WriteString(f.Number(v))
	}
	b.WriteString(rowClose)
}

var std = NewFormatter()

// Format renders m with the default formatter.
func Format(m *matrix.Dense) string { return std.Matrix(m) }

// FormatVector renders v with the default formatter.
func FormatVector(v []float64) string { return std.Vector(v) }

// FormatScalar renders "label = v" with the default formatter.
func FormatScalar(label string, v float64) string { return std.Scalar(label, v) }

// FormatNumber renders one value with the default formatter.
func FormatNumber(v float64) string { return std.Number(v) }
