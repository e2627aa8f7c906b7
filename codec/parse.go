// SPDX-License-Identifier: MIT
// Package codec - text → matrix.
//
// Parse contract:
//   - One row per non-blank line; blank text is "operand not provided" (nil, nil).
//   - Tokens are split on runs of whitespace, ',' and ';'. Square brackets
//     are separators too, so the output of Format parses back.
//   - Every token must be a finite real number in decimal or exponent notation;
//     hex floats ("0x1p3") and '_' separators are rejected.
//   - All rows must carry the same number of tokens.
//
// Input is NFKC-normalized first (full-width digits, commas and spaces pasted
// from other applications collapse to ASCII) and U+2212 MINUS SIGN reads as '-'.

package codec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/ETsETs777/Matrix-Desktop/evalerr"
	"github.com/ETsETs777/Matrix-Desktop/matrix"
)

var (
	// ErrNonFinite is the cause attached to tokens that parse as NaN or ±Inf.
	ErrNonFinite = errors.New("codec: value is not finite")

	// ErrNotDecimal is the cause attached to hex floats and '_' digit separators,
	// which strconv accepts but a decimal calculator does not.
	ErrNotDecimal = errors.New("codec: value is not a decimal number")
)

// msgRagged is the user-facing description of a ragged input.
const msgRagged = "rows have different length"

// minusReplacer maps typographic minus signs onto ASCII '-'.
var minusReplacer = strings.NewReplacer("−", "-", "‒", "-", "–", "-")

// isSeparator reports whether r splits tokens within a line.
func isSeparator(r rune) bool {
	switch r {
	case ',', ';', '[', ']':
		return true
	}

	return unicode.IsSpace(r)
}

// Parse converts delimiter-tolerant text into a rectangular matrix.
// Implementation:
//   - Stage 1: normalize (NFKC, minus signs) and split into lines.
//   - Stage 2: tokenize each non-blank line and convert tokens with strconv.ParseFloat.
//   - Stage 3: check rectangularity and copy into a Dense.
//
// Returns:
//   - (nil, nil) for blank text.
//
// Errors:
//   - *evalerr.Error of kind NumberFormat (token + 1-based line) or Shape (ragged rows).
//
// Complexity:
//   - Time O(len(text)), Space O(r*c).
func Parse(text string) (*matrix.Dense, error) {
	text = minusReplacer.Replace(norm.NFKC.String(text))

	var (
		rows  [][]float64
		width = -1
	)
	for idx, line := range strings.Split(text, "\n") {
		tokens := strings.FieldsFunc(line, isSeparator)
		if len(tokens) == 0 {
			continue
		}
		row := make([]float64, len(tokens))
		for j, tok := range tokens {
			v, err := parseNumber(tok)
			if err != nil {
				return nil, evalerr.NewNumberFormat(tok, idx+1, err)
			}
			row[j] = v
		}
		if width >= 0 && len(row) != width {
			return nil, evalerr.NewShape("", "", msgRagged,
				fmt.Errorf("line %d has %d values, want %d: %w", idx+1, len(row), width, matrix.ErrRaggedRows))
		}
		width = len(row)
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, evalerr.NewShape("", "", msgRagged, err)
	}

	return m, nil
}

// ParseOperand is Parse with failures attributed to the named operand ("A" or "B").
func ParseOperand(name, text string) (*matrix.Dense, error) {
	m, err := Parse(text)
	if err != nil {
		var e *evalerr.Error
		if errors.As(err, &e) {
			return nil, e.WithOperand(name)
		}
		return nil, err
	}

	return m, nil
}

// parseNumber accepts finite decimal float64 literals.
func parseNumber(tok string) (float64, error) {
	if strings.ContainsAny(tok, "xX_pP") {
		return 0, ErrNotDecimal
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNonFinite
	}

	return v, nil
}
