// SPDX-License-Identifier: MIT

package interchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/evalerr"
	"github.com/ETsETs777/Matrix-Desktop/history"
	"github.com/ETsETs777/Matrix-Desktop/matrix"
)

// Document is the JSON interchange shape {"A": [[...]], "B": [[...]], "R": [[...]]}.
// Absent operands are omitted; R is present only when the result was a matrix.
type Document struct {
	A [][]float64 `json:"A,omitempty"`
	B [][]float64 `json:"B,omitempty"`
	R [][]float64 `json:"R,omitempty"`
}

// EncodeJSON writes doc as indented JSON followed by a newline.
func EncodeJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("interchange: encode json: %w", err)
	}

	return nil
}

// DecodeJSON reads one Document. Every present matrix must be rectangular
// and non-empty; a violation is an evalerr Shape error naming the field.
func DecodeJSON(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("interchange: decode json: %w", err)
	}
	for _, f := range []struct {
		name string
		rows [][]float64
	}{{"A", doc.A}, {"B", doc.B}, {"R", doc.R}} {
		if f.rows == nil {
			continue
		}
		if _, err := matrix.NewFromRows(f.rows); err != nil {
			return Document{}, evalerr.NewShape("", f.name, shapeMessage(err), err)
		}
	}

	return doc, nil
}

// DocumentFromSnapshot parses the operand texts of snap. The result text is
// kept only when it parses as a plain matrix (scalars and multi-block results
// are dropped).
func DocumentFromSnapshot(snap history.Snapshot) (Document, error) {
	a, err := codec.ParseOperand("A", snap.A)
	if err != nil {
		return Document{}, err
	}
	b, err := codec.ParseOperand("B", snap.B)
	if err != nil {
		return Document{}, err
	}
	doc := Document{A: rowsOf(a), B: rowsOf(b)}
	if r, err := codec.Parse(snap.Result); err == nil {
		doc.R = rowsOf(r)
	}

	return doc, nil
}

// Snapshot renders the document back into operand texts with f.
func (d Document) Snapshot(f codec.Formatter) (history.Snapshot, error) {
	var snap history.Snapshot
	for _, t := range []struct {
		name string
		rows [][]float64
		dst  *string
	}{{"A", d.A, &snap.A}, {"B", d.B, &snap.B}, {"R", d.R, &snap.Result}} {
		if t.rows == nil {
			continue
		}
		m, err := matrix.NewFromRows(t.rows)
		if err != nil {
			return history.Snapshot{}, evalerr.NewShape("", t.name, shapeMessage(err), err)
		}
		*t.dst = f.Matrix(m)
	}

	return snap, nil
}

func rowsOf(m *matrix.Dense) [][]float64 {
	if m == nil {
		return nil
	}

	return m.ToRows()
}

func shapeMessage(err error) string {
	switch {
	case errors.Is(err, matrix.ErrRaggedRows):
		return "rows have different length"
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return "matrix is empty"
	default:
		return err.Error()
	}
}
