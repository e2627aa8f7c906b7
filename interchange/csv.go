// SPDX-License-Identifier: MIT

package interchange

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/matrix"
)

// ErrEmptyCSV is returned by ReadCSV when the input holds no records.
var ErrEmptyCSV = errors.New("interchange: csv has no rows")

// ReadCSV converts comma-separated rows into operand text (one line per row,
// values separated by spaces). Lines starting with '#' are skipped.
// The text is validated with codec.Parse, so a bad cell or ragged rows come
// back as the same evalerr errors as typed input.
func ReadCSV(r io.Reader) (string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // ragged rows are reported by codec.Parse
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	records, err := cr.ReadAll()
	if err != nil {
		return "", fmt.Errorf("interchange: read csv: %w", err)
	}
	if len(records) == 0 {
		return "", ErrEmptyCSV
	}

	lines := make([]string, len(records))
	for i, rec := range records {
		for j := range rec {
			rec[j] = strings.TrimSpace(rec[j])
		}
		lines[i] = strings.Join(rec, " ")
	}
	text := strings.Join(lines, "\n")
	if _, err := codec.Parse(text); err != nil {
		return "", err
	}

	return text, nil
}

// WriteCSV writes m one row per record with round-trip precision.
func WriteCSV(w io.Writer, m *matrix.Dense) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("interchange: write csv: %w", err)
	}
	f := codec.NewFormatter(codec.WithPrecision(codec.ShortestPrecision))
	cw := csv.NewWriter(w)
	for _, row := range m.ToRows() {
		rec := make([]string, len(row))
		for j, v := range row {
			rec[j] = f.Number(v)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("interchange: write csv: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("interchange: write csv: %w", err)
	}

	return nil
}
