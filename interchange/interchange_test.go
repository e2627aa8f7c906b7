// SPDX-License-Identifier: MIT
package interchange_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/evalerr"
	"github.com/ETsETs777/Matrix-Desktop/history"
	"github.com/ETsETs777/Matrix-Desktop/interchange"
	"github.com/ETsETs777/Matrix-Desktop/matrix"
)

func TestJSONRoundTrip(t *testing.T) {
	in := interchange.Document{
		A: [][]float64{{1, 2}, {3, 4}},
		R: [][]float64{{0.1, -1e-20}},
	}
	var buf bytes.Buffer
	require.NoError(t, interchange.EncodeJSON(&buf, in))
	assert.Contains(t, buf.String(), `"A"`)
	assert.NotContains(t, buf.String(), `"B"`)

	out, err := interchange.DecodeJSON(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeJSONRejectsBadShapes(t *testing.T) {
	_, err := interchange.DecodeJSON(strings.NewReader(`{"B": [[1, 2], [3]]}`))
	require.ErrorIs(t, err, evalerr.ErrShape)
	require.ErrorIs(t, err, matrix.ErrRaggedRows)
	assert.Equal(t, "Input error: B: rows have different length", evalerr.UserMessage(err))

	_, err = interchange.DecodeJSON(strings.NewReader(`{"A": [[]]}`))
	require.ErrorIs(t, err, evalerr.ErrShape)

	_, err = interchange.DecodeJSON(strings.NewReader(`{"A": `))
	require.Error(t, err)
}

func TestDocumentFromSnapshot(t *testing.T) {
	doc, err := interchange.DocumentFromSnapshot(history.Snapshot{
		A:      "1 2\n3 4",
		Result: "det(A) = -2",
	})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, doc.A)
	assert.Nil(t, doc.B)
	assert.Nil(t, doc.R, "scalar results are not exported")

	doc, err = interchange.DocumentFromSnapshot(history.Snapshot{A: "1", B: "2", Result: "[2]"})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{2}}, doc.R)

	_, err = interchange.DocumentFromSnapshot(history.Snapshot{B: "1 q"})
	require.ErrorIs(t, err, evalerr.ErrNumberFormat)
}

func TestDocumentSnapshot(t *testing.T) {
	doc := interchange.Document{A: [][]float64{{1, 2}, {3, 4}}, R: [][]float64{{0.5}}}
	snap, err := doc.Snapshot(codec.NewFormatter())
	require.NoError(t, err)
	assert.Equal(t, history.Snapshot{A: "[1; 2]\n[3; 4]", Result: "[0.5]"}, snap)

	// the rendered text parses back to the same matrix
	m, err := codec.Parse(snap.A)
	require.NoError(t, err)
	assert.Equal(t, doc.A, m.ToRows())
}

func TestReadCSV(t *testing.T) {
	text, err := interchange.ReadCSV(strings.NewReader("# exported\n1, 2\n3,4\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "1 2\n3 4", text)

	_, err = interchange.ReadCSV(strings.NewReader("1,2\n3\n"))
	require.ErrorIs(t, err, evalerr.ErrShape)

	_, err = interchange.ReadCSV(strings.NewReader("1,x\n"))
	require.ErrorIs(t, err, evalerr.ErrNumberFormat)

	_, err = interchange.ReadCSV(strings.NewReader(""))
	require.ErrorIs(t, err, interchange.ErrEmptyCSV)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{0.1, -2}, {1e-20, 1.0 / 3}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, interchange.WriteCSV(&buf, m))
	assert.Equal(t, "0.1,-2\n1e-20,0.3333333333333333\n", buf.String())

	text, err := interchange.ReadCSV(&buf)
	require.NoError(t, err)
	back, err := codec.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, m.ToRows(), back.ToRows())

	require.ErrorIs(t, interchange.WriteCSV(&buf, nil), matrix.ErrNilMatrix)
}

func TestLaTeX(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 0.5}})
	require.NoError(t, err)
	want := "\\begin{bmatrix}\n1 & 2 \\\\\n3 & 0.5\n\\end{bmatrix}"
	assert.Equal(t, want, interchange.LaTeX(m, codec.NewFormatter()))

	row, err := matrix.NewFromRows([][]float64{{-1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "\\begin{bmatrix}\n-1 & 2\n\\end{bmatrix}", interchange.LaTeX(row, codec.NewFormatter()))
	assert.Equal(t, "", interchange.LaTeX(nil, codec.NewFormatter()))
}
