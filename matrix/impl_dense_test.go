// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/ETsETs777/Matrix-Desktop/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the default numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.NoError(t, m.Set(0, 0, -0.5))
	require.Equal(t, -0.5, MustAt(t, m, 0, 0))
}

func TestNewFromRows(t *testing.T) {
	t.Run("copies", func(t *testing.T) {
		src := [][]float64{{1, 2, 3}, {4, 5, 6}}
		m := MustRows(t, src)
		src[0][0] = 99 // caller mutation must not leak in
		CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := matrix.NewFromRows(nil)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		_, err = matrix.NewFromRows([][]float64{{}})
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
	t.Run("ragged", func(t *testing.T) {
		_, err := matrix.NewFromRows([][]float64{{1, 2, 3}, {4, 5}})
		require.ErrorIs(t, err, matrix.ErrRaggedRows)
	})
	t.Run("non-finite", func(t *testing.T) {
		_, err := matrix.NewFromRows([][]float64{{1, math.Inf(1)}})
		require.ErrorIs(t, err, matrix.ErrNaNInf)

		m, err := matrix.NewFromRows([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
		require.NoError(t, err)
		assert.True(t, math.IsNaN(MustAt(t, m, 0, 0)))
	})
}

func TestToRowsAndFlattenAreCopies(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	rows := m.ToRows()
	rows[1][1] = -1
	flat := m.Flatten()
	flat[0] = -1
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())
	require.Equal(t, []float64{1, 2, 3, 4}, m.Flatten())
}

// TestCloneIndependence verifies Clone deep-copies the buffer.
func TestCloneIndependence(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()
	MustSet(t, c, 0, 0, 42)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 42.0, MustAt(t, c, 0, 0))
}

func TestIsVector(t *testing.T) {
	require.True(t, MustRows(t, [][]float64{{1}, {2}, {3}}).IsVector())
	require.True(t, MustRows(t, [][]float64{{1, 2}}).IsVector())
	require.False(t, MustDense(t, 2, 2).IsVector())
}

func TestMaxAbs(t *testing.T) {
	require.Equal(t, 7.0, MustRows(t, [][]float64{{1, -7}, {3, 4}}).MaxAbs())
	require.Equal(t, 0.0, MustDense(t, 2, 2).MaxAbs())
}

func TestDenseString(t *testing.T) {
	m := MustRows(t, [][]float64{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}
