// SPDX-License-Identifier: MIT
// Package matrix_test - elementary kernels: Add/Sub/Mul/Transpose/MatVec.
package matrix_test

import (
	"testing"

	"github.com/ETsETs777/Matrix-Desktop/matrix"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{6, 8}, {10, 12}}, sum)

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-4, -4}, {-4, -4}}, diff)

	// fallback path agrees with the fast path
	slow, err := matrix.Add(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, sum.ToRows(), slow)

	// operands untouched
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, a)
}

func TestAddSubErrors(t *testing.T) {
	a := MustDense(t, 2, 2)
	b := MustDense(t, 2, 3)
	_, err := matrix.Add(a, b)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, b)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Add(a, typedNil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{58, 64}, {139, 154}}, c)

	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, c.ToRows(), slow)

	_, err = matrix.Mul(a, a)
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMulIdentity(t *testing.T) {
	a := RandFilledDense(t, 4, 4, 7)
	got := mustMul(t, a, IdentityDense(t, 4))
	CompareClose(t, got, a, 0, 0)
}

func TestTranspose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)

	slow, err := matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, at.ToRows(), slow)

	_, err = matrix.Transpose(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	a := MustRows(t, [][]float64{{1, -2}, {3, 4}})
	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 7}, y)

	_, err = matrix.MatVec(a, []float64{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
