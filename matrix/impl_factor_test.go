// SPDX-License-Identifier: MIT
// Package matrix_test - factorizations and the PLU-based solvers.
package matrix_test

import (
	"math"
	"testing"

	"github.com/ETsETs777/Matrix-Desktop/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPLUReconstruction(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		a := RandFilledDense(t, 5, 5, seed)
		f, err := matrix.PLU(a)
		require.NoError(t, err)

		pa := mustMul(t, f.P, a)
		lu := mustMul(t, f.L, f.U)
		CompareClose(t, lu, pa, rtolTight, atolLoose)

		// L unit lower, U upper
		for i := 0; i < 5; i++ {
			require.Equal(t, 1.0, MustAt(t, f.L, i, i))
			for j := i + 1; j < 5; j++ {
				require.Equal(t, 0.0, MustAt(t, f.L, i, j))
				require.Equal(t, 0.0, MustAt(t, f.U, j, i))
			}
		}
	}
}

func TestPLUPivotsOnLargest(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	f, err := matrix.PLU(a)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, f.Perm)
	require.Equal(t, -1.0, f.Sign)
	CompareExact(t, [][]float64{{0, 1}, {1, 0}}, f.P)
	CompareExact(t, [][]float64{{3, 4}, {0, 2 - 4.0/3}}, f.U)
}

func TestPLUErrors(t *testing.T) {
	_, err := matrix.PLU(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.PLU(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDet(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{-3}}, -3},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"3x3", [][]float64{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}, 49},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
		{"singular rounding", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 0},
		{"zero", [][]float64{{0, 0}, {0, 0}}, 0},
		{"graded", [][]float64{{1e8, 0}, {0, 1e-8}}, 1},
		{"tiny", [][]float64{{1e-10, 0}, {0, 1e-10}}, 1e-20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Det(MustRows(t, tc.rows))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-10)
		})
	}

	_, err := matrix.Det(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
}

func TestSolveAndInverseAgree(t *testing.T) {
	a := MustRows(t, [][]float64{{4, -2, 1}, {-2, 4, -2}, {1, -2, 4}})
	b := []float64{11, -16, 17}

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	sliceClose(t, ax, b, rtolTight, atolLoose)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	xi, err := matrix.MatVec(inv, b)
	require.NoError(t, err)
	sliceClose(t, xi, x, rtolTight, atolLoose)

	CompareClose(t, mustMul(t, a, inv), IdentityDense(t, 3), 0, atolLoose)
}

func TestSolveInverseSingular(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Solve(a, []float64{1, 2})
	AssertErrorIs(t, err, matrix.ErrSingular)
	_, err = matrix.Inverse(a)
	AssertErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve(MustRows(t, [][]float64{{1, 0}, {0, 1}}), []float64{1})
	AssertErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestGradedIsInvertible measures each pivot against its own row, so widely
// scaled rows do not look singular next to the largest entry.
func TestGradedIsInvertible(t *testing.T) {
	a := MustRows(t, [][]float64{{1e8, 0}, {0, 1e-8}})
	f, err := matrix.PLU(a)
	require.NoError(t, err)
	assert.False(t, f.IsSingular())

	det, err := matrix.Det(a)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, det, 1e-15)

	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	CompareClose(t, inv, MustRows(t, [][]float64{{1e-8, 0}, {0, 1e8}}), rtolTight, 0)

	x, err := matrix.Solve(a, []float64{1e8, 1e-8})
	require.NoError(t, err)
	sliceClose(t, x, []float64{1, 1}, rtolTight, atolTight)

	// a zero row stays singular whatever the scale of the rest
	f, err = matrix.PLU(MustRows(t, [][]float64{{1e8, 1}, {0, 0}}))
	require.NoError(t, err)
	assert.True(t, f.IsSingular())
}

func TestInverseKnown(t *testing.T) {
	inv, err := matrix.Inverse(MustRows(t, [][]float64{{2, 4}, {1, 3}}))
	require.NoError(t, err)
	CompareClose(t, inv, MustRows(t, [][]float64{{1.5, -2}, {-0.5, 1}}), rtolTight, atolTight)

	// interface path reads through At
	slow, err := matrix.Inverse(hide{MustRows(t, [][]float64{{2, 4}, {1, 3}})})
	require.NoError(t, err)
	CompareClose(t, slow, inv, 0, 0)
}

func TestQR(t *testing.T) {
	shapes := [][2]int{{3, 3}, {4, 2}, {2, 4}, {1, 3}}
	for i, sh := range shapes {
		a := RandFilledDense(t, sh[0], sh[1], int64(10+i))
		q, r, err := matrix.QR(a)
		require.NoError(t, err)
		require.Equal(t, sh[0], q.Rows())
		require.Equal(t, sh[0], q.Cols())
		require.Equal(t, sh[0], r.Rows())
		require.Equal(t, sh[1], r.Cols())

		CompareClose(t, mustMul(t, q, r), a, rtolTight, atolLoose)
		CompareClose(t, mustMul(t, mustT(t, q), q), IdentityDense(t, sh[0]), 0, atolLoose)
		for row := 1; row < sh[0]; row++ {
			for col := 0; col < row && col < sh[1]; col++ {
				require.Equal(t, 0.0, MustAt(t, r, row, col))
			}
		}
	}
}

func TestQRZeroColumn(t *testing.T) {
	a := MustRows(t, [][]float64{{0, 1}, {0, 2}})
	q, r, err := matrix.QR(a)
	require.NoError(t, err)
	CompareClose(t, mustMul(t, q, r), a, 0, atolLoose)
}

func TestCholesky(t *testing.T) {
	a := MustRows(t, [][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}})
	l, err := matrix.Cholesky(a)
	require.NoError(t, err)
	CompareClose(t, l, MustRows(t, [][]float64{{2, 0, 0}, {6, 1, 0}, {-8, 5, 3}}), rtolTight, atolTight)
	CompareClose(t, mustMul(t, l, mustT(t, l)), a, rtolTight, atolLoose)
}

func TestCholeskyErrors(t *testing.T) {
	_, err := matrix.Cholesky(MustRows(t, [][]float64{{1, 2}, {3, 4}}))
	AssertErrorIs(t, err, matrix.ErrAsymmetry)

	_, err = matrix.Cholesky(MustRows(t, [][]float64{{1, 2}, {2, 1}}))
	AssertErrorIs(t, err, matrix.ErrNotSPD)

	_, err = matrix.Cholesky(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)

	// loose symmetry tolerance lets near-symmetric input through
	l, err := matrix.Cholesky(MustRows(t, [][]float64{{4, 2}, {2 + 1e-6, 5}}), matrix.WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(MustAt(t, l, 1, 1)))
}
