// SPDX-License-Identifier: MIT
// Package matrix_test - SVD, rank, pseudo-inverse, norms and condition number.
package matrix_test

import (
	"math"
	"testing"

	"github.com/ETsETs777/Matrix-Desktop/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVDReconstruction(t *testing.T) {
	for i, sh := range [][2]int{{3, 3}, {4, 2}, {2, 4}} {
		a := RandFilledDense(t, sh[0], sh[1], int64(100+i))
		f, err := matrix.SVD(a)
		require.NoError(t, err)
		require.Len(t, f.S, min(sh[0], sh[1]))
		for k := 1; k < len(f.S); k++ {
			require.GreaterOrEqual(t, f.S[k-1], f.S[k])
		}

		usv := mustMul(t, mustMul(t, f.U, f.Sigma()), f.VT)
		CompareClose(t, usv, a, 0, atolLoose)
		CompareClose(t, mustMul(t, mustT(t, f.U), f.U), IdentityDense(t, sh[0]), 0, atolLoose)
		CompareClose(t, mustMul(t, f.VT, mustT(t, f.VT)), IdentityDense(t, sh[1]), 0, atolLoose)
	}
}

func TestSVDKnownValues(t *testing.T) {
	f, err := matrix.SVD(MustRows(t, [][]float64{{3, 0}, {0, -4}}))
	require.NoError(t, err)
	sliceClose(t, f.S, []float64{4, 3}, 0, atolTight)
}

func TestRank(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want int
	}{
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"rank one", [][]float64{{1, 2}, {2, 4}}, 1},
		{"classic singular", [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, 2},
		{"zero", [][]float64{{0, 0}, {0, 0}}, 0},
		{"wide", [][]float64{{1, 2, 3}, {2, 4, 6}}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Rank(MustRows(t, tc.rows))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRankExplicitTolerance(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 0}, {0, 1e-6}})
	r, err := matrix.Rank(a)
	require.NoError(t, err)
	require.Equal(t, 2, r)

	r, err = matrix.Rank(a, matrix.WithRankTolerance(1e-3))
	require.NoError(t, err)
	require.Equal(t, 1, r)
}

func TestPInv(t *testing.T) {
	t.Run("invertible equals inverse", func(t *testing.T) {
		a := MustRows(t, [][]float64{{2, 4}, {1, 3}})
		p, err := matrix.PInv(a)
		require.NoError(t, err)
		inv, err := matrix.Inverse(a)
		require.NoError(t, err)
		CompareClose(t, p, inv, 0, atolLoose)
	})
	t.Run("rank deficient", func(t *testing.T) {
		a := MustRows(t, [][]float64{{1, 2}, {2, 4}})
		p, err := matrix.PInv(a)
		require.NoError(t, err)
		CompareClose(t, p, MustRows(t, [][]float64{{0.04, 0.08}, {0.08, 0.16}}), 0, atolLoose)
	})
	t.Run("rectangular penrose", func(t *testing.T) {
		a := RandFilledDense(t, 4, 2, 9)
		p, err := matrix.PInv(a)
		require.NoError(t, err)
		require.Equal(t, 2, p.Rows())
		require.Equal(t, 4, p.Cols())
		CompareClose(t, mustMul(t, mustMul(t, a, p), a), a, 0, atolLoose)
		CompareClose(t, mustMul(t, mustMul(t, p, a), p), p, 0, atolLoose)
	})
}

func TestNorms(t *testing.T) {
	a := MustRows(t, [][]float64{{1, -2}, {3, 4}})

	n1, err := matrix.Norm1(a)
	require.NoError(t, err)
	assert.Equal(t, 6.0, n1)

	ninf, err := matrix.NormInf(a)
	require.NoError(t, err)
	assert.Equal(t, 7.0, ninf)

	nf, err := matrix.NormFrobenius(hide{a})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(30), nf, 1e-12)

	n2, err := matrix.Norm2(MustRows(t, [][]float64{{3, 0}, {0, -4}}))
	require.NoError(t, err)
	assert.InDelta(t, 4, n2, 1e-12)

	_, err = matrix.Norm1(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCond(t *testing.T) {
	c, err := matrix.Cond(IdentityDense(t, 3))
	require.NoError(t, err)
	assert.InDelta(t, 1, c, 1e-12)

	c, err = matrix.Cond(MustRows(t, [][]float64{{1, 0}, {0, 2}}))
	require.NoError(t, err)
	assert.InDelta(t, 2, c, 1e-12)

	c, err = matrix.Cond(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.NoError(t, err)
	assert.True(t, math.IsInf(c, 1))
}
