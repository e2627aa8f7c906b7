// SPDX-License-Identifier: MIT
// Package matrix_test - Jacobi and general eigen decompositions.
package matrix_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/ETsETs777/Matrix-Desktop/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEigenSym2x2(t *testing.T) {
	a := MustRows(t, [][]float64{{2, 1}, {1, 2}})
	vals, vecs, err := matrix.EigenSym(a)
	require.NoError(t, err)
	sliceClose(t, vals, []float64{1, 3}, 0, atolLoose)

	h := 1 / math.Sqrt2
	CompareClose(t, vecs, MustRows(t, [][]float64{{h, h}, {-h, h}}), 0, atolLoose)
}

func TestEigenSymSortsDiagonal(t *testing.T) {
	vals, vecs, err := matrix.EigenSym(MustRows(t, [][]float64{{3, 0}, {0, 1}}))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 3}, vals)
	CompareExact(t, [][]float64{{0, 1}, {1, 0}}, vecs)
}

func TestEigenSymDecomposes(t *testing.T) {
	r := RandFilledDense(t, 5, 5, 42)
	rt := mustT(t, r)
	a, err := matrix.Add(r, rt) // symmetric by construction
	require.NoError(t, err)

	vals, v, err := matrix.EigenSym(a)
	require.NoError(t, err)
	require.True(t, sort.Float64sAreSorted(vals))

	// A·V = V·Λ and VᵀV = I
	av := mustMul(t, a, v)
	lambda := MustDense(t, 5, 5)
	for i, x := range vals {
		MustSet(t, lambda, i, i, x)
	}
	CompareClose(t, av, mustMul(t, v, lambda), 0, 1e-8)
	CompareClose(t, mustMul(t, mustT(t, v), v), IdentityDense(t, 5), 0, 1e-8)
}

// TestEigenSymLarge checks the sweep cap scales with n: a dense 80×80 input
// needs far more than 10^4 single rotations.
func TestEigenSymLarge(t *testing.T) {
	const n = 80
	r := RandFilledDense(t, n, n, 7)
	a, err := matrix.Add(r, mustT(t, r))
	require.NoError(t, err)

	vals, v, err := matrix.EigenSym(a)
	require.NoError(t, err)
	require.Len(t, vals, n)
	require.True(t, sort.Float64sAreSorted(vals))

	lambda := MustDense(t, n, n)
	for i, x := range vals {
		MustSet(t, lambda, i, i, x)
	}
	CompareClose(t, mustMul(t, a, v), mustMul(t, v, lambda), 0, 1e-7)
	CompareClose(t, mustMul(t, mustT(t, v), v), IdentityDense(t, n), 0, 1e-8)
}

func TestEigenSymErrors(t *testing.T) {
	_, _, err := matrix.EigenSym(MustRows(t, [][]float64{{1, 2}, {3, 4}}))
	AssertErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.EigenSym(MustDense(t, 2, 3))
	AssertErrorIs(t, err, matrix.ErrNonSquare)

	a := MustRows(t, [][]float64{{4, 1, 2}, {1, 3, 1}, {2, 1, 5}})
	_, _, err = matrix.EigenSym(a, matrix.WithMaxIter(1))
	AssertErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

func TestEigenGeneralRotation(t *testing.T) {
	e, err := matrix.Eigen(MustRows(t, [][]float64{{0, -1}, {1, 0}}))
	require.NoError(t, err)
	require.Len(t, e.Values, 2)
	assert.False(t, e.IsReal(1e-12))

	got := append([]complex128(nil), e.Values...)
	sort.Slice(got, func(i, j int) bool { return imag(got[i]) < imag(got[j]) })
	assert.InDelta(t, 0, cmplx.Abs(got[0]-complex(0, -1)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(got[1]-complex(0, 1)), 1e-12)
}

func TestEigenGeneralEigenpairs(t *testing.T) {
	rows := [][]float64{{2, 1, 0}, {0, 3, 1}, {0, 0, 5}}
	e, err := matrix.Eigen(MustRows(t, rows))
	require.NoError(t, err)
	require.True(t, e.IsReal(1e-12))

	vals := e.RealValues()
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	sliceClose(t, sorted, []float64{2, 3, 5}, 0, atolLoose)

	// A·v_k = λ_k·v_k for every column
	n := len(rows)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			var av complex128
			for j := 0; j < n; j++ {
				av += complex(rows[i][j], 0) * e.Vectors[j][k]
			}
			assert.InDelta(t, 0, cmplx.Abs(av-e.Values[k]*e.Vectors[i][k]), 1e-9)
		}
	}

	v := e.RealVectors()
	require.Equal(t, n, v.Rows())
	require.Equal(t, n, v.Cols())
}

func TestEigenGeneralErrors(t *testing.T) {
	_, err := matrix.Eigen(MustDense(t, 3, 2))
	AssertErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Eigen(nil)
	AssertErrorIs(t, err, matrix.ErrNilMatrix)
}
