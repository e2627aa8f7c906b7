// SPDX-License-Identifier: MIT
// Package matrix - singular values and everything derived from them.
//
// Purpose:
//   - SVD through gonum's mat.SVD (full U and Vᵀ, descending singular values).
//   - Rank and PInv with one cutoff rule shared by both.
//   - Induced 1/2/∞ norms, Frobenius norm and the 2-norm condition number.
//
// Tolerance policy:
//   - Singular values σ ≤ tol are treated as zero, where
//     tol = max(r,c) · σ_max · MachineEpsilon unless WithRankTolerance fixes it.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SVDFactors is the result of SVD: A = U · Σ · Vᵀ.
//   - U is r×r orthogonal, VT is c×c orthogonal.
//   - S holds the min(r,c) singular values in descending order.
type SVDFactors struct {
	U  *Dense
	S  []float64
	VT *Dense
}

// Sigma materializes Σ as an r×c rectangular diagonal matrix.
func (f *SVDFactors) Sigma() *Dense {
	out, _ := NewDense(f.U.r, f.VT.r)
	for k, s := range f.S {
		out.data[k*out.c+k] = s
	}

	return out
}

// tolerance resolves the σ cutoff for the given options.
func (f *SVDFactors) tolerance(o Options) float64 {
	if o.rankTol > 0 {
		return o.rankTol
	}
	if len(f.S) == 0 {
		return 0
	}
	dim := f.U.r
	if f.VT.r > dim {
		dim = f.VT.r
	}

	return float64(dim) * f.S[0] * MachineEpsilon
}

// rank counts singular values above the cutoff.
func (f *SVDFactors) rank(tol float64) int {
	k := 0
	for _, s := range f.S {
		if s > tol {
			k++
		}
	}

	return k
}

// toGonum copies m into a fresh gonum *mat.Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(d.r, d.c, d.Flatten()), nil
}

// fromGonum copies a gonum matrix back into a Dense.
func fromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	out, _ := NewDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}

// SVD computes the full singular value decomposition of any r×c matrix.
// Implementation:
//   - Stage 1: validate non-nil; bridge to gonum.
//   - Stage 2: mat.SVD.Factorize(kind=SVDFull); extract U, σ, V and transpose V.
//
// Errors:
//   - ErrNilMatrix, ErrSVDFailed (LAPACK did not converge).
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r^2 + c^2).
func SVD(m Matrix) (*SVDFactors, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSVD, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDFull); !ok {
		return nil, matrixErrorf(opSVD, ErrSVDFailed)
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return &SVDFactors{
		U:  fromGonum(&u),
		S:  svd.Values(nil),
		VT: fromGonum(v.T()),
	}, nil
}

// Rank returns the numerical rank: the count of σ above the cutoff.
//
// Errors:
//   - ErrNilMatrix, ErrSVDFailed.
func Rank(m Matrix, opts ...Option) (int, error) {
	f, err := SVD(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return f.rank(f.tolerance(gatherOptions(opts...))), nil
}

// PInv computes the Moore-Penrose pseudo-inverse A⁺ = V · Σ⁺ · Uᵀ (c×r).
// Singular values at or below the cutoff contribute nothing.
//
// Errors:
//   - ErrNilMatrix, ErrSVDFailed.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r·c).
func PInv(m Matrix, opts ...Option) (*Dense, error) {
	f, err := SVD(m)
	if err != nil {
		return nil, matrixErrorf(opPInv, err)
	}
	tol := f.tolerance(gatherOptions(opts...))

	r, c := f.U.r, f.VT.r
	out, err := NewDense(c, r)
	if err != nil {
		return nil, matrixErrorf(opPInv, err)
	}
	var i, j, k int
	var inv float64
	for k = 0; k < len(f.S); k++ {
		if f.S[k] <= tol {
			break // descending: the rest are negligible too
		}
		inv = 1 / f.S[k]
		for i = 0; i < c; i++ {
			vik := f.VT.data[k*c+i] * inv // V[i,k]/σ_k
			if vik == 0 {
				continue
			}
			for j = 0; j < r; j++ {
				out.data[i*r+j] += vik * f.U.data[j*r+k]
			}
		}
	}

	return out, nil
}

// Norm1 returns the maximum absolute column sum ‖A‖₁.
func Norm1(m Matrix) (float64, error) {
	d, err := denseNonNil(m, opNorm)
	if err != nil {
		return 0, err
	}
	best := 0.0
	for j := 0; j < d.c; j++ {
		sum := 0.0
		for i := 0; i < d.r; i++ {
			sum += math.Abs(d.data[i*d.c+j])
		}
		best = math.Max(best, sum)
	}

	return best, nil
}

// NormInf returns the maximum absolute row sum ‖A‖∞.
func NormInf(m Matrix) (float64, error) {
	d, err := denseNonNil(m, opNorm)
	if err != nil {
		return 0, err
	}
	best := 0.0
	for i := 0; i < d.r; i++ {
		sum := 0.0
		for _, v := range d.data[i*d.c : (i+1)*d.c] {
			sum += math.Abs(v)
		}
		best = math.Max(best, sum)
	}

	return best, nil
}

// NormFrobenius returns sqrt(Σ A[i,j]²), accumulated with math.Hypot to avoid overflow.
func NormFrobenius(m Matrix) (float64, error) {
	d, err := denseNonNil(m, opNorm)
	if err != nil {
		return 0, err
	}
	acc := 0.0
	for _, v := range d.data {
		acc = math.Hypot(acc, v)
	}

	return acc, nil
}

// Norm2 returns the spectral norm ‖A‖₂ = σ_max.
func Norm2(m Matrix) (float64, error) {
	f, err := SVD(m)
	if err != nil {
		return 0, matrixErrorf(opNorm, err)
	}

	return f.S[0], nil
}

// Cond returns the 2-norm condition number κ₂ = σ_max / σ_min.
//
// Behavior highlights:
//   - A matrix whose σ_min falls at or below the rank cutoff is singular and
//     reports +Inf rather than a huge finite ratio.
//
// Errors:
//   - ErrNilMatrix, ErrSVDFailed.
func Cond(m Matrix, opts ...Option) (float64, error) {
	f, err := SVD(m)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	smin := f.S[len(f.S)-1]
	if smin <= f.tolerance(gatherOptions(opts...)) {
		return math.Inf(1), nil
	}

	return f.S[0] / smin, nil
}

// denseNonNil validates m and returns its Dense view, tagging errors with op.
func denseNonNil(m Matrix, op string) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(op, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(op, fmt.Errorf("read: %w", err))
	}

	return d, nil
}
