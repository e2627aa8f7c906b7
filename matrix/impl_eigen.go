// SPDX-License-Identifier: MIT
// Package matrix - eigen decompositions.
//
// Purpose:
//   - EigenSym: cyclic Jacobi sweeps for symmetric input (real spectrum,
//     orthonormal eigenvectors), sorted ascending.
//   - Eigen: general square input through gonum's LAPACK-backed mat.Eigen,
//     returning complex eigenvalues and right eigenvectors.
//
// Determinism & Policy:
//   - Jacobi sweeps visit pairs in fixed p→q order.
//   - Eigenvectors are sign-normalized: the first non-negligible component is positive.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via cyclic Jacobi sweeps.
// Implementation:
//   - Stage 1: ValidateSymmetric(m, eps) (not nil, square, |A[i,j]-A[j,i]| ≤ eps).
//   - Stage 2: each sweep visits every pair p<q in row order and zeroes A[p,q]
//     with a rotation, accumulating V ← V·J. Before each sweep stop when the
//     largest off-diagonal entry is ≤ eps·max(1, max|A|).
//   - Stage 3: sort eigenpairs by value ascending and normalize vector signs.
//
// Returns:
//   - []float64: eigenvalues, ascending.
//   - *Dense: V whose column k is the unit eigenvector for value k.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrMatrixEigenFailed (no convergence in maxIter sweeps).
//
// Complexity:
//   - Time O(sweeps * n^3), Space O(n^2). Jacobi converges quadratically, so
//     sweeps stays small (typically under 10) independent of n.
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSymmetric(m, o.eps); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}

	n := src.r
	a := src.cloneDense()
	v, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	tol := o.eps * math.Max(1, src.MaxAbs())

	var (
		sweep, i, p, q int
		maxOff         float64
		app, aqq, apq  float64
		aip, aiq       float64
		theta, t, c, s float64
		converged      bool
	)
	for sweep = 0; ; sweep++ {
		maxOff = 0
		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				maxOff = math.Max(maxOff, math.Abs(a.data[p*n+q]))
			}
		}
		if maxOff <= tol {
			converged = true
			break
		}
		if sweep == o.maxIter {
			break
		}

		for p = 0; p < n; p++ {
			for q = p + 1; q < n; q++ {
				apq = a.data[p*n+q]
				if apq == 0 {
					continue
				}
				app, aqq = a.data[p*n+p], a.data[q*n+q]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for i = 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip, aiq = a.data[i*n+p], a.data[i*n+q]
					a.data[i*n+p] = c*aip - s*aiq
					a.data[p*n+i] = a.data[i*n+p]
					a.data[i*n+q] = s*aip + c*aiq
					a.data[q*n+i] = a.data[i*n+q]
				}
				a.data[p*n+p] = app - t*apq
				a.data[q*n+q] = aqq + t*apq
				a.data[p*n+q], a.data[q*n+p] = 0, 0

				for i = 0; i < n; i++ {
					aip, aiq = v.data[i*n+p], v.data[i*n+q]
					v.data[i*n+p] = c*aip - s*aiq
					v.data[i*n+q] = s*aip + c*aiq
				}
			}
		}
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigenSym,
			fmt.Errorf("no convergence after %d sweeps: %w", o.maxIter, ErrMatrixEigenFailed))
	}

	// Sort eigenpairs ascending by value; stable keeps the original order on ties.
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return a.data[order[x]*n+order[x]] < a.data[order[y]*n+order[y]]
	})

	values := make([]float64, n)
	vectors, _ := NewDense(n, n)
	for k, from := range order {
		values[k] = a.data[from*n+from]
		for i = 0; i < n; i++ {
			vectors.data[i*n+k] = v.data[i*n+from]
		}
	}
	normalizeColumnSigns(vectors)

	return values, vectors, nil
}

// normalizeColumnSigns flips each column so its first component with
// |x| > 1e-12 is positive.
func normalizeColumnSigns(d *Dense) {
	const negligible = 1e-12
	var i, j int
	for j = 0; j < d.c; j++ {
		for i = 0; i < d.r; i++ {
			x := d.data[i*d.c+j]
			if math.Abs(x) <= negligible {
				continue
			}
			if x < 0 {
				for k := 0; k < d.r; k++ {
					d.data[k*d.c+j] = -d.data[k*d.c+j]
				}
			}
			break
		}
	}
}

// EigenDecomposition is the result of Eigen for general square input.
//   - Values[k] is the k-th eigenvalue (complex conjugate pairs are adjacent).
//   - Vectors is n×n in row-major form: Vectors[i][k] is component i of eigenvector k.
type EigenDecomposition struct {
	Values  []complex128
	Vectors [][]complex128
}

// IsReal reports whether every eigenvalue and eigenvector component has an
// imaginary part within tol.
func (e *EigenDecomposition) IsReal(tol float64) bool {
	for _, v := range e.Values {
		if math.Abs(imag(v)) > tol {
			return false
		}
	}
	for _, row := range e.Vectors {
		for _, v := range row {
			if math.Abs(imag(v)) > tol {
				return false
			}
		}
	}

	return true
}

// RealValues returns the real parts of the eigenvalues.
func (e *EigenDecomposition) RealValues() []float64 {
	out := make([]float64, len(e.Values))
	for i, v := range e.Values {
		out[i] = real(v)
	}

	return out
}

// RealVectors returns the real parts of the eigenvectors as a Dense (columns are vectors).
func (e *EigenDecomposition) RealVectors() *Dense {
	n := len(e.Vectors)
	d, _ := NewDense(n, n)
	for i, row := range e.Vectors {
		for j, v := range row {
			d.data[i*n+j] = real(v)
		}
	}

	return d
}

// Eigen computes eigenvalues and right eigenvectors of a general square matrix.
// Implementation:
//   - Stage 1: validate (non-nil, square) and bridge to gonum's mat.Dense.
//   - Stage 2: mat.Eigen.Factorize with EigenRight; copy values and vectors out.
//
// Behavior highlights:
//   - Eigenvectors are unit length (as returned by LAPACK dgeev).
//   - Callers that know A is symmetric should prefer EigenSym (real, sorted).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrMatrixEigenFailed (factorization did not converge).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Eigen(m Matrix) (*EigenDecomposition, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenRight); !ok {
		return nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	values := eig.Values(nil)
	var cv mat.CDense
	eig.VectorsTo(&cv)

	n := len(values)
	vectors := make([][]complex128, n)
	for i := 0; i < n; i++ {
		vectors[i] = make([]complex128, n)
		for j := 0; j < n; j++ {
			vectors[i][j] = cv.At(i, j)
		}
	}
	for _, v := range values {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
		}
	}

	return &EigenDecomposition{Values: values, Vectors: vectors}, nil
}
