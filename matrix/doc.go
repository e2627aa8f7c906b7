// Package matrix provides dense, row-major numeric kernels for small to
// medium matrices.
//
// The matrix package provides:
//
//   - Dense: a flat row-major buffer with bounds-checked At/Set and a
//     finite-value policy, plus [][]float64 bridges (NewFromRows, ToRows).
//   - Elementary kernels: Add, Sub, Mul, Transpose, MatVec.
//   - Factorizations: PLU (partial pivoting), QR (Householder), Cholesky.
//   - Solvers built on PLU: Det, Solve, Inverse.
//   - Spectral routines: EigenSym (cyclic Jacobi), Eigen (general, via gonum),
//     SVD (via gonum), Rank, PInv, Norm1/Norm2/NormInf/NormFrobenius, Cond.
//
// Every kernel validates its inputs, never mutates its arguments and returns
// a freshly allocated result. Failures are sentinel errors (ErrSingular,
// ErrNotSPD, ErrDimensionMismatch, ...) wrapped with the operation name, so
// callers classify them with errors.Is.
//
// Numeric policy is tuned with functional options (WithEpsilon, WithMaxIter,
// WithRankTolerance, WithNoValidateNaNInf).
package matrix
