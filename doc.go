// Package matrixdesk is a small, on-demand linear algebra evaluator: type a
// matrix as text, pick an operation, read the answer as text.
//
// 🚀 What is in the box?
//
//	• Text codec: rows per line, values split by spaces, ',' or ';'; results
//	  rendered as "[a; b; c]" rows with six significant digits
//	• Operation catalog: 28 operations over operands A and B (arithmetic,
//	  det, rank, inverse, solve, eig, SVD, LU, QR, Cholesky, pinv, norms, RREF)
//	• Dispatcher: shape checks, numeric kernels, labelled result blocks
//	• RREF stepper: Gauss–Jordan with partial pivoting and a readable trace
//	• History: snapshot-based linear undo/redo
//
// ✨ Guarantees
//
//   - Inputs are never mutated; every operation is a pure function of A and B
//   - Failures are classified (input, shape, missing operand, linear algebra)
//     and rendered with a stable prefix
//   - No goroutines in the core; History and Session are safe to share
//
// Layout:
//
//	matrix/      — Dense storage, kernels, PLU/QR/Cholesky, eigen, SVD, norms
//	codec/       — text ↔ matrix
//	catalog/     — Op enumeration and per-op metadata
//	dispatch/    — Evaluate(op, A, B) → Result blocks
//	rref/        — step-traced row reduction
//	history/     — undo/redo stacks
//	session/     — A, B, result and history behind one API
//	interchange/ — JSON, CSV and LaTeX
//	config/      — YAML + MATRIXDESK_* environment settings
//	evalerr/     — evaluation error kinds and user messages
//
// Quick example:
//
//	A = 1 2      detA  →  det(A) = -2
//	    3 4      invA  →  [-2; 1]
//	                      [1.5; -0.5]
//
//	go install github.com/ETsETs777/Matrix-Desktop/cmd/matrixdesk@latest
package matrixdesk
