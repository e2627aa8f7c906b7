// SPDX-License-Identifier: MIT
// Package matrix - constructors and comparison helpers.
//
// Purpose:
//   - Provide thin, intention-revealing entry points for common shapes.
//   - Offer one tolerance-aware comparison used by callers and tests alike.
//
// Determinism & Policy:
//   - Helpers never change the loop orders or numeric policy of underlying kernels.

package matrix

import "math"

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// AllClose reports whether a and b have the same shape and
// |a[i,j] - b[i,j]| ≤ atol + rtol·|b[i,j]| holds for every entry.
// Nil or mismatched inputs are never close.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for idx, bv := range db.data {
		if math.Abs(da.data[idx]-bv) > atol+rtol*math.Abs(bv) {
			return false
		}
	}

	return true
}
