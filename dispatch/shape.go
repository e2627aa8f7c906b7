// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/ETsETs777/Matrix-Desktop/catalog"
	"github.com/ETsETs777/Matrix-Desktop/evalerr"
	"github.com/ETsETs777/Matrix-Desktop/matrix"
)

// checkShape enforces spec.Shape before any numeric work runs.
// Both required operands are known to be non-nil here.
func checkShape(spec catalog.Spec, a, b *matrix.Dense) error {
	switch spec.Shape {
	case catalog.SameShape:
		if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
			return evalerr.NewShape(spec.ID, "",
				fmt.Sprintf("A is %s and B is %s; %s needs equal shapes", dims(a), dims(b), spec.ID),
				matrix.ErrDimensionMismatch)
		}
	case catalog.Conformable:
		if a.Cols() != b.Rows() {
			return evalerr.NewShape(spec.ID, "",
				fmt.Sprintf("A is %s and B is %s; %s needs A.cols = B.rows", dims(a), dims(b), spec.ID),
				matrix.ErrDimensionMismatch)
		}
	case catalog.Square:
		x, name := a, "A"
		if spec.Operands == catalog.OperandB {
			x, name = b, "B"
		}
		if x.Rows() != x.Cols() {
			return evalerr.NewShape(spec.ID, name,
				fmt.Sprintf("%s needs a square matrix, got %s", spec.ID, dims(x)),
				matrix.ErrNonSquare)
		}
	case catalog.SolveSystem:
		if a.Rows() != a.Cols() {
			return evalerr.NewShape(spec.ID, "A",
				fmt.Sprintf("%s needs a square matrix, got %s", spec.ID, dims(a)),
				matrix.ErrNonSquare)
		}
		if !b.IsVector() {
			return evalerr.NewShape(spec.ID, "B",
				fmt.Sprintf("b must be a vector (one row or one column), got %s", dims(b)),
				matrix.ErrDimensionMismatch)
		}
		if n := b.Rows() * b.Cols(); n != a.Rows() {
			return evalerr.NewShape(spec.ID, "B",
				fmt.Sprintf("b has %d entries but A is %s", n, dims(a)),
				matrix.ErrDimensionMismatch)
		}
	}

	return nil
}
