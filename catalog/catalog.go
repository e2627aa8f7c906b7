// SPDX-License-Identifier: MIT
// Package catalog enumerates every supported operation with its static metadata.
//
// Purpose:
//   - A closed Op enumeration replaces string-keyed branching; the dispatcher
//     switches over Op and a test checks the switch covers the whole catalog.
//   - Each Spec records which operands the op reads and the shape
//     precondition it imposes, so validation is data-driven.
//   - ParseOp maps the textual ids used by front ends ("add", "invA", ...) back to Op.

package catalog

import (
	"strconv"
	"strings"

	"github.com/ETsETs777/Matrix-Desktop/evalerr"
)

// Op identifies one operation.
type Op int

// The operation enumeration, in display order.
const (
	Add Op = iota
	Sub
	Mul
	TransposeA
	TransposeB
	DetA
	DetB
	RankA
	RankB
	InvA
	InvB
	Solve
	EigA
	EigB
	SVDA
	SVDB
	LUA
	LUB
	QRA
	QRB
	CholeskyA
	CholeskyB
	PinvA
	PinvB
	NormA
	NormB
	RREFA
	RREFB

	opCount
)

// Operand is a bit set over the two input slots.
type Operand uint8

const (
	OperandA Operand = 1 << iota
	OperandB

	OperandAB = OperandA | OperandB
)

// String returns "A", "B" or "A, B".
func (o Operand) String() string {
	switch o {
	case OperandA:
		return "A"
	case OperandB:
		return "B"
	case OperandAB:
		return "A, B"
	default:
		return "-"
	}
}

// Shape is the precondition an op imposes on its operands.
type Shape int

const (
	// Any: any rows×cols matrix.
	Any Shape = iota
	// Square: rows == cols.
	Square
	// SameShape: A and B have identical dimensions.
	SameShape
	// Conformable: A.cols == B.rows.
	Conformable
	// SolveSystem: A square and B a row or column vector of length A.rows.
	SolveSystem
)

// String names the precondition for listings.
func (s Shape) String() string {
	switch s {
	case Any:
		return "any"
	case Square:
		return "square"
	case SameShape:
		return "same shape"
	case Conformable:
		return "A.cols = B.rows"
	case SolveSystem:
		return "A square, b vector"
	default:
		return "unknown"
	}
}

// Spec is the static metadata of one operation.
type Spec struct {
	Op       Op
	ID       string  // textual id accepted by ParseOp
	Label    string  // short human label
	Operands Operand // which inputs are read
	Shape    Shape
	Routine  string // numeric routine name reported in failures
}

// Reads reports whether the op consumes operand o.
func (s Spec) Reads(o Operand) bool { return s.Operands&o != 0 }

// Unary returns the single operand of a one-input op.
func (s Spec) Unary() (Operand, bool) {
	if s.Operands == OperandA || s.Operands == OperandB {
		return s.Operands, true
	}

	return 0, false
}

var specs = [...]Spec{
	Add:        {Add, "add", "A + B", OperandAB, SameShape, "add"},
	Sub:        {Sub, "sub", "A - B", OperandAB, SameShape, "sub"},
	Mul:        {Mul, "mul", "A × B", OperandAB, Conformable, "mul"},
	TransposeA: {TransposeA, "transposeA", "Aᵗ", OperandA, Any, "transpose"},
	TransposeB: {TransposeB, "transposeB", "Bᵗ", OperandB, Any, "transpose"},
	DetA:       {DetA, "detA", "det(A)", OperandA, Square, "det"},
	DetB:       {DetB, "detB", "det(B)", OperandB, Square, "det"},
	RankA:      {RankA, "rankA", "rank(A)", OperandA, Any, "rank"},
	RankB:      {RankB, "rankB", "rank(B)", OperandB, Any, "rank"},
	InvA:       {InvA, "invA", "A⁻¹", OperandA, Square, "inv"},
	InvB:       {InvB, "invB", "B⁻¹", OperandB, Square, "inv"},
	Solve:      {Solve, "solve", "solve A·x = b", OperandAB, SolveSystem, "solve"},
	EigA:       {EigA, "eigA", "eig(A)", OperandA, Square, "eig"},
	EigB:       {EigB, "eigB", "eig(B)", OperandB, Square, "eig"},
	SVDA:       {SVDA, "svdA", "svd(A)", OperandA, Any, "svd"},
	SVDB:       {SVDB, "svdB", "svd(B)", OperandB, Any, "svd"},
	LUA:        {LUA, "luA", "LU(A)", OperandA, Square, "lu"},
	LUB:        {LUB, "luB", "LU(B)", OperandB, Square, "lu"},
	QRA:        {QRA, "qrA", "QR(A)", OperandA, Any, "qr"},
	QRB:        {QRB, "qrB", "QR(B)", OperandB, Any, "qr"},
	CholeskyA:  {CholeskyA, "choleskyA", "chol(A)", OperandA, Square, "cholesky"},
	CholeskyB:  {CholeskyB, "choleskyB", "chol(B)", OperandB, Square, "cholesky"},
	PinvA:      {PinvA, "pinvA", "A⁺", OperandA, Any, "pinv"},
	PinvB:      {PinvB, "pinvB", "B⁺", OperandB, Any, "pinv"},
	NormA:      {NormA, "normA", "norms, cond(A)", OperandA, Any, "norm"},
	NormB:      {NormB, "normB", "norms, cond(B)", OperandB, Any, "norm"},
	RREFA:      {RREFA, "rrefA", "rref(A) with steps", OperandA, Any, "rref"},
	RREFB:      {RREFB, "rrefB", "rref(B) with steps", OperandB, Any, "rref"},
}

// Compile-time check: one Spec per Op.
var _ = [1]struct{}{}[len(specs)-int(opCount)]

// byID indexes specs by normalized id.
var byID = func() map[string]Op {
	m := make(map[string]Op, len(specs))
	for _, s := range specs {
		m[normalizeID(s.ID)] = s.Op
	}

	return m
}()

// normalizeID lowercases and drops '-', '_' and spaces so "transpose-A" == "transposeA".
func normalizeID(id string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(id)))
}

// Count is the number of operations in the catalog.
func Count() int { return int(opCount) }

// All returns every Spec in display order. The slice is a fresh copy.
func All() []Spec {
	out := make([]Spec, len(specs))
	copy(out, specs[:])

	return out
}

// Lookup returns the Spec for op.
func Lookup(op Op) (Spec, bool) {
	if op < 0 || op >= opCount {
		return Spec{}, false
	}

	return specs[op], true
}

// ParseOp resolves a textual id, case-insensitively.
// Errors: *evalerr.Error of kind UnknownOperation.
func ParseOp(id string) (Op, error) {
	if op, ok := byID[normalizeID(id)]; ok {
		return op, nil
	}

	return 0, evalerr.NewUnknownOperation(id)
}

// String returns the textual id.
func (op Op) String() string {
	if s, ok := Lookup(op); ok {
		return s.ID
	}

	return "Op(" + strconv.Itoa(int(op)) + ")"
}
