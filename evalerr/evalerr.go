// SPDX-License-Identifier: MIT
// Package evalerr classifies every failure an evaluation can produce.
//
// Purpose:
//   - One error type (*Error) with a closed set of kinds shared by the text
//     codec, the operation catalog and the dispatcher.
//   - Kind sentinels (ErrShape, ErrLinearAlgebra, ...) so callers match with
//     errors.Is without type assertions.
//   - The underlying cause (often a matrix sentinel) stays reachable through
//     Unwrap, so errors.Is(err, matrix.ErrSingular) keeps working.
//
// Errors are values: nothing in this package panics or logs.
package evalerr

import (
	"errors"
	"fmt"
)

// Kind is the classification of an evaluation failure.
type Kind int

const (
	// NumberFormat: a token could not be parsed as a finite real number.
	NumberFormat Kind = iota + 1
	// Shape: ragged input rows or an operand violating the operation's precondition.
	Shape
	// MissingOperand: a required operand was blank.
	MissingOperand
	// LinearAlgebra: the numeric routine itself failed.
	LinearAlgebra
	// UnknownOperation: an id outside the catalog.
	UnknownOperation
)

// Kind sentinels. errors.Is(err, ErrShape) holds for every *Error of kind Shape.
var (
	ErrNumberFormat     = errors.New("evalerr: number format")
	ErrShape            = errors.New("evalerr: shape")
	ErrMissingOperand   = errors.New("evalerr: missing operand")
	ErrLinearAlgebra    = errors.New("evalerr: linear algebra")
	ErrUnknownOperation = errors.New("evalerr: unknown operation")
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case NumberFormat:
		return "NumberFormatError"
	case Shape:
		return "ShapeError"
	case MissingOperand:
		return "MissingOperandError"
	case LinearAlgebra:
		return "LinearAlgebraError"
	case UnknownOperation:
		return "UnknownOperationError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Sentinel returns the kind's sentinel error (nil for an invalid kind).
func (k Kind) Sentinel() error {
	switch k {
	case NumberFormat:
		return ErrNumberFormat
	case Shape:
		return ErrShape
	case MissingOperand:
		return ErrMissingOperand
	case LinearAlgebra:
		return ErrLinearAlgebra
	case UnknownOperation:
		return ErrUnknownOperation
	default:
		return nil
	}
}

// Error is a classified evaluation failure.
// Only the fields meaningful for Kind are set; Msg is the human-readable
// description and Err the wrapped cause.
type Error struct {
	Kind    Kind
	Op      string // operation id; empty while parsing
	Operand string // "A" or "B" when the failure belongs to one operand
	Routine string // numeric routine name for LinearAlgebra
	Token   string // offending token for NumberFormat
	Line    int    // 1-based input line for NumberFormat, 0 when unknown
	Msg     string
	Err     error
}

// Error renders the failure without the kind prefix; UserMessage adds it.
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}

	switch e.Kind {
	case NumberFormat:
		if e.Line > 0 {
			return fmt.Sprintf("%scould not convert %q to a number (line %d)", e.operandPrefix(), e.Token, e.Line)
		}
		return fmt.Sprintf("%scould not convert %q to a number", e.operandPrefix(), e.Token)
	case MissingOperand:
		if e.Op != "" {
			return fmt.Sprintf("operand %s is required for %s", e.Operand, e.Op)
		}
		return fmt.Sprintf("operand %s is required", e.Operand)
	case LinearAlgebra:
		return fmt.Sprintf("%s: %s", e.Routine, msg)
	case UnknownOperation:
		return fmt.Sprintf("unknown operation %q", e.Op)
	default:
		return e.operandPrefix() + msg
	}
}

func (e *Error) operandPrefix() string {
	if e.Operand == "" {
		return ""
	}

	return e.Operand + ": "
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinel.
func (e *Error) Is(target error) bool {
	s := e.Kind.Sentinel()

	return s != nil && target == s
}

// NewNumberFormat reports an unparsable token. line is 1-based (0 if unknown).
func NewNumberFormat(token string, line int, cause error) *Error {
	return &Error{Kind: NumberFormat, Token: token, Line: line, Err: cause}
}

// NewShape reports a shape violation with a human-readable description.
func NewShape(op, operand, msg string, cause error) *Error {
	return &Error{Kind: Shape, Op: op, Operand: operand, Msg: msg, Err: cause}
}

// NewMissingOperand reports a blank operand required by op.
func NewMissingOperand(op, operand string) *Error {
	return &Error{Kind: MissingOperand, Op: op, Operand: operand}
}

// NewLinearAlgebra reports a numeric failure inside routine.
func NewLinearAlgebra(op, routine, msg string, cause error) *Error {
	return &Error{Kind: LinearAlgebra, Op: op, Routine: routine, Msg: msg, Err: cause}
}

// NewUnknownOperation reports an id outside the catalog.
func NewUnknownOperation(id string) *Error {
	return &Error{Kind: UnknownOperation, Op: id}
}

// WithOperand returns a copy of e attributed to operand.
func (e *Error) WithOperand(operand string) *Error {
	cp := *e
	cp.Operand = operand

	return &cp
}

// KindOf extracts the Kind of a classified error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}

	return 0, false
}

// User-facing message prefixes.
const (
	PrefixInput         = "Input error: "
	PrefixLinearAlgebra = "Linear algebra: "
	PrefixGeneric       = "Error: "
)

// UserMessage converts any evaluation error into the text placed in the
// result surface.
//   - input problems (bad numbers, ragged rows found while parsing) → "Input error: …"
//   - numeric backend failures → "Linear algebra: …"
//   - everything else → "Error: …"
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		return PrefixGeneric + err.Error()
	}

	switch {
	case e.Kind == NumberFormat:
		return PrefixInput + e.Error()
	case e.Kind == Shape && e.Op == "":
		return PrefixInput + e.Error()
	case e.Kind == LinearAlgebra:
		return PrefixLinearAlgebra + e.Error()
	default:
		return PrefixGeneric + e.Error()
	}
}
