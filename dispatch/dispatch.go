// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ETsETs777/Matrix-Desktop/catalog"
	"github.com/ETsETs777/Matrix-Desktop/codec"
	"github.com/ETsETs777/Matrix-Desktop/evalerr"
	"github.com/ETsETs777/Matrix-Desktop/matrix"
	"github.com/ETsETs777/Matrix-Desktop/rref"
)

// Dispatcher evaluates catalog operations under one numeric policy.
// It holds no per-call state and is safe for concurrent use.
type Dispatcher struct {
	symTol   float64
	pivotEps float64
	maxIter  int
	rankTol  float64
	fmt      codec.Formatter
	log      *zap.Logger
}

// New builds a Dispatcher with defaults overridden by opts.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		symTol:   DefaultSymmetryTolerance,
		pivotEps: DefaultPivotEpsilon,
		maxIter:  DefaultMaxIter,
		fmt:      codec.NewFormatter(),
		log:      zap.NewNop(),
	}
	for _, set := range opts {
		set(d)
	}

	return d
}

// Evaluate is shorthand for New(opts...).Evaluate(op, a, b).
func Evaluate(op catalog.Op, a, b *matrix.Dense, opts ...Option) (Result, error) {
	return New(opts...).Evaluate(op, a, b)
}

// Evaluate runs op over the operands it reads. Unread operands may be nil.
// Inputs are never modified.
//
// Order of checks:
//   - unknown op           → evalerr.UnknownOperation
//   - required operand nil → evalerr.MissingOperand (A reported before B)
//   - shape precondition   → evalerr.Shape
//   - numeric failure      → evalerr.LinearAlgebra
func (d *Dispatcher) Evaluate(op catalog.Op, a, b *matrix.Dense) (Result, error) {
	spec, ok := catalog.Lookup(op)
	if !ok {
		return Result{}, evalerr.NewUnknownOperation(op.String())
	}
	start := time.Now()

	res, err := d.evaluate(spec, a, b)
	if err != nil {
		d.log.Debug("evaluation failed",
			zap.String("op", spec.ID),
			zap.String("a", dims(a)),
			zap.String("b", dims(b)),
			zap.Error(err))
		return Result{}, err
	}
	d.log.Debug("evaluated",
		zap.String("op", spec.ID),
		zap.String("a", dims(a)),
		zap.String("b", dims(b)),
		zap.Int("blocks", len(res.Blocks)),
		zap.Duration("took", time.Since(start)))

	return res, nil
}

func (d *Dispatcher) evaluate(spec catalog.Spec, a, b *matrix.Dense) (Result, error) {
	if spec.Reads(catalog.OperandA) && a == nil {
		return Result{}, evalerr.NewMissingOperand(spec.ID, "A")
	}
	if spec.Reads(catalog.OperandB) && b == nil {
		return Result{}, evalerr.NewMissingOperand(spec.ID, "B")
	}
	if err := checkShape(spec, a, b); err != nil {
		return Result{}, err
	}

	// x is the single input of unary ops.
	x, name := a, "A"
	if o, unary := spec.Unary(); unary && o == catalog.OperandB {
		x, name = b, "B"
	}

	switch spec.Op {
	case catalog.Add:
		return d.matrixResult(spec, func() (*matrix.Dense, error) { return matrix.Add(a, b) })
	case catalog.Sub:
		return d.matrixResult(spec, func() (*matrix.Dense, error) { return matrix.Sub(a, b) })
	case catalog.Mul:
		return d.matrixResult(spec, func() (*matrix.Dense, error) { return matrix.Mul(a, b) })
	case catalog.TransposeA, catalog.TransposeB:
		return d.matrixResult(spec, func() (*matrix.Dense, error) { return matrix.Transpose(x) })
	case catalog.DetA, catalog.DetB:
		return d.det(spec, x)
	case catalog.RankA, catalog.RankB:
		return d.rank(spec, x)
	case catalog.InvA, catalog.InvB:
		return d.matrixResult(spec, func() (*matrix.Dense, error) { return matrix.Inverse(x) })
	case catalog.Solve:
		return d.solve(spec, a, b)
	case catalog.EigA, catalog.EigB:
		return d.eig(spec, x)
	case catalog.SVDA, catalog.SVDB:
		return d.svd(spec, x)
	case catalog.LUA, catalog.LUB:
		return d.lu(spec, x)
	case catalog.QRA, catalog.QRB:
		return d.qr(spec, x)
	case catalog.CholeskyA, catalog.CholeskyB:
		return d.cholesky(spec, x)
	case catalog.PinvA, catalog.PinvB:
		return d.matrixResult(spec, func() (*matrix.Dense, error) {
			return matrix.PInv(x, d.matrixOptions()...)
		})
	case catalog.NormA, catalog.NormB:
		return d.norms(spec, x, name)
	case catalog.RREFA, catalog.RREFB:
		return d.rref(spec, x)
	default:
		return Result{}, evalerr.NewUnknownOperation(spec.ID)
	}
}

func (d *Dispatcher) matrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithEpsilon(d.symTol),
		matrix.WithMaxIter(d.maxIter),
		matrix.WithRankTolerance(d.rankTol),
	}
}

func (d *Dispatcher) matrixResult(spec catalog.Spec, run func() (*matrix.Dense, error)) (Result, error) {
	m, err := run()
	if err != nil {
		return Result{}, classify(spec, err)
	}

	return single(spec.Op, d.fmt.Matrix(m)), nil
}

func (d *Dispatcher) det(spec catalog.Spec, x *matrix.Dense) (Result, error) {
	v, err := matrix.Det(x)
	if err != nil {
		return Result{}, classify(spec, err)
	}

	return single(spec.Op, d.fmt.Scalar(spec.Label, v)), nil
}

func (d *Dispatcher) rank(spec catalog.Spec, x *matrix.Dense) (Result, error) {
	k, err := matrix.Rank(x, d.matrixOptions()...)
	if err != nil {
		return Result{}, classify(spec, err)
	}

	return single(spec.Op, spec.Label+" = "+strconv.Itoa(k)), nil
}

// solve accepts b as one row or one column; the system is A·x = vec(b).
func (d *Dispatcher) solve(spec catalog.Spec, a, b *matrix.Dense) (Result, error) {
	x, err := matrix.Solve(a, b.Flatten())
	if err != nil {
		return Result{}, classify(spec, err)
	}

	return single(spec.Op, d.fmt.Vector(x)), nil
}

// eig takes the Jacobi path for symmetric input (real, ascending values) and
// the general path otherwise, switching to complex output only when needed.
func (d *Dispatcher) eig(spec catalog.Spec, x *matrix.Dense) (Result, error) {
	if matrix.IsSymmetric(x, d.symTol) {
		vals, vecs, err := matrix.EigenSym(x, d.matrixOptions()...)
		if err != nil {
			return Result{}, classify(spec, err)
		}
		return Result{Op: spec.Op, Blocks: []Block{
			{Header: HeaderEigenvalues, Body: d.fmt.Vector(vals)},
			{Header: HeaderEigenvectors, Body: d.fmt.Matrix(vecs)},
		}}, nil
	}

	e, err := matrix.Eigen(x)
	if err != nil {
		return Result{}, classify(spec, err)
	}
	if e.IsReal(0) {
		return Result{Op: spec.Op, Blocks: []Block{
			{Header: HeaderEigenvalues, Body: d.fmt.Vector(e.RealValues())},
			{Header: HeaderEigenvectors, Body: d.fmt.Matrix(e.RealVectors())},
		}}, nil
	}

	return Result{Op: spec.Op, Blocks: []Block{
		{Header: HeaderEigenvalues, Body: d.fmt.ComplexVector(e.Values)},
		{Header: HeaderEigenvectors, Body: d.fmt.ComplexMatrix(e.Vectors)},
	}}, nil
}

func (d *Dispatcher) svd(spec catalog.Spec, x *matrix.Dense) (Result, error) {
	f, err := matrix.SVD(x)
	if err != nil {
		return Result{}, classify(spec, err)
	}

	return Result{Op: spec.Op, Blocks: []Block{
		{Header: HeaderU, Body: d.fmt.Matrix(f.U)},
		{Header: HeaderSigma, Body: d.fmt.Matrix(f.Sigma())},
		{Header: HeaderVT, Body: d.fmt.Matrix(f.VT)},
	}}, nil
}

// lu reports P, L, U with P·A = L·U. Singular input still factors.
func (d *Dispatcher) lu(spec catalog.Spec, x *matrix.Dense) (Result, error) {
	f, err := matrix.PLU(x)
	if err != nil {
		return Result{}, classify(spec, err)
	}

	return Result{Op: spec.Op, Blocks: []Block{
		{Header: HeaderP, Body: d.fmt.Matrix(f.P)},
		{Header: HeaderL, Body: d.fmt.Matrix(f.L)},
		{Header: HeaderU, Body: d.fmt.Matrix(f.U)},
	}}, nil
}

func (d *Dispatcher) qr(spec catalog.Spec, x *matrix.Dense) (Result, error) {
	q, r, err := matrix.QR(x)
	if err != nil {
		return Result{}, classify(spec, err)
	}

	return Result{Op: spec.Op, Blocks: []Block{
		{Header: HeaderQ, Body: d.fmt.Matrix(q)},
		{Header: HeaderR, Body: d.fmt.Matrix(r)},
	}}, nil
}

func (d *Dispatcher) cholesky(spec catalog.Spec, x *matrix.Dense) (Result, error) {
	l, err := matrix.Cholesky(x, d.matrixOptions()...)
	if err != nil {
		return Result{}, classify(spec, err)
	}

	return Result{Op: spec.Op, Blocks: []Block{{Header: HeaderL, Body: d.fmt.Matrix(l)}}}, nil
}

// norms lists the induced 1/2/∞ norms, the Frobenius norm and cond₂.
// A (numerically) singular input has cond₂ = inf.
func (d *Dispatcher) norms(spec catalog.Spec, x *matrix.Dense, name string) (Result, error) {
	type norm struct {
		label string
		fn    func(matrix.Matrix) (float64, error)
	}
	table := []norm{
		{"‖" + name + "‖₁", matrix.Norm1},
		{"‖" + name + "‖₂", matrix.Norm2},
		{"‖" + name + "‖∞", matrix.NormInf},
		{"‖" + name + "‖F", matrix.NormFrobenius},
		{"cond₂(" + name + ")", func(m matrix.Matrix) (float64, error) {
			return matrix.Cond(m, d.matrixOptions()...)
		}},
	}

	lines := make([]string, len(table))
	for i, n := range table {
		v, err := n.fn(x)
		if err != nil {
			return Result{}, classify(spec, err)
		}
		lines[i] = d.fmt.Scalar(n.label, v)
	}

	return single(spec.Op, strings.Join(lines, "\n")), nil
}

func (d *Dispatcher) rref(spec catalog.Spec, x *matrix.Dense) (Result, error) {
	tr, err := rref.Reduce(x, rref.WithEpsilon(d.pivotEps), rref.WithFormatter(d.fmt))
	if err != nil {
		return Result{}, classify(spec, err)
	}

	return single(spec.Op, tr.String()), nil
}

// classify maps a matrix package error onto the evaluation error kinds.
func classify(spec catalog.Spec, err error) error {
	switch {
	case errors.Is(err, matrix.ErrDimensionMismatch), errors.Is(err, matrix.ErrNonSquare):
		return evalerr.NewShape(spec.ID, "", err.Error(), err)
	case errors.Is(err, matrix.ErrSingular):
		return evalerr.NewLinearAlgebra(spec.ID, spec.Routine, "singular matrix", err)
	case errors.Is(err, matrix.ErrNotSPD):
		return evalerr.NewLinearAlgebra(spec.ID, spec.Routine, "matrix is not positive definite", err)
	case errors.Is(err, matrix.ErrAsymmetry):
		return evalerr.NewLinearAlgebra(spec.ID, spec.Routine, "matrix is not symmetric", err)
	case errors.Is(err, matrix.ErrMatrixEigenFailed):
		return evalerr.NewLinearAlgebra(spec.ID, spec.Routine, "eigenvalues did not converge", err)
	case errors.Is(err, matrix.ErrSVDFailed):
		return evalerr.NewLinearAlgebra(spec.ID, spec.Routine, "SVD did not converge", err)
	default:
		return evalerr.NewLinearAlgebra(spec.ID, spec.Routine, err.Error(), err)
	}
}

// dims renders "r×c", or "-" for an absent operand.
func dims(m *matrix.Dense) string {
	if m == nil {
		return "-"
	}

	return fmt.Sprintf("%d×%d", m.Rows(), m.Cols())
}
