// SPDX-License-Identifier: MIT
// Package lq: linear-system solving through the factorization.
// The direct solve maps an m-row right-hand side to the minimum-norm n-row
// solution of A·x = b: forward substitution against L's leading block, then
// rotation back through Qᵀ over the zero-extended buffer. The adjoint solve
// handles Aᵀ·x = b by rotating through Q first and back-substituting against
// Lᵀ. Both directions require m <= n; the rejected direction is named in the
// error (overdetermined for direct, underdetermined for adjoint).

package lq

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Solve returns the minimum-norm solution x (n rows) of A·x = b for the
// factored m×n matrix A and an m-row right-hand side b.
//
// Defined only for m <= n; an overdetermined record is rejected with
// ErrDimensionMismatch, as is a right-hand side with the wrong row count.
// Complexity: O(m²·k + n·m·k) for k right-hand-side columns.
func (f *Factorization) Solve(b mat.Matrix) (*mat.Dense, error) {
	if err := validateOperand(opSolve, b); err != nil {
		return nil, err
	}
	m, n := f.factors.Dims()
	if err := validateNotOverdetermined(opSolve, m, n); err != nil {
		return nil, err
	}
	rb, cb := b.Dims()
	if err := validateRHSRows(opSolve, rb, m); err != nil {
		return nil, err
	}

	x := mat.NewDense(n, cb, nil)
	x.Slice(0, m, 0, cb).(*mat.Dense).Copy(b)
	f.solveInPlace(x.RawMatrix(), m, cb)
	return x, nil
}

// SolveTo is the destination form of Solve: the solution is written into
// dst, which must be a concrete n×cols(b) buffer not aliasing b or the
// record. Returns the same errors as Solve plus a mismatch for a wrong-shape
// destination.
func (f *Factorization) SolveTo(dst *mat.Dense, b mat.Matrix) error {
	if dst == nil {
		return lqErrorf(opSolve, ErrNilMatrix, "destination is nil")
	}
	if err := validateOperand(opSolve, b); err != nil {
		return err
	}
	m, n := f.factors.Dims()
	if err := validateNotOverdetermined(opSolve, m, n); err != nil {
		return err
	}
	rb, cb := b.Dims()
	if err := validateRHSRows(opSolve, rb, m); err != nil {
		return err
	}
	rd, cd := dst.Dims()
	if rd != n || cd != cb {
		return lqErrorf(opSolve, ErrDimensionMismatch,
			"destination is %d×%d, must be %d×%d", rd, cd, n, cb)
	}

	dst.Zero()
	dst.Slice(0, m, 0, cb).(*mat.Dense).Copy(b)
	f.solveInPlace(dst.RawMatrix(), m, cb)
	return nil
}

// solveInPlace runs the direct algorithm on an n×cb buffer whose first m
// rows hold the right-hand side and whose trailing rows are zero.
func (f *Factorization) solveInPlace(x blas64.General, m, cb int) {
	raw := f.factors.RawMatrix()
	l := blas64.Triangular{
		Uplo:   blas.Lower,
		Diag:   blas.NonUnit,
		N:      m,
		Data:   raw.Data,
		Stride: raw.Stride,
	}
	top := blas64.General{Rows: m, Cols: cb, Stride: x.Stride, Data: x.Data}
	blas64.Trsm(blas.Left, blas.NoTrans, 1, l, top)
	f.Q().applyLeft(blas.Trans, x)
}

// SolveAdjoint returns the solution x (m rows) of Aᵀ·x = b for the factored
// m×n matrix A and an n-row right-hand side b.
//
// The adjoint system is n×m; it is rejected as underdetermined (with
// ErrDimensionMismatch) unless m <= n. The trailing n-m rows of the rotated
// buffer are the residual component and are dropped from the result.
func (f *Factorization) SolveAdjoint(b mat.Matrix) (*mat.Dense, error) {
	if err := validateOperand(opSolveAdj, b); err != nil {
		return nil, err
	}
	m, n := f.factors.Dims()
	if err := validateNotUnderdetermined(opSolveAdj, m, n); err != nil {
		return nil, err
	}
	rb, cb := b.Dims()
	if err := validateRHSRows(opSolveAdj, rb, n); err != nil {
		return nil, err
	}

	x := mat.DenseCopyOf(b)
	f.solveAdjointInPlace(x.RawMatrix(), m, cb)
	out := mat.NewDense(m, cb, nil)
	out.Copy(x.Slice(0, m, 0, cb))
	return out, nil
}

// SolveAdjointTo is the destination form of SolveAdjoint: dst must be a
// concrete m×cols(b) buffer not aliasing b or the record.
func (f *Factorization) SolveAdjointTo(dst *mat.Dense, b mat.Matrix) error {
	if dst == nil {
		return lqErrorf(opSolveAdj, ErrNilMatrix, "destination is nil")
	}
	if err := validateOperand(opSolveAdj, b); err != nil {
		return err
	}
	m, n := f.factors.Dims()
	if err := validateNotUnderdetermined(opSolveAdj, m, n); err != nil {
		return err
	}
	rb, cb := b.Dims()
	if err := validateRHSRows(opSolveAdj, rb, n); err != nil {
		return err
	}
	rd, cd := dst.Dims()
	if rd != m || cd != cb {
		return lqErrorf(opSolveAdj, ErrDimensionMismatch,
			"destination is %d×%d, must be %d×%d", rd, cd, m, cb)
	}

	x := mat.DenseCopyOf(b)
	f.solveAdjointInPlace(x.RawMatrix(), m, cb)
	dst.Copy(x.Slice(0, m, 0, cb))
	return nil
}

// solveAdjointInPlace runs the adjoint algorithm on an n×cb copy of the
// right-hand side: rotate through Q, then back-substitute Lᵀ over the first
// m rows.
func (f *Factorization) solveAdjointInPlace(x blas64.General, m, cb int) {
	f.Q().applyLeft(blas.NoTrans, x)
	raw := f.factors.RawMatrix()
	l := blas64.Triangular{
		Uplo:   blas.Lower,
		Diag:   blas.NonUnit,
		N:      m,
		Data:   raw.Data,
		Stride: raw.Stride,
	}
	top := blas64.General{Rows: m, Cols: cb, Stride: x.Stride, Data: x.Data}
	blas64.Trsm(blas.Left, blas.Trans, 1, l, top)
}

// SolveComplex solves A·x = b for a real factorization and a complex
// right-hand side without widening the record: b is reinterpreted as a real
// matrix of twice the column count (real parts in the leading block,
// imaginary parts in the trailing block), solved once, and the two result
// blocks are interleaved back into a complex matrix.
//
// Shape rules match Solve: m <= n and rows(b) == m.
func (f *Factorization) SolveComplex(b mat.CMatrix) (*mat.CDense, error) {
	if err := validateCOperand(opSolveComplex, b); err != nil {
		return nil, err
	}
	m, n := f.factors.Dims()
	if err := validateNotOverdetermined(opSolveComplex, m, n); err != nil {
		return nil, err
	}
	rb, cb := b.Dims()
	if err := validateRHSRows(opSolveComplex, rb, m); err != nil {
		return nil, err
	}

	wide := splitComplexCols(b, rb, cb)
	xs, err := f.Solve(wide)
	if err != nil {
		return nil, err
	}
	return mergeComplexCols(xs, n, cb), nil
}

// SolveAdjointComplex is the adjoint counterpart of SolveComplex: real
// record, complex n-row right-hand side, m-row complex result.
func (f *Factorization) SolveAdjointComplex(b mat.CMatrix) (*mat.CDense, error) {
	if err := validateCOperand(opSolveComplex, b); err != nil {
		return nil, err
	}
	m, n := f.factors.Dims()
	if err := validateNotUnderdetermined(opSolveComplex, m, n); err != nil {
		return nil, err
	}
	rb, cb := b.Dims()
	if err := validateRHSRows(opSolveComplex, rb, n); err != nil {
		return nil, err
	}

	wide := splitComplexCols(b, rb, cb)
	xs, err := f.SolveAdjoint(wide)
	if err != nil {
		return nil, err
	}
	return mergeComplexCols(xs, m, cb), nil
}

// splitComplexCols lays a complex r×c matrix out as the real r×2c matrix
// [Re(b) | Im(b)].
func splitComplexCols(b mat.CMatrix, r, c int) *mat.Dense {
	wide := mat.NewDense(r, 2*c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := b.At(i, j)
			wide.Set(i, j, real(v))
			wide.Set(i, j+c, imag(v))
		}
	}
	return wide
}

// mergeComplexCols reassembles an r×2c block layout [Re | Im] into the
// complex r×c matrix it encodes.
func mergeComplexCols(wide *mat.Dense, r, c int) *mat.CDense {
	out := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, complex(wide.At(i, j), wide.At(i, j+c)))
		}
	}
	return out
}
