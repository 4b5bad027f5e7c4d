// SPDX-License-Identifier: MIT
// Package lq: the real multiplication protocol.
// Every entry point resolves to one left- or right-side reflector-apply call
// on a freshly allocated buffer. Shape rules: left application against Q
// requires the square dimension n exactly; the adjoint-left and both right
// forms also accept the truncated dimension m and zero-extend the operand to
// order n before applying the square operator.
//
// Operands are plain mat.Matrix values. A lazily-transposed view (b.T()) is
// a legal operand: it is materialized into the working buffer by the initial
// copy, which is exactly the explicit transpose-copy the apply kernels need.

package lq

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/mat"
)

// MulLeft computes Q·b into a fresh (n, cols(b)) matrix.
// b must have exactly n rows; there is no truncated form on this path.
// Returns ErrDimensionMismatch or ErrNilMatrix on bad operands.
func (q *PackedQ) MulLeft(b mat.Matrix) (*mat.Dense, error) {
	if err := validateOperand(opMulLeft, b); err != nil {
		return nil, err
	}
	rb, _ := b.Dims()
	if err := validateSquareDim(opMulLeft, dimRowsB, rb, q.cols()); err != nil {
		return nil, err
	}
	c := mat.DenseCopyOf(b)
	q.applyLeft(blas.NoTrans, c.RawMatrix())
	return c, nil
}

// MulLeftAdj computes Qᵀ·b into a fresh (n, cols(b)) matrix.
// b may have n rows (square form) or m rows (truncated form); the truncated
// operand is zero-extended with n-m trailing zero rows before the square
// adjoint operator is applied.
// Returns ErrDimensionMismatch or ErrNilMatrix on bad operands.
func (q *PackedQ) MulLeftAdj(b mat.Matrix) (*mat.Dense, error) {
	if err := validateOperand(opMulLeftAdj, b); err != nil {
		return nil, err
	}
	n, m := q.cols(), q.rows()
	rb, cb := b.Dims()
	if err := validateExtendableDim(opMulLeftAdj, dimRowsB, rb, n, m); err != nil {
		return nil, err
	}
	c := q.extendRows(b, rb, cb)
	q.applyLeft(blas.Trans, c.RawMatrix())
	return c, nil
}

// MulRight computes a·Q into a fresh (rows(a), n) matrix.
// a may have n columns (square form) or m columns (truncated form); the
// truncated operand is zero-extended with n-m trailing zero columns before
// the square operator is applied.
// Returns ErrDimensionMismatch or ErrNilMatrix on bad operands.
func (q *PackedQ) MulRight(a mat.Matrix) (*mat.Dense, error) {
	if err := validateOperand(opMulRight, a); err != nil {
		return nil, err
	}
	n, m := q.cols(), q.rows()
	ra, ca := a.Dims()
	if err := validateExtendableDim(opMulRight, dimColsA, ca, n, m); err != nil {
		return nil, err
	}
	c := q.extendCols(a, ra, ca)
	q.applyRight(blas.NoTrans, c.RawMatrix())
	return c, nil
}

// MulRightAdj computes a·Qᵀ into a fresh (rows(a), n) matrix, with the same
// square-or-truncated column rule as MulRight.
// Returns ErrDimensionMismatch or ErrNilMatrix on bad operands.
func (q *PackedQ) MulRightAdj(a mat.Matrix) (*mat.Dense, error) {
	if err := validateOperand(opMulRightAdj, a); err != nil {
		return nil, err
	}
	n, m := q.cols(), q.rows()
	ra, ca := a.Dims()
	if err := validateExtendableDim(opMulRightAdj, dimColsA, ca, n, m); err != nil {
		return nil, err
	}
	c := q.extendCols(a, ra, ca)
	q.applyRight(blas.Trans, c.RawMatrix())
	return c, nil
}

// extendRows copies b into the top rb rows of an (n, cb) zero buffer.
// For rb == n this is a plain materializing copy.
func (q *PackedQ) extendRows(b mat.Matrix, rb, cb int) *mat.Dense {
	if rb == q.cols() {
		return mat.DenseCopyOf(b)
	}
	c := mat.NewDense(q.cols(), cb, nil)
	c.Slice(0, rb, 0, cb).(*mat.Dense).Copy(b)
	return c
}

// extendCols copies a into the leading ca columns of an (ra, n) zero buffer.
func (q *PackedQ) extendCols(a mat.Matrix, ra, ca int) *mat.Dense {
	if ca == q.cols() {
		return mat.DenseCopyOf(a)
	}
	c := mat.NewDense(ra, q.cols(), nil)
	c.Slice(0, ra, 0, ca).(*mat.Dense).Copy(a)
	return c
}

// LMul applies Q to b from the left, in place. Strict form: b must be a
// concrete buffer with exactly n rows, no zero-extension happens, and b must
// not alias the record's packed buffer.
func (q *PackedQ) LMul(b *mat.Dense) error {
	if b == nil {
		return lqErrorf(opLMul, ErrNilMatrix, "in-place operand is nil")
	}
	rb, _ := b.Dims()
	if err := validateSquareDim(opLMul, dimRowsB, rb, q.cols()); err != nil {
		return err
	}
	q.applyLeft(blas.NoTrans, b.RawMatrix())
	return nil
}

// LMulAdj applies Qᵀ to b from the left, in place, under the same strict
// contract as LMul.
func (q *PackedQ) LMulAdj(b *mat.Dense) error {
	if b == nil {
		return lqErrorf(opLMul, ErrNilMatrix, "in-place operand is nil")
	}
	rb, _ := b.Dims()
	if err := validateSquareDim(opLMul, dimRowsB, rb, q.cols()); err != nil {
		return err
	}
	q.applyLeft(blas.Trans, b.RawMatrix())
	return nil
}

// RMul applies Q to a from the right, in place. Strict form: a must have
// exactly n columns and must not alias the record's packed buffer.
func (q *PackedQ) RMul(a *mat.Dense) error {
	if a == nil {
		return lqErrorf(opRMul, ErrNilMatrix, "in-place operand is nil")
	}
	_, ca := a.Dims()
	if err := validateSquareDim(opRMul, dimColsA, ca, q.cols()); err != nil {
		return err
	}
	q.applyRight(blas.NoTrans, a.RawMatrix())
	return nil
}

// RMulAdj applies Qᵀ to a from the right, in place, under the same strict
// contract as RMul.
func (q *PackedQ) RMulAdj(a *mat.Dense) error {
	if a == nil {
		return lqErrorf(opRMul, ErrNilMatrix, "in-place operand is nil")
	}
	_, ca := a.Dims()
	if err := validateSquareDim(opRMul, dimColsA, ca, q.cols()); err != nil {
		return err
	}
	q.applyRight(blas.Trans, a.RawMatrix())
	return nil
}
