// SPDX-License-Identifier: MIT
// Package lq: the complex multiplication protocol.
// Shape rules mirror the real protocol exactly; the adjoint here is the
// conjugate transpose. A lazily-adjointed view (b.H()) is a legal operand
// and is materialized by the initial copy.

package lq

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/mat"
)

// MulLeft computes Q·b into a fresh (n, cols(b)) matrix.
// b must have exactly n rows.
func (q *CPackedQ) MulLeft(b mat.CMatrix) (*mat.CDense, error) {
	if err := validateCOperand(opMulLeft, b); err != nil {
		return nil, err
	}
	rb, _ := b.Dims()
	if err := validateSquareDim(opMulLeft, dimRowsB, rb, q.cols()); err != nil {
		return nil, err
	}
	c := cDenseCopyOf(b)
	q.applyLeft(blas.NoTrans, c.RawCMatrix())
	return c, nil
}

// MulLeftAdj computes Qᴴ·b into a fresh (n, cols(b)) matrix. b may have n
// rows (square form) or m rows (truncated form, zero-extended with n-m zero
// rows before the square adjoint is applied).
func (q *CPackedQ) MulLeftAdj(b mat.CMatrix) (*mat.CDense, error) {
	if err := validateCOperand(opMulLeftAdj, b); err != nil {
		return nil, err
	}
	n, m := q.cols(), q.rows()
	rb, cb := b.Dims()
	if err := validateExtendableDim(opMulLeftAdj, dimRowsB, rb, n, m); err != nil {
		return nil, err
	}
	c := mat.NewCDense(n, cb, nil)
	c.Copy(b)
	q.applyLeft(blas.ConjTrans, c.RawCMatrix())
	return c, nil
}

// MulRight computes a·Q into a fresh (rows(a), n) matrix. a may have n
// columns (square form) or m columns (truncated form, padded with n-m zero
// columns before the square operator is applied).
func (q *CPackedQ) MulRight(a mat.CMatrix) (*mat.CDense, error) {
	if err := validateCOperand(opMulRight, a); err != nil {
		return nil, err
	}
	n, m := q.cols(), q.rows()
	ra, ca := a.Dims()
	if err := validateExtendableDim(opMulRight, dimColsA, ca, n, m); err != nil {
		return nil, err
	}
	c := mat.NewCDense(ra, n, nil)
	c.Copy(a)
	q.applyRight(blas.NoTrans, c.RawCMatrix())
	return c, nil
}

// MulRightAdj computes a·Qᴴ into a fresh (rows(a), n) matrix, with the same
// square-or-truncated column rule as MulRight.
func (q *CPackedQ) MulRightAdj(a mat.CMatrix) (*mat.CDense, error) {
	if err := validateCOperand(opMulRightAdj, a); err != nil {
		return nil, err
	}
	n, m := q.cols(), q.rows()
	ra, ca := a.Dims()
	if err := validateExtendableDim(opMulRightAdj, dimColsA, ca, n, m); err != nil {
		return nil, err
	}
	c := mat.NewCDense(ra, n, nil)
	c.Copy(a)
	q.applyRight(blas.ConjTrans, c.RawCMatrix())
	return c, nil
}

// LMul applies Q to b from the left, in place. Strict form: exactly n rows,
// no zero-extension, no aliasing with the record's packed buffer.
func (q *CPackedQ) LMul(b *mat.CDense) error {
	if b == nil {
		return lqErrorf(opLMul, ErrNilMatrix, "in-place operand is nil")
	}
	rb, _ := b.Dims()
	if err := validateSquareDim(opLMul, dimRowsB, rb, q.cols()); err != nil {
		return err
	}
	q.applyLeft(blas.NoTrans, b.RawCMatrix())
	return nil
}

// LMulAdj applies Qᴴ to b from the left, in place, under the same strict
// contract as LMul.
func (q *CPackedQ) LMulAdj(b *mat.CDense) error {
	if b == nil {
		return lqErrorf(opLMul, ErrNilMatrix, "in-place operand is nil")
	}
	rb, _ := b.Dims()
	if err := validateSquareDim(opLMul, dimRowsB, rb, q.cols()); err != nil {
		return err
	}
	q.applyLeft(blas.ConjTrans, b.RawCMatrix())
	return nil
}

// RMul applies Q to a from the right, in place. Strict form: exactly n
// columns.
func (q *CPackedQ) RMul(a *mat.CDense) error {
	if a == nil {
		return lqErrorf(opRMul, ErrNilMatrix, "in-place operand is nil")
	}
	_, ca := a.Dims()
	if err := validateSquareDim(opRMul, dimColsA, ca, q.cols()); err != nil {
		return err
	}
	q.applyRight(blas.NoTrans, a.RawCMatrix())
	return nil
}

// RMulAdj applies Qᴴ to a from the right, in place, under the same strict
// contract as RMul.
func (q *CPackedQ) RMulAdj(a *mat.CDense) error {
	if a == nil {
		return lqErrorf(opRMul, ErrNilMatrix, "in-place operand is nil")
	}
	_, ca := a.Dims()
	if err := validateSquareDim(opRMul, dimColsA, ca, q.cols()); err != nil {
		return err
	}
	q.applyRight(blas.ConjTrans, a.RawCMatrix())
	return nil
}
