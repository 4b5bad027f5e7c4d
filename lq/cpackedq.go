// SPDX-License-Identifier: MIT
// Package lq: the implicit unitary operator for complex records.

package lq

import (
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqpack/internal/zlq"
)

// CPackedQ is the unitary factor of a complex LQ factorization in implicit
// reflector form. Obtain one from CFactorization.Q.
//
// The concurrency caveat on PackedQ applies here too: apply kernels scribble
// temporarily on the shared packed buffer, so operations sharing one buffer
// must not run concurrently. For dense interop, Materialize the operator.
type CPackedQ struct {
	factors *mat.CDense
	tau     []complex128
}

// Dims returns the square logical shape (n, n), with n the column count of
// the packed factors.
func (q *CPackedQ) Dims() (r, c int) {
	_, n := q.factors.Dims()
	return n, n
}

// Size returns the extent along dim under the Factorization.Size convention.
func (q *CPackedQ) Size(dim int) (int, error) {
	n, _ := q.Dims()
	return sizeOf(n, n, dim)
}

// At returns the (i, j)-th element, computed by applying Q to the j-th
// standard basis vector. Panics when i or j is out of range.
// Debug-density access only.
func (q *CPackedQ) At(i, j int) complex128 {
	n, _ := q.Dims()
	if i < 0 || i >= n {
		panic("lq: row index out of range")
	}
	if j < 0 || j >= n {
		panic("lq: column index out of range")
	}
	e := mat.NewCDense(n, 1, nil)
	e.Set(j, 0, 1)
	q.applyLeft(blas.NoTrans, e.RawCMatrix())
	return e.At(i, 0)
}

// Materialize expands the reflectors into an explicit dense n×n unitary
// matrix, running the consuming expansion kernel on a private copy.
func (q *CPackedQ) Materialize() *mat.CDense {
	n, _ := q.Dims()
	k := len(q.tau)
	qd := mat.NewCDense(n, n, nil)

	src := q.factors.RawCMatrix()
	dst := qd.RawCMatrix()
	for i := 0; i < k; i++ {
		copy(dst.Data[i*dst.Stride:i*dst.Stride+n], src.Data[i*src.Stride:i*src.Stride+n])
	}
	zlq.ExpandQ(dst, q.tau)
	return qd
}

// Det returns the determinant of the operator, a unit-modulus complex
// number. Each reflector contributes the phase factor -sign(tau)², and the
// operator is assembled as the adjoint of the raw reflector product, so the
// result is the conjugate of the accumulated product.
// Complexity: O(min(m,n)).
func (q *CPackedQ) Det() complex128 {
	p := complex(1, 0)
	for _, t := range q.tau {
		if t == 0 {
			continue
		}
		s := t / complex(cmplx.Abs(t), 0)
		p *= -(s * s)
	}
	return cmplx.Conj(p)
}

// rows returns m, the truncated dimension of the protocol.
func (q *CPackedQ) rows() int {
	m, _ := q.factors.Dims()
	return m
}

// cols returns n, the operator order.
func (q *CPackedQ) cols() int {
	_, n := q.factors.Dims()
	return n
}

// reflectorView returns the k×n block of packed reflector rows, aliasing
// the record's buffer.
func (q *CPackedQ) reflectorView() cblas128.General {
	raw := q.factors.RawCMatrix()
	return cblas128.General{
		Rows:   len(q.tau),
		Cols:   raw.Cols,
		Stride: raw.Stride,
		Data:   raw.Data,
	}
}

// applyLeft runs the left-side apply kernel in place on c (n rows).
func (q *CPackedQ) applyLeft(trans blas.Transpose, c cblas128.General) {
	zlq.ApplyQ(blas.Left, trans, q.reflectorView(), q.tau, c)
}

// applyRight runs the right-side apply kernel in place on c (n columns).
func (q *CPackedQ) applyRight(trans blas.Transpose, c cblas128.General) {
	zlq.ApplyQ(blas.Right, trans, q.reflectorView(), q.tau, c)
}
