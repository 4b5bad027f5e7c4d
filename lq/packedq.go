// SPDX-License-Identifier: MIT
// Package lq: the implicit orthogonal operator.
// PackedQ is a view over a record's packed buffers. Its logical shape is the
// square n×n regardless of the factored matrix's row count m: the reflectors
// define a full orthogonal transform of which L only uses the first m rows.
// Every operation here reduces to reflector-apply or reflector-expand kernel
// calls; a dense Q exists only when Materialize is called.

package lq

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// PackedQ is the orthogonal factor of a real LQ factorization in implicit
// reflector form. Obtain one from Factorization.Q.
//
// PackedQ implements mat.Matrix. At applies the operator to a basis vector
// per call and is meant for occasional or debug access; bulk consumers must
// use the multiplication methods or Materialize.
//
// The apply kernels scribble temporarily on the shared packed buffer while
// running, so no two operations on operators or records sharing one buffer
// may run concurrently, even when both look read-only.
type PackedQ struct {
	factors *mat.Dense
	tau     []float64
}

var _ mat.Matrix = (*PackedQ)(nil)

// Dims returns the square logical shape (n, n), with n the column count of
// the packed factors.
func (q *PackedQ) Dims() (r, c int) {
	_, n := q.factors.Dims()
	return n, n
}

// Size returns the extent along dim under the same convention as
// Factorization.Size: 1 and 2 report n, larger dims report the trailing
// singleton extent 1, and dim < 1 returns ErrOutOfRange.
func (q *PackedQ) Size(dim int) (int, error) {
	n, _ := q.Dims()
	return sizeOf(n, n, dim)
}

// At returns the (i, j)-th element of the operator, computed by applying Q
// to the j-th standard basis vector and reading entry i of the image.
// It panics when i or j is out of range.
// Complexity: O(n·min(m,n)) per element. Debug-density access only.
func (q *PackedQ) At(i, j int) float64 {
	n, _ := q.Dims()
	if i < 0 || i >= n {
		panic("lq: row index out of range")
	}
	if j < 0 || j >= n {
		panic("lq: column index out of range")
	}
	e := mat.NewDense(n, 1, nil)
	e.Set(j, 0, 1)
	q.applyLeft(blas.NoTrans, e.RawMatrix())
	return e.At(i, 0)
}

// T returns the transpose of the operator as an implicit view.
func (q *PackedQ) T() mat.Matrix {
	return mat.Transpose{Matrix: q}
}

// Materialize expands the reflectors into an explicit dense n×n orthogonal
// matrix. The expansion kernel consumes its input, so it runs on a private
// copy; the operator itself is left untouched.
// Complexity: O(n²·min(m,n)).
func (q *PackedQ) Materialize() *mat.Dense {
	n, _ := q.Dims()
	k := len(q.tau)
	qd := mat.NewDense(n, n, nil)

	src := q.factors.RawMatrix()
	dst := qd.RawMatrix()
	for i := 0; i < k; i++ {
		copy(dst.Data[i*dst.Stride:i*dst.Stride+n], src.Data[i*src.Stride:i*src.Stride+n])
	}

	work := []float64{0}
	lapack64.Orglq(dst, q.tau, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Orglq(dst, q.tau, work, len(work))
	return qd
}

// Det returns the determinant of the operator, always ±1 for an orthogonal
// matrix. It is computed from the scale coefficients alone: each nonzero
// coefficient contributes a reflection, so the result is -1 to the power of
// the nonzero count.
// Complexity: O(min(m,n)).
func (q *PackedQ) Det() float64 {
	det := 1.0
	for _, t := range q.tau {
		if t != 0 {
			det = -det
		}
	}
	return det
}

// rows returns m, the row count of the packed factors (the truncated
// dimension of the protocol).
func (q *PackedQ) rows() int {
	m, _ := q.factors.Dims()
	return m
}

// cols returns n, the operator order.
func (q *PackedQ) cols() int {
	_, n := q.factors.Dims()
	return n
}

// reflectorView returns the k×n block of packed reflector rows shared with
// the record. The view aliases the record's buffer.
func (q *PackedQ) reflectorView() blas64.General {
	raw := q.factors.RawMatrix()
	return blas64.General{
		Rows:   len(q.tau),
		Cols:   raw.Cols,
		Stride: raw.Stride,
		Data:   raw.Data,
	}
}

// applyLeft runs the left-side reflector-apply kernel in place on c.
// c must have n rows. trans selects Q (NoTrans) or Qᵀ (Trans).
func (q *PackedQ) applyLeft(trans blas.Transpose, c blas64.General) {
	a := q.reflectorView()
	work := []float64{0}
	lapack64.Ormlq(blas.Left, trans, a, q.tau, c, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Ormlq(blas.Left, trans, a, q.tau, c, work, len(work))
}

// applyRight runs the right-side reflector-apply kernel in place on c.
// c must have n columns.
func (q *PackedQ) applyRight(trans blas.Transpose, c blas64.General) {
	a := q.reflectorView()
	work := []float64{0}
	lapack64.Ormlq(blas.Right, trans, a, q.tau, c, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Ormlq(blas.Right, trans, a, q.tau, c, work, len(work))
}
