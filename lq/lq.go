// SPDX-License-Identifier: MIT
// Package lq: the packed factorization record and its accessors.
// A Factorization bundles the two buffers produced by one factoring call:
// the packed factors matrix (lower trapezoid = L, strict upper rows =
// reflector tails) and the tau scale coefficients. Derived views L and Q are
// recomputed on access and never cached.

package lq

import (
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// Factorization holds the packed LQ factorization of a real m×n matrix A,
// such that A = L·Q with L lower trapezoidal and Q orthogonal.
//
// The record exclusively owns its buffers: constructors deep-copy their
// inputs, and accessors return fresh copies or views wrapping the shared
// buffers read-only. In-place operations elsewhere in the package always
// mutate caller-supplied buffers, never the record.
type Factorization struct {
	factors *mat.Dense // m×n packed form: L below the diagonal, reflector tails above
	tau     []float64  // min(m,n) reflector scale coefficients
}

// Factorize computes the LQ factorization of a.
//
// The input is copied before the in-place kernel runs, so a is left intact.
// Returns ErrNilMatrix for a nil input.
// Complexity: O(m²·n) for an m×n input.
func Factorize(a mat.Matrix) (*Factorization, error) {
	if a == nil {
		return nil, lqErrorf(opFactorize, ErrNilMatrix, "input matrix is nil")
	}
	m, n := a.Dims()
	f := mat.DenseCopyOf(a)
	tau := make([]float64, min(m, n))

	raw := f.RawMatrix()
	work := []float64{0}
	lapack64.Gelqf(raw, tau, work, -1)
	work = make([]float64, int(work[0]))
	lapack64.Gelqf(raw, tau, work, len(work))

	return &Factorization{factors: f, tau: tau}, nil
}

// NewFactorization reconstructs a record from stored packed components, as
// produced by Factors and Tau. Both inputs are deep-copied.
//
// Returns ErrNilMatrix for nil factors and ErrBadFactors when
// len(tau) != min(rows, cols) of factors.
func NewFactorization(factors *mat.Dense, tau []float64) (*Factorization, error) {
	if factors == nil {
		return nil, lqErrorf(opNew, ErrNilMatrix, "factors matrix is nil")
	}
	m, n := factors.Dims()
	if err := validateTau(opNew, m, n, len(tau)); err != nil {
		return nil, err
	}
	return &Factorization{
		factors: mat.DenseCopyOf(factors),
		tau:     append([]float64(nil), tau...),
	}, nil
}

// Dims returns the shape (m, n) of the factored matrix.
func (f *Factorization) Dims() (r, c int) {
	return f.factors.Dims()
}

// Size returns the extent of the factored matrix along dim: dim 1 is rows,
// dim 2 is columns, and any dim > 2 reports the trailing singleton extent 1.
// Returns ErrOutOfRange when dim < 1.
func (f *Factorization) Size(dim int) (int, error) {
	m, n := f.factors.Dims()
	return sizeOf(m, n, dim)
}

// sizeOf implements the shared Size(dim) convention for records and
// operators.
func sizeOf(r, c, dim int) (int, error) {
	switch {
	case dim < 1:
		return 0, lqErrorf(opSize, ErrOutOfRange, "dimension %d out of range", dim)
	case dim == 1:
		return r, nil
	case dim == 2:
		return c, nil
	default:
		return 1, nil
	}
}

// L returns the lower-trapezoidal factor, shape m×min(m,n): rows and the
// leading columns of the packed form with the strictly-above-diagonal
// entries zeroed. The view is recomputed on every call; mutating the result
// never affects the record.
// Complexity: O(m·min(m,n)).
func (f *Factorization) L() *mat.Dense {
	m, n := f.factors.Dims()
	k := min(m, n)
	l := mat.NewDense(m, k, nil)
	for i := 0; i < m; i++ {
		for j := 0; j <= i && j < k; j++ {
			l.Set(i, j, f.factors.At(i, j))
		}
	}
	return l
}

// Q returns the implicit orthogonal operator wrapping the record's packed
// buffers by reference. No copy is made; the operator stays valid for the
// record's lifetime.
func (f *Factorization) Q() *PackedQ {
	return &PackedQ{factors: f.factors, tau: f.tau}
}

// Tau returns a copy of the reflector scale coefficients.
func (f *Factorization) Tau() []float64 {
	return append([]float64(nil), f.tau...)
}

// Factors returns a copy of the packed factors matrix.
func (f *Factorization) Factors() *mat.Dense {
	return mat.DenseCopyOf(f.factors)
}

// Clone returns an independent deep copy of the record.
func (f *Factorization) Clone() *Factorization {
	return &Factorization{
		factors: mat.DenseCopyOf(f.factors),
		tau:     append([]float64(nil), f.tau...),
	}
}

// ToComplex widens the record to complex element type. Widening is always
// exact; the real and widened records describe the same operator.
// Complexity: O(m·n).
func (f *Factorization) ToComplex() *CFactorization {
	m, n := f.factors.Dims()
	cf := mat.NewCDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			cf.Set(i, j, complex(f.factors.At(i, j), 0))
		}
	}
	ctau := make([]complex128, len(f.tau))
	for i, t := range f.tau {
		ctau[i] = complex(t, 0)
	}
	return &CFactorization{factors: cf, tau: ctau}
}

// Reconstruct multiplies the factors back together, returning L·Q ≈ A.
// For m < n the m-column L takes the truncated right-multiplication path.
// Complexity: O(m·n·min(m,n)).
func (f *Factorization) Reconstruct() *mat.Dense {
	res, err := f.Q().MulRight(f.L())
	if err != nil {
		// L is m×min(m,n) by construction, always an accepted shape.
		panic(err)
	}
	return res
}
