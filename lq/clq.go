// SPDX-License-Identifier: MIT
// Package lq: the complex factorization record.
// CFactorization mirrors Factorization for complex128 elements. The kernels
// behind it live in internal/zlq; everything else (ownership, derived views,
// shape conventions) matches the real record exactly.

package lq

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqpack/internal/zlq"
)

// CFactorization holds the packed LQ factorization of a complex m×n matrix
// A, such that A = L·Q with L lower trapezoidal and Q unitary. Ownership and
// buffer contracts match Factorization.
type CFactorization struct {
	factors *mat.CDense
	tau     []complex128
}

// FactorizeC computes the LQ factorization of the complex matrix a.
// The input is copied first and left intact.
// Returns ErrNilMatrix for a nil input.
func FactorizeC(a mat.CMatrix) (*CFactorization, error) {
	if a == nil {
		return nil, lqErrorf(opFactorize, ErrNilMatrix, "input matrix is nil")
	}
	f := cDenseCopyOf(a)
	tau := zlq.Factor(f.RawCMatrix())
	return &CFactorization{factors: f, tau: tau}, nil
}

// NewCFactorization reconstructs a complex record from stored packed
// components. Both inputs are deep-copied.
// Returns ErrNilMatrix for nil factors and ErrBadFactors when
// len(tau) != min(rows, cols) of factors.
func NewCFactorization(factors *mat.CDense, tau []complex128) (*CFactorization, error) {
	if factors == nil {
		return nil, lqErrorf(opNew, ErrNilMatrix, "factors matrix is nil")
	}
	m, n := factors.Dims()
	if err := validateTau(opNew, m, n, len(tau)); err != nil {
		return nil, err
	}
	return &CFactorization{
		factors: cDenseCopyOf(factors),
		tau:     append([]complex128(nil), tau...),
	}, nil
}

// Dims returns the shape (m, n) of the factored matrix.
func (f *CFactorization) Dims() (r, c int) {
	return f.factors.Dims()
}

// Size returns the extent along dim under the Factorization.Size convention.
func (f *CFactorization) Size(dim int) (int, error) {
	m, n := f.factors.Dims()
	return sizeOf(m, n, dim)
}

// L returns the lower-trapezoidal factor, shape m×min(m,n), recomputed on
// every call.
func (f *CFactorization) L() *mat.CDense {
	m, n := f.factors.Dims()
	k := min(m, n)
	l := mat.NewCDense(m, k, nil)
	for i := 0; i < m; i++ {
		for j := 0; j <= i && j < k; j++ {
			l.Set(i, j, f.factors.At(i, j))
		}
	}
	return l
}

// Q returns the implicit unitary operator wrapping the record's packed
// buffers by reference.
func (f *CFactorization) Q() *CPackedQ {
	return &CPackedQ{factors: f.factors, tau: f.tau}
}

// Tau returns a copy of the reflector scale coefficients.
func (f *CFactorization) Tau() []complex128 {
	return append([]complex128(nil), f.tau...)
}

// Factors returns a copy of the packed factors matrix.
func (f *CFactorization) Factors() *mat.CDense {
	return cDenseCopyOf(f.factors)
}

// Clone returns an independent deep copy of the record.
func (f *CFactorization) Clone() *CFactorization {
	return &CFactorization{
		factors: cDenseCopyOf(f.factors),
		tau:     append([]complex128(nil), f.tau...),
	}
}

// ToReal narrows the record to real element type. Narrowing is exact only
// when every entry of the packed factors and tau has a zero imaginary part;
// otherwise ErrNarrowingConversion reports the first offending entry.
func (f *CFactorization) ToReal() (*Factorization, error) {
	m, n := f.factors.Dims()
	rf := mat.NewDense(m, n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := f.factors.At(i, j)
			if imag(v) != 0 {
				return nil, lqErrorf(opToReal, ErrNarrowingConversion,
					"factors entry (%d,%d) = %v has nonzero imaginary part", i, j, v)
			}
			rf.Set(i, j, real(v))
		}
	}
	rtau := make([]float64, len(f.tau))
	for i, t := range f.tau {
		if imag(t) != 0 {
			return nil, lqErrorf(opToReal, ErrNarrowingConversion,
				"tau[%d] = %v has nonzero imaginary part", i, t)
		}
		rtau[i] = real(t)
	}
	return &Factorization{factors: rf, tau: rtau}, nil
}

// Reconstruct multiplies the factors back together, returning L·Q ≈ A.
func (f *CFactorization) Reconstruct() *mat.CDense {
	res, err := f.Q().MulRight(f.L())
	if err != nil {
		// L is m×min(m,n) by construction, always an accepted shape.
		panic(err)
	}
	return res
}

// cDenseCopyOf returns a fresh CDense holding a copy of a.
func cDenseCopyOf(a mat.CMatrix) *mat.CDense {
	r, c := a.Dims()
	d := mat.NewCDense(r, c, nil)
	d.Copy(a)
	return d
}
