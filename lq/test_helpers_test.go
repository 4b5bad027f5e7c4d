// SPDX-License-Identifier: MIT
// Package lq_test: shared helpers for the lq test suite.
// Deterministic random fills, factorization fixtures, and elementwise
// comparisons used across the protocol, solver and operator tests.

package lq_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqpack/lq"
)

// defaultTol bounds elementwise drift for the small well-conditioned
// matrices used throughout the suite.
const defaultTol = 1e-12

// randDense returns an r×c matrix with deterministic normal entries.
func randDense(r, c int, seed int64) *mat.Dense {
	rng := rand.New(rand.NewSource(seed))
	a := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.Set(i, j, rng.NormFloat64())
		}
	}
	return a
}

// randCDense returns an r×c complex matrix with deterministic normal
// real and imaginary parts.
func randCDense(r, c int, seed int64) *mat.CDense {
	rng := rand.New(rand.NewSource(seed))
	a := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.Set(i, j, complex(rng.NormFloat64(), rng.NormFloat64()))
		}
	}
	return a
}

// mustFactorize builds a real factorization or fails the test.
func mustFactorize(t *testing.T, a mat.Matrix) *lq.Factorization {
	t.Helper()
	f, err := lq.Factorize(a)
	require.NoError(t, err)
	return f
}

// mustFactorizeC builds a complex factorization or fails the test.
func mustFactorizeC(t *testing.T, a mat.CMatrix) *lq.CFactorization {
	t.Helper()
	f, err := lq.FactorizeC(a)
	require.NoError(t, err)
	return f
}

// requireMatEqual asserts elementwise equality of two real matrices within
// tol.
func requireMatEqual(t *testing.T, want, got mat.Matrix, tol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr, "row count")
	require.Equal(t, wc, gc, "column count")
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			if !scalar.EqualWithinAbs(want.At(i, j), got.At(i, j), tol) {
				t.Fatalf("element (%d,%d): want %v, got %v", i, j, want.At(i, j), got.At(i, j))
			}
		}
	}
}

// requireCMatEqual asserts elementwise equality of two complex matrices
// within tol.
func requireCMatEqual(t *testing.T, want, got mat.CMatrix, tol float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, wr, gr, "row count")
	require.Equal(t, wc, gc, "column count")
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			if cmplx.Abs(want.At(i, j)-got.At(i, j)) > tol {
				t.Fatalf("element (%d,%d): want %v, got %v", i, j, want.At(i, j), got.At(i, j))
			}
		}
	}
}

// requireIdentity asserts that a is the n×n identity within tol.
func requireIdentity(t *testing.T, a mat.Matrix, tol float64) {
	t.Helper()
	r, c := a.Dims()
	require.Equal(t, r, c, "identity must be square")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			if !scalar.EqualWithinAbs(want, a.At(i, j), tol) {
				t.Fatalf("identity element (%d,%d): got %v", i, j, a.At(i, j))
			}
		}
	}
}

// requireCIdentity asserts that a is the n×n identity within tol.
func requireCIdentity(t *testing.T, a mat.CMatrix, tol float64) {
	t.Helper()
	r, c := a.Dims()
	require.Equal(t, r, c, "identity must be square")
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			want := complex(0, 0)
			if i == j {
				want = 1
			}
			if cmplx.Abs(want-a.At(i, j)) > tol {
				t.Fatalf("identity element (%d,%d): got %v", i, j, a.At(i, j))
			}
		}
	}
}

// cMul returns the plain dense product a·b of two complex matrices.
func cMul(a, b mat.CMatrix) *mat.CDense {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ca != rb {
		panic("cMul: inner dimensions differ")
	}
	out := mat.NewCDense(ra, cb, nil)
	for i := 0; i < ra; i++ {
		for j := 0; j < cb; j++ {
			var s complex128
			for k := 0; k < ca; k++ {
				s += a.At(i, k) * b.At(k, j)
			}
			out.Set(i, j, s)
		}
	}
	return out
}

// cAdjoint returns the conjugate transpose of a as a concrete matrix.
func cAdjoint(a mat.CMatrix) *mat.CDense {
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(j, i, cmplx.Conj(a.At(i, j)))
		}
	}
	return out
}

// zeroExtendRows returns b stacked on top of extra zero rows, total rows n.
func zeroExtendRows(b mat.Matrix, n int) *mat.Dense {
	rb, cb := b.Dims()
	out := mat.NewDense(n, cb, nil)
	out.Slice(0, rb, 0, cb).(*mat.Dense).Copy(b)
	return out
}

// zeroExtendCols returns b padded with trailing zero columns, total cols n.
func zeroExtendCols(b mat.Matrix, n int) *mat.Dense {
	rb, cb := b.Dims()
	out := mat.NewDense(rb, n, nil)
	out.Slice(0, rb, 0, cb).(*mat.Dense).Copy(b)
	return out
}

// cZeroExtendRows is the complex form of zeroExtendRows.
func cZeroExtendRows(b mat.CMatrix, n int) *mat.CDense {
	_, cb := b.Dims()
	out := mat.NewCDense(n, cb, nil)
	out.Copy(b)
	return out
}

// cZeroExtendCols is the complex form of zeroExtendCols.
func cZeroExtendCols(b mat.CMatrix, n int) *mat.CDense {
	rb, _ := b.Dims()
	out := mat.NewCDense(rb, n, nil)
	out.Copy(b)
	return out
}
