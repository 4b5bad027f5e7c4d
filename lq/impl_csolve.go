// SPDX-License-Identifier: MIT
// Package lq: linear-system solving for complex records.
// Same two algorithms as the real solver, with the conjugate transpose in
// place of the transpose: forward substitution then Qᴴ rotation for the
// direct minimum-norm solve, Q rotation then Lᴴ back substitution for the
// adjoint solve.

package lq

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// Solve returns the minimum-norm solution x (n rows) of A·x = b for the
// factored complex m×n matrix A and an m-row right-hand side b.
// Defined only for m <= n; shape violations return ErrDimensionMismatch.
func (f *CFactorization) Solve(b mat.CMatrix) (*mat.CDense, error) {
	if err := validateCOperand(opSolve, b); err != nil {
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

	x := mat.NewCDense(n, cb, nil)
	x.Copy(b)
	raw := x.RawCMatrix()
	f.triangular(m).solveLower(raw, cb)
	f.Q().applyLeft(blas.ConjTrans, raw)
	return x, nil
}

// SolveAdjoint returns the solution x (m rows) of Aᴴ·x = b for the factored
// complex m×n matrix A and an n-row right-hand side b. The adjoint system is
// rejected as underdetermined unless m <= n.
func (f *CFactorization) SolveAdjoint(b mat.CMatrix) (*mat.CDense, error) {
	if err := validateCOperand(opSolveAdj, b); err != nil {
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

	x := cDenseCopyOf(b)
	raw := x.RawCMatrix()
	f.Q().applyLeft(blas.NoTrans, raw)
	f.triangular(m).solveUpperAdj(raw, cb)

	out := mat.NewCDense(m, cb, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < cb; j++ {
			out.Set(i, j, x.At(i, j))
		}
	}
	return out, nil
}

// cTriangle is the m×m leading lower-triangular block of a complex record's
// packed factors, viewed for substitution.
type cTriangle struct {
	tri cblas128.Triangular
}

// triangular views the leading m×m block of L. The packed buffer's upper
// entries hold reflector data; the triangular view never reads them.
func (f *CFactorization) triangular(m int) cTriangle {
	raw := f.factors.RawCMatrix()
	return cTriangle{tri: cblas128.Triangular{
		Uplo:   blas.Lower,
		Diag:   blas.NonUnit,
		N:      m,
		Data:   raw.Data,
		Stride: raw.Stride,
	}}
}

// solveLower forward-substitutes L·Y = X over the first m rows of x.
func (t cTriangle) solveLower(x cblas128.General, cb int) {
	top := cblas128.General{Rows: t.tri.N, Cols: cb, Stride: x.Stride, Data: x.Data}
	cblas128.Trsm(blas.Left, blas.NoTrans, 1, t.tri, top)
}

// solveUpperAdj back-substitutes Lᴴ·Y = X over the first m rows of x.
func (t cTriangle) solveUpperAdj(x cblas128.General, cb int) {
	top := cblas128.General{Rows: t.tri.N, Cols: cb, Stride: x.Stride, Data: x.Data}
	cblas128.Trsm(blas.Left, blas.ConjTrans, 1, t.tri, top)
}
