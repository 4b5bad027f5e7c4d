// SPDX-License-Identifier: MIT
// Package lq: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the lq
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions; the single exception is PackedQ.At / CPackedQ.At, which follow
// the gonum matrix contract and panic on out-of-range indices.

package lq

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "lq: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with lqErrorf(op, ...) — callers
// will still use errors.Is to match.

var (
	// ErrDimensionMismatch indicates operand shapes that match none of the
	// accepted patterns: a multiplication operand whose relevant dimension is
	// neither n (square) nor m (truncated), a solve right-hand side with the
	// wrong row count, or a solve direction unsupported for the record's
	// shape (overdetermined direct, underdetermined adjoint). Wrapped
	// messages always carry the actual size and the accepted size(s).
	ErrDimensionMismatch = errors.New("lq: dimension mismatch")

	// ErrOutOfRange indicates a dimension index outside valid bounds,
	// e.g. Size(dim) with dim < 1.
	ErrOutOfRange = errors.New("lq: dimension index out of range")

	// ErrNilMatrix indicates that a nil matrix (operand or destination) was
	// passed where a concrete matrix is required.
	ErrNilMatrix = errors.New("lq: nil matrix")

	// ErrBadFactors signals construct-from-components input that violates
	// the packed-representation invariants: empty factors, or a tau whose
	// length differs from min(rows, cols) of factors.
	ErrBadFactors = errors.New("lq: invalid packed factors")

	// ErrNarrowingConversion is returned when a complex record cannot be
	// narrowed to a real one because some entry has a nonzero imaginary
	// part.
	ErrNarrowingConversion = errors.New("lq: narrowing conversion drops imaginary part")
)

// Operation tags used by lqErrorf so every wrapped error names its entry
// point. Kept as constants to guarantee stable spelling across call sites.
const (
	opFactorize    = "Factorize"
	opNew          = "NewFactorization"
	opSize         = "Size"
	opToReal       = "ToReal"
	opMulLeft      = "MulLeft"
	opMulLeftAdj   = "MulLeftAdj"
	opMulRight     = "MulRight"
	opMulRightAdj  = "MulRightAdj"
	opLMul         = "LMul"
	opRMul         = "RMul"
	opSolve        = "Solve"
	opSolveAdj     = "SolveAdjoint"
	opSolveComplex = "SolveComplex"
)

// lqErrorf attaches an operation tag and shape context to a sentinel.
// The sentinel stays matchable via errors.Is.
func lqErrorf(op string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
