// SPDX-License-Identifier: MIT
// Package lq: shared validation helpers.
// Validators produce fully-contextualized errors (operation tag, actual size,
// accepted sizes) wrapped around the package sentinels, so every rejection is
// matchable with errors.Is and still names the offending shape.

package lq

import "gonum.org/v1/gonum/mat"

// Dimension labels used in mismatch messages. The multiplication protocol
// checks rows of the left operand and columns of the right operand; keeping
// the labels as constants guarantees the two message families stay mirrored.
const (
	dimRowsB = "rows of b"
	dimColsA = "columns of a"
)

// validateOperand rejects a nil real operand.
func validateOperand(op string, b mat.Matrix) error {
	if b == nil {
		return lqErrorf(op, ErrNilMatrix, "operand is nil")
	}
	return nil
}

// validateCOperand rejects a nil complex operand.
func validateCOperand(op string, b mat.CMatrix) error {
	if b == nil {
		return lqErrorf(op, ErrNilMatrix, "operand is nil")
	}
	return nil
}

// validateSquareDim enforces the strict square-shape rule: the operand's
// relevant dimension must equal the operator order n.
func validateSquareDim(op, what string, got, n int) error {
	if got != n {
		return lqErrorf(op, ErrDimensionMismatch, "%s is %d, must equal %d", what, got, n)
	}
	return nil
}

// validateExtendableDim enforces the square-or-truncated rule: the operand's
// relevant dimension must equal n (square form) or m (truncated form, zero
// extended before the apply). The truncated form only exists when m < n; for
// m >= n the square rule is the only accepted shape.
func validateExtendableDim(op, what string, got, n, m int) error {
	if got == n || (got == m && m < n) {
		return nil
	}
	if m < n {
		return lqErrorf(op, ErrDimensionMismatch,
			"%s is %d, must equal %d (square) or %d (truncated)", what, got, n, m)
	}
	return lqErrorf(op, ErrDimensionMismatch, "%s is %d, must equal %d", what, got, n)
}

// validateTau checks the packed-representation invariant
// len(tau) == min(rows, cols) of the factors.
func validateTau(op string, r, c, ntau int) error {
	if k := min(r, c); ntau != k {
		return lqErrorf(op, ErrBadFactors, "tau length is %d, want min(%d,%d) = %d", ntau, r, c, k)
	}
	return nil
}

// validateRHSRows checks a solve right-hand side row count.
func validateRHSRows(op string, got, want int) error {
	if got != want {
		return lqErrorf(op, ErrDimensionMismatch, "right-hand side has %d rows, must have %d", got, want)
	}
	return nil
}

// validateNotOverdetermined gates the direct solve: defined only for
// m <= n records.
func validateNotOverdetermined(op string, m, n int) error {
	if m > n {
		return lqErrorf(op, ErrDimensionMismatch,
			"solver does not support overdetermined systems (%d rows > %d columns)", m, n)
	}
	return nil
}

// validateNotUnderdetermined gates the adjoint solve: the adjoint of an m×n
// record is n×m, underdetermined exactly when m > n.
func validateNotUnderdetermined(op string, m, n int) error {
	if m > n {
		return lqErrorf(op, ErrDimensionMismatch,
			"solver does not support underdetermined systems (%d columns > %d rows)", m, n)
	}
	return nil
}
