// Package lq computes and applies the LQ matrix factorization A = L·Q.
//
// The lq package provides:
//
//   - Factorization / CFactorization records holding the packed Householder
//     reflectors and tau scale coefficients produced by a single factoring
//     call, with derived views L() (lower trapezoid) and Q() (implicit
//     orthogonal operator).
//   - PackedQ / CPackedQ, the implicit square n×n orthogonal (unitary)
//     operator: never materialized unless Materialize is called; all
//     multiplication runs through the reflector-apply kernels.
//   - The shape-aware multiplication protocol: left/right application,
//     direct and adjoint operator, square (n) and truncated (m) operand
//     shapes with implicit zero-extension of the truncated form.
//   - Linear-system solvers on top of triangular substitution: minimum-norm
//     solutions for underdetermined direct systems, adjoint-system solves,
//     and a real-factorization/complex-right-hand-side bridge.
//
// Real kernels are gonum's LAPACK bindings (Gelqf/Orglq/Ormlq); complex
// kernels live in internal/zlq. L·Q reconstruction, orthogonality and the
// solver contracts are covered by the package tests.
//
// PackedQ is best used through the protocol methods; element access At(i,j)
// applies the operator to a basis vector and is intended for debugging, not
// bulk reads.
package lq
