// Package lqpack computes and applies the LQ matrix factorization
// A = L·Q for real and complex dense matrices, keeping the orthogonal
// factor in compact Householder-reflector form for its whole life.
//
// 🚀 What is lqpack?
//
//	A factorization toolkit built around an implicit operator:
//		• Factorization records: packed reflectors + tau coefficients,
//		  with derived L (lower trapezoid) and Q (implicit operator) views
//		• Multiplication protocol: Q·B, Qᴴ·B, A·Q, A·Qᴴ with square and
//		  truncated operand shapes and implicit zero-extension
//		• Solvers: minimum-norm solutions for underdetermined systems,
//		  adjoint-system solves, complex right-hand sides over real records
//		• Complex support: complex128 records backed by dedicated
//		  unblocked reflector kernels
//
// ✨ Why keep Q implicit?
//
//   - O(m·n) storage instead of O(n²) for the full orthogonal transform
//   - applying reflectors is as fast as a dense multiply and more accurate
//   - the dense form remains one Materialize call away when needed
//
// Under the hood, everything is organized under three packages:
//
//	lq/           — records, implicit operators, protocol, solvers
//	internal/zlq/ — unblocked complex LQ kernels (factor/expand/apply)
//	cmd/lqdemo/   — config-driven demo binary
//
// Quick start:
//
//	f, _ := lq.Factorize(a)     // a is any gonum mat.Matrix
//	l, q := f.L(), f.Q()        // views, never cached
//	x, _ := f.Solve(b)          // minimum-norm solution of a·x = b
//
//	go get github.com/katalvlaran/lqpack/lq
package lqpack
