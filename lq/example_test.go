// Package lq_test: runnable examples with deterministic output.

package lq_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqpack/lq"
)

// ExampleFactorize demonstrates the basic shapes: a wide 2×4 input yields a
// 2×2 trapezoid L and a square 4×4 implicit operator.
func ExampleFactorize() {
	a := mat.NewDense(2, 4, []float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
	})

	f, err := lq.Factorize(a)
	if err != nil {
		panic(err)
	}

	lr, lc := f.L().Dims()
	qr, qc := f.Q().Dims()
	fmt.Println("L:", lr, "x", lc)
	fmt.Println("Q:", qr, "x", qc)

	recon := f.Reconstruct()
	var diff mat.Dense
	diff.Sub(recon, a)
	fmt.Println("round trip ok:", mat.Norm(&diff, 2) < 1e-10)

	// Output:
	// L: 2 x 2
	// Q: 4 x 4
	// round trip ok: true
}

// ExampleFactorization_Solve finds the minimum-norm solution of an
// underdetermined system and checks the residual.
func ExampleFactorization_Solve() {
	a := mat.NewDense(2, 3, []float64{
		1, 0, 1,
		0, 2, 1,
	})
	b := mat.NewDense(2, 1, []float64{3, 5})

	f, err := lq.Factorize(a)
	if err != nil {
		panic(err)
	}
	x, err := f.Solve(b)
	if err != nil {
		panic(err)
	}

	var ax mat.Dense
	ax.Mul(a, x)
	var resid mat.Dense
	resid.Sub(&ax, b)
	fmt.Println("rows(x):", x.RawMatrix().Rows)
	fmt.Println("residual ok:", mat.Norm(&resid, 2) < 1e-10)

	// Output:
	// rows(x): 3
	// residual ok: true
}

// ExamplePackedQ_Det shows the reflector-parity determinant of the
// orthogonal factor.
func ExamplePackedQ_Det() {
	a := mat.NewDense(2, 2, []float64{5, 7, -2, -4})
	f, err := lq.Factorize(a)
	if err != nil {
		panic(err)
	}
	fmt.Println(f.Q().Det())

	// Output:
	// -1
}

// ExamplePackedQ_MulLeftAdj applies the adjoint operator to a truncated
// 2-row operand over a 4-dimensional square operator; the protocol
// zero-extends the operand implicitly.
func ExamplePackedQ_MulLeftAdj() {
	a := mat.NewDense(2, 4, []float64{
		2, 0, 0, 0,
		0, 3, 0, 0,
	})
	f, err := lq.Factorize(a)
	if err != nil {
		panic(err)
	}

	b := mat.NewDense(2, 1, []float64{1, 1})
	x, err := f.Q().MulLeftAdj(b)
	if err != nil {
		panic(err)
	}
	fmt.Println("rows(x):", x.RawMatrix().Rows)

	_, err = f.Q().MulLeftAdj(mat.NewDense(3, 1, nil))
	fmt.Println("3-row operand rejected:", err != nil)

	// Output:
	// rows(x): 4
	// 3-row operand rejected: true
}
