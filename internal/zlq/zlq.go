package zlq

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

const (
	badTrans    = "zlq: bad transpose flag"
	badSide     = "zlq: bad side"
	badTau      = "zlq: tau length mismatch"
	badReflBloc = "zlq: reflector block shape mismatch"
	shortBuf    = "zlq: buffer too small"
)

// Factor computes the LQ factorization of a in place and returns the
// reflector scale coefficients. On return the lower trapezoid of a holds L
// and row i's strict upper part holds the conjugated tail of reflector i.
func Factor(a cblas128.General) []complex128 {
	m, n := a.Rows, a.Cols
	if len(a.Data) < (m-1)*a.Stride+n {
		panic(shortBuf)
	}
	k := min(m, n)
	tau := make([]complex128, k)
	work := make([]complex128, m)

	for i := 0; i < k; i++ {
		// Conjugate the working row so the reflector annihilates the
		// original row's tail when applied from the right.
		row := a.Data[i*a.Stride+i : i*a.Stride+n]
		lacgv(row)
		beta, t := larfg(row[0], row[1:])
		tau[i] = t
		if i < m-1 {
			row[0] = 1
			sub := view(a, i+1, i, m-i-1, n-i)
			larf(blas.Right, row, t, sub, work)
		}
		row[0] = beta
		lacgv(row[1:])
	}
	return tau
}

// ExpandQ overwrites a with the explicit rows of the unitary operator:
// on entry the first len(tau) rows of a hold packed reflectors, on return
// all a.Rows rows are orthonormal rows of Q. Requires
// len(tau) <= a.Rows <= a.Cols.
func ExpandQ(a cblas128.General, tau []complex128) {
	m, n := a.Rows, a.Cols
	k := len(tau)
	if k > m || m > n {
		panic(badReflBloc)
	}
	work := make([]complex128, m)

	// Rows below the reflector block start as unit rows.
	for i := k; i < m; i++ {
		row := a.Data[i*a.Stride : i*a.Stride+n]
		for j := range row {
			row[j] = 0
		}
		row[i] = 1
	}

	for i := k - 1; i >= 0; i-- {
		row := a.Data[i*a.Stride+i : i*a.Stride+n]
		tail := row[1:]
		if len(tail) > 0 {
			lacgv(tail)
			if i < m-1 {
				row[0] = 1
				sub := view(a, i+1, i, m-i-1, n-i)
				larf(blas.Right, row, cmplx.Conj(tau[i]), sub, work)
			}
			cblas128.Scal(-tau[i], cblas128.Vector{N: len(tail), Inc: 1, Data: tail})
			lacgv(tail)
		}
		row[0] = 1 - cmplx.Conj(tau[i])
		for j := 0; j < i; j++ {
			a.Data[i*a.Stride+j] = 0
		}
	}
}

// ApplyQ overwrites c with Q·c or Qᴴ·c (side Left) or c·Q or c·Qᴴ
// (side Right), where Q is the unitary operator defined by the reflector
// rows of a and tau. a must be the k×nq reflector block with nq the order
// of Q on the chosen side (rows of c for Left, columns for Right).
// trans must be blas.NoTrans or blas.ConjTrans.
func ApplyQ(side blas.Side, trans blas.Transpose, a cblas128.General, tau []complex128, c cblas128.General) {
	if side != blas.Left && side != blas.Right {
		panic(badSide)
	}
	if trans != blas.NoTrans && trans != blas.ConjTrans {
		panic(badTrans)
	}
	left := side == blas.Left
	notran := trans == blas.NoTrans
	k := len(tau)
	nq := c.Cols
	if left {
		nq = c.Rows
	}
	if a.Rows != k || a.Cols != nq {
		panic(badReflBloc)
	}
	var work []complex128
	if left {
		work = make([]complex128, c.Cols)
	} else {
		work = make([]complex128, c.Rows)
	}

	// Reflector order: Q = H(k-1)ᴴ…H(0)ᴴ, so the innermost factor of the
	// requested product determines the iteration direction.
	i, end, step := 0, k, 1
	if !(left && notran || !left && !notran) {
		i, end, step = k-1, -1, -1
	}
	for ; i != end; i += step {
		taui := tau[i]
		if notran {
			taui = cmplx.Conj(tau[i])
		}
		row := a.Data[i*a.Stride+i : i*a.Stride+nq]
		tail := row[1:]
		lacgv(tail)
		aii := row[0]
		row[0] = 1
		var sub cblas128.General
		if left {
			sub = view(c, i, 0, c.Rows-i, c.Cols)
		} else {
			sub = view(c, 0, i, c.Rows, c.Cols-i)
		}
		larf(side, row, taui, sub, work)
		row[0] = aii
		lacgv(tail)
	}
}

// larfg generates an elementary reflector H = I - tau·(1;v)·(1;v)ᴴ such
// that Hᴴ·(alpha; x) = (beta; 0) with beta real. On return x holds the tail
// of v; the returned beta replaces alpha in the packed storage.
func larfg(alpha complex128, x []complex128) (beta, tau complex128) {
	var xnorm float64
	if len(x) > 0 {
		xnorm = cblas128.Nrm2(cblas128.Vector{N: len(x), Inc: 1, Data: x})
	}
	alphr, alphi := real(alpha), imag(alpha)
	if xnorm == 0 && alphi == 0 {
		return alpha, 0
	}
	b := -math.Copysign(math.Sqrt(alphr*alphr+alphi*alphi+xnorm*xnorm), alphr)
	tau = complex((b-alphr)/b, -alphi/b)
	if len(x) > 0 {
		scale := 1 / (alpha - complex(b, 0))
		cblas128.Scal(scale, cblas128.Vector{N: len(x), Inc: 1, Data: x})
	}
	return complex(b, 0), tau
}

// larf applies the reflector H = I - tau·v·vᴴ to c from the given side.
// v must have length c.Rows (Left) or c.Cols (Right); work needs the
// complementary extent.
func larf(side blas.Side, v []complex128, tau complex128, c cblas128.General, work []complex128) {
	if tau == 0 {
		return
	}
	vv := cblas128.Vector{N: len(v), Inc: 1, Data: v}
	if side == blas.Left {
		if len(v) != c.Rows || len(work) < c.Cols {
			panic(shortBuf)
		}
		// w = cᴴ·v, then c -= tau·v·wᴴ.
		w := cblas128.Vector{N: c.Cols, Inc: 1, Data: work[:c.Cols]}
		cblas128.Gemv(blas.ConjTrans, 1, c, vv, 0, w)
		cblas128.Gerc(-tau, vv, w, c)
	} else {
		if len(v) != c.Cols || len(work) < c.Rows {
			panic(shortBuf)
		}
		// w = c·v, then c -= tau·w·vᴴ.
		w := cblas128.Vector{N: c.Rows, Inc: 1, Data: work[:c.Rows]}
		cblas128.Gemv(blas.NoTrans, 1, c, vv, 0, w)
		cblas128.Gerc(-tau, w, vv, c)
	}
}

// lacgv conjugates x in place.
func lacgv(x []complex128) {
	for i, v := range x {
		x[i] = cmplx.Conj(v)
	}
}

// view returns the r×c sub-block of a with upper-left corner (i, j),
// sharing a's backing data.
func view(a cblas128.General, i, j, r, c int) cblas128.General {
	return cblas128.General{
		Rows:   r,
		Cols:   c,
		Stride: a.Stride,
		Data:   a.Data[i*a.Stride+j:],
	}
}
