// SPDX-License-Identifier: MIT
// Package lq_test: complex factorization record behavior. Mirrors the real
// record suite — reconstruction, derived views, ownership, component
// round trips — plus the narrowing conversion that real records don't have.

package lq_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lqpack/lq"
)

func TestFactorizeC_Reconstruct(t *testing.T) {
	t.Parallel()
	shapes := []struct{ r, c int }{
		{1, 1}, {1, 4}, {2, 2}, {2, 5}, {3, 5}, {4, 4}, {5, 3},
	}
	for _, s := range shapes {
		a := randCDense(s.r, s.c, int64(200*s.r+s.c))
		f := mustFactorizeC(t, a)
		requireCMatEqual(t, a, f.Reconstruct(), defaultTol)
	}
}

func TestFactorizeC_InputIntact(t *testing.T) {
	t.Parallel()
	a := randCDense(3, 5, 211)
	before := cloneCDense(a)
	mustFactorizeC(t, a)
	requireCMatEqual(t, before, a, 0)
}

func TestFactorizeC_NilInput(t *testing.T) {
	t.Parallel()
	_, err := lq.FactorizeC(nil)
	require.ErrorIs(t, err, lq.ErrNilMatrix)
}

func TestCL_Shape(t *testing.T) {
	t.Parallel()
	for _, s := range []struct{ r, c int }{{2, 5}, {5, 2}, {3, 3}} {
		f := mustFactorizeC(t, randCDense(s.r, s.c, 212))
		l := f.L()
		r, c := l.Dims()
		require.Equal(t, s.r, r)
		require.Equal(t, min(s.r, s.c), c)
		for i := 0; i < r; i++ {
			for j := i + 1; j < c; j++ {
				assert.Zero(t, l.At(i, j), "L(%d,%d) above diagonal", i, j)
			}
		}
	}
}

func TestCAccessors_Idempotent(t *testing.T) {
	t.Parallel()
	f := mustFactorizeC(t, randCDense(2, 4, 213))
	requireCMatEqual(t, f.L(), f.L(), 0)
	requireCMatEqual(t, f.Q().Materialize(), f.Q().Materialize(), 0)
}

// TestCAccessors_OwnBuffers verifies accessor results are copies: writing
// into them must not leak back into the record.
func TestCAccessors_OwnBuffers(t *testing.T) {
	t.Parallel()
	f := mustFactorizeC(t, randCDense(2, 4, 214))
	want := f.Reconstruct()

	f.Factors().Set(0, 0, 999)
	f.L().Set(1, 0, 999)
	f.Tau()[0] = 999
	requireCMatEqual(t, want, f.Reconstruct(), 0)
}

func TestNewCFactorization_RoundTrip(t *testing.T) {
	t.Parallel()
	f := mustFactorizeC(t, randCDense(3, 5, 215))

	g, err := lq.NewCFactorization(f.Factors(), f.Tau())
	require.NoError(t, err)
	requireCMatEqual(t, f.Reconstruct(), g.Reconstruct(), 0)
}

func TestNewCFactorization_Validation(t *testing.T) {
	t.Parallel()
	_, err := lq.NewCFactorization(nil, nil)
	require.ErrorIs(t, err, lq.ErrNilMatrix)

	_, err = lq.NewCFactorization(mat.NewCDense(2, 4, nil), make([]complex128, 3))
	require.ErrorIs(t, err, lq.ErrBadFactors)
}

func TestCClone_Independent(t *testing.T) {
	t.Parallel()
	f := mustFactorizeC(t, randCDense(2, 4, 216))
	g := f.Clone()
	requireCMatEqual(t, f.Reconstruct(), g.Reconstruct(), 0)
}

func TestCSize_Convention(t *testing.T) {
	t.Parallel()
	f := mustFactorizeC(t, randCDense(2, 5, 217))

	for dim, want := range map[int]int{1: 2, 2: 5, 3: 1, 7: 1} {
		got, err := f.Size(dim)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Size(%d)", dim)
	}
	_, err := f.Size(0)
	require.ErrorIs(t, err, lq.ErrOutOfRange)
	_, err = f.Size(-2)
	require.ErrorIs(t, err, lq.ErrOutOfRange)
}

// TestToReal_RoundTrip widens a real record and narrows it back; the two
// ends must describe the same operator.
func TestToReal_RoundTrip(t *testing.T) {
	t.Parallel()
	f := mustFactorize(t, randDense(2, 4, 218))
	cf := f.ToComplex()

	g, err := cf.ToReal()
	require.NoError(t, err)
	requireMatEqual(t, f.Reconstruct(), g.Reconstruct(), 0)
}

// TestToReal_RejectsImaginary: a genuinely complex record cannot narrow.
func TestToReal_RejectsImaginary(t *testing.T) {
	t.Parallel()
	cf := mustFactorizeC(t, randCDense(2, 4, 219))
	_, err := cf.ToReal()
	require.ErrorIs(t, err, lq.ErrNarrowingConversion)
}

// cloneCDense is a test-local deep copy of a complex matrix.
func cloneCDense(a mat.CMatrix) *mat.CDense {
	r, c := a.Dims()
	d := mat.NewCDense(r, c, nil)
	d.Copy(a)
	return d
}

// TestCDet_UnitModulus: the determinant of a unitary operator lies on the
// unit circle.
func TestCDet_UnitModulus(t *testing.T) {
	t.Parallel()
	for _, s := range []struct{ r, c int }{{2, 2}, {2, 5}, {4, 4}, {5, 3}} {
		f := mustFactorizeC(t, randCDense(s.r, s.c, int64(220+s.r*s.c)))
		assert.InDelta(t, 1, cmplx.Abs(f.Q().Det()), defaultTol)
	}
}
