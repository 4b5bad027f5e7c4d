// Package zlq implements unblocked complex LQ kernels: factor a general
// matrix into packed Householder reflectors, expand the reflectors into an
// explicit unitary matrix, and apply the implicit operator to a buffer in
// place from either side.
//
// The routines mirror the reference unblocked LAPACK algorithms over
// cblas128 primitives. Packed storage convention: for a factored m×n matrix,
// row i of the first min(m,n) rows holds L(i, 0:i) followed by the
// conjugated reflector tail, tau[i] holds the scale coefficient, and the
// implicit operator is Q = H(k-1)ᴴ · … · H(0)ᴴ with
// H(i) = I - tau[i]·v·vᴴ.
//
// Callers validate shapes; these kernels panic on contract violations.
package zlq
