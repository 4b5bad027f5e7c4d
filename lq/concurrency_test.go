// SPDX-License-Identifier: MIT
// Package lq_test verifies the documented read-only accessor subset is
// safe to call from multiple goroutines on a quiescent record. The apply
// path (multiplication, Materialize, solves) is excluded on purpose: those
// scribble temporarily on the shared packed buffer and carry a documented
// no-concurrency contract.

package lq_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

func TestConcurrentReadAccessors(t *testing.T) {
	t.Parallel()
	f := mustFactorize(t, randDense(3, 6, 311))

	wantL := f.L()
	wantFactors := f.Factors()
	wantTau := f.Tau()
	wantDet := f.Q().Det()

	const readers = 16
	var g errgroup.Group
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				m, n := f.Dims()
				if m != 3 || n != 6 {
					return fmt.Errorf("Dims drifted")
				}
				if d, err := f.Size(2); err != nil || d != 6 {
					return fmt.Errorf("Size drifted")
				}
				if !mat.Equal(wantL, f.L()) {
					return fmt.Errorf("L drifted")
				}
				if !mat.Equal(wantFactors, f.Factors()) {
					return fmt.Errorf("Factors drifted")
				}
				for k, v := range f.Tau() {
					if v != wantTau[k] {
						return fmt.Errorf("Tau drifted")
					}
				}
				if f.Q().Det() != wantDet {
					return fmt.Errorf("Det drifted")
				}
				if c := f.Clone(); !mat.Equal(wantFactors, c.Factors()) {
					return fmt.Errorf("Clone drifted")
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

// TestConcurrentComplexReadAccessors pins the same subset on the complex
// record, including the widening conversion.
func TestConcurrentComplexReadAccessors(t *testing.T) {
	t.Parallel()
	rf := mustFactorize(t, randDense(2, 5, 312))
	f := rf.ToComplex()
	wantTau := f.Tau()

	const readers = 8
	var g errgroup.Group
	for r := 0; r < readers; r++ {
		g.Go(func() error {
			for i := 0; i < 50; i++ {
				if m, n := f.Dims(); m != 2 || n != 5 {
					return fmt.Errorf("Dims drifted")
				}
				if cf := rf.ToComplex(); len(cf.Tau()) != len(wantTau) {
					return fmt.Errorf("ToComplex drifted")
				}
				for k, v := range f.Tau() {
					if v != wantTau[k] {
						return fmt.Errorf("Tau drifted")
					}
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
