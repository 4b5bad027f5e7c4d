// SPDX-License-Identifier: MIT
// Package lq: textual rendering of factorization records.
// Both records print as two labeled blocks, the L factor and the
// materialized Q factor. Rendering expands Q, so String is a display path,
// not a cheap accessor.

package lq

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// String renders the record as its two factors.
func (f *Factorization) String() string {
	var sb strings.Builder
	sb.WriteString("L factor:\n")
	fmt.Fprintf(&sb, "%v\n", mat.Formatted(f.L(), mat.Squeeze()))
	sb.WriteString("Q factor:\n")
	fmt.Fprintf(&sb, "%v", mat.Formatted(f.Q().Materialize(), mat.Squeeze()))
	return sb.String()
}

// String renders the record as its two factors.
func (f *CFactorization) String() string {
	var sb strings.Builder
	sb.WriteString("L factor:\n")
	writeCMatrix(&sb, f.L())
	sb.WriteString("Q factor:\n")
	writeCMatrix(&sb, f.Q().Materialize())
	return strings.TrimRight(sb.String(), "\n")
}

// writeCMatrix renders a complex matrix row per line with aligned columns.
func writeCMatrix(sb *strings.Builder, a *mat.CDense) {
	r, c := a.Dims()
	cells := make([][]string, r)
	widths := make([]int, c)
	for i := 0; i < r; i++ {
		cells[i] = make([]string, c)
		for j := 0; j < c; j++ {
			s := fmt.Sprintf("%.4g", a.At(i, j))
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}
	for i := 0; i < r; i++ {
		left, right := "⎢", "⎥"
		switch {
		case r == 1:
			left, right = "[", "]"
		case i == 0:
			left, right = "⎡", "⎤"
		case i == r-1:
			left, right = "⎣", "⎦"
		}
		sb.WriteString(left)
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString("  ")
			}
			fmt.Fprintf(sb, "%*s", widths[j], cells[i][j])
		}
		sb.WriteString(right)
		sb.WriteByte('\n')
	}
}
