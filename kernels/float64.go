// SPDX-License-Identifier: MIT

package kernels

import (
	"slices"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gorgonia.org/vecf64"
)

// AddFloat64 returns a + b element-wise.
func AddFloat64(a, b []float64) []float64 {
	out := slices.Clone(a)
	vecf64.Add(out, b[:len(a)])

	return out
}

// SubFloat64 returns a - b element-wise.
func SubFloat64(a, b []float64) []float64 {
	out := slices.Clone(a)
	vecf64.Sub(out, b[:len(a)])

	return out
}

// MulFloat64 returns a * b element-wise.
func MulFloat64(a, b []float64) []float64 {
	out := slices.Clone(a)
	vecf64.Mul(out, b[:len(a)])

	return out
}

// SumFloat64 returns Σ a[i] (0 for an empty slice).
func SumFloat64(a []float64) float64 { return floats.Sum(a) }

// MatMulFloat64 multiplies row-major (m×k)·(k×n) via Dgemm.
//
// Implementation:
//   - Stage 1: allocate the zeroed (m×n) output.
//   - Stage 2: C = 1·A·B + 0·C with strides equal to the column counts.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func MatMulFloat64(a []float64, m, k int, b []float64, n int) []float64 {
	out := make([]float64, m*n)
	blas64.Implementation().Dgemm(blas.NoTrans, blas.NoTrans, m, n, k,
		1, a[:m*k], k,
		b[:k*n], n,
		0, out, n)

	return out
}
