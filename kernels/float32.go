// SPDX-License-Identifier: MIT

package kernels

import (
	"slices"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gorgonia.org/vecf32"
)

// AddFloat32 returns a + b element-wise. vecf32 clobbers its first argument, so a
// is copied into the output first.
func AddFloat32(a, b []float32) []float32 {
	out := slices.Clone(a)
	vecf32.Add(out, b[:len(a)])

	return out
}

// SubFloat32 returns a - b element-wise.
func SubFloat32(a, b []float32) []float32 {
	out := slices.Clone(a)
	vecf32.Sub(out, b[:len(a)])

	return out
}

// MulFloat32 returns a * b element-wise.
func MulFloat32(a, b []float32) []float32 {
	out := slices.Clone(a)
	vecf32.Mul(out, b[:len(a)])

	return out
}

// SumFloat32 returns Σ a[i] (0 for an empty slice).
func SumFloat32(a []float32) float32 { return vecf32.Sum(a) }

// MatMulFloat32 multiplies row-major (m×k)·(k×n) via Sgemm and returns a fresh
// row-major (m×n) slice. m, k, n must be positive.
// Complexity: Time O(m*k*n), Space O(m*n).
func MatMulFloat32(a []float32, m, k int, b []float32, n int) []float32 {
	out := make([]float32, m*n)
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas32.General{Rows: m, Cols: k, Stride: k, Data: a[:m*k]},
		blas32.General{Rows: k, Cols: n, Stride: n, Data: b[:k*n]},
		0,
		blas32.General{Rows: m, Cols: n, Stride: n, Data: out},
	)

	return out
}
