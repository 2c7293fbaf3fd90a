// SPDX-License-Identifier: MIT

// Package kernels - width-specific arithmetic kernels over flat, contiguous slices.
//
// Purpose:
//   - Element-wise add / subtract / multiply for equal-length slices.
//   - Row-major matrix multiplication out[i*n+j] = Σ_k a[i*k'+k]·b[k*n+j].
//   - Sum reduction.
//
// Implementation:
//   - Integer kinds (int32, int64) use generic loops with native wraparound.
//   - float32 element-wise and sum go through gorgonia.org/vecf32; matmul through
//     gonum blas32 (Sgemm).
//   - float64 element-wise goes through gorgonia.org/vecf64, sum through gonum floats,
//     matmul through gonum blas64 (Dgemm).
//
// Contract:
//   - Kernels never retain or mutate their inputs; every result is a fresh slice.
//   - Callers (package dispatch, via the containers) have already validated lengths
//     and shapes; kernels do not re-check them.
//
// Determinism:
//   - Integer kernels are exact (modulo wraparound). Float kernels use a fixed
//     accumulation order per implementation; results may differ from a naive loop in
//     the last ulp.
package kernels
