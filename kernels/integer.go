// SPDX-License-Identifier: MIT

package kernels

// Integer is the set of integer element types with native wraparound arithmetic.
type Integer interface {
	~int32 | ~int64
}

// Add returns out[i] = a[i] + b[i]. len(b) must be >= len(a).
// Complexity: Time O(n), Space O(n).
func Add[T Integer](a, b []T) []T {
	out := make([]T, len(a))
	b = b[:len(a)]
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}

// Sub returns out[i] = a[i] - b[i]. len(b) must be >= len(a).
// Complexity: Time O(n), Space O(n).
func Sub[T Integer](a, b []T) []T {
	out := make([]T, len(a))
	b = b[:len(a)]
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

// Mul returns out[i] = a[i] * b[i]. len(b) must be >= len(a).
// Complexity: Time O(n), Space O(n).
func Mul[T Integer](a, b []T) []T {
	out := make([]T, len(a))
	b = b[:len(a)]
	for i := range a {
		out[i] = a[i] * b[i]
	}

	return out
}

// MatMul multiplies the row-major (m×k) matrix a by the row-major (k×n) matrix b.
//
// Implementation:
//   - i→k→j loop order with row-major strides; zero a[i,k] entries are skipped.
//
// Returns:
//   - a fresh row-major (m×n) slice.
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func MatMul[T Integer](a []T, m, k int, b []T, n int) []T {
	out := make([]T, m*n)
	var (
		i, p, j          int
		av               T
		rowA, rowB, rowC int
	)
	for i = 0; i < m; i++ {
		rowA = i * k
		rowC = i * n
		for p = 0; p < k; p++ {
			av = a[rowA+p]
			if av == 0 {
				continue // skip zero
			}
			rowB = p * n
			for j = 0; j < n; j++ {
				out[rowC+j] += av * b[rowB+j]
			}
		}
	}

	return out
}

// Sum returns Σ a[i] in the element type; overflow wraps.
// Complexity: Time O(n), Space O(1).
func Sum[T Integer](a []T) T {
	var acc T
	for _, x := range a {
		acc += x
	}

	return acc
}
