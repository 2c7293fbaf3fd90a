// SPDX-License-Identifier: MIT

package matrix

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/katalvlaran/vecsse/numeric"
	"github.com/katalvlaran/vecsse/validate"
)

// AllClose checks element-wise |a-b| ≤ tol for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil (ErrTypeMismatch) with identical shapes (ErrShapeMismatch).
//   - tol is treated as |tol|; NaN/±Inf is rejected with ErrBadTolerance.
//   - Kinds may differ; two Float32 matrices are compared in float32 arithmetic,
//     anything else in float64.
//   - NaN is never close to anything.
func AllClose(a, b *Matrix, tol float64) (bool, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return false, matrixErrorf(opAllClose, ErrBadTolerance)
	}
	if tol < 0 {
		tol = -tol
	}
	if a == nil || b == nil {
		return false, matrixErrorf(opAllClose, numeric.ErrTypeMismatch)
	}
	if err := validate.CheckEqualShape(a.rows, a.cols, b.rows, b.cols); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	// float32 fast-path: flat slices, float32 tolerance.
	if a.kind == numeric.Float32 && b.kind == numeric.Float32 {
		x, y := numeric.Data[float32](a.data), numeric.Data[float32](b.data)
		t := float32(tol)
		for i := range x {
			if !(math32.Abs(x[i]-y[i]) <= t) {
				return false, nil // early-exit on first violation
			}
		}
		return true, nil
	}

	var diff float64
	for i, n := 0, a.Len(); i < n; i++ {
		diff = math.Abs(a.data.At(i).Float64() - b.data.At(i).Float64())
		if !(diff <= tol) {
			return false, nil
		}
	}

	return true, nil
}
