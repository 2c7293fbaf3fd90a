// SPDX-License-Identifier: MIT
// Package validate is the single source of truth for bounds, shape, kind and
// admissibility checks shared by the vector and matrix containers.
//
// Purpose:
//   - Keep container facades minimal by delegating every guard here.
//   - Return sentinels from package numeric, wrapped with the validator name, so call
//     sites can wrap again with their own operation tag and errors.Is still matches.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate only on the error path.
//
// Note:
//   - Composite checks follow a fixed order (row before column, length before
//     admissibility) so the reported error is stable for a given input.
package validate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecsse/numeric"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CheckKind ensures k is one of the supported element kinds.
// Returns ErrInvalidKind otherwise. Complexity: O(1).
func CheckKind(k numeric.Kind) error {
	if !numeric.IsValid(k) {
		return validatorErrorf("CheckKind", fmt.Errorf("kind %d: %w", int(k), numeric.ErrInvalidKind))
	}

	return nil
}

// CheckDims ensures a matrix shape is strictly positive and that rows*cols fits
// in an int; rows are checked first.
//
// Errors:
//   - ErrRowCount when rows <= 0, ErrColCount when cols <= 0.
//   - ErrSizeOverflow when rows*cols would overflow.
//   - All three match ErrInvalidShape.
//
// Complexity: O(1).
func CheckDims(rows, cols int) error {
	if rows <= 0 {
		return validatorErrorf("CheckDims", ErrorWith(numeric.ErrRowCount, "rows=%d", rows))
	}
	if cols <= 0 {
		return validatorErrorf("CheckDims", ErrorWith(numeric.ErrColCount, "cols=%d", cols))
	}
	if rows > math.MaxInt/cols {
		return validatorErrorf("CheckDims", ErrorWith(numeric.ErrSizeOverflow, "rows=%d cols=%d", rows, cols))
	}

	return nil
}

// CheckLinearIndex ensures 0 <= pos < size.
// Returns ErrOutOfRange otherwise. Complexity: O(1).
func CheckLinearIndex(pos, size int) error {
	if pos < 0 || pos >= size {
		return validatorErrorf("CheckLinearIndex", ErrorWith(numeric.ErrOutOfRange, "pos=%d size=%d", pos, size))
	}

	return nil
}

// CheckInsertIndex ensures 0 <= pos <= size (inserting at size appends).
// Returns ErrOutOfRange otherwise. Complexity: O(1).
func CheckInsertIndex(pos, size int) error {
	if pos < 0 || pos > size {
		return validatorErrorf("CheckInsertIndex", ErrorWith(numeric.ErrOutOfRange, "pos=%d size=%d", pos, size))
	}

	return nil
}

// CheckRowCol ensures (row, col) addresses a cell of a rows×cols matrix.
//
// Implementation:
//   - Stage 1: check the row against [0, rows).
//   - Stage 2: check the column against [0, cols).
//
// Errors:
//   - ErrRowOutOfRange or ErrColOutOfRange; both match ErrOutOfRange via errors.Is
//     and carry distinct messages.
//
// Complexity: O(1).
func CheckRowCol(row, col, rows, cols int) error {
	if row < 0 || row >= rows {
		return validatorErrorf("CheckRowCol", ErrorWith(numeric.ErrRowOutOfRange, "row=%d rows=%d", row, rows))
	}
	if col < 0 || col >= cols {
		return validatorErrorf("CheckRowCol", ErrorWith(numeric.ErrColOutOfRange, "col=%d cols=%d", col, cols))
	}

	return nil
}

// CheckEqualShape ensures two matrices share the same rows and cols.
// Returns ErrShapeMismatch otherwise. Complexity: O(1).
func CheckEqualShape(aRows, aCols, bRows, bCols int) error {
	if aRows != bRows || aCols != bCols {
		return validatorErrorf("CheckEqualShape",
			ErrorWith(numeric.ErrShapeMismatch, "%dx%d vs %dx%d", aRows, aCols, bRows, bCols))
	}

	return nil
}

// CheckMatMulShape ensures the inner dimensions of A×B agree (aCols == bRows).
// Returns ErrShapeMismatch otherwise. Complexity: O(1).
func CheckMatMulShape(aCols, bRows int) error {
	if aCols != bRows {
		return validatorErrorf("CheckMatMulShape",
			ErrorWith(numeric.ErrShapeMismatch, "inner dimensions %d vs %d", aCols, bRows))
	}

	return nil
}

// CheckEqualLength ensures two vectors have the same length, whichever is longer.
// Returns ErrLengthMismatch (matches ErrShapeMismatch). Complexity: O(1).
func CheckEqualLength(a, b int) error {
	if a != b {
		return validatorErrorf("CheckEqualLength", ErrorWith(numeric.ErrLengthMismatch, "%d vs %d", a, b))
	}

	return nil
}

// CheckFillLength ensures a bulk fill supplies exactly size values.
// Returns ErrFillSize (matches ErrShapeMismatch). Complexity: O(1).
func CheckFillLength(n, size int) error {
	if n != size {
		return validatorErrorf("CheckFillLength", ErrorWith(numeric.ErrFillSize, "got %d want %d", n, size))
	}

	return nil
}

// CheckAdmissible ensures v is an integer or floating-point Value.
// Returns ErrTypeMismatch otherwise. Complexity: O(1).
func CheckAdmissible(v numeric.Value) error {
	if !v.Admissible() {
		return validatorErrorf("CheckAdmissible", numeric.ErrTypeMismatch)
	}

	return nil
}

// CheckAllAdmissible runs CheckAdmissible over vs and reports the first offender.
// Complexity: O(n), stops at the first inadmissible element.
func CheckAllAdmissible(vs []numeric.Value) error {
	for i, v := range vs {
		if !v.Admissible() {
			return validatorErrorf("CheckAllAdmissible", ErrorWith(numeric.ErrTypeMismatch, "element %d", i))
		}
	}

	return nil
}

// ErrorWith decorates a sentinel with formatted detail, keeping it matchable:
// the result reads "<sentinel>: <detail>".
func ErrorWith(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
