// SPDX-License-Identifier: MIT
// Package numeric: sentinel error set (unified, consistent).
// This file defines ONLY the sentinel errors shared by every package of the
// engine. Validators, the dispatch table and the containers return these
// sentinels (optionally wrapped with an operation tag) and tests MUST match
// them via errors.Is. No public operation panics on user-triggered conditions.

package numeric

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "vecsse: ..." so engine failures are easy to grep
// in logs. Refined sentinels (row/column bounds, vector lengths, fill size) wrap
// their parent category, so errors.Is matches both the refined and the parent one.
//
// ERROR PRIORITY (documented, enforced in tests):
// kind -> shape -> index -> admissibility -> operand shape -> dispatch miss.

var (
	// ErrInvalidKind signals an element kind outside the supported four.
	ErrInvalidKind = errors.New("vecsse: invalid element kind")

	// ErrInvalidShape signals a non-positive row or column count.
	ErrInvalidShape = errors.New("vecsse: invalid shape")

	// ErrOutOfRange signals a linear, row or column index outside valid bounds.
	ErrOutOfRange = errors.New("vecsse: index out of bounds")

	// ErrShapeMismatch signals operands whose shapes or lengths disagree.
	ErrShapeMismatch = errors.New("vecsse: shape mismatch")

	// ErrTypeMismatch signals an inadmissible element or operand.
	ErrTypeMismatch = errors.New("vecsse: expected integer or floating-point value")

	// ErrUnsupportedOperation signals an unimplemented operation (transpose, reshape)
	// or a dispatch-table miss for an (operation, kind) pair.
	ErrUnsupportedOperation = errors.New("vecsse: unsupported operation")
)

// Refined sentinels. Each one wraps its category with %w.
var (
	// ErrRowOutOfRange reports a row index violation (matches ErrOutOfRange).
	ErrRowOutOfRange = fmt.Errorf("row index out of bounds: %w", ErrOutOfRange)

	// ErrColOutOfRange reports a column index violation (matches ErrOutOfRange).
	ErrColOutOfRange = fmt.Errorf("column index out of bounds: %w", ErrOutOfRange)

	// ErrLengthMismatch reports vectors of different lengths (matches ErrShapeMismatch).
	ErrLengthMismatch = fmt.Errorf("vector lengths must be the same: %w", ErrShapeMismatch)

	// ErrFillSize reports a bulk fill whose length differs from rows*cols
	// (matches ErrShapeMismatch and ErrInvalidShape).
	ErrFillSize = fmt.Errorf("size does not match matrix size: %w: %w", ErrShapeMismatch, ErrInvalidShape)

	// ErrRowCount reports a non-positive row count (matches ErrInvalidShape).
	ErrRowCount = fmt.Errorf("row count must be greater than zero: %w", ErrInvalidShape)

	// ErrColCount reports a non-positive column count (matches ErrInvalidShape).
	ErrColCount = fmt.Errorf("column count must be greater than zero: %w", ErrInvalidShape)

	// ErrSizeOverflow reports an element count that overflows int or exceeds the
	// largest buffer the engine allocates (matches ErrInvalidShape).
	ErrSizeOverflow = fmt.Errorf("element count is too large: %w", ErrInvalidShape)
)
