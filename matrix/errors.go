// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// The engine-wide sentinels live in package numeric; this file re-exports the
// ones the matrix surface returns so callers can match them with errors.Is without
// importing numeric, and adds the few sentinels that only matrix produces.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecsse/numeric"
)

// ERROR PRIORITY (documented, enforced in tests):
// kind -> shape -> index -> fill length -> admissibility -> operand shape -> dispatch.

var (
	// ErrInvalidKind is returned by New for an unsupported element kind.
	ErrInvalidKind = numeric.ErrInvalidKind

	// ErrInvalidShape is returned by New for non-positive rows or cols.
	ErrInvalidShape = numeric.ErrInvalidShape

	// ErrOutOfRange is returned by At/Set/Index/SetIndex for invalid positions.
	// Row and column violations are refined by ErrRowOutOfRange / ErrColOutOfRange.
	ErrOutOfRange    = numeric.ErrOutOfRange
	ErrRowOutOfRange = numeric.ErrRowOutOfRange
	ErrColOutOfRange = numeric.ErrColOutOfRange

	// ErrShapeMismatch is returned when operand shapes disagree or Fill has the
	// wrong length (refined by ErrFillSize).
	ErrShapeMismatch = numeric.ErrShapeMismatch
	ErrFillSize      = numeric.ErrFillSize

	// ErrTypeMismatch is returned for inadmissible values and empty operands.
	ErrTypeMismatch = numeric.ErrTypeMismatch

	// ErrUnsupportedOperation is returned by Transpose, Reshape and on a
	// dispatch-table miss.
	ErrUnsupportedOperation = numeric.ErrUnsupportedOperation
)

// ErrBadTolerance signals a NaN or ±Inf tolerance passed to AllClose.
var ErrBadTolerance = errors.New("vecsse: tolerance must be finite")

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opAt        = "At"
	opSet       = "Set"
	opIndex     = "Index"
	opSetIndex  = "SetIndex"
	opFill      = "Fill"
	opAdd       = "Add"
	opSub       = "Subtract"
	opMul       = "Multiply"
	opHadamard  = "Hadamard"
	opTranspose = "Transpose"
	opReshape   = "Reshape"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix.%s: %w", tag, err)
}
