// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// Re-exports the engine sentinels returned by the vector surface; match with errors.Is.

package vector

import (
	"fmt"

	"github.com/katalvlaran/vecsse/numeric"
)

var (
	// ErrInvalidKind is returned by New/FromValues for an unsupported element kind.
	ErrInvalidKind = numeric.ErrInvalidKind

	// ErrInvalidShape is returned for a negative WithLength.
	ErrInvalidShape = numeric.ErrInvalidShape

	// ErrOutOfRange is returned by At/Set/Insert for invalid positions.
	ErrOutOfRange = numeric.ErrOutOfRange

	// ErrShapeMismatch / ErrLengthMismatch are returned when vector lengths differ.
	ErrShapeMismatch  = numeric.ErrShapeMismatch
	ErrLengthMismatch = numeric.ErrLengthMismatch

	// ErrTypeMismatch is returned for inadmissible values, empty operands and
	// vectors of another kind.
	ErrTypeMismatch = numeric.ErrTypeMismatch

	// ErrUnsupportedOperation is returned on a dispatch-table miss.
	ErrUnsupportedOperation = numeric.ErrUnsupportedOperation
)

// Operation name constants for unified error wrapping.
const (
	opNew      = "New"
	opAt       = "At"
	opSet      = "Set"
	opAppend   = "Append"
	opInsert   = "Insert"
	opAdd      = "Add"
	opSub      = "Subtract"
	opMultiply = "Multiply"
	opSum      = "Sum"
	opConcat   = "Concat"
	opDot      = "Dot"
)

// vectorErrorf wraps err with an operation tag, preserving it for errors.Is.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("vector.%s: %w", tag, err)
}
