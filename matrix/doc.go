// SPDX-License-Identifier: MIT

// Package matrix provides a fixed-shape, kind-tagged, row-major numeric matrix.
//
// The matrix package provides:
//
//   - Matrix: rows×cols elements of one kind (int32, int64, float32, float64) in a
//     flat row-major buffer, zero-initialised at construction.
//   - Safe accessors (At/Set, Index/SetIndex, Fill) that validate bounds and reject
//     non-numeric values before any mutation.
//   - Arithmetic (Add, Subtract, Multiply, Hadamard) against another Matrix or a scalar. Every
//     operation allocates a new result of the receiver's kind; operands are never
//     mutated. Bulk work is delegated to the kernels resolved through package
//     dispatch.
//   - Render/String in the "|a b c|" row format.
//
// Cross-kind operands: the left (receiver) kind wins. The right operand's values
// are converted to the receiver's kind before the kernel runs, so an Int32 matrix
// times a Float32 [1.9, 2.3] column multiplies by [1, 2].
//
// See the examples in this package for usage patterns.
package matrix
