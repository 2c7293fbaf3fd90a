// SPDX-License-Identifier: MIT

// Package dispatch maps (operation, element kind) pairs to concrete kernels.
//
// Purpose:
//   - Decouple the containers (vector, matrix) from the kernel implementations.
//   - Guarantee that a kernel is never invoked on a buffer of another kind: the
//     right-hand buffer is coerced to the kernel's kind before the call.
//
// Behavior highlights:
//   - A Table is built once and is read-only afterwards; Lookup is safe for
//     concurrent use.
//   - A missing (op, kind) pair is an ErrUnsupportedOperation, never a silent
//     fallback to another kind's kernel.
//   - Default() returns the process-wide table with all twenty kernels registered.
package dispatch

import (
	"fmt"

	"github.com/katalvlaran/vecsse/numeric"
)

// Op identifies a bulk arithmetic operation.
type Op uint8

// Supported operations.
const (
	OpAdd Op = iota + 1
	OpSub
	OpElementwiseMul
	OpMatMul
	OpSum
)

var opNames = map[Op]string{
	OpAdd:            "add",
	OpSub:            "sub",
	OpElementwiseMul: "elementwise_mul",
	OpMatMul:         "matmul",
	OpSum:            "sum",
}

// Ops returns every operation in declaration order.
func Ops() []Op { return []Op{OpAdd, OpSub, OpElementwiseMul, OpMatMul, OpSum} }

// String returns the lower-case operation name.
func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}

	return fmt.Sprintf("op(%d)", uint8(o))
}

// BinaryFunc combines two equal-length buffers of the same kind into a new buffer.
type BinaryFunc func(a, b numeric.Buffer) numeric.Buffer

// MatMulFunc multiplies row-major (m×k)·(k×n) buffers of the same kind.
type MatMulFunc func(a numeric.Buffer, m, k int, b numeric.Buffer, n int) numeric.Buffer

// SumFunc reduces a buffer to a single Value.
type SumFunc func(a numeric.Buffer) numeric.Value

// dispatchErrorf wraps err with an operation tag.
func dispatchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
