// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/vecsse/numeric"
)

// Kernel is a resolved table entry: one operation bound to one element kind.
// Exactly one of the function fields is set, matching the operation's shape.
type Kernel struct {
	op     Op
	kind   numeric.Kind
	binary BinaryFunc
	matmul MatMulFunc
	sum    SumFunc
}

// Op returns the operation this kernel implements.
func (k Kernel) Op() Op { return k.op }

// Kind returns the element kind this kernel operates on.
func (k Kernel) Kind() numeric.Kind { return k.kind }

// Binary runs an element-wise kernel.
//
// Implementation:
//   - Stage 1: reject a kernel of another shape (ErrUnsupportedOperation).
//   - Stage 2: require a to be of the kernel's kind and b to have the same length.
//   - Stage 3: coerce b to the kernel's kind (left-operand rule) and run.
//
// Errors:
//   - ErrUnsupportedOperation, ErrTypeMismatch (a of a foreign kind),
//     ErrLengthMismatch (len(a) != len(b)).
//
// Complexity:
//   - Time O(n), Space O(n) (plus O(n) when b needs coercion).
func (k Kernel) Binary(a, b numeric.Buffer) (numeric.Buffer, error) {
	tag := "Binary(" + k.op.String() + ")"
	if k.binary == nil {
		return numeric.Buffer{}, dispatchErrorf(tag, numeric.ErrUnsupportedOperation)
	}
	if a.Kind() != k.kind {
		return numeric.Buffer{}, dispatchErrorf(tag,
			fmt.Errorf("left operand is %s, kernel is %s: %w", a.Kind(), k.kind, numeric.ErrTypeMismatch))
	}
	if a.Len() != b.Len() {
		return numeric.Buffer{}, dispatchErrorf(tag, numeric.ErrLengthMismatch)
	}
	rb, err := b.Convert(k.kind)
	if err != nil {
		return numeric.Buffer{}, dispatchErrorf(tag, err)
	}

	return k.binary(a, rb), nil
}

// MatMul runs a matrix-multiply kernel on row-major buffers a (ar×ac) and b (br×bc).
//
// Errors:
//   - ErrUnsupportedOperation for a kernel of another shape.
//   - ErrTypeMismatch when a is not of the kernel's kind.
//   - ErrShapeMismatch when ac != br or a buffer length disagrees with its shape.
//
// Complexity:
//   - Time O(ar*ac*bc), Space O(ar*bc).
func (k Kernel) MatMul(a numeric.Buffer, ar, ac int, b numeric.Buffer, br, bc int) (numeric.Buffer, error) {
	tag := "MatMul(" + k.kind.String() + ")"
	if k.matmul == nil {
		return numeric.Buffer{}, dispatchErrorf(tag, numeric.ErrUnsupportedOperation)
	}
	if a.Kind() != k.kind {
		return numeric.Buffer{}, dispatchErrorf(tag,
			fmt.Errorf("left operand is %s: %w", a.Kind(), numeric.ErrTypeMismatch))
	}
	if ac != br || a.Len() != ar*ac || b.Len() != br*bc {
		return numeric.Buffer{}, dispatchErrorf(tag,
			fmt.Errorf("%dx%d · %dx%d: %w", ar, ac, br, bc, numeric.ErrShapeMismatch))
	}
	rb, err := b.Convert(k.kind)
	if err != nil {
		return numeric.Buffer{}, dispatchErrorf(tag, err)
	}

	return k.matmul(a, ar, ac, rb, bc), nil
}

// Sum runs a reduction kernel over a.
// Errors: ErrUnsupportedOperation for a kernel of another shape, ErrTypeMismatch
// when a is not of the kernel's kind.
func (k Kernel) Sum(a numeric.Buffer) (numeric.Value, error) {
	tag := "Sum(" + k.kind.String() + ")"
	if k.sum == nil {
		return numeric.Value{}, dispatchErrorf(tag, numeric.ErrUnsupportedOperation)
	}
	if a.Kind() != k.kind {
		return numeric.Value{}, dispatchErrorf(tag, numeric.ErrTypeMismatch)
	}

	return k.sum(a), nil
}
