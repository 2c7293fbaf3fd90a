// SPDX-License-Identifier: MIT
// Package matrix: arithmetic on Matrix values.
//
// Purpose:
//   - Element-wise Add/Subtract against a same-shape Matrix or a broadcast scalar.
//   - Multiply: scalar broadcast (element-wise) or matrix product.
//   - Hadamard: element-wise product of same-shape matrices.
//   - Explicitly unsupported Transpose/Reshape.
//
// Notes:
//   - All validation happens before the kernel runs; a failed call has no effect.
//   - The result always has the receiver's kind and is freshly allocated.

package matrix

import (
	"github.com/katalvlaran/vecsse/dispatch"
	"github.com/katalvlaran/vecsse/numeric"
	"github.com/katalvlaran/vecsse/validate"
)

// broadcast resolves an element-wise right operand into a buffer of m's shape.
//
// Implementation:
//   - Scalar: admissibility, then a constant buffer of the receiver's kind.
//   - Matrix: shape equality; the buffer is used as-is (coerced later by dispatch).
//   - Empty: ErrTypeMismatch.
//
// Complexity:
//   - Time O(r*c) for a scalar, O(1) for a matrix.
func (m *Matrix) broadcast(op Operand) (numeric.Buffer, error) {
	switch {
	case op.scalar:
		if err := validate.CheckAdmissible(op.s); err != nil {
			return numeric.Buffer{}, err
		}
		return numeric.Constant(m.kind, m.Len(), op.s)
	case op.m != nil:
		if err := validate.CheckEqualShape(m.rows, m.cols, op.m.rows, op.m.cols); err != nil {
			return numeric.Buffer{}, err
		}
		return op.m.data, nil
	default:
		return numeric.Buffer{}, numeric.ErrTypeMismatch
	}
}

// elementwise runs an element-wise kernel for op against the resolved operand.
func (m *Matrix) elementwise(kop dispatch.Op, rhs Operand, tag string) (*Matrix, error) {
	right, err := m.broadcast(rhs)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	kern, err := m.table.Lookup(kop, m.kind)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := kern.Binary(m.data, right)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return m.derive(m.rows, m.cols, out), nil
}

// Add returns m + op element-wise.
//
// Implementation:
//   - Stage 1: resolve op (same-shape Matrix, or scalar broadcast to m's shape).
//   - Stage 2: look up the add kernel for m's kind and run it.
//
// Inputs:
//   - op: Of(other) with other.Shape() == m.Shape(), or Scalar(v).
//
// Returns:
//   - *Matrix: new result with m's kind and shape.
//
// Errors:
//   - ErrShapeMismatch (shapes differ, either side larger).
//   - ErrTypeMismatch (empty operand or inadmissible scalar).
//   - ErrUnsupportedOperation (no kernel for m's kind).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Add(op Operand) (*Matrix, error) {
	return m.elementwise(dispatch.OpAdd, op, opAdd)
}

// Subtract returns m - op element-wise. Same contract as Add.
func (m *Matrix) Subtract(op Operand) (*Matrix, error) {
	return m.elementwise(dispatch.OpSub, op, opSub)
}

// Multiply returns m × op.
//
// Implementation:
//   - Scalar: broadcast to m's shape and multiply element-wise.
//   - Matrix: require m.Cols() == other.Rows() and run the matmul kernel for m's
//     kind; other's values are converted to m's kind first.
//
// Returns:
//   - *Matrix: (m.Rows() × other.Cols()) for a matrix operand, m's shape for a
//     scalar; always m's kind.
//
// Errors:
//   - ErrShapeMismatch (inner dimensions differ).
//   - ErrTypeMismatch (empty operand or inadmissible scalar).
//   - ErrUnsupportedOperation (no kernel for m's kind).
//
// Complexity:
//   - Time O(r*n*c) for a product, O(r*c) for a scalar.
func (m *Matrix) Multiply(op Operand) (*Matrix, error) {
	if op.scalar {
		return m.elementwise(dispatch.OpElementwiseMul, op, opMul)
	}
	if op.m == nil {
		return nil, matrixErrorf(opMul, numeric.ErrTypeMismatch)
	}
	other := op.m
	if err := validate.CheckMatMulShape(m.cols, other.rows); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	kern, err := m.table.Lookup(dispatch.OpMatMul, m.kind)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := kern.MatMul(m.data, m.rows, m.cols, other.data, other.rows, other.cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return m.derive(m.rows, other.cols, out), nil
}

// Hadamard returns the element-wise product m ∘ other.
// Hadamard is not matrix multiplication; use Multiply(Of(other)) for m × other.
//
// Errors:
//   - ErrShapeMismatch (shapes differ).
//   - ErrTypeMismatch (nil other).
//   - ErrUnsupportedOperation (no kernel for m's kind).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix) Hadamard(other *Matrix) (*Matrix, error) {
	return m.elementwise(dispatch.OpElementwiseMul, Of(other), opHadamard)
}

// Transpose is not supported; it always returns ErrUnsupportedOperation.
func (m *Matrix) Transpose() (*Matrix, error) {
	return nil, matrixErrorf(opTranspose, numeric.ErrUnsupportedOperation)
}

// Reshape is not supported; it always returns ErrUnsupportedOperation.
func (m *Matrix) Reshape(rows, cols int) (*Matrix, error) {
	return nil, matrixErrorf(opReshape, numeric.ErrUnsupportedOperation)
}
