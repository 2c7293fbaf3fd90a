// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/vecsse/dispatch"
	"github.com/katalvlaran/vecsse/numeric"
	"github.com/katalvlaran/vecsse/validate"
)

// Operand is the right-hand side of Add and Subtract: a Vector (Of) or a scalar
// broadcast to the receiver's length (Scalar). The zero Operand is rejected.
type Operand struct {
	v      *Vector
	s      numeric.Value
	scalar bool
}

// Of wraps a Vector as an operand. A nil v yields an empty operand.
func Of(v *Vector) Operand { return Operand{v: v} }

// Scalar wraps a value as a broadcast operand.
func Scalar(x numeric.Value) Operand { return Operand{s: x, scalar: true} }

// sameKind checks other is non-nil, of v's kind and of v's length.
func (v *Vector) sameKind(other *Vector) error {
	if other == nil {
		return numeric.ErrTypeMismatch
	}
	if other.kind != v.kind {
		return fmt.Errorf("%s vs %s: %w", v.kind, other.kind, numeric.ErrTypeMismatch)
	}

	return nil
}

// resolve turns op into a buffer of v's kind and length.
func (v *Vector) resolve(op Operand) (numeric.Buffer, error) {
	if op.scalar {
		if err := validate.CheckAdmissible(op.s); err != nil {
			return numeric.Buffer{}, err
		}
		return numeric.Constant(v.kind, v.Len(), op.s)
	}
	if err := v.sameKind(op.v); err != nil {
		return numeric.Buffer{}, err
	}
	if err := validate.CheckEqualLength(v.Len(), op.v.Len()); err != nil {
		return numeric.Buffer{}, err
	}

	return op.v.elems, nil
}

// binary looks up kop for v's kind and runs it against right.
func (v *Vector) binary(kop dispatch.Op, right numeric.Buffer, tag string) (*Vector, error) {
	kern, err := v.table.Lookup(kop, v.kind)
	if err != nil {
		return nil, vectorErrorf(tag, err)
	}
	out, err := kern.Binary(v.elems, right)
	if err != nil {
		return nil, vectorErrorf(tag, err)
	}

	return v.derive(out), nil
}

// Add returns v + op element-wise.
//
// Errors:
//   - ErrTypeMismatch (empty operand, vector of another kind, inadmissible scalar).
//   - ErrLengthMismatch "vector lengths must be the same" (either side longer).
//   - ErrUnsupportedOperation (no kernel for v's kind).
//
// Complexity:
//   - Time O(n), Space O(n).
func (v *Vector) Add(op Operand) (*Vector, error) {
	right, err := v.resolve(op)
	if err != nil {
		return nil, vectorErrorf(opAdd, err)
	}

	return v.binary(dispatch.OpAdd, right, opAdd)
}

// Subtract returns v - op element-wise. Same contract as Add.
func (v *Vector) Subtract(op Operand) (*Vector, error) {
	right, err := v.resolve(op)
	if err != nil {
		return nil, vectorErrorf(opSub, err)
	}

	return v.binary(dispatch.OpSub, right, opSub)
}

// Multiply returns v scaled element-wise by the scalar x.
// Errors: ErrTypeMismatch (inadmissible x), ErrUnsupportedOperation.
func (v *Vector) Multiply(x numeric.Value) (*Vector, error) {
	right, err := v.resolve(Scalar(x))
	if err != nil {
		return nil, vectorErrorf(opMultiply, err)
	}

	return v.binary(dispatch.OpElementwiseMul, right, opMultiply)
}

// Sum returns the sum of all elements in v's kind (integers wrap on overflow;
// an empty vector sums to zero).
// Errors: ErrUnsupportedOperation when no sum kernel is registered for the kind.
func (v *Vector) Sum() (numeric.Value, error) {
	kern, err := v.table.Lookup(dispatch.OpSum, v.kind)
	if err != nil {
		return numeric.Value{}, vectorErrorf(opSum, err)
	}
	s, err := kern.Sum(v.elems)
	if err != nil {
		return numeric.Value{}, vectorErrorf(opSum, err)
	}

	return s, nil
}

// Dot returns Σ v[i]*other[i]: an element-wise multiply followed by a sum.
// Errors: as Add, plus ErrUnsupportedOperation from either kernel.
func (v *Vector) Dot(other *Vector) (numeric.Value, error) {
	right, err := v.resolve(Of(other))
	if err != nil {
		return numeric.Value{}, vectorErrorf(opDot, err)
	}
	prod, err := v.binary(dispatch.OpElementwiseMul, right, opDot)
	if err != nil {
		return numeric.Value{}, err
	}
	s, err := prod.Sum()
	if err != nil {
		return numeric.Value{}, vectorErrorf(opDot, err)
	}

	return s, nil
}

// Concat returns a new vector holding v's elements followed by other's.
// Errors: ErrTypeMismatch for a nil vector or one of another kind.
// Complexity: O(len(v) + len(other)).
func (v *Vector) Concat(other *Vector) (*Vector, error) {
	if err := v.sameKind(other); err != nil {
		return nil, vectorErrorf(opConcat, err)
	}
	out := v.elems.Clone().Appended(other.elems.Values()...)

	return v.derive(out), nil
}
