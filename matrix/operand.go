// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/vecsse/numeric"

// Operand is the right-hand side of Add, Subtract and Multiply: either a Matrix
// (Of) or a scalar broadcast to the receiver's shape (Scalar). The zero Operand is
// empty and rejected with ErrTypeMismatch.
type Operand struct {
	m      *Matrix
	s      numeric.Value
	scalar bool
}

// Of wraps a Matrix as an operand. A nil m yields an empty operand.
func Of(m *Matrix) Operand { return Operand{m: m} }

// Scalar wraps a value as a broadcast operand.
func Scalar(v numeric.Value) Operand { return Operand{s: v, scalar: true} }

// IsScalar reports whether op is a scalar operand.
func (op Operand) IsScalar() bool { return op.scalar }
