// SPDX-License-Identifier: MIT

// Package vector provides a resizable, kind-tagged numeric sequence.
//
// Purpose:
//   - Vector holds elements of one kind (int32, int64, float32, float64) in a flat buffer.
//   - Append / Insert / Set validate every value before mutating; a failed call
//     leaves the vector unchanged.
//   - Add / Subtract / Multiply / Sum / Dot delegate to the kernels resolved through
//     package dispatch and always return new values.
package vector

import (
	"strings"

	"github.com/katalvlaran/vecsse/dispatch"
	"github.com/katalvlaran/vecsse/numeric"
	"github.com/katalvlaran/vecsse/validate"
)

// Vector is a growable sequence of elements of a single kind.
type Vector struct {
	kind  numeric.Kind
	elems numeric.Buffer
	table *dispatch.Table
}

// New creates an empty vector of the given kind, or a pre-sized one with
// WithLength / WithFill.
//
// Errors:
//   - ErrInvalidKind, ErrInvalidShape (negative length), ErrTypeMismatch (bad fill).
//
// Complexity:
//   - Time O(n), Space O(n) for n = WithLength.
func New(kind numeric.Kind, opts ...Option) (*Vector, error) {
	if err := validate.CheckKind(kind); err != nil {
		return nil, vectorErrorf(opNew, err)
	}
	o := gatherOptions(opts...)
	if o.hasFill {
		if err := validate.CheckAdmissible(o.fill); err != nil {
			return nil, vectorErrorf(opNew, err)
		}
	} else {
		o.fill = numeric.Int(0)
	}
	buf, err := numeric.Constant(kind, o.length, o.fill)
	if err != nil {
		return nil, vectorErrorf(opNew, err)
	}

	return &Vector{kind: kind, elems: buf, table: o.table}, nil
}

// FromValues creates a vector of the given kind holding values (converted).
// Errors: ErrInvalidKind, ErrTypeMismatch (first inadmissible value is reported).
func FromValues(kind numeric.Kind, values []numeric.Value, opts ...Option) (*Vector, error) {
	v, err := New(kind, opts...)
	if err != nil {
		return nil, err
	}
	if err = v.Append(values...); err != nil {
		return nil, vectorErrorf(opNew, err)
	}

	return v, nil
}

// Kind returns the element kind.
func (v *Vector) Kind() numeric.Kind { return v.kind }

// Len returns the number of elements.
func (v *Vector) Len() int { return v.elems.Len() }

// At returns the element at pos. Errors: ErrOutOfRange unless 0 <= pos < Len().
func (v *Vector) At(pos int) (numeric.Value, error) {
	if err := validate.CheckLinearIndex(pos, v.Len()); err != nil {
		return numeric.Value{}, vectorErrorf(opAt, err)
	}

	return v.elems.At(pos), nil
}

// Values returns a copy of all elements.
func (v *Vector) Values() []numeric.Value { return v.elems.Values() }

// Clone returns a deep copy with the same kind and options.
func (v *Vector) Clone() *Vector {
	return &Vector{kind: v.kind, elems: v.elems.Clone(), table: v.table}
}

// Set overwrites the element at pos.
// Errors: ErrOutOfRange, then ErrTypeMismatch. Nothing is written on error.
func (v *Vector) Set(pos int, x numeric.Value) error {
	if err := validate.CheckLinearIndex(pos, v.Len()); err != nil {
		return vectorErrorf(opSet, err)
	}
	if err := validate.CheckAdmissible(x); err != nil {
		return vectorErrorf(opSet, err)
	}
	v.elems.Set(pos, x)

	return nil
}

// Append adds xs at the end.
// Errors: ErrTypeMismatch if any value is inadmissible; nothing is appended then.
// Complexity: amortized O(len(xs)).
func (v *Vector) Append(xs ...numeric.Value) error {
	if err := validate.CheckAllAdmissible(xs); err != nil {
		return vectorErrorf(opAppend, err)
	}
	v.elems = v.elems.Appended(xs...)

	return nil
}

// Insert places xs before position index (index == Len() appends).
//
// Errors:
//   - ErrOutOfRange unless 0 <= index <= Len().
//   - ErrTypeMismatch if any value is inadmissible.
//
// Notes:
//   - Atomic: on error the vector is unchanged.
//
// Complexity:
//   - Time O(Len() + len(xs)).
func (v *Vector) Insert(index int, xs ...numeric.Value) error {
	if err := validate.CheckInsertIndex(index, v.Len()); err != nil {
		return vectorErrorf(opInsert, err)
	}
	if err := validate.CheckAllAdmissible(xs); err != nil {
		return vectorErrorf(opInsert, err)
	}
	v.elems = v.elems.Inserted(index, xs...)

	return nil
}

// Render returns "[a b c]" with kind-native formatting.
func (v *Vector) Render() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, n := 0, v.Len(); i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.elems.Format(i))
	}
	b.WriteByte(']')

	return b.String()
}

// String is Render.
func (v *Vector) String() string { return v.Render() }

// derive wraps a kernel output in a new vector sharing v's table.
func (v *Vector) derive(elems numeric.Buffer) *Vector {
	return &Vector{kind: elems.Kind(), elems: elems, table: v.table}
}
