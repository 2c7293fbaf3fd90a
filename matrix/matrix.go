// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Validate every write (bounds, admissibility) before mutating.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/Index/SetIndex: O(1); Fill/Clone/Render: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/vecsse/dispatch"
	"github.com/katalvlaran/vecsse/numeric"
	"github.com/katalvlaran/vecsse/validate"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "|"
	_fmtRowClose = "|\n"
	_fmtSep      = " "
)

// Matrix is a fixed-shape, kind-tagged, row-major matrix.
//   - kind is fixed at construction.
//   - rows, cols are > 0 and never change.
//   - data holds rows*cols elements of kind (offset = i*cols + j).
type Matrix struct {
	kind       numeric.Kind
	rows, cols int
	data       numeric.Buffer
	table      *dispatch.Table
}

var _ fmt.Stringer = (*Matrix)(nil)

// New creates a rows×cols zero matrix of the given kind.
//
// Implementation:
//   - Stage 1: validate kind, then rows, then cols.
//   - Stage 2: allocate a zero-filled buffer of rows*cols elements.
//
// Errors:
//   - ErrInvalidKind for an unsupported kind.
//   - ErrInvalidShape when rows <= 0 or cols <= 0 (rows reported first).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(kind numeric.Kind, rows, cols int, opts ...Option) (*Matrix, error) {
	if err := validate.CheckKind(kind); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	if err := validate.CheckDims(rows, cols); err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	buf, err := numeric.NewBuffer(kind, rows*cols)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}
	o := gatherOptions(opts...)

	return &Matrix{kind: kind, rows: rows, cols: cols, data: buf, table: o.table}, nil
}

// NewFilled creates a rows×cols matrix of the given kind and fills it row-major
// from values. See New and Fill for errors.
func NewFilled(kind numeric.Kind, rows, cols int, values []numeric.Value, opts ...Option) (*Matrix, error) {
	m, err := New(kind, rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if err = m.Fill(values); err != nil {
		return nil, err
	}

	return m, nil
}

// Kind returns the element kind.
func (m *Matrix) Kind() numeric.Kind { return m.kind }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns rows*cols.
func (m *Matrix) Len() int { return m.rows * m.cols }

// At returns the element at (row, col).
//
// Errors:
//   - ErrRowOutOfRange, then ErrColOutOfRange (both match ErrOutOfRange).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) At(row, col int) (numeric.Value, error) {
	if err := validate.CheckRowCol(row, col, m.rows, m.cols); err != nil {
		return numeric.Value{}, matrixErrorf(opAt, err)
	}

	return m.data.At(row*m.cols + col), nil
}

// Set stores v at (row, col), converted to the matrix kind.
//
// Implementation:
//   - Stage 1: bounds (row, then column).
//   - Stage 2: admissibility of v.
//   - Stage 3: write into the flat buffer.
//
// Errors:
//   - ErrRowOutOfRange / ErrColOutOfRange, ErrTypeMismatch. Nothing is written on error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix) Set(row, col int, v numeric.Value) error {
	if err := validate.CheckRowCol(row, col, m.rows, m.cols); err != nil {
		return matrixErrorf(opSet, err)
	}
	if err := validate.CheckAdmissible(v); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.data.Set(row*m.cols+col, v)

	return nil
}

// Index returns the element at row-major position pos.
// Errors: ErrOutOfRange unless 0 <= pos < rows*cols.
func (m *Matrix) Index(pos int) (numeric.Value, error) {
	if err := validate.CheckLinearIndex(pos, m.Len()); err != nil {
		return numeric.Value{}, matrixErrorf(opIndex, err)
	}

	return m.data.At(pos), nil
}

// SetIndex stores v at row-major position pos.
// Errors: ErrOutOfRange, then ErrTypeMismatch. Nothing is written on error.
func (m *Matrix) SetIndex(pos int, v numeric.Value) error {
	if err := validate.CheckLinearIndex(pos, m.Len()); err != nil {
		return matrixErrorf(opSetIndex, err)
	}
	if err := validate.CheckAdmissible(v); err != nil {
		return matrixErrorf(opSetIndex, err)
	}
	m.data.Set(pos, v)

	return nil
}

// Fill overwrites every element, row-major, from values.
//
// Implementation:
//   - Stage 1: len(values) must equal rows*cols.
//   - Stage 2: every value must be admissible.
//   - Stage 3: write all values (converted to the matrix kind).
//
// Errors:
//   - ErrFillSize (matches ErrShapeMismatch), ErrTypeMismatch.
//
// Notes:
//   - Atomic: on any error the matrix is unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Matrix) Fill(values []numeric.Value) error {
	if err := validate.CheckFillLength(len(values), m.Len()); err != nil {
		return matrixErrorf(opFill, err)
	}
	if err := validate.CheckAllAdmissible(values); err != nil {
		return matrixErrorf(opFill, err)
	}
	m.data.Fill(values)

	return nil
}

// Values returns a row-major copy of all elements.
func (m *Matrix) Values() []numeric.Value { return m.data.Values() }

// Clone returns a deep copy with the same kind, shape and options.
// Complexity: O(r*c).
func (m *Matrix) Clone() *Matrix {
	return &Matrix{kind: m.kind, rows: m.rows, cols: m.cols, data: m.data.Clone(), table: m.table}
}

// Equal reports whether other has the same kind, shape and element values.
// Elements compare numerically (-0 equals 0); NaN equals NaN.
// A nil other is never equal.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}

	return m.data.Equal(other.data)
}

// Render returns the textual form: one line per row, "|" + values joined by a
// single space + "|", each line terminated by "\n".
//
// Example: an Int32 2×4 matrix [1..8] renders as "|1 2 3 4|\n|5 6 7 8|\n".
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Matrix) Render() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.data.Format(base + j))
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// String is Render.
func (m *Matrix) String() string { return m.Render() }

// derive wraps a kernel output buffer in a new Matrix sharing the receiver's options.
func (m *Matrix) derive(rows, cols int, data numeric.Buffer) *Matrix {
	return &Matrix{kind: data.Kind(), rows: rows, cols: cols, data: data, table: m.table}
}
