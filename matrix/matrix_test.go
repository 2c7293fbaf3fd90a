// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Matrix construction and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecsse/matrix"
	"github.com/katalvlaran/vecsse/numeric"
)

// TestNewZeroed verifies a fresh matrix is all zeros for every kind and shape.
func TestNewZeroed(t *testing.T) {
	t.Parallel()

	shapes := [][2]int{{1, 1}, {1, 7}, {3, 2}, {4, 4}}
	for _, k := range numeric.Kinds() {
		for _, sh := range shapes {
			k, sh := k, sh
			t.Run(fmt.Sprintf("%s/%dx%d", k, sh[0], sh[1]), func(t *testing.T) {
				m, err := matrix.New(k, sh[0], sh[1])
				require.NoError(t, err)
				require.Equal(t, k, m.Kind())
				r, c := m.Shape()
				require.Equal(t, sh[0], r)
				require.Equal(t, sh[1], c)
				require.Equal(t, sh[0]*sh[1], m.Len())
				for i := 0; i < m.Rows(); i++ {
					for j := 0; j < m.Cols(); j++ {
						v, err := m.At(i, j)
						require.NoError(t, err)
						require.Equal(t, 0.0, v.Float64())
					}
				}
			})
		}
	}
}

func TestNewErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		kind       numeric.Kind
		rows, cols int
		want       error
	}{
		{"invalid kind", numeric.Invalid, 2, 2, matrix.ErrInvalidKind},
		{"unknown kind", numeric.Kind(9), 2, 2, matrix.ErrInvalidKind},
		{"kind before shape", numeric.Invalid, 0, 0, matrix.ErrInvalidKind},
		{"zero rows", numeric.Int32, 0, 2, numeric.ErrRowCount},
		{"negative cols", numeric.Float64, 2, -3, numeric.ErrColCount},
		{"element count overflows", numeric.Int32, math.MaxInt/2 + 1, 4, numeric.ErrSizeOverflow},
		{"element count too large", numeric.Float64, math.MaxInt, 1, numeric.ErrSizeOverflow},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.kind, tc.rows, tc.cols)
			require.Nil(t, m)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := matrix.New(numeric.Int32, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	require.Contains(t, err.Error(), "row count must be greater than zero")

	_, err = matrix.NewFilled(numeric.Int32, math.MaxInt, math.MaxInt, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestAtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, numeric.Int64, 2, 3)
	require.NoError(t, m.Set(1, 2, numeric.Int(42)))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, int64(42), v.Int64())

	tests := []struct {
		name     string
		row, col int
		want     error
	}{
		{"row negative", -1, 0, matrix.ErrRowOutOfRange},
		{"row too large", 2, 0, matrix.ErrRowOutOfRange},
		{"col negative", 0, -1, matrix.ErrColOutOfRange},
		{"col too large", 1, 3, matrix.ErrColOutOfRange},
		{"both bad reports row", 5, 5, matrix.ErrRowOutOfRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.At(tc.row, tc.col)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			err = m.Set(tc.row, tc.col, numeric.Int(1))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSetRejectsNonNumeric verifies inadmissible values fail and leave m unchanged.
func TestSetRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	m := MustInt32(t, 2, 2, 1, 2, 3, 4)
	before := m.Render()

	for _, bad := range []any{"7", nil, true, struct{}{}} {
		v := numeric.ValueOf(bad)
		require.ErrorIs(t, m.Set(0, 0, v), matrix.ErrTypeMismatch)
		require.ErrorIs(t, m.SetIndex(3, v), matrix.ErrTypeMismatch)
	}
	require.ErrorIs(t, m.Fill([]numeric.Value{numeric.Int(9), numeric.Int(9), numeric.ValueOf("x"), numeric.Int(9)}),
		matrix.ErrTypeMismatch)
	require.Equal(t, before, m.Render())
}

func TestSetCoercesToKind(t *testing.T) {
	t.Parallel()

	m := MustMatrix(t, numeric.Int32, 1, 2)
	require.NoError(t, m.Set(0, 0, numeric.Float(2.9)))
	require.NoError(t, m.SetIndex(1, numeric.Float(-2.9)))
	require.Equal(t, "|2 -2|\n", m.Render())

	f := MustMatrix(t, numeric.Float32, 1, 1)
	require.NoError(t, f.Set(0, 0, numeric.Int(3)))
	v, err := f.Index(0)
	require.NoError(t, err)
	require.True(t, v.IsFloat())
	require.Equal(t, 3.0, v.Float64())
}

func TestIndex(t *testing.T) {
	t.Parallel()

	m := MustInt32(t, 2, 3, 1, 2, 3, 4, 5, 6)
	v, err := m.Index(4)
	require.NoError(t, err)
	require.Equal(t, int64(5), v.Int64())

	_, err = m.Index(6)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Index(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.SetIndex(6, numeric.Int(1)), matrix.ErrOutOfRange)
}

// TestFillAtomic checks length validation precedes admissibility and nothing is written.
func TestFillAtomic(t *testing.T) {
	t.Parallel()

	m := MustInt32(t, 2, 2, 1, 2, 3, 4)

	err := m.Fill(numeric.ValuesOf(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrFillSize)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.Contains(t, err.Error(), "size does not match matrix size")

	// wrong length and inadmissible: length wins
	err = m.Fill([]numeric.Value{numeric.ValueOf("x")})
	require.ErrorIs(t, err, matrix.ErrFillSize)

	require.Equal(t, "|1 2|\n|3 4|\n", m.Render())

	require.NoError(t, m.Fill(numeric.ValuesOf(5, 6, 7, 8)))
	require.Equal(t, "|5 6|\n|7 8|\n", m.Render())
}

func TestRender(t *testing.T) {
	t.Parallel()

	m := MustInt32(t, 2, 4, 1, 2, 3, 4, 5, 6, 7, 8)
	require.Equal(t, "|1 2 3 4|\n|5 6 7 8|\n", m.Render())
	require.Equal(t, m.Render(), m.String())
	require.Equal(t, m.Render(), fmt.Sprint(m))

	f := MustMatrix(t, numeric.Float32, 1, 3, 0.1, -2.5, 3)
	require.Equal(t, "|0.1 -2.5 3|\n", f.Render())

	one := MustMatrix(t, numeric.Float64, 1, 1, 1e21)
	require.Equal(t, "|1e+21|\n", one.Render())
}

func TestCloneEqualValues(t *testing.T) {
	t.Parallel()

	m := MustInt32(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Set(0, 0, numeric.Int(99)))
	require.False(t, m.Equal(c))
	v, _ := m.At(0, 0)
	require.Equal(t, int64(1), v.Int64())

	require.False(t, m.Equal(nil))
	require.False(t, m.Equal(MustMatrix(t, numeric.Int64, 2, 2, 1, 2, 3, 4)))
	require.False(t, m.Equal(MustInt32(t, 1, 4, 1, 2, 3, 4)))

	vals := m.Values()
	require.Len(t, vals, 4)
	require.Equal(t, "4", vals[3].String())
}

// TestEqualFloatSpecials checks numeric comparison: -0 == 0 and NaN == NaN.
func TestEqualFloatSpecials(t *testing.T) {
	t.Parallel()

	for _, k := range []numeric.Kind{numeric.Float32, numeric.Float64} {
		k := k
		t.Run(k.String(), func(t *testing.T) {
			a := MustMatrix(t, k, 1, 3, math.Copysign(0, -1), math.NaN(), 1.5)
			b := MustMatrix(t, k, 1, 3, 0, math.NaN(), 1.5)
			require.True(t, a.Equal(b))
			require.True(t, b.Equal(a))

			c := MustMatrix(t, k, 1, 3, 0, 1, 1.5)
			require.False(t, a.Equal(c))
			require.False(t, c.Equal(a))
		})
	}
}

func TestNewFilledErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewFilled(numeric.Int32, 2, 2, numeric.ValuesOf(1, 2))
	require.ErrorIs(t, err, matrix.ErrFillSize)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	_, err = matrix.NewFilled(numeric.Invalid, 1, 1, numeric.ValuesOf(1))
	require.ErrorIs(t, err, matrix.ErrInvalidKind)
}

func TestTransposeReshapeUnsupported(t *testing.T) {
	t.Parallel()

	m := MustInt32(t, 2, 2, 1, 2, 3, 4)
	_, err := m.Transpose()
	require.ErrorIs(t, err, matrix.ErrUnsupportedOperation)
	_, err = m.Reshape(4, 1)
	require.ErrorIs(t, err, matrix.ErrUnsupportedOperation)
	require.Equal(t, "|1 2|\n|3 4|\n", m.Render())
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustMatrix(t, numeric.Float32, 1, 3, 1, 2, 3)
	b := MustMatrix(t, numeric.Float32, 1, 3, 1, 2, 3.00001)
	ok, err := matrix.AllClose(a, b, 1e-4)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = matrix.AllClose(a, b, 1e-7)
	require.NoError(t, err)
	require.False(t, ok)

	// mixed kinds compare in float64; negative tol is normalized
	i := MustMatrix(t, numeric.Int32, 1, 3, 1, 2, 3)
	ok, err = matrix.AllClose(i, a, -matrix.DefaultTolerance)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(a, MustMatrix(t, numeric.Float32, 3, 1), 1)
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
	_, err = matrix.AllClose(nil, a, 1)
	require.ErrorIs(t, err, matrix.ErrTypeMismatch)
	_, err = matrix.AllClose(a, b, nan())
	require.ErrorIs(t, err, matrix.ErrBadTolerance)
}
