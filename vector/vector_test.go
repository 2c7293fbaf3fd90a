// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for Vector construction, mutation and arithmetic.
package vector_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecsse/dispatch"
	"github.com/katalvlaran/vecsse/numeric"
	"github.com/katalvlaran/vecsse/vector"
)

// mustVector builds a vector of kind k from Go numbers or fails the test.
func mustVector[T numeric.Number](t testing.TB, k numeric.Kind, xs ...T) *vector.Vector {
	t.Helper()
	v, err := vector.FromValues(k, numeric.ValuesOf(xs...))
	require.NoError(t, err)

	return v
}

// floats extracts every element as float64.
func floats(v *vector.Vector) []float64 {
	vals := v.Values()
	out := make([]float64, len(vals))
	for i, x := range vals {
		out[i] = x.Float64()
	}

	return out
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, k := range numeric.Kinds() {
		v, err := vector.New(k)
		require.NoError(t, err)
		require.Equal(t, k, v.Kind())
		require.Equal(t, 0, v.Len())
		require.Equal(t, "[]", v.Render())
	}

	v, err := vector.New(numeric.Int64, vector.WithLength(3), vector.WithFill(numeric.Float(7.8)))
	require.NoError(t, err)
	require.Equal(t, "[7 7 7]", v.Render())

	z, err := vector.New(numeric.Float32, vector.WithLength(2))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, floats(z))

	_, err = vector.New(numeric.Invalid)
	require.ErrorIs(t, err, vector.ErrInvalidKind)
	_, err = vector.New(numeric.Int32, vector.WithLength(-1))
	require.ErrorIs(t, err, vector.ErrInvalidShape)
	_, err = vector.New(numeric.Int32, vector.WithLength(2), vector.WithFill(numeric.ValueOf("x")))
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
}

func TestFromValues(t *testing.T) {
	t.Parallel()

	v := mustVector(t, numeric.Float64, 1.5, 2.5)
	require.Equal(t, "[1.5 2.5]", v.String())

	_, err := vector.FromValues(numeric.Int32, []numeric.Value{numeric.Int(1), numeric.ValueOf(true)})
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
}

func TestAtSet(t *testing.T) {
	t.Parallel()

	v := mustVector(t, numeric.Int32, 1, 2, 3)
	x, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, int64(3), x.Int64())

	require.NoError(t, v.Set(0, numeric.Float(9.9)))
	require.Equal(t, "[9 2 3]", v.Render())

	_, err = v.At(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	require.ErrorIs(t, v.Set(3, numeric.Int(1)), vector.ErrOutOfRange)
	require.ErrorIs(t, v.Set(1, numeric.ValueOf("x")), vector.ErrTypeMismatch)
	require.Equal(t, "[9 2 3]", v.Render())
}

// TestInsertRejectsNonNumeric verifies inadmissible values fail and leave v unchanged.
func TestInsertRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	v := mustVector(t, numeric.Float32, 1, 2)
	for _, bad := range []any{"3", nil, false, []float32{1}} {
		require.ErrorIs(t, v.Append(numeric.ValueOf(bad)), vector.ErrTypeMismatch)
		require.ErrorIs(t, v.Insert(1, numeric.Int(5), numeric.ValueOf(bad)), vector.ErrTypeMismatch)
	}
	require.Equal(t, 2, v.Len())
	require.Equal(t, "[1 2]", v.Render())
}

func TestAppendInsert(t *testing.T) {
	t.Parallel()

	v := mustVector(t, numeric.Int64, 1, 4)
	require.NoError(t, v.Insert(1, numeric.Int(2), numeric.Int(3)))
	require.NoError(t, v.Append(numeric.Int(5)))
	require.NoError(t, v.Insert(0, numeric.Int(0)))
	require.NoError(t, v.Insert(v.Len(), numeric.Int(6)))
	require.Equal(t, "[0 1 2 3 4 5 6]", v.Render())

	require.ErrorIs(t, v.Insert(8, numeric.Int(1)), vector.ErrOutOfRange)
	require.ErrorIs(t, v.Insert(-1, numeric.Int(1)), vector.ErrOutOfRange)
	require.Equal(t, 7, v.Len())
}

func TestClone(t *testing.T) {
	t.Parallel()

	v := mustVector(t, numeric.Int32, 1, 2)
	c := v.Clone()
	require.NoError(t, c.Append(numeric.Int(3)))
	require.NoError(t, c.Set(0, numeric.Int(7)))
	require.Equal(t, "[1 2]", v.Render())
	require.Equal(t, "[7 2 3]", c.Render())
}

func TestSubtractInt32(t *testing.T) {
	t.Parallel()

	a := mustVector(t, numeric.Int32, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
	b := mustVector(t, numeric.Int32, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	got, err := a.Subtract(vector.Of(b))
	require.NoError(t, err)
	require.Equal(t, numeric.Int32, got.Kind())
	require.Equal(t, "[9 7 5 3 1 -1 -3 -5 -7 -9]", got.Render())
	require.Equal(t, "[10 9 8 7 6 5 4 3 2 1]", a.Render())
}

func TestSubtractScalarFloat32(t *testing.T) {
	t.Parallel()

	a := mustVector(t, numeric.Float32, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
	got, err := a.Subtract(vector.Scalar(numeric.Float(2.8)))
	require.NoError(t, err)
	want := []float64{7.2, 6.2, 5.2, 4.2, 3.2, 2.2, 1.2, 0.2, -0.8, -1.8}
	require.InDeltaSlice(t, want, floats(got), 1e-6)
}

// TestScalarRoundTrip checks (v + s) - s == v for every kind.
func TestScalarRoundTrip(t *testing.T) {
	t.Parallel()

	for _, k := range numeric.Kinds() {
		k := k
		t.Run(k.String(), func(t *testing.T) {
			v := mustVector(t, k, 3, -1, 4, 1, -5, 9)
			plus, err := v.Add(vector.Scalar(numeric.Int(6)))
			require.NoError(t, err)
			back, err := plus.Subtract(vector.Scalar(numeric.Int(6)))
			require.NoError(t, err)
			require.Equal(t, v.Render(), back.Render())
		})
	}
}

// TestLengthMismatch checks either side longer fails with "vector lengths must be the same".
func TestLengthMismatch(t *testing.T) {
	t.Parallel()

	short := mustVector(t, numeric.Float64, 1, 2)
	long := mustVector(t, numeric.Float64, 1, 2, 3)
	for _, pair := range [][2]*vector.Vector{{short, long}, {long, short}} {
		_, err := pair[0].Add(vector.Of(pair[1]))
		require.ErrorIs(t, err, vector.ErrLengthMismatch)
		require.ErrorIs(t, err, vector.ErrShapeMismatch)
		require.Contains(t, err.Error(), "vector lengths must be the same")

		_, err = pair[0].Subtract(vector.Of(pair[1]))
		require.ErrorIs(t, err, vector.ErrShapeMismatch)

		_, err = pair[0].Dot(pair[1])
		require.ErrorIs(t, err, vector.ErrShapeMismatch)
	}
}

func TestOperandErrors(t *testing.T) {
	t.Parallel()

	v := mustVector(t, numeric.Int32, 1, 2)
	other := mustVector(t, numeric.Int64, 1, 2)

	_, err := v.Add(vector.Operand{})
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	_, err = v.Add(vector.Of(nil))
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	_, err = v.Add(vector.Of(other))
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	_, err = v.Subtract(vector.Scalar(numeric.ValueOf("1")))
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	_, err = v.Multiply(numeric.ValueOf(nil))
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	_, err = v.Concat(other)
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
	_, err = v.Dot(nil)
	require.ErrorIs(t, err, vector.ErrTypeMismatch)
}

func TestMultiply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind numeric.Kind
		s    numeric.Value
		want string
	}{
		{numeric.Int32, numeric.Int(-2), "[-2 -4 -6]"},
		{numeric.Int64, numeric.Float(2.9), "[2 4 6]"},
		{numeric.Float32, numeric.Float(0.5), "[0.5 1 1.5]"},
		{numeric.Float64, numeric.Int(3), "[3 6 9]"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.kind.String(), func(t *testing.T) {
			v := mustVector(t, tc.kind, 1, 2, 3)
			got, err := v.Multiply(tc.s)
			require.NoError(t, err)
			require.Equal(t, tc.kind, got.Kind())
			require.Equal(t, tc.want, got.Render())
		})
	}
}

func TestSum(t *testing.T) {
	t.Parallel()

	for _, k := range numeric.Kinds() {
		k := k
		t.Run(k.String(), func(t *testing.T) {
			v := mustVector(t, k, 1, 2, 3, 4)
			s, err := v.Sum()
			require.NoError(t, err)
			require.Equal(t, 10.0, s.Float64())
			require.Equal(t, k.IsInteger(), s.IsInt())

			empty, err := vector.New(k)
			require.NoError(t, err)
			s, err = empty.Sum()
			require.NoError(t, err)
			require.Equal(t, 0.0, s.Float64())
		})
	}

	wrap := mustVector(t, numeric.Int32, math.MaxInt32, 1)
	s, err := wrap.Sum()
	require.NoError(t, err)
	require.Equal(t, int64(math.MinInt32), s.Int64())
}

func TestDot(t *testing.T) {
	t.Parallel()

	a := mustVector(t, numeric.Float64, 1, 2, 3)
	b := mustVector(t, numeric.Float64, 4, 5, 6)
	d, err := a.Dot(b)
	require.NoError(t, err)
	require.Equal(t, 32.0, d.Float64())

	i := mustVector(t, numeric.Int64, 2, 3)
	d, err = i.Dot(i)
	require.NoError(t, err)
	require.Equal(t, int64(13), d.Int64())
}

func TestConcat(t *testing.T) {
	t.Parallel()

	a := mustVector(t, numeric.Int32, 1, 2)
	b := mustVector(t, numeric.Int32, 3)
	c, err := a.Concat(b)
	require.NoError(t, err)
	require.Equal(t, "[1 2 3]", c.Render())
	require.NoError(t, c.Append(numeric.Int(4)))
	require.Equal(t, "[1 2]", a.Render())
	require.Equal(t, "[3]", b.Render())
}

// TestCustomTableMiss checks a table without a sum kernel surfaces ErrUnsupportedOperation.
func TestCustomTableMiss(t *testing.T) {
	t.Parallel()

	var entries []dispatch.Entry
	for _, e := range dispatch.Entries() {
		if e.Op != dispatch.OpSum {
			entries = append(entries, e)
		}
	}
	tbl := dispatch.Build(entries)

	v, err := vector.FromValues(numeric.Float64, numeric.ValuesOf(1.0, 2.0), vector.WithTable(tbl))
	require.NoError(t, err)

	doubled, err := v.Multiply(numeric.Int(2))
	require.NoError(t, err)
	require.Equal(t, "[2 4]", doubled.Render())

	_, err = v.Sum()
	require.ErrorIs(t, err, vector.ErrUnsupportedOperation)
	_, err = doubled.Dot(v)
	require.ErrorIs(t, err, vector.ErrUnsupportedOperation)
}

func ExampleVector_Subtract() {
	a, _ := vector.FromValues(numeric.Int32, numeric.ValuesOf(10, 9, 8))
	b, _ := vector.FromValues(numeric.Int32, numeric.ValuesOf(1, 2, 3))

	d, _ := a.Subtract(vector.Of(b))
	fmt.Println(d)

	s, _ := d.Sum()
	fmt.Println(s)

	// Output:
	// [9 7 5]
	// 21
}
