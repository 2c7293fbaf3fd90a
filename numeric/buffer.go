// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"slices"
	"strconv"
)

// Element lists the concrete Go types backing the four kinds.
type Element interface {
	int32 | int64 | float32 | float64
}

// Buffer is a flat, contiguous, kind-tagged backing store.
//   - kind is one of the four supported kinds (Invalid only for the zero Buffer).
//   - data is exactly one of []int32, []int64, []float32, []float64 matching kind.
//
// A Buffer is a small header (like a slice): copying it shares storage. Use Clone
// for an independent copy.
type Buffer struct {
	kind Kind
	data any
}

// MaxBufferBytes caps a single buffer allocation (128 TiB, below the runtime's
// per-allocation limit on 64-bit platforms).
const MaxBufferBytes uint64 = 1 << 47

// NewBuffer allocates a zero-filled buffer of n elements of kind k.
//
// Errors:
//   - ErrInvalidKind when k is not supported.
//   - ErrInvalidShape when n < 0.
//   - ErrSizeOverflow when n elements of k exceed MaxBufferBytes.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewBuffer(k Kind, n int) (Buffer, error) {
	if n < 0 {
		return Buffer{}, fmt.Errorf("NewBuffer(%d): %w", n, ErrInvalidShape)
	}
	if w := k.Width() / 8; w > 0 && uint64(n) > MaxBufferBytes/uint64(w) {
		return Buffer{}, fmt.Errorf("NewBuffer(%s, %d): %w", k, n, ErrSizeOverflow)
	}
	switch k {
	case Int32:
		return Buffer{kind: k, data: make([]int32, n)}, nil
	case Int64:
		return Buffer{kind: k, data: make([]int64, n)}, nil
	case Float32:
		return Buffer{kind: k, data: make([]float32, n)}, nil
	case Float64:
		return Buffer{kind: k, data: make([]float64, n)}, nil
	default:
		return Buffer{}, fmt.Errorf("NewBuffer(%s): %w", k, ErrInvalidKind)
	}
}

// Constant returns a buffer of n copies of v coerced to kind k (scalar broadcast).
// Complexity: O(n).
func Constant(k Kind, n int, v Value) (Buffer, error) {
	b, err := NewBuffer(k, n)
	if err != nil {
		return Buffer{}, err
	}
	switch d := b.data.(type) {
	case []int32:
		fillConst(d, v)
	case []int64:
		fillConst(d, v)
	case []float32:
		fillConst(d, v)
	case []float64:
		fillConst(d, v)
	}

	return b, nil
}

// Wrap tags an existing slice with its kind without copying (borrowed storage).
func Wrap[T Element](xs []T) Buffer {
	return Buffer{kind: kindOf[T](), data: xs}
}

// Data returns the backing slice of b as []T, or nil when T does not match b's kind.
func Data[T Element](b Buffer) []T {
	xs, _ := b.data.([]T)

	return xs
}

// Kind returns the element kind of b.
func (b Buffer) Kind() Kind { return b.kind }

// Len returns the number of elements in b.
func (b Buffer) Len() int {
	switch d := b.data.(type) {
	case []int32:
		return len(d)
	case []int64:
		return len(d)
	case []float32:
		return len(d)
	case []float64:
		return len(d)
	default:
		return 0
	}
}

// At returns element i as a Value. i must be in [0, Len()); callers validate.
func (b Buffer) At(i int) Value {
	switch d := b.data.(type) {
	case []int32:
		return toValue(d[i])
	case []int64:
		return toValue(d[i])
	case []float32:
		return toValue(d[i])
	case []float64:
		return toValue(d[i])
	default:
		return Value{}
	}
}

// Set stores v at position i, coerced to b's kind. i must be in range.
// Integer kinds truncate floats toward zero; float kinds convert integers.
func (b Buffer) Set(i int, v Value) {
	switch d := b.data.(type) {
	case []int32:
		d[i] = fromValue[int32](v)
	case []int64:
		d[i] = fromValue[int64](v)
	case []float32:
		d[i] = fromValue[float32](v)
	case []float64:
		d[i] = fromValue[float64](v)
	}
}

// Format renders element i in the shortest form that round-trips in b's kind.
func (b Buffer) Format(i int) string {
	switch d := b.data.(type) {
	case []int32:
		return strconv.FormatInt(int64(d[i]), 10)
	case []int64:
		return strconv.FormatInt(d[i], 10)
	case []float32:
		return strconv.FormatFloat(float64(d[i]), 'g', -1, 32)
	case []float64:
		return strconv.FormatFloat(d[i], 'g', -1, 64)
	default:
		return ""
	}
}

// FormatValue renders v the way a buffer of kind k prints it after storing v, so
// a float32 reduction prints at float32 precision. Inadmissible values and
// invalid kinds fall back to v.String().
func FormatValue(k Kind, v Value) string {
	if !v.Admissible() || !IsValid(k) {
		return v.String()
	}
	b, err := Constant(k, 1, v)
	if err != nil {
		return v.String()
	}

	return b.Format(0)
}

// Equal reports whether b and o have the same kind, length and elements.
// Elements compare with ==, so -0 equals 0, except that NaN equals NaN.
// Complexity: O(n).
func (b Buffer) Equal(o Buffer) bool {
	if b.kind != o.kind || b.Len() != o.Len() {
		return false
	}
	switch d := b.data.(type) {
	case []int32:
		return slices.Equal(d, Data[int32](o))
	case []int64:
		return slices.Equal(d, Data[int64](o))
	case []float32:
		return slices.EqualFunc(d, Data[float32](o), floatEqual[float32])
	case []float64:
		return slices.EqualFunc(d, Data[float64](o), floatEqual[float64])
	default:
		return true
	}
}

// floatEqual is == with NaN equal to NaN.
func floatEqual[T float32 | float64](x, y T) bool {
	return x == y || (x != x && y != y)
}

// Values copies every element out as a Value.
// Complexity: O(n).
func (b Buffer) Values() []Value {
	n := b.Len()
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		out[i] = b.At(i)
	}

	return out
}

// Clone returns an independent copy of b.
func (b Buffer) Clone() Buffer {
	switch d := b.data.(type) {
	case []int32:
		return Buffer{kind: b.kind, data: slices.Clone(d)}
	case []int64:
		return Buffer{kind: b.kind, data: slices.Clone(d)}
	case []float32:
		return Buffer{kind: b.kind, data: slices.Clone(d)}
	case []float64:
		return Buffer{kind: b.kind, data: slices.Clone(d)}
	default:
		return Buffer{}
	}
}

// Convert returns b coerced to kind k. When k equals b's kind, b itself is
// returned (shared storage); otherwise a new buffer is allocated and every element
// goes through the natural coercion of Set.
//
// Errors:
//   - ErrInvalidKind when k is not supported.
//
// Complexity:
//   - Time O(n), Space O(n) for a real conversion; O(1) otherwise.
func (b Buffer) Convert(k Kind) (Buffer, error) {
	if b.kind == k && IsValid(k) {
		return b, nil
	}
	n := b.Len()
	out, err := NewBuffer(k, n)
	if err != nil {
		return Buffer{}, err
	}
	for i := 0; i < n; i++ {
		out.Set(i, b.At(i))
	}

	return out, nil
}

// Fill overwrites b element-wise from vs (len(vs) must equal Len(); callers validate).
func (b Buffer) Fill(vs []Value) {
	for i, v := range vs {
		b.Set(i, v)
	}
}

// Inserted returns b with vs inserted before position idx (0 <= idx <= Len()).
// Like append, the result may share storage with b.
func (b Buffer) Inserted(idx int, vs ...Value) Buffer {
	switch d := b.data.(type) {
	case []int32:
		return Buffer{kind: b.kind, data: insertValues(d, idx, vs)}
	case []int64:
		return Buffer{kind: b.kind, data: insertValues(d, idx, vs)}
	case []float32:
		return Buffer{kind: b.kind, data: insertValues(d, idx, vs)}
	case []float64:
		return Buffer{kind: b.kind, data: insertValues(d, idx, vs)}
	default:
		return b
	}
}

// Appended returns b with vs appended.
func (b Buffer) Appended(vs ...Value) Buffer { return b.Inserted(b.Len(), vs...) }

// ---------- generic element helpers ----------

// kindOf maps an Element type to its Kind.
func kindOf[T Element]() Kind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return Int32
	case int64:
		return Int64
	case float32:
		return Float32
	default:
		return Float64
	}
}

// isIntegerElem reports whether T is int32 or int64.
func isIntegerElem[T Element]() bool {
	k := kindOf[T]()
	return k == Int32 || k == Int64
}

// fromValue coerces v into T: integers truncate floats, floats convert integers.
func fromValue[T Element](v Value) T {
	if isIntegerElem[T]() {
		return T(v.Int64())
	}
	if v.IsInt() {
		return T(v.i)
	}

	return T(v.f)
}

// toValue lifts a stored element back into a Value of the matching category.
func toValue[T Element](x T) Value {
	if isIntegerElem[T]() {
		return Int(int64(x))
	}

	return Float(float64(x))
}

// fillConst writes v (coerced once) into every slot of d.
func fillConst[T Element](d []T, v Value) {
	c := fromValue[T](v)
	for i := range d {
		d[i] = c
	}
}

// insertValues converts vs to T and inserts them at idx.
func insertValues[T Element](d []T, idx int, vs []Value) []T {
	conv := make([]T, len(vs))
	for i, v := range vs {
		conv[i] = fromValue[T](v)
	}

	return slices.Insert(d, idx, conv...)
}
