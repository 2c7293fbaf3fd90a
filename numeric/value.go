// SPDX-License-Identifier: MIT

package numeric

import (
	"encoding/json"
	"strconv"
)

// category is the closed set of admissible numeric categories.
type category uint8

const (
	inadmissible category = iota // zero Value; rejected by every writer
	integer                      // payload in Value.i
	floating                     // payload in Value.f
)

// Number lists the Go numeric types accepted by ValuesOf.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Value is a closed sum type over the admissible numeric categories:
// an integer (int64 payload) or a floating-point number (float64 payload).
//
// The zero Value is inadmissible. It is what ValueOf returns for anything that is
// not a Go integer or float, and every container writer rejects it with
// ErrTypeMismatch before mutating.
type Value struct {
	cat category
	i   int64
	f   float64
}

// Int returns an integer Value.
func Int(v int64) Value { return Value{cat: integer, i: v} }

// Float returns a floating-point Value.
func Float(v float64) Value { return Value{cat: floating, f: v} }

// ValueOf converts an arbitrary Go value into a Value.
// MAIN DESCRIPTION:
//   - The single boundary where untyped data enters the engine.
//
// Behavior highlights:
//   - Signed/unsigned integers of every width become integer Values
//     (uint64 above MaxInt64 wraps, as a native conversion would).
//   - float32/float64 become floating Values.
//   - json.Number is decoded as an integer when it parses as one, else as a float.
//   - A Value passes through unchanged.
//   - Anything else (strings, bools, nil, containers) yields the inadmissible zero Value.
//
// Complexity:
//   - Time O(1), Space O(1).
func ValueOf(x any) Value {
	switch v := x.(type) {
	case Value:
		return v
	case int:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case uint:
		return Int(int64(v))
	case uint8:
		return Int(int64(v))
	case uint16:
		return Int(int64(v))
	case uint32:
		return Int(int64(v))
	case uint64:
		return Int(int64(v))
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case json.Number:
		if iv, err := v.Int64(); err == nil {
			return Int(iv)
		}
		if fv, err := v.Float64(); err == nil {
			return Float(fv)
		}
		return Value{}
	default:
		return Value{}
	}
}

// ValuesOf converts a slice of Go numbers into Values.
// Complexity: O(n).
func ValuesOf[T Number](xs ...T) []Value {
	out := make([]Value, len(xs))
	integral := isIntegerType[T]()
	for i, x := range xs {
		if integral {
			out[i] = Int(int64(x))
		} else {
			out[i] = Float(float64(x))
		}
	}

	return out
}

// isIntegerType reports whether T is an integer type: 0.5 truncates to 0 only there.
func isIntegerType[T Number]() bool {
	half := 0.5
	return T(half) == 0
}

// Admissible reports whether v is an integer or floating-point Value.
func (v Value) Admissible() bool { return v.cat == integer || v.cat == floating }

// IsInt reports whether v carries an integer payload.
func (v Value) IsInt() bool { return v.cat == integer }

// IsFloat reports whether v carries a floating-point payload.
func (v Value) IsFloat() bool { return v.cat == floating }

// Int64 returns v as int64; floats truncate toward zero.
func (v Value) Int64() int64 {
	if v.cat == floating {
		return int64(v.f)
	}

	return v.i
}

// Float64 returns v as float64.
func (v Value) Float64() float64 {
	if v.cat == integer {
		return float64(v.i)
	}

	return v.f
}

// String formats v; the inadmissible Value prints as "<invalid>".
func (v Value) String() string {
	switch v.cat {
	case integer:
		return strconv.FormatInt(v.i, 10)
	case floating:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return "<invalid>"
	}
}
