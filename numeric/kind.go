// SPDX-License-Identifier: MIT

// Package numeric - element kinds, the closed numeric Value type and the
// kind-tagged flat Buffer shared by the vector and matrix containers.
//
// Purpose:
//   - Provide the single registry of supported element kinds (Int32, Int64, Float32, Float64).
//   - Provide the boundary type (Value) through which every element enters a container.
//   - Provide the flat, contiguous backing store (Buffer) the kernels operate on.
//   - Define the package-wide sentinel errors (errors.go).
//
// Determinism & Performance:
//   - No global mutable state; every helper is a pure function or a method on a value.
//   - Buffers keep exactly one concrete slice per kind; no boxing per element.
package numeric

import (
	"fmt"
	"strings"
)

// Kind tags a container with the fixed numeric representation of its elements.
// The zero value is Invalid.
type Kind int

// Supported kinds in registry order. The zero Kind is Invalid.
const (
	Invalid Kind = iota // sentinel for unknown / unset kinds
	Int32               // signed 32-bit integer
	Int64               // signed 64-bit integer
	Float32             // IEEE-754 binary32
	Float64             // IEEE-754 binary64
)

// kindNames holds canonical names indexed by Kind.
var kindNames = [...]string{
	Invalid: "invalid",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
}

// kindAliases maps accepted spellings (canonical + short forms) to kinds.
var kindAliases = map[string]Kind{
	"int32":   Int32,
	"s32":     Int32,
	"int64":   Int64,
	"s64":     Int64,
	"float32": Float32,
	"f32":     Float32,
	"float64": Float64,
	"f64":     Float64,
}

// Kinds returns the supported kinds in registry order.
func Kinds() []Kind { return []Kind{Int32, Int64, Float32, Float64} }

// IsValid reports whether k is one of the four supported kinds.
// Complexity: O(1).
func IsValid(k Kind) bool {
	return k >= Int32 && k <= Float64
}

// IsValid is the method form of IsValid(k).
func (k Kind) IsValid() bool { return IsValid(k) }

// IsInteger reports whether k is an integer kind.
func (k Kind) IsInteger() bool { return k == Int32 || k == Int64 }

// Width returns the element width in bits, or 0 for an invalid kind.
func (k Kind) Width() int {
	switch k {
	case Int32, Float32:
		return 32
	case Int64, Float64:
		return 64
	default:
		return 0
	}
}

// String returns the canonical lower-case name of k.
func (k Kind) String() string {
	if !IsValid(k) {
		return kindNames[Invalid]
	}

	return kindNames[k]
}

// ParseKind resolves a kind name (case-insensitive, short aliases accepted).
//
// Errors:
//   - ErrInvalidKind when s names no supported kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return Invalid, fmt.Errorf("ParseKind(%q): %w", s, ErrInvalidKind)
	}

	return k, nil
}
