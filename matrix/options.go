// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Matrix construction.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Options are inherited: every Matrix produced by an operation carries the
//     receiver's options (same dispatch table).
package matrix

import "github.com/katalvlaran/vecsse/dispatch"

// ---------- Defaults (single source of truth) ----------

// DefaultTolerance is the absolute tolerance suggested for float AllClose checks.
const DefaultTolerance = 1e-6

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	table *dispatch.Table // nil ⇒ dispatch.Default()
}

// WithTable routes every arithmetic operation of the Matrix through t instead of
// the process-wide default table. A nil t restores the default.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Results of operations inherit the table of their receiver.
func WithTable(t *dispatch.Table) Option {
	return func(o *options) { o.table = t }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) options {
	o := options{}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}
	if o.table == nil {
		o.table = dispatch.Default()
	}

	return o
}
