// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/vecsse/dispatch"
	"github.com/katalvlaran/vecsse/numeric"
)

// Option configures New and FromValues. Last writer wins.
type Option func(*options)

type options struct {
	length  int
	fill    numeric.Value
	hasFill bool
	table   *dispatch.Table
}

// WithLength pre-sizes the vector with n elements (zero unless WithFill is given).
// A negative n makes New fail with ErrInvalidShape.
func WithLength(n int) Option {
	return func(o *options) { o.length = n }
}

// WithFill sets the initial value of every pre-sized element. An inadmissible v
// makes New fail with ErrTypeMismatch.
func WithFill(v numeric.Value) Option {
	return func(o *options) {
		o.fill = v
		o.hasFill = true
	}
}

// WithTable routes arithmetic through t instead of dispatch.Default().
func WithTable(t *dispatch.Table) Option {
	return func(o *options) { o.table = t }
}

func gatherOptions(user ...Option) options {
	o := options{}
	for _, set := range user {
		set(&o)
	}
	if o.table == nil {
		o.table = dispatch.Default()
	}

	return o
}
