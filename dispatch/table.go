// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/vecsse/kernels"
	"github.com/katalvlaran/vecsse/numeric"
)

// Entry registers one kernel function for an (Op, Kind) pair. Set the field that
// matches the operation: Binary for add/sub/elementwise_mul, MatMul for matmul,
// Sum for sum.
type Entry struct {
	Op     Op
	Kind   numeric.Kind
	Binary BinaryFunc
	MatMul MatMulFunc
	Sum    SumFunc
}

type key struct {
	op   Op
	kind numeric.Kind
}

// Table is an immutable (Op, Kind) → Kernel map.
type Table struct {
	kernels map[key]Kernel
	log     *zap.Logger
}

// Option configures Build.
type Option func(*options)

type options struct {
	log *zap.Logger
}

// WithLogger sets the logger used for table construction (Debug) and lookup
// misses (Warn). A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// Build constructs a table from entries. Later entries for the same pair replace
// earlier ones; entries with an invalid kind or no function are skipped.
//
// Complexity:
//   - Time O(len(entries)), Space O(len(entries)).
func Build(entries []Entry, opts ...Option) *Table {
	o := options{log: zap.NewNop()}
	for _, set := range opts {
		set(&o)
	}

	t := &Table{kernels: make(map[key]Kernel, len(entries)), log: o.log}
	for _, e := range entries {
		if !numeric.IsValid(e.Kind) || (e.Binary == nil && e.MatMul == nil && e.Sum == nil) {
			t.log.Debug("dispatch: skipping incomplete entry",
				zap.Stringer("op", e.Op), zap.Stringer("kind", e.Kind))
			continue
		}
		t.kernels[key{e.Op, e.Kind}] = Kernel{
			op:     e.Op,
			kind:   e.Kind,
			binary: e.Binary,
			matmul: e.MatMul,
			sum:    e.Sum,
		}
	}
	t.log.Debug("dispatch: table built",
		zap.Int("kernels", len(t.kernels)),
		zap.String("impl", kernels.Describe()))

	return t
}

// Lookup returns the kernel registered for (op, kind).
//
// Errors:
//   - ErrUnsupportedOperation when no kernel is registered for the pair.
//
// A nil *Table resolves against Default(); so do Has, Len and Pairs.
//
// Complexity: O(1).
func (t *Table) Lookup(op Op, kind numeric.Kind) (Kernel, error) {
	if t == nil {
		return Default().Lookup(op, kind)
	}
	k, ok := t.kernels[key{op, kind}]
	if !ok {
		t.log.Warn("dispatch: no kernel",
			zap.Stringer("op", op), zap.Stringer("kind", kind))
		return Kernel{}, dispatchErrorf("Lookup",
			fmt.Errorf("%s/%s: %w", op, kind, numeric.ErrUnsupportedOperation))
	}

	return k, nil
}

// Has reports whether a kernel is registered for (op, kind).
func (t *Table) Has(op Op, kind numeric.Kind) bool {
	if t == nil {
		return Default().Has(op, kind)
	}
	_, ok := t.kernels[key{op, kind}]
	return ok
}

// Len returns the number of registered kernels.
func (t *Table) Len() int {
	if t == nil {
		return Default().Len()
	}
	return len(t.kernels)
}

// Pairs lists the registered (op, kind) pairs ordered by op, then kind.
func (t *Table) Pairs() [][2]string {
	if t == nil {
		return Default().Pairs()
	}
	keys := make([]key, 0, len(t.kernels))
	for k := range t.kernels {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].op != keys[j].op {
			return keys[i].op < keys[j].op
		}
		return keys[i].kind < keys[j].kind
	})
	out := make([][2]string, len(keys))
	for i, k := range keys {
		out[i] = [2]string{k.op.String(), k.kind.String()}
	}

	return out
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table with every (op, kind) kernel registered.
// It is built on first use and never modified afterwards.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = Build(Entries())
	})

	return defaultTable
}

// Entries returns the built-in kernel entries: five operations for each of the
// four kinds.
func Entries() []Entry {
	return []Entry{
		// int32
		{Op: OpAdd, Kind: numeric.Int32, Binary: binaryOf(kernels.Add[int32])},
		{Op: OpSub, Kind: numeric.Int32, Binary: binaryOf(kernels.Sub[int32])},
		{Op: OpElementwiseMul, Kind: numeric.Int32, Binary: binaryOf(kernels.Mul[int32])},
		{Op: OpMatMul, Kind: numeric.Int32, MatMul: matmulOf(kernels.MatMul[int32])},
		{Op: OpSum, Kind: numeric.Int32, Sum: intSumOf(kernels.Sum[int32])},

		// int64
		{Op: OpAdd, Kind: numeric.Int64, Binary: binaryOf(kernels.Add[int64])},
		{Op: OpSub, Kind: numeric.Int64, Binary: binaryOf(kernels.Sub[int64])},
		{Op: OpElementwiseMul, Kind: numeric.Int64, Binary: binaryOf(kernels.Mul[int64])},
		{Op: OpMatMul, Kind: numeric.Int64, MatMul: matmulOf(kernels.MatMul[int64])},
		{Op: OpSum, Kind: numeric.Int64, Sum: intSumOf(kernels.Sum[int64])},

		// float32
		{Op: OpAdd, Kind: numeric.Float32, Binary: binaryOf(kernels.AddFloat32)},
		{Op: OpSub, Kind: numeric.Float32, Binary: binaryOf(kernels.SubFloat32)},
		{Op: OpElementwiseMul, Kind: numeric.Float32, Binary: binaryOf(kernels.MulFloat32)},
		{Op: OpMatMul, Kind: numeric.Float32, MatMul: matmulOf(kernels.MatMulFloat32)},
		{Op: OpSum, Kind: numeric.Float32, Sum: floatSumOf(kernels.SumFloat32)},

		// float64
		{Op: OpAdd, Kind: numeric.Float64, Binary: binaryOf(kernels.AddFloat64)},
		{Op: OpSub, Kind: numeric.Float64, Binary: binaryOf(kernels.SubFloat64)},
		{Op: OpElementwiseMul, Kind: numeric.Float64, Binary: binaryOf(kernels.MulFloat64)},
		{Op: OpMatMul, Kind: numeric.Float64, MatMul: matmulOf(kernels.MatMulFloat64)},
		{Op: OpSum, Kind: numeric.Float64, Sum: floatSumOf(kernels.SumFloat64)},
	}
}

// ---------- slice → buffer adapters ----------

func binaryOf[T numeric.Element](f func(a, b []T) []T) BinaryFunc {
	return func(a, b numeric.Buffer) numeric.Buffer {
		return numeric.Wrap(f(numeric.Data[T](a), numeric.Data[T](b)))
	}
}

func matmulOf[T numeric.Element](f func(a []T, m, k int, b []T, n int) []T) MatMulFunc {
	return func(a numeric.Buffer, m, k int, b numeric.Buffer, n int) numeric.Buffer {
		return numeric.Wrap(f(numeric.Data[T](a), m, k, numeric.Data[T](b), n))
	}
}

func intSumOf[T int32 | int64](f func(a []T) T) SumFunc {
	return func(a numeric.Buffer) numeric.Value {
		return numeric.Int(int64(f(numeric.Data[T](a))))
	}
}

func floatSumOf[T float32 | float64](f func(a []T) T) SumFunc {
	return func(a numeric.Buffer) numeric.Value {
		return numeric.Float(float64(f(numeric.Data[T](a))))
	}
}
