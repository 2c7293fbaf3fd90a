// Package vecsse is a typed numeric vector/matrix arithmetic engine.
//
// Containers hold elements of exactly one kind (int32, int64, float32, float64)
// in flat contiguous buffers, and every bulk operation is delegated to a
// width-specific kernel chosen through a dispatch table keyed by (op, kind).
//
// What is in the box:
//
//   - numeric/  — kinds, the admissible Value sum type, kind-tagged buffers
//   - validate/ — side-effect-free bounds, shape and admissibility checks
//   - kernels/  — flat-slice kernels (Go generics for ints; vecf32/vecf64 and
//     gonum BLAS for floats)
//   - dispatch/ — the (op, kind) → kernel table, built once
//   - matrix/   — fixed-shape row-major Matrix: Add, Subtract, Multiply, Hadamard
//   - vector/   — resizable Vector: Add, Subtract, Multiply, Sum, Dot, Concat
//   - workload/ — JSON (optionally zstd) batch jobs run concurrently
//   - cmd/vecsse — the batch runner command
//
// Two rules hold everywhere:
//
//   - The left operand's kind wins. Right operands are converted to it
//     (integers truncate floats toward zero) before the kernel runs.
//   - Every binary operation validates first and allocates a new result;
//     operands are never mutated.
//
// Quick example:
//
//	a, _ := matrix.NewFilled(numeric.Int32, 3, 2, numeric.ValuesOf[int32](1, 2, 3, 4, 5, 6))
//	b, _ := matrix.NewFilled(numeric.Float32, 2, 1, numeric.ValuesOf[float32](1.9, 2.3))
//	c, _ := a.Multiply(matrix.Of(b)) // Int32 |5| |11| |17|
//
//	go install github.com/katalvlaran/vecsse/cmd/vecsse@latest
package vecsse
