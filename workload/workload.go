// SPDX-License-Identifier: MIT

// Package workload decodes batch job files for the vecsse command and runs them
// against the matrix and vector packages.
//
// A workload is a JSON document, optionally zstd-compressed:
//
//	{"jobs": [
//	  {"name": "product", "op": "matrix.multiply", "kind": "int32",
//	   "left":  {"rows": 3, "cols": 2, "values": [1, 2, 3, 4, 5, 6]},
//	   "right": {"kind": "float32", "rows": 2, "cols": 1, "values": [1.9, 2.3]}},
//	  {"name": "shift", "op": "vector.subtract", "kind": "float32",
//	   "left":  {"values": [10, 9, 8]},
//	   "right": {"scalar": 2.8}}
//	]}
//
// Numbers are decoded with json.Number so integers keep full int64 precision.
package workload

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/vecsse/numeric"
)

// Job operations.
const (
	OpMatrixAdd      = "matrix.add"
	OpMatrixSubtract = "matrix.subtract"
	OpMatrixMultiply = "matrix.multiply"
	OpMatrixHadamard = "matrix.hadamard"
	OpVectorAdd      = "vector.add"
	OpVectorSubtract = "vector.subtract"
	OpVectorMultiply = "vector.multiply"
	OpVectorSum      = "vector.sum"
	OpVectorDot      = "vector.dot"
	OpVectorConcat   = "vector.concat"
)

var (
	// ErrUnknownOp is returned for a job whose op is not one of the Op* names.
	ErrUnknownOp = errors.New("workload: unknown op")
	// ErrMissingOperand is returned when a job lacks an operand its op needs.
	ErrMissingOperand = errors.New("workload: missing operand")
)

// File is a decoded workload.
type File struct {
	Jobs []Job `json:"jobs"`
}

// Job is a single operation. Kind applies to both operands unless an operand
// overrides it; an empty Kind falls back to the runner's default kind.
type Job struct {
	Name  string   `json:"name"`
	Op    string   `json:"op"`
	Kind  string   `json:"kind,omitempty"`
	Left  Operand  `json:"left"`
	Right *Operand `json:"right,omitempty"`
}

// Operand describes a matrix (Rows, Cols, Values), a vector (Values) or a scalar.
type Operand struct {
	Kind   string `json:"kind,omitempty"`
	Rows   int    `json:"rows,omitempty"`
	Cols   int    `json:"cols,omitempty"`
	Values []any  `json:"values,omitempty"`
	Scalar any    `json:"scalar,omitempty"`
}

// IsScalar reports whether the operand carries a scalar.
func (o Operand) IsScalar() bool { return o.Scalar != nil }

// values converts the raw JSON values. Non-numbers become inadmissible Values and
// are rejected by the container that receives them.
func (o Operand) values() []numeric.Value {
	out := make([]numeric.Value, len(o.Values))
	for i, x := range o.Values {
		out[i] = numeric.ValueOf(x)
	}
	return out
}

// kind resolves the operand kind: its own, else the job's, else def.
func (o Operand) kind(job string, def numeric.Kind) (numeric.Kind, error) {
	switch {
	case o.Kind != "":
		return numeric.ParseKind(o.Kind)
	case job != "":
		return numeric.ParseKind(job)
	default:
		return def, nil
	}
}

// Parse decodes a workload from raw bytes, decompressing zstd input first.
func Parse(raw []byte) (f File, err error) {
	if IsCompressed(raw) {
		raw, err = decompress(raw)
		if err != nil {
			return f, errors.Join(errors.New("could not decompress workload"), err)
		}
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err = dec.Decode(&f); err != nil {
		return f, fmt.Errorf("unmarshal workload: %w", err)
	}
	for i, job := range f.Jobs {
		if job.Name == "" {
			f.Jobs[i].Name = fmt.Sprintf("job-%d", i)
		}
	}
	return f, nil
}

// Decode reads r to EOF and parses it.
func Decode(r io.Reader) (File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return File{}, errors.Join(errors.New("could not read workload"), err)
	}
	return Parse(raw)
}

// Load reads a workload file; "-" reads standard input.
func Load(path string) (File, error) {
	if path == "-" {
		return Decode(os.Stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return File{}, errors.Join(errors.New("could not read workload file"), err)
	}
	return Parse(raw)
}
