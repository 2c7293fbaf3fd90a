// SPDX-License-Identifier: MIT

package workload

import (
	"fmt"

	"github.com/katalvlaran/vecsse/dispatch"
	"github.com/katalvlaran/vecsse/matrix"
	"github.com/katalvlaran/vecsse/numeric"
	"github.com/katalvlaran/vecsse/vector"
)

// executor runs one job with a fixed default kind and dispatch table.
type executor struct {
	def   numeric.Kind
	table *dispatch.Table
}

// run executes job and returns its rendered output.
func (e executor) run(job Job) (string, error) {
	switch job.Op {
	case OpMatrixAdd, OpMatrixSubtract, OpMatrixMultiply, OpMatrixHadamard:
		return e.matrixJob(job)
	case OpVectorAdd, OpVectorSubtract, OpVectorMultiply, OpVectorSum, OpVectorDot, OpVectorConcat:
		return e.vectorJob(job)
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOp, job.Op)
	}
}

func (e executor) matrix(job Job, o Operand) (*matrix.Matrix, error) {
	k, err := o.kind(job.Kind, e.def)
	if err != nil {
		return nil, err
	}
	return matrix.NewFilled(k, o.Rows, o.Cols, o.values(), matrix.WithTable(e.table))
}

func (e executor) vector(job Job, o Operand) (*vector.Vector, error) {
	k, err := o.kind(job.Kind, e.def)
	if err != nil {
		return nil, err
	}
	return vector.FromValues(k, o.values(), vector.WithTable(e.table))
}

func (e executor) matrixJob(job Job) (string, error) {
	if job.Right == nil {
		return "", fmt.Errorf("%w: %s needs a right operand", ErrMissingOperand, job.Op)
	}
	left, err := e.matrix(job, job.Left)
	if err != nil {
		return "", err
	}
	var (
		rhs   matrix.Operand
		right *matrix.Matrix
	)
	if job.Right.IsScalar() {
		if job.Op == OpMatrixHadamard {
			return "", fmt.Errorf("%w: %s needs a matrix right operand", ErrMissingOperand, job.Op)
		}
		rhs = matrix.Scalar(numeric.ValueOf(job.Right.Scalar))
	} else {
		if right, err = e.matrix(job, *job.Right); err != nil {
			return "", err
		}
		rhs = matrix.Of(right)
	}

	var out *matrix.Matrix
	switch job.Op {
	case OpMatrixAdd:
		out, err = left.Add(rhs)
	case OpMatrixSubtract:
		out, err = left.Subtract(rhs)
	case OpMatrixHadamard:
		out, err = left.Hadamard(right)
	default:
		out, err = left.Multiply(rhs)
	}
	if err != nil {
		return "", err
	}
	return out.Render(), nil
}

func (e executor) vectorJob(job Job) (string, error) {
	left, err := e.vector(job, job.Left)
	if err != nil {
		return "", err
	}
	if job.Op == OpVectorSum {
		sum, err := left.Sum()
		if err != nil {
			return "", err
		}
		return numeric.FormatValue(left.Kind(), sum), nil
	}
	if job.Right == nil {
		return "", fmt.Errorf("%w: %s needs a right operand", ErrMissingOperand, job.Op)
	}

	if job.Right.IsScalar() {
		x := numeric.ValueOf(job.Right.Scalar)
		var out *vector.Vector
		switch job.Op {
		case OpVectorAdd:
			out, err = left.Add(vector.Scalar(x))
		case OpVectorSubtract:
			out, err = left.Subtract(vector.Scalar(x))
		case OpVectorMultiply:
			out, err = left.Multiply(x)
		default:
			return "", fmt.Errorf("%w: %s needs a vector right operand", ErrMissingOperand, job.Op)
		}
		if err != nil {
			return "", err
		}
		return out.Render(), nil
	}

	right, err := e.vector(job, *job.Right)
	if err != nil {
		return "", err
	}
	switch job.Op {
	case OpVectorAdd:
		out, err := left.Add(vector.Of(right))
		if err != nil {
			return "", err
		}
		return out.Render(), nil
	case OpVectorSubtract:
		out, err := left.Subtract(vector.Of(right))
		if err != nil {
			return "", err
		}
		return out.Render(), nil
	case OpVectorDot:
		dot, err := left.Dot(right)
		if err != nil {
			return "", err
		}
		return numeric.FormatValue(left.Kind(), dot), nil
	case OpVectorConcat:
		out, err := left.Concat(right)
		if err != nil {
			return "", err
		}
		return out.Render(), nil
	default:
		return "", fmt.Errorf("%w: %s needs a scalar right operand", ErrMissingOperand, job.Op)
	}
}
