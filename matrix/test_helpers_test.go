// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for constructing matrices of every kind.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecsse/matrix"
	"github.com/katalvlaran/vecsse/numeric"
)

// MustMatrix ALLOCATES a rows×cols matrix of kind k filled row-major from vals
// (or zero-filled when vals is empty), failing the test on error.
func MustMatrix(t testing.TB, k numeric.Kind, rows, cols int, vals ...float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.New(k, rows, cols)
	require.NoError(t, err)
	if len(vals) > 0 {
		require.NoError(t, m.Fill(numeric.ValuesOf(vals...)))
	}

	return m
}

// MustInt32 is MustMatrix for Int32 with integer literals.
func MustInt32(t testing.TB, rows, cols int, vals ...int32) *matrix.Matrix {
	t.Helper()
	m, err := matrix.NewFilled(numeric.Int32, rows, cols, numeric.ValuesOf(vals...))
	require.NoError(t, err)

	return m
}

// seq returns [from, from+step, ...] with n entries.
func seq(from, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}

	return out
}

// randomValues returns n deterministic values in [-50, 50); integral when ints is true.
func randomValues(n int, seed int64, ints bool) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		if ints {
			out[i] = float64(rng.Intn(100) - 50)
		} else {
			out[i] = rng.Float64()*100 - 50
		}
	}

	return out
}

// tolFor returns the comparison tolerance used for kind k.
func tolFor(k numeric.Kind) float64 {
	switch k {
	case numeric.Float32:
		return 1e-4
	case numeric.Float64:
		return 1e-9
	default:
		return 0
	}
}

// nan returns a quiet NaN.
func nan() float64 { return math.NaN() }
