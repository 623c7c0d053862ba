// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/symnmf/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels down their At/Set fallback path.
//
// AI-Hints:
//   - Wrap ONLY the operand you want to de-opt; compare against the *Dense result.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows builds a *Dense from literal rows or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// RandomDense fills an r×c matrix with values in [lo, hi) from a seeded stream.
func RandomDense(t *testing.T, r, c int, lo, hi float64, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	m.Apply(func(_, _ int, _ float64) float64 { return lo + (hi-lo)*rng.Float64() })

	return m
}

// RequireClose asserts a and b have the same shape and agree within atol.
func RequireClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	require.NoError(t, matrix.ValidateSameShape(want, got))
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			w, _ := want.At(i, j)
			g, _ := got.At(i, j)
			require.InDeltaf(t, w, g, atol, "cell (%d,%d)", i, j)
		}
	}
}
