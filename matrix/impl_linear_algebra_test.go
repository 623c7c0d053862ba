// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/symnmf/matrix"
	"github.com/stretchr/testify/require"
)

func TestMul(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := FromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	want := [][]float64{{58, 64}, {139, 154}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, want, got.ToRows())

	// fallback path must agree bit-for-bit with the fast path
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, want, slow.ToRows())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMulFastPathMatchesFallbackRandom(t *testing.T) {
	a := RandomDense(t, 7, 5, -1, 1, 11)
	b := RandomDense(t, 5, 4, -1, 1, 12)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	RequireClose(t, fast, slow, 1e-12)
}

func TestTranspose(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	got, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, want, got.ToRows())

	got, err = matrix.Transpose(hide{m})
	require.NoError(t, err)
	require.Equal(t, want, got.ToRows())

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSubAndHadamard(t *testing.T) {
	a := FromRows(t, [][]float64{{5, 6}, {7, 8}})
	b := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	d, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 4}, {4, 4}}, d.ToRows())

	d, err = matrix.Sub(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{4, 4}, {4, 4}}, d.ToRows())

	h, err := matrix.Hadamard(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 12}, {21, 32}}, h.ToRows())

	h, err = matrix.Hadamard(a, hide{b})
	require.NoError(t, err)
	require.Equal(t, [][]float64{{5, 12}, {21, 32}}, h.ToRows())

	_, err = matrix.Sub(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Hadamard(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestKernelsDoNotMutateOperands(t *testing.T) {
	a := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	before := a.ToRows()

	_, err := matrix.Mul(a, a)
	require.NoError(t, err)
	_, err = matrix.Transpose(a)
	require.NoError(t, err)
	_, err = matrix.Hadamard(a, a)
	require.NoError(t, err)
	require.Equal(t, before, a.ToRows())
}

func TestGram(t *testing.T) {
	h := FromRows(t, [][]float64{{1, 0}, {0, 2}, {1, 1}})
	g, err := matrix.Gram(h)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{2, 1}, {1, 5}}, g.ToRows())
}
