// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/symnmf/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateBinarySameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateBinarySameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) matrix.Matrix { return MustDense(t, r, c) }
	var typedNil *matrix.Dense

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"typed nil", typedNil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrInvalidDimension},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquare(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateShape(t *testing.T) {
	m := MustDense(t, 4, 2)
	require.NoError(t, matrix.ValidateShape(m, 4, 2))
	require.ErrorIs(t, matrix.ValidateShape(m, 4, 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateShape(nil, 4, 2), matrix.ErrNilMatrix)
}

func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

func TestValidateSymmetric(t *testing.T) {
	sym := FromRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 1e-12))

	asym := FromRows(t, [][]float64{{0, 1}, {1.1, 0}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, -0.2))
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateNonNegative(t *testing.T) {
	require.NoError(t, matrix.ValidateNonNegative(FromRows(t, [][]float64{{0, 1}, {2, 3}})))

	neg := FromRows(t, [][]float64{{0, 1}, {-2, 3}})
	err := matrix.ValidateNonNegative(neg)
	require.ErrorIs(t, err, matrix.ErrNegativeEntry)
	require.Contains(t, err.Error(), "(1,0)")
	require.ErrorIs(t, matrix.ValidateNonNegative(hide{neg}), matrix.ErrNegativeEntry)
}

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
}
