// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise and broadcast kernels the clustering pipeline
//     composes: row/column scaling, guarded division, affine maps.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// AI-Hints:
//   - ScaleRows followed by ScaleCols with the same vector s computes
//     diag(s)·X·diag(s) without forming diag(s).

package matrix

import (
	"math"
)

const (
	opScaleRows  = "ScaleRows"
	opScaleCols  = "ScaleCols"
	opSafeDivide = "SafeDivide"
	opAffine     = "Affine"
)

// ScaleRows computes out[i,j] = X[i,j] * scale[i].
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(scale) != X.Rows().
// Complexity: O(r*c).
func ScaleRows(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			s := scale[i] // hoisted per row
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * s
			}
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opScaleRows, e)
			}
			out.data[i*c+j] = v * scale[i]
		}
	}

	return out, nil
}

// ScaleCols computes out[i,j] = X[i,j] * scale[j].
// Errors: ErrNilMatrix, ErrDimensionMismatch when len(scale) != X.Cols().
// Complexity: O(r*c).
func ScaleCols(X Matrix, scale []float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * scale[j]
			}
		}

		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf(opScaleCols, e)
			}
			out.data[i*c+j] = v * scale[j]
		}
	}

	return out, nil
}

// SafeDivide computes out[i,j] = num[i,j] / den[i,j], writing fallback[i,j]
// wherever den[i,j] < floor.
//
// Implementation:
//   - Stage 1: validate num, den, fallback are non-nil with identical shapes.
//   - Stage 2: flat loop over *Dense operands, At fallback otherwise.
//
// Behavior highlights:
//   - A guarded cell never divides, so tiny denominators cannot blow up the result.
//   - fallback may be nil, in which case guarded cells are 0.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite floor).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func SafeDivide(num, den, fallback Matrix, floor float64) (*Dense, error) {
	if math.IsNaN(floor) || math.IsInf(floor, 0) {
		return nil, matrixErrorf(opSafeDivide, ErrNaNInf)
	}
	if err := ValidateBinarySameShape(num, den); err != nil {
		return nil, matrixErrorf(opSafeDivide, err)
	}
	if isNilMatrix(fallback) {
		fallback = nil
	}
	if fallback != nil {
		if err := ValidateSameShape(num, fallback); err != nil {
			return nil, matrixErrorf(opSafeDivide, err)
		}
	}
	r, c := num.Rows(), num.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opSafeDivide, err)
	}

	dn, okN := num.(*Dense)
	dd, okD := den.(*Dense)
	df, okF := fallback.(*Dense)
	if okN && okD && (fallback == nil || okF) {
		for idx := range out.data {
			if dd.data[idx] < floor {
				if okF {
					out.data[idx] = df.data[idx]
				}
				continue
			}
			out.data[idx] = dn.data[idx] / dd.data[idx]
		}

		return out, nil
	}

	var nv, dv, fv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if dv, err = den.At(i, j); err != nil {
				return nil, matrixErrorf(opSafeDivide, err)
			}
			if dv < floor {
				if fallback != nil {
					if fv, err = fallback.At(i, j); err != nil {
						return nil, matrixErrorf(opSafeDivide, err)
					}
					out.data[i*c+j] = fv
				}
				continue
			}
			if nv, err = num.At(i, j); err != nil {
				return nil, matrixErrorf(opSafeDivide, err)
			}
			out.data[i*c+j] = nv / dv
		}
	}

	return out, nil
}

// Affine computes out[i,j] = alpha*X[i,j] + beta.
// Errors: ErrNilMatrix, ErrNaNInf for non-finite coefficients.
// Complexity: O(r*c).
func Affine(X Matrix, alpha, beta float64) (*Dense, error) {
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || math.IsNaN(beta) || math.IsInf(beta, 0) {
		return nil, matrixErrorf(opAffine, ErrNaNInf)
	}
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opAffine, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opAffine, err)
	}

	if d, ok := X.(*Dense); ok {
		for idx, v := range d.data {
			out.data[idx] = alpha*v + beta
		}

		return out, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opAffine, err)
			}
			out.data[i*c+j] = alpha*v + beta
		}
	}

	return out, nil
}
