// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the reductions the clustering pipeline needs: row sums (degrees),
//     mean of all entries (H initialization bound), squared Frobenius norm
//     (convergence delta and residual) and a diagonal constructor.
//
// Determinism & Performance:
//   - Every sum accumulates in flat row-major order, so results are reproducible.
//   - Dense fast-paths avoid At and operate on the flat buffer.

package matrix

import "math"

const (
	opRowSums          = "RowSums"
	opMean             = "Mean"
	opSquaredFrobenius = "SquaredFrobenius"
	opDiag             = "Diag"
)

// RowSums returns s[i] = Σ_j m[i,j].
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time, O(r) space.
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := m.Rows(), m.Cols()
	sums := make([]float64, r)

	if d, ok := m.(*Dense); ok {
		var acc float64
		for i := 0; i < r; i++ {
			acc = ZeroSum
			for _, v := range d.data[i*c : (i+1)*c] {
				acc += v
			}
			sums[i] = acc
		}

		return sums, nil
	}

	var v float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sums[i] += v
		}
	}

	return sums, nil
}

// Mean returns the arithmetic mean of all r*c entries.
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Mean(m Matrix) (float64, error) {
	sums, err := RowSums(m)
	if err != nil {
		return 0, matrixErrorf(opMean, err)
	}
	total := ZeroSum
	for _, s := range sums {
		total += s
	}

	return total / float64(m.Rows()*m.Cols()), nil
}

// SquaredFrobenius returns ‖m‖_F² = Σ m[i,j]².
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func SquaredFrobenius(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSquaredFrobenius, err)
	}
	acc := ZeroSum
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			acc += v * v
		}

		return acc, nil
	}

	var v float64
	var err error
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opSquaredFrobenius, err)
			}
			acc += v * v
		}
	}

	return acc, nil
}

// FrobeniusNorm returns ‖m‖_F.
func FrobeniusNorm(m Matrix) (float64, error) {
	sq, err := SquaredFrobenius(m)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// Diag materializes the n×n diagonal matrix with v on the diagonal.
// Errors: ErrInvalidDimensions for an empty vector, ErrNaNInf for non-finite entries.
// Complexity: O(n²) (the dense result dominates).
func Diag(v []float64) (*Dense, error) {
	n := len(v)
	out, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, matrixErrorf(opDiag, ErrNaNInf)
		}
		out.data[i*n+i] = x
	}

	return out, nil
}
