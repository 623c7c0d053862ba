// SPDX-License-Identifier: MIT

package vecmath

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/symnmf/matrix"
)

func sameLen(tag string, a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("vecmath.%s: len %d vs %d: %w", tag, len(a), len(b), matrix.ErrDimensionMismatch)
	}

	return nil
}

// Distance returns the Euclidean distance ‖a − b‖₂.
// Errors: matrix.ErrDimensionMismatch.
func Distance(a, b []float64) (float64, error) {
	if err := sameLen("Distance", a, b); err != nil {
		return 0, err
	}

	return floats.Distance(a, b, 2), nil
}

// squaredDistance is the unchecked hot-loop form; len(a) must equal len(b).
func squaredDistance(a, b []float64) float64 {
	var acc, d float64
	for i := range a {
		d = a[i] - b[i]
		acc += d * d
	}

	return acc
}

// MustSquaredDistance returns ‖a − b‖₂² accumulated in index order. It skips
// the square root, so it is the form used for Gaussian similarity, K-means++
// weights and inertia. Callers validate both lengths against a shared
// dimension first; a mismatch panics.
func MustSquaredDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vecmath: MustSquaredDistance len %d vs %d", len(a), len(b)))
	}

	return squaredDistance(a, b)
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return stat.Mean(xs, nil)
}

// MeanInto overwrites dst with the coordinate-wise mean of rows.
// dst is left untouched when rows is empty.
// Errors: matrix.ErrDimensionMismatch when a row length differs from len(dst).
func MeanInto(dst []float64, rows [][]float64) error {
	if len(rows) == 0 {
		return nil
	}
	for i, r := range rows {
		if len(r) != len(dst) {
			return fmt.Errorf("vecmath.MeanInto: row %d: %w", i, matrix.ErrDimensionMismatch)
		}
	}
	for j := range dst {
		dst[j] = 0
	}
	for _, r := range rows {
		floats.Add(dst, r)
	}
	floats.Scale(1/float64(len(rows)), dst)

	return nil
}

// ArgMin returns the index of the smallest value, the lowest index on ties,
// and -1 for an empty slice.
func ArgMin(xs []float64) int {
	if len(xs) == 0 {
		return -1
	}

	return floats.MinIdx(xs)
}

// ArgMax returns the index of the largest value, the lowest index on ties,
// and -1 for an empty slice.
func ArgMax(xs []float64) int {
	if len(xs) == 0 {
		return -1
	}

	return floats.MaxIdx(xs)
}
