// SPDX-License-Identifier: MIT

package similarity

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/symnmf/internal/parallel"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/vecmath"
)

const (
	opSym     = "similarity.Sym"
	opDegrees = "similarity.Degrees"
	opDdg     = "similarity.Ddg"
	opNorm    = "similarity.Norm"
	opBuild   = "similarity.Build"
)

func errorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validatePoints enforces n ≥ 2 (d ≥ 1 holds for every non-nil Dense).
func validatePoints(points matrix.Matrix) (*matrix.Dense, error) {
	pd, err := matrix.AsDense(points)
	if err != nil {
		return nil, err
	}
	if pd.Rows() < MinPoints {
		return nil, fmt.Errorf("%d points, need at least %d: %w", pd.Rows(), MinPoints, matrix.ErrDimensionMismatch)
	}

	return pd, nil
}

// Sym returns the Gaussian similarity matrix A of the given points.
//
// Implementation:
//   - Stage 1: validate n ≥ 2.
//   - Stage 2: for each row i (on the worker pool) evaluate j > i and mirror
//     the value into (j, i). The diagonal stays 0 from allocation.
//
// Complexity:
//   - Time O(n²·d), Space O(n²).
func Sym(points matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	pd, err := validatePoints(points)
	if err != nil {
		return nil, errorf(opSym, err)
	}
	o := resolve(opts)
	n := pd.Rows()
	a, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, errorf(opSym, err)
	}

	// Task i owns cells (i, j) and (j, i) for every j > i; no two tasks touch
	// the same cell.
	upper := func(i int) error {
		pi, _ := pd.Row(i)
		for j := i + 1; j < n; j++ {
			pj, _ := pd.Row(j)
			v := math.Exp(-vecmath.MustSquaredDistance(pi, pj) / 2)
			if err := a.Set(i, j, v); err != nil {
				return err
			}
			if err := a.Set(j, i, v); err != nil {
				return err
			}
		}
		return nil
	}
	if err = parallel.ForEachRow(context.Background(), n, o.Workers, upper); err != nil {
		return nil, errorf(opSym, err)
	}

	return a, nil
}

// Degrees returns D[i] = Σ_j A[i][j] and fails with ErrDegenerateGraph if any
// degree is zero.
func Degrees(a matrix.Matrix) ([]float64, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, errorf(opDegrees, err)
	}
	deg, err := matrix.RowSums(a)
	if err != nil {
		return nil, errorf(opDegrees, err)
	}
	for i, d := range deg {
		if d == 0 {
			return nil, errorf(opDegrees, fmt.Errorf("point %d: %w", i, ErrDegenerateGraph))
		}
	}

	return deg, nil
}

// Ddg returns the degree matrix of the given points as a full n×n diagonal
// matrix (the printable form of D).
func Ddg(points matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	a, err := Sym(points, opts...)
	if err != nil {
		return nil, errorf(opDdg, err)
	}
	// Zero degrees are legal to print; only normalization rejects them.
	deg, err := matrix.RowSums(a)
	if err != nil {
		return nil, errorf(opDdg, err)
	}
	d, err := matrix.Diag(deg)
	if err != nil {
		return nil, errorf(opDdg, err)
	}

	return d, nil
}

// Normalize computes W = D^(−1/2)·A·D^(−1/2) from A and its degree vector
// without forming D^(−1/2): rows, then columns, are scaled by 1/sqrt(D[i]).
func Normalize(a matrix.Matrix, degrees []float64) (*matrix.Dense, error) {
	inv := make([]float64, len(degrees))
	for i, d := range degrees {
		if d <= 0 {
			return nil, errorf(opNorm, fmt.Errorf("point %d: %w", i, ErrDegenerateGraph))
		}
		inv[i] = 1 / math.Sqrt(d)
	}
	rows, err := matrix.ScaleRows(a, inv)
	if err != nil {
		return nil, errorf(opNorm, err)
	}
	w, err := matrix.ScaleCols(rows, inv)
	if err != nil {
		return nil, errorf(opNorm, err)
	}

	return w, nil
}

// Norm returns the normalized similarity matrix W of the given points.
func Norm(points matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	g, err := Build(points, opts...)
	if err != nil {
		return nil, errorf(opNorm, err)
	}

	return g.W, nil
}

// Build derives A, D and W in one pass.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (n < 2), ErrDegenerateGraph.
func Build(points matrix.Matrix, opts ...Option) (*Graph, error) {
	a, err := Sym(points, opts...)
	if err != nil {
		return nil, errorf(opBuild, err)
	}
	deg, err := Degrees(a)
	if err != nil {
		return nil, errorf(opBuild, err)
	}
	w, err := Normalize(a, deg)
	if err != nil {
		return nil, errorf(opBuild, err)
	}

	return &Graph{A: a, Degrees: deg, W: w}, nil
}
