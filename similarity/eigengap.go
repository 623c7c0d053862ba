// SPDX-License-Identifier: MIT

package similarity

import (
	"fmt"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/matrix/ops"
)

// Eigen solver settings for SuggestK; W is symmetric to rounding.
const (
	eigenTol       = 1e-9
	eigenMaxSweeps = 100
)

// SuggestK picks a cluster count for W by the eigengap heuristic: with the
// eigenvalues λ₁ ≥ … ≥ λₙ of W, it returns the k in [2, maxK] maximizing
// λ_k − λ_{k+1}; ties go to the smaller k. The sorted eigenvalues are
// returned alongside.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// matrix.ErrAsymmetry, cluster.ErrInvalidClusterCount unless 1 < maxK < n,
// ops.ErrEigenFailed.
// Complexity: O(n³) per Jacobi sweep.
func SuggestK(w matrix.Matrix, maxK int) (int, []float64, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return 0, nil, fmt.Errorf("similarity.SuggestK: %w", err)
	}
	if err := cluster.ValidateK(maxK, w.Rows()); err != nil {
		return 0, nil, fmt.Errorf("similarity.SuggestK: %w", err)
	}
	values, _, err := ops.EigenSym(w, eigenTol, eigenMaxSweeps)
	if err != nil {
		return 0, nil, fmt.Errorf("similarity.SuggestK: %w", err)
	}

	best, bestGap := 2, values[1]-values[2]
	for k := 3; k <= maxK; k++ {
		if gap := values[k-1] - values[k]; gap > bestGap {
			best, bestGap = k, gap
		}
	}

	return best, values, nil
}
