// SPDX-License-Identifier: MIT

package symnmf

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
)

// InitH draws an n×k factor with entries uniform in [0, 2·sqrt(mean(W)/k)).
//
// Implementation:
//   - Stage 1: validate W square, 1 < k < n and rng non-nil.
//   - Stage 2: compute the bound from mean(W) and fill H in row-major order,
//     one rng.Float64 per cell, so a fixed seed reproduces H exactly.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (W not square).
//   - cluster.ErrInvalidClusterCount, ErrNilRand.
//
// Complexity:
//   - Time O(n² + n·k), Space O(n·k).
func InitH(w matrix.Matrix, k int, rng *rand.Rand) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, fmt.Errorf("symnmf.InitH: %w", err)
	}
	if err := cluster.ValidateK(k, w.Rows()); err != nil {
		return nil, fmt.Errorf("symnmf.InitH: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("symnmf.InitH: %w", ErrNilRand)
	}
	mean, err := matrix.Mean(w)
	if err != nil {
		return nil, fmt.Errorf("symnmf.InitH: %w", err)
	}
	if mean < 0 {
		return nil, fmt.Errorf("symnmf.InitH: mean(W)=%g: %w", mean, matrix.ErrNegativeEntry)
	}
	bound := 2 * math.Sqrt(mean/float64(k))

	h, err := matrix.NewDense(w.Rows(), k)
	if err != nil {
		return nil, fmt.Errorf("symnmf.InitH: %w", err)
	}
	h.Apply(func(_, _ int, _ float64) float64 { return bound * rng.Float64() })

	return h, nil
}
