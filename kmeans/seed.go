// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/vecmath"
)

// validateSeedK checks 1 ≤ k < n, the range the seeders accept.
func validateSeedK(k, n int) error {
	if k < 1 || k >= n {
		return fmt.Errorf("k=%d with n=%d: %w", k, n, cluster.ErrInvalidClusterCount)
	}

	return nil
}

// Seed chooses k initial centroids with K-means++.
//
// Implementation:
//   - Stage 1: first index = rng.Intn(n).
//   - Stage 2: keep w[i] = squared distance from point i to its nearest chosen
//     centroid; draw target = rng.Float64()·Σw and take the first index whose
//     running sum exceeds target. Chosen points have w = 0 and are never drawn
//     again. If every weight is 0 (duplicates only), the lowest unchosen index
//     is taken.
//   - Stage 3: copy the chosen rows into a fresh k×d matrix.
//
// Returns the centroids and the chosen point indices in draw order.
//
// Errors:
//   - matrix.ErrNilMatrix, cluster.ErrInvalidClusterCount (k < 1 or k ≥ n), ErrNilRand.
//
// Complexity:
//   - Time O(n·k·d), Space O(n + k·d).
func Seed(points matrix.Matrix, k int, rng *rand.Rand) (*matrix.Dense, []int, error) {
	pd, err := matrix.AsDense(points)
	if err != nil {
		return nil, nil, fmt.Errorf("kmeans.Seed: %w", err)
	}
	n := pd.Rows()
	if err = validateSeedK(k, n); err != nil {
		return nil, nil, fmt.Errorf("kmeans.Seed: %w", err)
	}
	if rng == nil {
		return nil, nil, fmt.Errorf("kmeans.Seed: %w", ErrNilRand)
	}

	chosen := make([]int, 0, k)
	taken := make([]bool, n)
	weights := make([]float64, n)

	pick := func(idx int) {
		chosen = append(chosen, idx)
		taken[idx] = true
		c, _ := pd.Row(idx)
		for i := 0; i < n; i++ {
			p, _ := pd.Row(i)
			d := vecmath.MustSquaredDistance(p, c)
			if len(chosen) == 1 || d < weights[i] {
				weights[i] = d
			}
		}
	}

	pick(rng.Intn(n))
	for len(chosen) < k {
		pick(drawWeighted(weights, taken, rng))
	}

	centroids, err := gather(pd, chosen)
	if err != nil {
		return nil, nil, fmt.Errorf("kmeans.Seed: %w", err)
	}

	return centroids, chosen, nil
}

// drawWeighted samples an index with probability weights[i]/Σweights.
func drawWeighted(weights []float64, taken []bool, rng *rand.Rand) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		for i, t := range taken {
			if !t {
				return i
			}
		}
	}

	target := rng.Float64() * total
	cum, last := 0.0, -1
	for i, w := range weights {
		if w == 0 {
			continue
		}
		cum += w
		last = i
		if cum > target {
			return i
		}
	}

	// Rounding can leave target ≥ cum; the last positive weight wins.
	return last
}

// FirstK returns a copy of the first k points as initial centroids.
// Errors: matrix.ErrNilMatrix, cluster.ErrInvalidClusterCount (k < 1 or k ≥ n).
func FirstK(points matrix.Matrix, k int) (*matrix.Dense, error) {
	pd, err := matrix.AsDense(points)
	if err != nil {
		return nil, fmt.Errorf("kmeans.FirstK: %w", err)
	}
	if err = validateSeedK(k, pd.Rows()); err != nil {
		return nil, fmt.Errorf("kmeans.FirstK: %w", err)
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	return gather(pd, idx)
}

// gather copies rows idx of pd into a new matrix.
func gather(pd *matrix.Dense, idx []int) (*matrix.Dense, error) {
	out, err := matrix.NewDense(len(idx), pd.Cols())
	if err != nil {
		return nil, err
	}
	for r, i := range idx {
		src, err := pd.Row(i)
		if err != nil {
			return nil, err
		}
		dst, _ := out.Row(r)
		copy(dst, src)
	}

	return out, nil
}
