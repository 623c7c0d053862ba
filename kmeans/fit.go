// SPDX-License-Identifier: MIT

package kmeans

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/symnmf/matrix"
)

// Fit initializes centroids with the given method and refines them.
// rng is only consulted for InitKMeansPlusPlus; a nil rng there falls back
// to DefaultSeed. The chosen seed indices are returned for K-means++ and
// are 0..k-1 for InitFirstK.
func Fit(points matrix.Matrix, k int, init Init, rng *rand.Rand, opts ...Option) (*Result, []int, error) {
	var (
		initial *matrix.Dense
		chosen  []int
		err     error
	)
	switch init {
	case InitKMeansPlusPlus:
		if rng == nil {
			rng = rand.New(rand.NewSource(DefaultSeed))
		}
		initial, chosen, err = Seed(points, k, rng)
	case InitFirstK:
		initial, err = FirstK(points, k)
		if err == nil {
			chosen = make([]int, k)
			for i := range chosen {
				chosen[i] = i
			}
		}
	default:
		err = fmt.Errorf("kmeans.Fit: %s: %w", init, ErrUnknownInit)
	}
	if err != nil {
		return nil, nil, err
	}

	res, err := Refine(points, initial, opts...)
	if err != nil {
		return nil, nil, err
	}

	return res, chosen, nil
}
