// SPDX-License-Identifier: MIT

package similarity

import (
	"errors"

	"github.com/katalvlaran/symnmf/matrix"
)

// ErrDegenerateGraph is returned when a point has zero degree, so the
// normalization D^(−1/2) would divide by zero.
var ErrDegenerateGraph = errors.New("similarity: zero-degree point in similarity graph")

// MinPoints is the smallest point count a similarity graph accepts.
const MinPoints = 2

// Graph bundles the three matrices derived from one point set.
type Graph struct {
	// A is the n×n Gaussian similarity matrix with zero diagonal.
	A *matrix.Dense
	// Degrees holds D[i] = Σ_j A[i][j].
	Degrees []float64
	// W is D^(−1/2)·A·D^(−1/2).
	W *matrix.Dense
}

// Options configures graph construction.
type Options struct {
	// Workers bounds the row fan-out; ≤ 0 means GOMAXPROCS.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration defaults.
func DefaultOptions() Options {
	return Options{Workers: 0}
}

// WithWorkers bounds the number of goroutines used to fill A.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
