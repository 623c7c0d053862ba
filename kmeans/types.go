// SPDX-License-Identifier: MIT

package kmeans

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
)

// Defaults of the solver.
const (
	DefaultMaxIter   = 300
	PlainMaxIter     = 200 // default of the first-k entry point
	DefaultTolerance = 1e-3
	DefaultSeed      = 1234
)

// ErrNilRand is returned when Seed receives a nil random source.
var ErrNilRand = errors.New("kmeans: nil random source")

// ErrUnknownInit is returned by ParseInit for an unrecognized method name.
var ErrUnknownInit = errors.New("kmeans: unknown init method")

// Init selects how initial centroids are chosen.
type Init int

const (
	// InitKMeansPlusPlus draws distance-weighted seeds (Seed).
	InitKMeansPlusPlus Init = iota
	// InitFirstK takes the first k points (FirstK).
	InitFirstK
)

// String returns the configuration name of the method.
func (i Init) String() string {
	switch i {
	case InitKMeansPlusPlus:
		return "kmeans++"
	case InitFirstK:
		return "first"
	default:
		return fmt.Sprintf("Init(%d)", int(i))
	}
}

// ParseInit maps "kmeans++" or "first" to an Init.
func ParseInit(s string) (Init, error) {
	switch s {
	case "kmeans++", "kmeanspp", "":
		return InitKMeansPlusPlus, nil
	case "first", "firstk":
		return InitFirstK, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownInit)
}

// phase is the state of the Lloyd loop.
type phase int

const (
	phaseAssign phase = iota
	phaseUpdate
	phaseCheck
	phaseDone
)

func (p phase) String() string {
	switch p {
	case phaseAssign:
		return "assign"
	case phaseUpdate:
		return "update"
	case phaseCheck:
		return "check"
	default:
		return "done"
	}
}

// Options configures Refine.
type Options struct {
	// MaxIter caps the number of Assign+Update passes; 1 < MaxIter < 1000.
	MaxIter int
	// Tolerance is the per-centroid movement below which the run converges.
	Tolerance float64
	// Workers bounds the Assign fan-out; ≤ 0 means GOMAXPROCS.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns MaxIter 300 and Tolerance 1e-3.
func DefaultOptions() Options {
	return Options{MaxIter: DefaultMaxIter, Tolerance: DefaultTolerance}
}

// WithMaxIter sets the iteration cap. Out-of-range values surface from
// Refine as cluster.ErrInvalidIterationBound.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithTolerance sets the convergence threshold. Panics on tol ≤ 0 or NaN.
func WithTolerance(tol float64) Option {
	if !(tol > 0) || math.IsInf(tol, 0) {
		panic("kmeans: WithTolerance(tol<=0)")
	}
	return func(o *Options) { o.Tolerance = tol }
}

// WithWorkers bounds the goroutines used by Assign.
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

// Result is the outcome of Refine.
type Result struct {
	// Centroids holds exactly k rows.
	Centroids *matrix.Dense
	// Labels assigns every point to its nearest final centroid.
	Labels cluster.Labels
	// Iterations counts Assign+Update passes.
	Iterations int
	// Converged reports that every centroid moved less than Tolerance.
	Converged bool
}
