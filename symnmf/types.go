// SPDX-License-Identifier: MIT

package symnmf

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/symnmf/matrix"
)

// Defaults of the solver.
const (
	DefaultMaxIter = 300
	DefaultEpsilon = 1e-4
	DefaultBeta    = 1
	DefaultSeed    = 1234

	// DenominatorFloor guards the element-wise division: a cell of H·Hᵀ·H
	// below it produces no update for that cell.
	DenominatorFloor = 1e-12

	// maxGuardHalvings bounds the step search of the monotone guard.
	maxGuardHalvings = 40
)

// ErrNilRand is returned when InitH receives a nil random source.
var ErrNilRand = errors.New("symnmf: nil random source")

// Options configures Solve and Run.
//
// Fields:
//   - MaxIter: iteration cap (≥ 1).
//   - Epsilon: stop once ‖H_new − H_old‖_F² drops below it.
//   - Beta: damping in (0, 1]; 1 is the plain update H ⊙ (W·H)/(H·Hᵀ·H).
//   - MonotoneGuard: shrink the step whenever ‖W − H·Hᵀ‖_F would increase (opt-in).
//   - TraceResidual: record ‖W − H·Hᵀ‖_F before the first and after every iteration.
//   - Rand: random source used by Run to draw H0.
type Options struct {
	MaxIter       int
	Epsilon       float64
	Beta          float64
	MonotoneGuard bool
	TraceResidual bool
	Rand          *rand.Rand
}

// Option mutates Options. Constructors panic on programmer errors.
type Option func(*Options)

// DefaultOptions returns MaxIter 300, Epsilon 1e-4, Beta 1 and the guard off,
// i.e. the plain multiplicative update. Rand stays nil; Run then seeds from
// DefaultSeed.
func DefaultOptions() Options {
	return Options{
		MaxIter: DefaultMaxIter,
		Epsilon: DefaultEpsilon,
		Beta:    DefaultBeta,
	}
}

// WithMaxIter sets the iteration cap. Out-of-range values are reported by
// Solve as cluster.ErrInvalidIterationBound rather than panicking here.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithEpsilon sets the convergence threshold. Panics on eps ≤ 0 or NaN.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) || math.IsInf(eps, 0) {
		panic("symnmf: WithEpsilon(eps<=0)")
	}
	return func(o *Options) { o.Epsilon = eps }
}

// WithBeta sets the damping factor. Panics unless 0 < beta ≤ 1.
func WithBeta(beta float64) Option {
	if !(beta > 0 && beta <= 1) {
		panic("symnmf: WithBeta(beta not in (0,1])")
	}
	return func(o *Options) { o.Beta = beta }
}

// WithMonotoneGuard toggles the step-halving guard.
func WithMonotoneGuard(on bool) Option {
	return func(o *Options) { o.MonotoneGuard = on }
}

// WithResidualTrace records the residual of every iterate in Result.Residuals.
func WithResidualTrace() Option {
	return func(o *Options) { o.TraceResidual = true }
}

// WithRand injects the random source Run uses for H0. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("symnmf: WithRand(nil)")
	}
	return func(o *Options) { o.Rand = r }
}

// WithSeed creates a new seeded *rand.Rand for Run (deterministic).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rand.New(rand.NewSource(seed)) }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Result is the outcome of Solve.
type Result struct {
	// H is the final n×k factor, owned by the caller.
	H *matrix.Dense
	// Iterations is the number of updates applied.
	Iterations int
	// Converged reports that the update delta fell below Epsilon before MaxIter.
	Converged bool
	// Residuals holds ‖W − H·Hᵀ‖_F for H0 and every iterate when tracing is on.
	Residuals []float64
}
