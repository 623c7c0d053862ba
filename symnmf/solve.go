// SPDX-License-Identifier: MIT

package symnmf

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
)

const opSolve = "symnmf.Solve"

func solveErrorf(err error) error {
	return fmt.Errorf("%s: %w", opSolve, err)
}

// Solve iterates the multiplicative update H ← H ⊙ (W·H)/(H·Hᵀ·H) from H0
// until convergence. WithBeta damps the step and WithMonotoneGuard shrinks it
// whenever the residual would rise.
//
// Implementation:
//   - Stage 1: validate W (square), k (1 < k < n), H0 (n×k, non-negative) and
//     MaxIter (≥ 1). H0 is cloned; the caller's matrix is never touched.
//   - Stage 2: per iteration compute N = W·H and Den = H·(Hᵀ·H), the ratio
//     R = N / Den with floored cells set to 1, and the candidate
//     H' = H ⊙ ((1−β) + β·R).
//   - Stage 3 (guard, opt-in): while ‖W − H'·H'ᵀ‖_F exceeds the current residual,
//     halve β and rebuild H'. If no step helps, H' = H and the run converges.
//   - Stage 4: delta = ‖H' − H‖_F², copy H' into the owned buffer, stop on
//     delta < Epsilon or Iterations == MaxIter.
//
// Behavior highlights:
//   - H stays non-negative: every factor (1−β) + β·R is ≥ 0.
//   - With the guard on, Result.Residuals is non-increasing.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrNegativeEntry.
//   - cluster.ErrInvalidClusterCount, cluster.ErrInvalidIterationBound.
//
// Complexity:
//   - Time O(MaxIter·n²·k), Space O(n² + n·k).
func Solve(w, h0 matrix.Matrix, k int, opts ...Option) (*Result, error) {
	o := resolve(opts)

	wd, err := matrix.AsDense(w)
	if err != nil {
		return nil, solveErrorf(err)
	}
	if err = matrix.ValidateSquare(wd); err != nil {
		return nil, solveErrorf(err)
	}
	n := wd.Rows()
	if err = cluster.ValidateK(k, n); err != nil {
		return nil, solveErrorf(err)
	}
	if err = matrix.ValidateShape(h0, n, k); err != nil {
		return nil, solveErrorf(err)
	}
	if err = matrix.ValidateNonNegative(h0); err != nil {
		return nil, solveErrorf(err)
	}
	if o.MaxIter < 1 {
		return nil, solveErrorf(fmt.Errorf("max_iter=%d: %w", o.MaxIter, cluster.ErrInvalidIterationBound))
	}

	h0d, err := matrix.AsDense(h0)
	if err != nil {
		return nil, solveErrorf(err)
	}
	s := &solver{w: wd, h: h0d.CloneDense(), opts: o}
	if err = s.run(); err != nil {
		return nil, solveErrorf(err)
	}

	return &Result{H: s.h, Iterations: s.iterations, Converged: s.converged, Residuals: s.residuals}, nil
}

// Run draws H0 with InitH from the option's random source (DefaultSeed when
// none is given) and calls Solve.
func Run(w matrix.Matrix, k int, opts ...Option) (*Result, error) {
	o := resolve(opts)
	rng := o.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(DefaultSeed))
	}
	h0, err := InitH(w, k, rng)
	if err != nil {
		return nil, err
	}

	return Solve(w, h0, k, opts...)
}

// solver holds the per-run state; h is mutated in place.
type solver struct {
	w    *matrix.Dense
	h    *matrix.Dense
	opts Options

	ones       *matrix.Dense // fallback ratio for floored cells
	wh         *matrix.Dense // W·H for the current h
	residual   float64       // ‖W − H·Hᵀ‖_F for the current h (guard/trace only)
	iterations int
	converged  bool
	residuals  []float64
}

func (s *solver) trackResidual() bool { return s.opts.MonotoneGuard || s.opts.TraceResidual }

func (s *solver) run() error {
	zeros, err := matrix.ZerosLike(s.h)
	if err != nil {
		return err
	}
	if s.ones, err = matrix.Affine(zeros, 0, 1); err != nil {
		return err
	}
	if s.wh, err = matrix.Mul(s.w, s.h); err != nil {
		return err
	}
	if s.trackResidual() {
		if s.residual, err = Residual(s.w, s.h); err != nil {
			return err
		}
	}
	if s.opts.TraceResidual {
		s.residuals = append(s.residuals, s.residual)
	}

	for s.iterations < s.opts.MaxIter {
		delta, err := s.step()
		if err != nil {
			return err
		}
		s.iterations++
		if s.opts.TraceResidual {
			s.residuals = append(s.residuals, s.residual)
		}
		if delta < s.opts.Epsilon {
			s.converged = true
			break
		}
	}

	return nil
}

// step applies one update to s.h and returns ‖H_new − H_old‖_F².
func (s *solver) step() (float64, error) {
	gram, err := matrix.Gram(s.h)
	if err != nil {
		return 0, err
	}
	den, err := matrix.Mul(s.h, gram)
	if err != nil {
		return 0, err
	}
	ratio, err := matrix.SafeDivide(s.wh, den, s.ones, DenominatorFloor)
	if err != nil {
		return 0, err
	}

	beta := s.opts.Beta
	var (
		next    *matrix.Dense
		nextRes float64
	)
	for attempt := 0; ; attempt++ {
		if next, err = s.candidate(ratio, beta); err != nil {
			return 0, err
		}
		if !s.opts.MonotoneGuard && !s.opts.TraceResidual {
			break
		}
		if nextRes, err = Residual(s.w, next); err != nil {
			return 0, err
		}
		if !s.opts.MonotoneGuard || nextRes <= s.residual {
			break
		}
		if attempt == maxGuardHalvings {
			// No improving step exists at this resolution; keep H.
			next, nextRes = s.h.CloneDense(), s.residual
			break
		}
		beta /= 2
	}

	diff, err := matrix.Sub(next, s.h)
	if err != nil {
		return 0, err
	}
	delta, err := matrix.SquaredFrobenius(diff)
	if err != nil {
		return 0, err
	}
	if err = s.h.CopyFrom(next); err != nil {
		return 0, err
	}
	if s.wh, err = matrix.Mul(s.w, s.h); err != nil {
		return 0, err
	}
	s.residual = nextRes

	return delta, nil
}

// candidate returns H ⊙ ((1−beta) + beta·ratio).
func (s *solver) candidate(ratio *matrix.Dense, beta float64) (*matrix.Dense, error) {
	factor, err := matrix.Affine(ratio, beta, 1-beta)
	if err != nil {
		return nil, err
	}

	return matrix.Hadamard(s.h, factor)
}

// Residual returns ‖W − H·Hᵀ‖_F.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n²·k).
func Residual(w, h matrix.Matrix) (float64, error) {
	ht, err := matrix.Transpose(h)
	if err != nil {
		return 0, err
	}
	hht, err := matrix.Mul(h, ht)
	if err != nil {
		return 0, err
	}
	diff, err := matrix.Sub(w, hht)
	if err != nil {
		return 0, err
	}

	return matrix.FrobeniusNorm(diff)
}
