// SPDX-License-Identifier: MIT

package kmeans

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/internal/parallel"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/vecmath"
)

const opRefine = "kmeans.Refine"

// Refine runs Lloyd's algorithm from the given initial centroids.
//
// Implementation:
//   - Stage 1: validate 1 < k < n, 1 < MaxIter < 1000, matching dimensions.
//     The initial centroids are cloned.
//   - Stage 2: loop over the explicit phases
//     Assign → Update → ConvergenceCheck → (Assign | Done).
//   - Stage 3: label every point against the final centroids.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//   - cluster.ErrInvalidClusterCount, cluster.ErrInvalidIterationBound.
//
// Complexity:
//   - Time O(MaxIter·n·k·d), Space O(n + k·d).
func Refine(points, initial matrix.Matrix, opts ...Option) (*Result, error) {
	o := resolve(opts)

	pd, err := matrix.AsDense(points)
	if err != nil {
		return nil, fmt.Errorf("%s: points: %w", opRefine, err)
	}
	cd, err := matrix.AsDense(initial)
	if err != nil {
		return nil, fmt.Errorf("%s: centroids: %w", opRefine, err)
	}
	k, n := cd.Rows(), pd.Rows()
	if err = cluster.ValidateK(k, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opRefine, err)
	}
	if err = cluster.ValidateMaxIter(o.MaxIter); err != nil {
		return nil, fmt.Errorf("%s: %w", opRefine, err)
	}
	if cd.Cols() != pd.Cols() {
		return nil, fmt.Errorf("%s: centroid dim %d, point dim %d: %w",
			opRefine, cd.Cols(), pd.Cols(), matrix.ErrDimensionMismatch)
	}

	l := &lloyd{points: pd, centroids: cd.CloneDense(), opts: o, labels: make(cluster.Labels, n)}
	if err = l.run(); err != nil {
		return nil, fmt.Errorf("%s: %w", opRefine, err)
	}

	return &Result{
		Centroids:  l.centroids,
		Labels:     l.labels,
		Iterations: l.iterations,
		Converged:  l.converged,
	}, nil
}

// lloyd holds the mutable state of one refinement.
type lloyd struct {
	points    *matrix.Dense
	centroids *matrix.Dense
	opts      Options

	labels     cluster.Labels
	maxShift   float64
	iterations int
	converged  bool
}

func (l *lloyd) run() error {
	p := phaseAssign
	for p != phaseDone {
		switch p {
		case phaseAssign:
			if err := l.assign(); err != nil {
				return err
			}
			p = phaseUpdate
		case phaseUpdate:
			if err := l.update(); err != nil {
				return err
			}
			l.iterations++
			p = phaseCheck
		case phaseCheck:
			switch {
			case l.maxShift < l.opts.Tolerance:
				l.converged = true
				p = phaseDone
			case l.iterations >= l.opts.MaxIter:
				p = phaseDone
			default:
				p = phaseAssign
			}
		}
	}

	// Labels must describe the centroids actually returned.
	return l.assign()
}

// assign recomputes every point's nearest centroid from scratch.
func (l *lloyd) assign() error {
	return parallel.ForEachRow(context.Background(), l.points.Rows(), l.opts.Workers, func(i int) error {
		l.labels[i] = cluster.Nearest(l.points, l.centroids, i)
		return nil
	})
}

// update moves each centroid to the mean of its members; empty clusters stay put.
func (l *lloyd) update() error {
	k := l.centroids.Rows()
	members := make([][][]float64, k)
	for i, c := range l.labels {
		row, _ := l.points.Row(i)
		members[c] = append(members[c], row)
	}

	l.maxShift = 0
	prev := make([]float64, l.centroids.Cols())
	for c := 0; c < k; c++ {
		if len(members[c]) == 0 {
			continue
		}
		cur, _ := l.centroids.Row(c)
		copy(prev, cur)
		if err := vecmath.MeanInto(cur, members[c]); err != nil {
			return err
		}
		shift, err := vecmath.Distance(prev, cur)
		if err != nil {
			return err
		}
		l.maxShift = math.Max(l.maxShift, shift)
	}

	return nil
}

// Inertia returns Σ_i min_c ‖p_i − c‖², the within-cluster sum of squares.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func Inertia(points, centroids matrix.Matrix) (float64, error) {
	pd, err := matrix.AsDense(points)
	if err != nil {
		return 0, fmt.Errorf("kmeans.Inertia: %w", err)
	}
	cd, err := matrix.AsDense(centroids)
	if err != nil {
		return 0, fmt.Errorf("kmeans.Inertia: %w", err)
	}
	if pd.Cols() != cd.Cols() {
		return 0, fmt.Errorf("kmeans.Inertia: %w", matrix.ErrDimensionMismatch)
	}

	total := 0.0
	for i := 0; i < pd.Rows(); i++ {
		p, _ := pd.Row(i)
		c, _ := cd.Row(cluster.Nearest(pd, cd, i))
		total += vecmath.MustSquaredDistance(p, c)
	}

	return total, nil
}
