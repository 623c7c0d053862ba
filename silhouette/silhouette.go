// SPDX-License-Identifier: MIT

package silhouette

import (
	"context"
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/internal/parallel"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/vecmath"
)

// Options configures the comparator.
type Options struct {
	// Workers bounds the per-point fan-out; ≤ 0 means GOMAXPROCS.
	Workers int
}

// Option mutates Options.
type Option func(*Options)

// WithWorkers bounds the number of goroutines computing coefficients.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// Coefficients returns s(i) for every point.
//
// Implementation:
//   - Stage 1: validate len(labels) == n and labels ≥ 0; group members into
//     one roaring bitmap per label.
//   - Stage 2: with fewer than two non-empty groups every s(i) is 0.
//   - Stage 3: per point (worker pool) compute the mean distance to each
//     non-empty group, derive a(i), b(i) and s(i). A point alone in its
//     cluster scores 0.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, cluster.ErrInvalidLabel.
//
// Complexity:
//   - Time O(n²·d), Space O(n).
func Coefficients(points matrix.Matrix, labels cluster.Labels, opts ...Option) ([]float64, error) {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	pd, err := matrix.AsDense(points)
	if err != nil {
		return nil, fmt.Errorf("silhouette.Coefficients: %w", err)
	}
	n := pd.Rows()
	if err = labels.Validate(n); err != nil {
		return nil, fmt.Errorf("silhouette.Coefficients: %w", err)
	}

	groups := nonEmpty(labels.Groups())
	s := make([]float64, n)
	if len(groups) < 2 {
		return s, nil
	}

	err = parallel.ForEachRow(context.Background(), n, o.Workers, func(i int) error {
		s[i] = coefficient(pd, groups, labels, i)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("silhouette.Coefficients: %w", err)
	}

	return s, nil
}

type group struct {
	label   int
	members *roaring.Bitmap
}

func nonEmpty(all []*roaring.Bitmap) []group {
	out := make([]group, 0, len(all))
	for label, bm := range all {
		if !bm.IsEmpty() {
			out = append(out, group{label: label, members: bm})
		}
	}

	return out
}

// coefficient computes s(i) for one point.
func coefficient(pd *matrix.Dense, groups []group, labels cluster.Labels, i int) float64 {
	p, _ := pd.Row(i)
	a, b := 0.0, math.Inf(1)
	alone := false
	for _, g := range groups {
		own := g.label == labels[i]
		sum, cnt := 0.0, 0
		it := g.members.Iterator()
		for it.HasNext() {
			j := int(it.Next())
			if j == i {
				continue
			}
			q, _ := pd.Row(j)
			sum += math.Sqrt(vecmath.MustSquaredDistance(p, q))
			cnt++
		}
		switch {
		case own && cnt == 0:
			alone = true
		case own:
			a = sum / float64(cnt)
		default:
			b = math.Min(b, sum/float64(cnt))
		}
	}

	if alone || (a == 0 && b == 0) {
		return 0
	}

	return (b - a) / math.Max(a, b)
}

// Score returns the mean silhouette coefficient.
func Score(points matrix.Matrix, labels cluster.Labels, opts ...Option) (float64, error) {
	s, err := Coefficients(points, labels, opts...)
	if err != nil {
		return 0, err
	}
	return vecmath.Mean(s), nil
}

// Compare scores two assignments of the same points.
func Compare(points matrix.Matrix, a, b cluster.Labels, opts ...Option) (float64, float64, error) {
	sa, err := Score(points, a, opts...)
	if err != nil {
		return 0, 0, fmt.Errorf("silhouette.Compare: first: %w", err)
	}
	sb, err := Score(points, b, opts...)
	if err != nil {
		return 0, 0, fmt.Errorf("silhouette.Compare: second: %w", err)
	}

	return sa, sb, nil
}
