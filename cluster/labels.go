// SPDX-License-Identifier: MIT

package cluster

import (
	"context"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/symnmf/internal/parallel"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/vecmath"
)

// Labels maps point index to cluster index.
type Labels []int

// NumClusters returns max(label)+1, or 0 for an empty assignment.
func (l Labels) NumClusters() int {
	k := 0
	for _, c := range l {
		if c+1 > k {
			k = c + 1
		}
	}

	return k
}

// Distinct returns the number of distinct labels actually used.
func (l Labels) Distinct() int {
	n := 0
	for _, g := range l.Groups() {
		if !g.IsEmpty() {
			n++
		}
	}

	return n
}

// Groups returns one membership bitmap per cluster index in [0, NumClusters()).
// Clusters that received no points get an empty bitmap.
func (l Labels) Groups() []*roaring.Bitmap {
	groups := make([]*roaring.Bitmap, l.NumClusters())
	for c := range groups {
		groups[c] = roaring.New()
	}
	for i, c := range l {
		if c >= 0 {
			groups[c].Add(uint32(i))
		}
	}

	return groups
}

// Validate checks that l has exactly n entries and no negative labels.
func (l Labels) Validate(n int) error {
	if len(l) != n {
		return fmt.Errorf("cluster: %d labels for %d points: %w", len(l), n, matrix.ErrDimensionMismatch)
	}
	for i, c := range l {
		if c < 0 {
			return fmt.Errorf("cluster: point %d label %d: %w", i, c, ErrInvalidLabel)
		}
	}

	return nil
}

// FromFactor labels point i with arg-max_j H[i][j]; ties go to the lowest column.
// Errors: matrix.ErrNilMatrix.
// Complexity: O(n*k).
func FromFactor(h matrix.Matrix) (Labels, error) {
	hd, err := matrix.AsDense(h)
	if err != nil {
		return nil, fmt.Errorf("cluster.FromFactor: %w", err)
	}
	labels := make(Labels, hd.Rows())
	for i := range labels {
		row, _ := hd.Row(i) // i is in range
		labels[i] = vecmath.ArgMax(row)
	}

	return labels, nil
}

// FromCentroids labels each point with its nearest centroid (Euclidean);
// ties go to the lowest centroid index.
//
// Rows are assigned on a worker pool; every task writes only its own label.
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch when the centroid
// dimension differs from the point dimension.
// Complexity: O(n*k*d).
func FromCentroids(points, centroids matrix.Matrix, workers int) (Labels, error) {
	pd, err := matrix.AsDense(points)
	if err != nil {
		return nil, fmt.Errorf("cluster.FromCentroids: points: %w", err)
	}
	cd, err := matrix.AsDense(centroids)
	if err != nil {
		return nil, fmt.Errorf("cluster.FromCentroids: centroids: %w", err)
	}
	if pd.Cols() != cd.Cols() {
		return nil, fmt.Errorf("cluster.FromCentroids: point dim %d, centroid dim %d: %w",
			pd.Cols(), cd.Cols(), matrix.ErrDimensionMismatch)
	}

	labels := make(Labels, pd.Rows())
	err = parallel.ForEachRow(context.Background(), pd.Rows(), workers, func(i int) error {
		labels[i] = Nearest(pd, cd, i)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return labels, nil
}

// Nearest returns the index of the centroid row closest to points row i,
// breaking ties toward the lowest index. Both matrices must share a column count.
func Nearest(points, centroids *matrix.Dense, i int) int {
	p, _ := points.Row(i)
	dist := make([]float64, centroids.Rows())
	for c := range dist {
		row, _ := centroids.Row(c)
		dist[c] = vecmath.MustSquaredDistance(p, row)
	}

	return vecmath.ArgMin(dist)
}
