package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func TestValidateK(t *testing.T) {
	tests := []struct {
		k, n    int
		wantErr bool
	}{
		{2, 4, false},
		{3, 4, false},
		{1, 4, true},
		{0, 4, true},
		{4, 4, true},
		{-1, 4, true},
	}
	for _, tc := range tests {
		err := cluster.ValidateK(tc.k, tc.n)
		if tc.wantErr {
			require.ErrorIs(t, err, cluster.ErrInvalidClusterCount, "k=%d n=%d", tc.k, tc.n)
		} else {
			require.NoError(t, err, "k=%d n=%d", tc.k, tc.n)
		}
	}
}

func TestValidateMaxIter(t *testing.T) {
	require.NoError(t, cluster.ValidateMaxIter(2))
	require.NoError(t, cluster.ValidateMaxIter(999))
	require.ErrorIs(t, cluster.ValidateMaxIter(1), cluster.ErrInvalidIterationBound)
	require.ErrorIs(t, cluster.ValidateMaxIter(1000), cluster.ErrInvalidIterationBound)
}

func TestFromFactorArgMaxLowestColumnOnTie(t *testing.T) {
	h := dense(t, [][]float64{
		{0.9, 0.1},
		{0.2, 0.7},
		{0.5, 0.5},
	})
	labels, err := cluster.FromFactor(h)
	require.NoError(t, err)
	assert.Equal(t, cluster.Labels{0, 1, 0}, labels)

	_, err = cluster.FromFactor(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFromCentroids(t *testing.T) {
	points := dense(t, [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}, {5, 5.5}})
	centroids := dense(t, [][]float64{{0, 0.5}, {10, 10.5}})

	for _, workers := range []int{1, 2, 0} {
		labels, err := cluster.FromCentroids(points, centroids, workers)
		require.NoError(t, err)
		// the last point is equidistant: lowest centroid index wins
		assert.Equal(t, cluster.Labels{0, 0, 1, 1, 0}, labels)
	}

	_, err := cluster.FromCentroids(points, dense(t, [][]float64{{1, 2, 3}}), 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestGroups(t *testing.T) {
	l := cluster.Labels{2, 0, 2, 0}
	groups := l.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, []uint32{1, 3}, groups[0].ToArray())
	assert.True(t, groups[1].IsEmpty())
	assert.Equal(t, []uint32{0, 2}, groups[2].ToArray())
	assert.Equal(t, 3, l.NumClusters())
	assert.Equal(t, 2, l.Distinct())
}

func TestLabelsValidate(t *testing.T) {
	require.NoError(t, cluster.Labels{0, 1}.Validate(2))
	require.ErrorIs(t, cluster.Labels{0}.Validate(2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, cluster.Labels{0, -1}.Validate(2), cluster.ErrInvalidLabel)
}
