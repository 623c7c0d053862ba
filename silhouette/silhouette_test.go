package silhouette_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/silhouette"
)

func scenarioPoints(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows([][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}})
	require.NoError(t, err)
	return m
}

func TestScoreSeparatedPairs(t *testing.T) {
	points := scenarioPoints(t)

	score, err := silhouette.Score(points, cluster.Labels{0, 0, 1, 1})
	require.NoError(t, err)

	// a = 1, b = mean(√200, √221) for point 0
	b := (math.Sqrt(200) + math.Sqrt(221)) / 2
	s, err := silhouette.Coefficients(points, cluster.Labels{0, 0, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 1-1/b, s[0], 1e-12)
	assert.Greater(t, score, 0.9)
	assert.LessOrEqual(t, score, 1.0)
}

func TestScoreBadSplitIsNegative(t *testing.T) {
	points := scenarioPoints(t)
	score, err := silhouette.Score(points, cluster.Labels{0, 1, 0, 1})
	require.NoError(t, err)
	assert.Less(t, score, 0.0)
}

func TestScoreRelabelInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	rows := make([][]float64, 30)
	labels := make(cluster.Labels, 30)
	for i := range rows {
		rows[i] = []float64{rng.Float64() * 10, rng.Float64() * 10}
		labels[i] = rng.Intn(3)
	}
	points, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	base, err := silhouette.Score(points, labels)
	require.NoError(t, err)

	// permute 0→7, 1→2, 2→0; the gap at labels 1 and 3..6 is left empty
	perm := map[int]int{0: 7, 1: 2, 2: 0}
	renamed := make(cluster.Labels, len(labels))
	for i, l := range labels {
		renamed[i] = perm[l]
	}
	got, err := silhouette.Score(points, renamed)
	require.NoError(t, err)
	assert.InDelta(t, base, got, 1e-12)
}

func TestScoreIndependentOfWorkers(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	rows := make([][]float64, 57)
	labels := make(cluster.Labels, 57)
	for i := range rows {
		rows[i] = []float64{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		labels[i] = i % 4
	}
	points, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	serial, err := silhouette.Score(points, labels, silhouette.WithWorkers(1))
	require.NoError(t, err)
	for _, w := range []int{2, 5, 0} {
		got, err := silhouette.Score(points, labels, silhouette.WithWorkers(w))
		require.NoError(t, err)
		require.Equal(t, serial, got, "workers=%d", w)
	}
}

func TestCoefficientsSingleton(t *testing.T) {
	points := scenarioPoints(t)
	s, err := silhouette.Coefficients(points, cluster.Labels{0, 1, 1, 1})
	require.NoError(t, err)
	// point 0 is alone in its cluster
	assert.Equal(t, 0.0, s[0])
	assert.Less(t, s[1], 0.0)
	for _, v := range s {
		assert.GreaterOrEqual(t, v, -1.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestCoefficientsCoincidentPoints(t *testing.T) {
	points, err := matrix.NewDenseFromRows([][]float64{{1, 1}, {1, 1}, {1, 1}})
	require.NoError(t, err)
	s, err := silhouette.Coefficients(points, cluster.Labels{0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0}, s)
}

func TestScoreSingleCluster(t *testing.T) {
	score, err := silhouette.Score(scenarioPoints(t), cluster.Labels{2, 2, 2, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.0, score)
}

func TestCompare(t *testing.T) {
	points := scenarioPoints(t)
	good, bad, err := silhouette.Compare(points, cluster.Labels{0, 0, 1, 1}, cluster.Labels{0, 1, 0, 1})
	require.NoError(t, err)
	assert.Greater(t, good, bad)

	_, _, err = silhouette.Compare(points, cluster.Labels{0, 0, 1, 1}, cluster.Labels{0, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestScoreErrors(t *testing.T) {
	points := scenarioPoints(t)

	_, err := silhouette.Score(points, cluster.Labels{0, 1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = silhouette.Score(points, cluster.Labels{0, -1, 1, 1})
	require.ErrorIs(t, err, cluster.ErrInvalidLabel)

	_, err = silhouette.Score(nil, cluster.Labels{0, 1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
