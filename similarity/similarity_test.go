package similarity_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/similarity"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	return m
}

func randomPoints(t *testing.T, n, d int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, d)
	require.NoError(t, err)
	m.Apply(func(_, _ int, _ float64) float64 { return 3 * rng.Float64() })
	return m
}

func TestSymValues(t *testing.T) {
	a, err := similarity.Sym(dense(t, [][]float64{{0, 0}, {0, 1}, {1, 1}}))
	require.NoError(t, err)

	want := [][]float64{
		{0, math.Exp(-0.5), math.Exp(-1)},
		{math.Exp(-0.5), 0, math.Exp(-0.5)},
		{math.Exp(-1), math.Exp(-0.5), 0},
	}
	assert.Equal(t, want, a.ToRows())
}

// TestSymDiagonalZeroAndSymmetric checks the structural invariants of A on random inputs.
func TestSymDiagonalZeroAndSymmetric(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		a, err := similarity.Sym(randomPoints(t, 25, 3, seed))
		require.NoError(t, err)
		for i := 0; i < a.Rows(); i++ {
			v, _ := a.At(i, i)
			require.Zero(t, v)
		}
		require.NoError(t, matrix.ValidateSymmetric(a, 1e-9))
		require.NoError(t, matrix.ValidateNonNegative(a))
	}
}

func TestSymWorkerCountDoesNotChangeResult(t *testing.T) {
	p := randomPoints(t, 40, 4, 9)
	one, err := similarity.Sym(p, similarity.WithWorkers(1))
	require.NoError(t, err)
	many, err := similarity.Sym(p, similarity.WithWorkers(7))
	require.NoError(t, err)
	require.Equal(t, one.ToRows(), many.ToRows())
}

func TestSymRejectsTooFewPoints(t *testing.T) {
	_, err := similarity.Sym(dense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = similarity.Sym(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDdg(t *testing.T) {
	p := dense(t, [][]float64{{0, 0}, {0, 1}, {1, 1}})
	d, err := similarity.Ddg(p)
	require.NoError(t, err)

	a, err := similarity.Sym(p)
	require.NoError(t, err)
	sums, err := matrix.RowSums(a)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := d.At(i, j)
			if i == j {
				assert.Equal(t, sums[i], v)
			} else {
				assert.Zero(t, v)
			}
		}
	}
}

func TestBuildNormalization(t *testing.T) {
	g, err := similarity.Build(randomPoints(t, 12, 2, 4))
	require.NoError(t, err)

	n := g.A.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a, _ := g.A.At(i, j)
			w, _ := g.W.At(i, j)
			assert.InDelta(t, a/math.Sqrt(g.Degrees[i]*g.Degrees[j]), w, 1e-12)
		}
	}
	require.NoError(t, matrix.ValidateSymmetric(g.W, 1e-12))

	w, err := similarity.Norm(randomPoints(t, 12, 2, 4))
	require.NoError(t, err)
	require.Equal(t, g.W.ToRows(), w.ToRows())
}

// TestIsolatedPointIsDegenerate: exp(-‖Δ‖²/2) underflows to exactly 0 far away.
func TestIsolatedPointIsDegenerate(t *testing.T) {
	p := dense(t, [][]float64{{0, 0}, {0, 1}, {1000, 1000}})

	_, err := similarity.Norm(p)
	require.ErrorIs(t, err, similarity.ErrDegenerateGraph)
	require.Contains(t, err.Error(), "point 2")

	_, err = similarity.Build(p)
	require.ErrorIs(t, err, similarity.ErrDegenerateGraph)

	// the similarity and degree matrices are still printable
	_, err = similarity.Sym(p)
	require.NoError(t, err)
	_, err = similarity.Ddg(p)
	require.NoError(t, err)
}

func TestNormalizeRejectsZeroDegree(t *testing.T) {
	a := dense(t, [][]float64{{0, 1}, {1, 0}})
	_, err := similarity.Normalize(a, []float64{1, 0})
	require.ErrorIs(t, err, similarity.ErrDegenerateGraph)

	_, err = similarity.Normalize(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSuggestKFindsBlocks(t *testing.T) {
	points := dense(t, [][]float64{
		{0, 0}, {0, 1}, {1, 0},
		{20, 20}, {20, 21}, {21, 20},
		{-20, 20}, {-20, 21}, {-21, 20},
	})
	w, err := similarity.Norm(points)
	require.NoError(t, err)

	k, values, err := similarity.SuggestK(w, 6)
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	require.Len(t, values, 9)
	assert.InDelta(t, 1.0, values[0], 1e-9)
}

func TestSuggestKErrors(t *testing.T) {
	points := dense(t, [][]float64{{0, 0}, {0, 1}, {10, 10}, {10, 11}})
	w, err := similarity.Norm(points)
	require.NoError(t, err)

	_, _, err = similarity.SuggestK(w, 4)
	require.ErrorIs(t, err, cluster.ErrInvalidClusterCount)
	_, _, err = similarity.SuggestK(w, 1)
	require.ErrorIs(t, err, cluster.ErrInvalidClusterCount)
	_, _, err = similarity.SuggestK(points, 2)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
