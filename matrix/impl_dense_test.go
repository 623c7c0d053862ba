// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/symnmf/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m := MustDense(t, 3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the finite-only numeric policy.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

func TestNewDenseFromRows(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.Equal(t, 3, m.Rows())
	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.ToRows())

	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewDenseFromRowsDoesNotAlias(t *testing.T) {
	src := [][]float64{{1, 2}}
	m := FromRows(t, src)
	src[0][0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

func TestNewDenseFromData(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFromData(2, 3, data)
	require.NoError(t, err)
	data[0] = -1

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFromData(2, 2, data)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestRowViewAndCopy checks the view/copy contract of Row and RowCopy.
func TestRowViewAndCopy(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	view, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, 2, cap(view))
	view[0] = 30

	v, _ := m.At(1, 0)
	require.Equal(t, 30.0, v)

	cp, err := m.RowCopy(0)
	require.NoError(t, err)
	cp[0] = 10
	v, _ = m.At(0, 0)
	require.Equal(t, 1.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

func TestCopyFrom(t *testing.T) {
	dst := MustDense(t, 2, 2)
	src := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, src.ToRows(), dst.ToRows())

	require.ErrorIs(t, dst.CopyFrom(MustDense(t, 3, 2)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, dst.CopyFrom(nil), matrix.ErrNilMatrix)
}

func TestApply(t *testing.T) {
	m := MustDense(t, 2, 2)
	m.Apply(func(i, j int, _ float64) float64 { return float64(10*i + j) })
	require.Equal(t, [][]float64{{0, 1}, {10, 11}}, m.ToRows())
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
