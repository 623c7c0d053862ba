// SPDX-License-Identifier: MIT

package matrixio

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/symnmf/matrix"
)

// JoinByKey inner-joins a and b on their first column.
// Output rows are a's remaining columns followed by b's, ordered by
// ascending key; rows with equal keys keep a-major, then b, input order.
// A key present several times on both sides yields every pairing.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil input.
//   - matrix.ErrDimensionMismatch when no value column remains.
//   - ErrMalformedInput when the inputs share no key.
//
// Complexity: O(na + nb + r log r) for r output rows.
func JoinByKey(a, b matrix.Matrix) (*matrix.Dense, error) {
	ad, err := matrix.AsDense(a)
	if err != nil {
		return nil, fmt.Errorf("matrixio.JoinByKey: %w", err)
	}
	bd, err := matrix.AsDense(b)
	if err != nil {
		return nil, fmt.Errorf("matrixio.JoinByKey: %w", err)
	}
	cols := ad.Cols() - 1 + bd.Cols() - 1
	if cols < 1 {
		return nil, fmt.Errorf("matrixio.JoinByKey: no value columns: %w", matrix.ErrDimensionMismatch)
	}

	byKey := make(map[float64][]int, bd.Rows())
	for j := 0; j < bd.Rows(); j++ {
		row, _ := bd.Row(j)
		byKey[row[0]] = append(byKey[row[0]], j)
	}

	type joined struct {
		key float64
		ai  int
		bj  int
	}
	var pairs []joined
	for i := 0; i < ad.Rows(); i++ {
		row, _ := ad.Row(i)
		for _, j := range byKey[row[0]] {
			pairs = append(pairs, joined{key: row[0], ai: i, bj: j})
		}
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("matrixio.JoinByKey: no common keys: %w", ErrMalformedInput)
	}
	slices.SortStableFunc(pairs, func(x, y joined) int { return cmp.Compare(x.key, y.key) })

	data := make([]float64, 0, len(pairs)*cols)
	for _, p := range pairs {
		ar, _ := ad.Row(p.ai)
		br, _ := bd.Row(p.bj)
		data = append(data, ar[1:]...)
		data = append(data, br[1:]...)
	}

	return matrix.NewDenseFromData(len(pairs), cols, data)
}
