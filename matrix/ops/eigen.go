// SPDX-License-Identifier: MIT

// Package ops provides advanced decompositions on top of the matrix package.
package ops

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/symnmf/matrix"
)

// ErrEigenFailed is returned if the off-diagonal mass does not fall below
// tol within maxSweeps.
var ErrEigenFailed = errors.New("ops: eigen decomposition did not converge")

// EigenSym computes all eigenpairs of a real symmetric matrix by cyclic
// Jacobi rotations.
//
// Implementation:
//   - Stage 1: validate square and symmetric (|m_ij − m_ji| ≤ tol).
//   - Stage 2: copy m into a work buffer A; Q = I.
//   - Stage 3: sweep every (p, q), p < q, rotating A_pq to zero and
//     accumulating the rotation into Q, until Σ_{i≠j} A_ij² < tol².
//   - Stage 4: sort eigenvalues descending and permute Q's columns with them.
//
// Returns the eigenvalues and Q whose column j is the eigenvector of values[j].
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAsymmetry.
//   - ErrEigenFailed when maxSweeps is exhausted.
//
// Complexity:
//   - Time O(n³) per sweep, Space O(n²).
func EigenSym(m matrix.Matrix, tol float64, maxSweeps int) ([]float64, *matrix.Dense, error) {
	// Stage 1: Validate input
	if err := matrix.ValidateSymmetric(m, tol); err != nil {
		return nil, nil, fmt.Errorf("EigenSym: %w", err)
	}
	src, err := matrix.AsDense(m)
	if err != nil {
		return nil, nil, fmt.Errorf("EigenSym: %w", err)
	}
	n := src.Rows()

	// Stage 2: Prepare A (work) and Q (eigenvectors)
	a := src.CloneDense()
	q, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, nil, fmt.Errorf("EigenSym: %w", err)
	}
	for i := 0; i < n; i++ {
		_ = q.Set(i, i, 1)
	}
	ad, qd := views(a), views(q)

	// Stage 3: Execute Jacobi sweeps
	converged := false
	for sweep := 0; sweep < maxSweeps; sweep++ {
		if offDiagonal(ad) < tol*tol {
			converged = true
			break
		}
		for p := 0; p < n-1; p++ {
			for r := p + 1; r < n; r++ {
				rotate(ad, qd, p, r)
			}
		}
	}
	if !converged && offDiagonal(ad) >= tol*tol {
		return nil, nil, fmt.Errorf("EigenSym: %d sweeps: %w", maxSweeps, ErrEigenFailed)
	}

	// Stage 4: Sort eigenpairs by descending eigenvalue
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return ad[order[x]][order[x]] > ad[order[y]][order[y]] })

	values := make([]float64, n)
	vectors, _ := matrix.NewDense(n, n) // n ≥ 1 here
	vd := views(vectors)
	for j, col := range order {
		values[j] = ad[col][col]
		for i := 0; i < n; i++ {
			vd[i][j] = qd[i][col]
		}
	}

	return values, vectors, nil
}

// views returns write-through row views of m.
func views(m *matrix.Dense) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i], _ = m.Row(i) // i is in range
	}

	return out
}

// offDiagonal returns Σ_{i≠j} a_ij².
func offDiagonal(a [][]float64) float64 {
	var sum float64
	for i, row := range a {
		for j, v := range row {
			if i != j {
				sum += v * v
			}
		}
	}

	return sum
}

// rotate zeroes a[p][r] with one Jacobi rotation and accumulates it into q.
func rotate(a, q [][]float64, p, r int) {
	apr := a[p][r]
	if apr == 0 {
		return
	}
	app, arr := a[p][p], a[r][r]
	theta := (arr - app) / (2 * apr)
	t := 1 / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	if theta < 0 {
		t = -t
	}
	c := 1 / math.Sqrt(t*t+1)
	s := t * c

	a[p][p] = app - t*apr
	a[r][r] = arr + t*apr
	a[p][r], a[r][p] = 0, 0
	for i := range a {
		if i == p || i == r {
			continue
		}
		aip, air := a[i][p], a[i][r]
		a[i][p] = c*aip - s*air
		a[p][i] = a[i][p]
		a[i][r] = s*aip + c*air
		a[r][i] = a[i][r]
	}
	for i := range q {
		qip, qir := q[i][p], q[i][r]
		q[i][p] = c*qip - s*qir
		q[i][r] = s*qip + c*qir
	}
}
