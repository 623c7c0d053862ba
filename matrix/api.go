// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points that compose the canonical kernels.
//   - Avoid logic duplication; each facade delegates to one implementation.
//
// AI-Hints:
//   - Use AsDense at package boundaries so downstream loops run on the flat fast path.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ZerosLike returns a new zero matrix with the same shape as m.
// Handy to preallocate staging buffers across solver iterations.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.Rows(), m.Cols())
}

// AsDense returns m itself when it already is a *Dense and a dense copy otherwise.
// The caller must Clone the result before mutating it if m must stay untouched.
// Errors: ErrNilMatrix, wrapped At errors from foreign implementations.
// Complexity: O(1) for *Dense, O(r*c) otherwise.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("AsDense", err)
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf("AsDense", err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Gram returns mᵀ·m, the k×k Gram matrix of an n×k factor.
// Errors: ErrNilMatrix.
// Complexity: O(n*k²).
func Gram(m Matrix) (*Dense, error) {
	t, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf("Gram", err)
	}

	return Mul(t, m)
}
