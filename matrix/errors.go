// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and its callers. Kernels return these sentinels (optionally wrapped
// with an operation tag via %w) and tests match them with errors.Is.
// No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and easy
// grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) when context
// matters; callers still match with errors.Is.
//
// ERROR PRIORITY:
// nil -> shape -> index -> NaN/Inf.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands or
	// between pipeline stages, e.g. Sub of different shapes, Mul where
	// a.Cols != b.Rows, an initial factor that is not n×k, or ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNegativeEntry signals a negative value where a non-negative matrix
	// was required (factor matrices, similarity matrices).
	ErrNegativeEntry = errors.New("matrix: negative entry in non-negative matrix")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrInvalidDimension names the "mismatched shapes between stages" failure kind.
// It aliases ErrDimensionMismatch so errors.Is matches either name.
var ErrInvalidDimension = ErrDimensionMismatch

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
