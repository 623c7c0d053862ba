// Package matrix offers the dense linear-algebra primitives used by the
// clustering pipeline.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix backed by one flat slice
//     (offset = i*cols + j), with bounds-safe At/Set.
//   - Explicit kernels for the symNMF multiplicative update: Mul, Transpose,
//     Sub, Hadamard, SafeDivide, Affine.
//   - Row/column scaling (ScaleRows, ScaleCols) used to build
//     D^(-1/2)·A·D^(-1/2) without materializing D^(-1/2).
//   - Reductions: RowSums, Mean, SquaredFrobenius, FrobeniusNorm.
//   - Central validators returning package sentinels (errors.Is friendly).
//
// Every kernel allocates a fresh result and never mutates its operands,
// except the explicit in-place helpers (CopyFrom, Apply).
//
// Loop orders are fixed (i→k→j for Mul, flat 0..n-1 elsewhere), so results are
// bit-for-bit reproducible for the same inputs.
package matrix
