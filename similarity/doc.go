// Package similarity builds the graph matrices of the symNMF pipeline from a
// point set (one point per row):
//
//   - A, the Gaussian similarity matrix: A[i][j] = exp(-‖p_i − p_j‖² / 2) for
//     i ≠ j and A[i][i] = 0.
//   - D, the degree vector: D[i] = Σ_j A[i][j]. Ddg materializes it as the
//     n×n diagonal matrix for printing.
//   - W = D^(−1/2)·A·D^(−1/2), the normalized similarity, computed by scaling
//     rows then columns by 1/sqrt(D[i]).
//
// A point whose degree is zero (similarity 0 to every other point, typically
// because exp underflows) makes W undefined; Degrees, Norm and Build fail
// with ErrDegenerateGraph naming the offending index.
//
// Only the upper triangle of A is evaluated. Rows are spread over a worker
// pool (WithWorkers); each task writes cells owned by its own row pair, so
// results are bit-identical for any worker count.
package similarity
