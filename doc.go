// Package symnmf clusters point sets two ways, a graph-based symmetric
// non-negative matrix factorization and K-means, and compares the results
// by silhouette score.
//
// 🚀 What is symnmf?
//
//	A small, deterministic clustering toolkit that brings together:
//		• Similarity graphs: Gaussian A, degrees D, normalized W
//		• symNMF: damped multiplicative updates with a monotone residual
//		• K-means: K-means++ or first-k seeding, Lloyd refinement, inertia
//		• Comparison: silhouette coefficients, scores, eigengap k suggestion
//		• I/O: comma-separated matrices from files or S3, gz/zst/lz4 aware
//
// ✨ Guarantees
//
//   - Seeded randomness only; equal seeds give equal output.
//   - Worker count never changes a result; parallel tasks own disjoint rows.
//   - Ties break to the lowest index everywhere.
//
// Packages:
//
//	matrix/      Dense type, kernels, validators; matrix/ops eigen solver
//	vecmath/     distances, dot, norms, means (gonum floats/stat)
//	similarity/  A, D, W and SuggestK
//	symnmf/      H initialization and the solver
//	kmeans/      Seed, FirstK, Refine, Fit, Inertia
//	cluster/     Labels, assignment, shared validation
//	silhouette/  Coefficients, Score, Compare
//	matrixio/    Read, Write, Load, JoinByKey
//	pipeline/    facade and Goal dispatch
//	cmd/symnmf/  the CLI, with config/ and telemetry/
//
// Quick start:
//
//	go install github.com/katalvlaran/symnmf/cmd/symnmf@latest
//	symnmf analysis 3 points.txt
//	symnmf goal symnmf -k 3 points.txt.gz
//	symnmf kmeanspp 3 0.001 keys_a.txt keys_b.txt
package symnmf
