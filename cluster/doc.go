// Package cluster turns solver output into per-point cluster labels.
//
// Labels come either from a symNMF factor H (arg-max of each row) or from a
// K-means centroid set (arg-min Euclidean distance). Ties always go to the
// lowest index so runs are reproducible.
//
// The package also owns the validation shared by both solvers:
//
//	cluster.ValidateK(k, n)          // 1 < k < n, else ErrInvalidClusterCount
//	cluster.ValidateMaxIter(maxIter) // 1 < maxIter < 1000, else ErrInvalidIterationBound
//
// Labels.Groups exposes membership as roaring bitmaps, one per cluster index,
// which the silhouette comparator walks to average intra- and inter-cluster
// distances.
package cluster
