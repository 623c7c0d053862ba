// Package silhouette scores a clustering by its silhouette coefficients and
// compares two clusterings of the same points.
//
// For point i in cluster C:
//
//	a(i) = mean distance from i to the other members of C
//	b(i) = min over clusters C' ≠ C of the mean distance from i to C'
//	s(i) = (b(i) − a(i)) / max(a(i), b(i)), and 0 when a(i) = b(i) = 0
//
// A point alone in its cluster contributes s(i) = 0, so splitting off
// outliers never inflates the score.
//
// The score is the mean of s(i) over all points, in [−1, 1], higher is
// better. An assignment that uses fewer than two distinct labels scores 0.
// Distances are Euclidean. The score depends only on which points share a
// cluster, so renaming the labels never changes it.
//
// Coefficients fan out over points on a worker pool, each writing its own
// slot; the mean is taken over the finished slice, so the score is
// independent of the worker count.
package silhouette
