// Package vecmath holds the point-level vector helpers shared by the
// similarity graph, K-means and silhouette code: Euclidean and squared
// distance, means and lowest-index arg-min/arg-max.
//
// Helpers delegate to gonum's floats and stat packages after checking lengths,
// so a length mismatch surfaces as matrix.ErrDimensionMismatch instead of a
// gonum panic.
package vecmath
