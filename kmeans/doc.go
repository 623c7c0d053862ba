// Package kmeans implements K-means clustering: K-means++ seeding followed by
// Lloyd refinement.
//
// Seeding:
//
//	Seed picks the first centroid uniformly, then each next one with
//	probability proportional to the squared distance from a point to its
//	nearest chosen centroid (cumulative-weight draw on an injected
//	*rand.Rand). A fixed seed reproduces the chosen indices exactly.
//	FirstK is the plain initializer that takes the first k points.
//
// Refinement:
//
//	Refine runs the Assign → Update → ConvergenceCheck state machine.
//	Assign recomputes every point-to-centroid distance from scratch (ties go
//	to the lowest centroid index); Update moves each centroid to the mean of
//	its points, and a centroid that received no points stays where it was.
//	The run ends once every centroid moved less than Tolerance or after
//	MaxIter passes.
//
// Centroids are always copies of point data, never views into the caller's
// matrix, and exactly k of them are returned.
package kmeans
