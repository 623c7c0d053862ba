// Package pipeline is the core facade behind the symnmf commands.
//
// It wires the building blocks into the operations a caller actually runs:
//
//	ComputeSimilarity / ComputeDegree / ComputeNormalized   A, D, W from points
//	RunSymNMF        W → H with the damped multiplicative solver
//	RunKMeans        K-means++ (or first-k) seeding + Lloyd refinement
//	LabelsFromFactor / LabelsFromCentroids                  assignments
//	Compare / Analyze                                       silhouette scores
//	Elbow            K-means inertia for k = 2..maxK
//
// and dispatches the printable goals (sym, ddg, norm, symnmf) through the
// Goal enum. Every operation reports its duration to a telemetry
// MetricsObserver and logs through a telemetry Logger; both default to no-ops.
package pipeline
