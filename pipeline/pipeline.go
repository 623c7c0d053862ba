// SPDX-License-Identifier: MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/silhouette"
	"github.com/katalvlaran/symnmf/similarity"
	"github.com/katalvlaran/symnmf/symnmf"
)

// ErrInvalidTolerance is returned for a K-means tolerance that is not a
// positive finite number.
var ErrInvalidTolerance = errors.New("pipeline: tolerance must be positive and finite")

func (o Options) stage(name string, start time.Time, err error) {
	o.Observer.OnStage(name, time.Since(start), err)
}

// ComputeSimilarity returns A.
func ComputeSimilarity(points matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := resolve(opts)
	start := time.Now()
	a, err := similarity.Sym(points, similarity.WithWorkers(o.Workers))
	o.stage("sym", start, err)

	return a, err
}

// ComputeDegree returns D as a full n×n diagonal matrix.
func ComputeDegree(points matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := resolve(opts)
	start := time.Now()
	d, err := similarity.Ddg(points, similarity.WithWorkers(o.Workers))
	o.stage("ddg", start, err)

	return d, err
}

// ComputeNormalized returns W = D^(-1/2) A D^(-1/2).
func ComputeNormalized(points matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := resolve(opts)
	start := time.Now()
	w, err := similarity.Norm(points, similarity.WithWorkers(o.Workers))
	o.stage("norm", start, err)

	return w, err
}

// RunSymNMF builds W from points and factors it into H (n×k).
// H is initialized from the NMF seed; solver options are forwarded.
func RunSymNMF(points matrix.Matrix, k int, opts ...Option) (*symnmf.Result, error) {
	o := resolve(opts)
	w, err := ComputeNormalized(points, opts...)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	solverOpts := append([]symnmf.Option{symnmf.WithRand(o.nmfRand())}, o.SymNMF...)
	res, err := symnmf.Run(w, k, solverOpts...)
	if err != nil {
		o.Observer.OnSolve(time.Since(start), 0, false, err)
		o.Logger.LogSolve(context.Background(), k, 0, false, err)
		return nil, err
	}
	o.Observer.OnSolve(time.Since(start), res.Iterations, res.Converged, nil)
	o.Logger.LogSolve(context.Background(), k, res.Iterations, res.Converged, nil)

	return res, nil
}

// RunKMeans seeds k centroids with the configured initializer and refines
// them. The returned indices are the rows chosen as initial centroids.
//
// Errors: cluster.ErrInvalidClusterCount, cluster.ErrInvalidIterationBound,
// ErrInvalidTolerance, matrix errors from the inputs.
func RunKMeans(points matrix.Matrix, k, maxIter int, tol float64, opts ...Option) (*kmeans.Result, []int, error) {
	o := resolve(opts)
	if !(tol > 0) || math.IsInf(tol, 0) {
		return nil, nil, fmt.Errorf("pipeline.RunKMeans: tol=%g: %w", tol, ErrInvalidTolerance)
	}

	start := time.Now()
	res, chosen, err := kmeans.Fit(points, k, o.Init, o.kmeansRand(),
		kmeans.WithMaxIter(maxIter),
		kmeans.WithTolerance(tol),
		kmeans.WithWorkers(o.Workers),
	)
	if err != nil {
		o.Observer.OnRefine(time.Since(start), 0, false, err)
		o.Logger.LogRefine(context.Background(), k, 0, false, err)
		return nil, nil, err
	}
	o.Observer.OnRefine(time.Since(start), res.Iterations, res.Converged, nil)
	o.Logger.LogRefine(context.Background(), k, res.Iterations, res.Converged, nil)

	return res, chosen, nil
}

// LabelsFromFactor assigns each point to the arg-max column of H.
func LabelsFromFactor(h matrix.Matrix) (cluster.Labels, error) {
	return cluster.FromFactor(h)
}

// LabelsFromCentroids assigns each point to its nearest centroid.
func LabelsFromCentroids(points, centroids matrix.Matrix, opts ...Option) (cluster.Labels, error) {
	o := resolve(opts)
	start := time.Now()
	labels, err := cluster.FromCentroids(points, centroids, o.Workers)
	o.stage("assign", start, err)

	return labels, err
}

// Compare returns the mean silhouette scores of two assignments.
func Compare(points matrix.Matrix, a, b cluster.Labels, opts ...Option) (float64, float64, error) {
	o := resolve(opts)
	start := time.Now()
	sa, sb, err := silhouette.Compare(points, a, b, silhouette.WithWorkers(o.Workers))
	o.stage("silhouette", start, err)

	return sa, sb, err
}

// Analysis holds both assignments and their silhouette scores.
type Analysis struct {
	NMF          float64
	KMeans       float64
	NMFLabels    cluster.Labels
	KMeansLabels cluster.Labels
}

// Analyze clusters points with symNMF and K-means and scores both.
func Analyze(points matrix.Matrix, k, maxIter int, tol float64, opts ...Option) (*Analysis, error) {
	o := resolve(opts)

	nmf, err := RunSymNMF(points, k, opts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Analyze: symnmf: %w", err)
	}
	nmfLabels, err := LabelsFromFactor(nmf.H)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Analyze: %w", err)
	}

	km, _, err := RunKMeans(points, k, maxIter, tol, opts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Analyze: kmeans: %w", err)
	}

	sNMF, sKM, err := Compare(points, nmfLabels, km.Labels, opts...)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Analyze: %w", err)
	}
	o.Observer.OnScore("nmf", sNMF)
	o.Observer.OnScore("kmeans", sKM)
	o.Logger.LogScore(context.Background(), "nmf", sNMF)
	o.Logger.LogScore(context.Background(), "kmeans", sKM)

	return &Analysis{NMF: sNMF, KMeans: sKM, NMFLabels: nmfLabels, KMeansLabels: km.Labels}, nil
}

// ElbowPoint is the K-means inertia at one cluster count.
type ElbowPoint struct {
	K       int
	Inertia float64
}

// Elbow runs K-means for k = 2..maxK and reports the inertia of each fit.
//
// Errors: cluster.ErrInvalidClusterCount unless 2 ≤ maxK < n, plus RunKMeans errors.
// Complexity: O(maxK² · n · d · maxIter).
func Elbow(points matrix.Matrix, maxK, maxIter int, tol float64, opts ...Option) ([]ElbowPoint, error) {
	if err := matrix.ValidateNotNil(points); err != nil {
		return nil, fmt.Errorf("pipeline.Elbow: %w", err)
	}
	if err := cluster.ValidateK(maxK, points.Rows()); err != nil {
		return nil, fmt.Errorf("pipeline.Elbow: %w", err)
	}

	out := make([]ElbowPoint, 0, maxK-1)
	for k := 2; k <= maxK; k++ {
		res, _, err := RunKMeans(points, k, maxIter, tol, opts...)
		if err != nil {
			return nil, fmt.Errorf("pipeline.Elbow: k=%d: %w", k, err)
		}
		inertia, err := kmeans.Inertia(points, res.Centroids)
		if err != nil {
			return nil, fmt.Errorf("pipeline.Elbow: k=%d: %w", k, err)
		}
		out = append(out, ElbowPoint{K: k, Inertia: inertia})
	}

	return out, nil
}

// SuggestK picks a cluster count in [2, maxK] from the eigengap of W.
func SuggestK(points matrix.Matrix, maxK int, opts ...Option) (int, []float64, error) {
	o := resolve(opts)
	w, err := ComputeNormalized(points, opts...)
	if err != nil {
		return 0, nil, err
	}
	start := time.Now()
	k, values, err := similarity.SuggestK(w, maxK)
	o.stage("eigengap", start, err)

	return k, values, err
}
