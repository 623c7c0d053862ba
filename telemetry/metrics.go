// SPDX-License-Identifier: MIT

package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsObserver receives pipeline events.
type MetricsObserver interface {
	// OnStage is called after a pipeline stage (read, similarity, assign, ...).
	OnStage(stage string, d time.Duration, err error)

	// OnSolve is called after a symNMF factorization.
	OnSolve(d time.Duration, iterations int, converged bool, err error)

	// OnRefine is called after a K-means refinement.
	OnRefine(d time.Duration, iterations int, converged bool, err error)

	// OnScore reports the silhouette score of one method.
	OnScore(method string, score float64)
}

// NoopMetricsObserver is a no-op implementation of MetricsObserver.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnStage(string, time.Duration, error)     {}
func (NoopMetricsObserver) OnSolve(time.Duration, int, bool, error)  {}
func (NoopMetricsObserver) OnRefine(time.Duration, int, bool, error) {}
func (NoopMetricsObserver) OnScore(string, float64)                  {}

// PrometheusObserver records events on its own registry, so several
// observers can coexist in one process.
type PrometheusObserver struct {
	reg *prometheus.Registry

	stageLatency *prometheus.HistogramVec
	iterations   *prometheus.HistogramVec
	runs         *prometheus.CounterVec
	score        *prometheus.GaugeVec
}

// NewPrometheusObserver creates an observer with a fresh registry.
func NewPrometheusObserver() *PrometheusObserver {
	o := &PrometheusObserver{
		reg: prometheus.NewRegistry(),
		stageLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "symnmf_stage_duration_seconds",
			Help:    "Duration of pipeline stages",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage", "status"}),
		iterations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "symnmf_solver_iterations",
			Help:    "Iterations used per solver run",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 200, 300, 500, 1000},
		}, []string{"solver"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "symnmf_solver_runs_total",
			Help: "Solver runs by outcome",
		}, []string{"solver", "outcome"}),
		score: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "symnmf_silhouette_score",
			Help: "Latest mean silhouette score per method",
		}, []string{"method"}),
	}
	o.reg.MustRegister(o.stageLatency, o.iterations, o.runs, o.score)

	return o
}

// Registry exposes the private registry.
func (o *PrometheusObserver) Registry() *prometheus.Registry { return o.reg }

// WriteTextfile dumps the registry in text exposition format, atomically.
func (o *PrometheusObserver) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, o.reg)
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (o *PrometheusObserver) OnStage(stage string, d time.Duration, err error) {
	o.stageLatency.WithLabelValues(stage, status(err)).Observe(d.Seconds())
}

func (o *PrometheusObserver) OnSolve(d time.Duration, iterations int, converged bool, err error) {
	o.solverRun("symnmf", d, iterations, converged, err)
}

func (o *PrometheusObserver) OnRefine(d time.Duration, iterations int, converged bool, err error) {
	o.solverRun("kmeans", d, iterations, converged, err)
}

func (o *PrometheusObserver) solverRun(solver string, d time.Duration, iterations int, converged bool, err error) {
	o.stageLatency.WithLabelValues(solver, status(err)).Observe(d.Seconds())
	outcome := "max_iter"
	switch {
	case err != nil:
		outcome = "error"
	case converged:
		outcome = "converged"
	}
	o.runs.WithLabelValues(solver, outcome).Inc()
	if err == nil {
		o.iterations.WithLabelValues(solver).Observe(float64(iterations))
	}
}

func (o *PrometheusObserver) OnScore(method string, score float64) {
	o.score.WithLabelValues(method).Set(score)
}
