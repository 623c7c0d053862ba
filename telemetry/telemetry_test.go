package telemetry_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/symnmf/telemetry"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := telemetry.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := telemetry.ParseLevel("loud")
	require.Error(t, err)
}

func TestNewTextLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := telemetry.New(&buf, "info", "text")
	require.NoError(t, err)

	log.WithK(3).LogSolve(context.Background(), 3, 42, true, nil)
	out := buf.String()
	assert.Contains(t, out, "symnmf completed")
	assert.Contains(t, out, "iterations=42")
	assert.Contains(t, out, "converged=true")

	buf.Reset()
	log.LogRead(context.Background(), "points.txt", 4, 2, nil) // debug, filtered
	assert.Empty(t, buf.String())
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := telemetry.New(&buf, "debug", "json")
	require.NoError(t, err)

	log.WithSource("s3://b/k").LogRefine(context.Background(), 2, 0, false, errors.New("boom"))
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "kmeans failed", rec["msg"])
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "s3://b/k", rec["source"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := telemetry.New(&bytes.Buffer{}, "info", "xml")
	require.ErrorIs(t, err, telemetry.ErrUnknownFormat)
}

func TestNoopLogger(t *testing.T) {
	log := telemetry.NoopLogger()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.LogScore(context.Background(), "nmf", 0.5)
}

func TestPrometheusObserver(t *testing.T) {
	o := telemetry.NewPrometheusObserver()
	var _ telemetry.MetricsObserver = o

	o.OnSolve(time.Millisecond, 17, true, nil)
	o.OnSolve(time.Millisecond, 300, false, nil)
	o.OnRefine(time.Millisecond, 0, false, errors.New("bad k"))
	o.OnStage("similarity", time.Microsecond, nil)
	o.OnScore("nmf", 0.75)

	n, err := testutil.GatherAndCount(o.Registry(), "symnmf_solver_runs_total", "symnmf_silhouette_score")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	path := filepath.Join(t.TempDir(), "symnmf.prom")
	require.NoError(t, o.WriteTextfile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `symnmf_solver_runs_total{outcome="converged",solver="symnmf"} 1`)
	assert.Contains(t, text, `symnmf_solver_runs_total{outcome="max_iter",solver="symnmf"} 1`)
	assert.Contains(t, text, `symnmf_solver_runs_total{outcome="error",solver="kmeans"} 1`)
	assert.Contains(t, text, `symnmf_silhouette_score{method="nmf"} 0.75`)
}
