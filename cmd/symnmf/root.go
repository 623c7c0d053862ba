// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/config"
	"github.com/katalvlaran/symnmf/matrix"
	"github.com/katalvlaran/symnmf/matrixio"
	"github.com/katalvlaran/symnmf/pipeline"
	"github.com/katalvlaran/symnmf/symnmf"
	"github.com/katalvlaran/symnmf/telemetry"
)

// genericError is the only failure text ever written to stdout.
const genericError = "An Error Has Occurred"

// app is the state shared by every command of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath  string
	logLevel    string
	seed        int64
	workers     int
	metricsFile string

	cfg  *config.Config
	log  *telemetry.Logger
	obs  telemetry.MetricsObserver
	prom *telemetry.PrometheusObserver
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		log := a.log
		if log == nil {
			log, _ = telemetry.New(stderr, "error", "text")
		}
		log.ErrorContext(ctx, "command failed", "args", args, "error", err)
		fmt.Fprintln(stdout, genericError)
		return 1
	}

	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "symnmf",
		Short: "symNMF and K-means clustering",
		Long: `symnmf clusters points read from comma-separated files with a
graph-based symmetric NMF and with K-means, and compares both by silhouette.

Inputs are local paths or s3://bucket/key objects, optionally .gz, .zst or .lz4.`,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.Int64Var(&a.seed, "seed", 0, "seed for both H initialization and K-means++")
	pf.IntVar(&a.workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")

	root.AddCommand(
		a.goalCmd(),
		a.kmeansCmd(),
		a.kmeansPPCmd(),
		a.analysisCmd(),
		a.elbowCmd(),
		a.suggestCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(a.stdout, "symnmf v%s (%s)\n", version, commit)
			},
		},
	)

	return root
}

// setup resolves config < env < flags and builds telemetry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOrDefault(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("seed") {
		cfg.SymNMF.Seed = a.seed
		cfg.KMeans.Seed = a.seed
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.File = a.metricsFile
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	if a.log, err = telemetry.New(a.stderr, cfg.Log.Level, cfg.Log.Format); err != nil {
		return err
	}
	a.obs = telemetry.NoopMetricsObserver{}
	if cfg.Metrics.File != "" {
		a.prom = telemetry.NewPrometheusObserver()
		a.obs = a.prom
	}
	a.cfg = cfg
	a.log.DebugContext(cmd.Context(), "configuration", "config", cfg.String())

	return nil
}

func (a *app) teardown(cmd *cobra.Command, _ []string) error {
	if a.prom == nil {
		return nil
	}
	if err := a.prom.WriteTextfile(a.cfg.Metrics.File); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	return nil
}

// options maps the resolved config onto facade options.
func (a *app) options(extra ...pipeline.Option) []pipeline.Option {
	c := a.cfg
	opts := []pipeline.Option{
		pipeline.WithWorkers(c.Workers),
		pipeline.WithNMFSeed(c.SymNMF.Seed),
		pipeline.WithKMeansSeed(c.KMeans.Seed),
		pipeline.WithSymNMFOptions(
			symnmf.WithMaxIter(c.SymNMF.MaxIter),
			symnmf.WithEpsilon(c.SymNMF.Epsilon),
			symnmf.WithBeta(c.SymNMF.Beta),
			symnmf.WithMonotoneGuard(c.SymNMF.MonotoneGuard),
		),
		pipeline.WithLogger(a.log),
		pipeline.WithObserver(a.obs),
	}

	return append(opts, extra...)
}

// load reads one matrix source using the configured object store.
func (a *app) load(ctx context.Context, src string) (*matrix.Dense, error) {
	s := a.cfg.Storage
	m, err := matrixio.Load(ctx, src, matrixio.WithS3(matrixio.S3Options{
		Endpoint:  s.Endpoint,
		AccessKey: s.AccessKey,
		SecretKey: s.SecretKey,
		Region:    s.Region,
		Secure:    s.Secure,
	}))
	if err != nil {
		a.log.LogRead(ctx, src, 0, 0, err)
		return nil, err
	}
	a.log.LogRead(ctx, src, m.Rows(), m.Cols(), nil)

	return m, nil
}

func parseK(s string) (int, error) {
	k, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("k=%q: %w", s, cluster.ErrInvalidClusterCount)
	}
	return k, nil
}

func parseIter(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("max_iter=%q: %w", s, cluster.ErrInvalidIterationBound)
	}
	return n, nil
}

func parseTolerance(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("eps=%q: %w", s, pipeline.ErrInvalidTolerance)
	}
	return v, nil
}
