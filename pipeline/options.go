// SPDX-License-Identifier: MIT

package pipeline

import (
	"math/rand"

	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/symnmf"
	"github.com/katalvlaran/symnmf/telemetry"
)

// Options carries the shared knobs of every facade call.
type Options struct {
	Workers    int
	NMFSeed    int64
	KMeansSeed int64
	Init       kmeans.Init
	SymNMF     []symnmf.Option
	Logger     *telemetry.Logger
	Observer   telemetry.MetricsObserver
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns seeds 1234, K-means++ init, GOMAXPROCS workers and
// no-op telemetry.
func DefaultOptions() Options {
	return Options{
		NMFSeed:    symnmf.DefaultSeed,
		KMeansSeed: kmeans.DefaultSeed,
		Init:       kmeans.InitKMeansPlusPlus,
		Logger:     telemetry.NoopLogger(),
		Observer:   telemetry.NoopMetricsObserver{},
	}
}

// WithWorkers bounds row-level fan-out; ≤ 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithNMFSeed seeds the H initialization.
func WithNMFSeed(seed int64) Option {
	return func(o *Options) { o.NMFSeed = seed }
}

// WithKMeansSeed seeds K-means++.
func WithKMeansSeed(seed int64) Option {
	return func(o *Options) { o.KMeansSeed = seed }
}

// WithInit selects the K-means initializer.
func WithInit(init kmeans.Init) Option {
	return func(o *Options) { o.Init = init }
}

// WithSymNMFOptions forwards solver options (MaxIter, Epsilon, Beta, ...).
func WithSymNMFOptions(opts ...symnmf.Option) Option {
	return func(o *Options) { o.SymNMF = append(o.SymNMF, opts...) }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *telemetry.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithObserver sets the metrics observer. Panics on nil.
func WithObserver(obs telemetry.MetricsObserver) Option {
	if obs == nil {
		panic("pipeline: WithObserver(nil)")
	}
	return func(o *Options) { o.Observer = obs }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

func (o Options) nmfRand() *rand.Rand    { return rand.New(rand.NewSource(o.NMFSeed)) }
func (o Options) kmeansRand() *rand.Rand { return rand.New(rand.NewSource(o.KMeansSeed)) }
