// SPDX-License-Identifier: MIT

// Package config loads symnmf settings from YAML with SYMNMF_* environment
// overrides.
//
// Precedence, lowest first: DefaultConfig, the YAML file, the environment,
// and finally command-line flags applied by the caller.
//
// Environment Variables:
//
//	SYMNMF_SYMNMF_MAX_ITER         - symNMF iteration cap (default: 300)
//	SYMNMF_SYMNMF_EPSILON          - symNMF convergence threshold (default: 1e-4)
//	SYMNMF_SYMNMF_BETA             - symNMF damping in (0,1] (default: 0.5)
//	SYMNMF_SYMNMF_SEED             - H initialization seed (default: 1234)
//	SYMNMF_KMEANS_MAX_ITER         - K-means iteration cap (default: 300)
//	SYMNMF_KMEANS_PLAIN_MAX_ITER   - first-k K-means iteration cap (default: 200)
//	SYMNMF_KMEANS_TOLERANCE        - centroid movement threshold (default: 1e-3)
//	SYMNMF_KMEANS_SEED             - K-means++ seed (default: 1234)
//	SYMNMF_KMEANS_INIT             - kmeans++ | first (default: kmeans++)
//	SYMNMF_WORKERS                 - worker goroutines, 0 = GOMAXPROCS
//	SYMNMF_LOG_LEVEL               - debug | info | warn | error
//	SYMNMF_LOG_FORMAT              - text | json
//	SYMNMF_STORAGE_ENDPOINT        - S3-compatible endpoint host:port
//	SYMNMF_STORAGE_ACCESS_KEY      - access key
//	SYMNMF_STORAGE_SECRET_KEY      - secret key
//	SYMNMF_STORAGE_REGION          - region
//	SYMNMF_STORAGE_SECURE          - use TLS (default: true)
//	SYMNMF_METRICS_FILE            - Prometheus textfile path
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/symnmf/cluster"
	"github.com/katalvlaran/symnmf/kmeans"
	"github.com/katalvlaran/symnmf/symnmf"
	"github.com/katalvlaran/symnmf/telemetry"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

const envPrefix = "SYMNMF_"

// Config is the full settings tree.
type Config struct {
	SymNMF  SymNMFConfig  `yaml:"symnmf"`
	KMeans  KMeansConfig  `yaml:"kmeans"`
	Workers int           `yaml:"workers"`
	Log     LogConfig     `yaml:"log"`
	Storage StorageConfig `yaml:"storage"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// SymNMFConfig tunes the factorization.
type SymNMFConfig struct {
	MaxIter int     `yaml:"max_iter"`
	Epsilon float64 `yaml:"epsilon"`
	Beta    float64 `yaml:"beta"`
	// MonotoneGuard turns on step halving whenever the residual would rise.
	MonotoneGuard bool  `yaml:"monotone_guard"`
	Seed          int64 `yaml:"seed"`
}

// KMeansConfig tunes seeding and refinement.
type KMeansConfig struct {
	MaxIter      int     `yaml:"max_iter"`
	PlainMaxIter int     `yaml:"plain_max_iter"`
	Tolerance    float64 `yaml:"tolerance"`
	Seed         int64   `yaml:"seed"`
	Init         string  `yaml:"init"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// StorageConfig points s3:// sources at an S3-compatible endpoint.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Region    string `yaml:"region"`
	Secure    bool   `yaml:"secure"`
}

// MetricsConfig enables the Prometheus textfile dump.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() *Config {
	return &Config{
		SymNMF: SymNMFConfig{
			MaxIter: symnmf.DefaultMaxIter,
			Epsilon: symnmf.DefaultEpsilon,
			Beta:    symnmf.DefaultBeta,
			Seed:    symnmf.DefaultSeed,
		},
		KMeans: KMeansConfig{
			MaxIter:      kmeans.DefaultMaxIter,
			PlainMaxIter: kmeans.PlainMaxIter,
			Tolerance:    kmeans.DefaultTolerance,
			Seed:         kmeans.DefaultSeed,
			Init:         kmeans.InitKMeansPlusPlus.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Storage: StorageConfig{
			Secure: true,
		},
	}
}

// Load reads path over the defaults and applies the environment.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.ApplyEnv()

	return cfg, nil
}

// LoadOrDefault is Load, except that an empty or missing path yields the
// defaults with the environment applied.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		cfg, err := Load(path)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return cfg, err
		}
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv()

	return cfg, nil
}

// ApplyEnv overrides fields from SYMNMF_* variables. Unparsable values are ignored.
func (c *Config) ApplyEnv() {
	c.SymNMF.MaxIter = getEnvInt("SYMNMF_MAX_ITER", c.SymNMF.MaxIter)
	c.SymNMF.Epsilon = getEnvFloat("SYMNMF_EPSILON", c.SymNMF.Epsilon)
	c.SymNMF.Beta = getEnvFloat("SYMNMF_BETA", c.SymNMF.Beta)
	c.SymNMF.MonotoneGuard = getEnvBool("SYMNMF_MONOTONE_GUARD", c.SymNMF.MonotoneGuard)
	c.SymNMF.Seed = getEnvInt64("SYMNMF_SEED", c.SymNMF.Seed)

	c.KMeans.MaxIter = getEnvInt("KMEANS_MAX_ITER", c.KMeans.MaxIter)
	c.KMeans.PlainMaxIter = getEnvInt("KMEANS_PLAIN_MAX_ITER", c.KMeans.PlainMaxIter)
	c.KMeans.Tolerance = getEnvFloat("KMEANS_TOLERANCE", c.KMeans.Tolerance)
	c.KMeans.Seed = getEnvInt64("KMEANS_SEED", c.KMeans.Seed)
	c.KMeans.Init = getEnv("KMEANS_INIT", c.KMeans.Init)

	c.Workers = getEnvInt("WORKERS", c.Workers)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)

	c.Storage.Endpoint = getEnv("STORAGE_ENDPOINT", c.Storage.Endpoint)
	c.Storage.AccessKey = getEnv("STORAGE_ACCESS_KEY", c.Storage.AccessKey)
	c.Storage.SecretKey = getEnv("STORAGE_SECRET_KEY", c.Storage.SecretKey)
	c.Storage.Region = getEnv("STORAGE_REGION", c.Storage.Region)
	c.Storage.Secure = getEnvBool("STORAGE_SECURE", c.Storage.Secure)

	c.Metrics.File = getEnv("METRICS_FILE", c.Metrics.File)
}

// Validate checks every numeric bound and enum; all problems are joined.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig))
	}

	if c.SymNMF.MaxIter < 1 {
		bad("symnmf.max_iter %d < 1", c.SymNMF.MaxIter)
	}
	if !(c.SymNMF.Epsilon > 0) || math.IsInf(c.SymNMF.Epsilon, 0) {
		bad("symnmf.epsilon %g must be positive", c.SymNMF.Epsilon)
	}
	if !(c.SymNMF.Beta > 0 && c.SymNMF.Beta <= 1) {
		bad("symnmf.beta %g outside (0, 1]", c.SymNMF.Beta)
	}
	if err := cluster.ValidateMaxIter(c.KMeans.MaxIter); err != nil {
		bad("kmeans.max_iter: %v", err)
	}
	if err := cluster.ValidateMaxIter(c.KMeans.PlainMaxIter); err != nil {
		bad("kmeans.plain_max_iter: %v", err)
	}
	if !(c.KMeans.Tolerance > 0) || math.IsInf(c.KMeans.Tolerance, 0) {
		bad("kmeans.tolerance %g must be positive", c.KMeans.Tolerance)
	}
	if _, err := kmeans.ParseInit(c.KMeans.Init); err != nil {
		bad("kmeans.init: %v", err)
	}
	if c.Workers < 0 {
		bad("workers %d < 0", c.Workers)
	}
	if _, err := telemetry.ParseLevel(c.Log.Level); err != nil {
		bad("log.level: %v", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		bad("log.format %q", c.Log.Format)
	}

	return errors.Join(errs...)
}

// String renders the config as YAML with the secret key masked.
func (c *Config) String() string {
	masked := *c
	if masked.Storage.SecretKey != "" {
		masked.Storage.SecretKey = "****"
	}
	out, err := yaml.Marshal(&masked)
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}

	return string(out)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(envPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(envPrefix + key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(envPrefix + key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(envPrefix + key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(envPrefix + key); val != "" {
		val = strings.ToLower(val)
		return val == "true" || val == "1" || val == "yes" || val == "on"
	}
	return defaultVal
}
