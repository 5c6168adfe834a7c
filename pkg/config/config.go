// Package config loads and validates application configuration from YAML
// files with environment-variable overrides. It provides typed structs for
// every subsystem (Ranking, Embedding, Generator, Redis, Logging, Metrics).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Ranking   RankingConfig   `yaml:"ranking"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Generator GeneratorConfig `yaml:"generator"`
	Redis     RedisConfig     `yaml:"redis"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// RankingConfig controls the selection budget, the MMR relevance/diversity
// trade-off, and the per-category quota table.
type RankingConfig struct {
	Budget     int           `yaml:"budget"`
	Lambda     float64       `yaml:"lambda"`
	PoolTarget int           `yaml:"poolTarget"`
	Quotas     []QuotaConfig `yaml:"quotas"`
}

// QuotaConfig is one row of the category quota table. Max <= 0 means the
// category is uncapped. Weight orders categories when minimums compete for
// a tight budget (higher first).
type QuotaConfig struct {
	Category string  `yaml:"category"`
	Min      int     `yaml:"min"`
	Max      int     `yaml:"max"`
	Weight   float64 `yaml:"weight"`
}

// EmbeddingConfig holds the embedding model and the batching, concurrency,
// and retry limits for calls to the embedding service.
type EmbeddingConfig struct {
	Model             string        `yaml:"model"`
	BatchSize         int           `yaml:"batchSize"`
	MaxInFlight       int           `yaml:"maxInFlight"`
	MaxRetries        int           `yaml:"maxRetries"`
	RetryInitialDelay time.Duration `yaml:"retryInitialDelay"`
	RetryMaxDelay     time.Duration `yaml:"retryMaxDelay"`
}

// GeneratorConfig holds the chat model used to produce candidate terms.
type GeneratorConfig struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"maxTokens"`
	Temperature float64 `yaml:"temperature"`
}

// RedisConfig holds connection parameters for the optional read-through
// embedding cache.
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	PoolSize int           `yaml:"poolSize"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies environment
// variable overrides. Missing values keep their defaults.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfig mirrors the tuning the ranking pipeline ships with:
// 100-term budget out of a ~500-candidate pool, lambda 0.7, batches of 100.
func defaultConfig() *Config {
	return &Config{
		Ranking: RankingConfig{
			Budget:     100,
			Lambda:     0.7,
			PoolTarget: 500,
			Quotas: []QuotaConfig{
				{Category: "pronoun", Min: 5, Max: 15, Weight: 5},
				{Category: "verb", Min: 20, Max: 40, Weight: 4},
				{Category: "noun", Min: 30, Max: 0, Weight: 3},
				{Category: "adjective", Min: 10, Max: 30, Weight: 2},
				{Category: "other", Min: 0, Max: 20, Weight: 1},
			},
		},
		Embedding: EmbeddingConfig{
			Model:             "text-embedding-3-small",
			BatchSize:         100,
			MaxInFlight:       4,
			MaxRetries:        3,
			RetryInitialDelay: 250 * time.Millisecond,
			RetryMaxDelay:     5 * time.Second,
		},
		Generator: GeneratorConfig{
			Model:       "gpt-4o-mini",
			MaxTokens:   3000,
			Temperature: 0.7,
		},
		Redis: RedisConfig{
			Enabled:  false,
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
			PoolSize: 10,
			CacheTTL: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// Validate rejects configurations the ranking engine cannot honor.
func (c *Config) Validate() error {
	if c.Ranking.Budget <= 0 {
		return fmt.Errorf("ranking.budget must be positive, got %d", c.Ranking.Budget)
	}
	if c.Ranking.Lambda < 0 || c.Ranking.Lambda > 1 {
		return fmt.Errorf("ranking.lambda must be in [0,1], got %g", c.Ranking.Lambda)
	}
	if c.Ranking.PoolTarget <= 0 {
		return fmt.Errorf("ranking.poolTarget must be positive, got %d", c.Ranking.PoolTarget)
	}
	for _, q := range c.Ranking.Quotas {
		if q.Min < 0 {
			return fmt.Errorf("quota %q: min must not be negative", q.Category)
		}
		if q.Max > 0 && q.Max < q.Min {
			return fmt.Errorf("quota %q: max %d below min %d", q.Category, q.Max, q.Min)
		}
	}
	if c.Embedding.BatchSize <= 0 {
		return fmt.Errorf("embedding.batchSize must be positive, got %d", c.Embedding.BatchSize)
	}
	if c.Embedding.MaxInFlight <= 0 {
		return fmt.Errorf("embedding.maxInFlight must be positive, got %d", c.Embedding.MaxInFlight)
	}
	return nil
}

// applyEnvOverrides reads TR_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TR_BUDGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ranking.Budget = n
		}
	}
	if v := os.Getenv("TR_LAMBDA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Ranking.Lambda = f
		}
	}
	if v := os.Getenv("TR_POOL_TARGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ranking.PoolTarget = n
		}
	}
	if v := os.Getenv("TR_EMBEDDING_MODEL"); v != "" {
		cfg.Embedding.Model = v
	}
	if v := os.Getenv("TR_GENERATOR_MODEL"); v != "" {
		cfg.Generator.Model = v
	}
	if v := os.Getenv("TR_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
		cfg.Redis.Enabled = true
	}
	if v := os.Getenv("TR_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("TR_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TR_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TR_METRICS_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = port
			cfg.Metrics.Enabled = true
		}
	}
}
