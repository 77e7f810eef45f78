// Package config provides configuration loading and validation for the career engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Default values applied by MergeWithDefaults.
const (
	DefaultExactWeight          = 0.65
	DefaultSemanticWeight       = 0.35
	DefaultRemoteTimeoutSeconds = 10
	DefaultRemoteRatePerSecond  = 5.0
	DefaultPlanCacheTTLMinutes  = 60
	DefaultBatchConcurrency     = 8
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
)

// Config represents the engine configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment overrides.
type Config struct {
	// Catalog
	CatalogPath string `json:"catalog_path,omitempty"` // YAML catalog replacing the built-in roles

	// Matching
	ExactWeight          float64 `json:"exact_weight,omitempty"`
	SemanticWeight       float64 `json:"semantic_weight,omitempty"`
	RemoteScorerURL      string  `json:"remote_scorer_url,omitempty"`      // HTTP match scorer, tried before the local scorer
	RemoteTimeoutSeconds int     `json:"remote_timeout_seconds,omitempty"` // Per-call budget for remote scorers
	RemoteRatePerSecond  float64 `json:"remote_rate_per_second,omitempty"`
	LLMProvider          string  `json:"llm_provider,omitempty"` // "gemini" or "anthropic"; empty disables the LLM scorer
	APIKey               string  `json:"api_key,omitempty"`
	LLMModel             string  `json:"llm_model,omitempty"`
	BatchConcurrency     int     `json:"batch_concurrency,omitempty"`

	// Storage
	DatabaseURL         string `json:"database_url,omitempty"` // PostgreSQL connection URL
	SQLitePath          string `json:"sqlite_path,omitempty"`  // Used when no database URL is set
	RedisURL            string `json:"redis_url,omitempty"`
	PlanCacheTTLMinutes int    `json:"plan_cache_ttl_minutes,omitempty"`

	// Logging
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"` // "text" or "json"
}

// Default returns a Config populated with every default value.
func Default() Config {
	return Config{
		ExactWeight:          DefaultExactWeight,
		SemanticWeight:       DefaultSemanticWeight,
		RemoteTimeoutSeconds: DefaultRemoteTimeoutSeconds,
		RemoteRatePerSecond:  DefaultRemoteRatePerSecond,
		PlanCacheTTLMinutes:  DefaultPlanCacheTTLMinutes,
		BatchConcurrency:     DefaultBatchConcurrency,
		LogLevel:             DefaultLogLevel,
		LogFormat:            DefaultLogFormat,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.ExactWeight < 0 || c.SemanticWeight < 0 {
		return fmt.Errorf("config error: match weights must be non-negative")
	}
	if c.ExactWeight+c.SemanticWeight > 1.0001 {
		return fmt.Errorf("config error: 'exact_weight' + 'semantic_weight' must not exceed 1")
	}
	if c.RemoteTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'remote_timeout_seconds' must be non-negative")
	}
	if c.RemoteRatePerSecond < 0 {
		return fmt.Errorf("config error: 'remote_rate_per_second' must be non-negative")
	}
	if c.BatchConcurrency < 0 {
		return fmt.Errorf("config error: 'batch_concurrency' must be non-negative")
	}
	if c.PlanCacheTTLMinutes < 0 {
		return fmt.Errorf("config error: 'plan_cache_ttl_minutes' must be non-negative")
	}

	switch strings.ToLower(c.LLMProvider) {
	case "", "gemini", "google", "anthropic", "claude":
	default:
		return fmt.Errorf("config error: unknown llm_provider %q", c.LLMProvider)
	}
	if c.LLMProvider != "" && c.APIKey == "" {
		return fmt.Errorf("config error: 'api_key' is required when 'llm_provider' is set")
	}

	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown log_level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("config error: unknown log_format %q", c.LogFormat)
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.RemoteScorerURL == "" {
		result.RemoteScorerURL = defaults.RemoteScorerURL
	}
	if result.LLMProvider == "" {
		result.LLMProvider = defaults.LLMProvider
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.LLMModel == "" {
		result.LLMModel = defaults.LLMModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.SQLitePath == "" {
		result.SQLitePath = defaults.SQLitePath
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}

	// Numeric fields: use default if zero
	if result.ExactWeight == 0 && result.SemanticWeight == 0 {
		result.ExactWeight = defaults.ExactWeight
		result.SemanticWeight = defaults.SemanticWeight
	}
	if result.RemoteTimeoutSeconds == 0 {
		result.RemoteTimeoutSeconds = defaults.RemoteTimeoutSeconds
	}
	if result.RemoteRatePerSecond == 0 {
		result.RemoteRatePerSecond = defaults.RemoteRatePerSecond
	}
	if result.BatchConcurrency == 0 {
		result.BatchConcurrency = defaults.BatchConcurrency
	}
	if result.PlanCacheTTLMinutes == 0 {
		result.PlanCacheTTLMinutes = defaults.PlanCacheTTLMinutes
	}

	return result
}

// ApplyEnv overrides fields from environment variables looked up through getenv.
// Unparseable numeric values are reported rather than ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	str("CAREER_CATALOG_PATH", &c.CatalogPath)
	str("CAREER_REMOTE_SCORER_URL", &c.RemoteScorerURL)
	str("CAREER_LLM_PROVIDER", &c.LLMProvider)
	str("CAREER_LLM_MODEL", &c.LLMModel)
	str("DATABASE_URL", &c.DatabaseURL)
	str("CAREER_SQLITE_PATH", &c.SQLitePath)
	str("REDIS_URL", &c.RedisURL)
	str("CAREER_LOG_LEVEL", &c.LogLevel)
	str("CAREER_LOG_FORMAT", &c.LogFormat)

	// Provider-specific keys, most specific first
	if c.APIKey == "" {
		for _, key := range []string{"CAREER_API_KEY", "GEMINI_API_KEY", "ANTHROPIC_API_KEY"} {
			if v := strings.TrimSpace(getenv(key)); v != "" {
				c.APIKey = v
				break
			}
		}
	}

	if v := getenv("CAREER_REMOTE_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CAREER_REMOTE_TIMEOUT_SECONDS: %w", err)
		}
		c.RemoteTimeoutSeconds = n
	}
	if v := getenv("CAREER_BATCH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CAREER_BATCH_CONCURRENCY: %w", err)
		}
		c.BatchConcurrency = n
	}
	if v := getenv("CAREER_PLAN_CACHE_TTL_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid CAREER_PLAN_CACHE_TTL_MINUTES: %w", err)
		}
		c.PlanCacheTTLMinutes = n
	}
	if v := getenv("CAREER_REMOTE_RATE_PER_SECOND"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid CAREER_REMOTE_RATE_PER_SECOND: %w", err)
		}
		c.RemoteRatePerSecond = f
	}

	return nil
}

// RemoteTimeout returns the remote scorer timeout as a duration.
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.RemoteTimeoutSeconds) * time.Second
}

// PlanCacheTTL returns the plan cache TTL as a duration.
func (c *Config) PlanCacheTTL() time.Duration {
	return time.Duration(c.PlanCacheTTLMinutes) * time.Minute
}
