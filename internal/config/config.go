package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string
	Host        string
	Port        int

	// logging
	LogLevel    string `toml:"log_level"`
	LogsPath    string `toml:"logs_path"`
	LogToStdout bool   `toml:"log_to_stdout"`

	SentryEnabled  bool `toml:"sentry_enabled"`
	TracingEnabled bool `toml:"tracing_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// prometheus metrics server
	PrometheusMetricsEnabled bool   `toml:"prom_metrics_enabled"`
	PrometheusMetricsPort    int    `toml:"prom_metrics_port"`
	PrometheusMetricsPath    string `toml:"prom_metrics_path"`

	QuotesCSVPath string `toml:"quotes_csv_path"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file at path and returns the section
// for the given environment.
func Load(env, path string) (*Config, error) {
	var confToml Toml
	if _, err := toml.DecodeFile(path, &confToml); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	cfg, err := confToml.get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s is empty", env)
	}

	cfg.Environment = env
	return cfg, nil
}
