package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/2beens/fitcoach/internal/injuryrisk/risk"

	"github.com/BurntSushi/toml"
)

const (
	NarrativeCacheRedis = "redis"
	NarrativeCacheLocal = "local"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	Signals   SignalsConfig   `toml:"signals"`
	Narrative NarrativeConfig `toml:"narrative"`
	Risk      risk.Config     `toml:"risk"`
}

type SignalsConfig struct {
	Timezone           string `toml:"timezone"`
	StreakLookbackDays int    `toml:"streak_lookback_days"`
}

// Location resolves the configured timezone, UTC when empty.
func (s SignalsConfig) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", s.Timezone, err)
	}
	return loc, nil
}

type NarrativeConfig struct {
	Model     string        `toml:"model"`
	MaxTokens int           `toml:"max_tokens"`
	Timeout   time.Duration `toml:"timeout"`
	BaseURL   string        `toml:"base_url"`
	// Cache is either "redis" or "local".
	Cache          string        `toml:"cache"`
	CacheTTL       time.Duration `toml:"cache_ttl"`
	LocalCacheSize int           `toml:"local_cache_size"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development", "ddev", "dockerdev":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config for env: %s", env)
	}
	cfg.Environment = strings.ToLower(env)
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Host:     "localhost",
		Port:     8080,
		LogLevel:      "info",
		LogMaxSizeMB:  50,
		LogMaxBackups: 5,
		Signals: SignalsConfig{
			StreakLookbackDays: 28,
		},
		Narrative: NarrativeConfig{
			MaxTokens:      400,
			Timeout:        15 * time.Second,
			Cache:          NarrativeCacheLocal,
			CacheTTL:       6 * time.Hour,
			LocalCacheSize: 16 * 1024 * 1024,
		},
		Risk: risk.DefaultConfig(),
	}
}

// Decode parses a TOML document. Every key left out, including any entry of
// the [<env>.risk] threshold table, keeps its default value.
func Decode(data, env string) (*Config, error) {
	t := &Toml{
		Development: defaults(),
		Production:  defaults(),
	}
	if _, err := toml.Decode(data, t); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	return validated(t, env)
}

func Load(env, path string) (*Config, error) {
	t := &Toml{
		Development: defaults(),
		Production:  defaults(),
	}
	if _, err := toml.DecodeFile(path, t); err != nil {
		return nil, fmt.Errorf("decode toml file %s: %w", path, err)
	}
	return validated(t, env)
}

func validated(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	if err := cfg.Risk.Validate(); err != nil {
		return nil, fmt.Errorf("risk thresholds: %w", err)
	}
	switch cfg.Narrative.Cache {
	case NarrativeCacheRedis, NarrativeCacheLocal:
	default:
		return nil, fmt.Errorf("unknown narrative cache: %q", cfg.Narrative.Cache)
	}
	if _, err := cfg.Signals.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}
