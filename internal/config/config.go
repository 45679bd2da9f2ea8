package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	EnvWorkoutsFile = "FITSUMMARY_WORKOUTS_FILE"
	EnvMetricsFile  = "FITSUMMARY_METRICS_FILE"
	EnvLogLevel     = "FITSUMMARY_LOG_LEVEL"
)

// Goals are the targets the summary report compares the totals against.
// A zero value means no goal.
type Goals struct {
	Workouts      int     `toml:"workouts"`
	Minutes       float64 `toml:"minutes"`
	MetricEntries int     `toml:"metric_entries"`
}

type Config struct {
	Environment string `toml:"-"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// inputs
	WorkoutsPath string `toml:"workouts_path"`
	MetricsPath  string `toml:"metrics_path"`
	// telemetry
	MetricsTextfile string `toml:"metrics_textfile"`
	OtelEndpoint    string `toml:"otel_endpoint"`
	OtelInsecure    bool   `toml:"otel_insecure"`

	Goals Goals `toml:"goals"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

func Default() *Config {
	return &Config{
		LogLevel:     "info",
		WorkoutsPath: "data/workouts.csv",
		MetricsPath:  "data/health_metrics.json",
	}
}

// Load reads the config for env from the TOML file at path. A missing file,
// or a file without a table for env, gives the defaults. Environment
// variables override the input paths and the log level.
func Load(env, path string) (*Config, error) {
	var t Toml
	if path != "" {
		if _, err := toml.DecodeFile(path, &t); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Default()
	}
	cfg.applyDefaults()
	cfg.applyEnvOverrides()

	switch strings.ToLower(env) {
	case "prod", "production":
		cfg.Environment = "production"
	default:
		cfg.Environment = "development"
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.WorkoutsPath == "" {
		c.WorkoutsPath = def.WorkoutsPath
	}
	if c.MetricsPath == "" {
		c.MetricsPath = def.MetricsPath
	}
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvWorkoutsFile); v != "" {
		c.WorkoutsPath = v
	}
	if v := os.Getenv(EnvMetricsFile); v != "" {
		c.MetricsPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}
