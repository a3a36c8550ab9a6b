// Package config provides configuration management for the preflow command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. PREFLOW_SOLVER_WORKERS.
const EnvPrefix = "PREFLOW"

// Config holds all configuration for the application.
type Config struct {
	Solver  SolverConfig  `mapstructure:"solver"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// SolverConfig holds max-flow solver configuration.
type SolverConfig struct {
	Workers int `mapstructure:"workers"`
	// Verify re-solves with Edmonds–Karp and fails on a mismatch.
	Verify bool `mapstructure:"verify"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// MetricsConfig holds the Prometheus endpoint configuration.
type MetricsConfig struct {
	// Listen is the HTTP address serving /metrics; empty disables it.
	Listen string `mapstructure:"listen"`
}

// TracingConfig holds OpenTelemetry exporter configuration.
type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	Endpoint    string  `mapstructure:"endpoint"` // e.g. "http://localhost:4318"
	Insecure    bool    `mapstructure:"insecure"`
	ServiceName string  `mapstructure:"service_name"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"workers":          "solver.workers",
	"verify":           "solver.verify",
	"log-level":        "log.level",
	"log-format":       "log.format",
	"metrics-listen":   "metrics.listen",
	"tracing":          "tracing.enabled",
	"tracing-endpoint": "tracing.endpoint",
}

// Load reads configuration from the specified file path (optional), then
// applies PREFLOW_* environment variables and finally any flags of fs that
// were set explicitly. fs may be nil.
func Load(configPath string, fs *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("preflow")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/preflow")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	return unmarshal(v)
}

// LoadFromReader loads configuration from raw content (useful for testing).
// Environment overrides still apply.
func LoadFromReader(configType string, content []byte) (*Config, error) {
	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("solver.workers", 4)
	v.SetDefault("solver.verify", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("metrics.listen", "")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.insecure", false)
	v.SetDefault("tracing.service_name", "preflow")
	v.SetDefault("tracing.sample_ratio", 1.0)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Solver.Workers < 1 {
		return fmt.Errorf("solver workers must be at least 1, got %d", c.Solver.Workers)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("unsupported log level: %s", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio must be in [0,1], got %g", c.Tracing.SampleRatio)
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing service name is required when tracing is enabled")
	}

	return nil
}

// ApplyLogging configures the logrus standard logger from c.Log.
func (c *Config) ApplyLogging() error {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	if c.Log.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	return nil
}
