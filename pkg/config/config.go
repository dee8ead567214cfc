package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvAddr        = "BANKD_ADDR"
	EnvDataDir     = "BANKD_DATA_DIR"
	EnvLatency     = "BANKD_LATENCY"
	EnvEnforceAuth = "BANKD_ENFORCE_AUTH"
	EnvLogLevel    = "BANKD_LOG_LEVEL"
	EnvLogFormat   = "BANKD_LOG_FORMAT"
)

// Duration wraps time.Duration so YAML values can be written as "500ms",
// "2s", etc.
type Duration time.Duration

// UnmarshalYAML decodes a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the full bankd configuration.
type Config struct {
	// Addr is the listen address for the development server.
	Addr string `yaml:"addr"`

	// DataDir is where the durable collections are stored. Empty means
	// in-memory only (no durability across restarts).
	DataDir string `yaml:"dataDir"`

	// Latency is the fixed simulated network delay per response.
	Latency Duration `yaml:"latency"`

	// EnforceAuth enables the bearer-token gate on account routes.
	EnforceAuth bool `yaml:"enforceAuth"`

	Log LogConfig `yaml:"log"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Addr:    ":4680",
		DataDir: defaultDataDir(),
		Latency: Duration(500 * time.Millisecond),
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds a Config from defaults, an optional YAML file, and BANKD_*
// environment variables, in that precedence order. An empty path skips the
// file step.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto cfg. Only variables present
// in the environment are applied.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv(EnvLatency); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: invalid duration %q: %w", EnvLatency, v, err)
		}
		cfg.Latency = Duration(d)
	}
	if v := os.Getenv(EnvEnforceAuth); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: invalid boolean %q: %w", EnvEnforceAuth, v, err)
		}
		cfg.EnforceAuth = b
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

// defaultDataDir follows the XDG-ish layout the rest of the tooling uses.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bankd"
	}
	return filepath.Join(home, ".local", "share", "bankd")
}
