// Package config loads tapecalc settings from a YAML file with environment
// overrides, and can watch the file for changes.
//
// Precedence, lowest first: built-in defaults, <home>/config.yaml, TAPECALC_*
// environment variables, command-line flags (applied by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"tapecalc/internal/imperial"
	"tapecalc/internal/logger"
	"tapecalc/internal/store"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "TAPECALC"

// FileName is the config file inside the home directory.
const FileName = "config.yaml"

// Config holds all settings.
type Config struct {
	Home         string `yaml:"home"`
	Precision    int    `yaml:"precision"`
	Display      string `yaml:"display"`
	Feet         bool   `yaml:"feet"`
	Store        string `yaml:"store"`
	Passphrase   string `yaml:"passphrase"`
	HistoryLimit int    `yaml:"history_limit"`

	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	Metrics         bool          `yaml:"metrics"`
	MetricsPath     string        `yaml:"metrics_path"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in settings for home.
func Default(home string) Config {
	return Config{
		Home:         home,
		Precision:    int(imperial.DefaultPrecision),
		Display:      imperial.Reduced.String(),
		Store:        string(store.BackendFile),
		HistoryLimit: store.DefaultHistoryLimit,
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			Metrics:         true,
			MetricsPath:     "/metrics",
			RequestTimeout:  10 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// DefaultHome is $TAPECALC_HOME, else ~/.tapecalc.
func DefaultHome() (string, error) {
	if h := os.Getenv(EnvPrefix + "_HOME"); h != "" {
		return h, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".tapecalc"), nil
}

// Path is the config file for home.
func Path(home string) string { return filepath.Join(home, FileName) }

// Load reads the config for home from the process environment.
func Load(home string) (Config, error) {
	return LoadWith(home, os.LookupEnv)
}

// LoadWith reads defaults, then Path(home) if it exists, then environment
// overrides from lookup, and validates the result.
func LoadWith(home string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default(home)
	if err := cfg.readFile(Path(home)); err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}
	if cfg.Home == "" {
		cfg.Home = home
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + "_" + name); ok {
			*dst = v
		}
	}
	var errs []error
	integer := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + "_" + name); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s_%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + "_" + name); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s_%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	duration := func(name string, dst *time.Duration) {
		if v, ok := lookup(EnvPrefix + "_" + name); ok {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				errs = append(errs, fmt.Errorf("%s_%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = d
		}
	}

	if v, ok := lookup(EnvPrefix + "_PRECISION"); ok {
		p, err := imperial.ParsePrecision(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s_PRECISION: %w", EnvPrefix, err))
		} else {
			c.Precision = int(p)
		}
	}
	str("DISPLAY", &c.Display)
	boolean("FEET", &c.Feet)
	str("STORE", &c.Store)
	str("PASSPHRASE", &c.Passphrase)
	integer("HISTORY_LIMIT", &c.HistoryLimit)
	str("SERVER_ADDR", &c.Server.Addr)
	boolean("SERVER_METRICS", &c.Server.Metrics)
	str("SERVER_METRICS_PATH", &c.Server.MetricsPath)
	duration("SERVER_REQUEST_TIMEOUT", &c.Server.RequestTimeout)
	duration("SERVER_SHUTDOWN_TIMEOUT", &c.Server.ShutdownTimeout)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	return errors.Join(errs...)
}

// Validate checks every field.
func (c Config) Validate() error {
	var errs []string

	if !imperial.Precision(c.Precision).Valid() {
		errs = append(errs, fmt.Sprintf("precision must be 8, 16 or 32, got %d", c.Precision))
	}
	if _, err := imperial.ParseDisplayFormat(c.Display); err != nil {
		errs = append(errs, err.Error())
	}
	if _, err := store.ParseBackend(c.Store); err != nil {
		errs = append(errs, err.Error())
	}
	if c.HistoryLimit <= 0 {
		errs = append(errs, "history_limit must be positive")
	}
	if c.Server.Addr == "" {
		errs = append(errs, "server.addr is required")
	}
	if c.Server.Metrics && !strings.HasPrefix(c.Server.MetricsPath, "/") {
		errs = append(errs, "server.metrics_path must start with /")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err.Error())
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		errs = append(errs, "log.format must be 'text' or 'json'")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return nil
}

// PrecisionValue is Precision as an imperial.Precision.
func (c Config) PrecisionValue() imperial.Precision {
	return imperial.Precision(c.Precision).OrDefault()
}

// DisplayOptions builds formatter options from Display and Feet.
func (c Config) DisplayOptions() imperial.DisplayOptions {
	f, _ := imperial.ParseDisplayFormat(c.Display)
	return imperial.DisplayOptions{Format: f, Feet: c.Feet}
}

// Backend is Store as a store.Backend.
func (c Config) Backend() store.Backend {
	b, _ := store.ParseBackend(c.Store)
	return b
}

// LoggerConfig builds a logger.Config writing to stderr.
func (c Config) LoggerConfig() logger.Config {
	lc := logger.DefaultConfig()
	lc.Level, _ = logger.ParseLevel(c.Log.Level)
	lc.Format = strings.ToLower(c.Log.Format)
	return lc
}
