package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/sghaida/patterns/internal/logging"
)

// Environment overrides, applied after the config file.
const (
	EnvLogLevel   = "PATTERNS_LOG_LEVEL"
	EnvLogFormat  = "PATTERNS_LOG_FORMAT"
	EnvMetrics    = "PATTERNS_METRICS"
	EnvGoroutines = "PATTERNS_GOROUTINES"
)

var ErrUnsupportedFile = errors.New("config: unsupported file extension")

type Config struct {
	Log     LogConfig  `yaml:"log" toml:"log"`
	Metrics bool       `yaml:"metrics" toml:"metrics"`
	Demo    DemoConfig `yaml:"demo" toml:"demo"`
}

type LogConfig struct {
	// Level is any name logging.ParseLevel accepts (trace ... error, disabled).
	Level string `yaml:"level" toml:"level"`

	// Format is console or json.
	Format string `yaml:"format" toml:"format"`
}

type DemoConfig struct {
	// Goroutines is how many callers race for the lazy instance in the demos.
	Goroutines int `yaml:"goroutines" toml:"goroutines"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "warn", Format: "console"},
		Metrics: true,
		Demo:    DemoConfig{Goroutines: 8},
	}
}

// Load builds the configuration from defaults, then the file at path (if
// non-empty), then the environment. .yaml/.yml and .toml files are accepted.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	applyEnv(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFromEnv is Load without a file.
func LoadFromEnv() (Config, error) { return Load("") }

// Validate reports the first invalid field.
func Validate(cfg Config) error {
	if _, ok := logging.ParseLevel(cfg.Log.Level); !ok {
		return fmt.Errorf("config: invalid log level %q", cfg.Log.Level)
	}
	switch strings.ToLower(cfg.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("config: invalid log format %q", cfg.Log.Format)
	}
	if cfg.Demo.Goroutines < 1 {
		return fmt.Errorf("config: demo.goroutines must be > 0, got %d", cfg.Demo.Goroutines)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.Log.Level = getenv(EnvLogLevel, cfg.Log.Level)
	cfg.Log.Format = getenv(EnvLogFormat, cfg.Log.Format)
	cfg.Metrics = getenvBool(EnvMetrics, cfg.Metrics)
	cfg.Demo.Goroutines = getenvInt(EnvGoroutines, cfg.Demo.Goroutines)
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvBool(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
