package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	// Port is the TCP port to listen on.
	Port string `yaml:"port"`

	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`

	// ShutdownTimeout bounds how long in-flight requests may run after a
	// shutdown signal.
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// MaxWords caps the number of words accepted by a single /stem request.
	MaxWords int `yaml:"max_words"`
}

// AnalysisConfig configures the Greek analyzer.
type AnalysisConfig struct {
	// StopwordsPath points to a newline-delimited word list replacing the
	// bundled stopwords. Empty keeps the bundled list.
	StopwordsPath string `yaml:"stopwords_path"`

	// ProtectedWordsPath points to words that are keyword-marked and never
	// stemmed.
	ProtectedWordsPath string `yaml:"protected_words_path"`

	// StrictWordLists turns an unreadable word list into a startup error
	// instead of a logged fallback.
	StrictWordLists bool `yaml:"strict_word_lists"`
}

// Config is the process configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`
	LogLevel string         `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8080",
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxWords:        10000,
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over DefaultConfig. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Environment variables recognised by ApplyEnv.
const (
	EnvPort           = "GREEKSTEM_PORT"
	EnvLogLevel       = "GREEKSTEM_LOG_LEVEL"
	EnvStopwords      = "GREEKSTEM_STOPWORDS"
	EnvProtectedWords = "GREEKSTEM_PROTECTED_WORDS"
)

// ApplyEnv overrides fields from the environment. Unset or empty variables
// leave the field alone.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPort); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvStopwords); v != "" {
		c.Analysis.StopwordsPath = v
	}
	if v := os.Getenv(EnvProtectedWords); v != "" {
		c.Analysis.ProtectedWordsPath = v
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("server.port is required"))
	}
	timeouts := []struct {
		name string
		d    time.Duration
	}{
		{"server.read_timeout", c.Server.ReadTimeout},
		{"server.write_timeout", c.Server.WriteTimeout},
		{"server.idle_timeout", c.Server.IdleTimeout},
		{"server.shutdown_timeout", c.Server.ShutdownTimeout},
	}
	for _, to := range timeouts {
		if to.d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", to.name, to.d))
		}
	}
	if c.Server.MaxWords <= 0 {
		errs = append(errs, fmt.Errorf("server.max_words must be positive, got %d", c.Server.MaxWords))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log_level %q is not one of debug, info, warn, error", c.LogLevel))
	}
	return errors.Join(errs...)
}
