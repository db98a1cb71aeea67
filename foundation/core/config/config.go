// File: config.go
// Title: Toolchain Configuration
// Description: Typed configuration for the turtle toolchain. Files are TOML
//              or YAML, chosen by extension. Missing values fall back to
//              defaults and TURTLE_LOG_LEVEL overrides the log level.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: Typed sections replace the dot-path map

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/turtle/foundation/core/error"
)

const (
	// EnvConfigPath names the variable holding an explicit config file path
	EnvConfigPath = "TURTLE_CONFIG"

	// EnvLogLevel names the variable overriding general.log_level
	EnvLogLevel = "TURTLE_LOG_LEVEL"

	// DefaultMaxSourceLength bounds program text accepted by the engine
	DefaultMaxSourceLength = 1 << 20

	// DefaultExecutionTimeout bounds a single program run
	DefaultExecutionTimeout = 30 * time.Second
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the complete toolchain configuration
type Config struct {
	General   GeneralConfig      `toml:"general" yaml:"general"`
	Engine    EngineConfig       `toml:"engine" yaml:"engine"`
	Output    OutputConfig       `toml:"output" yaml:"output"`
	Variables map[string]float64 `toml:"variables" yaml:"variables"`

	path string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// EngineConfig holds limits applied to every program
type EngineConfig struct {
	MaxSourceLength  int      `toml:"max_source_length" yaml:"max_source_length"`
	ExecutionTimeout Duration `toml:"execution_timeout" yaml:"execution_timeout"`
}

// OutputConfig holds where protocol lines are written; empty means stdout
type OutputConfig struct {
	Path string `toml:"path" yaml:"path"`
}

// Duration wraps time.Duration for text based decoding
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mdwerror.New(fmt.Sprintf("config file not found: %s", path)).
				WithCode(mdwerror.CodeNotFound).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
		return nil, mdwerror.Wrap(err, "failed to read config").
			WithCode(mdwerror.CodeIO).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	cfg, err := Parse(content, detectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load config").
			WithDetail("path", path)
	}
	cfg.path = path

	return cfg, nil
}

// Parse decodes configuration content, applies defaults and validates it
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "TOML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return nil, mdwerror.Wrap(err, "YAML parse error").
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Parse")
		}
	default:
		return nil, mdwerror.New(fmt.Sprintf("unsupported format: %s", format)).
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Parse").
			WithDetail("format", format.String())
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFromEnv loads the file named by TURTLE_CONFIG, else the first default
// location that exists, else the built-in defaults
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		for _, p := range DefaultPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		var err error
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// DefaultPaths lists the locations searched when TURTLE_CONFIG is unset
func DefaultPaths() []string {
	paths := []string{
		"./turtle.toml",
		"./configs/turtle.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "turtle", "turtle.toml"))
	}
	return paths
}

// Path returns the file the configuration was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Engine.MaxSourceLength < 0 {
		return mdwerror.New("engine.max_source_length must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("max_source_length", c.Engine.MaxSourceLength)
	}

	if c.Engine.ExecutionTimeout.Duration < 0 {
		return mdwerror.New("engine.execution_timeout must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("execution_timeout", c.Engine.ExecutionTimeout.String())
	}

	switch strings.ToLower(c.General.LogFormat) {
	case "json", "text", "console", "logfmt":
	default:
		return mdwerror.New(fmt.Sprintf("unknown log format: %s", c.General.LogFormat)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("config.Validate").
			WithDetail("log_format", c.General.LogFormat)
	}

	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "info"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Engine.MaxSourceLength == 0 {
		c.Engine.MaxSourceLength = DefaultMaxSourceLength
	}
	if c.Engine.ExecutionTimeout.Duration == 0 {
		c.Engine.ExecutionTimeout.Duration = DefaultExecutionTimeout
	}

	if c.Variables == nil {
		c.Variables = make(map[string]float64)
	}
}

// applyEnv applies environment overrides
func (c *Config) applyEnv() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.General.LogLevel = level
	}
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
