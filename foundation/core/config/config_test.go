// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, defaults, validation and the
//              environment lookup order.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-18 v0.2.0: Typed toolchain configuration

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	mdwerror "github.com/msto63/turtle/foundation/core/error"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "turtle.toml", `
[general]
log_level = "debug"
log_format = "json"

[engine]
max_source_length = 4096
execution_timeout = "5s"

[output]
path = "out.plot"

[variables]
size = 10
angle = 90.5
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.General.LogLevel != "debug" {
			t.Errorf("LogLevel = %q, want debug", cfg.General.LogLevel)
		}
		if cfg.General.LogFormat != "json" {
			t.Errorf("LogFormat = %q, want json", cfg.General.LogFormat)
		}
		if cfg.Engine.MaxSourceLength != 4096 {
			t.Errorf("MaxSourceLength = %d, want 4096", cfg.Engine.MaxSourceLength)
		}
		if cfg.Engine.ExecutionTimeout.Duration != 5*time.Second {
			t.Errorf("ExecutionTimeout = %v, want 5s", cfg.Engine.ExecutionTimeout)
		}
		if cfg.Output.Path != "out.plot" {
			t.Errorf("Output.Path = %q, want out.plot", cfg.Output.Path)
		}
		want := map[string]float64{"size": 10, "angle": 90.5}
		if diff := cmp.Diff(want, cfg.Variables); diff != "" {
			t.Errorf("Variables mismatch (-want +got):\n%s", diff)
		}
		if cfg.Path() != path {
			t.Errorf("Path() = %q, want %q", cfg.Path(), path)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "turtle.yaml", `
general:
  log_level: warn
engine:
  execution_timeout: 250ms
variables:
  n: 3
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.General.LogLevel != "warn" {
			t.Errorf("LogLevel = %q, want warn", cfg.General.LogLevel)
		}
		if cfg.Engine.ExecutionTimeout.Duration != 250*time.Millisecond {
			t.Errorf("ExecutionTimeout = %v, want 250ms", cfg.Engine.ExecutionTimeout)
		}
		if cfg.Engine.MaxSourceLength != DefaultMaxSourceLength {
			t.Errorf("MaxSourceLength = %d, want default", cfg.Engine.MaxSourceLength)
		}
		if cfg.Variables["n"] != 3 {
			t.Errorf("Variables[n] = %v, want 3", cfg.Variables["n"])
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nope.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			t.Errorf("Load() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("malformed TOML", func(t *testing.T) {
		path := writeFile(t, tempDir, "bad.toml", "[engine\nmax_source_length = ")
		_, err := Load(path)
		if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
			t.Errorf("Load() error = %v, want CONFIG_ERROR", err)
		}
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want text", cfg.General.LogFormat)
	}
	if cfg.Engine.MaxSourceLength != DefaultMaxSourceLength {
		t.Errorf("MaxSourceLength = %d, want %d", cfg.Engine.MaxSourceLength, DefaultMaxSourceLength)
	}
	if cfg.Engine.ExecutionTimeout.Duration != DefaultExecutionTimeout {
		t.Errorf("ExecutionTimeout = %v, want %v", cfg.Engine.ExecutionTimeout, DefaultExecutionTimeout)
	}
	if cfg.Variables == nil {
		t.Error("Variables should be initialized")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"negative source length", func(c *Config) { c.Engine.MaxSourceLength = -1 }, true},
		{"negative timeout", func(c *Config) { c.Engine.ExecutionTimeout.Duration = -time.Second }, true},
		{"unknown log format", func(c *Config) { c.General.LogFormat = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("Validate() code = %v, want INVALID_CONFIG", mdwerror.GetCode(err))
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	tempDir := t.TempDir()
	path := writeFile(t, tempDir, "custom.toml", "[general]\nlog_level = \"debug\"\n")

	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.General.LogLevel)
	}

	t.Setenv(EnvLogLevel, "trace")
	cfg, err = LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.General.LogLevel != "trace" {
		t.Errorf("LogLevel with override = %q, want trace", cfg.General.LogLevel)
	}

	t.Setenv(EnvConfigPath, filepath.Join(tempDir, "missing.toml"))
	if _, err := LoadFromEnv(); err == nil {
		t.Error("LoadFromEnv() with missing explicit file should fail")
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if d.Duration != 90*time.Second {
		t.Errorf("Duration = %v, want 1m30s", d.Duration)
	}

	text, _ := d.MarshalText()
	if string(text) != "1m30s" {
		t.Errorf("MarshalText() = %q, want 1m30s", text)
	}

	if err := d.UnmarshalText([]byte("soon")); err == nil {
		t.Error("UnmarshalText() should reject invalid durations")
	}
}
