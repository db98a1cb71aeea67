// File: doc.go
// Title: Configuration Package Documentation
// Description: Package config loads the turtle toolchain configuration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2026-10-18 v0.2.0: Rewritten for the typed toolchain configuration

// Package config provides the typed configuration of the turtle toolchain.
//
// A configuration file is TOML (default) or YAML, selected by extension:
//
//	[general]
//	log_level  = "info"
//	log_format = "text"
//
//	[engine]
//	max_source_length = 1048576
//	execution_timeout = "30s"
//
//	[output]
//	path = ""
//
//	[variables]
//	size = 10
//
// LoadFromEnv honours TURTLE_CONFIG, then searches ./turtle.toml,
// ./configs/turtle.toml and ~/.config/turtle/turtle.toml, and falls back to
// Default when no file exists. TURTLE_LOG_LEVEL overrides general.log_level.
package config
