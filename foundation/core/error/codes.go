// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the turtle toolchain to classify
//              failures of parsing, evaluation, configuration and I/O.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced platform codes with language toolchain codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"
	CodeIO           Code = "IO_ERROR"

	// Language
	CodeSyntax          Code = "SYNTAX"
	CodeUnboundVariable Code = "UNBOUND_VARIABLE"
	CodeExecution       Code = "EXECUTION"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout, CodeIO,
		CodeSyntax, CodeUnboundVariable, CodeExecution,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax:
		return "parse"
	case CodeUnboundVariable, CodeExecution, CodeTimeout:
		return "runtime"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeIO, CodeNotFound:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c {
	case CodeSyntax:
		return 2
	case CodeUnboundVariable, CodeExecution:
		return 3
	case CodeTimeout:
		return 4
	case CodeConfigError, CodeInvalidConfig:
		return 5
	case CodeIO, CodeNotFound, CodeInvalidInput:
		return 6
	default:
		return 1
	}
}
