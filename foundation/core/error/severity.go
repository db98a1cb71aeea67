// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger picks its level
//              from the severity when logging a structured error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity mapping for toolchain codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers mistakes in user programs (syntax, unbound names)
	SeverityLow Severity = iota

	// SeverityMedium covers failures with an obvious remedy (timeouts, bad input)
	SeverityMedium

	// SeverityHigh covers environment problems (unreadable files, bad config)
	SeverityHigh

	// SeverityCritical covers internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeIO, CodeNotFound, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeSyntax, CodeUnboundVariable:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
