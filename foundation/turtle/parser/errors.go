// File: errors.go
// Title: Turtle Syntax Errors
// Description: The single error type produced by the parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import "fmt"

// SyntaxError reports the first token the grammar could not accept.
// Parsing stops at the first error; there is no recovery.
type SyntaxError struct {
	Line     int    // Line of the offending token (1-based)
	Column   int    // Column of the offending token (1-based)
	Found    string // Description of the offending token
	Expected string // Description of what the grammar required
}

// Error implements the error interface
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: syntax error: found %s, expecting %s", e.Line, e.Found, e.Expected)
}
