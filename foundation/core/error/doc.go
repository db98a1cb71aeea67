// Package error provides the structured error type used across the turtle toolchain.
//
// Package: error
// Title: Turtle Error Handling
// Description: Implements a coded error type carrying severity, operation and
//              key/value details. Parser, environment and engine failures are
//              wrapped into this type once, at the engine boundary, so callers
//              and the logger see a uniform shape.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced to the turtle toolchain codes, added run ids
//
// Usage:
//   import mdwerror "github.com/msto63/turtle/foundation/core/error"
//
//   err := mdwerror.Wrap(synErr, "failed to parse program").
//     WithCode(mdwerror.CodeSyntax).
//     WithDetail("line", 3)
//
//   if mdwerror.HasCode(err, mdwerror.CodeSyntax) {
//     // report to the user
//   }
package error
