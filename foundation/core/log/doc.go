// Package log provides structured logging for the turtle toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, field-based logging with JSON, text, console and logfmt
//              output. Loggers are immutable values: With* methods return a
//              clone, so a component can attach its name or the current run id
//              without affecting the parent logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Run ids replace request/user ids, dropped async mode
//
// Usage:
//   import mdwlog "github.com/msto63/turtle/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithField("component", "turtle-parser")
//
//   logger.Info("program parsed", mdwlog.Fields{"blocks": 3})
//
//   timer := logger.StartTimer("execute")
//   // ... run the program
//   timer.Stop()
package log
