// File: doc.go
// Title: Turtle Package Documentation
// Description: Entry point of the turtle language toolchain.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine documentation
// - 2026-10-18 v0.2.0: Turtle program engine

/*
Package turtle parses and runs turtle graphics programs.

	engine := turtle.NewEngine(turtle.Options{Logger: logger})

	out := plot.NewWriter(os.Stdout)
	result, err := engine.Run(ctx, source, env.New(nil), out)
	if err != nil {
		// err is a *mdwerror.Error coded SYNTAX, UNBOUND_VARIABLE,
		// TIMEOUT, IO_ERROR, INVALID_INPUT or EXECUTION
	}
	out.Flush()

A program is a sequence of statements:

	# square of side n
	n := 4
	pendown
	while n > 0 do
	  forward 10
	  left 90
	  n := n - 1
	od

Each action emits one protocol line: H (home), U (pen up), D (pen down),
[ (push state), ] (pop state), M <distance> and R <angle>. "left a" emits
R a and "right a" emits R -a.

Subpackages: parser (lexer and grammar), ast (tree and execution), env
(variable bindings) and plot (protocol commands and sinks).
*/
package turtle
