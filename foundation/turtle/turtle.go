// File: turtle.go
// Title: Turtle Engine
// Description: High-level API that validates, parses and runs turtle
//              programs. Every run gets its own id, a timer and a bounded
//              execution time; failures come back as coded errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-18 v0.2.0: Turtle program engine

package turtle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/turtle/foundation/core/error"
	mdwlog "github.com/msto63/turtle/foundation/core/log"
	"github.com/msto63/turtle/foundation/turtle/ast"
	"github.com/msto63/turtle/foundation/turtle/env"
	"github.com/msto63/turtle/foundation/turtle/parser"
	"github.com/msto63/turtle/foundation/turtle/plot"
)

const (
	// DefaultMaxSourceLength limits program text (1 MiB)
	DefaultMaxSourceLength = 1 << 20

	// DefaultExecutionTimeout bounds a single run
	DefaultExecutionTimeout = 30 * time.Second
)

// Engine coordinates parsing and execution
type Engine struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *mdwlog.Logger

	// MaxSourceLength limits program text in bytes (default: 1 MiB)
	MaxSourceLength int

	// ExecutionTimeout bounds a run; zero keeps the default of 30s
	ExecutionTimeout time.Duration
}

// Result describes a finished run
type Result struct {
	// RunID identifies the run in logs and errors
	RunID string

	// Commands is the number of protocol lines emitted
	Commands int

	// Duration covers parsing and execution
	Duration time.Duration

	// Variables holds the bindings after the run
	Variables map[string]float64

	// Program is the parsed program
	Program *ast.Program
}

// String returns a one line summary
func (r *Result) String() string {
	return fmt.Sprintf("run %s: %d commands, %d variables in %v",
		r.RunID, r.Commands, len(r.Variables), r.Duration)
}

// NewEngine creates an engine with the specified options
func NewEngine(opts ...Options) *Engine {
	options := Options{
		Logger:           mdwlog.GetDefault(),
		MaxSourceLength:  DefaultMaxSourceLength,
		ExecutionTimeout: DefaultExecutionTimeout,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxSourceLength > 0 {
			options.MaxSourceLength = provided.MaxSourceLength
		}
		if provided.ExecutionTimeout > 0 {
			options.ExecutionTimeout = provided.ExecutionTimeout
		}
	}

	logger := options.Logger.WithField("component", "turtle-engine")

	logger.Debug("Turtle engine initialized", mdwlog.Fields{
		"maxSourceLength":  options.MaxSourceLength,
		"executionTimeout": options.ExecutionTimeout.String(),
	})

	return &Engine{
		logger:  logger,
		options: options,
	}
}

// Parse validates and parses source without running it
func (e *Engine) Parse(source string) (*ast.Program, error) {
	if err := e.validateInput(source); err != nil {
		return nil, err
	}

	p := parser.New(parser.Options{Logger: e.logger})
	prog, err := p.Parse(source)
	if err != nil {
		return nil, e.wrapParseError(err)
	}
	return prog, nil
}

// Check reports whether source is a syntactically valid program
func (e *Engine) Check(source string) error {
	_, err := e.Parse(source)
	return err
}

// Run parses source and executes it against vars, emitting to out.
// vars may be nil, in which case the run starts with no bindings.
func (e *Engine) Run(ctx context.Context, source string, vars *env.Env, out plot.Plotter) (*Result, error) {
	runID := uuid.NewString()
	logger := e.logger.WithRunID(runID)

	timer := logger.StartTimer("turtle.Run")

	if err := e.validateInput(source); err != nil {
		timer.StopWithError(err)
		return nil, mdwerror.Wrap(err, "run rejected").WithRunID(runID)
	}

	p := parser.New(parser.Options{Logger: logger})
	prog, err := p.Parse(source)
	if err != nil {
		wrapped := e.wrapParseError(err).WithRunID(runID)
		timer.StopWithError(wrapped)
		return nil, wrapped
	}

	timer.Checkpoint("program_parsed", mdwlog.Fields{"blocks": len(prog.Blocks)})

	result, err := e.execute(ctx, logger, runID, prog, vars, out)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	result.Duration = timer.Stop()

	logger.Info("Turtle program executed", mdwlog.Fields{
		"commands":  result.Commands,
		"variables": len(result.Variables),
		"duration":  result.Duration.String(),
	})

	return result, nil
}

// Execute runs an already parsed program
func (e *Engine) Execute(ctx context.Context, prog *ast.Program, vars *env.Env, out plot.Plotter) (*Result, error) {
	runID := uuid.NewString()
	logger := e.logger.WithRunID(runID)

	if prog == nil {
		return nil, mdwerror.New("nil program").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("turtle.Execute").
			WithRunID(runID)
	}

	if err := ast.Validate(prog); err != nil {
		return nil, mdwerror.Wrap(err, "invalid program").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("turtle.Execute").
			WithRunID(runID)
	}

	start := time.Now()
	result, err := e.execute(ctx, logger, runID, prog, vars, out)
	if err != nil {
		logger.LogError(err)
		return nil, err
	}
	result.Duration = time.Since(start)

	return result, nil
}

func (e *Engine) execute(ctx context.Context, logger *mdwlog.Logger, runID string, prog *ast.Program, vars *env.Env, out plot.Plotter) (*Result, error) {
	if vars == nil {
		vars = env.New(nil)
	}
	if out == nil {
		out = plot.Discard
	}

	ctx, cancel := context.WithTimeout(ctx, e.options.ExecutionTimeout)
	defer cancel()

	counter := plot.NewCounter(out)
	machine := &ast.Machine{Env: vars, Plotter: counter}

	logger.Debug("Executing turtle program", mdwlog.Fields{
		"blocks":    len(prog.Blocks),
		"variables": vars.Len(),
	})

	if err := prog.Execute(ctx, machine); err != nil {
		return nil, e.wrapExecutionError(err, runID, counter.Count())
	}

	return &Result{
		RunID:     runID,
		Commands:  counter.Count(),
		Variables: vars.Snapshot(),
		Program:   prog,
	}, nil
}

// validateInput checks size limits before the lexer sees the input
func (e *Engine) validateInput(source string) error {
	if len(source) > e.options.MaxSourceLength {
		return mdwerror.New(fmt.Sprintf("program exceeds maximum length: %d > %d",
			len(source), e.options.MaxSourceLength)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("turtle.validateInput").
			WithDetail("length", len(source)).
			WithDetail("max_length", e.options.MaxSourceLength)
	}
	return nil
}

// wrapParseError wraps parsing errors with their position details
func (e *Engine) wrapParseError(err error) *mdwerror.Error {
	wrapped := mdwerror.Wrap(err, "parse failed").
		WithCode(mdwerror.CodeSyntax).
		WithOperation("turtle.Parse")

	var se *parser.SyntaxError
	if errors.As(err, &se) {
		wrapped.WithDetails(map[string]interface{}{
			"line":     se.Line,
			"column":   se.Column,
			"found":    se.Found,
			"expected": se.Expected,
		})
	}

	return wrapped
}

// wrapExecutionError classifies runtime failures
func (e *Engine) wrapExecutionError(err error, runID string, emitted int) *mdwerror.Error {
	wrapped := mdwerror.Wrap(err, "execution failed").
		WithCode(mdwerror.CodeExecution).
		WithOperation("turtle.Execute").
		WithRunID(runID).
		WithDetail("emitted", emitted)

	var unbound *env.UnboundVariableError
	var emitErr *ast.EmitError

	switch {
	case errors.As(err, &unbound):
		wrapped.WithCode(mdwerror.CodeUnboundVariable).WithDetail("variable", unbound.Name)
	case errors.Is(err, context.DeadlineExceeded):
		wrapped.WithCode(mdwerror.CodeTimeout).
			WithDetail("timeout", e.options.ExecutionTimeout.String())
	case errors.As(err, &emitErr):
		wrapped.WithCode(mdwerror.CodeIO).WithDetail("line", emitErr.Pos.Line)
	}

	return wrapped
}
