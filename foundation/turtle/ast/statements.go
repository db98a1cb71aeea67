// File: statements.go
// Title: Turtle AST Statement Nodes
// Description: Statement nodes and their execution against a Machine. Only
//              the environment and the plotter change during execution;
//              the tree itself is never modified.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package ast

import (
	"context"
	"fmt"
	"strings"

	"github.com/msto63/turtle/foundation/turtle/plot"
)

// Machine is the state a program runs against
type Machine struct {
	Env     Environment
	Plotter plot.Plotter
}

// Stmt represents the base interface for all statements
type Stmt interface {
	Node

	// Execute runs the statement
	Execute(ctx context.Context, m *Machine) error

	stmtNode() // marker method
}

// ActionKind identifies a turtle primitive
type ActionKind int

const (
	ActionHome ActionKind = iota
	ActionPenUp
	ActionPenDown
	ActionPushState
	ActionPopState
	ActionForward
	ActionLeft
	ActionRight
)

var actionNames = [...]string{
	ActionHome:      "home",
	ActionPenUp:     "penup",
	ActionPenDown:   "pendown",
	ActionPushState: "pushstate",
	ActionPopState:  "popstate",
	ActionForward:   "forward",
	ActionLeft:      "left",
	ActionRight:     "right",
}

// String returns the keyword of the action
func (k ActionKind) String() string {
	if k >= 0 && int(k) < len(actionNames) {
		return actionNames[k]
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// HasArg reports whether the action takes a numeric argument
func (k ActionKind) HasArg() bool {
	return k == ActionForward || k == ActionLeft || k == ActionRight
}

// AssignStmt stores the value of an expression under a name
type AssignStmt struct {
	Name  string   // Target variable
	Value Expr     // Assigned expression
	Pos   Position // Source position
}

// ActionStmt emits one protocol command
type ActionStmt struct {
	Kind ActionKind // Primitive
	Arg  Expr       // Argument, nil unless Kind.HasArg()
	Pos  Position   // Source position
}

// BlockStmt runs statements in order
type BlockStmt struct {
	Stmts []Stmt   // Statements in source order
	Pos   Position // Source position
}

// WhileStmt runs Body while Cond is nonzero
type WhileStmt struct {
	Cond Expr       // Loop condition
	Body *BlockStmt // Loop body
	Pos  Position   // Source position
}

// IfStmt runs Then when Cond is nonzero, else Else when present.
// Else is nil, a *BlockStmt, or an *IfStmt for an elsif chain.
type IfStmt struct {
	Cond Expr       // Condition
	Then *BlockStmt // Taken branch
	Else Stmt       // Optional alternative
	Pos  Position   // Source position
}

// Program is a parsed source file
type Program struct {
	Blocks []*BlockStmt
}

// EmitError reports a plotter failure together with the action that
// triggered it
type EmitError struct {
	Command plot.Command
	Pos     Position
	Err     error
}

func (e *EmitError) Error() string {
	return fmt.Sprintf("line %d: emit %q: %v", e.Pos.Line, e.Command.String(), e.Err)
}

func (e *EmitError) Unwrap() error { return e.Err }

// Execute evaluates the value and stores it, creating or overwriting the
// binding
func (as *AssignStmt) Execute(_ context.Context, m *Machine) error {
	v, err := as.Value.Eval(m.Env)
	if err != nil {
		return err
	}
	m.Env.Put(as.Name, v)
	return nil
}

func (as *AssignStmt) String() string     { return fmt.Sprintf("%s := %s", as.Name, as.Value) }
func (as *AssignStmt) Position() Position { return as.Pos }
func (as *AssignStmt) stmtNode()          {}

// Command evaluates the argument and returns the protocol command.
// "right a" turns by -a, "left a" by a.
func (as *ActionStmt) Command(env Environment) (plot.Command, error) {
	switch as.Kind {
	case ActionHome:
		return plot.Home(), nil
	case ActionPenUp:
		return plot.PenUp(), nil
	case ActionPenDown:
		return plot.PenDown(), nil
	case ActionPushState:
		return plot.Push(), nil
	case ActionPopState:
		return plot.Pop(), nil
	}

	if as.Arg == nil {
		return plot.Command{}, fmt.Errorf("line %d: %s without argument", as.Pos.Line, as.Kind)
	}
	v, err := as.Arg.Eval(env)
	if err != nil {
		return plot.Command{}, err
	}

	switch as.Kind {
	case ActionForward:
		return plot.Move(v), nil
	case ActionLeft:
		return plot.Rotate(v), nil
	case ActionRight:
		return plot.Rotate(-v), nil
	default:
		return plot.Command{}, fmt.Errorf("line %d: unknown action %s", as.Pos.Line, as.Kind)
	}
}

// Execute emits the action's command
func (as *ActionStmt) Execute(_ context.Context, m *Machine) error {
	cmd, err := as.Command(m.Env)
	if err != nil {
		return err
	}
	if err := m.Plotter.Emit(cmd); err != nil {
		return &EmitError{Command: cmd, Pos: as.Pos, Err: err}
	}
	return nil
}

func (as *ActionStmt) String() string {
	if as.Arg == nil {
		return as.Kind.String()
	}
	return fmt.Sprintf("%s %s", as.Kind, as.Arg)
}

func (as *ActionStmt) Position() Position { return as.Pos }
func (as *ActionStmt) stmtNode()          {}

// Execute runs every statement in order and stops at the first error
func (bs *BlockStmt) Execute(ctx context.Context, m *Machine) error {
	for _, s := range bs.Stmts {
		if err := s.Execute(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (bs *BlockStmt) String() string {
	parts := make([]string, len(bs.Stmts))
	for i, s := range bs.Stmts {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

func (bs *BlockStmt) Position() Position { return bs.Pos }
func (bs *BlockStmt) stmtNode()          {}

// Execute loops while the condition is nonzero. The context is checked
// before every test of the condition so a caller can stop a runaway loop.
func (ws *WhileStmt) Execute(ctx context.Context, m *Machine) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c, err := ws.Cond.Eval(m.Env)
		if err != nil {
			return err
		}
		if c == 0 {
			return nil
		}

		if err := ws.Body.Execute(ctx, m); err != nil {
			return err
		}
	}
}

func (ws *WhileStmt) String() string {
	return fmt.Sprintf("while %s do %s od", ws.Cond, ws.Body)
}

func (ws *WhileStmt) Position() Position { return ws.Pos }
func (ws *WhileStmt) stmtNode()          {}

// Execute evaluates the condition once and runs one branch at most
func (is *IfStmt) Execute(ctx context.Context, m *Machine) error {
	c, err := is.Cond.Eval(m.Env)
	if err != nil {
		return err
	}

	if c != 0 {
		return is.Then.Execute(ctx, m)
	}
	if is.Else != nil {
		return is.Else.Execute(ctx, m)
	}
	return nil
}

func (is *IfStmt) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "if %s then %s", is.Cond, is.Then)
	is.writeElse(&sb)
	sb.WriteString(" fi")
	return sb.String()
}

func (is *IfStmt) writeElse(sb *strings.Builder) {
	switch e := is.Else.(type) {
	case nil:
	case *IfStmt:
		fmt.Fprintf(sb, " elsif %s then %s", e.Cond, e.Then)
		e.writeElse(sb)
	default:
		fmt.Fprintf(sb, " else %s", e)
	}
}

func (is *IfStmt) Position() Position { return is.Pos }
func (is *IfStmt) stmtNode()          {}

// Execute runs the blocks in order
func (p *Program) Execute(ctx context.Context, m *Machine) error {
	for _, b := range p.Blocks {
		if err := b.Execute(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func (p *Program) String() string {
	parts := make([]string, len(p.Blocks))
	for i, b := range p.Blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n")
}

// Position returns the position of the first block, or line 1
func (p *Program) Position() Position {
	if len(p.Blocks) > 0 {
		return p.Blocks[0].Pos
	}
	return Position{Line: 1, Column: 1}
}
