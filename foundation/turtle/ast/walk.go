// File: walk.go
// Title: Turtle AST Traversal
// Description: Depth-first traversal of the AST and the analyses built on
//              it: variable usage and structural validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-18 v0.2.0: Single-method visitor with Walk and Inspect

package ast

import (
	"errors"
	"fmt"
	"sort"
)

// Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *IdentifierExpr, *LiteralExpr:
		// leaves

	case *UnaryExpr:
		walkIf(v, n.Operand)

	case *BinaryExpr:
		walkIf(v, n.Left)
		walkIf(v, n.Right)

	case *AssignStmt:
		walkIf(v, n.Value)

	case *ActionStmt:
		if n.Arg != nil {
			Walk(v, n.Arg)
		}

	case *BlockStmt:
		for _, s := range n.Stmts {
			walkIf(v, s)
		}

	case *WhileStmt:
		walkIf(v, n.Cond)
		if n.Body != nil {
			Walk(v, n.Body)
		}

	case *IfStmt:
		walkIf(v, n.Cond)
		if n.Then != nil {
			Walk(v, n.Then)
		}
		if n.Else != nil {
			Walk(v, n.Else)
		}

	case *Program:
		for _, b := range n.Blocks {
			if b != nil {
				Walk(v, b)
			}
		}

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

// walkIf walks child unless it is a nil interface
func walkIf(v Visitor, child Node) {
	if child != nil {
		Walk(v, child)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect calls f for each node in depth-first order. If f returns false
// the children of that node are skipped. After the children f is called
// with nil.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Usage lists the variables a program reads and writes, sorted by name
type Usage struct {
	Read    []string
	Written []string
}

// Variables collects variable usage in node. A name that is read but never
// written must be bound before the program runs.
func Variables(node Node) Usage {
	read := make(map[string]bool)
	written := make(map[string]bool)

	Inspect(node, func(n Node) bool {
		switch n := n.(type) {
		case *IdentifierExpr:
			read[n.Name] = true
		case *AssignStmt:
			written[n.Name] = true
		}
		return true
	})

	return Usage{Read: sortedKeys(read), Written: sortedKeys(written)}
}

// Free returns the names read but never assigned
func (u Usage) Free() []string {
	written := make(map[string]bool, len(u.Written))
	for _, name := range u.Written {
		written[name] = true
	}

	var free []string
	for _, name := range u.Read {
		if !written[name] {
			free = append(free, name)
		}
	}
	return free
}

// Validate checks that a tree is structurally complete: no missing
// operands, arguments only on actions that take one, non-empty blocks.
// Trees built by the parser always pass.
func Validate(node Node) error {
	var errs []error
	report := func(n Node, format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf("%s: %s", n.Position(), fmt.Sprintf(format, args...)))
	}

	Inspect(node, func(n Node) bool {
		switch n := n.(type) {
		case *UnaryExpr:
			if n.Operand == nil {
				report(n, "%s without operand", n.Op)
			}
			if n.Op != OpNeg && n.Op != OpNot {
				report(n, "invalid unary operator %s", n.Op)
			}
		case *BinaryExpr:
			if n.Left == nil || n.Right == nil {
				report(n, "%s with missing operand", n.Op)
			}
			if n.Op >= OpNeg {
				report(n, "invalid binary operator %s", n.Op)
			}
		case *AssignStmt:
			if n.Name == "" {
				report(n, "assignment without target")
			}
			if n.Value == nil {
				report(n, "assignment to %s without value", n.Name)
			}
		case *ActionStmt:
			if n.Kind.HasArg() && n.Arg == nil {
				report(n, "%s without argument", n.Kind)
			}
			if !n.Kind.HasArg() && n.Arg != nil {
				report(n, "%s takes no argument", n.Kind)
			}
		case *BlockStmt:
			if len(n.Stmts) == 0 {
				report(n, "empty block")
			}
		case *WhileStmt:
			if n.Cond == nil || n.Body == nil {
				report(n, "incomplete while statement")
			}
		case *IfStmt:
			if n.Cond == nil || n.Then == nil {
				report(n, "incomplete if statement")
			}
		}
		return true
	})

	return errors.Join(errs...)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
