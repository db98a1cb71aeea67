// File: nodes.go
// Title: Turtle AST Expression Nodes
// Description: Node interfaces, source positions and the expression nodes.
//              Expressions are side-effect free and evaluate to float64;
//              boolean results are 1 for true and 0 for false.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-18 v0.2.0: Numeric turtle expressions with evaluation

package ast

import (
	"fmt"
	"strconv"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a string representation of the node
	String() string

	// Position returns the source position of the node
	Position() Position
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Environment binds variable names to values during evaluation
type Environment interface {
	Get(name string) (float64, error)
	Put(name string, value float64)
}

// Expr represents the base interface for all expressions
type Expr interface {
	Node

	// Eval computes the value of the expression
	Eval(env Environment) (float64, error)

	exprNode() // marker method
}

// Operator identifies unary and binary operators
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpAnd
	OpOr
	OpEq
	OpNe
	OpLt
	OpGt
	OpGe
	OpLe
	OpNeg
	OpNot
)

var operatorNames = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpAnd: "and",
	OpOr:  "or",
	OpEq:  "=",
	OpNe:  "<>",
	OpLt:  "<",
	OpGt:  ">",
	OpGe:  ">=",
	OpLe:  "<=",
	OpNeg: "-",
	OpNot: "not",
}

// String returns the operator as written in source
func (op Operator) String() string {
	if op >= 0 && int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return fmt.Sprintf("Operator(%d)", int(op))
}

// IdentifierExpr is a variable reference
type IdentifierExpr struct {
	Name string   // Variable name
	Pos  Position // Source position
}

// LiteralExpr is a numeric constant
type LiteralExpr struct {
	Value float64  // Constant value
	Pos   Position // Source position
}

// UnaryExpr represents negation or logical not
type UnaryExpr struct {
	Op      Operator // OpNeg or OpNot
	Operand Expr     // Operand
	Pos     Position // Source position
}

// BinaryExpr represents arithmetic, comparison and boolean operators
type BinaryExpr struct {
	Left  Expr     // Left operand
	Op    Operator // Operator
	Right Expr     // Right operand
	Pos   Position // Source position
}

// Eval looks the variable up. An unbound name fails with the
// environment's error unchanged.
func (ie *IdentifierExpr) Eval(env Environment) (float64, error) {
	return env.Get(ie.Name)
}

func (ie *IdentifierExpr) String() string     { return ie.Name }
func (ie *IdentifierExpr) Position() Position { return ie.Pos }
func (ie *IdentifierExpr) exprNode()          {}

// Eval returns the constant
func (le *LiteralExpr) Eval(Environment) (float64, error) {
	return le.Value, nil
}

func (le *LiteralExpr) String() string     { return FormatNumber(le.Value) }
func (le *LiteralExpr) Position() Position { return le.Pos }
func (le *LiteralExpr) exprNode()          {}

// Eval negates the operand, or for OpNot yields 1 when the operand is 0
// and 0 otherwise
func (ue *UnaryExpr) Eval(env Environment) (float64, error) {
	x, err := ue.Operand.Eval(env)
	if err != nil {
		return 0, err
	}

	switch ue.Op {
	case OpNeg:
		return -x, nil
	case OpNot:
		return truth(x == 0), nil
	default:
		return 0, fmt.Errorf("invalid unary operator %s at %s", ue.Op, ue.Pos)
	}
}

func (ue *UnaryExpr) String() string {
	if ue.Op == OpNot {
		return fmt.Sprintf("(not %s)", ue.Operand)
	}
	return fmt.Sprintf("(%s%s)", ue.Op, ue.Operand)
}

func (ue *UnaryExpr) Position() Position { return ue.Pos }
func (ue *UnaryExpr) exprNode()          {}

// Eval applies the operator. "and" and "or" do not evaluate the right
// operand when the left one decides the result. Division follows IEEE 754,
// so dividing by zero yields an infinity or NaN rather than an error.
func (be *BinaryExpr) Eval(env Environment) (float64, error) {
	l, err := be.Left.Eval(env)
	if err != nil {
		return 0, err
	}

	switch be.Op {
	case OpAnd:
		if l == 0 {
			return 0, nil
		}
		return be.rightTruth(env)
	case OpOr:
		if l != 0 {
			return 1, nil
		}
		return be.rightTruth(env)
	}

	r, err := be.Right.Eval(env)
	if err != nil {
		return 0, err
	}

	switch be.Op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		return l / r, nil
	case OpEq:
		return truth(l == r), nil
	case OpNe:
		return truth(l != r), nil
	case OpLt:
		return truth(l < r), nil
	case OpGt:
		return truth(l > r), nil
	case OpGe:
		return truth(l >= r), nil
	case OpLe:
		return truth(l <= r), nil
	default:
		return 0, fmt.Errorf("invalid binary operator %s at %s", be.Op, be.Pos)
	}
}

func (be *BinaryExpr) rightTruth(env Environment) (float64, error) {
	r, err := be.Right.Eval(env)
	if err != nil {
		return 0, err
	}
	return truth(r != 0), nil
}

func (be *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", be.Left, be.Op, be.Right)
}

func (be *BinaryExpr) Position() Position { return be.Pos }
func (be *BinaryExpr) exprNode()          {}

// FormatNumber renders a value in the shortest form that reads back exactly
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
