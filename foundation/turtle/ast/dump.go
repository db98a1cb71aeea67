// File: dump.go
// Title: Turtle AST Tree Dump
// Description: Indented, one node per line rendering of an AST for
//              debugging and the "turtle ast" command.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: StringVisitor for command trees
// - 2026-10-18 v0.2.0: Indented dump built on Walk

package ast

import (
	"fmt"
	"strings"
)

// Dump renders node as an indented tree
func Dump(node Node) string {
	var sb strings.Builder
	Walk(&dumper{sb: &sb}, node)
	return sb.String()
}

type dumper struct {
	sb    *strings.Builder
	depth int
}

func (d *dumper) Visit(node Node) Visitor {
	if node == nil {
		return nil
	}
	d.sb.WriteString(strings.Repeat("  ", d.depth))
	d.sb.WriteString(Label(node))
	d.sb.WriteByte('\n')
	return &dumper{sb: d.sb, depth: d.depth + 1}
}

// Label describes a single node without its children
func Label(node Node) string {
	switch n := node.(type) {
	case *Program:
		return fmt.Sprintf("Program (%d blocks)", len(n.Blocks))
	case *BlockStmt:
		return fmt.Sprintf("Block @%s", n.Pos)
	case *AssignStmt:
		return fmt.Sprintf("Assign %s @%s", n.Name, n.Pos)
	case *ActionStmt:
		return fmt.Sprintf("Action %s @%s", n.Kind, n.Pos)
	case *WhileStmt:
		return fmt.Sprintf("While @%s", n.Pos)
	case *IfStmt:
		if n.Else == nil {
			return fmt.Sprintf("If @%s", n.Pos)
		}
		return fmt.Sprintf("If/Else @%s", n.Pos)
	case *BinaryExpr:
		return fmt.Sprintf("Binary %s", n.Op)
	case *UnaryExpr:
		return fmt.Sprintf("Unary %s", n.Op)
	case *IdentifierExpr:
		return fmt.Sprintf("Identifier %s", n.Name)
	case *LiteralExpr:
		return fmt.Sprintf("Literal %s", FormatNumber(n.Value))
	default:
		return fmt.Sprintf("%T", node)
	}
}
