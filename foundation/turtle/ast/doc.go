// File: doc.go
// Title: Turtle AST Package Documentation
// Description: Abstract syntax tree of turtle programs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST package
// - 2026-10-18 v0.2.0: Turtle expressions and statements

/*
Package ast defines the syntax tree of turtle programs and how it runs.

Expressions (IdentifierExpr, LiteralExpr, UnaryExpr, BinaryExpr) evaluate to
float64 against an Environment. Comparisons and boolean operators produce 1
or 0, and any nonzero value counts as true.

Statements (AssignStmt, ActionStmt, BlockStmt, WhileStmt, IfStmt) execute
against a Machine, which pairs the Environment with a plot.Plotter. Every
ActionStmt emits exactly one protocol command.

Each node exclusively owns its children. The tree is immutable once built;
running a program only changes the environment and the plot output, so the
same Program may run any number of times.
*/
package ast
