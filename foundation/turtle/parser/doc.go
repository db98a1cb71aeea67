// File: doc.go
// Title: Turtle Parser Package Documentation
// Description: Lexical analyzer and recursive descent parser for turtle
//              programs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-18 v0.2.0: Turtle grammar

/*
Package parser turns turtle source text into an AST.

Grammar, one method per production:

	program    := block* EOF
	block      := stmt+
	stmt       := assign | while_stmt | if_stmt | action
	assign     := IDENT ":=" expr
	while_stmt := "while" bool_expr "do" block "od"
	if_stmt    := "if" bool_expr "then" block else_part
	else_part  := "elsif" bool_expr "then" block else_part
	            | "else" block "fi"
	            | "fi"
	action     := "home" | "penup" | "pendown" | "pushstate" | "popstate"
	            | ("forward" | "left" | "right") expr
	expr       := term (("+" | "-") term)*
	term       := factor (("*" | "/") factor)*
	factor     := ("+" | "-") factor | "(" expr ")" | IDENT | REAL
	bool_expr  := bool_term ("or" bool_term)*
	bool_term  := bool_factor ("and" bool_factor)*
	bool_factor:= "not" bool_factor | "(" bool_expr ")" | cmp
	cmp        := expr ("=" | "<>" | "<" | ">" | ">=" | "<=") expr

A condition always needs a comparison operator: "if x then" is rejected,
"if x <> 0 then" is the idiomatic form. Inside a condition an opening
parenthesis starts a nested condition, so an arithmetic operand in
parentheses has to stand on the right hand side of the comparison.

The first token the grammar cannot accept aborts the parse with a
*SyntaxError naming the line, the token found and what was expected.
*/
package parser
