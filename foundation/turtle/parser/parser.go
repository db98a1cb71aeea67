// File: parser.go
// Title: Turtle Recursive Descent Parser
// Description: Converts a token stream into a turtle AST. One method per
//              grammar production, a single token of lookahead, and the
//              first mismatch aborts the parse with a SyntaxError.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-18 v0.2.0: Turtle grammar (statements, arithmetic, conditions)

package parser

import (
	mdwlog "github.com/msto63/turtle/foundation/core/log"
	"github.com/msto63/turtle/foundation/turtle/ast"
)

// Parser implements recursive descent parsing for turtle programs.
// A Parser is reusable but not safe for concurrent use.
type Parser struct {
	scanner  Scanner
	current  Token // Lookahead
	previous Token // Last consumed token
	logger   *mdwlog.Logger
}

// Options configures parser behavior
type Options struct {
	Logger *mdwlog.Logger
}

// New creates a new turtle parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}

	return &Parser{
		logger: opts.Logger.WithField("component", "turtle-parser"),
	}
}

// Parse parses a complete program from source text
func (p *Parser) Parse(input string) (*ast.Program, error) {
	p.logger.Debug("Starting turtle parse", mdwlog.Fields{
		"length": len(input),
	})
	return p.ParseScanner(NewLexer(input))
}

// ParseScanner parses a complete program from any token source
func (p *Parser) ParseScanner(s Scanner) (*ast.Program, error) {
	p.reset(s)

	prog, err := p.parseProgram()
	if err != nil {
		p.logFailure(err)
		return nil, err
	}

	p.logger.Debug("Turtle parse completed", mdwlog.Fields{
		"blocks": len(prog.Blocks),
		"lines":  p.current.Line,
	})

	return prog, nil
}

// ParseExpr parses a single arithmetic expression that must span the
// whole input
func (p *Parser) ParseExpr(input string) (ast.Expr, error) {
	p.reset(NewLexer(input))

	expr, err := p.parseExpr()
	if err == nil {
		err = p.match(TokenEOF)
	}
	if err != nil {
		p.logFailure(err)
		return nil, err
	}
	return expr, nil
}

// ParseCondition parses a single boolean condition that must span the
// whole input
func (p *Parser) ParseCondition(input string) (ast.Expr, error) {
	p.reset(NewLexer(input))

	expr, err := p.parseBoolExpr()
	if err == nil {
		err = p.match(TokenEOF)
	}
	if err != nil {
		p.logFailure(err)
		return nil, err
	}
	return expr, nil
}

// program := block* EOF
func (p *Parser) parseProgram() (*ast.Program, error) {
	prog := &ast.Program{}

	for p.current.Type != TokenEOF {
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		prog.Blocks = append(prog.Blocks, block)
	}

	if err := p.match(TokenEOF); err != nil {
		return nil, err
	}
	return prog, nil
}

// block := stmt+
func (p *Parser) parseBlock() (*ast.BlockStmt, error) {
	block := &ast.BlockStmt{Pos: p.currentPosition()}

	for {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		block.Stmts = append(block.Stmts, stmt)

		if !p.current.Type.StartsStatement() {
			return block, nil
		}
	}
}

// stmt := assign | while_stmt | if_stmt | action
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.current.Type {
	case TokenIdentifier:
		return p.parseAssign()
	case TokenWhile:
		return p.parseWhile()
	case TokenIf:
		return p.parseIf()
	default:
		return p.parseAction()
	}
}

// assign := IDENT ":=" expr
func (p *Parser) parseAssign() (ast.Stmt, error) {
	pos := p.currentPosition()
	name := p.current.Value

	if err := p.match(TokenIdentifier); err != nil {
		return nil, err
	}
	if err := p.match(TokenAssign); err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.AssignStmt{Name: name, Value: value, Pos: pos}, nil
}

// while_stmt := "while" bool_expr "do" block "od"
func (p *Parser) parseWhile() (ast.Stmt, error) {
	pos := p.currentPosition()

	if err := p.match(TokenWhile); err != nil {
		return nil, err
	}

	cond, err := p.parseBoolExpr()
	if err != nil {
		return nil, err
	}

	if err := p.match(TokenDo); err != nil {
		return nil, err
	}

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	if err := p.match(TokenOd); err != nil {
		return nil, err
	}

	return &ast.WhileStmt{Cond: cond, Body: body, Pos: pos}, nil
}

// if_stmt := "if" bool_expr "then" block else_part
func (p *Parser) parseIf() (ast.Stmt, error) {
	pos := p.currentPosition()

	if err := p.match(TokenIf); err != nil {
		return nil, err
	}

	return p.parseConditional(pos)
}

// parseConditional parses the part shared by "if" and "elsif":
// bool_expr "then" block else_part
func (p *Parser) parseConditional(pos ast.Position) (ast.Stmt, error) {
	cond, err := p.parseBoolExpr()
	if err != nil {
		return nil, err
	}

	if err := p.match(TokenThen); err != nil {
		return nil, err
	}

	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	els, err := p.parseElsePart()
	if err != nil {
		return nil, err
	}

	return &ast.IfStmt{Cond: cond, Then: then, Else: els, Pos: pos}, nil
}

// else_part := "elsif" bool_expr "then" block else_part
//
//	| "else" block "fi"
//	| "fi"
//
// A nil statement means the construct has no else branch.
func (p *Parser) parseElsePart() (ast.Stmt, error) {
	switch p.current.Type {
	case TokenElsif:
		pos := p.currentPosition()
		p.advance()
		return p.parseConditional(pos)

	case TokenElse:
		p.advance()
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if err := p.match(TokenFi); err != nil {
			return nil, err
		}
		return block, nil

	case TokenFi:
		p.advance()
		return nil, nil

	default:
		return nil, p.syntaxError(`"elsif", "else" or "fi"`)
	}
}

// action := "home" | "penup" | "pendown" | "pushstate" | "popstate"
//
//	| ("forward" | "left" | "right") expr
func (p *Parser) parseAction() (ast.Stmt, error) {
	pos := p.currentPosition()

	var kind ast.ActionKind
	switch p.current.Type {
	case TokenHome:
		kind = ast.ActionHome
	case TokenPenUp:
		kind = ast.ActionPenUp
	case TokenPenDown:
		kind = ast.ActionPenDown
	case TokenPushState:
		kind = ast.ActionPushState
	case TokenPopState:
		kind = ast.ActionPopState
	case TokenForward:
		kind = ast.ActionForward
	case TokenLeft:
		kind = ast.ActionLeft
	case TokenRight:
		kind = ast.ActionRight
	default:
		return nil, p.syntaxError("statement")
	}
	p.advance()

	action := &ast.ActionStmt{Kind: kind, Pos: pos}
	if kind.HasArg() {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		action.Arg = arg
	}

	return action, nil
}

// expr := term (("+" | "-") term)*
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenPlus || p.current.Type == TokenMinus {
		pos := p.currentPosition()
		op := ast.OpAdd
		if p.current.Type == TokenMinus {
			op = ast.OpSub
		}
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right, Pos: pos}
	}

	return left, nil
}

// term := factor (("*" | "/") factor)*
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenStar || p.current.Type == TokenSlash {
		pos := p.currentPosition()
		op := ast.OpMul
		if p.current.Type == TokenSlash {
			op = ast.OpDiv
		}
		p.advance()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right, Pos: pos}
	}

	return left, nil
}

// factor := "+" factor | "-" factor | "(" expr ")" | IDENT | REAL
func (p *Parser) parseFactor() (ast.Expr, error) {
	pos := p.currentPosition()

	switch p.current.Type {
	case TokenPlus:
		p.advance()
		return p.parseFactor()

	case TokenMinus:
		p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.OpNeg, Operand: operand, Pos: pos}, nil

	case TokenLeftParen:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.match(TokenRightParen); err != nil {
			return nil, err
		}
		return expr, nil

	case TokenIdentifier:
		name := p.current.Value
		p.advance()
		return &ast.IdentifierExpr{Name: name, Pos: pos}, nil

	case TokenReal:
		value := p.current.Number
		p.advance()
		return &ast.LiteralExpr{Value: value, Pos: pos}, nil

	default:
		return nil, p.syntaxError("factor")
	}
}

// bool_expr := bool_term ("or" bool_term)*
func (p *Parser) parseBoolExpr() (ast.Expr, error) {
	left, err := p.parseBoolTerm()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenOr {
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseBoolTerm()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: ast.OpOr, Right: right, Pos: pos}
	}

	return left, nil
}

// bool_term := bool_factor ("and" bool_factor)*
func (p *Parser) parseBoolTerm() (ast.Expr, error) {
	left, err := p.parseBoolFactor()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenAnd {
		pos := p.currentPosition()
		p.advance()

		right, err := p.parseBoolFactor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: ast.OpAnd, Right: right, Pos: pos}
	}

	return left, nil
}

// bool_factor := "not" bool_factor | "(" bool_expr ")" | cmp
func (p *Parser) parseBoolFactor() (ast.Expr, error) {
	pos := p.currentPosition()

	switch p.current.Type {
	case TokenNot:
		p.advance()
		operand, err := p.parseBoolFactor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.OpNot, Operand: operand, Pos: pos}, nil

	case TokenLeftParen:
		p.advance()
		expr, err := p.parseBoolExpr()
		if err != nil {
			return nil, err
		}
		if err := p.match(TokenRightParen); err != nil {
			return nil, err
		}
		return expr, nil

	default:
		return p.parseComparison()
	}
}

// cmp := expr ("=" | "<>" | "<" | ">" | ">=" | "<=") expr
func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if !p.current.Type.IsComparison() {
		return nil, p.syntaxError("comparison operator")
	}

	pos := p.currentPosition()
	op := comparisonOps[p.current.Type]
	p.advance()

	right, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.BinaryExpr{Left: left, Op: op, Right: right, Pos: pos}, nil
}

var comparisonOps = map[TokenType]ast.Operator{
	TokenEquals:    ast.OpEq,
	TokenNotEquals: ast.OpNe,
	TokenLess:      ast.OpLt,
	TokenGreater:   ast.OpGt,
	TokenGreaterEq: ast.OpGe,
	TokenLessEq:    ast.OpLe,
}

// match consumes the lookahead if it has the expected type
func (p *Parser) match(expected TokenType) error {
	if p.current.Type != expected {
		return p.syntaxError(expected.String())
	}
	p.advance()
	return nil
}

// advance moves to the next token
func (p *Parser) advance() {
	p.previous = p.current
	p.current = p.scanner.NextToken()
}

// reset primes the lookahead from a fresh scanner
func (p *Parser) reset(s Scanner) {
	p.scanner = s
	p.previous = Token{}
	p.current = Token{}
	p.advance()
}

// currentPosition returns the AST position of the lookahead
func (p *Parser) currentPosition() ast.Position {
	return ast.Position{
		Line:   p.current.Line,
		Column: p.current.Column,
	}
}

// syntaxError creates a syntax error at the lookahead
func (p *Parser) syntaxError(expected string) error {
	return &SyntaxError{
		Line:     p.current.Line,
		Column:   p.current.Column,
		Found:    p.current.Describe(),
		Expected: expected,
	}
}

func (p *Parser) logFailure(err error) {
	fields := mdwlog.Fields{"error": err.Error()}
	if se, ok := err.(*SyntaxError); ok {
		fields["line"] = se.Line
		fields["found"] = se.Found
		fields["expected"] = se.Expected
	}
	p.logger.Warn("Turtle parse failed", fields)
}
