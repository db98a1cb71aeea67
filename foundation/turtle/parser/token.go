// File: token.go
// Title: Turtle Token Definitions
// Description: Token categories of the turtle language, keyword lookup and
//              the human readable token descriptions used in syntax errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial token definitions
// - 2026-10-18 v0.2.0: Turtle language token set, split from lexer.go

package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenIllegal

	// Identifiers and literals
	TokenIdentifier // size, x_1
	TokenReal       // 10, 2.5, .5, 1e-3

	// Operators and punctuation
	TokenAssign     // :=
	TokenPlus       // +
	TokenMinus      // -
	TokenStar       // *
	TokenSlash      // /
	TokenLeftParen  // (
	TokenRightParen // )
	TokenEquals     // =
	TokenNotEquals  // <>
	TokenLess       // <
	TokenGreater    // >
	TokenLessEq     // <=
	TokenGreaterEq  // >=

	// Keywords
	TokenWhile
	TokenDo
	TokenOd
	TokenIf
	TokenThen
	TokenElsif
	TokenElse
	TokenFi
	TokenAnd
	TokenOr
	TokenNot
	TokenHome
	TokenPenUp
	TokenPenDown
	TokenForward
	TokenLeft
	TokenRight
	TokenPushState
	TokenPopState
)

var keywords = map[string]TokenType{
	"while":     TokenWhile,
	"do":        TokenDo,
	"od":        TokenOd,
	"if":        TokenIf,
	"then":      TokenThen,
	"elsif":     TokenElsif,
	"else":      TokenElse,
	"fi":        TokenFi,
	"and":       TokenAnd,
	"or":        TokenOr,
	"not":       TokenNot,
	"home":      TokenHome,
	"penup":     TokenPenUp,
	"pendown":   TokenPenDown,
	"forward":   TokenForward,
	"left":      TokenLeft,
	"right":     TokenRight,
	"pushstate": TokenPushState,
	"popstate":  TokenPopState,
}

var tokenNames = map[TokenType]string{
	TokenEOF:        "end of input",
	TokenIllegal:    "illegal character",
	TokenIdentifier: "identifier",
	TokenReal:       "number",
	TokenAssign:     `":="`,
	TokenPlus:       `"+"`,
	TokenMinus:      `"-"`,
	TokenStar:       `"*"`,
	TokenSlash:      `"/"`,
	TokenLeftParen:  `"("`,
	TokenRightParen: `")"`,
	TokenEquals:     `"="`,
	TokenNotEquals:  `"<>"`,
	TokenLess:       `"<"`,
	TokenGreater:    `">"`,
	TokenLessEq:     `"<="`,
	TokenGreaterEq:  `">="`,
}

func init() {
	for word, tt := range keywords {
		tokenNames[tt] = strconv.Quote(word)
	}
}

// String returns the description of the token type used in error messages
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return "unknown"
}

// IsKeyword reports whether the token type is a reserved word
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenWhile && tt <= TokenPopState
}

// IsComparison reports whether the token type is a comparison operator
func (tt TokenType) IsComparison() bool {
	return tt >= TokenEquals && tt <= TokenGreaterEq
}

// StartsStatement reports whether a statement can begin with this token
func (tt TokenType) StartsStatement() bool {
	switch tt {
	case TokenIdentifier, TokenWhile, TokenIf,
		TokenHome, TokenPenUp, TokenPenDown,
		TokenForward, TokenLeft, TokenRight,
		TokenPushState, TokenPopState:
		return true
	default:
		return false
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text as written in the source
	Number   float64   // Literal value for TokenReal
	Position int       // Byte position in input
	Line     int       // Line number (1-based)
	Column   int       // Column number (1-based)
}

// String returns a compact representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	case TokenIdentifier:
		return fmt.Sprintf("IDENT(%s)", t.Value)
	case TokenReal:
		return fmt.Sprintf("REAL(%s)", t.Value)
	default:
		return strings.Trim(t.Type.String(), `"`)
	}
}

// Describe returns the token as it is named in syntax errors
func (t Token) Describe() string {
	switch t.Type {
	case TokenIdentifier:
		return fmt.Sprintf("identifier %q", t.Value)
	case TokenReal:
		return fmt.Sprintf("number %s", t.Value)
	case TokenIllegal:
		return fmt.Sprintf("illegal character %q", t.Value)
	default:
		return t.Type.String()
	}
}

// lookupIdent returns the keyword type for ident, or TokenIdentifier.
// Keywords are matched case-insensitively.
func lookupIdent(ident string) TokenType {
	if tt, ok := keywords[strings.ToLower(ident)]; ok {
		return tt
	}
	return TokenIdentifier
}
