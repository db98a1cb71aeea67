// File: lexer.go
// Title: Turtle Lexical Analyzer (Tokenizer)
// Description: Converts turtle program text into a stream of tokens for the
//              parser. Tracks line and column for error reporting, skips
//              whitespace and # comments, and reports anything it cannot
//              classify as an illegal token instead of failing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-18 v0.2.0: Turtle language scanner with real literals and comments

package parser

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Scanner produces tokens on demand. After the end of input it keeps
// returning TokenEOF.
type Scanner interface {
	NextToken() Token
}

// Lexer performs lexical analysis of turtle source text
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	pos := l.position
	line := l.line
	column := l.column

	if l.atEnd() {
		return Token{Type: TokenEOF, Position: pos, Line: line, Column: column}
	}

	var tok Token

	switch l.ch {
	case ':':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenAssign, Value: ":=", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenIllegal, l.ch, pos, line, column)
		}
	case '<':
		switch l.peekChar() {
		case '=':
			l.readChar()
			tok = Token{Type: TokenLessEq, Value: "<=", Position: pos, Line: line, Column: column}
		case '>':
			l.readChar()
			tok = Token{Type: TokenNotEquals, Value: "<>", Position: pos, Line: line, Column: column}
		default:
			tok = newToken(TokenLess, l.ch, pos, line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = Token{Type: TokenGreaterEq, Value: ">=", Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(TokenGreater, l.ch, pos, line, column)
		}
	case '=':
		tok = newToken(TokenEquals, l.ch, pos, line, column)
	case '+':
		tok = newToken(TokenPlus, l.ch, pos, line, column)
	case '-':
		tok = newToken(TokenMinus, l.ch, pos, line, column)
	case '*':
		tok = newToken(TokenStar, l.ch, pos, line, column)
	case '/':
		tok = newToken(TokenSlash, l.ch, pos, line, column)
	case '(':
		tok = newToken(TokenLeftParen, l.ch, pos, line, column)
	case ')':
		tok = newToken(TokenRightParen, l.ch, pos, line, column)
	case '.':
		if isDigit(l.peekChar()) {
			return l.readReal(pos, line, column)
		}
		tok = newToken(TokenIllegal, l.ch, pos, line, column)
	default:
		if isLetter(l.ch) {
			value := l.readIdentifier()
			return Token{Type: lookupIdent(value), Value: value, Position: pos, Line: line, Column: column}
		}
		if isDigit(l.ch) {
			return l.readReal(pos, line, column)
		}
		if l.ch >= utf8.RuneSelf {
			return l.readIllegalRune(pos, line, column)
		}
		tok = newToken(TokenIllegal, l.ch, pos, line, column)
	}

	l.readChar()
	return tok
}

// Tokenize returns all tokens up to and including EOF
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Type == TokenEOF {
			break
		}

		if tok.Type == TokenIllegal {
			return tokens, fmt.Errorf("illegal character %q at line %d, column %d (position %d)",
				tok.Value, tok.Line, tok.Column, tok.Position)
		}
	}

	return tokens, nil
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}

	if l.position < len(l.input) && l.readPos > 0 && l.input[l.position] == '\n' {
		l.line++
		l.column = 0
	}

	l.position = l.readPos
	l.readPos++
	l.column++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// atEnd reports whether the whole input has been consumed
func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// readIdentifier reads letters, digits and underscores
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readReal reads digits [. digits] [(e|E) [+|-] digits] or . digits
func (l *Lexer) readReal(pos, line, column int) Token {
	start := l.position

	for isDigit(l.ch) {
		l.readChar()
	}

	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		signed := (next == '+' || next == '-') && l.readPos+1 < len(l.input) && isDigit(l.input[l.readPos+1])
		if isDigit(next) || signed {
			l.readChar()
			if signed {
				l.readChar()
			}
			for isDigit(l.ch) {
				l.readChar()
			}
		}
	}

	text := l.input[start:l.position]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{Type: TokenIllegal, Value: text, Position: pos, Line: line, Column: column}
	}

	return Token{Type: TokenReal, Value: text, Number: value, Position: pos, Line: line, Column: column}
}

// readIllegalRune consumes a whole multi-byte character as one illegal token
func (l *Lexer) readIllegalRune(pos, line, column int) Token {
	r, size := utf8.DecodeRuneInString(l.input[l.position:])
	value := string(r)
	if r == utf8.RuneError {
		value = l.input[l.position : l.position+size]
	}
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return Token{Type: TokenIllegal, Value: value, Position: pos, Line: line, Column: column}
}

// skipWhitespaceAndComments skips blanks and # comments up to end of line
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		switch l.ch {
		case ' ', '\t', '\n', '\r':
			l.readChar()
		case '#':
			for !l.atEnd() && l.ch != '\n' {
				l.readChar()
			}
		default:
			return
		}
	}
}

// newToken creates a single character token
func newToken(tokenType TokenType, ch byte, pos, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isLetter checks if the character may start an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
