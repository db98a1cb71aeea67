// File: parser_test.go
// Title: Turtle Parser Unit Tests
// Description: Grammar coverage: precedence and associativity, conditions,
//              statement structure and syntax error reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive test suite
// - 2026-10-18 v0.2.0: Turtle grammar

package parser

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwlog "github.com/msto63/turtle/foundation/core/log"
	"github.com/msto63/turtle/foundation/turtle/ast"
	"github.com/msto63/turtle/foundation/turtle/env"
)

func newTestParser() *Parser {
	return New(Options{Logger: mdwlog.NewDiscard()})
}

func TestParser_ExprPrecedence(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantStr string
	}{
		{"2+3*4", 14, "(2 + (3 * 4))"},
		{"10-3-2", 5, "((10 - 3) - 2)"},
		{"(2+3)*4", 20, "((2 + 3) * 4)"},
		{"-2+3", 1, "((-2) + 3)"},
		{"8/4/2", 1, "((8 / 4) / 2)"},
		{"2*-3", -6, "(2 * (-3))"},
		{"--3", 3, "(-(-3))"},
		{"+5", 5, "5"},
		{"1.5 * (4 - .5)", 5.25, "(1.5 * (4 - 0.5))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := newTestParser().ParseExpr(tt.input)
			if err != nil {
				t.Fatalf("ParseExpr() error = %v", err)
			}
			if got := expr.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
			got, err := expr.Eval(env.New(nil))
			if err != nil {
				t.Fatalf("Eval() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParser_Conditions(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantStr string
	}{
		{"3<5", 1, "(3 < 5)"},
		{"5<3", 0, "(5 < 3)"},
		{"2 = 2", 1, "(2 = 2)"},
		{"2 <> 2", 0, "(2 <> 2)"},
		{"3 >= 3", 1, "(3 >= 3)"},
		{"4 <= 3", 0, "(4 <= 3)"},
		{"4 > 3", 1, "(4 > 3)"},
		{"1 = 1 and 2 > 3", 0, "((1 = 1) and (2 > 3))"},
		{"1 = 1 or 2 > 3", 1, "((1 = 1) or (2 > 3))"},
		{"1 < 2 and 2 < 3 and 3 < 4", 1, "(((1 < 2) and (2 < 3)) and (3 < 4))"},
		{"1 > 2 or 2 > 3 or 3 < 4", 1, "(((1 > 2) or (2 > 3)) or (3 < 4))"},
		{"1 = 2 or 1 = 1 and 2 = 3", 0, "((1 = 2) or ((1 = 1) and (2 = 3)))"},
		{"not 1 = 1", 0, "(not (1 = 1))"},
		{"not (1 = 2)", 1, "(not (1 = 2))"},
		{"not not 1 = 1", 1, "(not (not (1 = 1)))"},
		{"(1 = 2 or 1 = 1) and 2 = 2", 1, "(((1 = 2) or (1 = 1)) and (2 = 2))"},
		{"1 + 1 = 4 / 2", 1, "((1 + 1) = (4 / 2))"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expr, err := newTestParser().ParseCondition(tt.input)
			if err != nil {
				t.Fatalf("ParseCondition() error = %v", err)
			}
			if got := expr.String(); got != tt.wantStr {
				t.Errorf("String() = %q, want %q", got, tt.wantStr)
			}
			got, err := expr.Eval(env.New(nil))
			if err != nil {
				t.Fatalf("Eval() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Eval() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParser_ProgramStructure(t *testing.T) {
	prog, err := newTestParser().Parse("x := 0\nwhile x < 3 do x := x + 1 od")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(prog.Blocks) != 1 {
		t.Fatalf("len(Blocks) = %d, want 1", len(prog.Blocks))
	}
	stmts := prog.Blocks[0].Stmts
	if len(stmts) != 2 {
		t.Fatalf("len(Stmts) = %d, want 2", len(stmts))
	}

	assign, ok := stmts[0].(*ast.AssignStmt)
	if !ok || assign.Name != "x" {
		t.Fatalf("Stmts[0] = %#v, want assignment to x", stmts[0])
	}

	loop, ok := stmts[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("Stmts[1] = %T, want *ast.WhileStmt", stmts[1])
	}
	if loop.Pos.Line != 2 || loop.Pos.Column != 1 {
		t.Errorf("while position = %v, want 2:1", loop.Pos)
	}
	if got := loop.Cond.String(); got != "(x < 3)" {
		t.Errorf("Cond = %q, want (x < 3)", got)
	}
	if len(loop.Body.Stmts) != 1 {
		t.Errorf("len(Body.Stmts) = %d, want 1", len(loop.Body.Stmts))
	}
}

func TestParser_IfChains(t *testing.T) {
	t.Run("elsif and else", func(t *testing.T) {
		prog, err := newTestParser().Parse("if x < 1 then forward 1 elsif x < 2 then forward 2 else forward 3 fi")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}

		outer := prog.Blocks[0].Stmts[0].(*ast.IfStmt)
		inner, ok := outer.Else.(*ast.IfStmt)
		if !ok {
			t.Fatalf("Else = %T, want *ast.IfStmt", outer.Else)
		}
		if inner.Pos.Column != 25 {
			t.Errorf("elsif column = %d, want 25", inner.Pos.Column)
		}
		last, ok := inner.Else.(*ast.BlockStmt)
		if !ok {
			t.Fatalf("inner Else = %T, want *ast.BlockStmt", inner.Else)
		}
		if got := last.String(); got != "forward 3" {
			t.Errorf("else block = %q, want forward 3", got)
		}

		want := "if (x < 1) then forward 1 elsif (x < 2) then forward 2 else forward 3 fi"
		if got := outer.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("no else", func(t *testing.T) {
		prog, err := newTestParser().Parse("if x < 1 then home fi")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		stmt := prog.Blocks[0].Stmts[0].(*ast.IfStmt)
		if stmt.Else != nil {
			t.Errorf("Else = %v, want nil", stmt.Else)
		}
	})

	t.Run("elsif without else", func(t *testing.T) {
		prog, err := newTestParser().Parse("if x < 1 then home elsif x < 2 then penup fi")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		inner := prog.Blocks[0].Stmts[0].(*ast.IfStmt).Else.(*ast.IfStmt)
		if inner.Else != nil {
			t.Errorf("inner Else = %v, want nil", inner.Else)
		}
	})
}

func TestParser_Actions(t *testing.T) {
	prog, err := newTestParser().Parse("home penup pendown pushstate popstate forward 1 left 2 right 3")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var got []string
	for _, s := range prog.Blocks[0].Stmts {
		got = append(got, s.String())
	}
	want := []string{"home", "penup", "pendown", "pushstate", "popstate", "forward 1", "left 2", "right 3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("actions mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_EmptyAndCommentOnly(t *testing.T) {
	for _, input := range []string{"", "   \n\t", "# just a comment\n"} {
		prog, err := newTestParser().Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		if len(prog.Blocks) != 0 {
			t.Errorf("Parse(%q) blocks = %d, want 0", input, len(prog.Blocks))
		}
	}
}

func TestParser_CaseInsensitiveKeywords(t *testing.T) {
	prog, err := newTestParser().Parse("IF X < 1 THEN FORWARD 10 FI")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := "if (X < 1) then forward 10 fi"
	if got := prog.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		line     int
		found    string
		expected string
	}{
		{"keyword as assignment target", "forward := 5", 1, `":="`, "factor"},
		{"missing od", "x := 1\nwhile x < 3 do x := x + 1", 2, "end of input", `"od"`},
		{"condition without comparison", "if x then forward 1 fi", 1, `"then"`, "comparison operator"},
		{"and operand without comparison", "if x < 1 and 3 then home fi", 1, `"then"`, "comparison operator"},
		{"unterminated if", "if x < 1 then forward 1", 1, "end of input", `"elsif", "else" or "fi"`},
		{"equals instead of assign", "x = 1", 1, `"="`, `":="`},
		{"stray od", "od", 1, `"od"`, "statement"},
		{"illegal character", "forward 10 $", 1, `illegal character "$"`, "statement"},
		{"unclosed paren", "forward (1 + 2", 1, "end of input", `")"`},
		{"missing argument on line 4", "\n\nhome penup\nforward", 4, "end of input", "factor"},
		{"else without fi", "if 1 < 2 then home else penup", 1, "end of input", `"fi"`},
		{"missing do", "while x < 1 home od", 1, `"home"`, `"do"`},
		{"number as statement", "42", 1, "number 42", "statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := newTestParser().Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse() = %v, want error", prog)
			}
			if prog != nil {
				t.Error("Parse() should not return a partial program")
			}

			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("Parse() error = %T, want *SyntaxError", err)
			}
			want := &SyntaxError{Line: tt.line, Column: se.Column, Found: tt.found, Expected: tt.expected}
			if diff := cmp.Diff(want, se); diff != "" {
				t.Errorf("SyntaxError mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSyntaxError_Message(t *testing.T) {
	_, err := newTestParser().Parse("forward := 5")
	want := `line 1: syntax error: found ":=", expecting factor`
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %q", err, want)
	}
}

func TestParser_Deterministic(t *testing.T) {
	src := "n := 4\nwhile n > 0 do forward n * 10 left 90 n := n - 1 od\nif n = 0 then home fi"

	first, err := newTestParser().Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	p := newTestParser()
	for i := 0; i < 3; i++ {
		again, err := p.Parse(src)
		if err != nil {
			t.Fatalf("Parse() run %d error = %v", i, err)
		}
		if again.String() != first.String() {
			t.Errorf("run %d: String() = %q, want %q", i, again.String(), first.String())
		}
	}
}

type sliceScanner struct {
	tokens []Token
}

func (s *sliceScanner) NextToken() Token {
	if len(s.tokens) == 0 {
		return Token{Type: TokenEOF, Line: 1}
	}
	tok := s.tokens[0]
	s.tokens = s.tokens[1:]
	return tok
}

func TestParser_ParseScanner(t *testing.T) {
	s := &sliceScanner{tokens: []Token{
		{Type: TokenIdentifier, Value: "x", Line: 1},
		{Type: TokenAssign, Value: ":=", Line: 1},
		{Type: TokenReal, Value: "7", Number: 7, Line: 1},
		{Type: TokenForward, Value: "forward", Line: 1},
		{Type: TokenIdentifier, Value: "x", Line: 1},
	}}

	prog, err := newTestParser().ParseScanner(s)
	if err != nil {
		t.Fatalf("ParseScanner() error = %v", err)
	}
	if got, want := prog.String(), "x := 7 forward x"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParser_TrailingInput(t *testing.T) {
	if _, err := newTestParser().ParseExpr("1 + 2 3"); err == nil {
		t.Error("ParseExpr() should reject trailing tokens")
	}
	if _, err := newTestParser().ParseCondition("1 < 2 )"); err == nil {
		t.Error("ParseCondition() should reject trailing tokens")
	}
}
