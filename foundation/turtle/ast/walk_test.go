// File: walk_test.go
// Title: AST Traversal Tests
// Description: Walk, Dump, Variables and Validate over parsed and
//              hand-built trees.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Visitor tests for command trees
// - 2026-10-18 v0.2.0: Turtle tree traversal

package ast_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	mdwlog "github.com/msto63/turtle/foundation/core/log"
	"github.com/msto63/turtle/foundation/turtle/ast"
	"github.com/msto63/turtle/foundation/turtle/parser"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err := parser.New(parser.Options{Logger: mdwlog.NewDiscard()}).Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", src, err)
	}
	return prog
}

func TestDump(t *testing.T) {
	prog := mustParse(t, "x := 1\nif x < 2 then forward x fi")

	want := strings.Join([]string{
		"Program (1 blocks)",
		"  Block @1:1",
		"    Assign x @1:1",
		"      Literal 1",
		"    If @2:1",
		"      Binary <",
		"        Identifier x",
		"        Literal 2",
		"      Block @2:15",
		"        Action forward @2:15",
		"          Identifier x",
	}, "\n") + "\n"

	if diff := cmp.Diff(want, ast.Dump(prog)); diff != "" {
		t.Errorf("Dump() mismatch (-want +got):\n%s", diff)
	}
}

func TestDump_ElseAndUnary(t *testing.T) {
	prog := mustParse(t, "if not a = 1 then home else forward -a fi")

	got := ast.Dump(prog)
	for _, want := range []string{"If/Else @1:1", "Unary not", "Unary -", "Action home @1:19"} {
		if !strings.Contains(got, want) {
			t.Errorf("Dump() missing %q:\n%s", want, got)
		}
	}
}

func TestInspect_Prune(t *testing.T) {
	prog := mustParse(t, "while a < 1 do forward b od left c")

	var idents []string
	ast.Inspect(prog, func(n ast.Node) bool {
		if _, ok := n.(*ast.WhileStmt); ok {
			return false
		}
		if id, ok := n.(*ast.IdentifierExpr); ok {
			idents = append(idents, id.Name)
		}
		return true
	})

	if diff := cmp.Diff([]string{"c"}, idents); diff != "" {
		t.Errorf("identifiers mismatch (-want +got):\n%s", diff)
	}
}

func TestVariables(t *testing.T) {
	prog := mustParse(t, `
		x := y + 1
		while x < n do
		  x := x + 1
		  forward size
		od`)

	usage := ast.Variables(prog)
	want := ast.Usage{
		Read:    []string{"n", "size", "x", "y"},
		Written: []string{"x"},
	}
	if diff := cmp.Diff(want, usage); diff != "" {
		t.Errorf("Variables() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"n", "size", "y"}, usage.Free()); diff != "" {
		t.Errorf("Free() mismatch (-want +got):\n%s", diff)
	}
}

func TestVariables_NoneFree(t *testing.T) {
	usage := ast.Variables(mustParse(t, "a := 1 forward a"))
	if free := usage.Free(); len(free) != 0 {
		t.Errorf("Free() = %v, want none", free)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		node    ast.Node
		wantErr string
	}{
		{
			name: "parsed program",
			node: mustParse(t, "if a < 1 then forward 1 elsif a < 2 then left 2 else home fi"),
		},
		{
			name:    "empty block",
			node:    &ast.BlockStmt{Pos: ast.Position{Line: 3, Column: 1}},
			wantErr: "3:1: empty block",
		},
		{
			name:    "forward without argument",
			node:    &ast.ActionStmt{Kind: ast.ActionForward, Pos: ast.Position{Line: 1, Column: 5}},
			wantErr: "1:5: forward without argument",
		},
		{
			name:    "home with argument",
			node:    &ast.ActionStmt{Kind: ast.ActionHome, Arg: &ast.LiteralExpr{Value: 1}},
			wantErr: "home takes no argument",
		},
		{
			name:    "binary with missing operand",
			node:    &ast.BinaryExpr{Op: ast.OpAdd, Left: &ast.LiteralExpr{Value: 1}},
			wantErr: "+ with missing operand",
		},
		{
			name:    "unary with binary operator",
			node:    &ast.UnaryExpr{Op: ast.OpMul, Operand: &ast.LiteralExpr{Value: 1}},
			wantErr: "invalid unary operator *",
		},
		{
			name:    "incomplete while",
			node:    &ast.WhileStmt{Cond: &ast.LiteralExpr{Value: 1}},
			wantErr: "incomplete while statement",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ast.Validate(tt.node)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	block := &ast.BlockStmt{Stmts: []ast.Stmt{
		&ast.ActionStmt{Kind: ast.ActionLeft},
		&ast.AssignStmt{Name: "x"},
	}}

	err := ast.Validate(block)
	if err == nil {
		t.Fatal("Validate() error = nil")
	}
	for _, want := range []string{"left without argument", "assignment to x without value"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error missing %q: %v", want, err)
		}
	}
}

func TestProgram_String(t *testing.T) {
	prog := mustParse(t, "x := 1\nwhile x < 3 do x := x + 1 od")
	want := "x := 1 while (x < 3) do x := (x + 1) od"
	if got := prog.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
