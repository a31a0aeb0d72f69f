/*
File    : lox-mix/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"testing"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resolveSource scans, parses, and resolves src in one step. Tests
// that only care about resolution behavior don't need to construct
// an AST by hand.
func resolveSource(t *testing.T, src string) (*Resolver, []ast.Stmt, map[int64]int) {
	t.Helper()
	tokens := lexer.NewLexer(src, nil).ScanTokens()
	p := parser.NewParser(tokens, nil)
	stmts := p.Parse()
	require.False(t, p.HasErrors(), p.GetErrors())

	r := NewResolver(nil)
	locals := r.Resolve(stmts)
	return r, stmts, locals
}

// findVariable locates the first *ast.Variable named want anywhere
// under stmts, depth-first. It covers the handful of shapes these
// tests need (block/var/print/expression statements).
func findVariable(stmts []ast.Stmt, want string) *ast.Variable {
	var found *ast.Variable
	var visitExpr func(ast.Expr)
	var visitStmt func(ast.Stmt)

	visitExpr = func(e ast.Expr) {
		if found != nil || e == nil {
			return
		}
		switch n := e.(type) {
		case *ast.Variable:
			if n.Name.Lexeme == want {
				found = n
			}
		case *ast.Assign:
			visitExpr(n.Value)
		case *ast.Binary:
			visitExpr(n.Left)
			visitExpr(n.Right)
		case *ast.Grouping:
			visitExpr(n.Expression)
		case *ast.Call:
			visitExpr(n.Callee)
			for _, a := range n.Arguments {
				visitExpr(a)
			}
		}
	}
	visitStmt = func(s ast.Stmt) {
		if found != nil || s == nil {
			return
		}
		switch n := s.(type) {
		case *ast.BlockStmt:
			for _, inner := range n.Statements {
				visitStmt(inner)
			}
		case *ast.VarStmt:
			visitExpr(n.Initializer)
		case *ast.PrintStmt:
			visitExpr(n.Expression)
		case *ast.ExpressionStmt:
			visitExpr(n.Expression)
		case *ast.FunctionStmt:
			for _, inner := range n.Body {
				visitStmt(inner)
			}
		}
	}
	for _, s := range stmts {
		visitStmt(s)
	}
	return found
}

func TestResolver_LocalVariableGetsDepthZeroInSameBlock(t *testing.T) {
	_, stmts, locals := resolveSource(t, `{ var a = 1; print a; }`)
	ref := findVariable(stmts, "a")
	require.NotNil(t, ref)
	assert.Equal(t, 0, locals[ref.ID()])
}

func TestResolver_NestedBlockReferenceGetsOuterDepth(t *testing.T) {
	_, stmts, locals := resolveSource(t, `
		var a = "global";
		{
			var a = "local";
			{
				print a;
			}
		}
	`)
	ref := findVariable(stmts, "a")
	require.NotNil(t, ref)
	// the innermost "print a" is one block deeper than the "var a =
	// local" declaration it refers to.
	assert.Equal(t, 1, locals[ref.ID()])
}

func TestResolver_GlobalReferenceIsUnannotated(t *testing.T) {
	_, stmts, locals := resolveSource(t, `
		var a = "global";
		print a;
	`)
	ref := findVariable(stmts, "a")
	require.NotNil(t, ref)
	_, annotated := locals[ref.ID()]
	assert.False(t, annotated, "global references should not be present in the depth table")
}

func TestResolver_ReadInOwnInitializerIsAnError(t *testing.T) {
	r, _, _ := resolveSource(t, `{ var a = a; }`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't read local variable in its own initializer.")
}

func TestResolver_RedeclareInSameScopeIsAnError(t *testing.T) {
	r, _, _ := resolveSource(t, `{ var a = 1; var a = 2; }`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Already a variable with this name in this scope.")
}

func TestResolver_ShadowingAcrossScopesIsFine(t *testing.T) {
	r, _, _ := resolveSource(t, `var a = 1; { var a = 2; }`)
	assert.False(t, r.HasErrors(), r.Errors)
}

func TestResolver_ReturnOutsideFunctionIsAnError(t *testing.T) {
	r, _, _ := resolveSource(t, `return 1;`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't return from top-level code.")
}

func TestResolver_ReturnValueInInitializerIsAnError(t *testing.T) {
	r, _, _ := resolveSource(t, `
		class Foo {
			init() { return 1; }
		}
	`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't return a value from an initializer.")
}

func TestResolver_BareReturnInInitializerIsFine(t *testing.T) {
	r, _, _ := resolveSource(t, `
		class Foo {
			init() { return; }
		}
	`)
	assert.False(t, r.HasErrors(), r.Errors)
}

func TestResolver_ThisOutsideClassIsAnError(t *testing.T) {
	r, _, _ := resolveSource(t, `print this;`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't use 'this' outside of a class.")
}

func TestResolver_SuperOutsideClassIsAnError(t *testing.T) {
	r, _, _ := resolveSource(t, `print super.method();`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't use 'super' outside of a class.")
}

func TestResolver_SuperWithoutSuperclassIsAnError(t *testing.T) {
	r, _, _ := resolveSource(t, `
		class Foo {
			bar() { return super.bar(); }
		}
	`)
	require.True(t, r.HasErrors())
	assert.Contains(t, r.Errors[0], "Can't use 'super' in a class with no superclass.")
}

func TestResolver_ValidSuperUsageHasNoErrors(t *testing.T) {
	r, _, _ := resolveSource(t, `
		class A { method() { return 1; } }
		class B < A { method() { return super.method(); } }
	`)
	assert.False(t, r.HasErrors(), r.Errors)
}
