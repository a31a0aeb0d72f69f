/*
File    : lox-mix/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseSource scans and parses src in one step, for tests that only
// care about the resulting tree or error list.
func parseSource(t *testing.T, src string) (*Parser, []ast.Stmt) {
	t.Helper()
	tokens := lexer.NewLexer(src, nil).ScanTokens()
	p := NewParser(tokens, nil)
	stmts := p.Parse()
	return p, stmts
}

// exprString renders an expression as a fully-parenthesized Lisp-like
// form, so precedence and associativity tests can assert on tree shape
// with a plain string comparison instead of walking typed fields.
func exprString(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *ast.Variable:
		return n.Name.Lexeme
	case *ast.Assign:
		return fmt.Sprintf("(= %s %s)", n.Name.Lexeme, exprString(n.Value))
	case *ast.Unary:
		return fmt.Sprintf("(%s %s)", n.Operator.Lexeme, exprString(n.Right))
	case *ast.Binary:
		return fmt.Sprintf("(%s %s %s)", n.Operator.Lexeme, exprString(n.Left), exprString(n.Right))
	case *ast.Logical:
		return fmt.Sprintf("(%s %s %s)", n.Operator.Lexeme, exprString(n.Left), exprString(n.Right))
	case *ast.Grouping:
		return fmt.Sprintf("(group %s)", exprString(n.Expression))
	case *ast.Call:
		args := make([]string, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = exprString(a)
		}
		return fmt.Sprintf("(call %s %s)", exprString(n.Callee), strings.Join(args, " "))
	case *ast.Get:
		return fmt.Sprintf("(get %s %s)", exprString(n.Object), n.Name.Lexeme)
	case *ast.Set:
		return fmt.Sprintf("(set %s %s %s)", exprString(n.Object), n.Name.Lexeme, exprString(n.Value))
	case *ast.This:
		return "this"
	case *ast.Super:
		return fmt.Sprintf("(super %s)", n.Method.Lexeme)
	default:
		return fmt.Sprintf("<unknown %T>", e)
	}
}

func singleExprStmt(t *testing.T, stmts []ast.Stmt) ast.Expr {
	t.Helper()
	require.Len(t, stmts, 1)
	es, ok := stmts[0].(*ast.ExpressionStmt)
	require.True(t, ok, "expected a single ExpressionStmt, got %T", stmts[0])
	return es.Expression
}

func TestParser_PrecedenceMultiplicationBindsTighterThanAddition(t *testing.T) {
	p, stmts := parseSource(t, "1 + 2 * 3;")
	require.False(t, p.HasErrors(), p.GetErrors())
	assert.Equal(t, "(+ 1 (* 2 3))", exprString(singleExprStmt(t, stmts)))
}

func TestParser_LeftAssociativitySubtraction(t *testing.T) {
	p, stmts := parseSource(t, "1 - 2 - 3;")
	require.False(t, p.HasErrors(), p.GetErrors())
	assert.Equal(t, "(- (- 1 2) 3)", exprString(singleExprStmt(t, stmts)))
}

func TestParser_GroupingOverridesPrecedence(t *testing.T) {
	p, stmts := parseSource(t, "(1 + 2) * 3;")
	require.False(t, p.HasErrors(), p.GetErrors())
	assert.Equal(t, "(* (group (+ 1 2)) 3)", exprString(singleExprStmt(t, stmts)))
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	p, stmts := parseSource(t, "a = b = 1;")
	require.False(t, p.HasErrors(), p.GetErrors())
	assert.Equal(t, "(= a (= b 1))", exprString(singleExprStmt(t, stmts)))
}

func TestParser_InvalidAssignmentTargetIsReportedNotFatal(t *testing.T) {
	p, stmts := parseSource(t, "1 = 2;")
	require.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0], "Invalid assignment target.")
	// parsing recovers: the left-hand literal is kept as the
	// expression statement's value rather than aborting the parse.
	require.Len(t, stmts, 1)
}

func TestParser_SetRewriteOnPropertyAssignment(t *testing.T) {
	p, stmts := parseSource(t, "obj.field = 1;")
	require.False(t, p.HasErrors(), p.GetErrors())
	assert.Equal(t, "(set obj field 1)", exprString(singleExprStmt(t, stmts)))
}

func TestParser_ForLoopDesugarsToWhileBlock(t *testing.T) {
	p, stmts := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, p.HasErrors(), p.GetErrors())
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.BlockStmt)
	require.True(t, ok, "expected desugared for-loop to be a Block")
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.VarStmt)
	assert.True(t, isVar, "first statement should be the initializer")

	whileStmt, ok := outer.Statements[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement should be the desugared while loop")
	assert.Equal(t, "(< i 3)", exprString(whileStmt.Condition))

	body, ok := whileStmt.Body.(*ast.BlockStmt)
	require.True(t, ok, "while body should be a block containing [original body, increment]")
	require.Len(t, body.Statements, 2)
	_, isPrint := body.Statements[0].(*ast.PrintStmt)
	assert.True(t, isPrint)
	_, isIncrement := body.Statements[1].(*ast.ExpressionStmt)
	assert.True(t, isIncrement)
}

func TestParser_ForLoopWithOmittedConditionDefaultsToTrue(t *testing.T) {
	p, stmts := parseSource(t, "for (;;) print 1;")
	require.False(t, p.HasErrors(), p.GetErrors())

	whileStmt, ok := stmts[0].(*ast.WhileStmt)
	require.True(t, ok)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParser_ClassWithSuperclassAndMethods(t *testing.T) {
	src := `class Bagel < Pastry {
		init(flavor) { this.flavor = flavor; }
		describe() { return this.flavor; }
	}`
	p, stmts := parseSource(t, src)
	require.False(t, p.HasErrors(), p.GetErrors())
	require.Len(t, stmts, 1)

	class, ok := stmts[0].(*ast.ClassStmt)
	require.True(t, ok)
	assert.Equal(t, "Bagel", class.Name.Lexeme)
	require.NotNil(t, class.Superclass)
	assert.Equal(t, "Pastry", class.Superclass.Name.Lexeme)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
	assert.Equal(t, "describe", class.Methods[1].Name.Lexeme)
}

func TestParser_ArgumentLimitIsReportedButNotFatal(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "1"
	}
	src := fmt.Sprintf("f(%s);", strings.Join(args, ", "))
	p, stmts := parseSource(t, src)
	require.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0], "Can't have more than 255 arguments.")
	// the call itself still parses and is retained.
	require.Len(t, stmts, 1)
	call, ok := singleExprStmt(t, stmts).(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Arguments, 256)
}

func TestParser_SynchronizeAllowsMultipleErrorsPerParse(t *testing.T) {
	// Two independently malformed var declarations, each missing its
	// identifier. synchronize() should recover at each ';' so both
	// get reported from a single Parse call instead of only the first.
	src := "var ; var ;"
	p, _ := parseSource(t, src)
	require.Len(t, p.GetErrors(), 2)
	for _, msg := range p.GetErrors() {
		assert.Contains(t, msg, "Expect variable name.")
	}
}
