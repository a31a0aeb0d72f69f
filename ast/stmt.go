/*
File    : lox-mix/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/lox-mix/lexer"

// Stmt is implemented by every statement node. Statements have no
// identity counter of their own: the resolver and interpreter never
// need to key a table on a statement, only on the expressions nested
// inside it, so there is nothing to gain by stamping one.
type Stmt interface {
	stmtNode()
}

// ExpressionStmt evaluates an expression for its side effects and
// discards the result, e.g. a bare call statement `greet();`.
type ExpressionStmt struct {
	Expression Expr
}

func (*ExpressionStmt) stmtNode() {}

// PrintStmt evaluates an expression and writes its textual
// representation to the session's output stream.
type PrintStmt struct {
	Expression Expr
}

func (*PrintStmt) stmtNode() {}

// VarStmt declares a new binding in the enclosing scope. Initializer
// is nil when the declaration has no `= expr` clause, in which case
// the variable starts out nil.
type VarStmt struct {
	Name        lexer.Token
	Initializer Expr
}

func (*VarStmt) stmtNode() {}

// BlockStmt is a `{ ... }` statement list that introduces a new lexical
// scope.
type BlockStmt struct {
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}

// IfStmt is a conditional. ElseBranch is nil when the source has no
// `else` clause.
type IfStmt struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

func (*IfStmt) stmtNode() {}

// WhileStmt is a condition-checked loop. The parser desugars `for` into
// this node plus a surrounding BlockStmt, so the interpreter only ever
// needs to know how to run a While.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (*WhileStmt) stmtNode() {}

// FunctionStmt declares a named function or, when nested inside a
// ClassStmt's Methods list, a method — the same node type serves both;
// only membership in that Methods list tells the resolver and
// interpreter apart, so no second node type is needed.
type FunctionStmt struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (*FunctionStmt) stmtNode() {}

// ReturnStmt exits the nearest enclosing function, optionally carrying
// a value. Value is nil for a bare `return;`, which is equivalent to
// returning nil.
type ReturnStmt struct {
	Keyword lexer.Token
	Value   Expr
}

func (*ReturnStmt) stmtNode() {}

// ClassStmt declares a class. Superclass is nil for a class with no
// `< Parent` clause; when present it is always a *Variable referencing
// the superclass's name, resolved like any other variable reference.
type ClassStmt struct {
	Name       lexer.Token
	Superclass *Variable
	Methods    []*FunctionStmt
}

func (*ClassStmt) stmtNode() {}
