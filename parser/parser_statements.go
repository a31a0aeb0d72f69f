/*
File    : lox-mix/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
)

// declaration parses one top-level or block-level declaration: a
// class, function, or variable declaration, falling through to a
// plain statement otherwise. A parse error here is caught and
// recovered via synchronize so the caller's loop can keep collecting
// further declarations.
func (p *Parser) declaration() (stmt ast.Stmt) {
	var err error
	switch {
	case p.match(lexer.CLASS_KEY):
		stmt, err = p.classDeclaration()
	case p.match(lexer.FUN_KEY):
		stmt, err = p.function("function")
	case p.match(lexer.VAR_KEY):
		stmt, err = p.varDeclaration()
	default:
		stmt, err = p.statement()
	}
	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

// varDeclaration parses `var IDENT ( "=" expression )? ";"`. A
// declaration with no initializer leaves Initializer nil; the
// interpreter defines such a variable as nil.
func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: initializer}, nil
}

// statement parses a non-declaration statement form.
func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(lexer.FOR_KEY):
		return p.forStatement()
	case p.match(lexer.IF_KEY):
		return p.ifStatement()
	case p.match(lexer.PRINT_KEY):
		return p.printStatement()
	case p.match(lexer.RETURN_KEY):
		return p.returnStatement()
	case p.match(lexer.WHILE_KEY):
		return p.whileStatement()
	case p.match(lexer.LEFT_BRACE):
		stmts, err := p.block()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: stmts}, nil
	}
	return p.expressionStatement()
}

// block parses `declaration* "}"` with the leading `{` already
// consumed by the caller.
func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if decl := p.declaration(); decl != nil {
			stmts = append(stmts, decl)
		}
	}
	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

// ifStatement parses `"if" "(" expression ")" statement ( "else" statement )?`.
func (p *Parser) ifStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(lexer.ELSE_KEY) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

// printStatement parses `"print" expression ";"`.
func (p *Parser) printStatement() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: value}, nil
}

// returnStatement parses `"return" expression? ";"`. A bare `return;`
// leaves Value nil, equivalent to returning nil.
func (p *Parser) returnStatement() (ast.Stmt, error) {
	keyword := p.previous()
	var value ast.Expr
	var err error
	if !p.check(lexer.SEMICOLON) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

// whileStatement parses `"while" "(" expression ")" statement`.
func (p *Parser) whileStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: condition, Body: body}, nil
}

// forStatement parses the C-style for loop and desugars it directly
// into the AST shape documented in ast/stmt.go: an optional
// initializer, a WhileStmt whose condition defaults to `true` when
// omitted, and an increment appended to the end of the loop body. The
// parser never emits a dedicated "for" node — by the time this
// function returns, nothing downstream can tell the source used `for`
// instead of the equivalent `while` block.
func (p *Parser) forStatement() (ast.Stmt, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer ast.Stmt
	var err error
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR_KEY):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ast.Expr
	if !p.check(lexer.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: increment}}}
	}
	if condition == nil {
		condition = ast.NewLiteral(true)
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body, nil
}

// expressionStatement parses `expression ";"`.
func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExpressionStmt{Expression: expr}, nil
}
