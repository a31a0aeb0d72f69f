/*
File    : lox-mix/parser/parser_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
)

// classDeclaration parses `"class" IDENT ( "<" IDENT )? "{" function* "}"`
// with the leading `class` keyword already consumed by declaration.
func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expect class name.")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(lexer.LESS) {
		superName, err := p.consume(lexer.IDENTIFIER, "Expect superclass name.")
		if err != nil {
			return nil, err
		}
		superclass = ast.NewVariable(superName)
	}

	if _, err := p.consume(lexer.LEFT_BRACE, "Expect '{' before class body."); err != nil {
		return nil, err
	}

	var methods []*ast.FunctionStmt
	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		method, err := p.function("method")
		if err != nil {
			return nil, err
		}
		methods = append(methods, method)
	}

	if _, err := p.consume(lexer.RIGHT_BRACE, "Expect '}' after class body."); err != nil {
		return nil, err
	}

	return &ast.ClassStmt{Name: name, Superclass: superclass, Methods: methods}, nil
}
