/*
File    : lox-mix/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
)

// function parses `IDENT "(" parameters? ")" block`. kind names the
// declaration being parsed ("function" or "method") purely for error
// messages, matching the grammar's single `function` production shared
// by both funDecl and class bodies.
func (p *Parser) function(kind string) (*ast.FunctionStmt, error) {
	name, err := p.consume(lexer.IDENTIFIER, fmt.Sprintf("Expect %s name.", kind))
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_PAREN, fmt.Sprintf("Expect '(' after %s name.", kind)); err != nil {
		return nil, err
	}
	var params []lexer.Token
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				p.addError(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(lexer.IDENTIFIER, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after parameters."); err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_BRACE, fmt.Sprintf("Expect '{' before %s body.", kind)); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}, nil
}
