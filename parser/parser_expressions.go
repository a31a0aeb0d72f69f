/*
File    : lox-mix/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
)

// expression parses the lowest-precedence expression form: assignment.
func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses `target = value`, right-associatively, rewriting
// the already-parsed left-hand side into an Assign or Set node. Any
// other left-hand-side shape at the `=` is reported without discarding
// the parsed right-hand side, matching the grammar's explicit recovery
// rule.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value), nil
		case *ast.Get:
			return ast.NewSet(target.Object, target.Name, value), nil
		default:
			p.addError(equals, "Invalid assignment target.")
			return expr, nil
		}
	}

	return expr, nil
}

// or parses a chain of `and`-expressions joined by `or`, left-associative.
func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.OR_KEY) {
		operator := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr, nil
}

// and parses a chain of equality-expressions joined by `and`, left-associative.
func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.AND_KEY) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = ast.NewLogical(expr, operator, right)
	}
	return expr, nil
}

// equality parses `==`/`!=` chains, left-associative.
func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

// comparison parses `> >= < <=` chains, left-associative.
func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

// term parses `+ -` chains, left-associative.
func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

// factor parses `* /` chains, left-associative.
func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinary(expr, operator, right)
	}
	return expr, nil
}

// unary parses a prefix `!`/`-` operator, right-associative via tail
// recursion, falling through to call at the bottom of precedence.
func (p *Parser) unary() (ast.Expr, error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(operator, right), nil
	}
	return p.call()
}

// call parses a primary expression followed by any number of call
// `(...)` or property-access `.name` suffixes, left to right.
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(lexer.LEFT_PAREN):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(lexer.DOT):
			name, err := p.consume(lexer.IDENTIFIER, "Expect property name after '.'.")
			if err != nil {
				return nil, err
			}
			expr = ast.NewGet(expr, name)
		default:
			return expr, nil
		}
	}
}

// finishCall parses the argument list and closing paren of a call
// expression whose callee and opening paren have already been
// consumed.
func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(args) >= 255 {
				p.addError(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}
	paren, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return ast.NewCall(callee, paren, args), nil
}

// primary parses the base cases of the expression grammar: literals,
// identifiers, parenthesized expressions, `this`, and `super.method`.
func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(lexer.FALSE_KEY):
		return ast.NewLiteral(false), nil
	case p.match(lexer.TRUE_KEY):
		return ast.NewLiteral(true), nil
	case p.match(lexer.NIL_KEY):
		return ast.NewLiteral(nil), nil
	case p.match(lexer.NUMBER, lexer.STRING):
		return ast.NewLiteral(p.previous().Literal), nil
	case p.match(lexer.SUPER_KEY):
		keyword := p.previous()
		if _, err := p.consume(lexer.DOT, "Expect '.' after 'super'."); err != nil {
			return nil, err
		}
		method, err := p.consume(lexer.IDENTIFIER, "Expect superclass method name.")
		if err != nil {
			return nil, err
		}
		return ast.NewSuper(keyword, method), nil
	case p.match(lexer.THIS_KEY):
		return ast.NewThis(p.previous()), nil
	case p.match(lexer.IDENTIFIER):
		return ast.NewVariable(p.previous()), nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return ast.NewGrouping(expr), nil
	}
	return nil, p.fail(p.peek(), "Expect expression.")
}
