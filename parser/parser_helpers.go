/*
File    : lox-mix/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/lox-mix/lexer"

// isAtEnd reports whether the cursor sits on the terminating EOF
// token.
func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF_TYPE
}

// peek returns the token at the cursor without consuming it.
func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

// advance consumes and returns the token at the cursor, unless already
// at EOF (EOF is never consumed past).
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

// check reports whether the current token has the given type, without
// consuming it. Always false at EOF.
func (p *Parser) check(tokenType lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokenType
}

// match consumes and returns true if the current token matches any of
// the given types; otherwise leaves the cursor untouched.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it has the expected
// type, otherwise records a parse error at the current token and
// returns it unconsumed along with a non-nil error for the caller to
// propagate.
func (p *Parser) consume(tokenType lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	return p.peek(), p.fail(p.peek(), message)
}

// synchronize discards tokens after a parse error until it passes a
// statement terminator or reaches a token that can start a new
// declaration, so the next Parse iteration resumes at a plausible
// boundary instead of cascading further errors from the same mistake.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case lexer.CLASS_KEY, lexer.FUN_KEY, lexer.VAR_KEY, lexer.FOR_KEY,
			lexer.IF_KEY, lexer.WHILE_KEY, lexer.PRINT_KEY, lexer.RETURN_KEY:
			return
		}
		p.advance()
	}
}
