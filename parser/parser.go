/*
File    : lox-mix/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for Lox.
//
// The parser converts the lexer's flat token stream into the ast
// package's tree. The expression grammar is small enough to enumerate
// one function per precedence level (assignment -> or -> and ->
// equality -> comparison -> term -> factor -> unary -> call ->
// primary) rather than reaching for a Pratt/precedence-table
// dispatcher, so every production reads as a direct translation of its
// grammar rule.
//
// Like the teacher's parser, this one never panics on a malformed
// program: errors are collected in Errors and reported through an
// ErrorReporter as they are found, and synchronize lets parsing
// continue at the next statement boundary so a single pass surfaces
// more than one mistake.
package parser

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
)

// ErrorReporter receives parse-error notifications. session.Reporter
// implements this; tests may supply a stub that just records calls.
type ErrorReporter interface {
	TokenError(token lexer.Token, message string)
}

// parseError marks a parse failure already reported to the
// ErrorReporter; it unwinds the current declaration/statement so
// synchronize can resume at the next safe point.
type parseError struct{}

func (parseError) Error() string { return "parse error" }

// Parser holds the token stream and cursor for a single parse.
type Parser struct {
	tokens   []lexer.Token
	current  int
	reporter ErrorReporter

	// Errors mirrors every message sent to the reporter, in order,
	// for callers that want to inspect them without a custom
	// ErrorReporter (e.g. tests).
	Errors []string
}

// NewParser creates a Parser over a complete token stream (as
// produced by lexer.Lexer.ScanTokens, always EOF-terminated). reporter
// may be nil to silently discard diagnostics.
func NewParser(tokens []lexer.Token, reporter ErrorReporter) *Parser {
	return &Parser{tokens: tokens, reporter: reporter}
}

// Parse parses the entire token stream into a program: a sequence of
// top-level declarations. Parsing never stops at the first error —
// each failed declaration is skipped via synchronize and the next one
// is attempted, so HasErrors() may be true while Parse still returns a
// (partial but non-nil) statement list.
func (p *Parser) Parse() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		if decl := p.declaration(); decl != nil {
			stmts = append(stmts, decl)
		}
	}
	return stmts
}

// HasErrors reports whether any parse error was recorded.
func (p *Parser) HasErrors() bool {
	return len(p.Errors) > 0
}

// GetErrors returns every parse-error message recorded so far.
func (p *Parser) GetErrors() []string {
	return p.Errors
}

// addError records msg against token and forwards it to the
// configured reporter, matching the teacher's non-panicking
// error-collection discipline.
func (p *Parser) addError(token lexer.Token, msg string) {
	p.Errors = append(p.Errors, msg)
	if p.reporter != nil {
		p.reporter.TokenError(token, msg)
	}
}

// fail records msg at token and returns a parseError for the caller to
// propagate up to the nearest declaration boundary.
func (p *Parser) fail(token lexer.Token, msg string) parseError {
	p.addError(token, msg)
	return parseError{}
}
