/*
File    : lox-mix/interpreter/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import "github.com/akashmaji946/lox-mix/lexer"

// RuntimeError is a Lox runtime failure: a type error, an undefined
// variable/property, an arity mismatch, or an attempt to call a
// non-callable value. It is returned as a plain Go error up through
// the statement-execution call chain — never a panic — so a genuine
// runtime error and a values.ReturnSignal (which also satisfies
// error, see values/values.go) remain distinguishable types flowing
// through the same contract, mirroring the teacher's
// IsError()-after-every-Eval discipline generalized to a typed error
// rather than a value satisfying the language's own value interface
// (Lox runtime errors are not first-class Lox values).
type RuntimeError struct {
	Token   lexer.Token
	Message string
}

// NewRuntimeError constructs a RuntimeError at token.
func NewRuntimeError(token lexer.Token, message string) *RuntimeError {
	return &RuntimeError{Token: token, Message: message}
}

// Error satisfies the error interface with just the message, matching
// spec.md's runtime error format's first line; the line number is
// appended by whatever formats the error for display (session.Reporter).
func (e *RuntimeError) Error() string {
	return e.Message
}
