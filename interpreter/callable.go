/*
File    : lox-mix/interpreter/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/values"
)

// evaluateCall evaluates the callee and every argument in source
// order, verifies the callee is callable and the argument count
// matches its declared arity, then dispatches to it. This is the one
// place spec.md §4.5's five-step call procedure is assembled; user
// functions, bound methods, native functions, and classes all
// implement values.Callable so none of them needs special-casing
// here.
func (interp *Interpreter) evaluateCall(e *ast.Call) (interface{}, error) {
	callee, err := interp.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]interface{}, len(e.Arguments))
	for i, argExpr := range e.Arguments {
		arg, err := interp.evaluate(argExpr)
		if err != nil {
			return nil, err
		}
		arguments[i] = arg
	}

	callable, ok := callee.(values.Callable)
	if !ok {
		return nil, NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, NewRuntimeError(e.Paren, formatArityError(callable.Arity(), len(arguments)))
	}
	return callable.Call(interp, arguments)
}

// formatArityError renders spec.md's exact arity-mismatch message.
func formatArityError(expected, got int) string {
	return fmt.Sprintf("Expected %d arguments but got %d.", expected, got)
}
