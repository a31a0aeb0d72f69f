/*
File    : lox-mix/interpreter/interp_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/lexer"
	"github.com/akashmaji946/lox-mix/values"
)

// lookUpVariable resolves a Variable/This reference: if the resolver
// recorded a depth against expr's identity, jump straight there via
// GetAt; otherwise the name is global and is looked up through the
// fixed globals reference (global assignments/reads bypass whatever
// the current environment pointer happens to be).
func (interp *Interpreter) lookUpVariable(name lexer.Token, expr ast.Expr) (interface{}, error) {
	if distance, ok := interp.locals[expr.ID()]; ok {
		return interp.environment.GetAt(distance, name.Lexeme), nil
	}
	v, err := interp.globals.Get(name.Lexeme)
	if err != nil {
		return nil, NewRuntimeError(name, err.Error())
	}
	return v, nil
}

// evaluateAssign evaluates the right-hand side, then writes it either
// at the resolver-recorded depth or, if unannotated, into globals.
func (interp *Interpreter) evaluateAssign(e *ast.Assign) (interface{}, error) {
	value, err := interp.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := interp.locals[e.ID()]; ok {
		interp.environment.AssignAt(distance, e.Name.Lexeme, value)
		return value, nil
	}
	if err := interp.globals.Assign(e.Name.Lexeme, value); err != nil {
		return nil, NewRuntimeError(e.Name, err.Error())
	}
	return value, nil
}

// evaluateUnary handles `!` (logical negation via truthiness) and `-`
// (numeric negation, requiring a number operand).
func (interp *Interpreter) evaluateUnary(e *ast.Unary) (interface{}, error) {
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case lexer.BANG:
		return !values.IsTruthy(right), nil
	case lexer.MINUS:
		n, err := interp.checkNumberOperand(e.Operator, right)
		if err != nil {
			return nil, err
		}
		return -n, nil
	}
	return nil, NewRuntimeError(e.Operator, "Unknown unary operator.")
}

// evaluateLogical implements short-circuiting `and`/`or`: the
// returned value is the raw left or right operand, never coerced to a
// boolean.
func (interp *Interpreter) evaluateLogical(e *ast.Logical) (interface{}, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == lexer.OR_KEY {
		if values.IsTruthy(left) {
			return left, nil
		}
	} else {
		if !values.IsTruthy(left) {
			return left, nil
		}
	}
	return interp.evaluate(e.Right)
}

// evaluateBinary handles every infix operator except the short-
// circuiting logical ones.
func (interp *Interpreter) evaluateBinary(e *ast.Binary) (interface{}, error) {
	left, err := interp.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		return interp.evaluateAddition(e.Operator, left, right)
	case lexer.MINUS:
		l, r, err := interp.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l - r, nil
	case lexer.STAR:
		l, r, err := interp.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l * r, nil
	case lexer.SLASH:
		l, r, err := interp.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		// IEEE-754 division: x/0 yields +-Inf or NaN, never a runtime
		// error, per spec.md §4.5.
		return l / r, nil
	case lexer.GREATER:
		l, r, err := interp.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l > r, nil
	case lexer.GREATER_EQUAL:
		l, r, err := interp.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l >= r, nil
	case lexer.LESS:
		l, r, err := interp.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l < r, nil
	case lexer.LESS_EQUAL:
		l, r, err := interp.checkNumberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return l <= r, nil
	case lexer.BANG_EQUAL:
		return !values.Equal(left, right), nil
	case lexer.EQUAL_EQUAL:
		return values.Equal(left, right), nil
	}
	return nil, NewRuntimeError(e.Operator, "Unknown binary operator.")
}

// evaluateAddition implements `+`'s overload: numeric add when both
// operands are numbers, concatenation when both are strings, otherwise
// a runtime error naming both required shapes.
func (interp *Interpreter) evaluateAddition(operator lexer.Token, left, right interface{}) (interface{}, error) {
	if l, ok := left.(float64); ok {
		if r, ok := right.(float64); ok {
			return l + r, nil
		}
	}
	if l, ok := left.(string); ok {
		if r, ok := right.(string); ok {
			return l + r, nil
		}
	}
	return nil, NewRuntimeError(operator, "Operands must be two numbers or two strings.")
}

// checkNumberOperand requires v to be a number, for unary `-`.
func (interp *Interpreter) checkNumberOperand(operator lexer.Token, v interface{}) (float64, error) {
	if n, ok := v.(float64); ok {
		return n, nil
	}
	return 0, NewRuntimeError(operator, "Operand must be a number.")
}

// checkNumberOperands requires both l and r to be numbers, for every
// binary arithmetic/comparison operator except `+`.
func (interp *Interpreter) checkNumberOperands(operator lexer.Token, l, r interface{}) (float64, float64, error) {
	ln, lok := l.(float64)
	rn, rok := r.(float64)
	if lok && rok {
		return ln, rn, nil
	}
	return 0, 0, NewRuntimeError(operator, "Operands must be numbers.")
}

