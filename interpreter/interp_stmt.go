/*
File    : lox-mix/interpreter/interp_stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/environment"
	"github.com/akashmaji946/lox-mix/values"
)

// executeExpressionStmt evaluates an expression for its side effects
// and discards the result.
func (interp *Interpreter) executeExpressionStmt(s *ast.ExpressionStmt) error {
	_, err := interp.evaluate(s.Expression)
	return err
}

// executePrintStmt evaluates an expression and writes its stringified
// form followed by a newline to the configured output sink.
func (interp *Interpreter) executePrintStmt(s *ast.PrintStmt) error {
	v, err := interp.evaluate(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(interp.out, values.Stringify(v))
	return nil
}

// executeVarStmt evaluates the optional initializer (nil when absent)
// and defines the name in the current environment.
func (interp *Interpreter) executeVarStmt(s *ast.VarStmt) error {
	var value interface{}
	if s.Initializer != nil {
		v, err := interp.evaluate(s.Initializer)
		if err != nil {
			return err
		}
		value = v
	}
	interp.environment.Define(s.Name.Lexeme, value)
	return nil
}

// executeBlockStmt runs the block's statements in a fresh environment
// chained onto the current one.
func (interp *Interpreter) executeBlockStmt(s *ast.BlockStmt) error {
	return interp.ExecuteBlock(s.Statements, environment.New(interp.environment))
}

// executeIfStmt evaluates the condition once and runs whichever branch
// truthiness selects; a missing else branch with a falsy condition is
// simply a no-op.
func (interp *Interpreter) executeIfStmt(s *ast.IfStmt) error {
	cond, err := interp.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if values.IsTruthy(cond) {
		return interp.execute(s.ThenBranch)
	}
	if s.ElseBranch != nil {
		return interp.execute(s.ElseBranch)
	}
	return nil
}

// executeWhileStmt re-evaluates the condition before every iteration,
// stopping as soon as it is falsy.
func (interp *Interpreter) executeWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := interp.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !values.IsTruthy(cond) {
			return nil
		}
		if err := interp.execute(s.Body); err != nil {
			return err
		}
	}
}

// executeFunctionStmt builds a closure over the current environment
// and then defines the function's name to it. Recursive calls work
// even though the name is defined after the closure is built, because
// the environment the closure captures is the very one the Define
// below writes into — a later lookup of the function's own name inside
// its body sees the binding.
func (interp *Interpreter) executeFunctionStmt(s *ast.FunctionStmt) error {
	fn := values.NewFunction(s, interp.environment, false)
	interp.environment.Define(s.Name.Lexeme, fn)
	return nil
}

// executeReturnStmt evaluates the optional value (nil for a bare
// `return;`) and unwinds to the enclosing Function.Call via
// values.ReturnSignal.
func (interp *Interpreter) executeReturnStmt(s *ast.ReturnStmt) error {
	var value interface{}
	if s.Value != nil {
		v, err := interp.evaluate(s.Value)
		if err != nil {
			return err
		}
		value = v
	}
	return &values.ReturnSignal{Value: value}
}
