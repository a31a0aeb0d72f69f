/*
File    : lox-mix/interpreter/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interpreter tree-walks the AST the resolver has already
// annotated, producing the program's side effects: variable mutation
// and stdout writes via `print`. Only InterpretREPLLine hands a value
// back, and only for a line that is a single expression statement.
//
// Control-flow note: this package threads errors as plain Go `error`
// values rather than panicking, exactly as the teacher's evaluator
// checks `IsError(result)` after every `Eval` call — see errors.go and
// values.ReturnSignal for the two distinct error shapes this contract
// carries (a genuine *RuntimeError versus a non-local-return signal).
package interpreter

import (
	"fmt"
	"io"
	"time"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/environment"
	"github.com/akashmaji946/lox-mix/values"
)

// nowSeconds returns the current wall-clock time in seconds, backing
// the `clock` native function.
func nowSeconds() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// ErrorReporter receives the single runtime error (if any) that aborts
// a top-level Interpret call. session.Reporter implements this.
type ErrorReporter interface {
	RuntimeError(err *RuntimeError)
}

// Interpreter holds all state needed to evaluate a resolved program:
// the current environment pointer, a fixed reference to the global
// root (global assignments bypass the current pointer when the
// resolver left an expression unannotated), the resolver's depth
// table, and the `print` output sink.
//
// Grounded on the teacher's Evaluator struct (`Scp *scope.Scope`,
// `Writer io.Writer`), extended with the resolver side-table go-mix
// has no counterpart for.
type Interpreter struct {
	globals     *environment.Environment
	environment *environment.Environment
	locals      map[int64]int

	reporter ErrorReporter
	out      io.Writer
}

// New creates an Interpreter. locals is the resolver's expression-
// identity -> depth table. out receives every `print` statement's
// output (grounded on the teacher's `Evaluator.Writer`/`SetWriter`
// idiom); reporter may be nil to silently discard the runtime-error
// report. The global environment is pre-populated with `clock`.
func New(locals map[int64]int, reporter ErrorReporter, out io.Writer) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", &values.NativeFunction{
		Name:   "clock",
		ArityN: 0,
		Function: func(arguments []interface{}) (interface{}, error) {
			return nowSeconds(), nil
		},
	})

	return &Interpreter{
		globals:     globals,
		environment: globals,
		locals:      locals,
		reporter:    reporter,
		out:         out,
	}
}

// Globals exposes the global environment, e.g. for a REPL that wants
// to print or reuse bindings across lines.
func (interp *Interpreter) Globals() *environment.Environment {
	return interp.globals
}

// MergeLocals folds a freshly resolved line's expression-identity ->
// depth entries into the interpreter's running table instead of
// replacing it outright. A REPL resolves each line with its own
// Resolver starting from empty scopes, so merging (rather than
// overwriting) is required: a function declared on an earlier line
// keeps working when called from a later one, since its body's
// expression identities were only ever recorded in that earlier
// line's resolution pass.
func (interp *Interpreter) MergeLocals(locals map[int64]int) {
	if interp.locals == nil {
		interp.locals = make(map[int64]int, len(locals))
	}
	for id, depth := range locals {
		interp.locals[id] = depth
	}
}

// Interpret runs a resolved program's statements in order. It stops at
// the first *RuntimeError (reporting it through the configured
// ErrorReporter) — matching spec.md's single-pass, no-recovery runtime
// error model, distinct from the parser/resolver's collect-and-continue
// discipline.
func (interp *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		if err := interp.execute(stmt); err != nil {
			if rerr, ok := err.(*RuntimeError); ok {
				if interp.reporter != nil {
					interp.reporter.RuntimeError(rerr)
				}
			}
			return
		}
	}
}

// InterpretREPLLine runs one REPL line's statements. When the line is
// exactly one bare expression statement, its value is evaluated once
// (not executed as a statement, so a `print`-free expression like `1 +
// 2` never runs through executeExpressionStmt's discard) and returned
// alongside hasValue=true, letting the REPL optionally echo it. Every
// other shape of line (declarations, multiple statements, blocks) runs
// through the ordinary Interpret path and reports hasValue=false.
//
// Grounded on the teacher's REPL, whose executeWithRecovery always
// displays evaluator.Eval's non-nil result — generalized here to only
// the bare-expression-statement case, since Lox statements other than
// expression statements have no value to echo.
func (interp *Interpreter) InterpretREPLLine(stmts []ast.Stmt) (value interface{}, hasValue bool) {
	if len(stmts) == 1 {
		if exprStmt, ok := stmts[0].(*ast.ExpressionStmt); ok {
			v, err := interp.evaluate(exprStmt.Expression)
			if err != nil {
				if rerr, ok := err.(*RuntimeError); ok && interp.reporter != nil {
					interp.reporter.RuntimeError(rerr)
				}
				return nil, false
			}
			return v, true
		}
	}
	interp.Interpret(stmts)
	return nil, false
}

// ExecuteBlock runs stmts against env, satisfying values.Interpreter
// so Function.Call can invoke a function body without values needing
// to import this package. The previous environment pointer is always
// restored on exit — normal completion, a runtime error, or a
// ReturnSignal alike — which is the hard invariant spec.md §5 requires
// (a runtime error inside a block must not leak the block's
// environment as the post-error current environment).
func (interp *Interpreter) ExecuteBlock(stmts []ast.Stmt, env *environment.Environment) error {
	previous := interp.environment
	interp.environment = env
	defer func() { interp.environment = previous }()

	for _, stmt := range stmts {
		if err := interp.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// execute dispatches a single statement to its handler. Defined here
// as the thin entry point; the concrete cases live in interp_stmt.go
// (and interp_class.go for *ast.ClassStmt) to keep this file focused
// on interpreter-wide plumbing.
func (interp *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		return interp.executeExpressionStmt(s)
	case *ast.PrintStmt:
		return interp.executePrintStmt(s)
	case *ast.VarStmt:
		return interp.executeVarStmt(s)
	case *ast.BlockStmt:
		return interp.executeBlockStmt(s)
	case *ast.IfStmt:
		return interp.executeIfStmt(s)
	case *ast.WhileStmt:
		return interp.executeWhileStmt(s)
	case *ast.FunctionStmt:
		return interp.executeFunctionStmt(s)
	case *ast.ReturnStmt:
		return interp.executeReturnStmt(s)
	case *ast.ClassStmt:
		return interp.executeClassStmt(s)
	default:
		return fmt.Errorf("interpreter: unhandled statement type %T", stmt)
	}
}

// evaluate dispatches a single expression to its handler, defined in
// interp_expr.go (Get/Set delegate to interp_class.go helpers).
func (interp *Interpreter) evaluate(expr ast.Expr) (interface{}, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return interp.evaluate(e.Expression)
	case *ast.Unary:
		return interp.evaluateUnary(e)
	case *ast.Binary:
		return interp.evaluateBinary(e)
	case *ast.Logical:
		return interp.evaluateLogical(e)
	case *ast.Variable:
		return interp.lookUpVariable(e.Name, e)
	case *ast.Assign:
		return interp.evaluateAssign(e)
	case *ast.Call:
		return interp.evaluateCall(e)
	case *ast.Get:
		return interp.evaluateGet(e)
	case *ast.Set:
		return interp.evaluateSet(e)
	case *ast.This:
		return interp.lookUpVariable(e.Keyword, e)
	case *ast.Super:
		return interp.evaluateSuper(e)
	default:
		return nil, fmt.Errorf("interpreter: unhandled expression type %T", expr)
	}
}
