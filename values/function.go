/*
File    : lox-mix/values/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import (
	"fmt"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/environment"
)

// Function is a user-declared function or method value. Closure is
// the environment active when the declaration was evaluated — shared
// by pointer, not copied, so later mutations to a captured variable
// are visible to every call (see environment/environment.go's package
// doc for why this departs from the teacher's Scope.Copy() strategy).
//
// Grounded on the teacher's function/function.go (Declaration + Scp
// fields), generalized with IsInitializer so the interpreter can apply
// spec.md's "init always returns bound this" override without a
// second function type.
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

// NewFunction constructs a Function closing over env.
func NewFunction(declaration *ast.FunctionStmt, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Declaration: declaration, Closure: closure, IsInitializer: isInitializer}
}

// Arity returns the declared parameter count.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call runs the function body in a fresh environment chained onto its
// closure, with parameters bound to arguments in order. A normal
// completion yields nil, except an initializer always yields the
// bound `this` regardless of what its body returned.
func (f *Function) Call(interp Interpreter, arguments []interface{}) (interface{}, error) {
	env := environment.New(f.Closure)
	for i, param := range f.Declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := interp.ExecuteBlock(f.Declaration.Body, env)
	if ret, ok := err.(*ReturnSignal); ok {
		if f.IsInitializer {
			return f.Closure.GetAt(0, "this"), nil
		}
		return ret.Value, nil
	}
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, "this"), nil
	}
	return nil, nil
}

// Bind produces a new Function whose closure is a single-variable
// environment (holding `this` -> instance) chained onto this
// function's original closure, so the method can later be called with
// no further knowledge of which instance it came from.
//
// Grounded on the teacher's callFunctionOnObject, which builds
// `methodScope := scope.NewScope(e.Scp); methodScope.Bind("this",
// obj)` once per call; here binding happens once at property-access
// time instead, since Lox methods are first-class values that can be
// extracted from an instance and called later, independent of the Get
// expression that produced them.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.New(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}

// String renders the function the way `print` does: "<fn NAME>".
func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// NativeFunction wraps a Go function so it can be called like any
// other Lox callable. The only native function spec.md defines is
// `clock`; grounded on the teacher's std.Builtins init()-registration
// idiom (std/time.go's `now`/`now_ms`), simplified to a single value
// stored directly in the global environment rather than a separate
// builtin-dispatch table, since Lox's non-goals rule out a broader
// standard library.
type NativeFunction struct {
	Name     string
	ArityN   int
	Function func(arguments []interface{}) (interface{}, error)
}

// Arity returns the native function's fixed arity.
func (n *NativeFunction) Arity() int { return n.ArityN }

// Call invokes the wrapped Go function directly; native functions
// never need access to the interpreter itself.
func (n *NativeFunction) Call(_ Interpreter, arguments []interface{}) (interface{}, error) {
	return n.Function(arguments)
}

// String renders every native function identically, matching
// spec.md's string-form rule: "<native fn>".
func (n *NativeFunction) String() string {
	return "<native fn>"
}
