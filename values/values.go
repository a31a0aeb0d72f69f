/*
File    : lox-mix/values/values.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package values defines the runtime value model the interpreter
// operates on: nil, booleans, numbers (float64), strings, and the
// callable/instance types declared in function.go and class.go.
//
// Lox values need no wrapper type the way the teacher's
// objects.GoMixObject does (go-mix boxes every value behind an
// interface with Type()/ToString()/ToObject() methods so the
// evaluator can do runtime type dispatch uniformly, including for
// arrays/maps/sets/structs that Lox simply doesn't have). Lox's value
// set is small enough that Go's own dynamic typing (plain
// interface{}, type-switched where needed) carries the same
// information with far less ceremony; the one place a custom type is
// still worth its keep is Callable, since both user functions and the
// native clock need a common Call/Arity contract.
package values

import (
	"strconv"

	"github.com/akashmaji946/lox-mix/ast"
	"github.com/akashmaji946/lox-mix/environment"
)

// Interpreter is the slice of interpreter behavior a Callable needs in
// order to run a function body: execute a statement list against a
// given environment and report whether it completed via a return.
// Declaring this here (rather than importing the interpreter package
// directly) keeps values free of a dependency on the package that
// imports values for Function/Class/Instance.
type Interpreter interface {
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) error
}

// Callable is implemented by every value that can appear on the left
// of a Call expression: user-defined functions, bound methods, native
// functions, and classes (calling a class constructs an instance).
type Callable interface {
	Arity() int
	Call(interp Interpreter, arguments []interface{}) (interface{}, error)
}

// ReturnSignal unwinds the Go call stack from a `return` statement
// back to the nearest Callable.Call, carrying the returned value (nil
// for a bare `return;`). It satisfies the error interface purely so it
// can travel through the same (value, error) execution contract as a
// genuine runtime error; callers that need to tell the two apart do an
// errors.As / type assertion for *ReturnSignal specifically.
//
// Grounded on the teacher's eval_controls.go, which threads a
// *std.ReturnValue wrapper through each statement executor and unwraps
// it at the call boundary instead of using panic/recover — the exact
// "explicit result-variant" option spec.md's design notes call out.
type ReturnSignal struct {
	Value interface{}
}

func (r *ReturnSignal) Error() string { return "return" }

// IsTruthy implements Lox's truthiness rule: nil and false are falsy;
// every other value (including 0, 0.0, and "") is truthy.
func IsTruthy(v interface{}) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements Lox's `==` rule: nil equals only nil; numbers and
// strings compare by value; booleans and every other type compare by
// Go equality (which for pointers like *Instance is identity, matching
// spec.md's "instances by reference identity").
func Equal(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	an, aIsNum := a.(float64)
	bn, bIsNum := b.(float64)
	if aIsNum && bIsNum {
		return an == bn
	}
	as, aIsStr := a.(string)
	bs, bIsStr := b.(string)
	if aIsStr && bIsStr {
		return as == bs
	}
	ab, aIsBool := a.(bool)
	bb, bIsBool := b.(bool)
	if aIsBool && bIsBool {
		return ab == bb
	}
	return a == b
}

// Stringify renders a value the way `print` does. Grounded on the
// teacher's ToString()/ToObject() dual-method convention in
// objects/objects.go, collapsed to the single representation spec.md
// needs since Lox's `print` has no separate debug form.
func Stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		return formatNumber(val)
	case string:
		return val
	case *Function:
		return val.String()
	case *NativeFunction:
		return val.String()
	case *Class:
		return val.Name
	case *Instance:
		return val.String()
	default:
		// Lox's value set is closed to the cases above; reaching this
		// branch means a new value kind was added to the interpreter
		// without a matching stringify rule.
		return ""
	}
}

// formatNumber renders a float64 as the shortest decimal that
// round-trips. strconv's 'f' verb with precision -1 writes plain
// decimal notation (`1000000`, not `1e+06`) and already omits a
// trailing ".0" for integral values (`3`, not `3.0`), matching
// spec.md's string-form rule for numbers without any extra trimming.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
