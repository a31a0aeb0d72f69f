/*
File    : lox-mix/values/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package values

import "fmt"

// Class is a Lox class value: a name, an optional superclass for
// single inheritance, and its own method table (methods inherited
// from a superclass are not copied in — FindMethod walks the chain).
//
// Grounded on the teacher's struct-value model in evalStructDeclaration
// (declare name as nil, build the value, then bind it — giving a class
// body the ability to reference its own name textually), extended with
// single-inheritance superclass resolution absent from go-mix's
// struct-only model.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass constructs a Class with the given method table.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name on this class, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init`, or 0 when the class declares none —
// calling a class with no initializer takes no arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance of this class. When the class (or
// one of its superclasses) declares `init`, it is bound to the fresh
// instance and run with the call arguments; the instance itself is
// always the result, regardless of what (if anything) `init` returns.
func (c *Class) Call(interp Interpreter, arguments []interface{}) (interface{}, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// String renders a class the way `print` does: just its name.
func (c *Class) String() string {
	return c.Name
}

// Instance is a runtime object constructed by calling a Class: an
// instance-specific field map plus a reference to the class that
// produced it for method lookup.
type Instance struct {
	Class  *Class
	Fields map[string]interface{}
}

// NewInstance constructs an empty Instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]interface{})}
}

// Get resolves a property: instance fields take precedence over class
// methods (so a field can shadow a method of the same name); methods
// are returned freshly bound to this instance. A name found in
// neither is a runtime error.
func (i *Instance) Get(name string) (interface{}, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if method, ok := i.Class.FindMethod(name); ok {
		return method.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set unconditionally writes to the instance's field map — Lox places
// no restriction on adding new fields after construction.
func (i *Instance) Set(name string, value interface{}) {
	i.Fields[name] = value
}

// String renders an instance the way `print` does: "<NAME> instance".
func (i *Instance) String() string {
	return fmt.Sprintf("%s instance", i.Class.Name)
}
