/*
File    : pym/runtime/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package runtime

import "fmt"

// Method is {name, formal parameter names, body}. formal_params never
// contains "self"; self is bound by the evaluator at call time, and
// parameter names are unique within a method.
type Method struct {
	Name         string
	FormalParams []string
	Body         Statement
}

// Class is {name, methods, optional parent}. Its method table is
// immutable after construction.
type Class struct {
	Name    string
	Methods []Method
	Parent  *Class
}

func (*Class) Kind() Kind { return ClassKind }

// NewClass builds a Class with the given method table and optional
// parent.
func NewClass(name string, methods []Method, parent *Class) *Class {
	return &Class{Name: name, Methods: methods, Parent: parent}
}

// GetMethod returns the first method in c's own table with a matching
// name, else delegates to Parent, else reports false. There is no
// runtime MRO beyond this linear parent chain.
func (c *Class) GetMethod(name string) (*Method, bool) {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i], true
		}
	}
	if c.Parent != nil {
		return c.Parent.GetMethod(name)
	}
	return nil, false
}

// ClassInstance is {class, fields}. Fields are populated exclusively by
// executing FieldAssignment statements, typically from __init__. Class
// is a non-owning reference that must outlive every instance of it.
type ClassInstance struct {
	Class  *Class
	Fields Closure
}

func (*ClassInstance) Kind() Kind { return InstanceKind }

// NewClassInstance allocates a fresh instance of cls with empty fields.
func NewClassInstance(cls *Class) *ClassInstance {
	return &ClassInstance{Class: cls, Fields: make(Closure)}
}

// HasMethod reports whether a method named name, with exactly argc
// formal parameters, exists on the instance's class or one of its
// ancestors.
func (ci *ClassInstance) HasMethod(name string, argc int) bool {
	m, ok := ci.Class.GetMethod(name)
	return ok && len(m.FormalParams) == argc
}

// Call resolves name via GetMethod, binds formal parameters and self
// into a fresh frame, executes the method body, and returns the result.
// It is a runtime error if the method is absent or the argument count
// does not match.
func (ci *ClassInstance) Call(name string, args []ObjectHolder, ctx Context) (ObjectHolder, error) {
	m, ok := ci.Class.GetMethod(name)
	if !ok {
		return None(), fmt.Errorf("runtime: method not found: %s", name)
	}
	if len(m.FormalParams) != len(args) {
		return None(), fmt.Errorf("runtime: argument count mismatch calling %s: want %d, got %d", name, len(m.FormalParams), len(args))
	}

	frame := make(Closure, len(args)+1)
	for i, pname := range m.FormalParams {
		frame[pname] = args[i]
	}
	frame["self"] = Share(ci)

	out, err := m.Body.Execute(frame, ctx)
	if err != nil {
		return None(), err
	}
	return out.Value, nil
}
