/*
File    : pym/ast/classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"

	"github.com/rhea-kapoor/pym/runtime"
)

// ClassDefinition installs an already-built *runtime.Class under its own
// name in the enclosing closure. Unlike NewInstance it binds the Class
// value itself, not a field-bearing instance of it.
type ClassDefinition struct {
	Class *runtime.Class
}

func (c *ClassDefinition) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	holder := runtime.Own(c.Class)
	closure[c.Class.Name] = holder
	return runtime.Normal(holder), nil
}

// NewInstance constructs a fresh ClassInstance bound to Class, wraps it
// in an owning holder, evaluates Args left to right, and invokes
// __init__ with them if the class defines one of matching arity.
type NewInstance struct {
	Class *runtime.Class
	Args  []runtime.Statement
}

func (n *NewInstance) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	inst := runtime.NewClassInstance(n.Class)
	holder := runtime.Own(inst)

	args := make([]runtime.ObjectHolder, 0, len(n.Args))
	for _, a := range n.Args {
		v, unwind, err := execSub(a, closure, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		if unwind != nil {
			return *unwind, nil
		}
		args = append(args, v)
	}

	if inst.HasMethod("__init__", len(args)) {
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			return runtime.Outcome{}, err
		}
	}
	return runtime.Normal(holder), nil
}

// MethodCall evaluates Object, requires it be a ClassInstance with a
// matching-arity method named Method, evaluates Args left to right, and
// delegates to ClassInstance.Call.
type MethodCall struct {
	Object runtime.Statement
	Method string
	Args   []runtime.Statement
}

func (m *MethodCall) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	objHolder, unwind, err := execSub(m.Object, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	inst, ok := runtime.TryAs[*runtime.ClassInstance](objHolder)
	if !ok {
		return runtime.Outcome{}, fmt.Errorf("ast: method call target is not an instance")
	}

	args := make([]runtime.ObjectHolder, 0, len(m.Args))
	for _, a := range m.Args {
		v, unwind, err := execSub(a, closure, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		if unwind != nil {
			return *unwind, nil
		}
		args = append(args, v)
	}

	if !inst.HasMethod(m.Method, len(args)) {
		return runtime.Outcome{}, fmt.Errorf("ast: method not found: %s", m.Method)
	}
	result, err := inst.Call(m.Method, args, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	return runtime.Normal(result), nil
}
