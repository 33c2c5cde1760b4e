/*
File    : pym/ast/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"

	"github.com/rhea-kapoor/pym/runtime"
)

// ValueStatement evaluates to a borrowing holder over an embedded,
// already-constructed Value — the node type behind numeric, string, and
// boolean literals.
type ValueStatement struct {
	value runtime.Value
}

// NewValueStatement wraps an arbitrary runtime.Value as a constant node.
func NewValueStatement(v runtime.Value) *ValueStatement { return &ValueStatement{value: v} }

// NumberConst is the literal-constant node for an integer.
func NumberConst(n int) *ValueStatement { return NewValueStatement(runtime.Number{Value: n}) }

// StringConst is the literal-constant node for a string.
func StringConst(s string) *ValueStatement { return NewValueStatement(runtime.String{Value: s}) }

// BoolConst is the literal-constant node for a boolean.
func BoolConst(b bool) *ValueStatement { return NewValueStatement(runtime.Bool{Value: b}) }

func (v *ValueStatement) Execute(runtime.Closure, runtime.Context) (runtime.Outcome, error) {
	return runtime.Normal(runtime.Share(v.value)), nil
}

// VariableValue resolves a non-empty dotted name path: the first segment
// is looked up in the closure, and every subsequent segment descends
// into the instance fields of the value found so far.
type VariableValue struct {
	Names []string
}

// NewVariableValue builds a VariableValue over one or more dotted names
// (e.g. NewVariableValue("self", "x") for `self.x`).
func NewVariableValue(names ...string) *VariableValue {
	return &VariableValue{Names: names}
}

func (v *VariableValue) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	if len(v.Names) == 0 {
		return runtime.Outcome{}, fmt.Errorf("ast: variable reference has no name")
	}
	holder, ok := closure[v.Names[0]]
	if !ok {
		return runtime.Outcome{}, fmt.Errorf("ast: undefined variable %q", v.Names[0])
	}
	for _, name := range v.Names[1:] {
		inst, ok := runtime.TryAs[*runtime.ClassInstance](holder)
		if !ok {
			return runtime.Outcome{}, fmt.Errorf("ast: %q has no field %q: not an instance", v.Names[0], name)
		}
		holder, ok = inst.Fields[name]
		if !ok {
			return runtime.Outcome{}, fmt.Errorf("ast: undefined field %q", name)
		}
	}
	return runtime.Normal(holder), nil
}

// Stringify renders arg's text representation (or "None" if arg
// evaluates empty) and returns it as an owning String holder. Unlike
// Print, it writes nothing to the context's output sink.
type Stringify struct {
	Arg runtime.Statement
}

func (s *Stringify) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	v, unwind, err := execSub(s.Arg, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	text, err := runtime.Render(v, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	return runtime.Normal(runtime.Own(runtime.String{Value: text})), nil
}

// Add implements Number+Number, String+String, and ClassInstance with
// __add__(1).
type Add struct{ Lhs, Rhs runtime.Statement }

func (a *Add) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	l, unwind, err := execSub(a.Lhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	r, unwind, err := execSub(a.Rhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}

	switch lv := l.Value().(type) {
	case runtime.Number:
		if rv, ok := r.Value().(runtime.Number); ok {
			return runtime.Normal(runtime.Own(runtime.Number{Value: lv.Value + rv.Value})), nil
		}
	case runtime.String:
		if rv, ok := r.Value().(runtime.String); ok {
			return runtime.Normal(runtime.Own(runtime.String{Value: lv.Value + rv.Value})), nil
		}
	case *runtime.ClassInstance:
		if lv.HasMethod("__add__", 1) {
			result, err := lv.Call("__add__", []runtime.ObjectHolder{r}, ctx)
			if err != nil {
				return runtime.Outcome{}, err
			}
			return runtime.Normal(result), nil
		}
	}
	return runtime.Outcome{}, fmt.Errorf("ast: unsupported operand types for +")
}

// numericBinaryOp executes lhs and rhs, requires both to be Number, and
// applies op. It backs Sub, Mult, and Div.
func numericBinaryOp(lhs, rhs runtime.Statement, closure runtime.Closure, ctx runtime.Context, symbol string, op func(a, b int) (int, error)) (runtime.Outcome, error) {
	l, unwind, err := execSub(lhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	r, unwind, err := execSub(rhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}

	lv, lok := l.Value().(runtime.Number)
	rv, rok := r.Value().(runtime.Number)
	if !lok || !rok {
		return runtime.Outcome{}, fmt.Errorf("ast: unsupported operand types for %s", symbol)
	}
	result, err := op(lv.Value, rv.Value)
	if err != nil {
		return runtime.Outcome{}, err
	}
	return runtime.Normal(runtime.Own(runtime.Number{Value: result})), nil
}

// Sub is Number-only subtraction.
type Sub struct{ Lhs, Rhs runtime.Statement }

func (s *Sub) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	return numericBinaryOp(s.Lhs, s.Rhs, closure, ctx, "-", func(a, b int) (int, error) { return a - b, nil })
}

// Mult is Number-only multiplication.
type Mult struct{ Lhs, Rhs runtime.Statement }

func (m *Mult) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	return numericBinaryOp(m.Lhs, m.Rhs, closure, ctx, "*", func(a, b int) (int, error) { return a * b, nil })
}

// Div is Number-only division; dividing by zero is a runtime error.
type Div struct{ Lhs, Rhs runtime.Statement }

func (d *Div) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	return numericBinaryOp(d.Lhs, d.Rhs, closure, ctx, "/", func(a, b int) (int, error) {
		if b == 0 {
			return 0, fmt.Errorf("ast: division by zero")
		}
		return a / b, nil
	})
}

// Or and And are eagerly evaluated: both operands are always evaluated
// before either is used, which differs from short-circuit semantics.
type Or struct{ Lhs, Rhs runtime.Statement }

func (o *Or) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	l, unwind, err := execSub(o.Lhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	r, unwind, err := execSub(o.Rhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	if runtime.IsTrue(l) {
		return runtime.Normal(runtime.Own(runtime.Bool{Value: true})), nil
	}
	return runtime.Normal(runtime.Own(runtime.Bool{Value: runtime.IsTrue(r)})), nil
}

// And is Or's eager sibling.
type And struct{ Lhs, Rhs runtime.Statement }

func (a *And) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	l, unwind, err := execSub(a.Lhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	r, unwind, err := execSub(a.Rhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	if runtime.IsTrue(l) {
		return runtime.Normal(runtime.Own(runtime.Bool{Value: runtime.IsTrue(r)})), nil
	}
	return runtime.Normal(runtime.Own(runtime.Bool{Value: false})), nil
}

// Not negates arg's truthiness.
type Not struct{ Arg runtime.Statement }

func (n *Not) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	v, unwind, err := execSub(n.Arg, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	return runtime.Normal(runtime.Own(runtime.Bool{Value: !runtime.IsTrue(v)})), nil
}

// Comparator is one of runtime.Equal / Less / NotEqual / Greater /
// LessOrEqual / GreaterOrEqual.
type Comparator func(lhs, rhs runtime.ObjectHolder, ctx runtime.Context) (bool, error)

// Comparison evaluates both sides and applies cmp.
type Comparison struct {
	Cmp      Comparator
	Lhs, Rhs runtime.Statement
}

func (c *Comparison) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	l, unwind, err := execSub(c.Lhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	r, unwind, err := execSub(c.Rhs, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	result, err := c.Cmp(l, r, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	return runtime.Normal(runtime.Own(runtime.Bool{Value: result})), nil
}
