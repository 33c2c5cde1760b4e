/*
File    : pym/ast/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/rhea-kapoor/pym/runtime"
)

// Assignment evaluates rv and stores the result in closure[var],
// returning the stored holder.
type Assignment struct {
	Var string
	Rv  runtime.Statement
}

func (a *Assignment) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	v, unwind, err := execSub(a.Rv, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	closure[a.Var] = v
	return runtime.Normal(v), nil
}

// FieldAssignment evaluates Object to a ClassInstance, evaluates Rv, and
// stores the result in that instance's fields under Field. A non-instance
// target is a runtime error.
type FieldAssignment struct {
	Object *VariableValue
	Field  string
	Rv     runtime.Statement
}

func (f *FieldAssignment) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	objHolder, unwind, err := execSub(f.Object, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	inst, ok := runtime.TryAs[*runtime.ClassInstance](objHolder)
	if !ok {
		return runtime.Outcome{}, fmt.Errorf("ast: field assignment target is not an instance")
	}
	v, unwind, err := execSub(f.Rv, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	inst.Fields[f.Field] = v
	return runtime.Normal(v), nil
}

// Print evaluates each argument left to right, renders it to text
// (an empty holder renders "None"), joins them with single spaces, and
// writes the result followed by a newline to the context's output sink.
type Print struct {
	Args []runtime.Statement
}

// PrintVariable is a convenience constructor for `print name`.
func PrintVariable(name string) *Print {
	return &Print{Args: []runtime.Statement{NewVariableValue(name)}}
}

func (p *Print) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	parts := make([]string, 0, len(p.Args))
	for _, arg := range p.Args {
		v, unwind, err := execSub(arg, closure, ctx)
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
		parts = append(parts, text)
	}
	fmt.Fprintln(ctx.Output(), strings.Join(parts, " "))
	return runtime.Normal(runtime.None()), nil
}

// Compound runs a sequence of statements in order. It stops and
// propagates as soon as one of them unwinds.
type Compound struct {
	Stmts []runtime.Statement
}

func NewCompound(stmts ...runtime.Statement) *Compound { return &Compound{Stmts: stmts} }

func (c *Compound) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	for _, stmt := range c.Stmts {
		out, err := stmt.Execute(closure, ctx)
		if err != nil {
			return runtime.Outcome{}, err
		}
		if out.Unwinding {
			return out, nil
		}
	}
	return runtime.Normal(runtime.None()), nil
}

// IfElse evaluates Cond; if truthy it runs Then, else it runs Else (when
// present). It returns whatever the taken branch returned, or empty if
// there was no Else to take.
type IfElse struct {
	Cond, Then, Else runtime.Statement
}

func (i *IfElse) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	cond, unwind, err := execSub(i.Cond, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	if runtime.IsTrue(cond) {
		return i.Then.Execute(closure, ctx)
	}
	if i.Else != nil {
		return i.Else.Execute(closure, ctx)
	}
	return runtime.Normal(runtime.None()), nil
}

// Return evaluates Expr and unwinds the enclosing MethodBody, carrying
// the resulting value.
type Return struct {
	Expr runtime.Statement
}

func (r *Return) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	v, unwind, err := execSub(r.Expr, closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if unwind != nil {
		return *unwind, nil
	}
	return runtime.Unwind(v), nil
}

// MethodBody executes Body; a Return unwind occurring anywhere inside it
// is caught here and yields the carried value, and normal completion
// yields empty. This is the only place a Return unwind is allowed to
// stop propagating.
type MethodBody struct {
	Body runtime.Statement
}

func (m *MethodBody) Execute(closure runtime.Closure, ctx runtime.Context) (runtime.Outcome, error) {
	out, err := m.Body.Execute(closure, ctx)
	if err != nil {
		return runtime.Outcome{}, err
	}
	if out.Unwinding {
		return runtime.Normal(out.Value), nil
	}
	return runtime.Normal(runtime.None()), nil
}
