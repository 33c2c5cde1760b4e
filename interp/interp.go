/*
File    : pym/interp/interp.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp is the small façade that owns a global closure and a
// Context, and runs hand-built ast.Statement trees against them: the
// single object an embedder, test, or CLI driver holds to run a
// program, without needing to know how closures or contexts are wired
// underneath.
//
// There is no parser in scope (spec.md §1), so driving a program means
// constructing its AST directly in Go; Program.Run is the supported
// entry point for that, used by cmd/pym, repl/repl.go, and the package
// tests that exercise end-to-end scenarios.
package interp

import (
	"fmt"

	"github.com/rhea-kapoor/pym/runtime"
)

// Program owns the global Closure and output Context for one run.
type Program struct {
	Global  runtime.Closure
	Context runtime.Context
}

// New builds a Program with an empty global closure, writing to ctx.
func New(ctx runtime.Context) *Program {
	return &Program{Global: make(runtime.Closure), Context: ctx}
}

// Run executes stmt against the program's global closure and context.
// A Return unwind that reaches Run without passing through a MethodBody
// is reported as a runtime error.
func (p *Program) Run(stmt runtime.Statement) (runtime.ObjectHolder, error) {
	out, err := stmt.Execute(p.Global, p.Context)
	if err != nil {
		return runtime.None(), err
	}
	if out.Unwinding {
		return runtime.None(), fmt.Errorf("interp: return outside of a method body")
	}
	return out.Value, nil
}
