/*
File    : pym/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast implements the executable AST node types that the
// (external, out-of-scope) parser assembles. Every node type here
// implements runtime.Statement; the interface itself lives in runtime
// so that runtime.Method can hold a body without an import cycle.
//
// Return unwinding (runtime.Outcome.Unwinding) is plumbed through every
// node that executes a child statement: execSub below is the one place
// that checks for it, so each node's Execute reads uniformly as
// "run child, bail out early on unwind, otherwise use the value".
package ast

import "github.com/rhea-kapoor/pym/runtime"

// execSub runs stmt and splits its result three ways: a plain value, an
// in-progress Return unwind to propagate verbatim, or an error. Every
// node below calls this for each child it evaluates instead of calling
// Execute directly, so an unwind started deep in an expression tree
// reaches the nearest MethodBody without any node having to special-case
// it beyond this one check.
func execSub(stmt runtime.Statement, closure runtime.Closure, ctx runtime.Context) (runtime.ObjectHolder, *runtime.Outcome, error) {
	out, err := stmt.Execute(closure, ctx)
	if err != nil {
		return runtime.ObjectHolder{}, nil, err
	}
	if out.Unwinding {
		return runtime.ObjectHolder{}, &out, nil
	}
	return out.Value, nil, nil
}
