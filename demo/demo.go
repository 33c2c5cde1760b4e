/*
File    : pym/demo/demo.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package demo holds a small registry of hand-built ast.Statement trees
// standing in for the programs a parser would normally produce from
// source text. With no parser in scope, these are the supported way to
// exercise the evaluator end to end: cmd/pym and repl/repl.go both run
// named demos through interp.Program rather than parsing arbitrary
// source.
package demo

import (
	"sort"

	"github.com/rhea-kapoor/pym/ast"
	"github.com/rhea-kapoor/pym/runtime"
)

// Program is a named, ready-to-run Statement plus a one-line description
// shown by cmd/pym --help and the REPL's .demos command.
type Program struct {
	Name        string
	Description string
	Build       func() runtime.Statement
}

var registry = map[string]Program{}

func register(p Program) {
	registry[p.Name] = p
}

// Names returns the registered demo names, sorted for stable listing.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named demo program, if one is registered.
func Lookup(name string) (Program, bool) {
	p, ok := registry[name]
	return p, ok
}

func init() {
	register(Program{
		Name:        "point",
		Description: "Point class with __init__/__str__, scenario 5 from spec.md §8",
		Build:       buildPointDemo,
	})
	register(Program{
		Name:        "inherit",
		Description: "Child inherits Base.identify and self binds to Child, scenario 6",
		Build:       buildInheritDemo,
	})
	register(Program{
		Name:        "fizz",
		Description: "if/else and comparison over a handful of numbers",
		Build:       buildFizzDemo,
	})
}

// buildPointDemo wires up the spec's worked example: a Point class with
// __init__(self, x, y) assigning fields and __str__(self) returning
// str(x) + ' ' + str(y), then prints a constructed instance.
func buildPointDemo() runtime.Statement {
	initBody := &ast.MethodBody{Body: ast.NewCompound(
		&ast.FieldAssignment{Object: ast.NewVariableValue("self"), Field: "x", Rv: ast.NewVariableValue("x")},
		&ast.FieldAssignment{Object: ast.NewVariableValue("self"), Field: "y", Rv: ast.NewVariableValue("y")},
	)}
	strBody := &ast.MethodBody{Body: ast.NewCompound(
		&ast.Return{Expr: &ast.Add{
			Lhs: &ast.Add{
				Lhs: &ast.Stringify{Arg: ast.NewVariableValue("self", "x")},
				Rhs: ast.StringConst(" "),
			},
			Rhs: &ast.Stringify{Arg: ast.NewVariableValue("self", "y")},
		}},
	)}
	point := runtime.NewClass("Point", []runtime.Method{
		{Name: "__init__", FormalParams: []string{"x", "y"}, Body: initBody},
		{Name: "__str__", FormalParams: nil, Body: strBody},
	}, nil)

	return ast.NewCompound(
		&ast.ClassDefinition{Class: point},
		&ast.Assignment{Var: "p", Rv: &ast.NewInstance{Class: point, Args: []runtime.Statement{ast.NumberConst(1), ast.NumberConst(2)}}},
		&ast.Print{Args: []runtime.Statement{&ast.Stringify{Arg: ast.NewVariableValue("p")}}},
	)
}

// buildInheritDemo wires up Base/Child from scenario 6: Child has no
// methods of its own, identify() is found on Base, and self is bound to
// the Child instance that made the call.
func buildInheritDemo() runtime.Statement {
	base := runtime.NewClass("Base", []runtime.Method{
		{Name: "identify", Body: &ast.MethodBody{Body: ast.NewCompound(&ast.Return{Expr: ast.NewVariableValue("self")})}},
	}, nil)
	child := runtime.NewClass("Child", nil, base)

	return ast.NewCompound(
		&ast.ClassDefinition{Class: child},
		&ast.Assignment{Var: "c", Rv: &ast.NewInstance{Class: child}},
		&ast.Assignment{Var: "r", Rv: &ast.MethodCall{Object: ast.NewVariableValue("c"), Method: "identify"}},
		&ast.Print{Args: []runtime.Statement{
			ast.StringConst("identify() returned self, bound to Child:"),
			&ast.Stringify{Arg: ast.NewVariableValue("r")},
		}},
	)
}

// buildFizzDemo walks the literal numbers 1 to 5, printing "big n" for
// anything greater than 3 and "small n" otherwise, exercising IfElse,
// Comparison and Print without needing loops (the language has none).
func buildFizzDemo() runtime.Statement {
	line := func(n int) runtime.Statement {
		return &ast.IfElse{
			Cond: &ast.Comparison{Cmp: runtime.Greater, Lhs: ast.NumberConst(n), Rhs: ast.NumberConst(3)},
			Then: &ast.Print{Args: []runtime.Statement{ast.StringConst("big"), ast.NumberConst(n)}},
			Else: &ast.Print{Args: []runtime.Statement{ast.StringConst("small"), ast.NumberConst(n)}},
		}
	}
	stmts := make([]runtime.Statement, 0, 5)
	for n := 1; n <= 5; n++ {
		stmts = append(stmts, line(n))
	}
	return ast.NewCompound(stmts...)
}
