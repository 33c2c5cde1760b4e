/*
File    : pym/ast/classes_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhea-kapoor/pym/runtime"
)

// buildPointClass wires up the class from the spec's worked example:
// __init__(self, x, y) sets fields, __str__(self) returns
// str(x) + ' ' + str(y).
func buildPointClass() *runtime.Class {
	initBody := &MethodBody{Body: NewCompound(
		&FieldAssignment{Object: NewVariableValue("self"), Field: "x", Rv: NewVariableValue("x")},
		&FieldAssignment{Object: NewVariableValue("self"), Field: "y", Rv: NewVariableValue("y")},
	)}
	strBody := &MethodBody{Body: NewCompound(
		&Return{Expr: &Add{
			Lhs: &Add{
				Lhs: &Stringify{Arg: NewVariableValue("self", "x")},
				Rhs: StringConst(" "),
			},
			Rhs: &Stringify{Arg: NewVariableValue("self", "y")},
		}},
	)}
	return runtime.NewClass("Point", []runtime.Method{
		{Name: "__init__", FormalParams: []string{"x", "y"}, Body: initBody},
		{Name: "__str__", FormalParams: nil, Body: strBody},
	}, nil)
}

func TestScenario5_PointInitAndStr(t *testing.T) {
	point := buildPointClass()
	closure := runtime.Closure{}
	ctx := runtime.NewBufferedContext()

	program := NewCompound(
		&ClassDefinition{Class: point},
		&Assignment{Var: "p", Rv: &NewInstance{Class: point, Args: []runtime.Statement{NumberConst(1), NumberConst(2)}}},
		&Print{Args: []runtime.Statement{&Stringify{Arg: NewVariableValue("p")}}},
	)

	_, err := program.Execute(closure, ctx)
	require.NoError(t, err)
	assert.Equal(t, "1 2\n", ctx.String())
}

func TestScenario6_ChildInheritsBaseMethodBoundToOwnSelf(t *testing.T) {
	base := runtime.NewClass("Base", []runtime.Method{
		{Name: "identify", Body: &MethodBody{Body: NewCompound(&Return{Expr: NewVariableValue("self")})}},
	}, nil)
	child := runtime.NewClass("Child", nil, base)

	closure := runtime.Closure{}
	ctx := runtime.NewBufferedContext()

	program := NewCompound(
		&ClassDefinition{Class: child},
		&Assignment{Var: "c", Rv: &NewInstance{Class: child}},
		&Assignment{Var: "r", Rv: &MethodCall{Object: NewVariableValue("c"), Method: "identify"}},
	)
	_, err := program.Execute(closure, ctx)
	require.NoError(t, err)

	bound, ok := runtime.TryAs[*runtime.ClassInstance](closure["r"])
	require.True(t, ok)
	original, ok := runtime.TryAs[*runtime.ClassInstance](closure["c"])
	require.True(t, ok)
	assert.Same(t, original, bound)
	assert.Same(t, child, bound.Class, "self must be bound to the Child instance even though the method body lives on Base")
}

func TestNewInstanceWithoutInitStillReturnsInstance(t *testing.T) {
	cls := runtime.NewClass("NoInit", nil, nil)
	out, err := (&NewInstance{Class: cls}).Execute(runtime.Closure{}, runtime.NewBufferedContext())
	require.NoError(t, err)
	_, ok := runtime.TryAs[*runtime.ClassInstance](out.Value)
	assert.True(t, ok)
}

func TestMethodCallOnNonInstanceIsError(t *testing.T) {
	closure := runtime.Closure{"x": runtime.Own(runtime.Number{Value: 1})}
	_, err := (&MethodCall{Object: NewVariableValue("x"), Method: "whatever"}).Execute(closure, runtime.NewBufferedContext())
	assert.Error(t, err)
}
