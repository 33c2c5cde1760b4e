/*
File    : pym/runtime/class_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// selfReadingBody returns whatever `self` is bound to in its frame, so
// tests can assert on which instance a method body actually ran against.
type selfReadingBody struct{}

func (selfReadingBody) Execute(closure Closure, ctx Context) (Outcome, error) {
	return Normal(closure["self"]), nil
}

func TestGetMethodWalksParentChain(t *testing.T) {
	base := NewClass("Base", []Method{{Name: "greet", Body: selfReadingBody{}}}, nil)
	child := NewClass("Child", nil, base)

	m, ok := child.GetMethod("greet")
	require.True(t, ok)
	assert.Same(t, &base.Methods[0], m)
}

func TestChildInstanceCallsInheritedMethodWithOwnSelf(t *testing.T) {
	base := NewClass("Base", []Method{{Name: "greet", Body: selfReadingBody{}}}, nil)
	child := NewClass("Child", nil, base)
	inst := NewClassInstance(child)

	out, err := inst.Call("greet", nil, NewBufferedContext())
	require.NoError(t, err)

	bound, ok := TryAs[*ClassInstance](out)
	require.True(t, ok)
	assert.Same(t, inst, bound)
}

func TestCallMissingMethodIsError(t *testing.T) {
	cls := NewClass("C", nil, nil)
	inst := NewClassInstance(cls)
	_, err := inst.Call("missing", nil, NewBufferedContext())
	assert.Error(t, err)
}

func TestCallArgumentCountMismatchIsError(t *testing.T) {
	cls := NewClass("C", []Method{{Name: "one", FormalParams: []string{"a"}, Body: selfReadingBody{}}}, nil)
	inst := NewClassInstance(cls)
	_, err := inst.Call("one", nil, NewBufferedContext())
	assert.Error(t, err)
}

func TestHasMethodChecksArity(t *testing.T) {
	cls := NewClass("C", []Method{{Name: "one", FormalParams: []string{"a"}, Body: selfReadingBody{}}}, nil)
	inst := NewClassInstance(cls)
	assert.True(t, inst.HasMethod("one", 1))
	assert.False(t, inst.HasMethod("one", 0))
	assert.False(t, inst.HasMethod("other", 1))
}
