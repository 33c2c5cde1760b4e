/*
File    : pym/runtime/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package runtime defines the value model (Value, ObjectHolder), the
// Class/ClassInstance object model, the comparison algebra, the Context
// output sink, and the Statement/Outcome contract that the ast package's
// node types implement. Statement lives here rather than in ast so that
// runtime.Method can hold a method body without an import cycle back to
// the package that builds AST nodes.
package runtime

import "fmt"

// Kind tags the dynamic type of a Value.
type Kind string

const (
	NumberKind   Kind = "Number"
	StringKind   Kind = "String"
	BoolKind     Kind = "Bool"
	ClassKind    Kind = "Class"
	InstanceKind Kind = "ClassInstance"
)

// Value is the tagged variant of runtime objects: Number, String, Bool,
// *Class, or *ClassInstance. Absence is represented by ObjectHolder's
// empty state, not by a Value variant.
type Value interface {
	Kind() Kind
}

// Number is an integer-valued Value.
type Number struct{ Value int }

func (Number) Kind() Kind { return NumberKind }

// String is a string-valued Value.
type String struct{ Value string }

func (String) Kind() Kind { return StringKind }

// Bool is a boolean-valued Value.
type Bool struct{ Value bool }

func (Bool) Kind() Kind { return BoolKind }

// Closure is a mapping from name to ObjectHolder with unique keys and
// insertion-order-irrelevant semantics, used both for the global scope
// and for per-call method frames.
type Closure map[string]ObjectHolder

// holderMode distinguishes the three ObjectHolder shapes.
type holderMode int

const (
	modeEmpty holderMode = iota
	modeOwned
	modeBorrowed
)

// ObjectHolder is a handle to a Value that encodes ownership: empty
// (holds nothing), owned (this holder allocated the value), or borrowed
// (a non-owning reference into a value whose lifetime is guaranteed by
// an outer scope — the shape used to pass self into a method frame
// without forming an ownership cycle).
type ObjectHolder struct {
	mode  holderMode
	value Value
}

// Own allocates an owning holder for v.
func Own(v Value) ObjectHolder { return ObjectHolder{mode: modeOwned, value: v} }

// Share constructs a non-owning holder over a value owned elsewhere.
// The caller is responsible for the value outliving every holder built
// from it.
func Share(v Value) ObjectHolder { return ObjectHolder{mode: modeBorrowed, value: v} }

// None constructs an empty holder.
func None() ObjectHolder { return ObjectHolder{mode: modeEmpty} }

// IsEmpty reports whether the holder carries no value.
func (h ObjectHolder) IsEmpty() bool { return h.mode == modeEmpty }

// Value returns the held Value, or nil if the holder is empty.
func (h ObjectHolder) Value() Value { return h.value }

// TryAs returns the held value cast to T and whether the cast succeeded.
// An empty holder never succeeds.
func TryAs[T Value](h ObjectHolder) (T, bool) {
	var zero T
	if h.IsEmpty() {
		return zero, false
	}
	v, ok := h.value.(T)
	return v, ok
}

// IsTrue is the holder's truthiness in boolean context: false for an
// empty holder; for String, non-empty payload; for Number, non-zero; for
// Bool, the payload itself; Class and ClassInstance are always falsy.
func IsTrue(h ObjectHolder) bool {
	if h.IsEmpty() {
		return false
	}
	switch v := h.value.(type) {
	case String:
		return v.Value != ""
	case Number:
		return v.Value != 0
	case Bool:
		return v.Value
	default:
		return false
	}
}

// Render produces the text representation of a holder for Print and
// Stringify: Number renders decimal, String renders its raw bytes, Bool
// renders True/False, an empty holder renders None, and a ClassInstance
// renders via __str__() if present, else a placeholder.
func Render(h ObjectHolder, ctx Context) (string, error) {
	if h.IsEmpty() {
		return "None", nil
	}
	switch v := h.value.(type) {
	case Number:
		return fmt.Sprintf("%d", v.Value), nil
	case String:
		return v.Value, nil
	case Bool:
		if v.Value {
			return "True", nil
		}
		return "False", nil
	case *Class:
		return fmt.Sprintf("<class %s>", v.Name), nil
	case *ClassInstance:
		if v.HasMethod("__str__", 0) {
			out, err := v.Call("__str__", nil, ctx)
			if err != nil {
				return "", err
			}
			return Render(out, ctx)
		}
		return fmt.Sprintf("<%s object>", v.Class.Name), nil
	default:
		return "", fmt.Errorf("runtime: cannot render value of kind %s", h.value.Kind())
	}
}
