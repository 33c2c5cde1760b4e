/*
File    : pym/runtime/compare.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package runtime

import "fmt"

// Equal reports lhs == rhs: true when both holders are empty; when both
// are Number, String, or Bool with equal payloads; or when lhs is a
// ClassInstance with __eq__(1), in which case it returns
// IsTrue(lhs.__eq__(rhs)). Any other combination is a runtime error.
func Equal(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	if lhs.IsEmpty() && rhs.IsEmpty() {
		return true, nil
	}
	switch l := lhs.Value().(type) {
	case Number:
		if r, ok := rhs.Value().(Number); ok {
			return l.Value == r.Value, nil
		}
	case String:
		if r, ok := rhs.Value().(String); ok {
			return l.Value == r.Value, nil
		}
	case Bool:
		if r, ok := rhs.Value().(Bool); ok {
			return l.Value == r.Value, nil
		}
	case *ClassInstance:
		if l.HasMethod("__eq__", 1) {
			out, err := l.Call("__eq__", []ObjectHolder{rhs}, ctx)
			if err != nil {
				return false, err
			}
			return IsTrue(out), nil
		}
	}
	return false, fmt.Errorf("runtime: values are not comparable for equality")
}

// Less orders lhs against rhs: direct payload order for matching Number
// or Bool, lexicographic-by-bytes for matching String, and
// IsTrue(lhs.__lt__(rhs)) for a ClassInstance with __lt__(1). Any other
// combination is a runtime error.
func Less(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	if !lhs.IsEmpty() {
		switch l := lhs.Value().(type) {
		case Number:
			if r, ok := rhs.Value().(Number); ok {
				return l.Value < r.Value, nil
			}
		case Bool:
			if r, ok := rhs.Value().(Bool); ok {
				return !l.Value && r.Value, nil
			}
		case String:
			if r, ok := rhs.Value().(String); ok {
				return l.Value < r.Value, nil
			}
		case *ClassInstance:
			if l.HasMethod("__lt__", 1) {
				out, err := l.Call("__lt__", []ObjectHolder{rhs}, ctx)
				if err != nil {
					return false, err
				}
				return IsTrue(out), nil
			}
		}
	}
	return false, fmt.Errorf("runtime: values are not orderable")
}

// NotEqual, Greater, LessOrEqual, and GreaterOrEqual are derived from
// Equal and Less so that exactly one of <, =, > holds for any comparable
// pair of operands.
func NotEqual(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	return !eq, err
}

func Greater(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt && !eq, nil
}

func LessOrEqual(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	gt, err := Greater(lhs, rhs, ctx)
	return !gt, err
}

func GreaterOrEqual(lhs, rhs ObjectHolder, ctx Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	return !lt, err
}
