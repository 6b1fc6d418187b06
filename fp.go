/*
Package fpinscala provides small functional programming helpers shared by the
data structure packages of this module: identity and constant functions,
function composition, and a generic pair.

The interesting types live in sub-packages:

  - option: optional values without nil pointers or error returns
  - either: a sum of two types, with the failure side typed
  - result: a value or a Go error, bridging fallible calls to option
  - persistent/list: an immutable cons list with structural sharing
  - tree: binary trees folded by a single recursion scheme

# Status

This is not a production library. It is a study of how far purely functional
abstractions carry in idiomatic Go, with type parameters doing the work that
higher-kinded types would do elsewhere.
*/
package fpinscala

// Identity returns its argument unchanged.
func Identity[T any](a T) T {
	return a
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}
