/*
Package option provides an optional value type Option[T], holding either one
value of type T or nothing. It replaces the usual Go signals for absence,
i.e. nil pointers, comma-ok returns and sentinel errors, with a single value
that composes: callers chain Map, FlatMap and friends and decide at the very
end what absence should mean.

The zero value of Option[T] is None.

No operation of this package panics and none returns an error. Absence simply
flows through a chain of calls until a default is supplied (GetOrElse, OrElse)
or the value is pattern-matched (Match).
*/
package option

import (
	"fmt"

	fp "github.com/lewisjkl/fpinscala"
)

// Option either holds one value of type T ("Some") or nothing ("None").
type Option[T any] struct {
	value T
	tag   bool
}

// Some creates an option holding value x.
func Some[T any](x T) Option[T] {
	return Option[T]{value: x, tag: true}
}

// None creates an empty option.
func None[T any]() Option[T] {
	return Option[T]{tag: false}
}

// Match prepares an option for pattern matching; see Matcher.
func (o Option[T]) Match() Matcher[T] {
	return matcher[T]{value: &o.value, tag: o.tag}
}

// GetOrElse returns the value held by o, or def() if o is empty. def is
// evaluated only in the empty case.
func (o Option[T]) GetOrElse(def func() T) T {
	if o.tag {
		return o.value
	}
	return def()
}

// OrElse returns o if it holds a value, and alt() otherwise. alt is
// evaluated only in the empty case.
//
// OrElse and Filter spell out their bodies on the tag: routing them
// through Map or FlatMap would instantiate Option[Option[T]] from inside
// Option's method set, which the compiler rejects as an instantiation
// cycle. The derived forms are only legal as package functions.
func (o Option[T]) OrElse(alt func() Option[T]) Option[T] {
	if o.tag {
		return o
	}
	return alt()
}

// Map applies f to the value inside, if any.
func (o Option[T]) Map(f func(T) T) Option[T] {
	if o.tag {
		return Some(f(o.value))
	}
	return o
}

// Filter drops the value inside unless it satisfies predicate p.
func (o Option[T]) Filter(p func(T) bool) Option[T] {
	if o.tag && p(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) String() string {
	if o.tag {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Map applies f to the value inside o, if any. It is a function rather than
// a method because f changes the element type (Go methods cannot introduce
// type parameters of their own).
func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	var v A
	switch m := o.Match(); m {
	case m.Some(&v):
		return Some(f(v))
	case m.None():
	}
	return None[B]()
}

// FlatMap applies f to the value inside o, if any, and flattens the result.
// It is Map followed by GetOrElse.
func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	return Map(o, f).GetOrElse(fp.Const(None[B]()))
}

// Map2 combines two options with the binary function f. The result is empty
// as soon as a is empty; b is not inspected then.
func Map2[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	return FlatMap(a, func(x A) Option[C] {
		return Map(b, func(y B) C {
			return f(x, y)
		})
	})
}

// Lift turns a plain function into one operating on options.
func Lift[A, B any](f func(A) B) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		return Map(o, f)
	}
}

// Traverse maps f over xs and collects the results, folding with Map2 from
// the right. A single empty result makes the whole traversal empty.
func Traverse[A, B any](xs []A, f func(A) Option[B]) Option[[]B] {
	acc := Some([]B{})
	for i := len(xs) - 1; i >= 0; i-- {
		acc = Map2(f(xs[i]), acc, func(h B, t []B) []B {
			return append([]B{h}, t...)
		})
	}
	return acc
}

// Sequence turns a slice of options into an option of a slice. The result is
// empty iff any element is empty. It is Traverse with the identity function.
func Sequence[A any](xs []Option[A]) Option[[]A] {
	return Traverse(xs, fp.Identity[Option[A]])
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients switch over the two cases of an option:
//
//	var v T
//	switch m := o.Match(); m {
//	case m.Some(&v):
//	    // v holds the value
//	case m.None():
//	    // o was empty
//	}
//
// The Some arm copies the value into its argument before the comparison, so
// v is usable in the case body.
type Matcher[T any] interface {
	Some(*T) Matcher[T]
	None() Matcher[T]
}

// matcher carries a pointer instead of the value itself, keeping it
// comparable (and the switch above valid) even for non-comparable T.
type matcher[T any] struct {
	value *T
	tag   bool
}

func (mm matcher[T]) Some(v *T) Matcher[T] {
	if mm.tag {
		*v = *mm.value
		return mm
	}
	return nil
}

func (mm matcher[T]) None() Matcher[T] {
	if !mm.tag {
		return mm
	}
	return nil
}
