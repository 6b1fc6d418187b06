package result

/*
{-| A `Result` is the result of a computation that may fail. This is a great
way to manage errors in Elm.

# Type and Constructors
@docs Result

# Mapping
@docs map, map2

# Chaining
@docs andThen

# Handling Errors
@docs withDefault, toMaybe, fromMaybe, mapError
-}

From the Elm core documentation. Here Result carries Go's error interface on
the failure side, which makes it the bridge between fallible Go calls and
the option world: FromCall wraps a (T, error) return value pair, ToOption
forgets the reason for a failure, FromOption attaches one.

Package functions take the result as their last argument, following the Elm
signatures quoted above.
*/

import (
	"fmt"

	fp "github.com/lewisjkl/fpinscala"
	"github.com/lewisjkl/fpinscala/option"
)

// Result is the outcome of a computation that may fail: a value of type T,
// or a Go error saying why there is none. A result is Ok exactly when its
// error is nil, so the zero value is Ok with the zero value of T.
type Result[T any] struct {
	value T
	err   error
}

// Ok creates a successful result holding x.
func Ok[T any](x T) Result[T] {
	return Result[T]{value: x}
}

// Err creates a failed result carrying err. A nil err yields Ok of the zero
// value, the same convention as a nil error return.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// FromCall wraps the return values of a fallible Go call:
//
//	r := result.FromCall(strconv.Atoi(input))
//
// Any v accompanying a non-nil error is dropped, so failed results compare
// equal regardless of what the call left in its first return value.
func FromCall[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// Match prepares a result for pattern matching; see Matcher.
func (r Result[T]) Match() Matcher[T] {
	return matcher[T]{value: &r.value, err: &r.err}
}

// WithDefault returns the value held by r, or def if the computation
// failed.
func (r Result[T]) WithDefault(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// Map applies f to the value inside, if any.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return Ok(f(r.value))
}

func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies f to the value inside r, if any. It is a function rather than
// a method because f changes the element type (Go methods cannot introduce
// type parameters of their own).
func Map[T, S any](f func(T) S, r Result[T]) Result[S] {
	var v T
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&err):
	}
	return Err[S](err)
}

// Map2 combines two successful results with f. Otherwise the first error in
// argument order is the result, and f is not called.
func Map2[T, U, S any](f func(T, U) S, a Result[T], b Result[U]) Result[S] {
	return AndThen(func(x T) Result[S] {
		return Map(func(y U) S { return f(x, y) }, b)
	}, a)
}

// AndThen chains a computation that may itself fail onto a successful
// result.
func AndThen[T, S any](f func(T) Result[S], r Result[T]) Result[S] {
	var v T
	var err error
	switch m := r.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&err):
	}
	return Err[S](err)
}

// MapError transforms the error of a failed result; a successful one
// passes through untouched.
func MapError[T any](f func(error) error, r Result[T]) Result[T] {
	if r.err != nil {
		return Err[T](f(r.err))
	}
	return r
}

// ToOption forgets why a computation failed, keeping only whether it did.
func ToOption[T any](r Result[T]) option.Option[T] {
	return Map(option.Some[T], r).WithDefault(option.None[T]())
}

// FromOption attaches a reason to the empty case of an option.
func FromOption[T any](err error, o option.Option[T]) Result[T] {
	return option.Map(o, Ok[T]).GetOrElse(fp.Const(Err[T](err)))
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients switch over success and failure of a result:
//
//	var v int
//	var err error
//	switch m := r.Match(); m {
//	case m.Ok(&v):
//	    // v holds the value
//	case m.Err(&err):
//	    // the computation failed with err
//	}
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

// matcher carries pointers instead of the values, keeping it comparable
// (and the switch above valid) for non-comparable T.
type matcher[T any] struct {
	value *T
	err   *error
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if *rm.err == nil {
		*v = *rm.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(e *error) Matcher[T] {
	if *rm.err != nil {
		*e = *rm.err
		return rm
	}
	return nil
}
