/*
Package either provides a sum type Either[L, R]: a value holding exactly one
of a left L or a right R. By convention the right side carries the result of
a computation and the left side the reason why none could be produced, which
makes Either the value-level counterpart of Go's (T, error) pair, with a
typed reason instead of the error interface.

All combinators are right-biased. Map, FlatMap and Map2 transform the right
side and pass a left through untouched, the way an early error return
short-circuits the rest of a Go function.
*/
package either

import (
	"fmt"

	fp "github.com/lewisjkl/fpinscala"
)

// Either holds either a left of type L or a right of type R, never both.
// Go has no union types; the stand-in is a struct with a side tag:
//
//	data Either a b = Left a | Right b     -- Haskell
//
//	e := either.Right[string](7)           // Either[string, int]
//	e = either.Left[string, int]("boom")
//
// The zero value is Left with the zero value of L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an either holding the reason l. Both type parameters have to
// be spelled out, nothing constrains R at the call site.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right creates an either holding the result r.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// Match prepares an either for pattern matching; see Matcher.
func (e Either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{left: &e.left, right: &e.right, isRight: e.isRight}
}

// OrElse returns e if it is a right, and alt() otherwise. alt is evaluated
// only in the left case.
func (e Either[L, R]) OrElse(alt func() Either[L, R]) Either[L, R] {
	if e.isRight {
		return e
	}
	return alt()
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold eliminates an either by applying exactly one of the two
// continuations to the side that is present.
func Fold[L, R, B any](e Either[L, R], onLeft func(L) B, onRight func(R) B) B {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map transforms the right side; a left passes through untouched.
func Map[L, R, S any](e Either[L, R], f func(R) S) Either[L, S] {
	return Fold(e,
		func(l L) Either[L, S] { return Left[L, S](l) },
		func(r R) Either[L, S] { return Right[L](f(r)) })
}

// MapLeft transforms the reason of a left; a right passes through.
func MapLeft[L, M, R any](e Either[L, R], f func(L) M) Either[M, R] {
	return Fold(e,
		func(l L) Either[M, R] { return Left[M, R](f(l)) },
		func(r R) Either[M, R] { return Right[M](r) })
}

// FlatMap chains a computation that may itself fail onto the right side.
func FlatMap[L, R, S any](e Either[L, R], f func(R) Either[L, S]) Either[L, S] {
	return Fold(e,
		func(l L) Either[L, S] { return Left[L, S](l) },
		f)
}

// Map2 combines two rights with f. If either side is a left, the result is
// the first left, and f is not called.
func Map2[L, A, B, C any](a Either[L, A], b Either[L, B], f func(A, B) C) Either[L, C] {
	return FlatMap(a, func(x A) Either[L, C] {
		return Map(b, func(y B) C {
			return f(x, y)
		})
	})
}

// Traverse maps f over xs and collects the results, folding with Map2 from
// the right. The first left (in slice order) becomes the result of the
// whole traversal.
func Traverse[L, A, B any](xs []A, f func(A) Either[L, B]) Either[L, []B] {
	acc := Right[L]([]B{})
	for i := len(xs) - 1; i >= 0; i-- {
		acc = Map2(f(xs[i]), acc, func(h B, t []B) []B {
			return append([]B{h}, t...)
		})
	}
	return acc
}

// Sequence turns a slice of eithers into the slice of all rights, or the
// first left. It is Traverse with the identity function.
func Sequence[L, A any](xs []Either[L, A]) Either[L, []A] {
	return Traverse(xs, fp.Identity[Either[L, A]])
}

// --- Matching --------------------------------------------------------------

// Matcher lets clients switch over the two sides of an either:
//
//	var reason string
//	var n int
//	switch m := e.Match(); m {
//	case m.Left(&reason):
//	    // the computation failed with reason
//	case m.Right(&n):
//	    // n holds the result
//	}
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

// matcher carries pointers instead of the values, keeping it comparable
// (and the switch above valid) for non-comparable L or R.
type matcher[L, R any] struct {
	left    *L
	right   *R
	isRight bool
}

func (mm matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !mm.isRight {
		*l = *mm.left
		return mm
	}
	return nil
}

func (mm matcher[L, R]) Right(r *R) Matcher[L, R] {
	if mm.isRight {
		*r = *mm.right
		return mm
	}
	return nil
}
