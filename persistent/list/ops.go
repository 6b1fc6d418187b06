package list

import (
	fp "github.com/lewisjkl/fpinscala"
)

// Number is the constraint for the arithmetic folds Sum and Product.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// --- Arithmetic folds ------------------------------------------------------

// Sum adds up the elements; the sum of the empty list is zero.
func Sum[A Number](l *List[A]) A {
	var zero A
	return FoldLeft(l, zero, func(acc, x A) A { return acc + x })
}

// SumViaFoldRight folds the sum from the other end. Addition is associative
// and commutative, so the result equals Sum.
func SumViaFoldRight[A Number](l *List[A]) A {
	var zero A
	return FoldRight(l, zero, func(x, acc A) A { return x + acc })
}

// Product multiplies the elements; the product of the empty list is one.
func Product[A Number](l *List[A]) A {
	return FoldLeft(l, A(1), func(acc, x A) A { return acc * x })
}

// ProductViaFoldRight folds the product from the other end.
func ProductViaFoldRight[A Number](l *List[A]) A {
	return FoldRight(l, A(1), func(x, acc A) A { return x * acc })
}

// --- Rebuilding folds ------------------------------------------------------

// Reverse returns the elements in opposite order.
func (l *List[A]) Reverse() *List[A] {
	return FoldLeft(l, Empty[A](), func(acc *List[A], x A) *List[A] {
		return Cons(x, acc)
	})
}

// Append concatenates l and tail. The nodes of l are rebuilt; tail becomes
// the suffix of the result without being copied.
func (l *List[A]) Append(tail *List[A]) *List[A] {
	return FoldRight(l, tail, Cons[A])
}

// Concat flattens a list of lists into a single list, preserving order.
func Concat[A any](ls *List[*List[A]]) *List[A] {
	return FoldRight(ls, Empty[A](), func(l, acc *List[A]) *List[A] {
		return l.Append(acc)
	})
}

// Map applies f to every element. It is a function rather than a method
// because f changes the element type (Go methods cannot introduce type
// parameters of their own); for an element-preserving f there is no
// method counterpart, Map covers both.
func Map[A, B any](l *List[A], f func(A) B) *List[B] {
	return FoldRightViaFoldLeft(l, Empty[B](), func(x A, acc *List[B]) *List[B] {
		return Cons(f(x), acc)
	})
}

// Filter keeps the elements satisfying predicate p.
func (l *List[A]) Filter(p func(A) bool) *List[A] {
	return FoldRightViaFoldLeft(l, Empty[A](), func(x A, acc *List[A]) *List[A] {
		if p(x) {
			return Cons(x, acc)
		}
		return acc
	})
}

// FilterViaFlatMap behaves exactly like Filter, expressed through FlatMap
// with a function yielding either a singleton or the empty list. It keeps
// the element type, yet it cannot be a method: through FlatMap it
// instantiates List[*List[A]], which the compiler rejects from inside
// List's method set as an instantiation cycle.
func FilterViaFlatMap[A any](l *List[A], p func(A) bool) *List[A] {
	return FlatMap(l, func(x A) *List[A] {
		if p(x) {
			return Of(x)
		}
		return Empty[A]()
	})
}

// FlatMap maps every element to a list and concatenates all results.
func FlatMap[A, B any](l *List[A], f func(A) *List[B]) *List[B] {
	return Concat(Map(l, f))
}

// --- Zipping ---------------------------------------------------------------

// ZipWith combines two lists element by element with f. The result is as
// long as the shorter input, surplus elements of the longer one are
// dropped.
func ZipWith[A, B, C any](a *List[A], b *List[B], f func(A, B) C) *List[C] {
	type zipState struct {
		rest *List[B]
		acc  *List[C]
	}
	s := FoldLeft(a, zipState{rest: b}, func(s zipState, x A) zipState {
		if s.rest == nil {
			return s
		}
		return zipState{
			rest: s.rest.tail,
			acc:  Cons(f(x, s.rest.head), s.acc),
		}
	})
	return s.acc.Reverse()
}

// Zip pairs up two lists, truncating to the shorter one.
func Zip[A, B any](a *List[A], b *List[B]) *List[fp.Pair[A, B]] {
	return ZipWith(a, b, fp.P[A, B])
}

// --- Searching -------------------------------------------------------------

// StartsWith reports whether l begins with the elements of prefix. Every
// list starts with the empty list. After ruling out a prefix longer than
// l, it zips the two lists, which truncates to the prefix, and folds the
// pairwise comparisons into the verdict.
func StartsWith[A comparable](l, prefix *List[A]) bool {
	if prefix.Len() > l.Len() {
		return false
	}
	return FoldLeft(Zip(l, prefix), true, func(ok bool, p fp.Pair[A, A]) bool {
		return ok && p.Left == p.Right
	})
}

// HasSubsequence reports whether sub occurs contiguously somewhere in sup.
// It shifts a StartsWith window over the suffixes of sup.
func HasSubsequence[A comparable](sup, sub *List[A]) bool {
	shifts := 0
	for s := sup; ; s = s.Tail() {
		if StartsWith(s, sub) {
			tracer().Debugf("subsequence found after %d shifts", shifts)
			return true
		}
		if s.IsEmpty() {
			return false
		}
		shifts++
	}
}
