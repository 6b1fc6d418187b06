package list

/*
Remarks:
--------

- A *List[A] is just a pointer to its first node, and every suffix of a list
  is itself a valid list. Operations returning a suffix (Tail, Drop,
  DropWhile) hand out the original nodes, they never copy.

- nil is the empty list. All methods are defined on the nil receiver, so the
  zero value works without initialization.

*/

import (
	"fmt"
	"strings"
)

// List is an immutable singly linked list. An element is prepended with
// Cons, everything else derives from the two folds. Use it like this:
//
//	l := list.Of(1, 2, 3)
//	l = list.Cons(0, l)        // (0 1 2 3), sharing all of l
//	sum := list.Sum(l)         // 6
//
type List[A any] struct {
	head A
	tail *List[A]
}

// Cons prepends head to a list, sharing tail as the rest of the new list.
func Cons[A any](head A, tail *List[A]) *List[A] {
	return &List[A]{head: head, tail: tail}
}

// Empty returns the empty list, which is the nil pointer.
func Empty[A any]() *List[A] {
	return nil
}

// Of builds a list holding xs in the given order.
func Of[A any](xs ...A) *List[A] {
	var l *List[A]
	for i := len(xs) - 1; i >= 0; i-- {
		l = Cons(xs[i], l)
	}
	return l
}

// FromSlice builds a list holding the elements of xs in slice order.
func FromSlice[A any](xs []A) *List[A] {
	return Of(xs...)
}

// --- Observers -------------------------------------------------------------

// IsEmpty is true for the empty list.
func (l *List[A]) IsEmpty() bool {
	return l == nil
}

// Head returns the first element, if there is one. For the empty list it
// returns the zero value for A, together with ok=false.
func (l *List[A]) Head() (A, bool) {
	if l == nil {
		var none A
		return none, false
	}
	return l.head, true
}

// Len returns the number of elements. Lists do not cache their length, so
// this folds over the whole list.
func (l *List[A]) Len() int {
	return FoldLeft(l, 0, func(n int, _ A) int { return n + 1 })
}

// Slice copies the elements into a fresh Go slice. The empty list yields nil.
func (l *List[A]) Slice() []A {
	return FoldLeft(l, []A(nil), func(xs []A, x A) []A { return append(xs, x) })
}

func (l *List[A]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for n := l; n != nil; n = n.tail {
		if n != l {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", n.head)
	}
	sb.WriteByte(')')
	return sb.String()
}

// --- Structural operations -------------------------------------------------

// Tail returns the list without its first element, sharing the remaining
// nodes. The tail of the empty list is the empty list.
func (l *List[A]) Tail() *List[A] {
	if l == nil {
		return nil
	}
	return l.tail
}

// SetHead replaces the first element, sharing the tail. On the empty list
// it creates a singleton, so the operation stays total.
func (l *List[A]) SetHead(head A) *List[A] {
	if l == nil {
		return Cons(head, nil)
	}
	return Cons(head, l.tail)
}

// Drop removes the first n elements, returning a shared suffix of l. It is
// Tail applied n times. Dropping more elements than the list holds yields
// the empty list, dropping a non-positive count yields l itself.
func (l *List[A]) Drop(n int) *List[A] {
	rest := l
	for i := 0; i < n && !rest.IsEmpty(); i++ {
		rest = rest.Tail()
	}
	return rest
}

// DropWhile removes the longest prefix of elements satisfying p, returning
// a shared suffix of l.
func (l *List[A]) DropWhile(p func(A) bool) *List[A] {
	rest := l
	for {
		h, ok := rest.Head()
		if !ok || !p(h) {
			return rest
		}
		rest = rest.Tail()
	}
}

// Init returns the list without its last element; Init of the empty list is
// the empty list. Unlike Tail this cannot share anything and rebuilds all
// remaining nodes.
func (l *List[A]) Init() *List[A] {
	return l.Reverse().Tail().Reverse()
}
