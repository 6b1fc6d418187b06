package list

import (
	fp "github.com/lewisjkl/fpinscala"
)

// FoldRight folds the list from the right: the combining function sees the
// last element first, and the parenthesization is
//
//	f(x0, f(x1, ... f(xn, zero)))
//
// The implementation recurses along the list structure, one call frame per
// element, so the stack grows with Len(l). For folds over long lists prefer
// FoldLeft or FoldRightViaFoldLeft.
func FoldRight[A, B any](l *List[A], zero B, f func(A, B) B) B {
	if l == nil {
		return zero
	}
	return f(l.head, FoldRight(l.tail, zero, f))
}

// FoldLeft folds the list from the left: the combining function sees the
// first element first, and the parenthesization is
//
//	f(f(f(zero, x0), x1), ... xn)
//
// It runs as a loop and uses constant stack space, whatever the list length.
func FoldLeft[A, B any](l *List[A], zero B, f func(B, A) B) B {
	acc := zero
	for n := l; n != nil; n = n.tail {
		acc = f(acc, n.head)
	}
	return acc
}

// FoldRightViaFoldLeft computes what FoldRight computes, without the deep
// recursion: it folds the reversed list from the left, with the arguments
// of f swapped. For a pure f the two are indistinguishable.
func FoldRightViaFoldLeft[A, B any](l *List[A], zero B, f func(A, B) B) B {
	return FoldLeft(l.Reverse(), zero, func(b B, a A) B {
		return f(a, b)
	})
}

// FoldLeftViaFoldRight computes what FoldLeft computes, by folding the list
// from the right into a function from zero to the result, one composition
// per element. It exists to demonstrate that either fold can express the
// other; FoldLeft itself is the one to use.
func FoldLeftViaFoldRight[A, B any](l *List[A], zero B, f func(B, A) B) B {
	g := FoldRight(l, fp.Identity[B], func(a A, acc func(B) B) func(B) B {
		return func(b B) B {
			return acc(f(b, a))
		}
	})
	return g(zero)
}
