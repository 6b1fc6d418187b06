package list

import (
	fp "github.com/lewisjkl/fpinscala"
	"github.com/lewisjkl/fpinscala/option"
)

// Traverse maps f over the list and collects the results inside a single
// option: one None from f makes the whole result None. The fold combines
// with option.Map2 and Cons from the right, so element order is preserved.
func Traverse[A, B any](l *List[A], f func(A) option.Option[B]) option.Option[*List[B]] {
	return FoldRight(l, option.Some(Empty[B]()),
		func(x A, acc option.Option[*List[B]]) option.Option[*List[B]] {
			return option.Map2(f(x), acc, Cons[B])
		})
}

// Sequence turns a list of options into an option of a list. The result is
// None iff any element is None. It is Traverse with the identity function.
func Sequence[A any](l *List[option.Option[A]]) option.Option[*List[A]] {
	return Traverse(l, fp.Identity[option.Option[A]])
}
