/*
Package list implements an immutable singly linked list, the classic cons
list of functional data structures.

A list is a chain of nodes, each holding one element and a pointer to the
rest of the list. The empty list is the nil pointer, which makes the zero
value of *List[A] a valid, empty list. Lists share structure: Cons, Tail,
Drop and the suffix argument of Append never copy nodes, so a list and the
lists derived from it occupy mostly the same memory. Nothing is ever
mutated, a node once created keeps its element and its tail forever.

All operations are total. Inspecting or shrinking the empty list yields
empty results (or a comma-ok false), never a panic and never an error.

# Folding

FoldRight and FoldLeft are the two fundamental traversals, and every
aggregate operation of this package is expressed through them or through
operations already derived from them. FoldRight mirrors the recursive
structure of the list and recurses one frame per element; FoldLeft runs as
a loop in constant stack space. FoldRightViaFoldLeft and
FoldLeftViaFoldRight each express one fold through the other.
*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpinscala.list'.
func tracer() tracing.Trace {
	return tracing.Select("fpinscala.list")
}
