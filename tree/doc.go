/*
Package tree implements an immutable binary tree with values at the leaves
and a single recursion scheme, Fold, from which every other operation of the
package derives.

A tree is either a single leaf holding a value, or a branch holding exactly
two subtrees. There is no empty tree. The two cases are sealed inside this
package, clients construct trees with Leaf and Branch and take them apart
with Fold.
*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fpinscala.tree'.
func tracer() tracing.Trace {
	return tracing.Select("fpinscala.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("tree: "+msg, msgargs...)
		panic(msg)
	}
}
