package tree

import (
	"cmp"

	fp "github.com/lewisjkl/fpinscala"
)

// Tree is an immutable binary tree holding values of type A in its leaves.
// Build trees from the two constructors:
//
//	t := tree.Branch[int](tree.Branch[int](tree.Leaf(1), tree.Leaf(2)), tree.Leaf(3))
//
// Functions whose type parameter occurs only in a Tree argument, Branch
// among them, need the explicit instantiation shown above: isTree carries
// no A, so inference has nothing to bind it from.
//
// Trees of comparable element types are comparable, two trees are equal iff
// they have the same shape and the same leaf values.
type Tree[A any] interface {
	isTree()
}

type leaf[A any] struct {
	value A
}

type branch[A any] struct {
	left, right Tree[A]
}

func (leaf[A]) isTree()   {}
func (branch[A]) isTree() {}

// Leaf creates a tree consisting of a single value.
func Leaf[A any](value A) Tree[A] {
	return leaf[A]{value: value}
}

// Branch joins two subtrees under a new root.
func Branch[A any](left, right Tree[A]) Tree[A] {
	return branch[A]{left: left, right: right}
}

// --- Fold and its instances ------------------------------------------------

// Fold reduces a tree to a single value of type B, replacing every leaf by
// onLeaf(value) and every branch by onBranch of its folded subtrees. Fold
// is the only way to take a tree apart; Size, MaxDepth, Map and Maximum are
// all instances of it.
//
// t must have been built with Leaf and Branch; folding a nil Tree is a
// programming error.
func Fold[A, B any](t Tree[A], onLeaf func(A) B, onBranch func(B, B) B) B {
	switch n := t.(type) {
	case leaf[A]:
		return onLeaf(n.value)
	case branch[A]:
		l := Fold(n.left, onLeaf, onBranch)
		r := Fold(n.right, onLeaf, onBranch)
		return onBranch(l, r)
	}
	tracer().Errorf("fold of %v, which is not a tree", t)
	assertThat(false, "tree is nil, must be built from Leaf and Branch")
	var none B
	return none
}

// Size counts the nodes of the tree, leaves and branches alike.
func Size[A any](t Tree[A]) int {
	return Fold(t,
		func(A) int { return 1 },
		func(l, r int) int { return 1 + l + r })
}

// MaxDepth returns the number of edges on the longest path from the root
// to a leaf. The depth of a single leaf is 0.
func MaxDepth[A any](t Tree[A]) int {
	return Fold(t,
		func(A) int { return 0 },
		func(l, r int) int { return 1 + max(l, r) })
}

// Map applies f to every leaf value, keeping the branch structure intact.
// The Branch constructor itself recombines the mapped subtrees.
func Map[A, B any](t Tree[A], f func(A) B) Tree[B] {
	return Fold(t,
		func(v A) Tree[B] { return Leaf(f(v)) },
		Branch[B])
}

// Maximum returns the largest leaf value.
func Maximum[A cmp.Ordered](t Tree[A]) A {
	return Fold(t,
		fp.Identity[A],
		func(l, r A) A { return max(l, r) })
}
