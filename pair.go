package fpinscala

import "fmt"

// --- Pair ------------------------------------------------------------------

// Pair is a 2-tuple. Zipping two lists produces a list of pairs.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair from x and y.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose destructures a pair into its two halves.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v,%v)", p.Left, p.Right)
}
