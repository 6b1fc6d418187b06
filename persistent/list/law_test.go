package list

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	fp "github.com/lewisjkl/fpinscala"
)

func TestListFunctorLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpinscala.list")
	defer teardown()
	//
	properties := gopter.NewProperties(nil)

	properties.Property("map preserves identity", prop.ForAll(
		func(xs []int) bool {
			l := FromSlice(xs)
			return Map(l, fp.Identity[int]).String() == l.String()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("map composes", prop.ForAll(
		func(xs []int) bool {
			l := FromSlice(xs)
			double := func(n int) int { return n * 2 }
			inc := func(n int) int { return n + 1 }
			stepwise := Map(Map(l, double), inc)
			composed := Map(l, fp.Compose(double, inc))
			return stepwise.String() == composed.String()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("map keeps the length", prop.ForAll(
		func(xs []int) bool {
			l := FromSlice(xs)
			return Map(l, func(n int) int { return -n }).Len() == l.Len()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestListFoldLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpinscala.list")
	defer teardown()
	//
	properties := gopter.NewProperties(nil)

	properties.Property("both sum folds agree", prop.ForAll(
		func(xs []int) bool {
			l := FromSlice(xs)
			return Sum(l) == SumViaFoldRight(l)
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("both product folds agree", prop.ForAll(
		func(xs []int) bool {
			l := FromSlice(xs)
			return Product(l) == ProductViaFoldRight(l)
		},
		gen.SliceOf(gen.IntRange(-9, 9)),
	))

	properties.Property("derived right fold equals the recursive one", prop.ForAll(
		func(xs []int) bool {
			l := FromSlice(xs)
			direct := FoldRight(l, "0", parenR)
			derived := FoldRightViaFoldLeft(l, "0", parenR)
			return direct == derived
		},
		gen.SliceOf(gen.IntRange(0, 99)),
	))

	properties.Property("derived left fold equals the iterative one", prop.ForAll(
		func(xs []int) bool {
			l := FromSlice(xs)
			direct := FoldLeft(l, "0", parenL)
			derived := FoldLeftViaFoldRight(l, "0", parenL)
			return direct == derived
		},
		gen.SliceOf(gen.IntRange(0, 99)),
	))

	properties.TestingRun(t)
}

func TestListStructureLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fpinscala.list")
	defer teardown()
	//
	properties := gopter.NewProperties(nil)

	properties.Property("reverse of reverse is the original", prop.ForAll(
		func(xs []int) bool {
			l := FromSlice(xs)
			return l.Reverse().Reverse().String() == l.String()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.Property("append adds lengths and shares the suffix", prop.ForAll(
		func(xs, ys []int) bool {
			a, b := FromSlice(xs), FromSlice(ys)
			ab := a.Append(b)
			return ab.Len() == a.Len()+b.Len() && ab.Drop(len(xs)) == b
		},
		gen.SliceOf(gen.Int()), gen.SliceOf(gen.Int()),
	))

	properties.Property("a list starts with every prefix append produces", prop.ForAll(
		func(xs, ys []int) bool {
			a, b := FromSlice(xs), FromSlice(ys)
			return StartsWith(a.Append(b), a)
		},
		gen.SliceOf(gen.Int()), gen.SliceOf(gen.Int()),
	))

	properties.Property("drop beyond the end empties the list", prop.ForAll(
		func(xs []int, extra int) bool {
			return FromSlice(xs).Drop(len(xs) + extra).IsEmpty()
		},
		gen.SliceOf(gen.Int()), gen.IntRange(0, 16),
	))

	properties.Property("dropped length", prop.ForAll(
		func(xs []int, n int) bool {
			want := len(xs)
			if n > 0 {
				want = max(0, len(xs)-n)
			}
			return FromSlice(xs).Drop(n).Len() == want
		},
		gen.SliceOf(gen.Int()), gen.IntRange(-4, 64),
	))

	properties.Property("zipWith truncates to the shorter list", prop.ForAll(
		func(xs, ys []int) bool {
			z := ZipWith(FromSlice(xs), FromSlice(ys), func(a, b int) int { return a + b })
			return z.Len() == min(len(xs), len(ys))
		},
		gen.SliceOf(gen.Int()), gen.SliceOf(gen.Int()),
	))

	properties.Property("both filter derivations agree", prop.ForAll(
		func(xs []int) bool {
			even := func(n int) bool { return n%2 == 0 }
			l := FromSlice(xs)
			return l.Filter(even).String() == FilterViaFlatMap(l, even).String()
		},
		gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}
