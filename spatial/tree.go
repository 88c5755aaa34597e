package spatial

import "github.com/iceisfun/gonurbs/types"

// Tree is the capability set the pairwise traversal needs from a lazily
// subdivided bounding-box hierarchy.
//
// Split may construct children on demand; each call produces independent
// subtrees that the traversal consumes and never shares across sibling
// recursions. Yield is only meaningful on an indivisible, non-empty tree.
type Tree[T any] interface {
	// Empty reports whether the tree covers no geometry at all.
	Empty() bool
	// Bounds returns the axis-aligned box covering the tree's geometry.
	Bounds() types.AABB
	// Indivisible reports whether the tree should not be split further
	// at the given tolerance.
	Indivisible(tol float64) bool
	// Split divides the tree into two subtrees covering the geometry.
	Split() (Tree[T], Tree[T])
	// Yield hands out the leaf payload.
	Yield() T
}

// Pair is one candidate leaf pairing produced by TreePairs.
type Pair[T1, T2 any] struct {
	A T1
	B T2
}

// TreePairs walks two bounding-box trees in lockstep and returns every
// leaf pair whose boxes overlap within tol.
//
// Pruning is conservative: no pair whose true geometries overlap is
// omitted, and every returned pair has overlapping boxes. The same
// tolerance is applied at every level. The traversal never mutates the
// trees; an explicit work stack keeps adversarially deep hierarchies from
// exhausting the call stack.
func TreePairs[T1, T2 any](a Tree[T1], b Tree[T2], tol float64) []Pair[T1, T2] {
	type frame struct {
		a Tree[T1]
		b Tree[T2]
	}

	var out []Pair[T1, T2]
	stack := []frame{{a, b}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.a.Empty() || f.b.Empty() {
			continue
		}
		if !f.a.Bounds().Intersects(f.b.Bounds(), tol) {
			continue
		}

		ai := f.a.Indivisible(tol)
		bi := f.b.Indivisible(tol)
		switch {
		case ai && bi:
			out = append(out, Pair[T1, T2]{A: f.a.Yield(), B: f.b.Yield()})
		case ai:
			b0, b1 := f.b.Split()
			stack = append(stack, frame{f.a, b0}, frame{f.a, b1})
		case bi:
			a0, a1 := f.a.Split()
			stack = append(stack, frame{a0, f.b}, frame{a1, f.b})
		default:
			a0, a1 := f.a.Split()
			b0, b1 := f.b.Split()
			stack = append(stack,
				frame{a0, b0}, frame{a0, b1},
				frame{a1, b0}, frame{a1, b1})
		}
	}
	return out
}
