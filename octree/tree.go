package octree

// Tree is an immutable octree built once from a set of points. All state
// transitions happen during Build; afterwards the arena, points, codes and
// permutation never change, so concurrent readers may hold references
// freely.
type Tree struct {
	coder Coder
	ncrit int

	// points and codes are stored in the tree's canonical (permuted)
	// order: points[i] is the i-th body's coordinate, codes[i] its
	// Morton code, both non-decreasing in codes.
	points []Point
	codes  []MortonCode

	// permute[i] is the original input index of the body now at
	// position i.
	permute []int

	boxes []boxRecord
}

// Coder returns the Morton coder used to build this tree.
func (t *Tree) Coder() Coder { return t.coder }

// NCrit returns the leaf capacity this tree was built with.
func (t *Tree) NCrit() int { return t.ncrit }

// Size returns the number of bodies held by the tree.
func (t *Tree) Size() int { return len(t.points) }

// NumBoxes returns the number of boxes in the arena.
func (t *Tree) NumBoxes() int { return len(t.boxes) }

// Root returns a handle to the root box, at arena index 0.
func (t *Tree) Root() Box { return Box{index: 0, tree: t} }

// BoxAt returns a handle to the box at arena index i.
func (t *Tree) BoxAt(i int) Box {
	assert(i >= 0 && i < len(t.boxes), "BoxAt: index out of range")
	return Box{index: i, tree: t}
}

// BodyAt returns a handle to the body at canonical index i.
func (t *Tree) BodyAt(i int) Body {
	assert(i >= 0 && i < len(t.points), "BodyAt: index out of range")
	return Body{index: i, tree: t}
}

// PointsSlice returns the canonical-order points in [begin, end), backed
// by the tree's internal storage.
func (t *Tree) PointsSlice(begin, end int) []Point { return t.points[begin:end] }

// Permute returns the original input index of the body now at canonical
// position i. Callers use this to address results by original index (see
// spec §6 Outputs).
func (t *Tree) Permute(i int) int {
	assert(i >= 0 && i < len(t.permute), "Permute: index out of range")
	return t.permute[i]
}

// SameBounds reports whether t and other were built from the same bounding
// box, the precondition dual-tree evaluators require of source/target
// trees.
func (t *Tree) SameBounds(other *Tree) bool {
	return t.coder.Bounds() == other.coder.Bounds()
}
