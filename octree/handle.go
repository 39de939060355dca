package octree

import "iter"

// Box is a value handle (index, tree) into the box arena. Box access
// always goes through an explicit borrow of the owning tree, avoiding the
// cyclic back-pointers a naive port of the source would carry.
type Box struct {
	index int
	tree  *Tree
}

// Index returns the box's arena index.
func (b Box) Index() int { return b.index }

// Tree returns the owning tree.
func (b Box) Tree() *Tree { return b.tree }

func (b Box) record() boxRecord { return b.tree.boxes[b.index] }

// IsLeaf reports whether the box is a leaf.
func (b Box) IsLeaf() bool { return b.record().isLeaf() }

// Level returns the box's depth, with the root at level 0.
func (b Box) Level() int { return b.record().level() }

// NumChildren returns the number of direct children (0 for a leaf).
func (b Box) NumChildren() int {
	r := b.record()
	if r.isLeaf() {
		return 0
	}
	return r.numChildren()
}

// Parent returns the box's parent. The root is its own parent.
func (b Box) Parent() Box { return Box{index: b.record().parent, tree: b.tree} }

// IsRoot reports whether b is the arena root.
func (b Box) IsRoot() bool { return b.index == 0 }

// ChildBegin and ChildEnd bound the box-index range of an internal box's
// direct children. Calling these on a leaf is a precondition violation.
func (b Box) ChildBegin() int {
	r := b.record()
	assert(!r.isLeaf(), "ChildBegin called on a leaf box")
	return r.childBegin
}

func (b Box) ChildEnd() int {
	r := b.record()
	assert(!r.isLeaf(), "ChildEnd called on a leaf box")
	return r.childEnd
}

// Children iterates the box's direct children in increasing octant order.
func (b Box) Children() iter.Seq[Box] {
	return func(yield func(Box) bool) {
		r := b.record()
		if r.isLeaf() {
			return
		}
		for i := r.childBegin; i < r.childEnd; i++ {
			if !yield(Box{index: i, tree: b.tree}) {
				return
			}
		}
	}
}

// ChildAt returns the k-th direct child of an internal box.
func (b Box) ChildAt(k int) Box {
	r := b.record()
	assert(!r.isLeaf(), "ChildAt called on a leaf box")
	assert(k >= 0 && r.childBegin+k < r.childEnd, "ChildAt: index out of range")
	return Box{index: r.childBegin + k, tree: b.tree}
}

// BodyBegin and BodyEnd bound the body-index range of a leaf box.
// Calling these on an internal box is a precondition violation.
func (b Box) BodyBegin() int {
	r := b.record()
	assert(r.isLeaf(), "BodyBegin called on an internal box")
	return r.childBegin
}

func (b Box) BodyEnd() int {
	r := b.record()
	assert(r.isLeaf(), "BodyEnd called on an internal box")
	return r.childEnd
}

// BodyRange returns the box's full body-index range, valid for both leaf
// and internal boxes (cached at build time from the union of descendant
// leaf ranges).
func (b Box) BodyRange() (begin, end int) {
	r := b.record()
	return r.bodyBegin, r.bodyEnd
}

// NumBodies returns the number of bodies contained transitively in b.
func (b Box) NumBodies() int {
	begin, end := b.BodyRange()
	return end - begin
}

// Bodies iterates the bodies directly held by a leaf box.
func (b Box) Bodies() iter.Seq[Body] {
	return func(yield func(Body) bool) {
		r := b.record()
		if !r.isLeaf() {
			return
		}
		for i := r.childBegin; i < r.childEnd; i++ {
			if !yield(Body{index: i, tree: b.tree}) {
				return
			}
		}
	}
}

// MortonLowerBound and MortonUpperBound return the minimum and maximum
// Morton codes any body in the box could carry.
func (b Box) MortonLowerBound() MortonCode {
	lo, _ := b.record().mortonBounds()
	return lo
}

func (b Box) MortonUpperBound() MortonCode {
	_, hi := b.record().mortonBounds()
	return hi
}

// Center returns the box's geometric center, per
// center(B) = lo(cell(lower_bound)) + 0.5 * sideLength(B).
func (b Box) Center() Point {
	lo, _ := b.record().mortonBounds()
	cellLo := b.tree.coder.Cell(lo).Lo
	side := b.SideLength()
	return Point{cellLo[0] + 0.5*side, cellLo[1] + 0.5*side, cellLo[2] + 0.5*side}
}

// SideLength returns the box's side length, side of the root bounding box
// (axis 0, assuming a cubic bounding box as is conventional for octrees)
// times 2^-level(B).
func (b Box) SideLength() float64 {
	rootSide := b.tree.coder.Bounds().side(0)
	level := b.Level()
	scale := 1.0
	for i := 0; i < level; i++ {
		scale *= 0.5
	}
	return rootSide * scale
}

// Body is a value handle (index, tree) into the canonical (permuted) body
// array. Bodies are immutable after tree construction.
type Body struct {
	index int
	tree  *Tree
}

// Index returns the body's canonical index (position after permutation).
func (bd Body) Index() int { return bd.index }

// Point returns the body's coordinate.
func (bd Body) Point() Point { return bd.tree.points[bd.index] }

// MortonCode returns the body's Morton code.
func (bd Body) MortonCode() MortonCode { return bd.tree.codes[bd.index] }

// OriginalIndex returns the body's position in the input slice passed to
// Build, before permutation.
func (bd Body) OriginalIndex() int { return bd.tree.permute[bd.index] }
