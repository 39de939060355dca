package octree

import "fmt"

// Check validates the structural invariants of §8: parent/level
// consistency, laminar and contiguous body ranges, sibling ordering, leaf
// capacity (for leaves above level Depth), and Morton-code containment. It is intended for use from
// tests while the tree is being exercised.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if len(t.boxes) == 0 {
		return fmt.Errorf("%w: empty arena", ErrInvariant)
	}
	root := t.boxes[0]
	if root.parent != 0 {
		return fmt.Errorf("%w: root parent must be itself, got %d", ErrInvariant, root.parent)
	}
	if root.level() != 0 {
		return fmt.Errorf("%w: root level must be 0, got %d", ErrInvariant, root.level())
	}
	if root.bodyBegin != 0 || root.bodyEnd != len(t.points) {
		return fmt.Errorf("%w: root body range must cover all bodies", ErrInvariant)
	}

	for i, r := range t.boxes {
		if i > 0 {
			if r.parent >= i {
				return fmt.Errorf("%w: box %d parent %d is not strictly less", ErrInvariant, i, r.parent)
			}
			parent := t.boxes[r.parent]
			if parent.level() != r.level()-1 {
				return fmt.Errorf("%w: box %d level %d not one below parent level %d",
					ErrInvariant, i, r.level(), parent.level())
			}
		}

		lo, hi := r.mortonBounds()
		for bi := r.bodyBegin; bi < r.bodyEnd; bi++ {
			c := t.codes[bi]
			if c < lo || c > hi {
				return fmt.Errorf("%w: box %d body %d code %d outside [%d,%d]",
					ErrInvariant, i, bi, c, lo, hi)
			}
		}

		if r.isLeaf() {
			// A leaf at level Depth may hold more than ncrit bodies: their
			// codes coincide and Build cannot subdivide any further.
			if r.level() < Depth && r.bodyEnd-r.bodyBegin > t.ncrit {
				return fmt.Errorf("%w: leaf %d holds %d bodies, exceeds ncrit=%d",
					ErrInvariant, i, r.bodyEnd-r.bodyBegin, t.ncrit)
			}
			for bi := r.bodyBegin + 1; bi < r.bodyEnd; bi++ {
				if t.codes[bi-1] > t.codes[bi] {
					return fmt.Errorf("%w: leaf %d codes not sorted at %d", ErrInvariant, i, bi)
				}
			}
			continue
		}

		if r.childBegin <= i {
			return fmt.Errorf("%w: box %d children not indexed after it", ErrInvariant, i)
		}
		if r.numChildren() == 0 {
			return fmt.Errorf("%w: internal box %d has no children", ErrInvariant, i)
		}
		prevEnd := r.bodyBegin
		for ci := r.childBegin; ci < r.childEnd; ci++ {
			c := t.boxes[ci]
			if c.parent != i {
				return fmt.Errorf("%w: box %d has child %d whose parent is %d", ErrInvariant, i, ci, c.parent)
			}
			if c.bodyBegin != prevEnd {
				return fmt.Errorf("%w: box %d children %d not contiguous/increasing", ErrInvariant, i, ci)
			}
			prevEnd = c.bodyEnd
		}
		if prevEnd != r.bodyEnd {
			return fmt.Errorf("%w: box %d children body ranges do not union to parent range", ErrInvariant, i)
		}
	}

	for i := 1; i < len(t.codes); i++ {
		if t.codes[i-1] > t.codes[i] {
			return fmt.Errorf("%w: canonical code array is not non-decreasing at %d", ErrInvariant, i)
		}
	}
	return nil
}
