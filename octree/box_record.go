package octree

// boxRecord is the contiguous, arena-stored representation of a box. It is
// never referenced by pointer; callers address boxes by index through the
// Box handle type in handle.go.
type boxRecord struct {
	key    mortonKey
	parent int

	// childBegin/childEnd is a half-open range whose meaning depends on
	// key.isLeaf(): body indices if leaf, box indices if internal.
	childBegin, childEnd int

	// bodyBegin/bodyEnd is the box's full body range, cached at build
	// time so navigation does not need to descend to leaves to answer
	// BodyRange for internal boxes.
	bodyBegin, bodyEnd int
}

func (r boxRecord) isLeaf() bool      { return r.key.isLeaf() }
func (r boxRecord) numChildren() int  { return r.childEnd - r.childBegin }
func (r boxRecord) level() int        { return r.key.level() }
func (r boxRecord) mortonBounds() (lo, hi MortonCode) { return r.key.withoutFlag().bounds() }
