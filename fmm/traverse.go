package fmm

// traverseDualTree runs the queue-driven dual-tree descent shared by the
// immediate and lazy evaluators (§4.5/§4.6): a FIFO of box-pairs,
// initialized with root, splitting the larger box (ties broken toward the
// source box) whenever a pair is neither accepted by the MAC nor a
// leaf-leaf pair.
//
// onAccept and onLeafLeaf are invoked with every accepted / near-field
// pair respectively; the two evaluators differ only in what those
// callbacks do with the pair.
//
// A tree that is a single box (root has no children, hence is itself a
// leaf) can never be split, so root never has the chance to reach the
// ordinary leaf-leaf branch below on its own merit: if the MAC also
// happens to accept it, that root pair would otherwise only ever produce
// a far-field op and no near-field one. A single-level tree is special
// cased here to run both: the far-field op if accepted, and the P2P
// unconditionally, matching the collapse property for a MAC that always
// accepts. Every other leaf-leaf pair reached by splitting further down
// a bigger tree keeps the ordinary either/or behavior below.
func traverseDualTree(ctx *Context, root boxPair, onAccept, onLeafLeaf func(boxPair)) {
	if root.Src.IsLeaf() && root.Tgt.IsLeaf() {
		if ctx.AcceptMultipole(root.Src, root.Tgt) {
			onAccept(root)
		}
		onLeafLeaf(root)
		return
	}

	q := newPairQueue(root)
	for !q.empty() {
		p := q.pop()
		if ctx.AcceptMultipole(p.Src, p.Tgt) {
			onAccept(p)
			continue
		}
		if p.Src.IsLeaf() && p.Tgt.IsLeaf() {
			onLeafLeaf(p)
			continue
		}
		splitSrc := p.Src.SideLength() >= p.Tgt.SideLength()
		if splitSrc && p.Src.IsLeaf() {
			splitSrc = false
		} else if !splitSrc && p.Tgt.IsLeaf() {
			splitSrc = true
		}
		if splitSrc {
			for c := range p.Src.Children() {
				q.push(boxPair{Src: c, Tgt: p.Tgt})
			}
		} else {
			for c := range p.Tgt.Children() {
				q.push(boxPair{Src: p.Src, Tgt: c})
			}
		}
	}
}
