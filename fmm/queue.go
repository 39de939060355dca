package fmm

import "github.com/lacrymose/fmm-bem-relaxed/octree"

// boxPair is a source/target box pair under dual-tree descent.
type boxPair struct {
	Src, Tgt octree.Box
}

// pairQueue is an explicit FIFO work queue, kept as a growable slice with
// a head cursor rather than recursion, bounding stack depth at
// log8(N) the way recursion would but without using the call stack, per
// the design notes.
type pairQueue struct {
	items []boxPair
	head  int
}

func newPairQueue(root boxPair) *pairQueue {
	return &pairQueue{items: []boxPair{root}}
}

func (q *pairQueue) empty() bool { return q.head >= len(q.items) }

func (q *pairQueue) push(p boxPair) { q.items = append(q.items, p) }

func (q *pairQueue) pop() boxPair {
	assert(!q.empty(), "pairQueue.pop: queue is empty")
	p := q.items[q.head]
	q.head++
	return p
}
