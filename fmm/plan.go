package fmm

import (
	"fmt"
	"sort"

	"github.com/lacrymose/fmm-bem-relaxed/kernel"
	"github.com/lacrymose/fmm-bem-relaxed/octree"
)

// m2mPair records a scheduled M2M(child, parent) call.
type m2mPair struct {
	Child, Parent octree.Box
}

// l2lPair records a scheduled L2L(parent, child) call.
type l2lPair struct {
	Parent, Child octree.Box
}

// LazyPlan is the record-then-execute strategy's plan (§4.6): the descent
// runs once at construction time, classifying every box-pair and resolving
// the multipole/local dependency closure; Execute then replays the
// resulting phase lists in the fixed order the FMM operator sequence
// requires.
//
// A plan is immutable once built and may be executed at most once, since
// Execute mutates the same Context the plan was built against.
type LazyPlan struct {
	ctx  *Context
	kind EvaluatorKind

	P2MList []octree.Box
	M2MList []m2mPair
	LRList  []boxPair
	L2LList []l2lPair
	L2PList []octree.Box
	P2PList []boxPair

	lRootsSeen bitset
	l2pEmitted bitset
}

// Plan runs the planning pass described in §4.6 and returns the resulting
// LazyPlan, or an error if any INITM/INITL call the closure issues fails.
func Plan(ctx *Context, kind EvaluatorKind) (*LazyPlan, error) {
	assert(ctx != nil, "Plan: nil context")
	p := &LazyPlan{
		ctx:        ctx,
		kind:       kind,
		lRootsSeen: newBitset(ctx.targetTree.NumBoxes()),
		l2pEmitted: newBitset(ctx.targetTree.NumBoxes()),
	}

	var lRoots []octree.Box
	var planErr error

	root := boxPair{Src: ctx.sourceTree.Root(), Tgt: ctx.targetTree.Root()}
	traverseDualTree(ctx, root,
		func(pair boxPair) {
			if planErr != nil {
				return
			}
			p.LRList = append(p.LRList, pair)
			if kind == FMM && p.lRootsSeen.setIfClear(pair.Tgt.Index()) {
				lRoots = append(lRoots, pair.Tgt)
			}
		},
		func(pair boxPair) {
			if planErr != nil {
				return
			}
			p.P2PList = append(p.P2PList, pair)
		},
	)
	if planErr != nil {
		return nil, planErr
	}

	// Step 2: multipole closure over every LR source box.
	for _, pair := range p.LRList {
		if err := p.resolveMultipole(pair.Src); err != nil {
			return nil, err
		}
	}

	if kind == FMM {
		// Step 3: local initialization for every LR target box.
		for _, pair := range p.LRList {
			if err := p.ctx.ensureLocal(pair.Tgt); err != nil {
				return nil, err
			}
		}
		// Step 4: local closure, top-down from each local root. lRoots is
		// sorted by ascending box index (parents always precede their
		// descendants, per the build's index invariant) so that whenever
		// two local roots are on the same root-to-leaf path, the
		// shallower one's descent reaches the deeper one first and marks
		// it touched — see propagateLocal.
		sort.Slice(lRoots, func(i, j int) bool { return lRoots[i].Index() < lRoots[j].Index() })
		for _, b := range lRoots {
			if err := p.propagateLocal(b); err != nil {
				return nil, err
			}
		}
		// Every LR target box was already initialized by step 3 above, so
		// this repeat of it issues no InitL calls.
		for _, pair := range p.LRList {
			if err := p.ctx.ensureLocal(pair.Tgt); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// resolveMultipole is §4.6 step 2: ensure b's multipole exists, recording
// how it gets built. resolveMultipole recurses depth-first through b's
// children before recording b's own (child, b) M2M pairs, which is what
// makes M2MList a valid bottom-up execution order.
func (p *LazyPlan) resolveMultipole(b octree.Box) error {
	isNew, err := p.ctx.touchMultipole(b)
	if err != nil {
		return err
	}
	if !isNew {
		return nil
	}
	if b.IsLeaf() {
		p.P2MList = append(p.P2MList, b)
		return nil
	}
	for c := range b.Children() {
		if err := p.resolveMultipole(c); err != nil {
			return err
		}
		p.M2MList = append(p.M2MList, m2mPair{Child: c, Parent: b})
	}
	return nil
}

// propagateLocal is §4.6 step 4: push b's local expansion down to its
// descendants, recording L2L pairs top-down and leaves into L2PList.
//
// Two local roots can land on the same root-to-leaf path (a box and one of
// its own descendants both receive a direct M2L in the same plan), so this
// must not walk a subtree it has already walked via a different root, and
// must not emit a leaf's L2P twice if that leaf is itself reached both as
// a root and as a descendant. touchLocal's isNew gates the former: a child
// c has exactly one real parent, so c's first touch happens on whichever
// call reaches it first, and every later call finds isNew false and skips
// re-appending L2L(b, c) and re-descending into c's subtree. That leaves
// exactly one gap — a leaf entered directly as its own local root after
// already being walked as someone else's descendant, which never goes
// through the child-loop's isNew check at all — closed by l2pEmitted.
func (p *LazyPlan) propagateLocal(b octree.Box) error {
	if b.IsLeaf() {
		if p.l2pEmitted.setIfClear(b.Index()) {
			p.L2PList = append(p.L2PList, b)
		}
		return nil
	}
	for c := range b.Children() {
		isNew, err := p.ctx.touchLocal(c)
		if err != nil {
			return err
		}
		if !isNew {
			continue
		}
		p.L2LList = append(p.L2LList, l2lPair{Parent: b, Child: c})
		if err := p.propagateLocal(c); err != nil {
			return err
		}
	}
	return nil
}

// Execute replays the plan's phase lists in the fixed order §4.6
// mandates: P2M, M2M, LR (M2L or M2P), L2L, L2P, P2P. progress, if
// non-nil, is published a PhaseComplete event after each phase.
func (p *LazyPlan) Execute(progress *ProgressCaster) error {
	kern := p.ctx.kern

	for _, b := range p.P2MList {
		if err := kern.P2M(p.ctx, b); err != nil {
			return kernelErrorf("P2M(box %d)", err, b.Index())
		}
	}
	progress.publish(PhaseP2M, len(p.P2MList))

	for _, pr := range p.M2MList {
		if err := kern.M2M(p.ctx, pr.Child, pr.Parent); err != nil {
			return kernelErrorf("M2M(child %d, parent %d)", err, pr.Child.Index(), pr.Parent.Index())
		}
	}
	progress.publish(PhaseM2M, len(p.M2MList))

	for _, pr := range p.LRList {
		if p.kind == FMM {
			if err := kern.M2L(p.ctx, pr.Src, pr.Tgt); err != nil {
				return kernelErrorf("M2L(src %d, tgt %d)", err, pr.Src.Index(), pr.Tgt.Index())
			}
		} else {
			if err := kern.M2P(p.ctx, pr.Src, pr.Tgt); err != nil {
				return kernelErrorf("M2P(src %d, tgt %d)", err, pr.Src.Index(), pr.Tgt.Index())
			}
		}
	}
	progress.publish(PhaseLR, len(p.LRList))

	for _, pr := range p.L2LList {
		if err := kern.L2L(p.ctx, pr.Parent, pr.Child); err != nil {
			return kernelErrorf("L2L(parent %d, child %d)", err, pr.Parent.Index(), pr.Child.Index())
		}
	}
	progress.publish(PhaseL2L, len(p.L2LList))

	for _, b := range p.L2PList {
		if err := kern.L2P(p.ctx, b); err != nil {
			return kernelErrorf("L2P(box %d)", err, b.Index())
		}
	}
	progress.publish(PhaseL2P, len(p.L2PList))

	for _, pr := range p.P2PList {
		self := pr.Src.Tree() == pr.Tgt.Tree() && pr.Src.Index() == pr.Tgt.Index()
		if err := kern.P2P(p.ctx, pr.Src, pr.Tgt, self); err != nil {
			return kernelErrorf("P2P(src %d, tgt %d)", err, pr.Src.Index(), pr.Tgt.Index())
		}
	}
	progress.publish(PhaseP2P, len(p.P2PList))

	return nil
}

func kernelErrorf(format string, cause error, args ...any) error {
	op := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s: %v", kernel.ErrKernelFailure, op, cause)
}
