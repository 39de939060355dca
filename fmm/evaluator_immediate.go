package fmm

import (
	"fmt"

	"github.com/lacrymose/fmm-bem-relaxed/kernel"
)

// ImmediateEvaluator executes far-field and near-field operators inline
// during a single dual-tree descent (§4.5), as opposed to the lazy
// evaluator's record-then-execute strategy (§4.6). For FMM it still needs
// the caller to bracket it with RunUpwardPass and RunDownwardPass; for
// Treecode M2P writes results directly and no downward pass is needed.
type ImmediateEvaluator struct {
	ctx  *Context
	kind EvaluatorKind
}

// NewImmediateEvaluator returns an evaluator bound to ctx, dispatching
// far-field pairs to M2L (FMM) or M2P (Treecode) per kind.
func NewImmediateEvaluator(ctx *Context, kind EvaluatorKind) *ImmediateEvaluator {
	assert(ctx != nil, "NewImmediateEvaluator: nil context")
	return &ImmediateEvaluator{ctx: ctx, kind: kind}
}

// Run performs the descent, applying operators as pairs are classified.
// For FMM, callers must run RunUpwardPass before Run and RunDownwardPass
// after it; for Treecode, Run alone is a complete evaluation once
// RunUpwardPass has populated source multipoles.
func (e *ImmediateEvaluator) Run() error {
	root := boxPair{Src: e.ctx.sourceTree.Root(), Tgt: e.ctx.targetTree.Root()}
	var runErr error

	onAccept := func(p boxPair) {
		if runErr != nil {
			return
		}
		switch e.kind {
		case FMM:
			if err := e.ctx.ensureLocal(p.Tgt); err != nil {
				runErr = err
				return
			}
			if err := e.ctx.kern.M2L(e.ctx, p.Src, p.Tgt); err != nil {
				runErr = fmt.Errorf("%w: M2L(src %d, tgt %d): %v", kernel.ErrKernelFailure, p.Src.Index(), p.Tgt.Index(), err)
			}
		case Treecode:
			if err := e.ctx.kern.M2P(e.ctx, p.Src, p.Tgt); err != nil {
				runErr = fmt.Errorf("%w: M2P(src %d, tgt %d): %v", kernel.ErrKernelFailure, p.Src.Index(), p.Tgt.Index(), err)
			}
		}
	}

	onLeafLeaf := func(p boxPair) {
		if runErr != nil {
			return
		}
		self := p.Src.Tree() == p.Tgt.Tree() && p.Src.Index() == p.Tgt.Index()
		if err := e.ctx.kern.P2P(e.ctx, p.Src, p.Tgt, self); err != nil {
			runErr = fmt.Errorf("%w: P2P(src %d, tgt %d): %v", kernel.ErrKernelFailure, p.Src.Index(), p.Tgt.Index(), err)
		}
	}

	traverseDualTree(e.ctx, root, onAccept, onLeafLeaf)
	return runErr
}

// RunUpwardPass computes every source box's multipole expansion bottom-up:
// InitM once per box, P2M on leaves, then M2M from each child into its
// parent. Boxes are visited from the highest arena index to the lowest,
// which the build guarantees puts every child strictly before its parent
// (§4.2's parent-index invariant), so a parent's M2M always sees children
// whose own expansions are already complete.
func RunUpwardPass(ctx *Context) error {
	tree := ctx.sourceTree
	for i := tree.NumBoxes() - 1; i >= 0; i-- {
		b := tree.BoxAt(i)
		if err := ctx.ensureMultipole(b); err != nil {
			return err
		}
		if b.IsLeaf() {
			if err := ctx.kern.P2M(ctx, b); err != nil {
				return fmt.Errorf("%w: P2M(box %d): %v", kernel.ErrKernelFailure, b.Index(), err)
			}
			continue
		}
		for c := range b.Children() {
			if err := ctx.kern.M2M(ctx, c, b); err != nil {
				return fmt.Errorf("%w: M2M(child %d, parent %d): %v", kernel.ErrKernelFailure, c.Index(), b.Index(), err)
			}
		}
	}
	return nil
}

// RunDownwardPass completes the FMM local side top-down: from each box
// with a local expansion (ensuring one exists for boxes an M2L never
// touched, whose contribution is then simply zero) it runs L2L into every
// child, and evaluates L2P at leaves. Boxes are visited from the lowest
// arena index to the highest, the reverse of RunUpwardPass, so a box's
// local expansion is always complete before it propagates to its
// children.
func RunDownwardPass(ctx *Context) error {
	tree := ctx.targetTree
	for i := 0; i < tree.NumBoxes(); i++ {
		b := tree.BoxAt(i)
		if err := ctx.ensureLocal(b); err != nil {
			return err
		}
		if b.IsLeaf() {
			if err := ctx.kern.L2P(ctx, b); err != nil {
				return fmt.Errorf("%w: L2P(box %d): %v", kernel.ErrKernelFailure, b.Index(), err)
			}
			continue
		}
		for c := range b.Children() {
			if err := ctx.ensureLocal(c); err != nil {
				return err
			}
			if err := ctx.kern.L2L(ctx, b, c); err != nil {
				return fmt.Errorf("%w: L2L(parent %d, child %d): %v", kernel.ErrKernelFailure, b.Index(), c.Index(), err)
			}
		}
	}
	return nil
}
