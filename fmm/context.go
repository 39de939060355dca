package fmm

import (
	"fmt"

	"github.com/lacrymose/fmm-bem-relaxed/kernel"
	"github.com/lacrymose/fmm-bem-relaxed/octree"
)

// Context is the mutable collaborator evaluators and kernels share for the
// duration of one evaluation run. It owns expansion storage; the
// kernel.Context view of it exposes no "already initialized" query, so
// individual kernels cannot depend on init order (§4.4).
type Context struct {
	sourceTree, targetTree *octree.Tree
	kern                   kernel.Kernel
	mac                    MACFunc

	charges []kernel.Charge
	results []kernel.Result

	multipoles []any
	locals     []any

	// multipoleInit and localInit dedupe InitM/InitL calls across the
	// upward/immediate/downward passes (§4.5), which are separate
	// functions composed by the caller and therefore need a shared place
	// to record "already initialized" that outlives any one of them.
	// Kernels never see these; they are not part of kernel.Context. The
	// lazy evaluator's planning pass (§4.6) uses them too, through
	// touchMultipole/touchLocal, and keeps its own bitsets only for local
	// roots and emitted L2P calls.
	multipoleInit bitset
	localInit     bitset
}

// NewContext validates and constructs a box context for one evaluation
// run over sourceTree/targetTree (possibly equal, the standard
// self-interaction configuration). charges are given in the original
// order of the source points and are stored in the source tree's
// canonical order, so Charges(b) lines up with Points(b).
func NewContext(sourceTree, targetTree *octree.Tree, kern kernel.Kernel, mac MACFunc, charges []kernel.Charge) (*Context, error) {
	assert(sourceTree != nil && targetTree != nil, "NewContext: nil tree")
	if !sourceTree.SameBounds(targetTree) {
		return nil, ErrBoundsMismatch
	}
	if len(charges) != sourceTree.Size() {
		return nil, ErrChargeSizeMismatch
	}
	if mac == nil {
		return nil, ErrMissingMAC
	}
	canonical := make([]kernel.Charge, len(charges))
	for i := range canonical {
		canonical[i] = charges[sourceTree.Permute(i)]
	}
	return &Context{
		sourceTree: sourceTree,
		targetTree: targetTree,
		kern:       kern,
		mac:        mac,
		charges:    canonical,
		results:    make([]kernel.Result, targetTree.Size()),
		multipoles: make([]any, sourceTree.NumBoxes()),
		locals:     make([]any, targetTree.NumBoxes()),
	}, nil
}

// SourceTree implements kernel.Context.
func (c *Context) SourceTree() *octree.Tree { return c.sourceTree }

// TargetTree implements kernel.Context.
func (c *Context) TargetTree() *octree.Tree { return c.targetTree }

// Points implements kernel.Context.
func (c *Context) Points(b octree.Box) []octree.Point {
	return b.Tree().PointsSlice(b.BodyBegin(), b.BodyEnd())
}

// Charges implements kernel.Context.
func (c *Context) Charges(b octree.Box) []kernel.Charge {
	begin, end := b.BodyBegin(), b.BodyEnd()
	return c.charges[begin:end]
}

// Results implements kernel.Context.
func (c *Context) Results(b octree.Box) []kernel.Result {
	begin, end := b.BodyBegin(), b.BodyEnd()
	return c.results[begin:end]
}

// Multipole implements kernel.Context.
func (c *Context) Multipole(b octree.Box) any { return c.multipoles[b.Index()] }

// SetMultipole implements kernel.Context.
func (c *Context) SetMultipole(b octree.Box, m any) { c.multipoles[b.Index()] = m }

// Local implements kernel.Context.
func (c *Context) Local(b octree.Box) any { return c.locals[b.Index()] }

// SetLocal implements kernel.Context.
func (c *Context) SetLocal(b octree.Box, l any) { c.locals[b.Index()] = l }

// Kernel returns the configured kernel handle.
func (c *Context) Kernel() kernel.Kernel { return c.kern }

// touchMultipole calls InitM for b the first time it is touched across the
// lifetime of c, reporting whether this call was that first touch. Callers
// that also need to gate follow-on work (recursing only into freshly
// touched boxes, as the lazy evaluator's resolve_multipole does) use the
// isNew result; callers that just want "make sure it's initialized" use
// ensureMultipole instead.
func (c *Context) touchMultipole(b octree.Box) (isNew bool, err error) {
	if c.multipoleInit == nil {
		c.multipoleInit = newBitset(c.sourceTree.NumBoxes())
	}
	if !c.multipoleInit.setIfClear(b.Index()) {
		return false, nil
	}
	if err := c.kern.InitM(c, b); err != nil {
		return true, fmt.Errorf("%w: InitM(box %d): %v", kernel.ErrKernelFailure, b.Index(), err)
	}
	return true, nil
}

// ensureMultipole calls InitM for b exactly once across the lifetime of c.
func (c *Context) ensureMultipole(b octree.Box) error {
	_, err := c.touchMultipole(b)
	return err
}

// touchLocal is touchMultipole's counterpart for local expansions.
func (c *Context) touchLocal(b octree.Box) (isNew bool, err error) {
	if c.localInit == nil {
		c.localInit = newBitset(c.targetTree.NumBoxes())
	}
	if !c.localInit.setIfClear(b.Index()) {
		return false, nil
	}
	if err := c.kern.InitL(c, b); err != nil {
		return true, fmt.Errorf("%w: InitL(box %d): %v", kernel.ErrKernelFailure, b.Index(), err)
	}
	return true, nil
}

// ensureLocal calls InitL for b exactly once across the lifetime of c.
func (c *Context) ensureLocal(b octree.Box) error {
	_, err := c.touchLocal(b)
	return err
}

// AcceptMultipole evaluates the configured MAC predicate for a box pair.
func (c *Context) AcceptMultipole(b1, b2 octree.Box) bool { return c.mac(b1, b2) }

// ResultsInOriginalInputOrder un-permutes the accumulated target results
// back to the order targets were originally supplied in, per §6's Outputs
// contract.
func (c *Context) ResultsInOriginalInputOrder() []kernel.Result {
	out := make([]kernel.Result, len(c.results))
	for i, r := range c.results {
		out[c.targetTree.Permute(i)] = r
	}
	return out
}
