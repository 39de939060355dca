package kernel

import "github.com/lacrymose/fmm-bem-relaxed/octree"

// Charge is a source point's carried quantity.
type Charge float64

// Result is a target point's accumulated kernel sum.
type Result float64

// Context is the capability a Kernel needs from its caller: point/charge
// spans over leaves, a mutable result span per target leaf, and mutable
// multipole/local expansion slots per box. Expansion shapes are entirely
// kernel-defined; Context stores them as opaque values and never inspects
// them.
//
// Context is narrow by design so that a concrete context type (see package
// fmm) can satisfy it without kernel importing fmm, avoiding the import
// cycle a template-parameterized kernel would otherwise force.
type Context interface {
	// SourceTree and TargetTree are possibly equal; equal trees are the
	// standard self-interaction configuration.
	SourceTree() *octree.Tree
	TargetTree() *octree.Tree

	// Points and Charges return the source spans for leaf box b, which
	// must belong to SourceTree.
	Points(b octree.Box) []octree.Point
	Charges(b octree.Box) []Charge

	// Results returns the mutable target result span for leaf box b,
	// which must belong to TargetTree. Kernel operators accumulate into
	// it additively.
	Results(b octree.Box) []Result

	// Multipole and Local return the current expansion for box b (nil
	// until InitM/InitL has been called for it), and SetMultipole/
	// SetLocal install a new one. Kernels typically install a pointer to
	// their own expansion struct and mutate it in place on subsequent
	// calls.
	Multipole(b octree.Box) any
	SetMultipole(b octree.Box, m any)
	Local(b octree.Box) any
	SetLocal(b octree.Box, l any)
}

// Kernel is the contract §4.7 requires of the external kernel
// collaborator. All operations are additive on their output buffers;
// InitM/InitL establish the zero element for a box's expansion.
type Kernel interface {
	// InitM allocates and zeroes the multipole expansion for b.
	InitM(ctx Context, b octree.Box) error
	// InitL allocates and zeroes the local expansion for b.
	InitL(ctx Context, b octree.Box) error

	// P2M accumulates a source leaf's charges into its own multipole
	// expansion.
	P2M(ctx Context, b octree.Box) error
	// M2M adds child's shifted multipole into parent's.
	M2M(ctx Context, child, parent octree.Box) error
	// M2L adds src's translated multipole into tgt's local expansion.
	M2L(ctx Context, src, tgt octree.Box) error
	// M2P adds src's multipole contribution directly into tgt's target
	// results.
	M2P(ctx Context, src, tgt octree.Box) error
	// L2L translates parent's local expansion into child's.
	L2L(ctx Context, parent, child octree.Box) error
	// L2P evaluates a target leaf's local expansion at its points, adding
	// into its results.
	L2P(ctx Context, b octree.Box) error
	// P2P computes the direct pairwise sum of srcLeaf's charges into
	// tgtLeaf's results. selfInteraction is true when srcLeaf and
	// tgtLeaf are the same box in the same tree, letting the kernel skip
	// the i==j self-term without comparing handles itself.
	P2P(ctx Context, srcLeaf, tgtLeaf octree.Box, selfInteraction bool) error
}
