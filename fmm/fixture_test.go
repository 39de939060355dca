package fmm

import (
	"github.com/lacrymose/fmm-bem-relaxed/kernel"
	"github.com/lacrymose/fmm-bem-relaxed/octree"
)

// unitKernel implements kernel.Kernel with K(t,s) = 1: every source
// contributes exactly its charge to every target it reaches, regardless of
// distance. It carries no interesting numerics, so a well-separated
// approximation and the direct sum agree exactly, letting tests check list
// plumbing and phase ordering without floating-point tolerance concerns.
//
// Expansions are a single *float64 holding the running sum of charges
// gathered so far: order-0, translation invariant.
type unitKernel struct{}

func (unitKernel) InitM(ctx kernel.Context, b octree.Box) error {
	ctx.SetMultipole(b, new(float64))
	return nil
}

func (unitKernel) InitL(ctx kernel.Context, b octree.Box) error {
	ctx.SetLocal(b, new(float64))
	return nil
}

func (unitKernel) P2M(ctx kernel.Context, b octree.Box) error {
	m := ctx.Multipole(b).(*float64)
	for _, c := range ctx.Charges(b) {
		*m += float64(c)
	}
	return nil
}

func (unitKernel) M2M(ctx kernel.Context, child, parent octree.Box) error {
	*ctx.Multipole(parent).(*float64) += *ctx.Multipole(child).(*float64)
	return nil
}

func (unitKernel) M2L(ctx kernel.Context, src, tgt octree.Box) error {
	*ctx.Local(tgt).(*float64) += *ctx.Multipole(src).(*float64)
	return nil
}

func (unitKernel) M2P(ctx kernel.Context, src, tgt octree.Box) error {
	m := *ctx.Multipole(src).(*float64)
	results := ctx.Results(tgt)
	for i := range results {
		results[i] += kernel.Result(m)
	}
	return nil
}

func (unitKernel) L2L(ctx kernel.Context, parent, child octree.Box) error {
	*ctx.Local(child).(*float64) += *ctx.Local(parent).(*float64)
	return nil
}

func (unitKernel) L2P(ctx kernel.Context, b octree.Box) error {
	l := *ctx.Local(b).(*float64)
	results := ctx.Results(b)
	for i := range results {
		results[i] += kernel.Result(l)
	}
	return nil
}

func (unitKernel) P2P(ctx kernel.Context, srcLeaf, tgtLeaf octree.Box, selfInteraction bool) error {
	charges := ctx.Charges(srcLeaf)
	results := ctx.Results(tgtLeaf)
	var total kernel.Result
	for _, c := range charges {
		total += kernel.Result(c)
	}
	for k := range results {
		contribution := total
		if selfInteraction {
			contribution -= kernel.Result(charges[k])
		}
		results[k] += contribution
	}
	return nil
}

// unitPairFunc is the direct-sum counterpart of unitKernel's P2P/M2P: a
// constant-1 kernel, used so direct.Sum's exact answer can be compared
// bit-for-bit against the tree evaluators' output.
func unitPairFunc(_, _ octree.Point, charge kernel.Charge) kernel.Result {
	return kernel.Result(charge)
}

func unitBoundsCube() octree.Bounds {
	return octree.Bounds{Lo: [3]float64{0, 0, 0}, Hi: [3]float64{1, 1, 1}}
}
