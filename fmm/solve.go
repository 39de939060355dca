package fmm

import (
	"fmt"

	"github.com/lacrymose/fmm-bem-relaxed/kernel"
	"github.com/lacrymose/fmm-bem-relaxed/octree"
)

// Solve is the immediate-evaluator façade over §6's programmatic
// interface: build the octree(s), run the appropriate pre/post passes
// around a single dual-tree descent, and return results in original input
// order.
//
// targetPoints == nil selects the self-interaction configuration: a
// single tree serves as both source and target, and P2P calls on the
// diagonal are flagged selfInteraction so the kernel can skip the i==j
// term.
func Solve(sourcePoints, targetPoints []octree.Point, charges []kernel.Charge, kern kernel.Kernel, opts Options) ([]kernel.Result, error) {
	ctx, err := buildContext(sourcePoints, targetPoints, charges, kern, opts)
	if err != nil {
		return nil, err
	}

	if err := RunUpwardPass(ctx); err != nil {
		return nil, err
	}
	if err := NewImmediateEvaluator(ctx, opts.Evaluator).Run(); err != nil {
		return nil, err
	}
	if opts.Evaluator == FMM {
		if err := RunDownwardPass(ctx); err != nil {
			return nil, err
		}
	}
	return ctx.ResultsInOriginalInputOrder(), nil
}

// SolveLazy is Solve's record-then-execute counterpart (§4.6), returning
// the plan alongside the results so callers can inspect phase lists or
// compute a PlanFingerprint. progress may be nil.
func SolveLazy(sourcePoints, targetPoints []octree.Point, charges []kernel.Charge, kern kernel.Kernel, opts Options, progress *ProgressCaster) ([]kernel.Result, *LazyPlan, error) {
	ctx, err := buildContext(sourcePoints, targetPoints, charges, kern, opts)
	if err != nil {
		return nil, nil, err
	}

	ev, err := NewLazyEvaluator(ctx, opts.Evaluator, progress)
	if err != nil {
		return nil, nil, err
	}
	if err := ev.Run(); err != nil {
		return nil, nil, err
	}
	return ctx.ResultsInOriginalInputOrder(), ev.Plan(), nil
}

func buildContext(sourcePoints, targetPoints []octree.Point, charges []kernel.Charge, kern kernel.Kernel, opts Options) (*Context, error) {
	opts = opts.normalized()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	cfg := octree.BuildConfig{Bounds: opts.Bounds, NCrit: opts.NCrit}

	sourceTree, err := octree.Build(sourcePoints, cfg)
	if err != nil {
		return nil, fmt.Errorf("fmm: building source tree: %w", err)
	}

	targetTree := sourceTree
	if targetPoints != nil {
		targetTree, err = octree.Build(targetPoints, cfg)
		if err != nil {
			return nil, fmt.Errorf("fmm: building target tree: %w", err)
		}
	}

	return NewContext(sourceTree, targetTree, kern, opts.MAC, charges)
}
