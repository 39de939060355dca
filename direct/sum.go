package direct

import (
	"github.com/lacrymose/fmm-bem-relaxed/kernel"
	"github.com/lacrymose/fmm-bem-relaxed/octree"
)

// PairFunc computes one source point's contribution to one target point's
// result. Tests share the same PairFunc between a fixture kernel's
// P2P/M2P implementation and direct.Sum, so the tree-based evaluators can
// be checked against an exact reference (§8's correctness-relative-to-a-
// reference property).
type PairFunc func(target, source octree.Point, charge kernel.Charge) kernel.Result

// Sum computes r[j] = Σ_i pf(targets[j], sources[i], charges[i]) for every
// target point, the O(N·M) all-pairs sum with no space partitioning at
// all.
func Sum(targets, sources []octree.Point, charges []kernel.Charge, pf PairFunc) ([]kernel.Result, error) {
	if len(sources) != len(charges) {
		return nil, ErrSizeMismatch
	}
	results := make([]kernel.Result, len(targets))
	for j, t := range targets {
		var acc kernel.Result
		for i, s := range sources {
			acc += pf(t, s, charges[i])
		}
		results[j] = acc
	}
	return results, nil
}

// SumSelf is Sum for the self-interaction configuration: points serves as
// both source and target set, and the i==j term is skipped for every
// point, matching the tree evaluators' selfInteraction handling in P2P.
func SumSelf(points []octree.Point, charges []kernel.Charge, pf PairFunc) ([]kernel.Result, error) {
	if len(points) != len(charges) {
		return nil, ErrSizeMismatch
	}
	results := make([]kernel.Result, len(points))
	for j, t := range points {
		var acc kernel.Result
		for i, s := range points {
			if i == j {
				continue
			}
			acc += pf(t, s, charges[i])
		}
		results[j] = acc
	}
	return results, nil
}
