package fmm

import "github.com/lacrymose/fmm-bem-relaxed/octree"

// EvaluatorKind selects between the two evaluation schemes of §2.
type EvaluatorKind int

const (
	// FMM uses both multipole and local expansions: M2L far-field,
	// downward L2L/L2P propagation. O(N) asymptotic cost.
	FMM EvaluatorKind = iota
	// Treecode uses multipole expansions only, evaluated directly at
	// targets via M2P. O(N log N) asymptotic cost.
	Treecode
)

func (k EvaluatorKind) String() string {
	if k == Treecode {
		return "treecode"
	}
	return "fmm"
}

// Options configures an evaluation run.
type Options struct {
	// Bounds is the bounding box shared by source and target trees.
	Bounds octree.Bounds
	// Evaluator selects FMM or Treecode.
	Evaluator EvaluatorKind
	// MAC is the multipole acceptance criterion; required.
	MAC MACFunc
	// NCrit is the leaf capacity used when building trees internally
	// through Solve. A value <= 0 selects octree.DefaultNCrit.
	NCrit int
}

func (o Options) normalized() Options {
	if o.NCrit <= 0 {
		o.NCrit = octree.DefaultNCrit
	}
	return o
}

func (o Options) validate() error {
	if o.MAC == nil {
		return ErrMissingMAC
	}
	return nil
}
