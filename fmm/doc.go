/*
Package fmm is the evaluation core of a hierarchical N-body summation
engine: a dual-tree traversal over an octree.Tree pair, classifying every
box-pair as near-field (P2P), far-field (M2L/M2P), or to-be-refined, and
two evaluator strategies over that classification — an immediate evaluator
that performs far-field operations during traversal, and a lazy evaluator
that records work into phase-ordered lists and executes the canonical
P2M → M2M → M2L/M2P → L2L → L2P → P2P operator sequence.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package fmm

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
