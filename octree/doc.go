/*
Package octree provides the spatial index for the FMM/treecode evaluation
core: a Morton-ordered octree built once from a set of points and addressed
afterwards only through index handles into a contiguous arena.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package octree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace channel 'fmm.octree'
func tracer() tracing.Trace {
	return tracing.Select("fmm.octree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
