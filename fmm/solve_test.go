package fmm

import (
	"testing"

	"github.com/lacrymose/fmm-bem-relaxed/direct"
	"github.com/lacrymose/fmm-bem-relaxed/kernel"
	"github.com/lacrymose/fmm-bem-relaxed/octree"
)

func scatteredPoints(n int) []octree.Point {
	points := make([]octree.Point, n)
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n)
		points[i] = octree.Point{f, 1 - f, 0.5*f + 0.25}
	}
	return points
}

func chargesFor(points []octree.Point) []kernel.Charge {
	charges := make([]kernel.Charge, len(points))
	for i := range charges {
		charges[i] = kernel.Charge(i + 1)
	}
	return charges
}

// TestFMMResultsEqualDirectSumWhenMACNeverAccepts implements §8's
// correctness property: with a MAC that never accepts, every interaction
// is computed via P2P, so the tree-based evaluator's result must equal the
// direct O(N^2) sum exactly (no far-field approximation is ever taken).
func TestFMMResultsEqualDirectSumWhenMACNeverAccepts(t *testing.T) {
	points := scatteredPoints(17)
	charges := chargesFor(points)

	opts := Options{Bounds: unitBoundsCube(), Evaluator: FMM, MAC: NewThetaMAC(1e300), NCrit: 2}
	got, err := Solve(points, nil, charges, unitKernel{}, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want, err := direct.SumSelf(points, charges, unitPairFunc)
	if err != nil {
		t.Fatalf("direct.SumSelf: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("len(got)=%d len(want)=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTreecodeResultsEqualDirectSumWhenMACNeverAccepts(t *testing.T) {
	points := scatteredPoints(11)
	charges := chargesFor(points)

	opts := Options{Bounds: unitBoundsCube(), Evaluator: Treecode, MAC: NewThetaMAC(1e300), NCrit: 1}
	got, err := Solve(points, nil, charges, unitKernel{}, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want, err := direct.SumSelf(points, charges, unitPairFunc)
	if err != nil {
		t.Fatalf("direct.SumSelf: %v", err)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestSolveLazyAgreesWithImmediate checks the two evaluator strategies
// (§4.5 vs §4.6) compute the same results for the same configuration —
// they classify the identical set of interactions, only ordering and
// bookkeeping differ.
func TestSolveLazyAgreesWithImmediate(t *testing.T) {
	points := scatteredPoints(23)
	charges := chargesFor(points)
	opts := Options{Bounds: unitBoundsCube(), Evaluator: FMM, MAC: NewThetaMAC(0.6), NCrit: 3}

	immediate, err := Solve(points, nil, charges, unitKernel{}, opts)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	lazy, _, err := SolveLazy(points, nil, charges, unitKernel{}, opts, nil)
	if err != nil {
		t.Fatalf("SolveLazy: %v", err)
	}
	for i := range immediate {
		if immediate[i] != lazy[i] {
			t.Errorf("result[%d]: immediate=%v lazy=%v", i, immediate[i], lazy[i])
		}
	}
}

// TestSolveAlwaysAcceptSingleLevelCollapsesToFarFieldPlusP2P exercises the
// single-level collapse property: a one-leaf tree under a MAC that always
// accepts produces both a far-field operation and a P2P, root against
// itself. A single-box tree can never be split, so the root pair is also
// the only leaf-leaf pair the descent will ever see; unlike an ordinary
// leaf-leaf pair reached by splitting a larger tree, it isn't allowed to
// lose its P2P just because the MAC also happens to accept it.
func TestSolveAlwaysAcceptSingleLevelCollapsesToFarFieldPlusP2P(t *testing.T) {
	points := []octree.Point{{0.5, 0.5, 0.5}}
	charges := []kernel.Charge{7}
	opts := Options{Bounds: unitBoundsCube(), Evaluator: FMM, MAC: NewThetaMAC(0), NCrit: 1}

	ctx, err := buildContext(points, nil, charges, unitKernel{}, opts)
	if err != nil {
		t.Fatalf("buildContext: %v", err)
	}
	if !ctx.sourceTree.Root().IsLeaf() {
		t.Fatalf("expected single-point tree to collapse to a leaf root")
	}
	plan, err := Plan(ctx, FMM)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if len(plan.LRList) != 1 {
		t.Fatalf("LRList = %v, want exactly one root-vs-root far-field op", plan.LRList)
	}
	if len(plan.P2PList) != 1 {
		t.Fatalf("P2PList = %v, want exactly one root-vs-root P2P: a single-box tree can't lose its self P2P to the MAC", plan.P2PList)
	}
}

func TestSolveRejectsMissingMAC(t *testing.T) {
	points := scatteredPoints(3)
	charges := chargesFor(points)
	opts := Options{Bounds: unitBoundsCube(), Evaluator: FMM, NCrit: 1}
	if _, err := Solve(points, nil, charges, unitKernel{}, opts); err == nil {
		t.Fatalf("expected an error when MAC is not provided")
	}
}
