package fmm

import (
	"errors"
	"testing"

	"github.com/lacrymose/fmm-bem-relaxed/kernel"
	"github.com/lacrymose/fmm-bem-relaxed/octree"
)

func buildTestTree(t *testing.T, points []octree.Point, ncrit int) *octree.Tree {
	t.Helper()
	tree, err := octree.Build(points, octree.BuildConfig{Bounds: unitBoundsCube(), NCrit: ncrit})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return tree
}

func TestNewContextRejectsBoundsMismatch(t *testing.T) {
	src := buildTestTree(t, []octree.Point{{0.1, 0.1, 0.1}}, 1)
	other, err := octree.Build([]octree.Point{{0.1, 0.1, 0.1}}, octree.BuildConfig{
		Bounds: octree.Bounds{Lo: [3]float64{0, 0, 0}, Hi: [3]float64{2, 2, 2}},
		NCrit:  1,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	_, err = NewContext(src, other, unitKernel{}, NewThetaMAC(0.5), []kernel.Charge{1})
	if !errors.Is(err, ErrBoundsMismatch) {
		t.Fatalf("expected ErrBoundsMismatch, got %v", err)
	}
}

func TestNewContextRejectsChargeSizeMismatch(t *testing.T) {
	tree := buildTestTree(t, []octree.Point{{0.1, 0.1, 0.1}, {0.9, 0.9, 0.9}}, 1)
	_, err := NewContext(tree, tree, unitKernel{}, NewThetaMAC(0.5), []kernel.Charge{1})
	if !errors.Is(err, ErrChargeSizeMismatch) {
		t.Fatalf("expected ErrChargeSizeMismatch, got %v", err)
	}
}

func TestNewContextRejectsMissingMAC(t *testing.T) {
	tree := buildTestTree(t, []octree.Point{{0.1, 0.1, 0.1}}, 1)
	_, err := NewContext(tree, tree, unitKernel{}, nil, []kernel.Charge{1})
	if !errors.Is(err, ErrMissingMAC) {
		t.Fatalf("expected ErrMissingMAC, got %v", err)
	}
}

func TestResultsInOriginalInputOrder(t *testing.T) {
	points := []octree.Point{{0.9, 0.9, 0.9}, {0.1, 0.1, 0.1}}
	tree := buildTestTree(t, points, 1)
	ctx, err := NewContext(tree, tree, unitKernel{}, NewThetaMAC(0.5), []kernel.Charge{10, 20})
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	// permute[i] maps canonical position i back to its original input
	// index; ResultsInOriginalInputOrder must invert that.
	for i := 0; i < tree.Size(); i++ {
		orig := tree.Permute(i)
		ctx.results[i] = kernel.Result(orig)
	}
	out := ctx.ResultsInOriginalInputOrder()
	for orig, r := range out {
		if int(r) != orig {
			t.Fatalf("result[%d] = %v, want %d", orig, r, orig)
		}
	}
}
