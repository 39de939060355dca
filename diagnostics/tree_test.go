package diagnostics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lacrymose/fmm-bem-relaxed/octree"
)

func TestDumpTreeListsEveryLeaf(t *testing.T) {
	points := []octree.Point{{0.1, 0.1, 0.1}, {0.9, 0.9, 0.9}, {0.9, 0.1, 0.1}}
	tree, err := octree.Build(points, octree.BuildConfig{
		Bounds: octree.Bounds{Lo: [3]float64{0, 0, 0}, Hi: [3]float64{1, 1, 1}},
		NCrit:  1,
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	DumpTree(&buf, tree, nil)
	out := buf.String()

	if strings.Count(out, "leaf") != 3 {
		t.Fatalf("expected 3 leaf lines, got output:\n%s", out)
	}
	if !strings.Contains(out, "box   #0") {
		t.Fatalf("expected root box #0 in output:\n%s", out)
	}
}
