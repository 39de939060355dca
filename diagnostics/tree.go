package diagnostics

import (
	"fmt"
	"io"
	"strings"

	"github.com/lacrymose/fmm-bem-relaxed/octree"
)

// DumpTree writes a depth-first rendering of t's box structure to w, one
// line per box, indented by level. Internal boxes are colored with
// palette.Internal, leaves with palette.Leaf. A nil palette selects
// DefaultPalette; colors are suppressed automatically when stdout is not a
// terminal.
func DumpTree(w io.Writer, t *octree.Tree, palette *Palette) {
	if palette == nil {
		palette = DefaultPalette()
	}
	enabled := colorEnabled()
	dumpBox(w, t.Root(), 0, palette, enabled)
}

func dumpBox(w io.Writer, b octree.Box, depth int, palette *Palette, enabled bool) {
	indent := strings.Repeat("  ", depth)
	if b.IsLeaf() {
		begin, end := b.BodyRange()
		line := fmt.Sprintf("%sleaf  #%d  level=%d  bodies=[%d,%d)", indent, b.Index(), b.Level(), begin, end)
		if enabled {
			palette.Leaf.Fprintln(w, line)
		} else {
			fmt.Fprintln(w, line)
		}
		return
	}
	begin, end := b.BodyRange()
	line := fmt.Sprintf("%sbox   #%d  level=%d  bodies=[%d,%d)  children=%d", indent, b.Index(), b.Level(), begin, end, b.NumChildren())
	if enabled {
		palette.Internal.Fprintln(w, line)
	} else {
		fmt.Fprintln(w, line)
	}
	for c := range b.Children() {
		dumpBox(w, c, depth+1, palette, enabled)
	}
}
