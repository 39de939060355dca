package diagnostics

import (
	"fmt"
	"io"

	"github.com/lacrymose/fmm-bem-relaxed/fmm"
)

// PlanDump writes a per-phase summary of a lazy-evaluator plan's list
// sizes to w, colored by phase name using palette.Phase and palette.Count.
// A nil palette selects DefaultPalette.
func PlanDump(w io.Writer, plan *fmm.LazyPlan, palette *Palette) {
	if palette == nil {
		palette = DefaultPalette()
	}
	enabled := colorEnabled()

	rows := []struct {
		name  string
		count int
	}{
		{"P2M", len(plan.P2MList)},
		{"M2M", len(plan.M2MList)},
		{"LR", len(plan.LRList)},
		{"L2L", len(plan.L2LList)},
		{"L2P", len(plan.L2PList)},
		{"P2P", len(plan.P2PList)},
	}

	for _, row := range rows {
		if !enabled {
			fmt.Fprintf(w, "%-4s %d\n", row.name, row.count)
			continue
		}
		palette.Phase.Fprintf(w, "%-4s", row.name)
		fmt.Fprint(w, " ")
		palette.Count.Fprintln(w, row.count)
	}
}
