package octree

import (
	"fmt"
	"sort"
)

// Build sorts points by Morton code and constructs the box arena top-down
// by octant subdivision until every leaf holds at most cfg.NCrit bodies or
// sits at level Depth, where bodies with identical codes cannot be split
// any further.
func Build(points []Point, cfg BuildConfig) (*Tree, error) {
	cfg = cfg.normalized()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	coder := NewCoder(cfg.Bounds)
	n := len(points)
	codes := make([]MortonCode, n)
	for i, p := range points {
		c, err := coder.Code(p)
		if err != nil {
			return nil, fmt.Errorf("point %d: %w", i, err)
		}
		codes[i] = c
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return codes[order[a]] < codes[order[b]] })

	t := &Tree{
		coder:   coder,
		ncrit:   cfg.NCrit,
		points:  make([]Point, n),
		codes:   make([]MortonCode, n),
		permute: make([]int, n),
	}
	for i, orig := range order {
		t.points[i] = points[orig]
		t.codes[i] = codes[orig]
		t.permute[i] = orig
	}

	t.boxes = append(t.boxes, boxRecord{key: rootKey, bodyBegin: 0, bodyEnd: n})
	for i := 0; i < len(t.boxes); i++ {
		b := t.boxes[i]
		count := b.bodyEnd - b.bodyBegin
		if count <= t.ncrit || b.level() >= Depth {
			t.boxes[i].key = b.key.withLeaf()
			t.boxes[i].childBegin = b.bodyBegin
			t.boxes[i].childEnd = b.bodyEnd
			continue
		}
		firstChild := len(t.boxes)
		parentDigits := b.key.withoutFlag()
		for oct := 0; oct < 8; oct++ {
			ck := parentDigits.child(oct)
			lo, hi := ck.bounds()
			sub := t.codes[b.bodyBegin:b.bodyEnd]
			lo2 := b.bodyBegin + lowerBound(sub, lo)
			hi2 := b.bodyBegin + upperBound(sub, hi)
			if hi2 > lo2 {
				t.boxes = append(t.boxes, boxRecord{key: ck, parent: i, bodyBegin: lo2, bodyEnd: hi2})
			}
		}
		t.boxes[i].childBegin = firstChild
		t.boxes[i].childEnd = len(t.boxes)
	}

	tracer().Debugf("octree: built %d boxes for %d bodies (ncrit=%d)", len(t.boxes), n, t.ncrit)
	return t, nil
}

func lowerBound(s []MortonCode, target MortonCode) int {
	return sort.Search(len(s), func(i int) bool { return s[i] >= target })
}

func upperBound(s []MortonCode, target MortonCode) int {
	return sort.Search(len(s), func(i int) bool { return s[i] > target })
}
