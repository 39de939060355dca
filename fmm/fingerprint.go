package fmm

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// PlanFingerprint hashes a plan's six phase lists in execution order into a
// single 64-bit digest. Two plans built from the same tree, kernel and MAC
// must produce the same fingerprint (§8's plan-stability property); this
// gives tests an O(1) equality check instead of comparing slices field by
// field.
func PlanFingerprint(p *LazyPlan) uint64 {
	h := xxhash.New()
	var buf [8]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		h.Write(buf[:])
	}

	for _, b := range p.P2MList {
		writeInt(b.Index())
	}
	for _, pr := range p.M2MList {
		writeInt(pr.Child.Index())
		writeInt(pr.Parent.Index())
	}
	for _, pr := range p.LRList {
		writeInt(pr.Src.Index())
		writeInt(pr.Tgt.Index())
	}
	for _, pr := range p.L2LList {
		writeInt(pr.Parent.Index())
		writeInt(pr.Child.Index())
	}
	for _, b := range p.L2PList {
		writeInt(b.Index())
	}
	for _, pr := range p.P2PList {
		writeInt(pr.Src.Index())
		writeInt(pr.Tgt.Index())
	}

	return h.Sum64()
}
