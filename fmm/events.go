package fmm

import (
	"context"

	"github.com/guiguan/caster"
)

// Phase names one of the six fixed execution phases of a LazyPlan (§4.6).
type Phase int

const (
	PhaseP2M Phase = iota
	PhaseM2M
	PhaseLR
	PhaseL2L
	PhaseL2P
	PhaseP2P
)

func (p Phase) String() string {
	switch p {
	case PhaseP2M:
		return "P2M"
	case PhaseM2M:
		return "M2M"
	case PhaseLR:
		return "LR"
	case PhaseL2L:
		return "L2L"
	case PhaseL2P:
		return "L2P"
	case PhaseP2P:
		return "P2P"
	default:
		return "unknown"
	}
}

// PhaseComplete is published once per phase as LazyPlan.Execute finishes
// it, carrying how many operator calls the phase made.
type PhaseComplete struct {
	Phase Phase
	Count int
}

// ProgressCaster broadcasts PhaseComplete events to any number of
// observers over a caster.Caster. A nil *ProgressCaster is valid and
// simply drops events, so passing progress reporting is optional.
type ProgressCaster struct {
	cast *caster.Caster
}

// NewProgressCaster returns a ready-to-use caster. Callers subscribe with
// its Sub method and must eventually Close it to release subscribers.
func NewProgressCaster() *ProgressCaster {
	return &ProgressCaster{cast: caster.New(nil)}
}

// Sub subscribes to phase-completion events; see caster.Caster.Sub for the
// channel's buffering and lifetime semantics.
func (p *ProgressCaster) Sub(buffer int) (ch chan any, unsub func()) {
	sCh, _ := p.cast.Sub(context.Background(), uint(buffer))
	return sCh, func() { p.cast.Unsub(sCh) }
}

// Close releases the underlying broadcaster and all subscriber channels.
func (p *ProgressCaster) Close() {
	if p != nil {
		p.cast.Close()
	}
}

func (p *ProgressCaster) publish(phase Phase, count int) {
	if p == nil {
		return
	}
	p.cast.Pub(PhaseComplete{Phase: phase, Count: count})
}
