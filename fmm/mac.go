package fmm

import "github.com/lacrymose/fmm-bem-relaxed/octree"

// MACFunc is the multipole acceptance criterion: a predicate deciding
// whether two boxes are well-separated enough for a far-field expansion to
// approximate their interaction.
type MACFunc func(b1, b2 octree.Box) bool

// NewThetaMAC returns the conventional MAC: accept when the center
// distance between b1 and b2 exceeds theta times the sum of their side
// lengths. theta == +Inf never accepts; theta <= 0 always accepts.
func NewThetaMAC(theta float64) MACFunc {
	return func(b1, b2 octree.Box) bool {
		if theta <= 0 {
			return true
		}
		c1, c2 := b1.Center(), b2.Center()
		var d2 float64
		for a := 0; a < 3; a++ {
			d := c1[a] - c2[a]
			d2 += d * d
		}
		side := b1.SideLength() + b2.SideLength()
		threshold := theta * side
		return d2 > threshold*threshold
	}
}
