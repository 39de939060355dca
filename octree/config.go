package octree

import "fmt"

// DefaultNCrit is the leaf capacity used when BuildConfig.NCrit is left at
// its zero value.
const DefaultNCrit = 1

// BuildConfig configures tree construction.
type BuildConfig struct {
	// Bounds is the bounding box all input points must lie within.
	Bounds Bounds
	// NCrit is the maximum number of bodies permitted in a leaf box. A
	// value <= 0 selects DefaultNCrit.
	NCrit int
}

func (cfg BuildConfig) normalized() BuildConfig {
	if cfg.NCrit <= 0 {
		cfg.NCrit = DefaultNCrit
	}
	return cfg
}

func (cfg BuildConfig) validate() error {
	for a := 0; a < 3; a++ {
		if cfg.Bounds.Lo[a] > cfg.Bounds.Hi[a] {
			return fmt.Errorf("%w: bounds lo > hi on axis %d", ErrInvalidConfig, a)
		}
	}
	return nil
}
