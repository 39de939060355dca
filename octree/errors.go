package octree

import "errors"

var (
	// ErrInvalidConfig signals an invalid build configuration.
	ErrInvalidConfig = errors.New("octree: invalid build configuration")
	// ErrOutOfBounds signals a point lying outside the coder's bounding box.
	ErrOutOfBounds = errors.New("octree: point outside bounding box")
	// ErrSizeMismatch signals mismatched parallel slice lengths.
	ErrSizeMismatch = errors.New("octree: size mismatch")
	// ErrInvariant signals a broken arena invariant, detected by Check.
	ErrInvariant = errors.New("octree: invariant violation")
)
