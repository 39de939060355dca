package fmm

import "errors"

var (
	// ErrMissingMAC signals that Options.MAC was not provided.
	ErrMissingMAC = errors.New("fmm: MAC predicate not provided")
	// ErrChargeSizeMismatch signals a source-points/charges length mismatch.
	ErrChargeSizeMismatch = errors.New("fmm: charges length does not match source points")
	// ErrBoundsMismatch signals that source and target trees were built
	// from different bounding boxes, violating the dual-tree precondition.
	ErrBoundsMismatch = errors.New("fmm: source and target trees do not share a bounding box")
	// ErrInvariant signals a broken phase-ordering or dependency-closure
	// invariant, per §7's INTERNAL_INVARIANT error kind.
	ErrInvariant = errors.New("fmm: internal invariant violation")
)
