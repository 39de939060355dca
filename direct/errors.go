package direct

import "errors"

// ErrSizeMismatch is returned when the source point and charge slices
// passed to Sum/SumSelf have different lengths.
var ErrSizeMismatch = errors.New("direct: sources and charges have different lengths")
