package rng

import "errors"

// ErrInvalidBound is returned by Generate when either bound is negative.
// The legacy NETGEN generator never receives negative bounds; callers in
// netgen and grid are expected to treat this as a programmer error, not a
// recoverable input condition.
var ErrInvalidBound = errors.New("rng: negative bound")
