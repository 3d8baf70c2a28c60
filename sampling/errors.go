package sampling

import "errors"

// Sentinel errors returned by package sampling.
var (
	// ErrNonPositiveCount indicates Generate was asked for zero or fewer
	// points.
	ErrNonPositiveCount = errors.New("sampling: count must be positive")
)
