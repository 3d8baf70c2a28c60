package delaunay

import "errors"

// Sentinel errors returned by package delaunay.
var (
	// ErrDegenerateInput indicates the seed triangle could not be chosen:
	// fewer than three usable points, all points collinear, or all points
	// coincident. Callers typically resample and retry (see package
	// sampling and cmd/trimesh).
	ErrDegenerateInput = errors.New("delaunay: degenerate input, cannot choose a seed triangle")
)
