package voronoi

import "errors"

// Sentinel errors returned by package voronoi.
var (
	// ErrStructuralInvariantViolation indicates a Delaunay face's three
	// corners were neither all finite nor exactly two finite with the
	// third Auxiliary in the third position — a state the construction
	// algorithm in package delaunay should never produce. Seeing this
	// means the input Delaunay graph was built or mutated outside of
	// delaunay.Build.
	ErrStructuralInvariantViolation = errors.New("voronoi: delaunay face has an unexpected corner arrangement")
)
