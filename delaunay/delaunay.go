package delaunay

import (
	"github.com/meshkit/trimesh/hedge"
	"github.com/meshkit/trimesh/point"
)

// Delaunay is a read-only Delaunay triangulation: a hedge.Graph[struct{}]
// whose vertex 0 is the artificial infinity vertex closing the convex
// hull, and whose remaining vertices are Finite positions indexing
// Points.
type Delaunay struct {
	*hedge.Graph[struct{}]

	// Points is the input point set, unchanged and in its original order
	// (hedge.Vertex.Point dereferences into this slice via its Position's
	// point index).
	Points []point.Point

	// SkippedInteriorPoints lists, by index into Points, any points that
	// findVisibleEdge never located a visible hull edge for. This is
	// expected behavior for points strictly interior to an
	// already-triangulated region reached out of radial order by a tie in
	// the distance sort. Callers that care can log or assert this is
	// empty.
	SkippedInteriorPoints []int
}

// Build triangulates points, returning ErrDegenerateInput if fewer than
// three usable points exist or all points are collinear/coincident.
func Build(points []point.Point, opts ...Option) (*Delaunay, error) {
	o := resolveOptions(opts)

	b, skipped, err := constructTracked(points, o)
	if err != nil {
		return nil, err
	}

	return &Delaunay{
		Graph:                 b.Build(),
		Points:                points,
		SkippedInteriorPoints: skipped,
	}, nil
}
