// Package delaunay builds an incremental Delaunay triangulation over a
// finite set of 2-D points, closing the convex hull with a single
// artificial infinity vertex (hedge.Graph vertex index 0), and exposes
// the result as a read-only Delaunay façade over a hedge.Graph[struct{}].
//
// Construction proceeds in four stages, each grounded on the reference
// Delaunator algorithm:
//
//  1. Seed selection: the bounding-box centre, the point closest to it,
//     the point closest to that, and the third point minimizing
//     circumradius around the first two — the canonical smallest
//     circumcircle seed triangle.
//  2. A twelve-half-edge seed graph: the inner finite triangle plus
//     three hull triangles incident to the infinity vertex.
//  3. Radial insertion: points are sorted by squared distance from the
//     seed's circumcenter and inserted one at a time, each by a
//     visible-edge walk around the current hull, a six-edge triangle
//     add, and a recursive in-circle flip (legalize).
//  4. Hull extension: after each insertion the hull is folded forward
//     (and, if the visible edge was found immediately, backward) until
//     counter-clockwise orientation from the new point is restored.
//
// The only failure mode is ErrDegenerateInput: fewer than three usable
// points, or all points collinear/coincident. Complexity:
//
//	- Time:  O(n log n) expected (radial insertion order keeps each
//	  point's hull search and legalize depth small in practice; no
//	  worst-case guarantee beyond O(n^2)).
//	- Space: O(n) tables, pre-sized per hedge.NewBuilder's policy.
package delaunay
