// Package point defines the 2-D Point and Vector types shared by the
// hedge, delaunay, and voronoi packages, along with the small set of
// geometric predicates the triangulator and its dual rely on.
//
// Orientation convention: IsCCW treats a strictly negative cross product
// as counter-clockwise, under an image (y-down) coordinate convention.
// InCircle and the outward-normal computation in package voronoi are
// written to agree with this convention; changing one without the others
// will silently invert triangle winding.
//
// All predicates operate on raw float64 coordinates with no arbitrary
// precision fallback: collinear or coincident inputs produce infinities
// or NaN. Callers are expected to filter duplicates (see package
// delaunay's NearlyEquals-based dedup) before calling InCircle or
// Circumcenter on a triple.
package point
