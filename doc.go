// Package trimesh samples random points in the unit square, builds their
// incremental Delaunay triangulation, derives the dual Voronoi diagram,
// and rasterizes both to a PNG.
//
// Everything is organized under a handful of subpackages:
//
//	point/    — 2D coordinates, vectors, and the orientation/circumcircle
//	            predicates the triangulation relies on
//	hedge/    — the shared paired half-edge graph skeleton behind both the
//	            Delaunay and Voronoi structures
//	delaunay/ — incremental construction (Delaunator-style): seed triangle
//	            selection, radial insertion, edge-flip legalization
//	voronoi/  — the one-pass dual transform and vertex classification
//	sampling/ — seeded random point generation
//	config/   — settings resolution (file, environment, flags)
//	render/   — PNG rasterization of both graphs
//	cmd/trimesh — the command-line entry point tying it all together
package trimesh
