// Package voronoi builds the Voronoi diagram dual to a delaunay.Delaunay
// triangulation by a single pass over the Delaunay half-edge tables: no
// new geometry is computed except each finite vertex's circumcenter and
// each unbounded edge's outward-normal direction.
//
// The dual transform renames fields and replaces each Next with its twin,
// keeping every edge at its index so the i^1 twin pairing carries over
// unchanged, per the half-edge graph's paired-edge encoding:
//
//	voronoi.edges[i]  = { Vertex: delaunay.edges[i].Face,
//	                      Next:   delaunay.edges[i].Next ^ 1,
//	                      Face:   delaunay.edges[i].Vertex }
//	voronoi.faces[f]  = { Edge: delaunay.vertices[f].Edge }
//
// Each Voronoi vertex corresponds to one Delaunay (triangular) face: if
// all three corners are finite Delaunay points, the Voronoi vertex is
// finite and sits at their circumcenter; if exactly two are finite (a
// hull triangle), the Voronoi vertex is Auxiliary and carries the
// outward-normal direction of the unbounded edge instead of a position.
package voronoi
