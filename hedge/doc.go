// Package hedge implements a compact half-edge graph: three parallel
// index tables (edges, faces, vertices) shared by packages delaunay and
// voronoi.
//
// Half-edges are allocated in pairs: the twin of edge i is i^1. This is a
// design choice, not an accident — it lets a dual transformation (see
// package voronoi) rename Vertex/Next/Face fields without touching the
// pairing itself. Every allocation in this package and its callers must
// preserve that discipline.
//
// Graph is generic over the payload T carried by a vertex's Auxiliary
// position: package delaunay instantiates Graph[struct{}] (the infinity
// vertex carries no data), package voronoi instantiates
// Graph[point.Vector] (an unbounded edge's outward direction). The table
// layout and cursor logic are identical either way; only the meaning of
// Auxiliary changes.
//
// Invariants (checked by construction, not by this package at read time):
//
//	1. Twin symmetry: edges[i^1].Face != edges[i].Face, and the two
//	   endpoints of a twin pair differ.
//	2. Face cycles close: following Next^1 from faces[f].Edge returns to
//	   itself; every finite face yields exactly 3 edges.
//	3. Vertex consistency: edges[vertices[v].Edge].Vertex == v.
//	4. Every finite triangular face is wound counter-clockwise.
//	5. No finite point lies strictly inside the circumscribed circle of
//	   any finite triangle, up to double precision.
//
// Graph does not delete entries: edge flips during Delaunay construction
// overwrite table slots in place, they never shrink a table.
package hedge
