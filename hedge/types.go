package hedge

import "github.com/meshkit/trimesh/point"

// EdgeRecord is one directed half-edge of a pair. Its twin sits at index
// i^1 in the owning Graph's edge table. Next holds the twin of the next
// edge around this edge's face: the next edge itself is Next^1
// (counter-clockwise for finite faces), which is how Face.Edges walks.
type EdgeRecord struct {
	Vertex int // index of this edge's tail vertex
	Next   int // twin of the next edge around the face; that edge is Next^1
	Face   int // face to the right of this edge
}

// FaceRecord records one incident edge; the rest of a face's boundary is
// found by walking Next^1 from there (see Face.Edges).
type FaceRecord struct {
	Edge int
}

// Position is the tagged union stored at each vertex: either Finite,
// referring by index into the owning Graph's Points, or Auxiliary,
// carrying a T with no corresponding coordinate (package delaunay's
// infinity vertex, or package voronoi's unbounded-edge direction).
//
// Exactly one of the two is meaningful at a time; IsFinite reports which.
type Position[T any] struct {
	finite    bool
	pointIdx  int
	auxiliary T
}

// Finite returns a Position referring to the point at index i.
func Finite[T any](i int) Position[T] {
	return Position[T]{finite: true, pointIdx: i}
}

// Auxiliary returns a Position carrying a non-coordinate payload.
func Auxiliary[T any](v T) Position[T] {
	return Position[T]{finite: false, auxiliary: v}
}

// IsFinite reports whether this Position refers to an input point.
func (p Position[T]) IsFinite() bool {
	return p.finite
}

// PointIndex returns the index into Points this Position refers to. It is
// only meaningful when IsFinite reports true.
func (p Position[T]) PointIndex() int {
	return p.pointIdx
}

// Aux returns the auxiliary payload carried by this Position. It is only
// meaningful when IsFinite reports false.
func (p Position[T]) Aux() T {
	return p.auxiliary
}

// VertexRecord is the table entry backing a Vertex cursor: one outgoing
// edge and the vertex's tagged-union position.
type VertexRecord[T any] struct {
	Edge     int
	Position Position[T]
}

// Graph is a half-edge graph over a fixed point set, parameterized by the
// payload T carried at auxiliary (non-finite) vertices. A Graph is
// immutable once constructed (by package delaunay via Builder, or
// directly by package voronoi) and safe for concurrent cursor reads
// thereafter.
type Graph[T any] struct {
	Points []point.Point

	Edges    []EdgeRecord
	Faces    []FaceRecord
	Vertices []VertexRecord[T]
}

// EdgeCount returns the number of undirected edges (half the half-edge
// table length).
func (g *Graph[T]) EdgeCount() int { return len(g.Edges) / 2 }

// FaceCount returns the number of faces.
func (g *Graph[T]) FaceCount() int { return len(g.Faces) }

// VertexCount returns the number of vertices.
func (g *Graph[T]) VertexCount() int { return len(g.Vertices) }
