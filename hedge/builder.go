package hedge

import "github.com/meshkit/trimesh/point"

// Builder accumulates the three half-edge tables during construction.
// Its fields are exported because package delaunay performs direct,
// index-addressed mutation of in-flight tables (edge flips,
// hull-cursor rewiring) that a narrower API would only get in the way
// of — this mirrors the reference implementation's single mutable
// Delaunator struct operating straight on its three Vec fields.
//
// Callers should size Points up front and call NewBuilder(points) once;
// Edges/Faces/Vertices then grow by appends sized to the expected
// 6n/2n/n blow-up of Delaunay construction, avoiding repeated
// reallocation for all but pathological inputs.
type Builder[T any] struct {
	Points []point.Point

	Edges    []EdgeRecord
	Faces    []FaceRecord
	Vertices []VertexRecord[T]
}

// NewBuilder returns an empty Builder over points, with its tables
// pre-allocated to the expected blow-up: edges ≈ 6·(n+1),
// faces ≈ 2·(n+1), vertices ≈ n+1.
func NewBuilder[T any](points []point.Point) *Builder[T] {
	n := len(points) + 1
	return &Builder[T]{
		Points:   points,
		Edges:    make([]EdgeRecord, 0, 6*n),
		Faces:    make([]FaceRecord, 0, 2*n),
		Vertices: make([]VertexRecord[T], 0, n),
	}
}

// AddEdge appends an edge record and returns its index.
func (b *Builder[T]) AddEdge(r EdgeRecord) int {
	b.Edges = append(b.Edges, r)
	return len(b.Edges) - 1
}

// AddFace appends a face record and returns its index.
func (b *Builder[T]) AddFace(r FaceRecord) int {
	b.Faces = append(b.Faces, r)
	return len(b.Faces) - 1
}

// AddVertex appends a vertex record and returns its index.
func (b *Builder[T]) AddVertex(r VertexRecord[T]) int {
	b.Vertices = append(b.Vertices, r)
	return len(b.Vertices) - 1
}

// Build finalizes the tables into an immutable Graph. It performs no
// invariant checking itself — the caller (package delaunay's
// legalize/walk steps) is responsible for leaving the tables in a state
// satisfying the five half-edge invariants before calling Build. Package
// voronoi does not use Builder; it assembles its Graph directly.
func (b *Builder[T]) Build() *Graph[T] {
	return &Graph[T]{
		Points:   b.Points,
		Edges:    b.Edges,
		Faces:    b.Faces,
		Vertices: b.Vertices,
	}
}
