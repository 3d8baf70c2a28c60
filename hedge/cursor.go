package hedge

import "github.com/meshkit/trimesh/point"

// Edge is a read-only cursor onto one half-edge of g. It holds only a
// reference plus an index; it does not own any state.
type Edge[T any] struct {
	g   *Graph[T]
	idx int
}

// Edge returns a cursor onto half-edge i.
func (g *Graph[T]) Edge(i int) Edge[T] { return Edge[T]{g: g, idx: i} }

// ID returns the underlying half-edge index.
func (e Edge[T]) ID() int { return e.idx }

// Vertices returns the (tail, head) vertex cursors of this half-edge.
func (e Edge[T]) Vertices() (tail, head Vertex[T]) {
	tail = e.g.Vertex(e.g.Edges[e.idx].Vertex)
	head = e.g.Vertex(e.g.Edges[e.idx^1].Vertex)
	return
}

// Twin returns the paired half-edge (idx^1).
func (e Edge[T]) Twin() Edge[T] { return e.g.Edge(e.idx ^ 1) }

// Next returns the half-edge stored in this edge's Next field: the twin of
// the next half-edge around the same face (that edge is Next().Twin()).
func (e Edge[T]) Next() Edge[T] { return e.g.Edge(e.g.Edges[e.idx].Next) }

// Face returns the face to the right of this half-edge.
func (e Edge[T]) Face() Face[T] { return e.g.Face(e.g.Edges[e.idx].Face) }

// Face is a read-only cursor onto one face of g.
type Face[T any] struct {
	g   *Graph[T]
	idx int
}

// Face returns a cursor onto face f.
func (g *Graph[T]) Face(f int) Face[T] { return Face[T]{g: g, idx: f} }

// ID returns the underlying face index.
func (f Face[T]) ID() int { return f.idx }

// Edges lazily yields the half-edges bounding f, starting at
// Faces[f].Edge and following Edges[*].Next^1 — the twin of the next
// edge, which is the next edge of the *same* face under this encoding —
// until the walk returns to the start. Finite faces yield exactly 3
// edges.
func (f Face[T]) Edges() []Edge[T] {
	start := f.g.Faces[f.idx].Edge
	out := []Edge[T]{f.g.Edge(start)}
	cur := f.g.Edges[start].Next ^ 1
	for cur != start {
		out = append(out, f.g.Edge(cur))
		cur = f.g.Edges[cur].Next ^ 1
	}
	return out
}

// Vertices returns the first endpoint of each edge bounding f, in order.
func (f Face[T]) Vertices() []Vertex[T] {
	edges := f.Edges()
	out := make([]Vertex[T], len(edges))
	for i, e := range edges {
		tail, _ := e.Vertices()
		out[i] = tail
	}
	return out
}

// Vertex is a read-only cursor onto one vertex of g.
type Vertex[T any] struct {
	g   *Graph[T]
	idx int
}

// Vertex returns a cursor onto vertex v.
func (g *Graph[T]) Vertex(v int) Vertex[T] { return Vertex[T]{g: g, idx: v} }

// ID returns the underlying vertex index.
func (v Vertex[T]) ID() int { return v.idx }

// Position returns this vertex's tagged-union position.
func (v Vertex[T]) Position() Position[T] {
	return v.g.Vertices[v.idx].Position
}

// Point returns the coordinate of a finite vertex. Callers must check
// Position().IsFinite() first; Point panics on an auxiliary vertex.
func (v Vertex[T]) Point() point.Point {
	pos := v.Position()
	return v.g.Points[pos.PointIndex()]
}

// OutEdge returns the vertex's cached outgoing half-edge.
func (v Vertex[T]) OutEdge() Edge[T] { return v.g.Edge(v.g.Vertices[v.idx].Edge) }
