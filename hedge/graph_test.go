package hedge_test

import (
	"testing"

	"github.com/meshkit/trimesh/hedge"
	"github.com/meshkit/trimesh/point"
	"github.com/stretchr/testify/require"
)

// buildTriangle constructs the smallest possible closed half-edge graph:
// a single finite triangle with no hull (three vertices, one face, three
// undirected edges, each edge's twin belonging to a distinct "outside"
// face so the twin-symmetry invariant holds). It is enough to exercise
// the cursor views without involving package delaunay at all.
func buildTriangle(t *testing.T) *hedge.Graph[struct{}] {
	t.Helper()

	pts := []point.Point{
		point.New(0, 0),
		point.New(1, 0),
		point.New(0, 1),
	}
	b := hedge.NewBuilder[struct{}](pts)

	// Inner face (0) bounded by edges 0,2,4 (ccw); outer faces 1,2,3 each
	// start at one twin edge, and the twins 1,5,3 form the reverse cycle
	// shared by all three (this fixture does not model a real hull, it
	// only needs to satisfy Face.Edges()'s 3-edge cycle per face).
	inner := b.AddFace(hedge.FaceRecord{})
	outerAB := b.AddFace(hedge.FaceRecord{})
	outerBC := b.AddFace(hedge.FaceRecord{})
	outerCA := b.AddFace(hedge.FaceRecord{})

	// Edge pairs: (0,1)=A->B/B->A, (2,3)=B->C/C->B, (4,5)=C->A/A->C.
	// Inner cycle: 0 -> 2 -> 4 -> 0 (A->B->C->A); outer cycle: 1 -> 5 -> 3.
	// Each Next holds the twin of the following edge, since Face.Edges()
	// steps to Next^1.
	eAB := b.AddEdge(hedge.EdgeRecord{Vertex: 0, Next: 3, Face: inner})
	eBA := b.AddEdge(hedge.EdgeRecord{Vertex: 1, Next: 4, Face: outerAB})
	eBC := b.AddEdge(hedge.EdgeRecord{Vertex: 1, Next: 5, Face: inner})
	eCB := b.AddEdge(hedge.EdgeRecord{Vertex: 2, Next: 0, Face: outerBC})
	eCA := b.AddEdge(hedge.EdgeRecord{Vertex: 2, Next: 1, Face: inner})
	eAC := b.AddEdge(hedge.EdgeRecord{Vertex: 0, Next: 2, Face: outerCA})
	_ = eAB
	_ = eBA
	_ = eBC
	_ = eCB
	_ = eCA
	_ = eAC

	b.Faces[inner] = hedge.FaceRecord{Edge: 0}
	b.Faces[outerAB] = hedge.FaceRecord{Edge: 1}
	b.Faces[outerBC] = hedge.FaceRecord{Edge: 3}
	b.Faces[outerCA] = hedge.FaceRecord{Edge: 5}

	b.AddVertex(hedge.VertexRecord[struct{}]{Edge: 0, Position: hedge.Finite[struct{}](0)})
	b.AddVertex(hedge.VertexRecord[struct{}]{Edge: 2, Position: hedge.Finite[struct{}](1)})
	b.AddVertex(hedge.VertexRecord[struct{}]{Edge: 4, Position: hedge.Finite[struct{}](2)})

	return b.Build()
}

func TestGraphCounts(t *testing.T) {
	g := buildTriangle(t)
	require.Equal(t, 3, g.EdgeCount())
	require.Equal(t, 4, g.FaceCount())
	require.Equal(t, 3, g.VertexCount())
}

func TestFaceEdgesCycleLength(t *testing.T) {
	g := buildTriangle(t)
	edges := g.Face(0).Edges()
	require.Len(t, edges, 3)

	ids := make([]int, len(edges))
	for i, e := range edges {
		ids[i] = e.ID()
	}
	require.Equal(t, []int{0, 2, 4}, ids)
}

func TestEdgeVerticesAndTwin(t *testing.T) {
	g := buildTriangle(t)
	e := g.Edge(0)

	tail, head := e.Vertices()
	require.Equal(t, 0, tail.ID())
	require.Equal(t, 1, head.ID())

	require.Equal(t, e.ID()^1, e.Twin().ID())
	require.NotEqual(t, e.Face().ID(), e.Twin().Face().ID())
}

func TestVertexPositionIsFinite(t *testing.T) {
	g := buildTriangle(t)
	v := g.Vertex(0)
	require.True(t, v.Position().IsFinite())
	require.Equal(t, point.New(0, 0), v.Point())
}
