package voronoi

import (
	"github.com/meshkit/trimesh/delaunay"
	"github.com/meshkit/trimesh/hedge"
	"github.com/meshkit/trimesh/point"
)

// Voronoi is the dual of a delaunay.Delaunay: a hedge.Graph[point.Vector]
// whose vertices are either Finite (a circumcenter, one per finite
// Delaunay face) or Auxiliary (an outward-normal direction, one per hull
// Delaunay face), and whose faces correspond one-for-one to Delaunay
// vertices — including face 0, dual to the Delaunay infinity vertex,
// which has no bounded interior.
type Voronoi struct {
	*hedge.Graph[point.Vector]
}

// FromDelaunay builds the Voronoi diagram dual to d in a single pass.
// The only failure mode, ErrStructuralInvariantViolation, indicates d
// was not produced by delaunay.Build.
func FromDelaunay(d *delaunay.Delaunay) (*Voronoi, error) {
	edges := make([]hedge.EdgeRecord, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = hedge.EdgeRecord{
			Vertex: e.Face,
			Next:   e.Next ^ 1,
			Face:   e.Vertex,
		}
	}

	faces := make([]hedge.FaceRecord, len(d.Vertices))
	for i, v := range d.Vertices {
		faces[i] = hedge.FaceRecord{Edge: v.Edge}
	}

	points := make([]point.Point, 0, len(d.Faces))
	vertices := make([]hedge.VertexRecord[point.Vector], 0, len(d.Faces))

	for _, f := range d.Faces {
		e0 := f.Edge
		e1 := d.Edges[e0].Next ^ 1
		e2 := d.Edges[e1].Next ^ 1

		v0 := d.Edges[e0].Vertex
		v1 := d.Edges[e1].Vertex
		v2 := d.Edges[e2].Vertex

		p0 := d.Vertices[v0].Position
		p1 := d.Vertices[v1].Position
		p2 := d.Vertices[v2].Position

		switch {
		case p0.IsFinite() && p1.IsFinite() && p2.IsFinite():
			i0, i1, i2 := p0.PointIndex(), p1.PointIndex(), p2.PointIndex()
			c := point.Circumcenter(d.Points[i0], d.Points[i1], d.Points[i2])

			idx := len(points)
			points = append(points, c)
			vertices = append(vertices, hedge.VertexRecord[point.Vector]{
				Edge:     e0,
				Position: hedge.Finite[point.Vector](idx),
			})

		case p0.IsFinite() && p1.IsFinite():
			i0, i1 := p0.PointIndex(), p1.PointIndex()
			normal := point.Vector{
				X: d.Points[i0].Y - d.Points[i1].Y,
				Y: d.Points[i1].X - d.Points[i0].X,
			}
			vertices = append(vertices, hedge.VertexRecord[point.Vector]{
				Edge:     e0,
				Position: hedge.Auxiliary[point.Vector](normal),
			})

		default:
			return nil, ErrStructuralInvariantViolation
		}
	}

	return &Voronoi{
		Graph: &hedge.Graph[point.Vector]{
			Points:   points,
			Edges:    edges,
			Faces:    faces,
			Vertices: vertices,
		},
	}, nil
}
