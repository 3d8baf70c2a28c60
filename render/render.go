package render

import (
	"github.com/fogleman/gg"

	"github.com/meshkit/trimesh/delaunay"
	"github.com/meshkit/trimesh/point"
	"github.com/meshkit/trimesh/voronoi"
)

// Render draws d and its dual v onto a width x height canvas and returns
// the finished context; call (*gg.Context).SavePNG to write it out.
// Input coordinates are expected in [0,1] and are scaled to the canvas.
func Render(width, height int, d *delaunay.Delaunay, v *voronoi.Voronoi) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetRGB255(255, 255, 255)
	dc.Clear()

	w, h := float64(width), float64(height)

	drawDelaunayFaces(dc, d, w, h)
	drawDelaunayEdges(dc, d, w, h)
	drawVoronoiEdges(dc, v, w, h)
	drawDelaunayVertices(dc, d, w, h)

	return dc
}

// Save is a convenience wrapper that renders and writes the PNG in one
// call.
func Save(path string, width, height int, d *delaunay.Delaunay, v *voronoi.Voronoi) error {
	return Render(width, height, d, v).SavePNG(path)
}

func scale(p point.Point, w, h float64) (float64, float64) {
	return p.X * w, p.Y * h
}

func drawDelaunayFaces(dc *gg.Context, d *delaunay.Delaunay, w, h float64) {
	for f := 0; f < d.FaceCount(); f++ {
		verts := d.Face(f).Vertices()

		pts := make([]point.Point, 0, len(verts))
		for _, v := range verts {
			if !v.Position().IsFinite() {
				pts = nil
				break
			}
			pts = append(pts, v.Point())
		}
		if len(pts) < 3 {
			continue
		}

		if f%2 == 0 {
			dc.SetRGB255(128, 255, 255)
		} else {
			dc.SetRGB255(255, 128, 255)
		}

		x, y := scale(pts[0], w, h)
		dc.MoveTo(x, y)
		for _, p := range pts[1:] {
			x, y := scale(p, w, h)
			dc.LineTo(x, y)
		}
		dc.ClosePath()
		dc.Fill()
	}
}

func drawDelaunayEdges(dc *gg.Context, d *delaunay.Delaunay, w, h float64) {
	dc.SetRGB255(192, 192, 192)
	dc.SetLineWidth(1)

	for i := 0; i < d.EdgeCount()*2; i += 2 {
		e := d.Edge(i)
		tail, head := e.Vertices()
		if !tail.Position().IsFinite() || !head.Position().IsFinite() {
			continue
		}
		x1, y1 := scale(tail.Point(), w, h)
		x2, y2 := scale(head.Point(), w, h)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
}

func drawVoronoiEdges(dc *gg.Context, v *voronoi.Voronoi, w, h float64) {
	dc.SetLineWidth(1)

	// Each underlying half-edge is checked independently (not just one
	// per twin pair): a mixed finite/unbounded pair only matches the
	// finite-to-unbounded case from one of its two directions, so skipping
	// either direction up front would silently drop half of the rays.
	for i := 0; i < v.EdgeCount()*2; i++ {
		e := v.Edge(i)
		tail, head := e.Vertices()
		tp, hp := tail.Position(), head.Position()

		switch {
		case tp.IsFinite() && hp.IsFinite():
			dc.SetRGB255(0, 0, 0)
			x1, y1 := scale(v.Points[tp.PointIndex()], w, h)
			x2, y2 := scale(v.Points[hp.PointIndex()], w, h)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()

		case tp.IsFinite() && !hp.IsFinite():
			dc.SetRGB255(255, 0, 0)
			p1 := v.Points[tp.PointIndex()]
			p2 := p1.Add(hp.Aux())
			x1, y1 := scale(p1, w, h)
			x2, y2 := scale(p2, w, h)
			dc.DrawLine(x1, y1, x2, y2)
			dc.Stroke()

		default:
			// Both endpoints unbounded (two hull faces' duals meeting at
			// infinity): nothing finite to anchor a segment on.
		}
	}
}

func drawDelaunayVertices(dc *gg.Context, d *delaunay.Delaunay, w, h float64) {
	dc.SetRGB255(0, 0, 0)
	for i := 0; i < d.VertexCount(); i++ {
		vx := d.Vertex(i)
		if !vx.Position().IsFinite() {
			continue
		}
		x, y := scale(vx.Point(), w, h)
		dc.DrawCircle(x, y, 2)
		dc.Fill()
	}
}
