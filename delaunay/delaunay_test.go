package delaunay_test

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/meshkit/trimesh/delaunay"
	"github.com/meshkit/trimesh/hedge"
	"github.com/meshkit/trimesh/point"
	"github.com/stretchr/testify/require"
)

func square() []point.Point {
	return []point.Point{
		point.New(0.1, 0.1),
		point.New(0.9, 0.1),
		point.New(0.9, 0.9),
		point.New(0.1, 0.9),
	}
}

func equilateral() []point.Point {
	return []point.Point{
		point.New(0.1, 0.1),
		point.New(0.9, 0.1),
		point.New(0.5, 0.1+0.8*0.8660254037844386),
	}
}

// assertEulerRelation checks invariant 1: vertex/face/edge counts for n
// distinct, non-collinear finite input points.
func assertEulerRelation(t *testing.T, d *delaunay.Delaunay, n int) {
	t.Helper()
	require.Equal(t, n+1, d.VertexCount(), "vertex_count")
	require.Equal(t, 2*n-2, d.FaceCount(), "face_count")
	require.Equal(t, 3*n-3, d.EdgeCount(), "edge_count")
}

// assertTwinClosure checks invariant 2: involution and differing
// incident faces across every twin pair.
func assertTwinClosure(t *testing.T, d *delaunay.Delaunay) {
	t.Helper()
	for i := 0; i < d.EdgeCount()*2; i++ {
		e := d.Edge(i)
		require.Equal(t, i, e.Twin().Twin().ID(), "twin involution at edge %d", i)
		require.NotEqual(t, e.Face().ID(), e.Twin().Face().ID(), "twin faces must differ at edge %d", i)
	}
}

// assertFaceCycles checks invariant 3: every face yields exactly 3 edges.
func assertFaceCycles(t *testing.T, d *delaunay.Delaunay) {
	t.Helper()
	for f := 0; f < d.FaceCount(); f++ {
		edges := d.Face(f).Edges()
		require.Len(t, edges, 3, "face %d", f)
	}
}

// assertFiniteFacesCCW checks invariant 4: every finite triangular face
// is wound counter-clockwise.
func assertFiniteFacesCCW(t *testing.T, d *delaunay.Delaunay) {
	t.Helper()
	for f := 0; f < d.FaceCount(); f++ {
		verts := d.Face(f).Vertices()
		if !allFinite(verts) {
			continue
		}
		a, b, c := verts[0].Point(), verts[1].Point(), verts[2].Point()
		require.True(t, point.IsCCW(a, b, c), "face %d not CCW", f)
	}
}

// assertDelaunayProperty checks invariant 5: for every finite triangle,
// no other finite triangle's apex falls strictly inside its circumcircle.
func assertDelaunayProperty(t *testing.T, d *delaunay.Delaunay) {
	t.Helper()
	for f := 0; f < d.FaceCount(); f++ {
		verts := d.Face(f).Vertices()
		if !allFinite(verts) {
			continue
		}
		a, b, c := verts[0].Point(), verts[1].Point(), verts[2].Point()
		for g := 0; g < d.FaceCount(); g++ {
			if g == f {
				continue
			}
			other := d.Face(g).Vertices()
			if !allFinite(other) {
				continue
			}
			for _, ov := range other {
				p := ov.Point()
				if p == a || p == b || p == c {
					continue
				}
				// Faces are wound ccw (a, b, c); InCircle expects the
				// clockwise winding, so the triple is passed as a, c, b.
				require.False(t, point.InCircle(a, c, b, p), "face %d violated by point from face %d", f, g)
			}
		}
	}
}

func allFinite[T any](verts []hedge.Vertex[T]) bool {
	for _, v := range verts {
		if !v.Position().IsFinite() {
			return false
		}
	}
	return true
}

func assertAllInvariants(t *testing.T, d *delaunay.Delaunay, n int) {
	t.Helper()
	assertEulerRelation(t, d, n)
	assertTwinClosure(t, d)
	assertFaceCycles(t, d)
	assertFiniteFacesCCW(t, d)
	assertDelaunayProperty(t, d)
}

func TestBuild_Square(t *testing.T) {
	pts := square()
	d, err := delaunay.Build(pts)
	require.NoError(t, err)
	require.Empty(t, d.SkippedInteriorPoints)
	assertAllInvariants(t, d, len(pts))
}

func TestBuild_Equilateral(t *testing.T) {
	pts := equilateral()
	d, err := delaunay.Build(pts)
	require.NoError(t, err)
	assertAllInvariants(t, d, len(pts))

	finiteFaces := 0
	for f := 0; f < d.FaceCount(); f++ {
		if allFinite(d.Face(f).Vertices()) {
			finiteFaces++
		}
	}
	require.Equal(t, 1, finiteFaces)
}

func TestBuild_CollinearTrio(t *testing.T) {
	pts := []point.Point{
		point.New(0.1, 0.5),
		point.New(0.5, 0.5),
		point.New(0.9, 0.5),
	}
	_, err := delaunay.Build(pts)
	require.ErrorIs(t, err, delaunay.ErrDegenerateInput)
}

func TestBuild_TwoPoints(t *testing.T) {
	pts := []point.Point{point.New(0, 0), point.New(1, 1)}
	_, err := delaunay.Build(pts)
	require.ErrorIs(t, err, delaunay.ErrDegenerateInput)
}

func TestBuild_RandomSeeded(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	pts := make([]point.Point, 100)
	for i := range pts {
		pts[i] = point.New(rng.Float64(), rng.Float64())
	}

	d, err := delaunay.Build(pts)
	require.NoError(t, err)
	require.Empty(t, d.SkippedInteriorPoints)
	assertAllInvariants(t, d, len(pts))
}

func TestBuild_DuplicateFiltering(t *testing.T) {
	p := point.New(0.1, 0.1)
	q := point.New(0.9, 0.1)
	r := point.New(0.5, 0.9)

	d, err := delaunay.Build([]point.Point{p, p, q, r})
	require.NoError(t, err)
	assertAllInvariants(t, d, 3)
}

func TestBuild_ParallelSeedSelectionMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	pts := make([]point.Point, 64)
	for i := range pts {
		pts[i] = point.New(rng.Float64(), rng.Float64())
	}

	seq, err := delaunay.Build(pts)
	require.NoError(t, err)
	par, err := delaunay.Build(pts, delaunay.WithParallel(true))
	require.NoError(t, err)

	require.Equal(t, seq.VertexCount(), par.VertexCount())
	require.Equal(t, seq.FaceCount(), par.FaceCount())
	require.Equal(t, seq.EdgeCount(), par.EdgeCount())
	assertAllInvariants(t, par, len(pts))
}

func TestBuild_EmptyInput(t *testing.T) {
	_, err := delaunay.Build(nil)
	require.ErrorIs(t, err, delaunay.ErrDegenerateInput)
}

// BenchmarkBuild measures triangulation throughput across input sizes,
// mirroring the reference benchmark's logarithmic count sweep.
func BenchmarkBuild(b *testing.B) {
	counts := []int{100, 1000, 10000, 100000}
	rng := rand.New(rand.NewPCG(123456, 654321))
	all := make([]point.Point, counts[len(counts)-1])
	for i := range all {
		all[i] = point.New(rng.Float64(), rng.Float64())
	}

	for _, n := range counts {
		pts := all[:n]
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := delaunay.Build(pts); err != nil {
					b.Fatalf("Build failed: %v", err)
				}
			}
		})
	}
}

