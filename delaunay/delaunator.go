package delaunay

import (
	"context"
	"math"
	"runtime"
	"sort"

	"github.com/meshkit/trimesh/hedge"
	"github.com/meshkit/trimesh/point"
	"golang.org/x/sync/errgroup"
)

// delaunator holds the mutable construction state for one Build call. It
// mirrors the reference Delaunator's three owned tables: points is
// read-only input, b accumulates the half-edge graph under construction.
//
// Index arithmetic throughout this file (the seed's twelve half-edges,
// addTriangle's six-edge rewiring, legalize's flip) is transliterated
// directly from the reference implementation. The exact half-edge/face
// numbering it produces is an internal wiring choice, not a contract —
// only the resulting graph invariants are — but deviating from a
// working, tested wiring by hand invites subtle bugs, so this module
// keeps it verbatim.
type delaunator struct {
	points []point.Point
	b      *hedge.Builder[struct{}]
}

func (d *delaunator) circumradius(v0, v1, v2 int) float64 {
	return point.Circumradius(d.points[v0], d.points[v1], d.points[v2])
}

func (d *delaunator) circumcenter(v0, v1, v2 int) point.Point {
	return point.Circumcenter(d.points[v0], d.points[v1], d.points[v2])
}

func (d *delaunator) isCCW(v0, v1, v2 int) bool {
	return point.IsCCW(d.points[v0], d.points[v1], d.points[v2])
}

func (d *delaunator) nearlyEquals(v0, v1 int) bool {
	return point.NearlyEquals(d.points[v0], d.points[v1])
}

func (d *delaunator) inCircle(v0, v1, v2, p int) bool {
	return point.InCircle(d.points[v0], d.points[v1], d.points[v2], d.points[p])
}

// vertexPoint returns the coordinate of finite vertex v (a vertex index
// into d.b.Vertices, not a point index).
func (d *delaunator) vertexPoint(v int) point.Point {
	return d.points[d.b.Vertices[v].Position.PointIndex()]
}

// --- seed selection -------------------------------------------------------

func boundingBoxCenter(points []point.Point) (point.Point, bool) {
	if len(points) == 0 {
		return point.Point{}, false
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return point.New((minX+maxX)/2, (minY+maxY)/2), true
}

func boundingBoxCenterParallel(ctx context.Context, points []point.Point) (point.Point, bool) {
	if len(points) == 0 {
		return point.Point{}, false
	}
	shards := shardCount(len(points))
	type box struct{ minX, minY, maxX, maxY float64 }
	boxes := make([]*box, shards)

	g, _ := errgroup.WithContext(ctx)
	chunk := (len(points) + shards - 1) / shards
	for s := 0; s < shards; s++ {
		s := s
		lo, hi := s*chunk, min(len(points), (s+1)*chunk)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			b := box{minX: points[lo].X, maxX: points[lo].X, minY: points[lo].Y, maxY: points[lo].Y}
			for _, p := range points[lo:hi] {
				if p.X < b.minX {
					b.minX = p.X
				}
				if p.X > b.maxX {
					b.maxX = p.X
				}
				if p.Y < b.minY {
					b.minY = p.Y
				}
				if p.Y > b.maxY {
					b.maxY = p.Y
				}
			}
			boxes[s] = &b
			return nil
		})
	}
	_ = g.Wait() // no shard ever returns an error

	var merged box
	anySet := false
	for _, b := range boxes {
		if b == nil {
			continue
		}
		if !anySet {
			merged = *b
			anySet = true
			continue
		}
		if b.minX < merged.minX {
			merged.minX = b.minX
		}
		if b.maxX > merged.maxX {
			merged.maxX = b.maxX
		}
		if b.minY < merged.minY {
			merged.minY = b.minY
		}
		if b.maxY > merged.maxY {
			merged.maxY = b.maxY
		}
	}
	return point.New((merged.minX+merged.maxX)/2, (merged.minY+merged.maxY)/2), true
}

// distanceSquared is the shared reduction kernel for all of the
// closest-point searches below.
func distanceSquared(a, b point.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// candidate pairs an index with a tie-break key so that deterministic
// reductions (sequential or sharded) pick the same winner regardless of
// shard boundaries: ties go to the lower index.
type candidate struct {
	index int
	key   float64
}

func better(a, b candidate) candidate {
	if b.key < a.key || (b.key == a.key && b.index < a.index) {
		return b
	}
	return a
}

func findClosestToPosition(points []point.Point, center point.Point) (int, bool) {
	if len(points) == 0 {
		return 0, false
	}
	best := candidate{index: 0, key: distanceSquared(center, points[0])}
	for i := 1; i < len(points); i++ {
		best = better(best, candidate{index: i, key: distanceSquared(center, points[i])})
	}
	return best.index, true
}

func findClosestToPositionParallel(ctx context.Context, points []point.Point, center point.Point) (int, bool) {
	if len(points) == 0 {
		return 0, false
	}
	return parallelReduce(ctx, points, func(i int) candidate {
		return candidate{index: i, key: distanceSquared(center, points[i])}
	}), true
}

func findClosestToVertex(points []point.Point, index int) (int, bool) {
	found := false
	var best candidate
	for i := range points {
		if i == index || point.NearlyEquals(points[index], points[i]) {
			continue
		}
		c := candidate{index: i, key: distanceSquared(points[index], points[i])}
		if !found {
			best, found = c, true
			continue
		}
		best = better(best, c)
	}
	return best.index, found
}

func findClosestToVertexParallel(ctx context.Context, points []point.Point, index int) (int, bool) {
	const sentinel = -1
	result := parallelReduceFiltered(ctx, points, sentinel, func(i int) (candidate, bool) {
		if i == index || point.NearlyEquals(points[index], points[i]) {
			return candidate{}, false
		}
		return candidate{index: i, key: distanceSquared(points[index], points[i])}, true
	})
	return result, result != sentinel
}

func findDelaunayTriangle(points []point.Point, v1, v2 int) (int, bool) {
	found := false
	var best candidate
	for i := range points {
		if i == v1 || i == v2 || point.NearlyEquals(points[i], points[v1]) || point.NearlyEquals(points[i], points[v2]) {
			continue
		}
		// A point collinear with v1, v2 has no finite circumradius and
		// cannot complete a seed triangle.
		r := point.Circumradius(points[v1], points[v2], points[i])
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		c := candidate{index: i, key: r}
		if !found {
			best, found = c, true
			continue
		}
		best = better(best, c)
	}
	return best.index, found
}

func findDelaunayTriangleParallel(ctx context.Context, points []point.Point, v1, v2 int) (int, bool) {
	const sentinel = -1
	result := parallelReduceFiltered(ctx, points, sentinel, func(i int) (candidate, bool) {
		if i == v1 || i == v2 || point.NearlyEquals(points[i], points[v1]) || point.NearlyEquals(points[i], points[v2]) {
			return candidate{}, false
		}
		r := point.Circumradius(points[v1], points[v2], points[i])
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return candidate{}, false
		}
		return candidate{index: i, key: r}, true
	})
	return result, result != sentinel
}

// findSeedTriangle runs the five-step seed selection (bounding-box
// centre, closest point to it, closest point to that, minimal
// circumradius third point, then a CCW swap), sequentially or sharded
// across goroutines depending on opts.Parallel.
func findSeedTriangle(points []point.Point, opts Options) (i0, i1, i2 int, ok bool) {
	var center point.Point
	if opts.Parallel {
		center, ok = boundingBoxCenterParallel(context.Background(), points)
	} else {
		center, ok = boundingBoxCenter(points)
	}
	if !ok {
		return
	}

	if opts.Parallel {
		i0, ok = findClosestToPositionParallel(context.Background(), points, center)
	} else {
		i0, ok = findClosestToPosition(points, center)
	}
	if !ok {
		return
	}

	if opts.Parallel {
		i1, ok = findClosestToVertexParallel(context.Background(), points, i0)
	} else {
		i1, ok = findClosestToVertex(points, i0)
	}
	if !ok {
		return
	}

	if opts.Parallel {
		i2, ok = findDelaunayTriangleParallel(context.Background(), points, i0, i1)
	} else {
		i2, ok = findDelaunayTriangle(points, i0, i1)
	}
	if !ok {
		return
	}

	if !point.IsCCW(points[i0], points[i1], points[i2]) {
		i1, i2 = i2, i1
	}
	return i0, i1, i2, true
}

// --- seed graph ------------------------------------------------------------

// addSeedTriangle installs the infinity vertex, three finite vertices,
// four faces, and twelve paired half-edges: the inner finite triangle
// (v0, v1, v2) and three hull triangles each incident to the infinity
// vertex (index 0).
func addSeedTriangle(b *hedge.Builder[struct{}], v0, v1, v2 int) {
	b.AddVertex(hedge.VertexRecord[struct{}]{Edge: 3, Position: hedge.Auxiliary[struct{}](struct{}{})})
	b.AddVertex(hedge.VertexRecord[struct{}]{Edge: 0, Position: hedge.Finite[struct{}](v2)})
	b.AddVertex(hedge.VertexRecord[struct{}]{Edge: 7, Position: hedge.Finite[struct{}](v1)})
	b.AddVertex(hedge.VertexRecord[struct{}]{Edge: 1, Position: hedge.Finite[struct{}](v0)})

	b.AddFace(hedge.FaceRecord{Edge: 0})
	b.AddFace(hedge.FaceRecord{Edge: 1})
	b.AddFace(hedge.FaceRecord{Edge: 6})
	b.AddFace(hedge.FaceRecord{Edge: 8})

	b.AddEdge(hedge.EdgeRecord{Vertex: 3, Next: 2, Face: 1})
	b.AddEdge(hedge.EdgeRecord{Vertex: 1, Next: 6, Face: 0})
	b.AddEdge(hedge.EdgeRecord{Vertex: 0, Next: 9, Face: 0})
	b.AddEdge(hedge.EdgeRecord{Vertex: 1, Next: 4, Face: 3})
	b.AddEdge(hedge.EdgeRecord{Vertex: 3, Next: 10, Face: 0})
	b.AddEdge(hedge.EdgeRecord{Vertex: 0, Next: 1, Face: 2})
	b.AddEdge(hedge.EdgeRecord{Vertex: 2, Next: 5, Face: 1})
	b.AddEdge(hedge.EdgeRecord{Vertex: 3, Next: 8, Face: 2})
	b.AddEdge(hedge.EdgeRecord{Vertex: 1, Next: 11, Face: 1})
	b.AddEdge(hedge.EdgeRecord{Vertex: 2, Next: 0, Face: 3})
	b.AddEdge(hedge.EdgeRecord{Vertex: 2, Next: 3, Face: 2})
	b.AddEdge(hedge.EdgeRecord{Vertex: 0, Next: 7, Face: 3})
}

// --- insertion -------------------------------------------------------------

// findVisibleEdge walks hull edges forward from the cached hull cursor
// (vertices[0].Edge) until the new point sees an edge from the outside.
// walkBack reports whether the first candidate examined was already
// visible (so the caller must also extend the hull backward).
func (d *delaunator) findVisibleEdge(position int) (edge int, walkBack, found bool) {
	initial := d.b.Vertices[0].Edge
	current := initial
	currentPos := d.vertexPoint(d.b.Edges[current].Vertex)

	for {
		next := d.b.Edges[current].Next
		nextPos := d.vertexPoint(d.b.Edges[next].Vertex)

		if !point.IsCCW(d.points[position], currentPos, nextPos) {
			return current, current == initial, true
		}

		current = next
		currentPos = nextPos
		if current == initial {
			return 0, false, false
		}
	}
}

// addTriangle allocates a new finite vertex, two new faces, and six new
// half-edges against the visible edge (currentEdge -> nextEdge),
// rewiring the hull cursor and returning the edge opposite the new
// finite edge — the seed for legalize.
func (d *delaunator) addTriangle(vertex, currentEdge, nextEdge int) int {
	b := d.b
	currentVertex := b.Edges[currentEdge].Vertex
	nextVertex := b.Edges[nextEdge].Vertex
	face := b.Edges[nextEdge].Face
	oppositeEdge := b.Edges[nextEdge^1].Next

	newCurrentFace := len(b.Faces)
	newNextFace := newCurrentFace + 1

	edge := len(b.Edges)

	b.AddFace(hedge.FaceRecord{Edge: edge})
	b.AddFace(hedge.FaceRecord{Edge: edge + 4})

	b.AddEdge(hedge.EdgeRecord{Vertex: vertex, Next: currentEdge ^ 1, Face: face})
	b.AddEdge(hedge.EdgeRecord{Vertex: currentVertex, Next: edge + 4, Face: newCurrentFace})
	b.AddEdge(hedge.EdgeRecord{Vertex: 0, Next: edge + 1, Face: newNextFace})
	b.AddEdge(hedge.EdgeRecord{Vertex: vertex, Next: nextEdge, Face: newCurrentFace})
	b.AddEdge(hedge.EdgeRecord{Vertex: nextVertex, Next: edge + 2, Face: face})
	b.AddEdge(hedge.EdgeRecord{Vertex: vertex, Next: oppositeEdge, Face: newNextFace})

	b.Edges[nextEdge^1].Next = edge + 5
	b.Edges[currentEdge].Next = edge + 3
	b.Edges[oppositeEdge^1].Next = edge

	b.Edges[currentEdge^1].Face = newCurrentFace
	b.Edges[nextEdge].Face = newNextFace

	b.Vertices[vertex].Edge = edge + 1
	b.Vertices[0].Edge = edge + 3

	return oppositeEdge
}

// legalize tests the internal edge t0e0 against the Delaunay in-circle
// criterion; if illegal it flips the diagonal in place and recurses on
// the two newly exposed candidate edges. Edges incident to the infinity
// vertex (p == 0) are never flipped.
func (d *delaunator) legalize(t0e0 int) {
	b := d.b
	t1e1 := b.Edges[t0e0].Next
	p := b.Edges[t1e1].Vertex

	if p == 0 {
		return
	}

	t1e0 := t0e0 ^ 1
	t0e1 := b.Edges[t1e0].Next
	t0e2 := b.Edges[t0e1^1].Next

	va := b.Edges[t0e0].Vertex
	vb := b.Edges[t1e0].Vertex
	v0 := b.Edges[t0e1].Vertex
	v1 := b.Edges[t1e1].Vertex

	p0 := d.vertexPoint(v0)
	pa := d.vertexPoint(va)
	pb := d.vertexPoint(vb)
	p1 := d.vertexPoint(v1)

	if !point.InCircle(p0, pa, pb, p1) {
		return
	}

	t1e2 := b.Edges[t1e1^1].Next
	t0 := b.Edges[t0e2].Face
	t1 := b.Edges[t1e2].Face

	b.Vertices[va].Edge = t0e1
	b.Vertices[vb].Edge = t1e1

	b.Edges[t0e2^1].Next = t1e1
	b.Edges[t1e2^1].Next = t0e1

	b.Edges[t0e0].Vertex = b.Edges[t1e1].Vertex
	b.Edges[t1e0].Vertex = b.Edges[t0e1].Vertex

	b.Edges[t0e0].Next = t0e2
	b.Edges[t1e0].Next = t1e2
	b.Edges[t0e1^1].Next = t0e0
	b.Edges[t1e1^1].Next = t1e0

	b.Edges[t0e2].Face = t1
	b.Edges[t1e2].Face = t0

	b.Faces[t0].Edge = t0e1 ^ 1
	b.Faces[t1].Edge = t1e1 ^ 1

	d.legalize(t1e1)
	d.legalize(t1e2)
}

// constructTracked runs the full seed+insertion pipeline over points,
// returning the finished Builder or ErrDegenerateInput, plus the indices
// of any points findVisibleEdge never placed.
func constructTracked(points []point.Point, opts Options) (*hedge.Builder[struct{}], []int, error) {
	i0, i1, i2, ok := findSeedTriangle(points, opts)
	if !ok {
		return nil, nil, ErrDegenerateInput
	}

	var skipped []int

	b := hedge.NewBuilder[struct{}](points)
	d := &delaunator{points: points, b: b}

	addSeedTriangle(b, i0, i1, i2)
	center := d.circumcenter(i0, i1, i2)

	order := make([]int, len(points))
	dist := make([]float64, len(points))
	for i := range points {
		order[i] = i
		dist[i] = distanceSquared(center, points[i])
	}
	sort.Slice(order, func(a, c int) bool {
		if dist[order[a]] != dist[order[c]] {
			return dist[order[a]] < dist[order[c]]
		}
		return order[a] < order[c]
	})

	for i := 3; i < len(order); i++ {
		newPoint := order[i]
		if newPoint == i0 || newPoint == i1 || newPoint == i2 || d.nearlyEquals(order[i-1], newPoint) {
			continue
		}

		edge, walkBack, found := d.findVisibleEdge(newPoint)
		if !found {
			// The radial sort inserts nearer points first, so an interior
			// point should never still be unplaced when we reach it.
			// Tolerate it, matching the reference behavior, rather than
			// treating it as fatal.
			skipped = append(skipped, newPoint)
			continue
		}

		vertex := len(b.Vertices)
		b.AddVertex(hedge.VertexRecord[struct{}]{Edge: 0, Position: hedge.Finite[struct{}](newPoint)})

		current := edge
		next := b.Edges[current].Next
		nextVertex := b.Edges[next].Vertex
		nextPos := d.vertexPoint(nextVertex)

		previous := b.Edges[b.Edges[current^1].Next^1].Next ^ 1

		e := d.addTriangle(vertex, current, next)
		d.legalize(e)

		newEdge := b.Vertices[0].Edge

		for {
			current = next
			currentPos := nextPos

			next = b.Edges[current].Next
			nextVertex = b.Edges[next].Vertex
			nextPos = d.vertexPoint(nextVertex)

			if point.IsCCW(d.points[newPoint], currentPos, nextPos) {
				break
			}

			edge1 := b.Edges[next^1].Next
			edge2 := b.Edges[current^1].Next
			face1 := b.Edges[next].Face
			face2 := b.Edges[current].Face

			b.Edges[newEdge].Next = next

			b.Edges[edge2].Face = face1
			b.Faces[face2].Edge = current ^ 1

			b.Edges[current].Vertex = vertex
			b.Edges[current^1].Vertex = b.Edges[next].Vertex

			b.Edges[current].Next = edge1
			b.Edges[current^1].Next = newEdge ^ 1

			b.Edges[next].Face = face2
			b.Edges[next^1].Next = current
			b.Edges[edge2^1].Next = current ^ 1
			b.Edges[edge1^1].Next = edge2

			d.legalize(edge1)
		}

		if walkBack {
			current = edge
			currentVertex := b.Edges[current].Vertex
			currentPos := d.vertexPoint(currentVertex)

			previousVertex := b.Edges[previous].Vertex
			previousPos := d.vertexPoint(previousVertex)

			for !point.IsCCW(d.points[newPoint], previousPos, currentPos) {
				edge1 := b.Edges[newEdge^1].Next
				edge2 := b.Edges[current^1].Next
				face1 := b.Edges[newEdge].Face
				face2 := b.Edges[current].Face

				b.Edges[previous].Next = newEdge

				b.Edges[edge2].Face = face1
				b.Faces[face2].Edge = current ^ 1

				b.Edges[current].Vertex = b.Edges[previous].Vertex
				b.Edges[current^1].Vertex = vertex

				b.Edges[current].Next = edge1
				b.Edges[current^1].Next = previous ^ 1

				b.Edges[newEdge].Face = face2
				b.Edges[newEdge^1].Next = current
				b.Edges[edge2^1].Next = current ^ 1
				b.Edges[edge1^1].Next = edge2

				d.legalize(edge2)

				current = previous
				currentPos = previousPos

				previous = b.Edges[b.Edges[current^1].Next^1].Next ^ 1
				previousVertex = b.Edges[previous].Vertex
				previousPos = d.vertexPoint(previousVertex)
			}
		}
	}

	return b, skipped, nil
}

func shardCount(n int) int {
	procs := runtime.GOMAXPROCS(0)
	if procs < 1 {
		procs = 1
	}
	if n < procs {
		if n < 1 {
			return 1
		}
		return n
	}
	return procs
}

// parallelReduce shards points across goroutines, reducing each shard to
// a single best candidate via gen, then merges shard winners
// deterministically (lower index wins ties) in the calling goroutine.
func parallelReduce(ctx context.Context, points []point.Point, gen func(i int) candidate) int {
	shards := shardCount(len(points))
	chunk := (len(points) + shards - 1) / shards
	winners := make([]candidate, 0, shards)

	g, _ := errgroup.WithContext(ctx)
	results := make([]*candidate, shards)
	for s := 0; s < shards; s++ {
		s := s
		lo, hi := s*chunk, min(len(points), (s+1)*chunk)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			best := gen(lo)
			for i := lo + 1; i < hi; i++ {
				best = better(best, gen(i))
			}
			results[s] = &best
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		if r != nil {
			winners = append(winners, *r)
		}
	}
	best := winners[0]
	for _, w := range winners[1:] {
		best = better(best, w)
	}
	return best.index
}

// parallelReduceFiltered is parallelReduce's counterpart for reductions
// that must skip some indices (nearly-equal or self-referential points).
// sentinel is returned if no shard produced a candidate.
func parallelReduceFiltered(ctx context.Context, points []point.Point, sentinel int, gen func(i int) (candidate, bool)) int {
	shards := shardCount(len(points))
	chunk := (len(points) + shards - 1) / shards

	g, _ := errgroup.WithContext(ctx)
	results := make([]*candidate, shards)
	for s := 0; s < shards; s++ {
		s := s
		lo, hi := s*chunk, min(len(points), (s+1)*chunk)
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			var best candidate
			found := false
			for i := lo; i < hi; i++ {
				c, ok := gen(i)
				if !ok {
					continue
				}
				if !found {
					best, found = c, true
					continue
				}
				best = better(best, c)
			}
			if found {
				results[s] = &best
			}
			return nil
		})
	}
	_ = g.Wait()

	found := false
	var best candidate
	for _, r := range results {
		if r == nil {
			continue
		}
		if !found {
			best, found = *r, true
			continue
		}
		best = better(best, *r)
	}
	if !found {
		return sentinel
	}
	return best.index
}
