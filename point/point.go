package point

import "math"

// Point is a Cartesian coordinate. Inputs to the triangulator are expected
// to lie in [0,1]², but nothing in this package assumes that range.
type Point struct {
	X, Y float64
}

// Vector is shape-identical to Point but carries direction rather than
// position: it is the payload of an unbounded Voronoi edge's Auxiliary
// vertex, pointing outward from the finite end of that edge.
type Vector struct {
	X, Y float64
}

// New returns the Point at (x, y).
func New(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point offset by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}
