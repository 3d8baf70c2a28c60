package point

import "math"

// epsilon is machine epsilon for float64, matching the reference
// implementation's use of std::f64::EPSILON for NearlyEquals.
const epsilon = 2.220446049250313e-16

// IsCCW reports whether p0, p1, p2 are wound counter-clockwise under the
// image (y-down) convention: the cross product (p1-p0) x (p2-p1) is
// strictly negative.
//
// Degenerate (collinear) triples return false; callers must not rely on
// IsCCW to detect collinearity precisely at this boundary.
func IsCCW(p0, p1, p2 Point) bool {
	return (p1.Y-p0.Y)*(p2.X-p1.X)-(p1.X-p0.X)*(p2.Y-p1.Y) < 0.0
}

// NearlyEquals reports whether a and b are within machine epsilon on both
// coordinates.
func NearlyEquals(a, b Point) bool {
	return math.Abs(a.X-b.X) <= epsilon && math.Abs(a.Y-b.Y) <= epsilon
}

// circumdelta returns the offset (dx, dy) of the circumcenter of the
// triangle (p0, p1, p2) from p0. It is the shared kernel behind
// Circumradius and Circumcenter.
func circumdelta(p0, p1, p2 Point) (dx, dy float64) {
	ax, ay := p0.X, p0.Y
	bx, by := p1.X, p1.Y
	cx, cy := p2.X, p2.Y

	ex := bx - ax
	ey := by - ay
	fx := cx - ax
	fy := cy - ay

	el := ex*ex + ey*ey
	fl := fx*fx + fy*fy
	d := 0.5 / (ex*fy - ey*fx)

	return (fy*el - ey*fl) * d, (ex*fl - fx*el) * d
}

// Circumradius returns the squared circumradius of the triangle (p0, p1, p2).
func Circumradius(p0, p1, p2 Point) float64 {
	dx, dy := circumdelta(p0, p1, p2)
	return dx*dx + dy*dy
}

// Circumcenter returns the circumcenter of the triangle (p0, p1, p2).
func Circumcenter(p0, p1, p2 Point) Point {
	dx, dy := circumdelta(p0, p1, p2)
	return Point{X: p0.X + dx, Y: p0.Y + dy}
}

// InCircle reports whether p lies strictly inside the circle through a, b, c
// when a, b, c are wound clockwise in this package's convention (IsCCW(a, b,
// c) is false), which is the winding package delaunay's legalize passes. A
// negative determinant then means inside. For a triple with IsCCW(a, b, c)
// true the sign is reversed, and InCircle reports points strictly outside.
func InCircle(a, b, c, p Point) bool {
	dx := a.X - p.X
	dy := a.Y - p.Y
	ex := b.X - p.X
	ey := b.Y - p.Y
	fx := c.X - p.X
	fy := c.Y - p.Y

	ap := dx*dx + dy*dy
	bp := ex*ex + ey*ey
	cp := fx*fx + fy*fy

	return dx*(ey*cp-bp*fy)-dy*(ex*cp-bp*fx)+ap*(ex*fy-ey*fx) < 0.0
}
