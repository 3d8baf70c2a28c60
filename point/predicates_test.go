package point_test

import (
	"testing"

	"github.com/meshkit/trimesh/point"
	"github.com/stretchr/testify/require"
)

func TestIsCCW(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(1, 0)
	c := point.New(1, 1)

	// Under the y-down convention used throughout this module, a→b→c here
	// is wound ccw.
	require.True(t, point.IsCCW(a, b, c))
	require.False(t, point.IsCCW(a, c, b))
}

func TestNearlyEquals(t *testing.T) {
	a := point.New(0.1, 0.2)
	b := point.New(0.1, 0.2)
	require.True(t, point.NearlyEquals(a, b))

	c := point.New(0.1+1e-6, 0.2)
	require.False(t, point.NearlyEquals(a, c))
}

func TestCircumcenterEquilateral(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(1, 0)
	c := point.New(0.5, 0.8660254037844386)

	center := point.Circumcenter(a, b, c)
	require.InDelta(t, 0.5, center.X, 1e-9)
	require.InDelta(t, 0.28867513459481287, center.Y, 1e-9)

	r2 := point.Circumradius(a, b, c)
	dx := a.X - center.X
	dy := a.Y - center.Y
	require.InDelta(t, dx*dx+dy*dy, r2, 1e-9)
}

func TestInCircle(t *testing.T) {
	a := point.New(0, 0)
	b := point.New(1, 0)
	c := point.New(0, 1)

	inside := point.New(0.25, 0.25)
	outside := point.New(5, 5)

	// a→b→c is ccw (IsCCW true), so the triple is passed as a, c, b: the
	// clockwise winding InCircle expects.
	require.True(t, point.InCircle(a, c, b, inside))
	require.False(t, point.InCircle(a, c, b, outside))
}
