package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalIntersects(t *testing.T) {
	tests := []struct {
		a, b Interval
		want bool
	}{
		{Interval{0, 2}, Interval{3, 5}, false},
		{Interval{0, 2}, Interval{0, 2}, true},
		{Interval{3, 5}, Interval{0, 2}, false},
		{Interval{0, 2}, Interval{1, 3}, true},
		{Interval{1, 3}, Interval{0, 2}, true},
		{Interval{1, 2}, Interval{0, 3}, true},
		{Interval{0, 3}, Interval{1, 2}, true},
		// touching endpoints
		{Interval{0, 1}, Interval{1, 2}, false},
		{Interval{1, 2}, Interval{0, 1}, false},
		// zero width
		{Interval{1, 1}, Interval{0, 2}, true},
		{Interval{0, 2}, Interval{1, 1}, true},
		{Interval{1, 1}, Interval{1, 1}, false},
		{Interval{0, 0}, Interval{0, 2}, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.a.Intersects(tc.b), "%s & %s", tc.a, tc.b)
	}
}

func TestIntervalContains(t *testing.T) {
	i := Interval{0, 2}
	assert.False(t, i.Contains(0))
	assert.True(t, i.Contains(1))
	assert.False(t, i.Contains(2))
	assert.False(t, i.Contains(-1))
	assert.Equal(t, 2.0, i.Length())
	assert.Equal(t, 1.0, i.Center())
}

func testBoxIntersection(t *testing.T, a, b BoundingBox, expect bool, msg string) {
	t.Helper()
	if a.Intersects(b) != expect {
		t.Errorf("Unexpected result %v for '%s' checking intersection %s %s", !expect, msg, a, b)
	}
}

func TestBoundingBoxIntersects(t *testing.T) {
	box := NewBoundingBox(-2, 2, -2, 2)

	testBoxIntersection(t, box, box, true, "Same box")
	testBoxIntersection(t, box, NewBoundingBox(-1, 1, -1, 1), true, "Inside")
	testBoxIntersection(t, box, NewBoundingBox(-3, 3, -3, 3), true, "Outside contains")
	testBoxIntersection(t, box, NewBoundingBox(1, 5, 1, 5), true, "Corner overlap")
	testBoxIntersection(t, box, NewBoundingBox(-1, 1, -5, 5), true, "Cross")

	testBoxIntersection(t, box, NewBoundingBox(2, 4, -2, 2), false, "Right edge")
	testBoxIntersection(t, box, NewBoundingBox(-4, -2, -2, 2), false, "Left edge")
	testBoxIntersection(t, box, NewBoundingBox(-2, 2, 2, 4), false, "Top edge")
	testBoxIntersection(t, box, NewBoundingBox(2, 4, 2, 4), false, "NE corner")
	testBoxIntersection(t, box, NewBoundingBox(-1, 1, 3, 4), false, "Above")
	testBoxIntersection(t, box, NewBoundingBox(3, 4, -1, 1), false, "Beside")

	// Only one axis overlapping is not enough.
	testBoxIntersection(t, box, NewBoundingBox(-1, 1, 5, 6), false, "Horizontal only")
	testBoxIntersection(t, box, NewBoundingBox(5, 6, -1, 1), false, "Vertical only")
}

func TestBoundingBoxDerived(t *testing.T) {
	b := NewBoundingBox(1, 4, 2, 7)
	assert.Equal(t, 3.0, b.Width())
	assert.Equal(t, 5.0, b.Height())
	assert.Equal(t, 1.5, b.HalfWidth())
	assert.Equal(t, 2.5, b.HalfHeight())
	assert.Equal(t, Point{2.5, 4.5}, b.Center())
	assert.Equal(t, "(1,4)x(2,7)", b.String())
	assert.Equal(t, "[2.5,4.5]", b.Center().String())

	assert.True(t, b.Contains(Point{2, 3}))
	assert.False(t, b.Contains(Point{1, 3}))
	assert.False(t, b.Contains(Point{2, 8}))
}

func TestSubdivide(t *testing.T) {
	root := NewBoundingBox(-10, 10, -10, 10)
	assert.Equal(t, NewBoundingBox(0, 10, 0, 10), SubdivideNE(root))
	assert.Equal(t, NewBoundingBox(-10, 0, 0, 10), SubdivideNW(root))
	assert.Equal(t, NewBoundingBox(-10, 0, -10, 0), SubdivideSW(root))
	assert.Equal(t, NewBoundingBox(0, 10, -10, 0), SubdivideSE(root))

	for q := NE; q <= SE; q++ {
		assert.Equal(t, root.HalfWidth(), q.Subdivide(root).Width(), q.String())
		assert.Equal(t, root.HalfHeight(), q.Subdivide(root).Height(), q.String())
	}
}

func TestSubdivideTiles(t *testing.T) {
	b := NewBoundingBox(1, 4, 2, 7)
	ne, nw, sw, se := SubdivideNE(b), SubdivideNW(b), SubdivideSW(b), SubdivideSE(b)

	// Shared edges line up exactly.
	require.Equal(t, ne.Horizontal, se.Horizontal)
	require.Equal(t, nw.Horizontal, sw.Horizontal)
	require.Equal(t, ne.Vertical, nw.Vertical)
	require.Equal(t, se.Vertical, sw.Vertical)
	require.Equal(t, nw.Horizontal.High, ne.Horizontal.Low)
	require.Equal(t, sw.Vertical.High, nw.Vertical.Low)

	// Outer edges are the parent's.
	require.Equal(t, b.Horizontal.Low, nw.Horizontal.Low)
	require.Equal(t, b.Horizontal.High, ne.Horizontal.High)
	require.Equal(t, b.Vertical.Low, sw.Vertical.Low)
	require.Equal(t, b.Vertical.High, nw.Vertical.High)

	// No two quadrants overlap.
	quads := []BoundingBox{ne, nw, sw, se}
	for i := range quads {
		for j := range quads {
			if i != j {
				assert.False(t, quads[i].Intersects(quads[j]), "%s %s", Quadrant(i), Quadrant(j))
			}
		}
	}
}
