package quadtree

// BoundingBox is an axis-aligned rectangle. Y grows upwards: the "top" of a
// box is its high vertical bound.
type BoundingBox struct {
	Horizontal Interval
	Vertical   Interval
}

// NewBoundingBox builds a box from its extents. The ordering of the bounds is
// not validated.
func NewBoundingBox(minX, maxX, minY, maxY float64) BoundingBox {
	return BoundingBox{
		Horizontal: Interval{Low: minX, High: maxX},
		Vertical:   Interval{Low: minY, High: maxY},
	}
}

func (b BoundingBox) Width() float64 {
	return b.Horizontal.Length()
}

func (b BoundingBox) Height() float64 {
	return b.Vertical.Length()
}

func (b BoundingBox) HalfWidth() float64 {
	return b.Width() / 2.0
}

func (b BoundingBox) HalfHeight() float64 {
	return b.Height() / 2.0
}

func (b BoundingBox) Center() Point {
	return Point{
		X: b.Horizontal.Low + b.HalfWidth(),
		Y: b.Vertical.Low + b.HalfHeight(),
	}
}

// Contains reports whether p lies strictly inside the box.
func (b BoundingBox) Contains(p Point) bool {
	return b.Horizontal.Contains(p.X) && b.Vertical.Contains(p.Y)
}

// Intersects reports whether both the horizontal and the vertical intervals
// of the boxes overlap. Boxes sharing only an edge do not intersect.
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return b.Horizontal.Intersects(other.Horizontal) &&
		b.Vertical.Intersects(other.Vertical)
}

func (b BoundingBox) String() string {
	return b.Horizontal.String() + "x" + b.Vertical.String()
}

// The subdivision helpers split at the center and reuse the parent's outer
// edges, so the four quadrants tile the parent with no gap or overlap.

// SubdivideNE returns the right half by top half of b.
func SubdivideNE(b BoundingBox) BoundingBox {
	c := b.Center()
	return NewBoundingBox(c.X, b.Horizontal.High, c.Y, b.Vertical.High)
}

// SubdivideNW returns the left half by top half of b.
func SubdivideNW(b BoundingBox) BoundingBox {
	c := b.Center()
	return NewBoundingBox(b.Horizontal.Low, c.X, c.Y, b.Vertical.High)
}

// SubdivideSW returns the left half by bottom half of b.
func SubdivideSW(b BoundingBox) BoundingBox {
	c := b.Center()
	return NewBoundingBox(b.Horizontal.Low, c.X, b.Vertical.Low, c.Y)
}

// SubdivideSE returns the right half by bottom half of b.
func SubdivideSE(b BoundingBox) BoundingBox {
	c := b.Center()
	return NewBoundingBox(c.X, b.Horizontal.High, b.Vertical.Low, c.Y)
}
