package quadtree

import (
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/twpayne/go-geom"
)

// R1 converts the interval to an r1.Interval.
func (i Interval) R1() r1.Interval {
	return r1.Interval{Lo: i.Low, Hi: i.High}
}

func IntervalFromR1(i r1.Interval) Interval {
	return Interval{Low: i.Lo, High: i.Hi}
}

func (p Point) R2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Rect converts the box to an r2.Rect. Note that r2 treats rectangles as
// closed, so r2.Rect.Intersects accepts touching edges where
// BoundingBox.Intersects does not.
func (b BoundingBox) Rect() r2.Rect {
	return r2.Rect{X: b.Horizontal.R1(), Y: b.Vertical.R1()}
}

func FromRect(r r2.Rect) BoundingBox {
	return BoundingBox{
		Horizontal: IntervalFromR1(r.X),
		Vertical:   IntervalFromR1(r.Y),
	}
}

// FromBounds converts the first two dimensions of a go-geom bounds. Empty
// bounds come back inverted (+Inf, -Inf) and so intersect nothing.
// Bounds without two dimensions, such as those of an empty geometry
// collection, are treated as empty.
func FromBounds(b *geom.Bounds) BoundingBox {
	if b.Layout().Stride() < 2 {
		return NewBoundingBox(math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1))
	}
	return NewBoundingBox(b.Min(0), b.Max(0), b.Min(1), b.Max(1))
}

// BoxOf returns the bounding box of a go-geom geometry.
func BoxOf(g geom.T) BoundingBox {
	return FromBounds(g.Bounds())
}
