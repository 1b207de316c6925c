package quadtree

import (
	"strconv"
)

// Interval is a 1D open range. Low <= High is expected but not enforced.
type Interval struct {
	Low  float64
	High float64
}

// Contains reports whether p lies strictly inside the interval.
func (i Interval) Contains(p float64) bool {
	return p < i.High && p > i.Low
}

// Intersects reports whether the open intervals overlap.
// Intervals that only touch at an endpoint do not intersect, and a zero-width
// interval never intersects another zero-width interval.
func (i Interval) Intersects(other Interval) bool {
	return i.Low < other.High && i.High > other.Low
}

func (i Interval) Length() float64 {
	return i.High - i.Low
}

func (i Interval) Center() float64 {
	return i.Low + i.Length()/2.0
}

func (i Interval) String() string {
	return "(" + strconv.FormatFloat(i.Low, 'f', -1, 64) + "," + strconv.FormatFloat(i.High, 'f', -1, 64) + ")"
}
