package sketch

import "math"

// Bounds represents an axis-aligned box in document or shape-local space.
type Bounds struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewBounds creates a Bounds from a min corner and dimensions.
func NewBounds(minX, minY, width, height float64) Bounds {
	return Bounds{MinX: minX, MinY: minY, Width: width, Height: height}
}

// MaxX returns the right edge of the box.
func (b Bounds) MaxX() float64 {
	return b.MinX + b.Width
}

// MaxY returns the bottom edge of the box.
func (b Bounds) MaxY() float64 {
	return b.MinY + b.Height
}

// Center returns the center point of the box.
func (b Bounds) Center() Point {
	return Point{X: b.MinX + b.Width/2, Y: b.MinY + b.Height/2}
}

// Translate returns the box shifted by the given offset.
func (b Bounds) Translate(offset Point) Bounds {
	return Bounds{
		MinX:   b.MinX + offset.X,
		MinY:   b.MinY + offset.Y,
		Width:  b.Width,
		Height: b.Height,
	}
}

// CenterOn returns the box translated so its center coincides with center.
func (b Bounds) CenterOn(center Point) Bounds {
	return Bounds{
		MinX:   center.X - b.Width/2,
		MinY:   center.Y - b.Height/2,
		Width:  b.Width,
		Height: b.Height,
	}
}

// Contains returns true if the point is inside the box (edges inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX() && p.Y >= b.MinY && p.Y <= b.MaxY()
}

// ContainsBounds returns true if other lies entirely inside the box.
func (b Bounds) ContainsBounds(other Bounds) bool {
	return other.MinX >= b.MinX && other.MinY >= b.MinY &&
		other.MaxX() <= b.MaxX() && other.MaxY() <= b.MaxY()
}

// Intersects returns true if the two boxes overlap (edges inclusive).
func (b Bounds) Intersects(other Bounds) bool {
	return b.MinX <= other.MaxX() && other.MinX <= b.MaxX() &&
		b.MinY <= other.MaxY() && other.MinY <= b.MaxY()
}

// Union returns the smallest box containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	minX := math.Min(b.MinX, other.MinX)
	minY := math.Min(b.MinY, other.MinY)
	maxX := math.Max(b.MaxX(), other.MaxX())
	maxY := math.Max(b.MaxY(), other.MaxY())
	return Bounds{MinX: minX, MinY: minY, Width: maxX - minX, Height: maxY - minY}
}

// Approx reports whether two boxes are equal within epsilon.
func (b Bounds) Approx(other Bounds, epsilon float64) bool {
	return math.Abs(b.MinX-other.MinX) <= epsilon &&
		math.Abs(b.MinY-other.MinY) <= epsilon &&
		math.Abs(b.Width-other.Width) <= epsilon &&
		math.Abs(b.Height-other.Height) <= epsilon
}

// BoundsFromPoints computes the tight axis-aligned box enclosing pts.
// An empty slice yields the zero box.
func BoundsFromPoints(pts []Point) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Bounds{MinX: minX, MinY: minY, Width: maxX - minX, Height: maxY - minY}
}

// BoundsFromSamples computes the tight axis-aligned box enclosing the
// positions of pts. If a rotation is given, the points are first rotated
// by that angle about the center of their unrotated box, so the result
// encloses the rotated point set.
func BoundsFromSamples(pts []SamplePoint, rotation ...float64) Bounds {
	if len(pts) == 0 {
		return Bounds{}
	}
	positions := make([]Point, len(pts))
	for i, s := range pts {
		positions[i] = s.Point()
	}
	if len(rotation) > 0 && rotation[0] != 0 {
		center := BoundsFromPoints(positions).Center()
		for i, p := range positions {
			positions[i] = p.RotateAround(center, rotation[0])
		}
	}
	return BoundsFromPoints(positions)
}

// segmentIntersectsBounds returns true if the segment a-b crosses or
// touches the box. Segments fully inside the box count as intersecting.
func segmentIntersectsBounds(a, b Point, box Bounds) bool {
	if box.Contains(a) || box.Contains(b) {
		return true
	}
	corners := [4]Point{
		{X: box.MinX, Y: box.MinY},
		{X: box.MaxX(), Y: box.MinY},
		{X: box.MaxX(), Y: box.MaxY()},
		{X: box.MinX, Y: box.MaxY()},
	}
	for i := range corners {
		if segmentsIntersect(a, b, corners[i], corners[(i+1)%4]) {
			return true
		}
	}
	return false
}

// PolylineIntersectsBounds returns true if the open polyline through pts
// enters or crosses the box. A single point counts when it lies inside.
func PolylineIntersectsBounds(pts []Point, box Bounds) bool {
	if len(pts) == 0 {
		return false
	}
	if len(pts) == 1 {
		return box.Contains(pts[0])
	}
	for i := 1; i < len(pts); i++ {
		if segmentIntersectsBounds(pts[i-1], pts[i], box) {
			return true
		}
	}
	return false
}

// segmentsIntersect returns true if segments p1-p2 and p3-p4 intersect,
// including touching endpoints and collinear overlap.
func segmentsIntersect(p1, p2, p3, p4 Point) bool {
	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(p3, p4, p1):
		return true
	case d2 == 0 && onSegment(p3, p4, p2):
		return true
	case d3 == 0 && onSegment(p1, p2, p3):
		return true
	case d4 == 0 && onSegment(p1, p2, p4):
		return true
	}
	return false
}

// direction returns the orientation of point p relative to segment a-b:
// positive for counter-clockwise, negative for clockwise, zero for collinear.
func direction(a, b, p Point) float64 {
	return b.Sub(a).Cross(p.Sub(a))
}

// onSegment reports whether collinear point p lies within segment a-b.
func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
