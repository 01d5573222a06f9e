package sketch

import (
	"fmt"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path in shape-local space.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo draws a quadratic Bezier curve through the given control
// point to pt.
func (p *Path) QuadraticTo(ctrl, pt Point) {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.current = pt
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path's elements. The returned slice is the
// path's backing store; callers must not modify it.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// String renders the path as SVG path data.
func (p *Path) String() string {
	var sb strings.Builder
	for i, elem := range p.elements {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			fmt.Fprintf(&sb, "M%g,%g", e.Point.X, e.Point.Y)
		case LineTo:
			fmt.Fprintf(&sb, "L%g,%g", e.Point.X, e.Point.Y)
		case QuadTo:
			fmt.Fprintf(&sb, "Q%g,%g %g,%g", e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// quadSteps is the number of line segments each quadratic curve is
// flattened into. Stroke outlines are already densely sampled, so a
// small fixed subdivision is accurate enough for rasterization.
const quadSteps = 8

// Flatten converts the path to a polygon, subdividing curves into line
// segments. Only single-subpath paths (as produced by OutlinePath) are
// supported; a second MoveTo starts overwriting the polygon.
func (p *Path) Flatten() []Point {
	var poly []Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			poly = append(poly[:0], e.Point)
		case LineTo:
			poly = append(poly, e.Point)
		case QuadTo:
			if len(poly) == 0 {
				poly = append(poly, e.Control)
			}
			from := poly[len(poly)-1]
			for step := 1; step <= quadSteps; step++ {
				t := float64(step) / quadSteps
				a := from.Lerp(e.Control, t)
				b := e.Control.Lerp(e.Point, t)
				poly = append(poly, a.Lerp(b, t))
			}
		case Close:
			if len(poly) > 0 {
				poly = append(poly, poly[0])
			}
		}
	}
	return poly
}

// OutlinePath converts a closed outline polygon into a smooth path by
// drawing quadratic curves through each vertex to the midpoint of the
// following edge. Outlines with fewer than three points degrade to a
// straight polygon.
func OutlinePath(outline []Point) *Path {
	p := NewPath()
	if len(outline) == 0 {
		return p
	}
	if len(outline) < 3 {
		p.MoveTo(outline[0])
		for _, pt := range outline[1:] {
			p.LineTo(pt)
		}
		p.ClosePath()
		return p
	}
	p.MoveTo(outline[0].Lerp(outline[1], 0.5))
	for i := 1; i < len(outline); i++ {
		next := outline[(i+1)%len(outline)]
		p.QuadraticTo(outline[i], outline[i].Lerp(next, 0.5))
	}
	p.QuadraticTo(outline[0], outline[0].Lerp(outline[1], 0.5))
	p.ClosePath()
	return p
}

// Dot is the degenerate rendering of a stroke with fewer than two
// sample points: a filled circle standing in for the not-yet-drawn or
// single-click shape.
type Dot struct {
	Center Point
	Radius float64
}

// Rendering is the drawable form of a shape in shape-local space.
// Exactly one of Dot or Path is set.
type Rendering struct {
	// Dot is non-nil for degenerate strokes rendered as a dot.
	Dot *Dot

	// Path is the filled outline of the stroke.
	Path *Path

	// Color is the resolved stroke color.
	Color ColorStyle

	// StrokeWidth is the resolved numeric stroke width.
	StrokeWidth float64
}

// IsDot returns true if the rendering is a degenerate dot.
func (r *Rendering) IsDot() bool {
	return r.Dot != nil
}
