package sketch

import (
	"math"

	"github.com/gogpu/sketch/internal/cache"
	"github.com/gogpu/sketch/internal/freehand"
)

// geometryCacheLimit is the soft limit of each geometry cache. Entries
// for mutated or deleted shapes are never re-requested, so eviction
// reclaims them over time.
const geometryCacheLimit = 1024

// dotRadiusFactor scales the stroke width into the radius of the dot
// drawn for strokes with fewer than two points.
const dotRadiusFactor = 0.618

// DrawKind is the freehand drawing shape kind. A draw shape's geometry
// is its anchor point plus an ordered sequence of pressure-weighted
// sample points in shape-local space.
//
// Bounds, outline paths, and rotated hit-test corners are memoized in
// the kind's caches, keyed by the owning shape's revision handles.
type DrawKind struct {
	boundsCache  *cache.Cache[uint64, Bounds]  // local box, by points revision
	pathCache    *cache.Cache[uint64, *Path]   // outline path, by points revision
	rotatedCache *cache.Cache[uint64, []Point] // rotated samples, by shape revision
}

// NewDrawKind creates a freehand shape kind with empty caches.
func NewDrawKind() *DrawKind {
	return &DrawKind{
		boundsCache:  cache.New[uint64, Bounds](geometryCacheLimit),
		pathCache:    cache.New[uint64, *Path](geometryCacheLimit),
		rotatedCache: cache.New[uint64, []Point](geometryCacheLimit),
	}
}

func init() {
	RegisterKind(NewDrawKind())
}

// Type returns ShapeTypeDraw.
func (k *DrawKind) Type() ShapeType {
	return ShapeTypeDraw
}

// CanStyleFill returns false: draw shapes cannot be filled, and the UI
// layer disables fill controls for them.
func (k *DrawKind) CanStyleFill() bool {
	return false
}

// Create builds a new draw shape, merging the options over the kind's
// defaults: a fresh identifier, empty point sequence, anchor at the
// origin, rotation zero, and the default style. IsFilled is forced to
// false regardless of the options.
func (k *DrawKind) Create(opts ...ShapeOption) *Shape {
	s := &Shape{
		ID:         newShapeID(),
		Type:       ShapeTypeDraw,
		ChildIndex: 1,
		Points:     []SamplePoint{},
		Style:      DefaultStyle(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Style.IsFilled = false
	s.pointsKey = newRevision()
	s.shapeKey = newRevision()
	return s
}

// localBounds returns the box enclosing the shape's points in its local
// frame, computed at most once per point sequence.
func (k *DrawKind) localBounds(s *Shape) Bounds {
	return k.boundsCache.GetOrCreate(s.pointsRev(), func() Bounds {
		return BoundsFromSamples(s.Points)
	})
}

// Bounds returns the box enclosing the shape's points in document
// space. The local box is cached; the translation by the shape's anchor
// is re-applied per call so the result tracks the current anchor.
func (k *DrawKind) Bounds(s *Shape) Bounds {
	return k.localBounds(s).Translate(s.Point)
}

// RotatedBounds returns the box that encloses the shape after applying
// its rotation. The rotated box is aligned so its center coincides with
// the unrotated bounds' center, keeping the two representations visually
// co-located.
func (k *DrawKind) RotatedBounds(s *Shape) Bounds {
	if s.Rotation == 0 {
		return k.Bounds(s)
	}
	rotated := BoundsFromSamples(s.Points, s.Rotation).Translate(s.Point)
	return rotated.CenterOn(k.Bounds(s).Center())
}

// Center returns the center of the shape's rotated bounds.
func (k *DrawKind) Center(s *Shape) Point {
	return k.RotatedBounds(s).Center()
}

// HitTest reports whether the document-space point lies within the
// stroke width of any segment of the shape's polyline. The threshold is
// the numeric stroke width, not a pixel-scaled outline test.
func (k *DrawKind) HitTest(s *Shape, p Point) bool {
	local := p.Sub(s.Point)
	width := s.Style.StrokeWidth()
	switch len(s.Points) {
	case 0:
		return false
	case 1:
		return local.Distance(s.Points[0].Point()) <= width
	}
	prev := s.Points[0].Point()
	for _, sp := range s.Points[1:] {
		cur := sp.Point()
		if local.DistanceToSegment(prev, cur) <= width {
			return true
		}
		prev = cur
	}
	return false
}

// HitTestBounds reports whether box fully contains the shape or the
// shape's polyline crosses into box. Both the rotated and unrotated
// branches use contains-or-intersects semantics, so a brush surrounding
// the shape and one grazing its outline both register.
func (k *DrawKind) HitTestBounds(s *Shape, box Bounds) bool {
	if s.Rotation == 0 {
		if box.ContainsBounds(k.Bounds(s)) {
			return true
		}
		pts := make([]Point, len(s.Points))
		for i, sp := range s.Points {
			pts[i] = sp.Point().Add(s.Point)
		}
		return PolylineIntersectsBounds(pts, box)
	}

	rotated := k.RotatedBounds(s)
	if box.ContainsBounds(rotated) {
		return true
	}
	corners := k.rotatedCache.GetOrCreate(s.shapeRev(), func() []Point {
		center := rotated.Center()
		pts := make([]Point, len(s.Points))
		for i, sp := range s.Points {
			pts[i] = sp.Point().Add(s.Point).RotateAround(center, s.Rotation)
		}
		return pts
	})
	return PolylineIntersectsBounds(corners, box)
}

// Transform remaps the shape's points proportionally from the
// pre-transform local bounds into targetBox's dimensions, mirroring
// each axis whose scale factor is negative, then adjusts the anchor so
// the new bounds' top-left corner lands on targetBox's top-left corner.
//
// The pre-transform bounds come from the bounds cache: an interactive
// resize transforms the same base shape every frame, so the prior
// Bounds call keeps the entry warm. A cold cache recomputes the
// identical box.
func (k *DrawKind) Transform(s *Shape, targetBox Bounds, ctx TransformContext) *Shape {
	initial := ctx.InitialShape
	if initial == nil {
		initial = s
	}
	initialBounds := k.boundsCache.GetOrCreate(initial.pointsRev(), func() Bounds {
		return BoundsFromSamples(initial.Points)
	})

	pts := make([]SamplePoint, len(initial.Points))
	for i, sp := range initial.Points {
		var u, v float64
		if initialBounds.Width != 0 {
			u = sp.X / initialBounds.Width
		}
		if initialBounds.Height != 0 {
			v = sp.Y / initialBounds.Height
		}
		if ctx.ScaleX < 0 {
			u = 1 - u
		}
		if ctx.ScaleY < 0 {
			v = 1 - v
		}
		pts[i] = SamplePoint{
			X:        targetBox.Width * u,
			Y:        targetBox.Height * v,
			Pressure: sp.Pressure,
		}
	}

	newBounds := BoundsFromSamples(pts)
	s.SetPoints(pts)
	s.SetAnchor(Pt(targetBox.MinX-newBounds.MinX, targetBox.MinY-newBounds.MinY))
	return s
}

// ApplyStyles merges the partial style onto the shape, forcing
// IsFilled to false and the dash pattern to solid: draw shapes ignore
// fill and dash styling. The point sequence is replaced with a copy
// holding the same values so that path and rotation caches, keyed by
// the points revision, miss and regenerate on next render.
func (k *DrawKind) ApplyStyles(s *Shape, partial PartialStyle) *Shape {
	s.Style = s.Style.Merge(partial)
	s.Style.IsFilled = false
	s.Style.Dash = DashSolid

	pts := make([]SamplePoint, len(s.Points))
	copy(pts, s.Points)
	s.SetPoints(pts)
	return s
}

// Render produces the shape's drawable outline in shape-local space.
//
// Strokes with fewer than two points (or whose points collapse to one
// position) render as a dot of radius 0.618 times the stroke width.
// Otherwise the outline polygon is generated from the samples and
// converted to a smooth closed path, cached by the points revision so
// re-renders with unchanged geometry are free.
//
// A second sample with pressure exactly 0.5 is the sentinel for "no
// real pressure data was captured": pressure is then simulated from
// drawing speed with a sine easing. Any other value means the recorded
// pressures drive variable-width thinning.
func (k *DrawKind) Render(s *Shape) *Rendering {
	width := s.Style.StrokeWidth()
	if len(s.Points) < 2 {
		return k.renderDot(s, width)
	}

	path := k.pathCache.GetOrCreate(s.pointsRev(), func() *Path {
		opts := freehand.Options{
			Size:       1 + width*1.5,
			Thinning:   0.85,
			TaperStart: width,
			TaperEnd:   width,
		}
		if s.Points[1].Pressure == 0.5 {
			opts.SimulatePressure = true
			opts.Easing = sineEase
		}

		samples := make([]freehand.Point, len(s.Points))
		for i, sp := range s.Points {
			samples[i] = freehand.Point{X: sp.X, Y: sp.Y, Pressure: sp.Pressure}
		}
		outline := freehand.Outline(samples, opts)
		Logger().Debug("sketch: generated stroke outline",
			"shape", s.ID, "samples", len(samples), "outline", len(outline))

		pts := make([]Point, len(outline))
		for i, v := range outline {
			pts[i] = Point{X: v.X, Y: v.Y}
		}
		return OutlinePath(pts)
	})

	if path.IsEmpty() {
		// All samples collapsed to one position.
		return k.renderDot(s, width)
	}
	return &Rendering{
		Path:        path,
		Color:       s.Style.Color,
		StrokeWidth: width,
	}
}

// renderDot builds the degenerate dot rendering for a not-yet-drawn or
// single-click shape.
func (k *DrawKind) renderDot(s *Shape, width float64) *Rendering {
	var center Point
	if len(s.Points) > 0 {
		center = s.Points[0].Point()
	}
	return &Rendering{
		Dot:         &Dot{Center: center, Radius: dotRadiusFactor * width},
		Color:       s.Style.Color,
		StrokeWidth: width,
	}
}

// sineEase is the easing applied to simulated pressure.
func sineEase(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}
