package sketch

import (
	"errors"
	"math"
	"testing"
)

// squiggle returns a small freehand point sequence with the given
// uniform pressure, anchored at the local origin.
func squiggle(pressure float64) []SamplePoint {
	return []SamplePoint{
		Sample(0, 0, pressure),
		Sample(10, 5, pressure),
		Sample(20, 0, pressure),
		Sample(30, 10, pressure),
		Sample(40, 5, pressure),
	}
}

func TestDrawCreate_Defaults(t *testing.T) {
	k := NewDrawKind()
	s := k.Create()

	if s.ID == "" {
		t.Error("Create should assign an identifier")
	}
	if s.Type != ShapeTypeDraw {
		t.Errorf("Type = %q, want %q", s.Type, ShapeTypeDraw)
	}
	if len(s.Points) != 0 {
		t.Errorf("new shape should have no points, got %d", len(s.Points))
	}
	if s.Point != Pt(0, 0) {
		t.Errorf("anchor = %v, want origin", s.Point)
	}
	if s.Rotation != 0 {
		t.Errorf("rotation = %v, want 0", s.Rotation)
	}
	if s.Style != DefaultStyle() {
		t.Errorf("style = %+v, want defaults", s.Style)
	}
}

func TestDrawCreate_Overrides(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(
		WithID("shape-1"),
		WithPoint(Pt(100, 50)),
		WithPoints(squiggle(0.5)),
		WithRotation(math.Pi/4),
		WithColor(ColorRed),
		WithSize(SizeLarge),
	)

	if s.ID != "shape-1" {
		t.Errorf("ID = %q", s.ID)
	}
	if s.Point != Pt(100, 50) {
		t.Errorf("anchor = %v", s.Point)
	}
	if len(s.Points) != 5 {
		t.Errorf("points = %d, want 5", len(s.Points))
	}
	if s.Style.Color != ColorRed || s.Style.Size != SizeLarge {
		t.Errorf("style = %+v", s.Style)
	}
}

func TestDrawCreate_FillAlwaysForcedOff(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithStyle(Style{
		Color:    ColorBlue,
		Size:     SizeSmall,
		Dash:     DashDashed,
		IsFilled: true,
	}))

	if s.Style.IsFilled {
		t.Error("draw shapes must never be filled, even when requested")
	}
	if s.Style.Color != ColorBlue || s.Style.Size != SizeSmall {
		t.Errorf("other style fields should be kept: %+v", s.Style)
	}
	if k.CanStyleFill() {
		t.Error("CanStyleFill must be false")
	}
}

func TestDrawBounds(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoint(Pt(100, 200)), WithPoints(squiggle(0.5)))

	got := k.Bounds(s)
	want := NewBounds(100, 200, 40, 10)
	if !got.Approx(want, 1e-10) {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestDrawBounds_CachedLocalBoxTracksAnchor(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoint(Pt(10, 10)), WithPoints(squiggle(0.5)))

	first := k.Bounds(s)
	second := k.Bounds(s)
	if first != second {
		t.Errorf("repeated Bounds calls differ: %+v vs %+v", first, second)
	}

	// The cache stores the local box, not the translated one: moving the
	// anchor shifts the min corner by exactly the delta and keeps the
	// extents, without recomputing from points.
	s.Point = Pt(35, -15)
	moved := k.Bounds(s)
	if moved.Width != first.Width || moved.Height != first.Height {
		t.Errorf("extents changed on anchor move: %+v vs %+v", moved, first)
	}
	if !Pt(moved.MinX, moved.MinY).Approx(Pt(first.MinX+25, first.MinY-25), 1e-10) {
		t.Errorf("min corner = (%v, %v), want shifted by (25, -25)", moved.MinX, moved.MinY)
	}

	// The local box was computed once: the cache holds a single entry
	// for this shape's point sequence.
	if _, ok := k.boundsCache.Get(s.pointsRev()); !ok {
		t.Error("local bounds should be cached under the points revision")
	}
}

func TestDrawBounds_ComputedOncePerPointSet(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoints(squiggle(0.5)))

	k.Bounds(s)
	before := k.boundsCache.Len()
	for i := 0; i < 10; i++ {
		k.Bounds(s)
	}
	if after := k.boundsCache.Len(); after != before {
		t.Errorf("repeated Bounds populated %d extra entries", after-before)
	}
}

func TestDrawRotatedBounds_ZeroRotationEqualsBounds(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoint(Pt(7, 9)), WithPoints(squiggle(0.5)))

	if got, want := k.RotatedBounds(s), k.Bounds(s); got != want {
		t.Errorf("RotatedBounds = %+v, want Bounds %+v", got, want)
	}
}

func TestDrawRotatedBounds_CenterAligned(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoint(Pt(50, 50)), WithPoints(squiggle(0.5)), WithRotation(math.Pi/3))

	plain := k.Bounds(s)
	rotated := k.RotatedBounds(s)

	if !rotated.Center().Approx(plain.Center(), 1e-9) {
		t.Errorf("rotated bounds center %v, want aligned with %v", rotated.Center(), plain.Center())
	}
	if rotated.Height <= plain.Height {
		t.Errorf("rotating this stroke should heighten the box: %v <= %v is unexpected",
			rotated.Height, plain.Height)
	}

	if got := k.Center(s); !got.Approx(plain.Center(), 1e-9) {
		t.Errorf("Center = %v, want %v", got, plain.Center())
	}
}

func TestDrawHitTest(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoint(Pt(100, 100)), WithPoints([]SamplePoint{
		Sample(0, 0, 0.5),
		Sample(40, 0, 0.5),
	}))
	width := s.Style.StrokeWidth()

	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"on the stroke", Pt(120, 100), true},
		{"within stroke width", Pt(120, 100+width-0.5), true},
		{"just beyond stroke width", Pt(120, 100+width+0.5), false},
		{"near endpoint", Pt(141, 100), true},
		{"far away", Pt(0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := k.HitTest(s, tt.p); got != tt.expect {
				t.Errorf("HitTest(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestDrawHitTest_TranslationSymmetry(t *testing.T) {
	k := NewDrawKind()
	base := k.Create(WithPoint(Pt(10, 20)), WithPoints(squiggle(0.5)))
	delta := Pt(-37, 113)
	moved := k.Create(WithPoint(base.Point.Add(delta)), WithPoints(squiggle(0.5)))

	probes := []Point{
		Pt(15, 22), Pt(30, 25), Pt(50, 31), Pt(9, 19), Pt(200, 200),
	}
	for _, p := range probes {
		if k.HitTest(base, p) != k.HitTest(moved, p.Add(delta)) {
			t.Errorf("hit test not translation-symmetric at %v", p)
		}
	}
}

func TestDrawHitTest_Degenerate(t *testing.T) {
	k := NewDrawKind()

	empty := k.Create()
	if k.HitTest(empty, Pt(0, 0)) {
		t.Error("empty shape should hit nothing")
	}

	dot := k.Create(WithPoint(Pt(10, 10)), WithPoints([]SamplePoint{Sample(0, 0, 1)}))
	if !k.HitTest(dot, Pt(11, 11)) {
		t.Error("single-point shape should hit near its point")
	}
	if k.HitTest(dot, Pt(30, 30)) {
		t.Error("single-point shape should miss far away")
	}
}

func TestDrawHitTestBounds_Unrotated(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoint(Pt(100, 100)), WithPoints(squiggle(0.5)))

	// The shape's exact bounds contain it.
	if !k.HitTestBounds(s, k.Bounds(s)) {
		t.Error("exact bounds should hit (containment case)")
	}

	// A box grazing only the polyline hits too.
	if !k.HitTestBounds(s, NewBounds(95, 95, 10, 10)) {
		t.Error("box crossing the stroke should hit")
	}

	// A box overlapping the bounds but missing the polyline entirely
	// does not hit: there is empty space below the squiggle's valley.
	if k.HitTestBounds(s, NewBounds(118, 106, 4, 2)) {
		t.Error("box in the gap below the stroke should miss")
	}

	if k.HitTestBounds(s, NewBounds(0, 0, 10, 10)) {
		t.Error("distant box should miss")
	}
}

func TestDrawHitTestBounds_Rotated(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(
		WithPoint(Pt(100, 100)),
		WithPoints(squiggle(0.5)),
		WithRotation(math.Pi/2),
	)

	rotated := k.RotatedBounds(s)

	// A brush fully surrounding the rotated shape hits.
	surround := NewBounds(rotated.MinX-5, rotated.MinY-5, rotated.Width+10, rotated.Height+10)
	if !k.HitTestBounds(s, surround) {
		t.Error("surrounding brush should hit a rotated shape")
	}

	// A brush grazing the rotated polyline hits: after a quarter turn
	// the sample at local (10, 5) lands at document (120, 95).
	center := rotated.Center()
	graze := NewBounds(center.X-1, center.Y-11, 2, 2)
	if !k.HitTestBounds(s, graze) {
		t.Error("brush grazing the rotated stroke should hit")
	}

	// The unrotated far corner no longer holds the shape.
	miss := NewBounds(rotated.MaxX()+5, rotated.MaxY()+5, 4, 4)
	if k.HitTestBounds(s, miss) {
		t.Error("brush outside the rotated shape should miss")
	}

	// The rotated corner polyline is cached for repeated brush tests.
	if _, ok := k.rotatedCache.Get(s.shapeRev()); !ok {
		t.Error("rotated corners should be cached under the shape revision")
	}
}

func TestDrawTransform_Identity(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoint(Pt(100, 100)), WithPoints(squiggle(0.5)))
	bounds := k.Bounds(s) // populates the cache the gesture relies on
	initial := s.Clone()

	k.Transform(s, bounds, TransformContext{InitialShape: initial, ScaleX: 1, ScaleY: 1})

	if len(s.Points) != len(initial.Points) {
		t.Fatalf("point count changed: %d != %d", len(s.Points), len(initial.Points))
	}
	for i := range s.Points {
		if !s.Points[i].Point().Approx(initial.Points[i].Point(), 1e-9) {
			t.Errorf("point %d moved: %v -> %v", i, initial.Points[i], s.Points[i])
		}
		if s.Points[i].Pressure != initial.Points[i].Pressure {
			t.Errorf("point %d pressure changed", i)
		}
	}
	if !s.Point.Approx(initial.Point, 1e-9) {
		t.Errorf("anchor moved: %v -> %v", initial.Point, s.Point)
	}
}

func TestDrawTransform_MirrorX(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoint(Pt(100, 100)), WithPoints(squiggle(0.5)))
	bounds := k.Bounds(s)
	initial := s.Clone()
	width := BoundsFromSamples(initial.Points).Width

	k.Transform(s, bounds, TransformContext{InitialShape: initial, ScaleX: -1, ScaleY: 1})

	for i := range s.Points {
		oldU := initial.Points[i].X / width
		newU := s.Points[i].X / width
		if math.Abs(newU-(1-oldU)) > 1e-9 {
			t.Errorf("point %d: normalized x-offset = %v, want %v", i, newU, 1-oldU)
		}
	}

	// The transformed bounds' top-left stays pinned to the target box.
	if got := k.Bounds(s); !got.Approx(bounds, 1e-9) {
		t.Errorf("bounds after mirror = %+v, want %+v", got, bounds)
	}
}

func TestDrawTransform_Resize(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoint(Pt(100, 100)), WithPoints(squiggle(0.5)))
	k.Bounds(s)
	initial := s.Clone()

	target := NewBounds(300, 50, 80, 30)
	k.Transform(s, target, TransformContext{InitialShape: initial, ScaleX: 2, ScaleY: 3})

	if got := k.Bounds(s); !got.Approx(target, 1e-9) {
		t.Errorf("bounds after resize = %+v, want %+v", got, target)
	}
}

func TestDrawApplyStyles(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoints(squiggle(0.5)))
	priorPoints := s.Points
	priorRev := s.pointsRev()

	filled := true
	dash := DashDotted
	color := ColorGreen
	k.ApplyStyles(s, PartialStyle{Color: &color, Dash: &dash, IsFilled: &filled})

	if s.Style.Color != ColorGreen {
		t.Errorf("color = %q, want green", s.Style.Color)
	}
	if s.Style.IsFilled {
		t.Error("IsFilled must stay false for draw shapes")
	}
	if s.Style.Dash != DashSolid {
		t.Errorf("dash = %q, must be forced solid", s.Style.Dash)
	}

	// The point sequence must be a fresh slice with equal values, so
	// revision-keyed caches miss and regenerate.
	if len(s.Points) != len(priorPoints) {
		t.Fatalf("point count changed: %d != %d", len(s.Points), len(priorPoints))
	}
	if &s.Points[0] == &priorPoints[0] {
		t.Error("ApplyStyles must replace the points slice, not alias it")
	}
	for i := range s.Points {
		if s.Points[i] != priorPoints[i] {
			t.Errorf("point %d value changed: %+v != %+v", i, s.Points[i], priorPoints[i])
		}
	}
	if s.pointsRev() == priorRev {
		t.Error("points revision must change so caches are invalidated")
	}
}

func TestDrawRender_PressureSentinel(t *testing.T) {
	k := NewDrawKind()
	sentinel := k.Create(WithPoints([]SamplePoint{
		Sample(0, 0, 0.5),
		Sample(10, 0, 0.5),
	}))
	recorded := k.Create(WithPoints([]SamplePoint{
		Sample(0, 0, 0.1),
		Sample(10, 0, 0.9),
	}))

	a := k.Render(sentinel)
	b := k.Render(recorded)
	if a.IsDot() || b.IsDot() {
		t.Fatal("two-point strokes should render as paths")
	}
	if a.Path.String() == b.Path.String() {
		t.Error("sentinel and recorded pressure must produce different outlines")
	}
}

func TestDrawRender_DegenerateDot(t *testing.T) {
	k := NewDrawKind()

	tests := []struct {
		name string
		pts  []SamplePoint
	}{
		{"no points", nil},
		{"one point", []SamplePoint{Sample(5, 5, 1)}},
		{"coincident points", []SamplePoint{Sample(5, 5, 1), Sample(5, 5, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := k.Create(WithPoints(tt.pts), WithSize(SizeMedium))
			r := k.Render(s)
			if !r.IsDot() {
				t.Fatal("degenerate stroke should render as a dot, not a path")
			}
			want := dotRadiusFactor * s.Style.StrokeWidth()
			if math.Abs(r.Dot.Radius-want) > 1e-10 {
				t.Errorf("dot radius = %v, want %v", r.Dot.Radius, want)
			}
		})
	}
}

func TestDrawRender_PathCached(t *testing.T) {
	k := NewDrawKind()
	s := k.Create(WithPoints(squiggle(0.7)))

	first := k.Render(s)
	second := k.Render(s)
	if first.Path != second.Path {
		t.Error("re-render with unchanged geometry should reuse the cached path")
	}

	// Styling replaces the point sequence, so the path regenerates.
	color := ColorBlue
	k.ApplyStyles(s, PartialStyle{Color: &color})
	third := k.Render(s)
	if third.Path == first.Path {
		t.Error("ApplyStyles must invalidate the cached path")
	}
}

func TestDrawKindRegistered(t *testing.T) {
	kind, err := KindFor(ShapeTypeDraw)
	if err != nil {
		t.Fatalf("KindFor(draw) failed: %v", err)
	}
	if kind.Type() != ShapeTypeDraw {
		t.Errorf("registered kind has type %q", kind.Type())
	}

	s := Create(ShapeTypeDraw, WithPoints(squiggle(0.5)))
	if s.Type != ShapeTypeDraw {
		t.Errorf("Create produced type %q", s.Type)
	}
}

func TestKindFor_Unknown(t *testing.T) {
	_, err := KindFor(ShapeType("hexagon"))
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("error %v should wrap ErrUnknownKind", err)
	}
}
