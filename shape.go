package sketch

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// ShapeType identifies a registered shape kind.
type ShapeType string

// Built-in shape types.
const (
	// ShapeTypeDraw is the freehand drawing shape.
	ShapeTypeDraw ShapeType = "draw"
)

// revisionCounter issues process-unique revision handles for cache keying.
// Revision 0 is reserved as "unassigned".
var revisionCounter atomic.Uint64

// newRevision returns a fresh, never-before-issued revision handle.
func newRevision() uint64 {
	return revisionCounter.Add(1)
}

// Shape is one shape in a document: an anchor point placing it in
// document space, shape-local geometry, a rotation about its own center,
// and style attributes. The containing document orders shapes through
// ParentID and ChildIndex.
//
// Derived data (bounds, outline paths, rotated hit-test corners) is
// memoized against two revision handles owned by the shape. The points
// revision changes whenever the point sequence is replaced; the shape
// revision whenever points, rotation, or the anchor change. Geometry
// mutations must therefore go through [Shape.SetPoints],
// [Shape.SetRotation], and [Shape.SetAnchor]; the Points slice itself is
// never mutated in place.
type Shape struct {
	ID         string    `json:"id"`
	Type       ShapeType `json:"type"`
	ParentID   string    `json:"parentId,omitempty"`
	ChildIndex float64   `json:"childIndex"`

	// Point is the shape's anchor: the document-space position of the
	// shape-local origin.
	Point    Point         `json:"point"`
	Points   []SamplePoint `json:"points"`
	Rotation float64       `json:"rotation"`

	Style Style `json:"style"`

	IsLocked            bool `json:"isLocked,omitempty"`
	IsHidden            bool `json:"isHidden,omitempty"`
	IsAspectRatioLocked bool `json:"isAspectRatioLocked,omitempty"`

	// Revision handles for cache keying. Zero means unassigned; they are
	// issued lazily so that zero-value and JSON-decoded shapes key their
	// own cache entries.
	pointsKey uint64
	shapeKey  uint64
}

// pointsRev returns the revision handle of the current point sequence,
// issuing one if the shape does not have one yet.
func (s *Shape) pointsRev() uint64 {
	if s.pointsKey == 0 {
		s.pointsKey = newRevision()
	}
	return s.pointsKey
}

// shapeRev returns the revision handle of the shape's document-space
// geometry (points, rotation, and anchor combined), issuing one if the
// shape does not have one yet.
func (s *Shape) shapeRev() uint64 {
	if s.shapeKey == 0 {
		s.shapeKey = newRevision()
	}
	return s.shapeKey
}

// SetPoints replaces the shape's point sequence. The slice is adopted,
// not copied; callers must not mutate it afterwards. Both revision
// handles change, so all cached derivations miss on next use.
func (s *Shape) SetPoints(pts []SamplePoint) {
	s.Points = pts
	s.pointsKey = newRevision()
	s.shapeKey = newRevision()
}

// SetRotation sets the shape's rotation (radians, about its own center)
// and invalidates document-space derivations. Local bounds and outline
// paths stay cached: they do not depend on rotation.
func (s *Shape) SetRotation(angle float64) {
	s.Rotation = angle
	s.shapeKey = newRevision()
}

// SetAnchor moves the shape's anchor point. Local bounds and outline
// paths stay cached; document-space derivations are invalidated.
func (s *Shape) SetAnchor(p Point) {
	s.Point = p
	s.shapeKey = newRevision()
}

// Clone returns a copy of the shape. The point sequence is shared with
// the original: points are immutable by convention, and sharing keeps
// the clone's cache entries warm. Use [Shape.SetPoints] to give either
// copy new geometry.
func (s *Shape) Clone() *Shape {
	dup := *s
	return &dup
}

// ShapeOption configures a shape during creation.
// Use functional options to override the kind's defaults.
//
// Example:
//
//	shape := sketch.Create(sketch.ShapeTypeDraw,
//	    sketch.WithPoint(sketch.Pt(100, 100)),
//	    sketch.WithColor(sketch.ColorBlue),
//	)
type ShapeOption func(*Shape)

// WithID sets the shape's unique identifier.
func WithID(id string) ShapeOption {
	return func(s *Shape) { s.ID = id }
}

// WithPoint sets the shape's anchor point in document space.
func WithPoint(p Point) ShapeOption {
	return func(s *Shape) { s.Point = p }
}

// WithPoints sets the shape's sample point sequence.
func WithPoints(pts []SamplePoint) ShapeOption {
	return func(s *Shape) { s.Points = pts }
}

// WithRotation sets the shape's rotation in radians.
func WithRotation(angle float64) ShapeOption {
	return func(s *Shape) { s.Rotation = angle }
}

// WithParent sets the shape's parent reference and ordering index.
func WithParent(parentID string, childIndex float64) ShapeOption {
	return func(s *Shape) {
		s.ParentID = parentID
		s.ChildIndex = childIndex
	}
}

// WithStyle replaces the shape's entire style record.
// Kind-specific style rules (e.g. draw shapes cannot be filled) are
// still enforced after the option is applied.
func WithStyle(style Style) ShapeOption {
	return func(s *Shape) { s.Style = style }
}

// WithColor sets the shape's stroke color.
func WithColor(c ColorStyle) ShapeOption {
	return func(s *Shape) { s.Style.Color = c }
}

// WithSize sets the shape's stroke size category.
func WithSize(size StrokeSize) ShapeOption {
	return func(s *Shape) { s.Style.Size = size }
}

// WithDash sets the shape's dash pattern category.
func WithDash(d DashStyle) ShapeOption {
	return func(s *Shape) { s.Style.Dash = d }
}

// WithLocked sets the shape's locked flag.
func WithLocked(locked bool) ShapeOption {
	return func(s *Shape) { s.IsLocked = locked }
}

// WithHidden sets the shape's hidden flag.
func WithHidden(hidden bool) ShapeOption {
	return func(s *Shape) { s.IsHidden = hidden }
}

// WithAspectRatioLocked sets the shape's aspect-ratio lock flag.
func WithAspectRatioLocked(locked bool) ShapeOption {
	return func(s *Shape) { s.IsAspectRatioLocked = locked }
}

// newShapeID returns a fresh unique shape identifier.
func newShapeID() string {
	return uuid.NewString()
}
