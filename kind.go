package sketch

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownKind is returned when an operation names a shape type that
// no registered kind handles.
var ErrUnknownKind = errors.New("sketch: unknown shape kind")

// TransformContext carries the state of an in-progress resize gesture.
// The same base shape is transformed repeatedly per frame against a
// moving target box, so the context snapshots the pre-transform shape
// and the scale factors the gesture is applying.
type TransformContext struct {
	// InitialShape is the shape as it was when the gesture began.
	// Its local bounds are expected to be cache-populated by a prior
	// Bounds call.
	InitialShape *Shape

	// ScaleX and ScaleY are the horizontal and vertical scale factors of
	// the gesture. A negative factor mirrors the point set about that
	// axis instead of producing negative coordinates.
	ScaleX, ScaleY float64
}

// Kind is the uniform operation set implemented by every shape kind, so
// the document layer can treat all kinds polymorphically. Operations
// take the shape they act on; Transform and ApplyStyles mutate the
// shape and return it for chaining.
type Kind interface {
	// Type returns the shape type this kind is registered under.
	Type() ShapeType

	// Create builds a new shape of this kind, merging the given options
	// over the kind's defaults.
	Create(opts ...ShapeOption) *Shape

	// Render produces the shape's drawable form in shape-local space.
	Render(s *Shape) *Rendering

	// Bounds returns the axis-aligned box enclosing the shape in
	// document space, ignoring rotation.
	Bounds(s *Shape) Bounds

	// RotatedBounds returns the axis-aligned box that encloses the shape
	// after applying its rotation, center-aligned with Bounds.
	RotatedBounds(s *Shape) Bounds

	// Center returns the center point of the rotated bounds.
	Center(s *Shape) Point

	// HitTest reports whether the document-space point hits the shape.
	HitTest(s *Shape, p Point) bool

	// HitTestBounds reports whether the document-space box contains or
	// intersects the shape. Used for marquee and brush selection.
	HitTestBounds(s *Shape, box Bounds) bool

	// Transform remaps the shape's geometry into targetBox as part of a
	// resize gesture described by ctx.
	Transform(s *Shape, targetBox Bounds, ctx TransformContext) *Shape

	// ApplyStyles merges a partial style update onto the shape.
	ApplyStyles(s *Shape, partial PartialStyle) *Shape

	// CanStyleFill reports whether fill-style controls apply to this
	// kind. The surrounding UI layer disables fill controls when false.
	CanStyleFill() bool
}

// kindRegistry holds the registered shape kinds.
// Registration normally happens in package init functions; the mutex
// makes late registration from other goroutines safe as well.
var (
	kindMu sync.RWMutex
	kinds  = make(map[ShapeType]Kind)
)

// RegisterKind adds a shape kind to the registry, replacing any kind
// previously registered for the same type.
func RegisterKind(k Kind) {
	kindMu.Lock()
	defer kindMu.Unlock()
	kinds[k.Type()] = k
}

// KindFor returns the kind registered for the given shape type.
func KindFor(t ShapeType) (Kind, error) {
	kindMu.RLock()
	defer kindMu.RUnlock()
	k, ok := kinds[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, t)
	}
	return k, nil
}

// MustKind is like KindFor but panics on unregistered types.
// Use for built-in types whose registration is guaranteed.
func MustKind(t ShapeType) Kind {
	k, err := KindFor(t)
	if err != nil {
		panic(err)
	}
	return k
}

// Create builds a new shape of the given type, merging the options over
// the kind's defaults. It panics if the type has no registered kind;
// use [KindFor] to create shapes of dynamically-determined types.
func Create(t ShapeType, opts ...ShapeOption) *Shape {
	return MustKind(t).Create(opts...)
}
