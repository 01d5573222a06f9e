// Package sketch provides the shape geometry engine for freehand
// whiteboard documents.
//
// # Overview
//
// sketch models a document as an ordered set of shapes. Each shape kind
// registers a uniform operation set (create, render, bounds, hit-testing,
// transform, styling) so the document layer can treat all kinds
// polymorphically. This package ships the freehand "draw" kind: a shape
// defined by an anchor point, an ordered sequence of pressure-weighted
// sample points, a rotation, and a stroke style.
//
// # Quick Start
//
//	import "github.com/gogpu/sketch"
//
//	// Create a freehand shape from sampled input.
//	shape := sketch.Create(sketch.ShapeTypeDraw,
//	    sketch.WithPoint(sketch.Pt(120, 80)),
//	    sketch.WithPoints(samples),
//	)
//
//	kind, _ := sketch.KindFor(sketch.ShapeTypeDraw)
//	bounds := kind.Bounds(shape)
//	hit := kind.HitTest(shape, sketch.Pt(130, 95))
//
// # Caching
//
// Bounds, rotated hit-test corners, and rendered outline paths are
// expensive pure derivations of a shape's point set. The engine memoizes
// them in soft-limit LRU caches keyed by revision handles owned by the
// shape: the points revision changes whenever the point sequence is
// replaced, the shape revision whenever points, rotation, or the anchor
// change. Caches are advisory; a miss recomputes the identical result.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Sample points are shape-local; a shape's anchor point places them in
// document space.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
