// Package freehand turns pressure-weighted input samples into stroke
// outline polygons.
//
// The outline is built by offsetting the input polyline perpendicular to
// its direction of travel by a per-sample radius derived from pressure,
// then closing the two offset runs with round end caps. When no real
// pressure data is available, pressure is simulated from drawing speed:
// fast segments thin the stroke, slow segments thicken it.
package freehand

import "math"

// Point is one input sample: a position plus a pressure in [0,1].
type Point struct {
	X, Y, Pressure float64
}

// Vec is a 2D outline vertex.
type Vec struct {
	X, Y float64
}

// Options control outline generation.
type Options struct {
	// Size is the full stroke diameter at maximum pressure.
	Size float64

	// Thinning is the effect of pressure on the stroke radius, in [0,1].
	// Zero produces a uniform-width outline.
	Thinning float64

	// TaperStart and TaperEnd are the distances over which the stroke
	// tapers toward its ends, down to a quarter of the full radius at
	// the tip. Zero disables tapering.
	TaperStart, TaperEnd float64

	// Easing remaps the pressure-derived radius factor. Nil means linear.
	Easing func(float64) float64

	// SimulatePressure derives pressure from inter-sample distance
	// instead of the recorded pressure values.
	SimulatePressure bool
}

// capSegments is the number of segments in each round end cap.
const capSegments = 8

// minRadiusFactor keeps fully-thinned strokes from collapsing to a
// zero-width outline.
const minRadiusFactor = 0.025

// taperMinFactor is the radius fraction kept at the very tip of a
// tapered stroke. A floor above zero keeps pressure visible on strokes
// shorter than the taper distance, whose samples all sit inside the
// taper zones.
const taperMinFactor = 0.25

// Outline computes the stroke outline polygon for the given samples.
// Fewer than two distinct samples yield a nil outline; callers render a
// dot instead.
func Outline(pts []Point, opts Options) []Vec {
	pts = dedupe(pts)
	if len(pts) < 2 || opts.Size <= 0 {
		return nil
	}

	ease := opts.Easing
	if ease == nil {
		ease = func(t float64) float64 { return t }
	}

	n := len(pts)
	pressures := make([]float64, n)
	if opts.SimulatePressure {
		simulatePressures(pts, opts.Size, pressures)
	} else {
		for i, p := range pts {
			pressures[i] = clamp(p.Pressure, 0, 1)
		}
	}

	// Cumulative run lengths for tapering.
	runs := make([]float64, n)
	for i := 1; i < n; i++ {
		runs[i] = runs[i-1] + dist(pts[i-1], pts[i])
	}
	total := runs[n-1]

	radii := make([]float64, n)
	for i := range pts {
		r := opts.Size / 2
		if opts.Thinning > 0 {
			r *= ease(0.5 - opts.Thinning*(0.5-pressures[i]))
		}
		if opts.TaperStart > 0 && runs[i] < opts.TaperStart {
			r *= taperFactor(runs[i], opts.TaperStart)
		}
		if opts.TaperEnd > 0 && total-runs[i] < opts.TaperEnd {
			r *= taperFactor(total-runs[i], opts.TaperEnd)
		}
		radii[i] = math.Max(r, opts.Size*minRadiusFactor)
	}

	// Offset the polyline on both sides using central-difference
	// directions, then stitch left run + end cap + reversed right run +
	// start cap into one closed polygon.
	left := make([]Vec, n)
	right := make([]Vec, n)
	for i := range pts {
		d := directionAt(pts, i)
		px, py := -d.Y, d.X
		left[i] = Vec{X: pts[i].X + px*radii[i], Y: pts[i].Y + py*radii[i]}
		right[i] = Vec{X: pts[i].X - px*radii[i], Y: pts[i].Y - py*radii[i]}
	}

	outline := make([]Vec, 0, 2*n+2*capSegments)
	outline = append(outline, left...)
	outline = append(outline, capArc(pts[n-1], radii[n-1], directionAt(pts, n-1), false)...)
	for i := n - 1; i >= 0; i-- {
		outline = append(outline, right[i])
	}
	outline = append(outline, capArc(pts[0], radii[0], directionAt(pts, 0), true)...)
	return outline
}

// taperFactor maps a distance into a taper zone to a radius multiplier,
// shrinking linearly from 1 at the zone's edge to taperMinFactor at the
// stroke tip.
func taperFactor(run, taper float64) float64 {
	return taperMinFactor + (1-taperMinFactor)*(run/taper)
}

// simulatePressures fills out with pressures derived from inter-sample
// speed, smoothed so a single long segment does not collapse the stroke.
func simulatePressures(pts []Point, size float64, out []float64) {
	pressure := 0.5
	out[0] = pressure
	for i := 1; i < len(pts); i++ {
		speed := math.Min(1, dist(pts[i-1], pts[i])/size)
		target := math.Min(1, 1-speed)
		pressure += (target - pressure) * 0.5
		out[i] = pressure
	}
}

// directionAt returns the unit direction of travel at sample i, using a
// central difference in the interior and one-sided differences at the
// ends. Degenerate directions fall back to +X.
func directionAt(pts []Point, i int) Vec {
	prev := pts[max(i-1, 0)]
	next := pts[min(i+1, len(pts)-1)]
	dx, dy := next.X-prev.X, next.Y-prev.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Vec{X: 1, Y: 0}
	}
	return Vec{X: dx / length, Y: dy / length}
}

// capArc returns a half-circle of vertices around center, sweeping from
// the left offset to the right offset of the given travel direction. The
// start cap sweeps behind the first sample, the end cap ahead of the
// last.
func capArc(center Point, radius float64, dir Vec, start bool) []Vec {
	// Perpendicular on the left side of travel.
	px, py := -dir.Y, dir.X
	if start {
		px, py = -px, -py
	}
	verts := make([]Vec, 0, capSegments-1)
	for i := 1; i < capSegments; i++ {
		a := math.Pi * float64(i) / capSegments
		cos, sin := math.Cos(a), math.Sin(a)
		// Rotate the leading offset vector clockwise through the cap.
		x := px*cos + py*sin
		y := -px*sin + py*cos
		verts = append(verts, Vec{X: center.X + x*radius, Y: center.Y + y*radius})
	}
	return verts
}

// dedupe drops consecutive samples closer together than a small epsilon,
// which otherwise produce unstable offset directions.
func dedupe(pts []Point) []Point {
	const epsilon = 1e-4
	if len(pts) < 2 {
		return pts
	}
	out := make([]Point, 1, len(pts))
	out[0] = pts[0]
	for _, p := range pts[1:] {
		if dist(out[len(out)-1], p) > epsilon {
			out = append(out, p)
		}
	}
	return out
}

func dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
