package sketch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/vector"
)

// circleKappa is the cubic Bezier control-point factor for quarter-circle
// arcs.
const circleKappa = 0.55228475

// RenderImage renders the document's visible shapes onto a white RGBA
// image of the given size. Shapes are drawn in z-order; each shape's
// local rendering is translated by its anchor and rotated about its
// center.
func RenderImage(d *Document, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sketch: render size %dx%d is not positive", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for _, s := range d.Shapes() {
		if s.IsHidden {
			continue
		}
		kind, err := KindFor(s.Type)
		if err != nil {
			return nil, fmt.Errorf("sketch: render document %s: %w", d.ID, err)
		}
		rasterizeShape(img, s, kind)
	}
	return img, nil
}

// rasterizeShape fills one shape's rendering into dst.
func rasterizeShape(dst *image.RGBA, s *Shape, kind Kind) {
	rendering := kind.Render(s)
	center := kind.Center(s)

	// Shape-local to document space: translate by the anchor, then
	// rotate about the shape's center.
	toDoc := func(p Point) Point {
		p = p.Add(s.Point)
		if s.Rotation != 0 {
			p = p.RotateAround(center, s.Rotation)
		}
		return p
	}

	bounds := dst.Bounds()
	ras := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	if rendering.IsDot() {
		c := toDoc(rendering.Dot.Center)
		rasterizeCircle(ras, c, rendering.Dot.Radius)
	} else {
		rasterizePath(ras, rendering.Path, toDoc)
	}
	ras.Draw(dst, bounds, image.NewUniform(rendering.Color.RGBA()), image.Point{})
}

// rasterizePath feeds a path's elements through the coordinate transform
// into the rasterizer.
func rasterizePath(ras *vector.Rasterizer, p *Path, toDoc func(Point) Point) {
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			pt := toDoc(e.Point)
			ras.MoveTo(float32(pt.X), float32(pt.Y))
		case LineTo:
			pt := toDoc(e.Point)
			ras.LineTo(float32(pt.X), float32(pt.Y))
		case QuadTo:
			ctrl, pt := toDoc(e.Control), toDoc(e.Point)
			ras.QuadTo(float32(ctrl.X), float32(ctrl.Y), float32(pt.X), float32(pt.Y))
		case Close:
			ras.ClosePath()
		}
	}
}

// rasterizeCircle fills a circle from four cubic Bezier quarter arcs.
func rasterizeCircle(ras *vector.Rasterizer, c Point, r float64) {
	k := circleKappa * r
	x, y := float32(c.X), float32(c.Y)
	rf, kf := float32(r), float32(k)

	ras.MoveTo(x+rf, y)
	ras.CubeTo(x+rf, y+kf, x+kf, y+rf, x, y+rf)
	ras.CubeTo(x-kf, y+rf, x-rf, y+kf, x-rf, y)
	ras.CubeTo(x-rf, y-kf, x-kf, y-rf, x, y-rf)
	ras.CubeTo(x+kf, y-rf, x+rf, y-kf, x+rf, y)
	ras.ClosePath()
}

// SavePNG renders the document and writes it to a PNG file.
func SavePNG(path string, d *Document, width, height int) error {
	img, err := RenderImage(d, width, height)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("sketch: create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("sketch: encode %s: %w", path, err)
	}
	return nil
}
