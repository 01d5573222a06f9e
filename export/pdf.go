// Package export writes sketch documents to external file formats.
package export

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/sketch"
)

// pageMargin is the blank border around the drawing, in points.
const pageMargin = 36

// PDF writes the document's visible shapes to a single-page A4 PDF.
// The drawing is uniformly scaled down, if necessary, to fit inside the
// page margins; drawings smaller than the page keep their size.
func PDF(w io.Writer, d *sketch.Document) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.AddPage()

	toPage := pageTransform(pdf, d)
	for _, s := range d.Shapes() {
		if s.IsHidden {
			continue
		}
		kind, err := sketch.KindFor(s.Type)
		if err != nil {
			return fmt.Errorf("export: document %s: %w", d.ID, err)
		}
		drawShape(pdf, s, kind, toPage)
	}

	if pdf.Err() {
		return fmt.Errorf("export: document %s: %w", d.ID, pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: document %s: %w", d.ID, err)
	}
	return nil
}

// PDFFile is like PDF but writes to the named file.
func PDFFile(path string, d *sketch.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()
	return PDF(f, d)
}

// pageTransform maps document space onto the page: the document bounds
// are shifted to the margin origin and uniformly scaled to fit.
func pageTransform(pdf *gofpdf.Fpdf, d *sketch.Document) func(sketch.Point) (float64, float64) {
	pageW, pageH := pdf.GetPageSize()
	docBounds := d.Bounds()

	scale := 1.0
	if docBounds.Width > 0 {
		scale = math.Min(scale, (pageW-2*pageMargin)/docBounds.Width)
	}
	if docBounds.Height > 0 {
		scale = math.Min(scale, (pageH-2*pageMargin)/docBounds.Height)
	}

	origin := sketch.Pt(docBounds.MinX, docBounds.MinY)
	return func(p sketch.Point) (float64, float64) {
		q := p.Sub(origin).Mul(scale)
		return q.X + pageMargin, q.Y + pageMargin
	}
}

// drawShape fills one shape's rendering onto the page.
func drawShape(pdf *gofpdf.Fpdf, s *sketch.Shape, kind sketch.Kind, toPage func(sketch.Point) (float64, float64)) {
	rendering := kind.Render(s)
	center := kind.Center(s)

	toDoc := func(p sketch.Point) sketch.Point {
		p = p.Add(s.Point)
		if s.Rotation != 0 {
			p = p.RotateAround(center, s.Rotation)
		}
		return p
	}

	col := rendering.Color.RGBA()
	pdf.SetFillColor(int(col.R), int(col.G), int(col.B))

	if rendering.IsDot() {
		x, y := toPage(toDoc(rendering.Dot.Center))
		pdf.Circle(x, y, rendering.Dot.Radius, "F")
		return
	}

	poly := rendering.Path.Flatten()
	if len(poly) < 3 {
		return
	}
	pagePoly := make([]gofpdf.PointType, len(poly))
	for i, p := range poly {
		x, y := toPage(toDoc(p))
		pagePoly[i] = gofpdf.PointType{X: x, Y: y}
	}
	pdf.Polygon(pagePoly, "F")
}
