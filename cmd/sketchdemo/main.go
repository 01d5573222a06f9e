// Command sketchdemo demonstrates the sketch shape geometry engine.
//
// It builds a document of freehand shapes, exercises hit-testing and
// resize transforms, and writes the result as PNG, PDF, and JSON.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/export"
)

func main() {
	var (
		width  = flag.Int("width", 800, "image width")
		height = flag.Int("height", 600, "image height")
		output = flag.String("output", "demo.png", "output PNG file")
		pdfOut = flag.String("pdf", "demo.pdf", "output PDF file (empty to skip)")
		docOut = flag.String("doc", "demo.json", "output document file (empty to skip)")
	)
	flag.Parse()

	doc := sketch.NewDocument()

	// A squiggle without pressure data: the second sample's 0.5 pressure
	// makes the renderer simulate pressure from drawing speed.
	doc.Add(sketch.Create(sketch.ShapeTypeDraw,
		sketch.WithPoint(sketch.Pt(80, 120)),
		sketch.WithPoints(wave(240, 60, 0.5)),
		sketch.WithColor(sketch.ColorBlue),
		sketch.WithSize(sketch.SizeLarge),
	))

	// The same curve with recorded pressure ramping up along the stroke.
	pressured := wave(240, 60, 0)
	for i := range pressured {
		pressured[i].Pressure = 0.15 + 0.8*float64(i)/float64(len(pressured)-1)
	}
	doc.Add(sketch.Create(sketch.ShapeTypeDraw,
		sketch.WithPoint(sketch.Pt(80, 280)),
		sketch.WithPoints(pressured),
		sketch.WithColor(sketch.ColorRed),
		sketch.WithSize(sketch.SizeLarge),
	))

	// A rotated copy, and a single-click dot.
	rotated := sketch.Create(sketch.ShapeTypeDraw,
		sketch.WithPoint(sketch.Pt(420, 120)),
		sketch.WithPoints(wave(200, 50, 0.5)),
		sketch.WithColor(sketch.ColorGreen),
		sketch.WithRotation(math.Pi/6),
	)
	doc.Add(rotated)
	doc.Add(sketch.Create(sketch.ShapeTypeDraw,
		sketch.WithPoint(sketch.Pt(620, 420)),
		sketch.WithPoints([]sketch.SamplePoint{sketch.Sample(0, 0, 1)}),
		sketch.WithColor(sketch.ColorViolet),
		sketch.WithSize(sketch.SizeLarge),
	))

	kind := sketch.MustKind(sketch.ShapeTypeDraw)

	// Stretch the pressured squiggle into a wider box, as a resize
	// gesture would.
	target := kind.Bounds(doc.Shapes()[1])
	target.Width *= 1.4
	kind.Transform(doc.Shapes()[1], target, sketch.TransformContext{
		InitialShape: doc.Shapes()[1].Clone(),
		ScaleX:       1.4,
		ScaleY:       1,
	})

	if hit := doc.ShapeAt(sketch.Pt(200, 150)); hit != nil {
		log.Printf("shape %s is under the cursor", hit.ID)
	}
	log.Printf("%d shapes in marquee", len(doc.ShapesWithin(sketch.NewBounds(0, 0, 500, 500))))

	if err := sketch.SavePNG(*output, doc, *width, *height); err != nil {
		log.Fatalf("Failed to save PNG: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)", *output, *width, *height)

	if *pdfOut != "" {
		if err := export.PDFFile(*pdfOut, doc); err != nil {
			log.Fatalf("Failed to export PDF: %v", err)
		}
		log.Printf("PDF exported to %s", *pdfOut)
	}

	if *docOut != "" {
		f, err := os.Create(*docOut)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *docOut, err)
		}
		if err := doc.Save(f); err != nil {
			log.Fatalf("Failed to save document: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to close %s: %v", *docOut, err)
		}
		log.Printf("Document saved to %s", *docOut)
	}
}

// wave samples one period of a sine wave with the given extent and
// uniform pressure, shape-local with the origin at the left end.
func wave(width, amplitude, pressure float64) []sketch.SamplePoint {
	const samples = 48
	pts := make([]sketch.SamplePoint, samples)
	for i := range pts {
		t := float64(i) / (samples - 1)
		pts[i] = sketch.Sample(
			width*t,
			amplitude*(1-math.Sin(t*2*math.Pi))/2,
			pressure,
		)
	}
	return pts
}
