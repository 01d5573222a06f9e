package sketch

import (
	"strings"
	"testing"
)

func TestPath_String(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.QuadraticTo(Pt(15, 5), Pt(10, 10))
	p.ClosePath()

	got := p.String()
	want := "M0,0 L10,0 Q15,5 10,10 Z"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPath_Empty(t *testing.T) {
	p := NewPath()
	if !p.IsEmpty() {
		t.Error("new path should be empty")
	}
	if got := p.String(); got != "" {
		t.Errorf("empty path String() = %q", got)
	}
	if got := p.Flatten(); len(got) != 0 {
		t.Errorf("empty path Flatten() = %v", got)
	}
}

func TestPath_Flatten(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.QuadraticTo(Pt(15, 5), Pt(10, 10))
	p.ClosePath()

	poly := p.Flatten()
	// MoveTo + LineTo + quadSteps subdivisions + closing point.
	if len(poly) != 2+quadSteps+1 {
		t.Fatalf("Flatten() has %d points, want %d", len(poly), 2+quadSteps+1)
	}
	if poly[0] != Pt(0, 0) {
		t.Errorf("first point = %v", poly[0])
	}
	if poly[len(poly)-1] != poly[0] {
		t.Error("closed path polygon should end at its start")
	}
	// The quadratic's midpoint lies halfway between the chord and the
	// control point.
	mid := poly[1+quadSteps/2]
	if !mid.Approx(Pt(12.5, 5), 1e-9) {
		t.Errorf("curve midpoint = %v, want (12.5, 5)", mid)
	}
}

func TestOutlinePath(t *testing.T) {
	t.Run("empty outline", func(t *testing.T) {
		if p := OutlinePath(nil); !p.IsEmpty() {
			t.Errorf("OutlinePath(nil) = %q", p.String())
		}
	})

	t.Run("degenerate outline is a polygon", func(t *testing.T) {
		p := OutlinePath([]Point{Pt(0, 0), Pt(10, 0)})
		if got := p.String(); got != "M0,0 L10,0 Z" {
			t.Errorf("String() = %q", got)
		}
	})

	t.Run("smooth closed outline", func(t *testing.T) {
		outline := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
		p := OutlinePath(outline)

		s := p.String()
		if !strings.HasPrefix(s, "M") || !strings.HasSuffix(s, "Z") {
			t.Errorf("outline path should be closed: %q", s)
		}
		// Every vertex becomes one quadratic: four vertices, four curves.
		if got := strings.Count(s, "Q"); got != len(outline) {
			t.Errorf("curve count = %d, want %d", got, len(outline))
		}

		// The path starts at the first edge midpoint.
		first, ok := p.Elements()[0].(MoveTo)
		if !ok {
			t.Fatal("outline path should start with MoveTo")
		}
		if !first.Point.Approx(Pt(5, 0), 1e-9) {
			t.Errorf("start = %v, want first edge midpoint (5, 0)", first.Point)
		}
	})
}
